package js

import (
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/esparse/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTokens(t *testing.T, s string, tokentypes ...TokenType) {
	stringify := helperStringify(t, s)
	l := NewLexer(parse.NewInputString(s))
	i := 0
	for {
		tt, _ := l.Next()
		if tt == ErrorToken {
			assert.Equal(t, io.EOF, l.Err(), "error must be EOF in "+stringify)
			assert.Equal(t, len(tokentypes), i, "when error occurred we must be at the end in "+stringify)
			break
		} else if tt == WhitespaceToken {
			continue
		}
		assert.False(t, i >= len(tokentypes), "index must not exceed tokentypes size in "+stringify)
		if i < len(tokentypes) {
			assert.Equal(t, tokentypes[i], tt, "tokentypes must match at index "+strconv.Itoa(i)+" in "+stringify)
		}
		i++
	}
}

func helperStringify(t *testing.T, input string) string {
	s := ""
	l := NewLexer(parse.NewInputString(input))
	for i := 0; i < 10; i++ {
		tt, data := l.Next()
		if tt == ErrorToken {
			s += tt.String() + "('" + l.Err().Error() + "')"
			break
		} else if tt == WhitespaceToken {
			continue
		} else {
			s += tt.String() + "('" + string(data) + "') "
		}
	}
	return s
}

func assertLexError(t *testing.T, s string, offset int, message string) {
	l := NewLexer(parse.NewInputString(s))
	for {
		if tt, _ := l.Next(); tt == ErrorToken {
			break
		}
	}
	err, ok := l.Err().(*parse.Error)
	require.True(t, ok, "must return a parse error for "+strconv.Quote(s))
	assert.Equal(t, parse.LexicalError, err.Kind, "error kind in "+strconv.Quote(s))
	assert.Equal(t, offset, err.Offset, "error offset in "+strconv.Quote(s))
	assert.Equal(t, message, err.Message, "error message in "+strconv.Quote(s))
}

////////////////////////////////////////////////////////////////

func TestTokens(t *testing.T) {
	assertTokens(t, " \t\v\f\u00A0\uFEFF\u2000") // WhitespaceToken
	assertTokens(t, "\n\r\r\n\u2028\u2029", LineTerminatorToken)
	assertTokens(t, "5.2 .04 0x0F 5e99", DecimalToken, DecimalToken, HexadecimalToken, DecimalToken)
	assertTokens(t, "0b0101 0o0707 017 089 1_000 10n 0xFFn", BinaryToken, OctalToken, LegacyOctalToken, LegacyOctalToken, DecimalToken, BigIntToken, BigIntToken)
	assertTokens(t, "a = 'string'", IdentifierToken, EqToken, StringToken)
	assertTokens(t, "/*comment*/ //comment", CommentToken, CommentToken)
	assertTokens(t, "/*com\nment*/", CommentLineTerminatorToken)
	assertTokens(t, "{ } ( ) [ ]", OpenBraceToken, CloseBraceToken, OpenParenToken, CloseParenToken, OpenBracketToken, CloseBracketToken)
	assertTokens(t, ". ; , < > <= ...", DotToken, SemicolonToken, CommaToken, LtToken, GtToken, LtEqToken, EllipsisToken)
	assertTokens(t, ">= == != === !==", GtEqToken, EqEqToken, NotEqToken, EqEqEqToken, NotEqEqToken)
	assertTokens(t, "+ - * % ++ -- **", AddToken, SubToken, MulToken, ModToken, IncrToken, DecrToken, ExpToken)
	assertTokens(t, "<< >> >>> & | ^", LtLtToken, GtGtToken, GtGtGtToken, BitAndToken, BitOrToken, BitXorToken)
	assertTokens(t, "! ~ && || ? : ??", NotToken, BitNotToken, AndToken, OrToken, QuestionToken, ColonToken, NullishToken)
	assertTokens(t, "= += -= *= %= <<= **=", EqToken, AddEqToken, SubEqToken, MulEqToken, ModEqToken, LtLtEqToken, ExpEqToken)
	assertTokens(t, ">>= >>>= &= |= ^= =>", GtGtEqToken, GtGtGtEqToken, BitAndEqToken, BitOrEqToken, BitXorEqToken, ArrowToken)
	assertTokens(t, "&&= ||= ??=", AndEqToken, OrEqToken, NullishEqToken)
	assertTokens(t, "a?.b a?.5:c", IdentifierToken, OptChainToken, IdentifierToken, IdentifierToken, QuestionToken, DecimalToken, ColonToken, IdentifierToken)
	assertTokens(t, ">>>=>>>>=", GtGtGtEqToken, GtGtGtToken, GtEqToken)
	assertTokens(t, "a = /.*/g;", IdentifierToken, EqToken, DivToken, DotToken, MulToken, DivToken, IdentifierToken, SemicolonToken)

	assertTokens(t, "var let yield await async of", VarToken, LetToken, YieldToken, AwaitToken, AsyncToken, OfToken)
	assertTokens(t, "$ _\u200C \\u0061bc \\u{62}", IdentifierToken, IdentifierToken, IdentifierToken, IdentifierToken)
	assertTokens(t, "v\\u0061r", IdentifierToken)
	assertTokens(t, "#priv", PrivateIdentifierToken)
	assertTokens(t, "'str\\i\\'ng'", StringToken)
	assertTokens(t, "'str\\\\'abc", StringToken, IdentifierToken)
	assertTokens(t, "'str\\\ni\\\\u00A0ng'", StringToken)
	assertTokens(t, "'str\u2028ing'", StringToken)

	assertTokens(t, "`template`", TemplateToken)
	assertTokens(t, "`a${x+y}", TemplateStartToken, IdentifierToken, AddToken, IdentifierToken, CloseBraceToken)
	assertTokens(t, "`temp\nlate`", TemplateToken)

	assertTokens(t, "#!/usr/bin/env node\nx", CommentToken, LineTerminatorToken, IdentifierToken)
	assertTokens(t, "Ø a", IdentifierToken, IdentifierToken)
	assertTokens(t, "\u00A0\uFEFF\u2000")

	assert.Equal(t, "Whitespace", WhitespaceToken.String())
	assert.Equal(t, "var", VarToken.String())
	assert.Equal(t, "?.", OptChainToken.String())
	assert.Equal(t, "Invalid(100)", TokenType(100).String())
}

func TestLexErrors(t *testing.T) {
	assertLexError(t, "'string", 0, "unterminated string literal")
	assertLexError(t, "a\n'str\ning'", 2, "unterminated string literal")
	assertLexError(t, "/*comment", 0, "unterminated comment")
	assertLexError(t, "`template", 0, "unterminated template literal")
	assertLexError(t, "1__0", 1, "numeric separators are only allowed between digits")
	assertLexError(t, "1_", 1, "numeric separators are only allowed between digits")
	assertLexError(t, "0_1", 1, "numeric separator is not allowed after a leading zero")
	assertLexError(t, "3in x", 1, "identifier starts immediately after numeric literal")
	assertLexError(t, "1e+", 3, "missing exponent in numeric literal")
	assertLexError(t, "0x", 2, "missing digits after numeric prefix")
	assertLexError(t, "1.5n", 0, "invalid BigInt literal")
	assertLexError(t, "07n", 0, "invalid BigInt literal")
	assertLexError(t, "a\\u00", 1, "invalid unicode escape sequence in identifier")
	assertLexError(t, "a\\u0020", 0, "invalid unicode escape sequence in identifier")
	assertLexError(t, "\\u00", 0, "unexpected character '\\\\'")
	assertLexError(t, "@", 0, "unexpected character '@'")
	assertLexError(t, "a〉", 1, "unexpected character U+3009")
}

func TestRegExp(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"/.*/g", "/.*/g"},
		{"/[a-z/]/g", "/[a-z/]/g"},
		{"/=/g", "/=/g"},
		{"/\\//", "/\\//"},
		{"/\\d{1,2}/u", "/\\d{1,2}/u"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			l := NewLexer(parse.NewInputString(tt.js))
			tok, _ := l.Next()
			require.True(t, tok == DivToken || tok == DivEqToken, "must start with a division token")
			tok, data := l.RegExp()
			assert.Equal(t, RegExpToken, tok)
			assert.Equal(t, tt.expected, string(data))
		})
	}

	l := NewLexer(parse.NewInputString("/abc\n/"))
	l.Next()
	tok, _ := l.RegExp()
	assert.Equal(t, ErrorToken, tok)
	assert.EqualError(t, l.Err(), "LexicalError: unterminated regular expression on line 1 and column 1\n    1: /abc\n       ^")

	l = NewLexer(parse.NewInputString("/a/gg"))
	l.Next()
	tok, _ = l.RegExp()
	assert.Equal(t, ErrorToken, tok)
	assert.Equal(t, "duplicate regular expression flag 'g'", l.Err().(*parse.Error).Message)
}

func TestTemplateContinuation(t *testing.T) {
	l := NewLexer(parse.NewInputString("`a${x}b${y}c`"))
	expected := []struct {
		tt   TokenType
		data string
	}{
		{TemplateStartToken, "`a${"},
		{IdentifierToken, "x"},
		{TemplateMiddleToken, "}b${"},
		{IdentifierToken, "y"},
		{TemplateEndToken, "}c`"},
	}
	for _, e := range expected {
		tt, data := l.Next()
		if tt == CloseBraceToken {
			tt, data = l.TemplateContinuation()
		}
		assert.Equal(t, e.tt, tt)
		assert.Equal(t, e.data, string(data))
	}
	tt, _ := l.Next()
	assert.Equal(t, ErrorToken, tt)
	assert.Equal(t, io.EOF, l.Err())
}

func TestPeek(t *testing.T) {
	l := NewLexer(parse.NewInputString("a /* c */\n b"))
	tt, _ := l.Next()
	assert.Equal(t, IdentifierToken, tt)

	tt, data, lineTerminator := l.Peek()
	assert.Equal(t, IdentifierToken, tt)
	assert.Equal(t, "b", string(data))
	assert.True(t, lineTerminator)

	tt, _ = l.Next()
	assert.Equal(t, WhitespaceToken, tt, "peek must not consume tokens")
}

func TestHTMLComments(t *testing.T) {
	l := NewLexer(parse.NewInputString("x <!-- y\n--> z\nw"))
	l.htmlComments = true
	tokens := []TokenType{}
	for {
		tt, _ := l.Next()
		if tt == ErrorToken {
			break
		} else if tt != WhitespaceToken {
			tokens = append(tokens, tt)
		}
	}
	assert.Equal(t, []TokenType{IdentifierToken, CommentToken, LineTerminatorToken, CommentToken, LineTerminatorToken, IdentifierToken}, tokens)

	// without web compatibility --> is a decrement followed by greater than
	assertTokens(t, "\n-->", LineTerminatorToken, DecrToken, GtToken)
}

func TestJSXTokens(t *testing.T) {
	l := NewLexer(parse.NewInputString(`div data-x = "a\b" {/* c */ }>text & more<`))
	expected := []struct {
		tt   TokenType
		data string
	}{
		{IdentifierToken, "div"},
		{IdentifierToken, "data-x"},
		{EqToken, "="},
		{StringToken, `"a\b"`},
		{OpenBraceToken, "{"},
		{CloseBraceToken, "}"},
		{GtToken, ">"},
	}
	for _, e := range expected {
		tt, data := l.NextJSXTag()
		assert.Equal(t, e.tt, tt)
		assert.Equal(t, e.data, string(data))
	}

	tt, data := l.NextJSXChild()
	assert.Equal(t, JSXTextToken, tt)
	assert.Equal(t, "text & more", string(data))
	tt, _ = l.NextJSXChild()
	assert.Equal(t, LtToken, tt)

	l = NewLexer(parse.NewInputString("a > b"))
	tt, _ = l.NextJSXChild()
	assert.Equal(t, ErrorToken, tt)
	assert.Equal(t, "unexpected token '>' in JSX text, did you mean {'>'}", l.Err().(*parse.Error).Message)
}

////////////////////////////////////////////////////////////////

func ExampleNewLexer() {
	l := NewLexer(parse.NewInputString("var x = 'lorem ipsum';"))
	out := ""
	for {
		tt, data := l.Next()
		if tt == ErrorToken {
			break
		}
		out += string(data)
	}
	fmt.Println(out)
	// Output: var x = 'lorem ipsum';
}
