// Package js is an ECMAScript lexer and parser producing an ESTree syntax tree, following the specifications at https://tc39.es/ecma262/.
package js

import (
	"unicode"

	"github.com/esparse/parse"
)

var identifierStart = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
var identifierContinue = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}

// Lexer is the state for the lexer.
type Lexer struct {
	r   *parse.Input
	err *parse.Error

	prevLineTerminator bool
	escaped            bool // last identifier name contained unicode escapes
	htmlComments       bool // recognise <!-- and --> as single line comments
	experimental       bool // accept the regular expression v flag
}

// NewLexer returns a new Lexer for a given input.
func NewLexer(r *parse.Input) *Lexer {
	return &Lexer{
		r:                  r,
		prevLineTerminator: true,
	}
}

// Err returns the error encountered during lexing, this is often io.EOF but also other errors can be returned.
func (l *Lexer) Err() error {
	if l.err != nil {
		return l.err
	}
	return l.r.Err()
}

// Offset returns the current position in the input stream.
func (l *Lexer) Offset() int {
	return l.r.Offset()
}

// Escaped returns true if the last identifier name contained unicode escape sequences.
func (l *Lexer) Escaped() bool {
	return l.escaped
}

func (l *Lexer) fail(offset int, message string, a ...interface{}) TokenType {
	if l.err == nil {
		l.err = parse.NewError(l.r, parse.LexicalError, offset, message, a...)
	}
	return ErrorToken
}

// Peek returns the next significant token without consuming it. The boolean reports whether a line terminator precedes it.
func (l *Lexer) Peek() (TokenType, []byte, bool) {
	start, pos := l.r.State()
	prevLineTerminator, escaped, err := l.prevLineTerminator, l.escaped, l.err

	lineTerminator := false
	tt, data := l.Next()
	for tt == WhitespaceToken || tt == LineTerminatorToken || tt == CommentToken || tt == CommentLineTerminatorToken {
		if tt == LineTerminatorToken || tt == CommentLineTerminatorToken {
			lineTerminator = true
		}
		tt, data = l.Next()
	}

	l.r.SetState(start, pos)
	l.prevLineTerminator, l.escaped, l.err = prevLineTerminator, escaped, err
	return tt, data, lineTerminator
}

// RegExp reparses the input stream for a regular expression. It is assumed that we just received DivToken or DivEqToken with Next(). This function will go back and read that as a regular expression.
func (l *Lexer) RegExp() (TokenType, []byte) {
	if 0 < l.r.Offset() && l.r.Peek(-1) == '/' {
		l.r.Move(-1)
	} else if 1 < l.r.Offset() && l.r.Peek(-1) == '=' && l.r.Peek(-2) == '/' {
		l.r.Move(-2)
	} else {
		return l.fail(l.r.Offset(), "unexpected regular expression"), nil
	}
	l.r.Skip() // trick to set start = pos

	if tt := l.consumeRegExpToken(); tt == ErrorToken {
		return ErrorToken, nil
	}
	return RegExpToken, l.r.Shift()
}

// TemplateContinuation reparses the closing brace of a template substitution as the continuation of the template. It is assumed that we just received CloseBraceToken with Next().
func (l *Lexer) TemplateContinuation() (TokenType, []byte) {
	if l.r.Offset() == 0 || l.r.Peek(-1) != '}' {
		return l.fail(l.r.Offset(), "unexpected template continuation"), nil
	}
	l.r.Move(-1)
	l.r.Skip()
	if tt := l.consumeTemplateToken(true); tt != ErrorToken {
		return tt, l.r.Shift()
	}
	return ErrorToken, nil
}

// Next returns the next Token. It returns ErrorToken when an error was encountered. Using Err() one can retrieve the error message.
func (l *Lexer) Next() (TokenType, []byte) {
	prevLineTerminator := l.prevLineTerminator
	l.prevLineTerminator = false
	l.escaped = false

	c := l.r.Peek(0)
	switch c {
	case '(':
		l.r.Move(1)
		return OpenParenToken, l.r.Shift()
	case ')':
		l.r.Move(1)
		return CloseParenToken, l.r.Shift()
	case '{':
		l.r.Move(1)
		return OpenBraceToken, l.r.Shift()
	case '}':
		l.r.Move(1)
		return CloseBraceToken, l.r.Shift()
	case ']':
		l.r.Move(1)
		return CloseBracketToken, l.r.Shift()
	case '[':
		l.r.Move(1)
		return OpenBracketToken, l.r.Shift()
	case ';':
		l.r.Move(1)
		return SemicolonToken, l.r.Shift()
	case ',':
		l.r.Move(1)
		return CommaToken, l.r.Shift()
	case ':':
		l.r.Move(1)
		return ColonToken, l.r.Shift()
	case '~':
		l.r.Move(1)
		return BitNotToken, l.r.Shift()
	case '<', '-':
		if l.htmlComments && l.consumeHTMLLikeCommentToken(prevLineTerminator) {
			if l.err != nil {
				return ErrorToken, nil
			}
			return CommentToken, l.r.Shift()
		}
		return l.consumeOperatorToken(), l.r.Shift()
	case '>', '=', '!', '+', '*', '%', '&', '|', '^':
		return l.consumeOperatorToken(), l.r.Shift()
	case '?':
		if l.r.Peek(1) == '.' && !isDigit(l.r.Peek(2)) {
			l.r.Move(2)
			return OptChainToken, l.r.Shift()
		}
		return l.consumeOperatorToken(), l.r.Shift()
	case '/':
		if tt := l.consumeCommentToken(); tt != ErrorToken {
			if tt == CommentToken {
				l.prevLineTerminator = prevLineTerminator
			}
			return tt, l.r.Shift()
		} else if l.err != nil {
			return ErrorToken, nil
		}
		return l.consumeOperatorToken(), l.r.Shift()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if tt := l.consumeNumericToken(); tt != ErrorToken {
			return tt, l.r.Shift()
		}
		return ErrorToken, nil
	case '.':
		if isDigit(l.r.Peek(1)) {
			if tt := l.consumeNumericToken(); tt != ErrorToken {
				return tt, l.r.Shift()
			}
			return ErrorToken, nil
		}
		l.r.Move(1)
		if l.r.Peek(0) == '.' && l.r.Peek(1) == '.' {
			l.r.Move(2)
			return EllipsisToken, l.r.Shift()
		}
		return DotToken, l.r.Shift()
	case '\'', '"':
		if tt := l.consumeStringToken(); tt != ErrorToken {
			return tt, l.r.Shift()
		}
		return ErrorToken, nil
	case ' ', '\t', '\v', '\f':
		l.r.Move(1)
		for l.consumeWhitespaceByte() || l.consumeWhitespaceRune() {
		}
		l.prevLineTerminator = prevLineTerminator
		return WhitespaceToken, l.r.Shift()
	case '\n', '\r':
		l.r.Move(1)
		for l.consumeLineTerminator() {
		}
		l.prevLineTerminator = true
		return LineTerminatorToken, l.r.Shift()
	case '`':
		if tt := l.consumeTemplateToken(false); tt != ErrorToken {
			return tt, l.r.Shift()
		}
		return ErrorToken, nil
	case '#':
		if l.r.Offset() == 0 && l.r.Peek(1) == '!' {
			// hashbang comment
			l.r.Move(2)
			l.consumeSingleLineComment()
			return CommentToken, l.r.Shift()
		}
		l.r.Move(1)
		if tt := l.consumeIdentifierToken(); tt != ErrorToken {
			return PrivateIdentifierToken, l.r.Shift()
		} else if l.err != nil {
			return ErrorToken, nil
		}
		l.r.Move(-1)
	default:
		if tt := l.consumeIdentifierToken(); tt != ErrorToken {
			return tt, l.r.Shift()
		} else if l.err != nil {
			return ErrorToken, nil
		} else if 0xC0 <= c {
			if l.consumeWhitespaceByte() || l.consumeWhitespaceRune() {
				for l.consumeWhitespaceByte() || l.consumeWhitespaceRune() {
				}
				l.prevLineTerminator = prevLineTerminator
				return WhitespaceToken, l.r.Shift()
			} else if l.consumeLineTerminator() {
				for l.consumeLineTerminator() {
				}
				l.prevLineTerminator = true
				return LineTerminatorToken, l.r.Shift()
			}
		} else if c == 0 && l.r.Err() != nil {
			return ErrorToken, nil
		}
	}

	r, n := l.r.PeekRune(0)
	if n == 1 && r < 0x80 {
		return l.fail(l.r.Offset(), "unexpected character %q", rune(c)), nil
	}
	return l.fail(l.r.Offset(), "unexpected character U+%04X", r), nil
}

////////////////////////////////////////////////////////////////

/*
The following functions follow the specifications at https://tc39.es/ecma262/#sec-ecmascript-language-lexical-grammar
*/

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isDigitOf(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return '0' <= c && c <= '7'
	case 16:
		return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
	}
	return '0' <= c && c <= '9'
}

func (l *Lexer) consumeWhitespaceByte() bool {
	c := l.r.Peek(0)
	if c == ' ' || c == '\t' || c == '\v' || c == '\f' {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) consumeWhitespaceRune() bool {
	c := l.r.Peek(0)
	if 0xC0 <= c {
		if r, n := l.r.PeekRune(0); r == '\u00A0' || r == '\uFEFF' || unicode.Is(unicode.Zs, r) {
			l.r.Move(n)
			return true
		}
	}
	return false
}

func (l *Lexer) atLineTerminator() bool {
	c := l.r.Peek(0)
	if c == '\n' || c == '\r' {
		return true
	} else if c == 0xE2 {
		r, _ := l.r.PeekRune(0)
		return r == '\u2028' || r == '\u2029'
	}
	return false
}

func (l *Lexer) atEOF() bool {
	return l.r.Peek(0) == 0 && l.r.Err() != nil
}

func (l *Lexer) consumeLineTerminator() bool {
	c := l.r.Peek(0)
	if c == '\n' {
		l.r.Move(1)
		return true
	} else if c == '\r' {
		if l.r.Peek(1) == '\n' {
			l.r.Move(2)
		} else {
			l.r.Move(1)
		}
		return true
	} else if 0xC0 <= c {
		if r, n := l.r.PeekRune(0); r == '\u2028' || r == '\u2029' {
			l.r.Move(n)
			return true
		}
	}
	return false
}

func (l *Lexer) consumeHexDigit() bool {
	if isDigitOf(l.r.Peek(0), 16) {
		l.r.Move(1)
		return true
	}
	return false
}

func (l *Lexer) consumeUnicodeEscape() bool {
	if l.r.Peek(0) != '\\' || l.r.Peek(1) != 'u' {
		return false
	}
	mark := l.r.Pos()
	l.r.Move(2)
	if c := l.r.Peek(0); c == '{' {
		l.r.Move(1)
		if l.consumeHexDigit() {
			for l.consumeHexDigit() {
			}
			if c := l.r.Peek(0); c == '}' {
				l.r.Move(1)
				return true
			}
		}
		l.r.Rewind(mark)
		return false
	} else if !l.consumeHexDigit() || !l.consumeHexDigit() || !l.consumeHexDigit() || !l.consumeHexDigit() {
		l.r.Rewind(mark)
		return false
	}
	return true
}

func (l *Lexer) consumeSingleLineComment() {
	for !l.atLineTerminator() && !l.atEOF() {
		l.r.Move(1)
	}
}

////////////////////////////////////////////////////////////////

func (l *Lexer) consumeHTMLLikeCommentToken(prevLineTerminator bool) bool {
	c := l.r.Peek(0)
	if c == '<' && l.r.Peek(1) == '!' && l.r.Peek(2) == '-' && l.r.Peek(3) == '-' {
		// opening HTML-style single line comment
		l.r.Move(4)
		l.consumeSingleLineComment()
		return true
	} else if prevLineTerminator && c == '-' && l.r.Peek(1) == '-' && l.r.Peek(2) == '>' {
		// closing HTML-style single line comment
		// (only if current line didn't contain any meaningful tokens)
		l.r.Move(3)
		l.consumeSingleLineComment()
		return true
	}
	return false
}

func (l *Lexer) consumeCommentToken() TokenType {
	c := l.r.Peek(1)
	if c == '/' {
		// single line comment
		l.r.Move(2)
		l.consumeSingleLineComment()
		return CommentToken
	} else if c == '*' {
		// block comment (potentially multiline)
		start := l.r.Offset()
		tt := CommentToken
		l.r.Move(2)
		for {
			c := l.r.Peek(0)
			if c == '*' && l.r.Peek(1) == '/' {
				l.r.Move(2)
				break
			} else if l.atEOF() {
				return l.fail(start, "unterminated comment")
			} else if l.consumeLineTerminator() {
				tt = CommentLineTerminatorToken
				l.prevLineTerminator = true
			} else {
				l.r.Move(1)
			}
		}
		return tt
	}
	return ErrorToken
}

var opTokens = map[byte]TokenType{
	'=': EqToken,
	'!': NotToken,
	'<': LtToken,
	'>': GtToken,
	'+': AddToken,
	'-': SubToken,
	'*': MulToken,
	'/': DivToken,
	'%': ModToken,
	'&': BitAndToken,
	'|': BitOrToken,
	'^': BitXorToken,
	'?': QuestionToken,
}

var opEqTokens = map[byte]TokenType{
	'=': EqEqToken,
	'!': NotEqToken,
	'<': LtEqToken,
	'>': GtEqToken,
	'+': AddEqToken,
	'-': SubEqToken,
	'*': MulEqToken,
	'/': DivEqToken,
	'%': ModEqToken,
	'&': BitAndEqToken,
	'|': BitOrEqToken,
	'^': BitXorEqToken,
}

var opOpTokens = map[byte]TokenType{
	'+': IncrToken,
	'-': DecrToken,
	'*': ExpToken,
	'&': AndToken,
	'|': OrToken,
	'?': NullishToken,
}

var opOpEqTokens = map[byte]TokenType{
	'*': ExpEqToken,
	'&': AndEqToken,
	'|': OrEqToken,
	'?': NullishEqToken,
}

func (l *Lexer) consumeOperatorToken() TokenType {
	c := l.r.Peek(0)
	l.r.Move(1)
	if l.r.Peek(0) == '=' && c != '?' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' && (c == '!' || c == '=') {
			l.r.Move(1)
			if c == '!' {
				return NotEqEqToken
			}
			return EqEqEqToken
		}
		return opEqTokens[c]
	} else if l.r.Peek(0) == c && (c == '+' || c == '-' || c == '*' || c == '&' || c == '|' || c == '?') {
		l.r.Move(1)
		if l.r.Peek(0) == '=' && c != '+' && c != '-' {
			l.r.Move(1)
			return opOpEqTokens[c]
		}
		return opOpTokens[c]
	} else if c == '=' && l.r.Peek(0) == '>' {
		l.r.Move(1)
		return ArrowToken
	} else if c == '<' && l.r.Peek(0) == '<' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return LtLtEqToken
		}
		return LtLtToken
	} else if c == '>' && l.r.Peek(0) == '>' {
		l.r.Move(1)
		if l.r.Peek(0) == '>' {
			l.r.Move(1)
			if l.r.Peek(0) == '=' {
				l.r.Move(1)
				return GtGtGtEqToken
			}
			return GtGtGtToken
		} else if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return GtGtEqToken
		}
		return GtGtToken
	}
	return opTokens[c]
}

// atIdentifierStart returns true if an identifier could start at the current position.
func (l *Lexer) atIdentifierStart() bool {
	c := l.r.Peek(0)
	if c == '\\' {
		return l.r.Peek(1) == 'u'
	} else if c < 0xC0 {
		return identifierTable[c] && !isDigit(c)
	}
	r, _ := l.r.PeekRune(0)
	return unicode.IsOneOf(identifierStart, r)
}

func (l *Lexer) consumeIdentifierToken() TokenType {
	start := l.r.Offset()
	escaped := false
	c := l.r.Peek(0)
	if identifierTable[c] && !isDigit(c) {
		if 0xC0 <= c {
			if r, n := l.r.PeekRune(0); unicode.IsOneOf(identifierStart, r) {
				l.r.Move(n)
			} else {
				return ErrorToken
			}
		} else {
			l.r.Move(1)
		}
	} else if l.consumeUnicodeEscape() {
		escaped = true
	} else {
		return ErrorToken
	}
	for {
		c := l.r.Peek(0)
		if identifierTable[c] {
			if 0xC0 <= c {
				if r, n := l.r.PeekRune(0); r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r) {
					l.r.Move(n)
				} else {
					break
				}
			} else {
				l.r.Move(1)
			}
		} else if c == '\\' {
			if !l.consumeUnicodeEscape() {
				return l.fail(l.r.Offset(), "invalid unicode escape sequence in identifier")
			}
			escaped = true
		} else {
			break
		}
	}

	name := l.r.Bytes()[start:l.r.Offset()]
	if escaped {
		l.escaped = true
		if _, ok := decodeIdentifier(name); !ok {
			return l.fail(start, "invalid unicode escape sequence in identifier")
		}
		// escaped keywords never act as keywords, the parser rejects escaped reserved words used as identifiers
		return IdentifierToken
	}
	if keyword, ok := Keywords[string(name)]; ok {
		return keyword
	}
	return IdentifierToken
}

func (l *Lexer) consumeNumericToken() TokenType {
	// assume to be on 0 1 2 3 4 5 6 7 8 9 or a . followed by a digit
	start := l.r.Offset()
	if l.r.Peek(0) == '0' {
		switch l.r.Peek(1) {
		case 'x', 'X':
			return l.consumeRadixToken(start, 16, HexadecimalToken)
		case 'o', 'O':
			return l.consumeRadixToken(start, 8, OctalToken)
		case 'b', 'B':
			return l.consumeRadixToken(start, 2, BinaryToken)
		case '_':
			return l.fail(start+1, "numeric separator is not allowed after a leading zero")
		}
		if isDigit(l.r.Peek(1)) {
			return l.consumeLegacyOctalToken(start)
		}
	}

	tt := DecimalToken
	integer := true
	if l.r.Peek(0) != '.' {
		if _, ok := l.consumeDigits(10); !ok {
			return ErrorToken
		}
	}
	if l.r.Peek(0) == '.' {
		l.r.Move(1)
		integer = false
		if c := l.r.Peek(0); isDigit(c) || c == '_' {
			if _, ok := l.consumeDigits(10); !ok {
				return ErrorToken
			}
		}
	}
	if exponent, ok := l.consumeExponent(); !ok {
		return ErrorToken
	} else if exponent {
		integer = false
	}
	if l.r.Peek(0) == 'n' {
		if !integer {
			return l.fail(start, "invalid BigInt literal")
		}
		l.r.Move(1)
		tt = BigIntToken
	}
	return l.checkNumericEnd(tt)
}

// consumeDigits consumes digits of the given base, separated by single underscores.
func (l *Lexer) consumeDigits(base int) (int, bool) {
	n := 0
	for {
		c := l.r.Peek(0)
		if isDigitOf(c, base) {
			l.r.Move(1)
			n++
		} else if c == '_' {
			if n == 0 || !isDigitOf(l.r.Peek(1), base) {
				l.fail(l.r.Offset(), "numeric separators are only allowed between digits")
				return n, false
			}
			l.r.Move(1)
		} else {
			return n, true
		}
	}
}

func (l *Lexer) consumeExponent() (bool, bool) {
	if c := l.r.Peek(0); c != 'e' && c != 'E' {
		return false, true
	}
	l.r.Move(1)
	if c := l.r.Peek(0); c == '+' || c == '-' {
		l.r.Move(1)
	}
	if !isDigit(l.r.Peek(0)) {
		l.fail(l.r.Offset(), "missing exponent in numeric literal")
		return true, false
	}
	_, ok := l.consumeDigits(10)
	return true, ok
}

func (l *Lexer) consumeRadixToken(start, base int, tt TokenType) TokenType {
	l.r.Move(2)
	if n, ok := l.consumeDigits(base); !ok {
		return ErrorToken
	} else if n == 0 {
		return l.fail(l.r.Offset(), "missing digits after numeric prefix")
	}
	if l.r.Peek(0) == 'n' {
		l.r.Move(1)
		tt = BigIntToken
	}
	return l.checkNumericEnd(tt)
}

// consumeLegacyOctalToken consumes 017 and 089 style literals. The latter, a decimal with a leading zero, may have a fraction and exponent.
func (l *Lexer) consumeLegacyOctalToken(start int) TokenType {
	l.r.Move(1)
	octal := true
	for isDigit(l.r.Peek(0)) {
		if '7' < l.r.Peek(0) {
			octal = false
		}
		l.r.Move(1)
	}
	if l.r.Peek(0) == '_' {
		return l.fail(l.r.Offset(), "numeric separators are not allowed in legacy octal literals")
	}
	if !octal {
		if l.r.Peek(0) == '.' {
			l.r.Move(1)
			if _, ok := l.consumeDigits(10); !ok {
				return ErrorToken
			}
		}
		if _, ok := l.consumeExponent(); !ok {
			return ErrorToken
		}
	}
	if l.r.Peek(0) == 'n' {
		return l.fail(start, "invalid BigInt literal")
	}
	return l.checkNumericEnd(LegacyOctalToken)
}

func (l *Lexer) checkNumericEnd(tt TokenType) TokenType {
	if isDigit(l.r.Peek(0)) || l.atIdentifierStart() {
		return l.fail(l.r.Offset(), "identifier starts immediately after numeric literal")
	}
	return tt
}

func (l *Lexer) consumeStringToken() TokenType {
	// assume to be on ' or "
	start := l.r.Offset()
	delim := l.r.Peek(0)
	l.r.Move(1)
	for {
		c := l.r.Peek(0)
		if c == delim {
			l.r.Move(1)
			return StringToken
		} else if c == '\\' {
			l.r.Move(1)
			if !l.consumeLineTerminator() {
				if l.atEOF() {
					break
				}
				_, n := l.r.PeekRune(0)
				l.r.Move(n)
			}
			continue
		} else if c == '\n' || c == '\r' || l.atEOF() {
			break
		}
		l.r.Move(1)
	}
	return l.fail(start, "unterminated string literal")
}

func (l *Lexer) consumeRegExpToken() TokenType {
	// assume to be on /
	start := l.r.Offset()
	l.r.Move(1)
	inClass := false
	for {
		c := l.r.Peek(0)
		if !inClass && c == '/' {
			l.r.Move(1)
			break
		} else if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '\\' {
			l.r.Move(1)
			if l.atLineTerminator() || l.atEOF() {
				return l.fail(start, "unterminated regular expression")
			}
			_, n := l.r.PeekRune(0)
			l.r.Move(n)
			continue
		} else if l.atLineTerminator() || l.atEOF() {
			return l.fail(start, "unterminated regular expression")
		}
		l.r.Move(1)
	}

	// flags
	flagStart := l.r.Offset()
	for {
		c := l.r.Peek(0)
		if identifierTable[c] {
			if 0xC0 <= c {
				if r, n := l.r.PeekRune(0); r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r) {
					l.r.Move(n)
				} else {
					break
				}
			} else {
				l.r.Move(1)
			}
		} else if c == '\\' {
			return l.fail(l.r.Offset(), "invalid regular expression flags")
		} else {
			break
		}
	}
	if i, msg := validateRegExpFlags(l.r.Bytes()[flagStart:l.r.Offset()], l.experimental); i != -1 {
		return l.fail(flagStart+i, msg)
	}
	return RegExpToken
}

func (l *Lexer) consumeTemplateToken(continuation bool) TokenType {
	// assume to be on ` or } when already within template
	start := l.r.Offset()
	l.r.Move(1)
	for {
		c := l.r.Peek(0)
		if c == '`' {
			l.r.Move(1)
			if continuation {
				return TemplateEndToken
			}
			return TemplateToken
		} else if c == '$' && l.r.Peek(1) == '{' {
			l.r.Move(2)
			if continuation {
				return TemplateMiddleToken
			}
			return TemplateStartToken
		} else if c == '\\' {
			l.r.Move(1)
			if l.atEOF() {
				break
			}
			_, n := l.r.PeekRune(0)
			l.r.Move(n)
			continue
		} else if l.atEOF() {
			break
		}
		l.r.Move(1)
	}
	return l.fail(start, "unterminated template literal")
}

var identifierTable = [256]bool{
	// ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	true, true, true, true, true, true, true, true, // 0, 1, 2, 3, 4, 5, 6, 7
	true, true, false, false, false, false, false, false, // 8, 9

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z

	// non-ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,

	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true,
}

////////////////////////////////////////////////////////////////

// NextJSXTag returns the next token inside a JSX tag, skipping whitespace and comments. Identifiers may contain dashes
// and strings have no escape sequences.
func (l *Lexer) NextJSXTag() (TokenType, []byte) {
	l.escaped = false
	for {
		if l.consumeWhitespaceByte() || l.consumeWhitespaceRune() || l.consumeLineTerminator() {
			continue
		} else if l.r.Peek(0) == '/' && (l.r.Peek(1) == '/' || l.r.Peek(1) == '*') {
			if l.consumeCommentToken() == ErrorToken {
				return ErrorToken, nil
			}
			continue
		}
		break
	}
	l.r.Skip()

	c := l.r.Peek(0)
	switch c {
	case '<', '>', '/', '=', '{', '}', '.', ':':
		l.r.Move(1)
		return jsxTagTokens[c], l.r.Shift()
	case '"', '\'':
		start := l.r.Offset()
		l.r.Move(1)
		for {
			if d := l.r.Peek(0); d == c {
				l.r.Move(1)
				return StringToken, l.r.Shift()
			} else if l.atEOF() {
				return l.fail(start, "unterminated string literal"), nil
			}
			l.r.Move(1)
		}
	}
	if l.atEOF() {
		return ErrorToken, nil
	} else if tt := l.consumeIdentifierToken(); tt != ErrorToken {
		if l.escaped {
			return l.fail(l.r.Offset()-l.r.Pos(), "unicode escapes are not allowed in JSX names"), nil
		}
		for {
			if c := l.r.Peek(0); c == '-' || c < 0xC0 && identifierTable[c] {
				l.r.Move(1)
			} else if r, n := l.r.PeekRune(0); 0xC0 <= c && unicode.IsOneOf(identifierContinue, r) {
				l.r.Move(n)
			} else {
				break
			}
		}
		return IdentifierToken, l.r.Shift()
	} else if l.err != nil {
		return ErrorToken, nil
	}
	r, _ := l.r.PeekRune(0)
	return l.fail(l.r.Offset(), "unexpected character %q in JSX tag", r), nil
}

// NextJSXChild returns the next token between JSX tags: a less than sign, an opening brace or text.
func (l *Lexer) NextJSXChild() (TokenType, []byte) {
	l.escaped = false
	l.r.Skip()
	switch l.r.Peek(0) {
	case '<':
		l.r.Move(1)
		return LtToken, l.r.Shift()
	case '{':
		l.r.Move(1)
		return OpenBraceToken, l.r.Shift()
	}
	for {
		c := l.r.Peek(0)
		if c == '<' || c == '{' || l.atEOF() {
			break
		} else if c == '>' || c == '}' {
			return l.fail(l.r.Offset(), "unexpected token %q in JSX text, did you mean {'%c'}", c, c), nil
		}
		l.r.Move(1)
	}
	if l.r.Pos() == 0 {
		return ErrorToken, nil
	}
	return JSXTextToken, l.r.Shift()
}

var jsxTagTokens = map[byte]TokenType{
	'<': LtToken,
	'>': GtToken,
	'/': DivToken,
	'=': EqToken,
	'{': OpenBraceToken,
	'}': CloseBraceToken,
	'.': DotToken,
	':': ColonToken,
}
