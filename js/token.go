package js

import "strconv"

// TokenType determines the type of token, eg. a number or a semicolon.
type TokenType uint32

// TokenType values.
const (
	ErrorToken TokenType = iota // extra token when errors occur
	WhitespaceToken
	LineTerminatorToken // \r \n \r\n U+2028 U+2029
	CommentToken
	CommentLineTerminatorToken // block comment containing a line terminator
	StringToken
	TemplateToken       // `...` without substitutions
	TemplateStartToken  // `...${
	TemplateMiddleToken // }...${
	TemplateEndToken    // }...`
	RegExpToken
	PrivateIdentifierToken // #name
	JSXTextToken
)

// Numeric token types.
const (
	NumericToken TokenType = 0x0100 + iota
	DecimalToken
	BinaryToken
	OctalToken
	HexadecimalToken
	LegacyOctalToken // 017 and 089
	BigIntToken
)

// Punctuator token types.
const (
	PunctuatorToken   TokenType = 0x1000 + iota
	OpenBraceToken              // {
	CloseBraceToken             // }
	OpenParenToken              // (
	CloseParenToken             // )
	OpenBracketToken            // [
	CloseBracketToken           // ]
	DotToken                    // .
	SemicolonToken              // ;
	CommaToken                  // ,
	QuestionToken               // ?
	ColonToken                  // :
	ArrowToken                  // =>
	EllipsisToken               // ...
	OptChainToken               // ?.
)

// Operator token types.
const (
	OperatorToken  TokenType = 0x3000 + iota
	EqToken                  // =
	EqEqToken                // ==
	EqEqEqToken              // ===
	NotToken                 // !
	NotEqToken               // !=
	NotEqEqToken             // !==
	LtToken                  // <
	LtEqToken                // <=
	LtLtToken                // <<
	LtLtEqToken              // <<=
	GtToken                  // >
	GtEqToken                // >=
	GtGtToken                // >>
	GtGtEqToken              // >>=
	GtGtGtToken              // >>>
	GtGtGtEqToken            // >>>=
	AddToken                 // +
	AddEqToken               // +=
	IncrToken                // ++
	SubToken                 // -
	SubEqToken               // -=
	DecrToken                // --
	MulToken                 // *
	MulEqToken               // *=
	ExpToken                 // **
	ExpEqToken               // **=
	DivToken                 // /
	DivEqToken               // /=
	ModToken                 // %
	ModEqToken               // %=
	BitAndToken              // &
	BitOrToken               // |
	BitXorToken              // ^
	BitNotToken              // ~
	BitAndEqToken            // &=
	BitOrEqToken             // |=
	BitXorEqToken            // ^=
	AndToken                 // &&
	OrToken                  // ||
	NullishToken             // ??
	AndEqToken               // &&=
	OrEqToken                // ||=
	NullishEqToken           // ??=
)

// Identifier names that are not reserved words. Contextual keywords have their own type so the parser can
// recognise them, but they remain valid identifiers wherever the grammar allows.
const (
	IdentifierToken TokenType = 0x4000 + iota
	AsToken
	AsyncToken
	AwaitToken
	FromToken
	GetToken
	LetToken
	MetaToken
	OfToken
	SetToken
	StaticToken
	TargetToken
	YieldToken
	ImplementsToken
	InterfaceToken
	PackageToken
	PrivateToken
	ProtectedToken
	PublicToken
)

// Reserved words.
const (
	ReservedToken TokenType = 0xC000 + iota
	BreakToken
	CaseToken
	CatchToken
	ClassToken
	ConstToken
	ContinueToken
	DebuggerToken
	DefaultToken
	DeleteToken
	DoToken
	ElseToken
	EnumToken
	ExportToken
	ExtendsToken
	FalseToken
	FinallyToken
	ForToken
	FunctionToken
	IfToken
	ImportToken
	InToken
	InstanceofToken
	NewToken
	NullToken
	ReturnToken
	SuperToken
	SwitchToken
	ThisToken
	ThrowToken
	TrueToken
	TryToken
	TypeofToken
	VarToken
	VoidToken
	WhileToken
	WithToken
)

// IsNumeric returns true if the token is a numeric literal.
func IsNumeric(tt TokenType) bool {
	return tt&0xFF00 == 0x0100
}

// IsPunctuator returns true if the token is a punctuator or an operator.
func IsPunctuator(tt TokenType) bool {
	return tt&0x1000 != 0
}

// IsOperator returns true if the token is an operator.
func IsOperator(tt TokenType) bool {
	return tt&0x2000 != 0
}

// IsIdentifierName returns true if the token is an identifier name, which includes reserved words.
func IsIdentifierName(tt TokenType) bool {
	return tt&0x4000 != 0
}

// IsReservedWord returns true if the token is a reserved word.
func IsReservedWord(tt TokenType) bool {
	return tt&0xC000 == 0xC000
}

// IsIdentifier returns true if the token is an identifier or a contextual keyword.
func IsIdentifier(tt TokenType) bool {
	return tt&0xC000 == 0x4000
}

// Keywords maps words to their token type.
var Keywords = map[string]TokenType{
	"as":         AsToken,
	"async":      AsyncToken,
	"await":      AwaitToken,
	"break":      BreakToken,
	"case":       CaseToken,
	"catch":      CatchToken,
	"class":      ClassToken,
	"const":      ConstToken,
	"continue":   ContinueToken,
	"debugger":   DebuggerToken,
	"default":    DefaultToken,
	"delete":     DeleteToken,
	"do":         DoToken,
	"else":       ElseToken,
	"enum":       EnumToken,
	"export":     ExportToken,
	"extends":    ExtendsToken,
	"false":      FalseToken,
	"finally":    FinallyToken,
	"for":        ForToken,
	"from":       FromToken,
	"function":   FunctionToken,
	"get":        GetToken,
	"if":         IfToken,
	"implements": ImplementsToken,
	"import":     ImportToken,
	"in":         InToken,
	"instanceof": InstanceofToken,
	"interface":  InterfaceToken,
	"let":        LetToken,
	"meta":       MetaToken,
	"new":        NewToken,
	"null":       NullToken,
	"of":         OfToken,
	"package":    PackageToken,
	"private":    PrivateToken,
	"protected":  ProtectedToken,
	"public":     PublicToken,
	"return":     ReturnToken,
	"set":        SetToken,
	"static":     StaticToken,
	"super":      SuperToken,
	"switch":     SwitchToken,
	"target":     TargetToken,
	"this":       ThisToken,
	"throw":      ThrowToken,
	"true":       TrueToken,
	"try":        TryToken,
	"typeof":     TypeofToken,
	"var":        VarToken,
	"void":       VoidToken,
	"while":      WhileToken,
	"with":       WithToken,
	"yield":      YieldToken,
}

var keywordNames = func() map[TokenType]string {
	m := make(map[TokenType]string, len(Keywords))
	for name, tt := range Keywords {
		m[tt] = name
	}
	return m
}()

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	switch tt {
	case ErrorToken:
		return "Error"
	case WhitespaceToken:
		return "Whitespace"
	case LineTerminatorToken:
		return "LineTerminator"
	case CommentToken:
		return "Comment"
	case CommentLineTerminatorToken:
		return "CommentLineTerminator"
	case StringToken:
		return "String"
	case TemplateToken:
		return "Template"
	case TemplateStartToken:
		return "TemplateStart"
	case TemplateMiddleToken:
		return "TemplateMiddle"
	case TemplateEndToken:
		return "TemplateEnd"
	case RegExpToken:
		return "RegExp"
	case PrivateIdentifierToken:
		return "PrivateIdentifier"
	case JSXTextToken:
		return "JSXText"
	case NumericToken:
		return "Numeric"
	case DecimalToken:
		return "Decimal"
	case BinaryToken:
		return "Binary"
	case OctalToken:
		return "Octal"
	case HexadecimalToken:
		return "Hexadecimal"
	case LegacyOctalToken:
		return "LegacyOctal"
	case BigIntToken:
		return "BigInt"
	case PunctuatorToken:
		return "Punctuator"
	case OpenBraceToken:
		return "{"
	case CloseBraceToken:
		return "}"
	case OpenParenToken:
		return "("
	case CloseParenToken:
		return ")"
	case OpenBracketToken:
		return "["
	case CloseBracketToken:
		return "]"
	case DotToken:
		return "."
	case SemicolonToken:
		return ";"
	case CommaToken:
		return ","
	case QuestionToken:
		return "?"
	case ColonToken:
		return ":"
	case ArrowToken:
		return "=>"
	case EllipsisToken:
		return "..."
	case OptChainToken:
		return "?."
	case OperatorToken:
		return "Operator"
	case EqToken:
		return "="
	case EqEqToken:
		return "=="
	case EqEqEqToken:
		return "==="
	case NotToken:
		return "!"
	case NotEqToken:
		return "!="
	case NotEqEqToken:
		return "!=="
	case LtToken:
		return "<"
	case LtEqToken:
		return "<="
	case LtLtToken:
		return "<<"
	case LtLtEqToken:
		return "<<="
	case GtToken:
		return ">"
	case GtEqToken:
		return ">="
	case GtGtToken:
		return ">>"
	case GtGtEqToken:
		return ">>="
	case GtGtGtToken:
		return ">>>"
	case GtGtGtEqToken:
		return ">>>="
	case AddToken:
		return "+"
	case AddEqToken:
		return "+="
	case IncrToken:
		return "++"
	case SubToken:
		return "-"
	case SubEqToken:
		return "-="
	case DecrToken:
		return "--"
	case MulToken:
		return "*"
	case MulEqToken:
		return "*="
	case ExpToken:
		return "**"
	case ExpEqToken:
		return "**="
	case DivToken:
		return "/"
	case DivEqToken:
		return "/="
	case ModToken:
		return "%"
	case ModEqToken:
		return "%="
	case BitAndToken:
		return "&"
	case BitOrToken:
		return "|"
	case BitXorToken:
		return "^"
	case BitNotToken:
		return "~"
	case BitAndEqToken:
		return "&="
	case BitOrEqToken:
		return "|="
	case BitXorEqToken:
		return "^="
	case AndToken:
		return "&&"
	case OrToken:
		return "||"
	case NullishToken:
		return "??"
	case AndEqToken:
		return "&&="
	case OrEqToken:
		return "||="
	case NullishEqToken:
		return "??="
	case IdentifierToken:
		return "Identifier"
	case ReservedToken:
		return "Reserved"
	}
	if name, ok := keywordNames[tt]; ok {
		return name
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}
