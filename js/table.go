package js

// OpPrec is the operator precedence.
type OpPrec int

// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_Precedence
const (
	OpEnd OpPrec = iota
	OpComma
	OpYield
	OpAssign
	OpCond
	OpOr
	OpAnd
	OpBitOr
	OpBitXor
	OpBitAnd
	OpEquals
	OpCompare
	OpShift
	OpAdd
	OpMul
	OpExp
	OpUnary
	OpUpdate
	OpLHS
	OpCall
	OpNew
	OpMember
	OpPrimary
)

// OpCoalesce is the precedence of ??, which shares its level with || as mixing them without parentheses is not allowed.
const OpCoalesce = OpOr

// BinaryPrec is the precedence of binary operators.
var BinaryPrec = map[TokenType]OpPrec{
	NullishToken:    OpCoalesce,
	OrToken:         OpOr,
	AndToken:        OpAnd,
	BitOrToken:      OpBitOr,
	BitXorToken:     OpBitXor,
	BitAndToken:     OpBitAnd,
	EqEqToken:       OpEquals,
	NotEqToken:      OpEquals,
	EqEqEqToken:     OpEquals,
	NotEqEqToken:    OpEquals,
	LtToken:         OpCompare,
	GtToken:         OpCompare,
	LtEqToken:       OpCompare,
	GtEqToken:       OpCompare,
	InstanceofToken: OpCompare,
	InToken:         OpCompare,
	LtLtToken:       OpShift,
	GtGtToken:       OpShift,
	GtGtGtToken:     OpShift,
	AddToken:        OpAdd,
	SubToken:        OpAdd,
	MulToken:        OpMul,
	DivToken:        OpMul,
	ModToken:        OpMul,
	ExpToken:        OpExp,
}

// AssignOps are the assignment operators.
var AssignOps = map[TokenType]bool{
	EqToken:        true,
	AddEqToken:     true,
	SubEqToken:     true,
	MulEqToken:     true,
	DivEqToken:     true,
	ModEqToken:     true,
	ExpEqToken:     true,
	LtLtEqToken:    true,
	GtGtEqToken:    true,
	GtGtGtEqToken:  true,
	BitAndEqToken:  true,
	BitOrEqToken:   true,
	BitXorEqToken:  true,
	AndEqToken:     true,
	OrEqToken:      true,
	NullishEqToken: true,
}

// logicalOps are the binary operators producing a LogicalExpression.
var logicalOps = map[TokenType]bool{
	AndToken:     true,
	OrToken:      true,
	NullishToken: true,
}

// unaryOps are the prefix operators producing a UnaryExpression.
var unaryOps = map[TokenType]bool{
	NotToken:    true,
	BitNotToken: true,
	AddToken:    true,
	SubToken:    true,
	TypeofToken: true,
	VoidToken:   true,
	DeleteToken: true,
}
