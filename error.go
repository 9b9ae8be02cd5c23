// Package parse contains the input, error and position handling shared by the parsers in its subpackages.
package parse // import "github.com/esparse/parse"

import (
	"fmt"
)

// ErrorKind classifies an Error by the phase that detected it.
type ErrorKind int

// ErrorKind values.
const (
	SyntaxError  ErrorKind = iota // token sequence that matches no production
	LexicalError                  // malformed token
	EarlyError                    // well-formed syntax rejected by a static semantic rule
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case LexicalError:
		return "LexicalError"
	case EarlyError:
		return "EarlyError"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a parsing error returned by the parser. It contains a message and the offset at which the error
// occurred, together with its line, column and the line of source for context.
type Error struct {
	Kind    ErrorKind
	Message string
	Offset  int
	Line    int
	Column  int
	Context string
}

// NewError creates a new error at the offset of the input.
func NewError(r *Input, kind ErrorKind, offset int, message string, a ...interface{}) *Error {
	if 0 < len(a) {
		message = fmt.Sprintf(message, a...)
	}
	line, column, context := Position(r.Bytes(), offset)
	return &Error{
		Kind:    kind,
		Message: message,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Context: context,
	}
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s on line %d and column %d\n%s", e.Kind, e.Message, e.Line, e.Column, e.Context)
}
