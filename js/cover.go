package js

import (
	"reflect"

	"github.com/esparse/parse"
)

// coverErrors records constructs that are only valid when an object or array literal is reinterpreted as a pattern.
// An offset of -1 means the construct was not seen.
type coverErrors struct {
	shorthandAssign int // {a = 1}
	doubleProto     int // {__proto__: a, __proto__: b}
}

func newCoverErrors() *coverErrors {
	return &coverErrors{shorthandAssign: -1, doubleProto: -1}
}

// checkCover fails if the expression that was parsed stays an expression while it contains pattern-only constructs.
func (p *Parser) checkCover(ce *coverErrors) bool {
	if ce == nil || p.err != nil {
		return p.err == nil
	} else if ce.shorthandAssign != -1 {
		p.failAt(parse.SyntaxError, ce.shorthandAssign, "shorthand property assignments are valid only in destructuring patterns")
		return false
	} else if ce.doubleProto != -1 {
		p.failEarly(ce.doubleProto, "redefinition of __proto__ property")
		return false
	}
	return true
}

////////////////////////////////////////////////////////////////

type bindingMode int

// Binding modes of a reinterpreted expression.
const (
	assignTarget  bindingMode = iota // left-hand side of an assignment or for-in/of head, member expressions allowed
	bindingTarget                    // arrow function parameter, only identifiers and patterns
)

func (mode bindingMode) String() string {
	if mode == assignTarget {
		return "assignment"
	}
	return "binding"
}

// coverError is an expression that cannot be reinterpreted as a pattern.
type coverError struct {
	offset  int
	message string
}

func (p *Parser) failCover(err *coverError) {
	p.failEarly(err.offset, err.message)
}

func invalidTarget(n INode, mode bindingMode) *coverError {
	return &coverError{n.base().Start, n.base().Type + " is not a valid " + mode.String() + " target"}
}

// retype gives dst the span of src and the type name of dst.
func retype(dst, src INode) {
	b := dst.base()
	*b = *src.base()
	b.Type = reflect.TypeOf(dst).Elem().Name()
}

// toBinding reinterprets an expression as an assignment or binding target. Object and array literals are converted
// into patterns and assignments into default values.
func (p *Parser) toBinding(ctx Context, n INode, mode bindingMode) (IBinding, *coverError) {
	switch n := n.(type) {
	case *Identifier:
		if mode == bindingTarget && n.Parenthesized() {
			return nil, invalidTarget(n, mode)
		} else if mode == assignTarget && ctx.has(ctxStrict) && (n.Name == "eval" || n.Name == "arguments") {
			return nil, &coverError{n.Start, "assignment to '" + n.Name + "' in strict mode"}
		}
		return n, nil
	case *MemberExpression:
		if mode == bindingTarget || n.Optional {
			return nil, invalidTarget(n, mode)
		}
		return n, nil
	case *ArrayExpression:
		if n.Parenthesized() {
			return nil, invalidTarget(n, mode)
		}
		pattern := &ArrayPattern{Elements: make([]IBinding, len(n.Elements))}
		for i, elem := range n.Elements {
			if elem == nil {
				continue
			}
			if spread, ok := elem.(*SpreadElement); ok {
				if i != len(n.Elements)-1 {
					return nil, &coverError{spread.Start, "rest element must be last element"}
				} else if n.trailingComma != 0 {
					return nil, &coverError{n.trailingComma, "comma is not permitted after the rest element"}
				}
				rest, err := p.toRest(ctx, spread, mode, true)
				if err != nil {
					return nil, err
				}
				pattern.Elements[i] = rest
				continue
			}
			binding, err := p.toBinding(ctx, elem, mode)
			if err != nil {
				return nil, err
			}
			pattern.Elements[i] = binding
		}
		retype(pattern, n)
		return pattern, nil
	case *ObjectExpression:
		if n.Parenthesized() {
			return nil, invalidTarget(n, mode)
		}
		pattern := &ObjectPattern{Properties: make([]INode, len(n.Properties))}
		for i, prop := range n.Properties {
			switch prop := prop.(type) {
			case *Property:
				if prop.Method || prop.Kind != "init" {
					return nil, &coverError{prop.Start, "object pattern can't contain getter, setter or method"}
				}
				binding, err := p.toBinding(ctx, prop.Value, mode)
				if err != nil {
					return nil, err
				}
				prop.Value = binding
				pattern.Properties[i] = prop
			case *SpreadElement:
				if i != len(n.Properties)-1 {
					return nil, &coverError{prop.Start, "rest element must be last element"}
				} else if n.trailingComma != 0 {
					return nil, &coverError{n.trailingComma, "comma is not permitted after the rest element"}
				}
				rest, err := p.toRest(ctx, prop, mode, false)
				if err != nil {
					return nil, err
				}
				pattern.Properties[i] = rest
			}
		}
		retype(pattern, n)
		return pattern, nil
	case *AssignmentExpression:
		if n.Operator != "=" || n.Parenthesized() {
			return nil, invalidTarget(n, mode)
		}
		left, err := p.toBinding(ctx, n.Left, mode)
		if err != nil {
			return nil, err
		}
		pattern := &AssignmentPattern{Left: left, Right: n.Right}
		retype(pattern, n)
		return pattern, nil
	case *AssignmentPattern:
		// shorthand property with a default value, or an assignment that was converted already
		if mode == bindingTarget {
			if _, err := p.toBinding(ctx, n.Left, mode); err != nil {
				return nil, err
			}
		}
		return n, nil
	case *ArrayPattern:
		if mode == bindingTarget {
			for _, elem := range n.Elements {
				if elem == nil {
					continue
				} else if _, err := p.toBinding(ctx, elem, mode); err != nil {
					return nil, err
				}
			}
		}
		return n, nil
	case *ObjectPattern:
		if mode == bindingTarget {
			for _, prop := range n.Properties {
				if _, err := p.toBinding(ctx, prop, mode); err != nil {
					return nil, err
				}
			}
		}
		return n, nil
	case *Property:
		if _, err := p.toBinding(ctx, n.Value, mode); err != nil {
			return nil, err
		}
		return nil, nil
	case *RestElement:
		if mode == bindingTarget {
			if _, err := p.toBinding(ctx, n.Argument, mode); err != nil {
				return nil, err
			}
		}
		return n, nil
	}
	return nil, invalidTarget(n, mode)
}

// toRest converts a spread element into a rest element. Rest elements of object patterns only hold simple targets.
func (p *Parser) toRest(ctx Context, spread *SpreadElement, mode bindingMode, array bool) (*RestElement, *coverError) {
	if _, ok := spread.Argument.(*AssignmentExpression); ok {
		return nil, &coverError{spread.Argument.base().Start, "rest elements cannot have a default value"}
	}
	if !array {
		switch spread.Argument.(type) {
		case *Identifier, *MemberExpression:
		default:
			return nil, invalidTarget(spread.Argument, mode)
		}
	}
	arg, err := p.toBinding(ctx, spread.Argument, mode)
	if err != nil {
		return nil, err
	}
	rest := &RestElement{Argument: arg}
	retype(rest, spread)
	return rest, nil
}

// toParams converts the items of a parenthesized expression or the arguments of an async call into arrow function parameters.
func (p *Parser) toParams(ctx Context, items []IExpr, trailingComma int) ([]IBinding, *coverError) {
	params := make([]IBinding, 0, len(items))
	for i, item := range items {
		if spread, ok := item.(*SpreadElement); ok {
			if i != len(items)-1 {
				return nil, &coverError{spread.Start, "rest parameter must be last formal parameter"}
			} else if trailingComma != 0 {
				return nil, &coverError{trailingComma, "comma is not permitted after the rest element"}
			}
			rest, err := p.toRest(ctx, spread, bindingTarget, true)
			if err != nil {
				return nil, err
			}
			params = append(params, rest)
			continue
		}
		param, err := p.toBinding(ctx, item, bindingTarget)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}
