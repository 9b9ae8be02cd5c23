package js

import "github.com/esparse/parse"

// strictReserved are the identifiers that are reserved words in strict mode code only.
var strictReserved = map[string]bool{
	"implements": true,
	"interface":  true,
	"let":        true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"static":     true,
	"yield":      true,
}

// checkIdentifier validates an identifier used as a reference, label or binding.
func (p *Parser) checkIdentifier(ctx Context, name string, offset int) bool {
	if tt, ok := Keywords[name]; ok && IsReservedWord(tt) {
		p.failAt(parse.SyntaxError, offset, "unexpected reserved word '%s'", name)
		return false
	}
	switch name {
	case "yield":
		if ctx.has(ctxYield) {
			p.failEarly(offset, "cannot use 'yield' as an identifier in a generator")
			return false
		}
	case "await":
		if ctx.has(ctxAwait) || ctx.has(ctxModule) {
			p.failEarly(offset, "cannot use 'await' as an identifier in an async function or module")
			return false
		} else if ctx.has(ctxStaticBlock) {
			p.failEarly(offset, "cannot use 'await' as an identifier in a class static block")
			return false
		}
	case "arguments":
		if ctx.has(ctxClassField) || ctx.has(ctxStaticBlock) {
			p.failEarly(offset, "'arguments' is not allowed in class field initializers or static blocks")
			return false
		}
	}
	if ctx.has(ctxStrict) && strictReserved[name] {
		p.failEarly(offset, "unexpected strict mode reserved word '%s'", name)
		return false
	}
	return true
}

// checkBinding validates an identifier that is declared.
func (p *Parser) checkBinding(ctx Context, name string, offset int) bool {
	if !p.checkIdentifier(ctx, name, offset) {
		return false
	} else if ctx.has(ctxStrict) && (name == "eval" || name == "arguments") {
		p.failEarly(offset, "binding '%s' in strict mode", name)
		return false
	}
	return true
}

// checkSimpleTarget validates the operand of an update expression or compound assignment.
func (p *Parser) checkSimpleTarget(ctx Context, expr IExpr, offset int) bool {
	switch n := expr.(type) {
	case *Identifier:
		if ctx.has(ctxStrict) && (n.Name == "eval" || n.Name == "arguments") {
			p.failEarly(offset, "assignment to '%s' in strict mode", n.Name)
			return false
		}
		return true
	case *MemberExpression:
		return true
	}
	p.failEarly(offset, "%s is not a valid assignment target", expr.base().Type)
	return false
}

////////////////////////////////////////////////////////////////

// funcState holds what is needed to validate parameters once the directive prologue of the body is known.
type funcState struct {
	id     *Identifier // name of a function declaration or expression
	params []*Identifier
	simple bool // only plain identifiers without defaults or rest
	arrow  bool
	method bool
	async  bool
}

func newFuncState(id *Identifier) *funcState {
	return &funcState{id: id, simple: true}
}

// declareParams declares the names bound by the parameters in the function scope.
func (p *Parser) declareParams(fs *funcState, params []IBinding) {
	for _, param := range params {
		if _, ok := param.(*Identifier); !ok {
			fs.simple = false
		}
		for _, id := range boundNames(param) {
			fs.params = append(fs.params, id)
			p.declareName(id.Name, bindVar, id.Start)
		}
	}
}

// checkParams validates the function name and parameters with the strictness of the body. Duplicate parameters are only
// allowed in sloppy mode functions with simple parameter lists.
func (p *Parser) checkParams(ctx Context, fs *funcState) {
	if fs == nil || p.err != nil {
		return
	}
	if fs.id != nil && ctx.has(ctxStrict) {
		if !p.checkBinding(ctx.without(ctxYield|ctxAwait), fs.id.Name, fs.id.Start) {
			return
		}
	}
	allowDuplicates := !ctx.has(ctxStrict) && fs.simple && !fs.arrow && !fs.method
	seen := make(map[string]bool, len(fs.params))
	for _, id := range fs.params {
		if !p.checkBinding(ctx, id.Name, id.Start) {
			return
		} else if seen[id.Name] && !allowDuplicates {
			p.failEarly(id.Start, "duplicate parameter name '%s' not allowed in this context", id.Name)
			return
		}
		seen[id.Name] = true
	}
}

// boundNames returns the identifiers declared by a binding pattern, in source order.
func boundNames(n INode) []*Identifier {
	var ids []*Identifier
	var collect func(INode)
	collect = func(n INode) {
		switch n := n.(type) {
		case *Identifier:
			ids = append(ids, n)
		case *ArrayPattern:
			for _, elem := range n.Elements {
				if elem != nil {
					collect(elem)
				}
			}
		case *ObjectPattern:
			for _, prop := range n.Properties {
				collect(prop)
			}
		case *Property:
			collect(n.Value)
		case *AssignmentPattern:
			collect(n.Left)
		case *RestElement:
			collect(n.Argument)
		case *VariableDeclaration:
			for _, d := range n.Declarations {
				collect(d.ID)
			}
		case *FunctionDeclaration:
			if n.ID != nil {
				ids = append(ids, n.ID)
			}
		case *ClassDeclaration:
			if n.ID != nil {
				ids = append(ids, n.ID)
			}
		}
	}
	collect(n)
	return ids
}

// paramExprFinder looks for yield and await expressions in arrow function parameters.
type paramExprFinder struct {
	node  INode
	async bool
}

func (v *paramExprFinder) Enter(n INode) IVisitor {
	if v.node != nil {
		return nil
	}
	switch n := n.(type) {
	case *YieldExpression, *AwaitExpression:
		v.node = n
		return nil
	case *Identifier:
		if v.async && n.Name == "await" {
			v.node = n
		}
		return nil
	case *FunctionExpression, *ArrowFunctionExpression, *ClassExpression:
		return nil
	}
	return v
}

// checkArrowParams fails when arrow function parameters contain yield or await expressions, or await as an identifier
// in async arrow functions.
func (p *Parser) checkArrowParams(params []IBinding, async bool) bool {
	v := &paramExprFinder{async: async}
	for _, param := range params {
		Walk(v, param)
	}
	switch n := v.node.(type) {
	case *YieldExpression:
		p.failEarly(n.Start, "yield expression not allowed in formal parameters")
		return false
	case *AwaitExpression:
		p.failEarly(n.Start, "await expression not allowed in formal parameters")
		return false
	case *Identifier:
		p.failEarly(n.Start, "cannot use 'await' as an identifier in an async function or module")
		return false
	}
	return true
}
