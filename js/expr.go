package js

import "github.com/esparse/parse"

func (p *Parser) parseExpr(ctx Context, ce *coverErrors) IExpr {
	start := p.start
	expr := p.parseAssignExpr(ctx, ce)
	if p.err != nil {
		return nil
	} else if p.tt != CommaToken {
		return expr
	}
	seq := &SequenceExpression{Expressions: []IExpr{expr}}
	for p.tt == CommaToken {
		p.next()
		expr := p.parseAssignExpr(ctx, ce)
		if p.err != nil {
			return nil
		}
		seq.Expressions = append(seq.Expressions, expr)
	}
	p.finish(seq, start)
	return seq
}

// parseAssignExpr parses an assignment expression. When ce is nil, object literals that are only valid as patterns
// fail once it is clear the expression is not reinterpreted. Otherwise they are recorded for the caller to decide.
func (p *Parser) parseAssignExpr(ctx Context, ce *coverErrors) IExpr {
	if !p.enter() {
		return nil
	}
	defer p.exit()

	if p.tt == YieldToken && ctx.has(ctxYield) && !p.escaped {
		return p.parseYield(ctx)
	}

	own := ce == nil
	oldDoubleProto := -1
	if own {
		ce = newCoverErrors()
	} else {
		oldDoubleProto = ce.doubleProto
		ce.doubleProto = -1
	}

	start := p.start
	p.potentialArrowAt = start
	left := p.parseConditional(ctx, ce)
	if p.err != nil {
		return nil
	}

	if AssignOps[p.tt] {
		op := p.tt
		var target IBinding
		if op == EqToken {
			binding, err := p.toBinding(ctx, left, assignTarget)
			if err != nil {
				p.failCover(err)
				return nil
			}
			target = binding
			if !own {
				ce.doubleProto = -1
			}
			if start <= ce.shorthandAssign {
				ce.shorthandAssign = -1
			}
		} else {
			if !p.checkCover(ce) || !p.checkSimpleTarget(ctx, left, start) {
				return nil
			}
			target = left.(IBinding)
		}
		p.next()
		right := p.parseAssignExpr(ctx, nil)
		if p.err != nil {
			return nil
		}
		if oldDoubleProto != -1 {
			ce.doubleProto = oldDoubleProto
		}
		expr := &AssignmentExpression{Operator: op.String(), Left: target, Right: right}
		p.finish(expr, start)
		return expr
	}

	if own && !p.checkCover(ce) {
		return nil
	} else if oldDoubleProto != -1 {
		ce.doubleProto = oldDoubleProto
	}
	return left
}

func (p *Parser) parseYield(ctx Context) IExpr {
	start := p.start
	if ctx.has(ctxParams) {
		p.failEarly(start, "yield expression not allowed in formal parameters")
		return nil
	}
	p.next()
	expr := &YieldExpression{}
	if !p.prevLT {
		if p.tt == MulToken {
			expr.Delegate = true
			p.next()
			expr.Argument = p.parseAssignExpr(ctx, nil)
		} else if startsExpr(p.tt) {
			expr.Argument = p.parseAssignExpr(ctx, nil)
		}
		if p.err != nil {
			return nil
		}
	}
	p.finish(expr, start)
	return expr
}

func (p *Parser) parseConditional(ctx Context, ce *coverErrors) IExpr {
	start := p.start
	test := p.parseBinary(ctx, ce, OpCoalesce)
	if p.err != nil {
		return nil
	} else if p.tt != QuestionToken || isBareArrow(test) {
		return test
	} else if !p.checkCover(ce) {
		return nil
	}
	p.next()
	consequent := p.parseAssignExpr(ctx.with(ctxAllowIn), nil)
	if p.err != nil || !p.consume("conditional expression", ColonToken) {
		return nil
	}
	alternate := p.parseAssignExpr(ctx, nil)
	if p.err != nil {
		return nil
	}
	expr := &ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
	p.finish(expr, start)
	return expr
}

// parseBinary parses binary operators with a precedence of at least minPrec.
func (p *Parser) parseBinary(ctx Context, ce *coverErrors, minPrec OpPrec) IExpr {
	start := p.start
	var left IExpr
	if p.tt == PrivateIdentifierToken {
		// #x in obj
		if next, _, _ := p.l.Peek(); next != InToken || !ctx.has(ctxAllowIn) || OpCompare < minPrec {
			p.fail("expression")
			return nil
		}
		id := p.parsePrivateIdentifier()
		p.usePrivateName(id.Name, id.Start)
		left = id
	} else {
		left = p.parseUnary(ctx, ce)
	}
	if p.err != nil {
		return nil
	} else if isBareArrow(left) {
		return left
	}

	for {
		prec, ok := BinaryPrec[p.tt]
		if !ok || prec < minPrec || p.tt == InToken && !ctx.has(ctxAllowIn) {
			return left
		} else if !p.checkCover(ce) {
			return nil
		}
		op, opStart := p.tt, p.start
		if _, ok := left.(*PrivateIdentifier); ok && op != InToken {
			p.fail("expression")
			return nil
		} else if op == ExpToken && !left.base().Parenthesized() {
			switch left.(type) {
			case *UnaryExpression, *AwaitExpression:
				p.failAt(parse.SyntaxError, opStart, "unparenthesized unary expression can't appear on the left-hand side of '**'")
				return nil
			}
		}
		p.next()

		var right IExpr
		if op == ExpToken {
			right = p.parseBinary(ctx, nil, OpExp)
		} else {
			right = p.parseBinary(ctx, nil, prec+1)
		}
		if p.err != nil {
			return nil
		}

		if logicalOps[op] {
			if mixesCoalesce(op, left) || mixesCoalesce(op, right) {
				p.failAt(parse.SyntaxError, opStart, "cannot mix '??' with '&&' or '||' without parentheses")
				return nil
			}
			expr := &LogicalExpression{Operator: op.String(), Left: left, Right: right}
			p.finish(expr, start)
			left = expr
		} else {
			expr := &BinaryExpression{Operator: op.String(), Left: left, Right: right}
			p.finish(expr, start)
			left = expr
		}
	}
}

func (p *Parser) parsePrivateIdentifier() *PrivateIdentifier {
	start := p.start
	name := string(p.data[1:])
	if p.escaped {
		if decoded, ok := decodeIdentifier(p.data[1:]); ok {
			name = string(decoded)
		}
	}
	id := &PrivateIdentifier{Name: name}
	p.next()
	p.finish(id, start)
	return id
}

func (p *Parser) parseUnary(ctx Context, ce *coverErrors) IExpr {
	if !p.enter() {
		return nil
	}
	defer p.exit()

	start := p.start
	if unaryOps[p.tt] {
		op := p.tt
		p.next()
		arg := p.parseUnary(ctx, nil)
		if p.err != nil {
			return nil
		}
		if op == DeleteToken {
			if id, ok := arg.(*Identifier); ok && ctx.has(ctxStrict) {
				p.failEarly(start, "deleting local variable '%s' in strict mode", id.Name)
				return nil
			} else if isPrivateMember(arg) {
				p.failEarly(start, "private fields can not be deleted")
				return nil
			}
		}
		expr := &UnaryExpression{Operator: op.String(), Prefix: true, Argument: arg}
		p.finish(expr, start)
		return expr
	} else if p.tt == IncrToken || p.tt == DecrToken {
		op := p.tt
		p.next()
		argStart := p.start
		arg := p.parseUnary(ctx, nil)
		if p.err != nil || !p.checkSimpleTarget(ctx, arg, argStart) {
			return nil
		}
		expr := &UpdateExpression{Operator: op.String(), Prefix: true, Argument: arg}
		p.finish(expr, start)
		return expr
	} else if p.tt == AwaitToken && !p.escaped && ctx.has(ctxAwait) {
		return p.parseAwait(ctx)
	}

	expr := p.parseLHS(ctx, ce)
	if p.err != nil {
		return nil
	} else if (p.tt == IncrToken || p.tt == DecrToken) && !p.prevLT && !isBareArrow(expr) {
		if !p.checkCover(ce) || !p.checkSimpleTarget(ctx, expr, start) {
			return nil
		}
		update := &UpdateExpression{Operator: p.tt.String(), Argument: expr}
		p.next()
		p.finish(update, start)
		return update
	}
	return expr
}

func (p *Parser) parseAwait(ctx Context) IExpr {
	start := p.start
	if ctx.has(ctxParams) {
		p.failEarly(start, "await expression not allowed in formal parameters")
		return nil
	}
	p.next()
	arg := p.parseUnary(ctx, nil)
	if p.err != nil {
		return nil
	}
	expr := &AwaitExpression{Argument: arg}
	p.finish(expr, start)
	return expr
}

// parseLHS parses a left-hand side expression: a primary expression followed by member accesses, calls and tagged templates.
func (p *Parser) parseLHS(ctx Context, ce *coverErrors) IExpr {
	start := p.start
	var expr IExpr
	switch p.tt {
	case NewToken:
		expr = p.parseNew(ctx)
	case SuperToken:
		expr = p.parseSuper(ctx)
	case ImportToken:
		expr = p.parseImportExpr(ctx)
	default:
		expr = p.parsePrimary(ctx, ce)
	}
	if p.err != nil {
		return nil
	} else if isBareArrow(expr) {
		return expr
	}
	return p.parseSubscripts(ctx, ce, expr, start, false)
}

// parseSubscripts parses member accesses, calls and tagged templates following expr. Optional chains are wrapped in a
// ChainExpression. Calls are not parsed in the callee of a new expression.
func (p *Parser) parseSubscripts(ctx Context, ce *coverErrors, expr IExpr, start int, noCall bool) IExpr {
	chain := false
	for {
		switch p.tt {
		case DotToken:
			if !p.checkCover(ce) {
				return nil
			}
			p.next()
			prop := p.parseMemberName()
			if prop == nil {
				return nil
			}
			member := &MemberExpression{Object: expr, Property: prop}
			p.finish(member, start)
			expr = member
		case OpenBracketToken:
			if !p.checkCover(ce) {
				return nil
			}
			p.next()
			prop := p.parseExpr(ctx.with(ctxAllowIn), nil)
			if p.err != nil || !p.consume("member expression", CloseBracketToken) {
				return nil
			}
			member := &MemberExpression{Object: expr, Property: prop, Computed: true}
			p.finish(member, start)
			expr = member
		case TemplateToken, TemplateStartToken:
			if chain {
				p.failAt(parse.SyntaxError, p.start, "invalid tagged template on optional chain")
				return nil
			} else if !p.checkCover(ce) {
				return nil
			}
			quasi := p.parseTemplate(ctx, true)
			if p.err != nil {
				return nil
			}
			tagged := &TaggedTemplateExpression{Tag: expr, Quasi: quasi}
			p.finish(tagged, start)
			expr = tagged
		case OpenParenToken:
			if noCall {
				return expr
			} else if !p.checkCover(ce) {
				return nil
			}
			args, _ := p.parseArguments(ctx, nil)
			if p.err != nil {
				return nil
			}
			call := &CallExpression{Callee: expr, Arguments: args}
			p.finish(call, start)
			expr = call
		case OptChainToken:
			if noCall {
				p.failAt(parse.SyntaxError, p.start, "invalid optional chain from new expression")
				return nil
			} else if !p.checkCover(ce) {
				return nil
			}
			chain = true
			p.next()
			switch p.tt {
			case OpenParenToken:
				args, _ := p.parseArguments(ctx, nil)
				if p.err != nil {
					return nil
				}
				call := &CallExpression{Callee: expr, Arguments: args, Optional: true}
				p.finish(call, start)
				expr = call
			case OpenBracketToken:
				p.next()
				prop := p.parseExpr(ctx.with(ctxAllowIn), nil)
				if p.err != nil || !p.consume("optional chain", CloseBracketToken) {
					return nil
				}
				member := &MemberExpression{Object: expr, Property: prop, Computed: true, Optional: true}
				p.finish(member, start)
				expr = member
			case TemplateToken, TemplateStartToken:
				p.failAt(parse.SyntaxError, p.start, "invalid tagged template on optional chain")
				return nil
			default:
				prop := p.parseMemberName()
				if prop == nil {
					return nil
				}
				member := &MemberExpression{Object: expr, Property: prop, Optional: true}
				p.finish(member, start)
				expr = member
			}
		default:
			if chain {
				wrapped := &ChainExpression{Expression: expr}
				p.finish(wrapped, start)
				return wrapped
			}
			return expr
		}
	}
}

// parseMemberName parses the property name after a dot, which is any identifier name or a private name.
func (p *Parser) parseMemberName() IExpr {
	if p.tt == PrivateIdentifierToken {
		id := p.parsePrivateIdentifier()
		p.usePrivateName(id.Name, id.Start)
		if p.err != nil {
			return nil
		}
		return id
	} else if !IsIdentifierName(p.tt) {
		p.fail("member expression")
		return nil
	}
	start := p.start
	id := &Identifier{Name: p.name()}
	p.next()
	p.finish(id, start)
	return id
}

// parseArguments parses a parenthesized argument list. It returns the offset of a trailing comma that follows a final
// spread element, or 0.
func (p *Parser) parseArguments(ctx Context, ce *coverErrors) ([]IExpr, int) {
	p.next() // (
	args := []IExpr{}
	trailingComma := 0
	for p.tt != CloseParenToken {
		var arg IExpr
		if p.tt == EllipsisToken {
			start := p.start
			p.next()
			argument := p.parseAssignExpr(ctx.with(ctxAllowIn), ce)
			if p.err != nil {
				return nil, 0
			}
			spread := &SpreadElement{Argument: argument}
			p.finish(spread, start)
			arg = spread
		} else if arg = p.parseAssignExpr(ctx.with(ctxAllowIn), ce); p.err != nil {
			return nil, 0
		}
		args = append(args, arg)
		if p.tt == CloseParenToken {
			break
		} else if !p.consume("arguments", CommaToken) {
			return nil, 0
		}
		if _, ok := arg.(*SpreadElement); ok && p.tt == CloseParenToken {
			trailingComma = p.prevEnd - 1
		}
	}
	if !p.consume("arguments", CloseParenToken) {
		return nil, 0
	}
	return args, trailingComma
}

func (p *Parser) parseNew(ctx Context) IExpr {
	if !p.enter() {
		return nil
	}
	defer p.exit()

	start := p.start
	p.next()
	if p.tt == DotToken {
		p.next()
		if !p.isContextual(TargetToken) {
			p.fail("new.target", TargetToken)
			return nil
		} else if !ctx.has(ctxNewTarget) {
			p.failEarly(start, "'new.target' can only be used in functions and class static blocks")
			return nil
		}
		meta := &Identifier{Name: "new"}
		p.finishAt(meta, start, start+3)
		prop := &Identifier{Name: "target"}
		p.next()
		p.finish(prop, p.prevEnd-6)
		expr := &MetaProperty{Meta: meta, Property: prop}
		p.finish(expr, start)
		return expr
	}

	calleeStart := p.start
	var callee IExpr
	switch p.tt {
	case NewToken:
		callee = p.parseNew(ctx)
	case SuperToken:
		callee = p.parseSuper(ctx)
	case ImportToken:
		if next, _, _ := p.l.Peek(); next == OpenParenToken {
			p.failAt(parse.SyntaxError, calleeStart, "cannot use new with import(...)")
			return nil
		}
		callee = p.parseImportExpr(ctx)
	default:
		p.potentialArrowAt = -1
		callee = p.parsePrimary(ctx, nil)
	}
	if p.err != nil {
		return nil
	}
	callee = p.parseSubscripts(ctx, nil, callee, calleeStart, true)
	if p.err != nil {
		return nil
	}
	args := []IExpr{}
	if p.tt == OpenParenToken {
		if args, _ = p.parseArguments(ctx, nil); p.err != nil {
			return nil
		}
	}
	expr := &NewExpression{Callee: callee, Arguments: args}
	p.finish(expr, start)
	return expr
}

func (p *Parser) parseSuper(ctx Context) IExpr {
	start := p.start
	p.next()
	switch p.tt {
	case OpenParenToken:
		if !ctx.has(ctxSuperCall) {
			p.failEarly(start, "'super' keyword unexpected here")
			return nil
		}
	case DotToken, OpenBracketToken:
		if !ctx.has(ctxSuperProperty) {
			p.failEarly(start, "'super' keyword unexpected here")
			return nil
		}
	default:
		p.failAt(parse.SyntaxError, start, "'super' keyword unexpected here")
		return nil
	}
	expr := &Super{}
	p.finish(expr, start)
	return expr
}

// parseImportExpr parses import.meta or a dynamic import.
func (p *Parser) parseImportExpr(ctx Context) IExpr {
	start := p.start
	p.next()
	if p.tt == DotToken {
		p.next()
		if !p.isContextual(MetaToken) {
			p.fail("import.meta", MetaToken)
			return nil
		} else if !ctx.has(ctxModule) {
			p.failEarly(start, "cannot use 'import.meta' outside a module")
			return nil
		}
		meta := &Identifier{Name: "import"}
		p.finishAt(meta, start, start+6)
		prop := &Identifier{Name: "meta"}
		p.next()
		p.finish(prop, p.prevEnd-4)
		expr := &MetaProperty{Meta: meta, Property: prop}
		p.finish(expr, start)
		return expr
	} else if !p.consume("import expression", OpenParenToken) {
		return nil
	}

	source := p.parseAssignExpr(ctx.with(ctxAllowIn), nil)
	if p.err != nil {
		return nil
	}
	var options IExpr
	if p.tt == CommaToken && ctx.has(ctxExperimental) {
		p.next()
		if p.tt != CloseParenToken {
			if options = p.parseAssignExpr(ctx.with(ctxAllowIn), nil); p.err != nil {
				return nil
			}
			if p.tt == CommaToken {
				p.next()
			}
		}
	}
	if !p.consume("import expression", CloseParenToken) {
		return nil
	}
	expr := &ImportExpression{Source: source, Options: options}
	p.finish(expr, start)
	return expr
}

func (p *Parser) parsePrimary(ctx Context, ce *coverErrors) IExpr {
	start := p.start
	canArrow := p.potentialArrowAt == start
	switch p.tt {
	case ThisToken:
		p.next()
		expr := &ThisExpression{}
		p.finish(expr, start)
		return expr
	case NullToken, TrueToken, FalseToken:
		var value interface{}
		if p.tt != NullToken {
			value = p.tt == TrueToken
		}
		lit := p.newLiteral(value, string(p.data))
		p.next()
		p.finish(lit, start)
		return lit
	case StringToken:
		if lit := p.parseStringLiteral(ctx); lit != nil {
			return lit
		}
		return nil
	case DivToken, DivEqToken:
		if lit := p.parseRegExpLiteral(); lit != nil {
			return lit
		}
		return nil
	case TemplateToken, TemplateStartToken:
		if tmpl := p.parseTemplate(ctx, false); tmpl != nil {
			return tmpl
		}
		return nil
	case OpenBracketToken:
		return p.parseArrayLiteral(ctx, ce)
	case OpenBraceToken:
		return p.parseObjectLiteral(ctx, ce)
	case OpenParenToken:
		return p.parseParenOrArrow(ctx, canArrow)
	case FunctionToken:
		return p.parseFunctionExpr(ctx, start, false)
	case ClassToken:
		return p.parseClassExpr(ctx)
	case LtToken:
		if ctx.has(ctxJSX) {
			return p.parseJSX(ctx)
		}
	case AsyncToken:
		if !p.escaped {
			next, _, lt := p.l.Peek()
			if next == FunctionToken && !lt {
				p.next()
				return p.parseFunctionExpr(ctx, start, true)
			} else if canArrow && IsIdentifier(next) && !lt {
				// async x => ...
				p.next()
				param := p.parseBindingIdentifier(ctx.with(ctxAwait))
				if param == nil {
					return nil
				} else if p.tt != ArrowToken || p.prevLT {
					p.fail("async arrow function", ArrowToken)
					return nil
				}
				return p.parseArrow(ctx, start, []IBinding{param}, true)
			} else if canArrow && next == OpenParenToken && !lt {
				return p.parseAsyncCallOrArrow(ctx)
			}
		}
	}
	if IsNumeric(p.tt) {
		if lit := p.parseNumericLiteral(ctx); lit != nil {
			return lit
		}
		return nil
	} else if !IsIdentifier(p.tt) {
		p.fail("expression")
		return nil
	}

	id := p.parseIdentifierReference(ctx)
	if id == nil {
		return nil
	} else if canArrow && p.tt == ArrowToken && !p.prevLT {
		return p.parseArrow(ctx, start, []IBinding{id}, false)
	}
	return id
}

// parseAsyncCallOrArrow parses async(...), which is a call unless an arrow follows.
func (p *Parser) parseAsyncCallOrArrow(ctx Context) IExpr {
	start := p.start
	callee := &Identifier{Name: "async"}
	p.next()
	p.finish(callee, start)

	ce := newCoverErrors()
	args, trailingComma := p.parseArguments(ctx, ce)
	if p.err != nil {
		return nil
	}
	if p.tt == ArrowToken && !p.prevLT {
		params, err := p.toParams(ctx, args, trailingComma)
		if err != nil {
			p.failCover(err)
			return nil
		} else if !p.checkArrowParams(params, true) {
			return nil
		}
		return p.parseArrow(ctx, start, params, true)
	} else if !p.checkCover(ce) {
		return nil
	}
	call := &CallExpression{Callee: callee, Arguments: args}
	p.finish(call, start)
	return call
}

// parseParenOrArrow parses a parenthesized expression, or the parameters of an arrow function when an arrow follows.
func (p *Parser) parseParenOrArrow(ctx Context, canArrow bool) IExpr {
	start := p.start
	p.next()
	innerStart := p.start

	ce := newCoverErrors()
	items := []IExpr{}
	var rest *RestElement
	trailingComma := -1
	for p.tt != CloseParenToken {
		if p.tt == EllipsisToken {
			if rest = p.parseRestElement(ctx, true); rest == nil {
				return nil
			} else if p.tt != CloseParenToken {
				if p.tt == CommaToken {
					p.failAt(parse.SyntaxError, p.start, "comma is not permitted after the rest element")
				} else {
					p.fail("arrow function parameters", CloseParenToken)
				}
				return nil
			}
			break
		}
		item := p.parseAssignExpr(ctx.with(ctxAllowIn), ce)
		if p.err != nil {
			return nil
		}
		items = append(items, item)
		if p.tt == CloseParenToken {
			break
		} else if !p.consume("parenthesized expression", CommaToken) {
			return nil
		} else if p.tt == CloseParenToken {
			trailingComma = p.prevEnd - 1
		}
	}
	innerEnd := p.prevEnd
	p.next() // )

	if canArrow && p.tt == ArrowToken && !p.prevLT {
		params, err := p.toParams(ctx, items, 0)
		if err != nil {
			p.failCover(err)
			return nil
		}
		if rest != nil {
			params = append(params, rest)
		}
		if !p.checkArrowParams(params, false) {
			return nil
		}
		return p.parseArrow(ctx, start, params, false)
	}

	if len(items) == 0 || rest != nil || trailingComma != -1 {
		p.fail("parenthesized expression", ArrowToken)
		return nil
	} else if !p.checkCover(ce) {
		return nil
	}
	var expr IExpr
	if len(items) == 1 {
		expr = items[0]
	} else {
		seq := &SequenceExpression{Expressions: items}
		p.finishAt(seq, innerStart, innerEnd)
		expr = seq
	}
	expr.base().parens++
	return expr
}

func (p *Parser) parseArrayLiteral(ctx Context, ce *coverErrors) IExpr {
	start := p.start
	p.next()
	array := &ArrayExpression{Elements: []IExpr{}}
	for p.tt != CloseBracketToken {
		if p.tt == CommaToken {
			array.Elements = append(array.Elements, nil)
			p.next()
			continue
		}

		var elem IExpr
		if p.tt == EllipsisToken {
			spreadStart := p.start
			p.next()
			arg := p.parseAssignExpr(ctx.with(ctxAllowIn), ce)
			if p.err != nil {
				return nil
			}
			spread := &SpreadElement{Argument: arg}
			p.finish(spread, spreadStart)
			elem = spread
		} else if elem = p.parseAssignExpr(ctx.with(ctxAllowIn), ce); p.err != nil {
			return nil
		}
		array.Elements = append(array.Elements, elem)
		if p.tt == CloseBracketToken {
			break
		} else if !p.consume("array literal", CommaToken) {
			return nil
		}
		if _, ok := elem.(*SpreadElement); ok && p.tt == CloseBracketToken {
			array.trailingComma = p.prevEnd - 1
		}
	}
	p.next() // ]
	p.finish(array, start)
	return array
}

func (p *Parser) parseObjectLiteral(ctx Context, ce *coverErrors) IExpr {
	start := p.start
	p.next()
	object := &ObjectExpression{Properties: []INode{}}
	hasProto := false
	for p.tt != CloseBraceToken {
		var prop INode
		if p.tt == EllipsisToken {
			spreadStart := p.start
			p.next()
			arg := p.parseAssignExpr(ctx.with(ctxAllowIn), ce)
			if p.err != nil {
				return nil
			}
			spread := &SpreadElement{Argument: arg}
			p.finish(spread, spreadStart)
			prop = spread
		} else {
			property := p.parseProperty(ctx, ce)
			if property == nil {
				return nil
			}
			if isProtoProperty(property) {
				if hasProto {
					if ce == nil {
						p.failEarly(property.Key.base().Start, "redefinition of __proto__ property")
						return nil
					} else if ce.doubleProto == -1 {
						ce.doubleProto = property.Key.base().Start
					}
				}
				hasProto = true
			}
			prop = property
		}
		object.Properties = append(object.Properties, prop)
		if p.tt == CloseBraceToken {
			break
		} else if !p.consume("object literal", CommaToken) {
			return nil
		}
		if _, ok := prop.(*SpreadElement); ok && p.tt == CloseBraceToken {
			object.trailingComma = p.prevEnd - 1
		}
	}
	p.next() // }
	p.finish(object, start)
	return object
}

// isPropertyKeyStart returns true if the token can start a property name, which decides whether get, set, async or
// static is a modifier or the name itself.
func isPropertyKeyStart(tt TokenType, class bool) bool {
	return IsIdentifierName(tt) || IsNumeric(tt) || tt == StringToken || tt == OpenBracketToken || class && tt == PrivateIdentifierToken
}

func (p *Parser) parseProperty(ctx Context, ce *coverErrors) *Property {
	start := p.start
	kind := "init"
	async, generator := false, false
	if p.tt == MulToken {
		generator = true
		p.next()
	} else if p.isContextual(GetToken) || p.isContextual(SetToken) || p.isContextual(AsyncToken) {
		next, _, lt := p.l.Peek()
		if p.tt == AsyncToken {
			if !lt && (isPropertyKeyStart(next, false) || next == MulToken) {
				async = true
				p.next()
				if p.tt == MulToken {
					generator = true
					p.next()
				}
			}
		} else if isPropertyKeyStart(next, false) {
			kind = string(p.data)
			p.next()
		}
	}

	keyStart, keyTT, keyName := p.start, p.tt, p.name()
	key, computed := p.parsePropertyKey(ctx)
	if p.err != nil {
		return nil
	}
	prop := &Property{Key: key, Kind: kind, Computed: computed}
	if kind != "init" || async || generator || p.tt == OpenParenToken {
		fn := p.parseMethod(ctx, kind, async, generator, false, false)
		if fn == nil {
			return nil
		}
		prop.Value = fn
		prop.Method = kind == "init"
	} else if p.tt == ColonToken {
		p.next()
		value := p.parseAssignExpr(ctx.with(ctxAllowIn), ce)
		if p.err != nil {
			return nil
		}
		prop.Value = value
	} else if !computed && IsIdentifier(keyTT) {
		if !p.checkIdentifier(ctx, keyName, keyStart) {
			return nil
		}
		prop.Shorthand = true
		value := p.copyIdentifier(key.(*Identifier))
		if p.tt == EqToken {
			if ce == nil {
				p.failAt(parse.SyntaxError, p.start, "shorthand property assignments are valid only in destructuring patterns")
				return nil
			} else if ce.shorthandAssign == -1 {
				ce.shorthandAssign = p.start
			}
			p.next()
			right := p.parseAssignExpr(ctx.with(ctxAllowIn), nil)
			if p.err != nil {
				return nil
			}
			assign := &AssignmentPattern{Left: value, Right: right}
			p.finish(assign, keyStart)
			prop.Value = assign
		} else {
			prop.Value = value
		}
	} else {
		p.fail("object literal", ColonToken)
		return nil
	}
	p.finish(prop, start)
	return prop
}

// parsePropertyKey parses an identifier name, string, number or computed property name.
func (p *Parser) parsePropertyKey(ctx Context) (IExpr, bool) {
	start := p.start
	switch {
	case p.tt == OpenBracketToken:
		p.next()
		key := p.parseAssignExpr(ctx.with(ctxAllowIn), nil)
		if p.err != nil || !p.consume("computed property name", CloseBracketToken) {
			return nil, true
		}
		return key, true
	case p.tt == StringToken:
		if lit := p.parseStringLiteral(ctx); lit != nil {
			return lit, false
		}
		return nil, false
	case IsNumeric(p.tt):
		if lit := p.parseNumericLiteral(ctx); lit != nil {
			return lit, false
		}
		return nil, false
	case IsIdentifierName(p.tt):
		id := &Identifier{Name: p.name()}
		p.next()
		p.finish(id, start)
		return id, false
	}
	p.fail("property name")
	return nil, false
}
