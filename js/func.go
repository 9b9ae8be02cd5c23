package js

import "github.com/esparse/parse"

// parseFunctionStmt parses a function declaration in statement position. In sloppy mode with the legacy web forms,
// plain functions are also allowed as the body of an if or labelled statement. For async functions the async keyword
// has been consumed.
func (p *Parser) parseFunctionStmt(ctx Context, pos stmtPos, start int, async bool) IStmt {
	if !pos.allowsDeclaration() {
		next, _, _ := p.l.Peek()
		if async || next == MulToken || pos != ifStmt && pos != labelStmt || !ctx.sloppyWebCompat() {
			p.failAt(parse.SyntaxError, start, "function declarations are not allowed in this position")
			return nil
		}
	}
	if decl := p.parseFunctionDecl(ctx, pos, start, async, false); decl != nil {
		return decl
	}
	return nil
}

// parseFunctionDecl parses a function declaration, the name is optional for export default.
func (p *Parser) parseFunctionDecl(ctx Context, pos stmtPos, start int, async, optionalName bool) *FunctionDeclaration {
	p.next() // function
	generator := false
	if p.tt == MulToken {
		generator = true
		p.next()
	}

	var id *Identifier
	if !optionalName || p.tt != OpenParenToken {
		if id = p.parseBindingIdentifier(ctx); id == nil {
			return nil
		}
		if pos != ifStmt {
			kind := bindFunction
			if !ctx.sloppyWebCompat() || generator || async {
				kind = bindLexical
				if p.functionsAsVar(p.scope) {
					kind = bindVar
				}
			}
			p.declareName(id.Name, kind, id.Start)
			if p.err != nil {
				return nil
			}
		}
	}

	fn := p.parseFunction(ctx.function(async, generator), id)
	if fn == nil {
		return nil
	}
	decl := &FunctionDeclaration{Function: *fn}
	p.finish(decl, start)
	return decl
}

func (p *Parser) parseFunctionExpr(ctx Context, start int, async bool) IExpr {
	p.next() // function
	generator := false
	if p.tt == MulToken {
		generator = true
		p.next()
	}

	fctx := ctx.function(async, generator)
	var id *Identifier
	if p.tt != OpenParenToken {
		if id = p.parseBindingIdentifier(fctx); id == nil {
			return nil
		}
	}
	fn := p.parseFunction(fctx, id)
	if fn == nil {
		return nil
	}
	expr := &FunctionExpression{Function: *fn}
	p.finish(expr, start)
	return expr
}

// parseFunction parses the parameters and body of a function declaration or expression in its own scope.
func (p *Parser) parseFunction(fctx Context, id *Identifier) *Function {
	p.enterScope(scopeFunction)
	defer p.exitScope()
	labels := p.labels
	p.labels = nil
	defer func() { p.labels = labels }()

	fs := newFuncState(id)
	params := p.parseParams(fctx.with(ctxParams), fs)
	if p.err != nil {
		return nil
	}
	body := p.parseFunctionBody(fctx, fs)
	if body == nil {
		return nil
	}
	return &Function{
		ID:        id,
		Params:    params,
		Body:      body,
		Generator: fctx.has(ctxYield),
		Async:     fctx.has(ctxAwait),
	}
}

// parseParams parses a parenthesized parameter list and declares the bound names.
func (p *Parser) parseParams(ctx Context, fs *funcState) []IBinding {
	if !p.consume("function parameters", OpenParenToken) {
		return nil
	}
	params := []IBinding{}
	for p.tt != CloseParenToken {
		if p.tt == EllipsisToken {
			rest := p.parseRestElement(ctx, true)
			if rest == nil {
				return nil
			}
			params = append(params, rest)
			if p.tt == CommaToken {
				p.failAt(parse.SyntaxError, p.start, "comma is not permitted after the rest element")
				return nil
			}
			break
		}
		param := p.parseBindingElement(ctx)
		if p.err != nil {
			return nil
		}
		params = append(params, param)
		if p.tt != CloseParenToken && !p.consume("function parameters", CommaToken) {
			return nil
		}
	}
	if !p.consume("function parameters", CloseParenToken) {
		return nil
	}
	p.declareParams(fs, params)
	return params
}

func (p *Parser) parseFunctionBody(ctx Context, fs *funcState) *BlockStatement {
	start := p.start
	if !p.consume("function body", OpenBraceToken) {
		return nil
	}
	list, _ := p.parseBody(ctx, fs, listStmt)
	if p.err != nil || !p.consume("function body", CloseBraceToken) {
		return nil
	}
	body := &BlockStatement{Body: list}
	p.finish(body, start)
	return body
}

// parseArrow parses the body of an arrow function, the current token is the arrow.
func (p *Parser) parseArrow(ctx Context, start int, params []IBinding, async bool) IExpr {
	p.next() // =>
	p.enterScope(scopeFunction)
	defer p.exitScope()
	labels := p.labels
	p.labels = nil
	defer func() { p.labels = labels }()

	fs := newFuncState(nil)
	fs.arrow = true
	fs.async = async
	p.declareParams(fs, params)
	if p.err != nil {
		return nil
	}

	actx := ctx.arrow(async)
	arrow := &ArrowFunctionExpression{Params: params, Async: async}
	if p.tt == OpenBraceToken {
		body := p.parseFunctionBody(actx, fs)
		if body == nil {
			return nil
		}
		arrow.Body = body
	} else {
		if !ctx.has(ctxAllowIn) {
			actx = actx.without(ctxAllowIn)
		}
		if p.checkParams(actx, fs); p.err != nil {
			return nil
		}
		body := p.parseAssignExpr(actx, nil)
		if p.err != nil {
			return nil
		}
		arrow.Body = body
		arrow.Expression = true
	}
	p.finish(arrow, start)
	return arrow
}

// parseMethod parses the parameters and body of an object or class method, starting at the opening parenthesis.
func (p *Parser) parseMethod(ctx Context, kind string, async, generator, constructor, derived bool) *FunctionExpression {
	start := p.start
	mctx := ctx.method(async, generator, constructor, derived)

	p.enterScope(scopeFunction)
	defer p.exitScope()
	labels := p.labels
	p.labels = nil
	defer func() { p.labels = labels }()

	fs := newFuncState(nil)
	fs.method = true
	params := p.parseParams(mctx.with(ctxParams), fs)
	if p.err != nil {
		return nil
	}
	switch kind {
	case "get":
		if len(params) != 0 {
			p.failEarly(start, "getter must not have any formal parameters")
			return nil
		}
	case "set":
		if len(params) != 1 {
			p.failEarly(start, "setter must have exactly one formal parameter")
			return nil
		} else if _, ok := params[0].(*RestElement); ok {
			p.failEarly(params[0].base().Start, "setter function argument must not be a rest parameter")
			return nil
		}
	}
	body := p.parseFunctionBody(mctx, fs)
	if body == nil {
		return nil
	}
	fn := &FunctionExpression{Function: Function{Params: params, Body: body, Generator: generator, Async: async}}
	p.finish(fn, start)
	return fn
}

////////////////////////////////////////////////////////////////

// parseClassDecl parses a class declaration, the name is optional for export default.
func (p *Parser) parseClassDecl(ctx Context, optionalName bool) IStmt {
	start := p.start
	p.next()
	var id *Identifier
	if IsIdentifier(p.tt) || !optionalName {
		if id = p.parseBindingIdentifier(ctx.with(ctxStrict)); id == nil {
			return nil
		}
		if p.declareName(id.Name, bindLexical, id.Start); p.err != nil {
			return nil
		}
	}
	superClass, body := p.parseClassTail(ctx)
	if body == nil {
		return nil
	}
	decl := &ClassDeclaration{Class: Class{ID: id, SuperClass: superClass, Body: body}}
	p.finish(decl, start)
	return decl
}

func (p *Parser) parseClassExpr(ctx Context) IExpr {
	start := p.start
	p.next()
	var id *Identifier
	if IsIdentifier(p.tt) {
		if id = p.parseBindingIdentifier(ctx.with(ctxStrict)); id == nil {
			return nil
		}
	}
	superClass, body := p.parseClassTail(ctx)
	if body == nil {
		return nil
	}
	expr := &ClassExpression{Class: Class{ID: id, SuperClass: superClass, Body: body}}
	p.finish(expr, start)
	return expr
}

// parseClassTail parses the optional heritage and the body of a class, which are strict mode code.
func (p *Parser) parseClassTail(ctx Context) (IExpr, *ClassBody) {
	ctx = ctx.with(ctxStrict)
	var superClass IExpr
	if p.tt == ExtendsToken {
		p.next()
		p.potentialArrowAt = -1
		if superClass = p.parseLHS(ctx, nil); p.err != nil {
			return nil, nil
		}
	}
	return superClass, p.parseClassBody(ctx.classBody(), superClass != nil)
}

func (p *Parser) parseClassBody(ctx Context, derived bool) *ClassBody {
	if !p.enter() {
		return nil
	}
	defer p.exit()

	start := p.start
	if !p.consume("class body", OpenBraceToken) {
		return nil
	}
	p.enterPrivateScope()
	body := &ClassBody{Body: []INode{}}
	hasConstructor := false
	for p.tt != CloseBraceToken {
		if p.tt == SemicolonToken {
			p.next()
			continue
		}
		elem := p.parseClassElement(ctx, derived, &hasConstructor)
		if p.err != nil {
			return nil
		}
		body.Body = append(body.Body, elem)
	}
	p.next() // }
	if p.exitPrivateScope(); p.err != nil {
		return nil
	}
	p.finish(body, start)
	return body
}

func (p *Parser) parseClassElement(ctx Context, derived bool, hasConstructor *bool) INode {
	start := p.start
	static := false
	if p.isContextual(StaticToken) {
		next, _, _ := p.l.Peek()
		if next == OpenBraceToken {
			return p.parseStaticBlock(ctx)
		} else if isPropertyKeyStart(next, true) || next == MulToken {
			static = true
			p.next()
		}
	}

	kind := "method"
	async, generator := false, false
	if p.isContextual(AsyncToken) {
		if next, _, lt := p.l.Peek(); !lt && (isPropertyKeyStart(next, true) || next == MulToken) {
			async = true
			p.next()
		}
	}
	if p.tt == MulToken {
		generator = true
		p.next()
	}
	if !async && !generator && (p.isContextual(GetToken) || p.isContextual(SetToken)) {
		if next, _, _ := p.l.Peek(); isPropertyKeyStart(next, true) {
			kind = string(p.data)
			p.next()
		}
	}

	keyStart := p.start
	var key IExpr
	computed, private := false, false
	if p.tt == PrivateIdentifierToken {
		key = p.parsePrivateIdentifier()
		private = true
	} else if key, computed = p.parsePropertyKey(ctx); p.err != nil {
		return nil
	}
	name := ""
	if private {
		name = key.(*PrivateIdentifier).Name
	} else if !computed {
		name = propertyName(key)
	}

	if p.tt == OpenParenToken || kind != "method" || async || generator {
		constructor := !static && !private && !computed && name == "constructor"
		if constructor {
			if kind != "method" {
				p.failEarly(keyStart, "class constructor may not be an accessor")
				return nil
			} else if async {
				p.failEarly(keyStart, "class constructor may not be an async method")
				return nil
			} else if generator {
				p.failEarly(keyStart, "class constructor may not be a generator")
				return nil
			} else if *hasConstructor {
				p.failEarly(keyStart, "a class may only have one constructor")
				return nil
			}
			*hasConstructor = true
			kind = "constructor"
		} else if static && !private && !computed && name == "prototype" {
			p.failEarly(keyStart, "classes may not have a static property named 'prototype'")
			return nil
		}
		if private {
			privKind := privateMethod
			if kind == "get" {
				privKind = privateGetter
			} else if kind == "set" {
				privKind = privateSetter
			}
			if p.declarePrivateName(name, privKind, static, keyStart); p.err != nil {
				return nil
			}
		}

		fn := p.parseMethod(ctx, kind, async, generator, constructor, derived)
		if fn == nil {
			return nil
		}
		method := &MethodDefinition{Key: key, Value: fn, Kind: kind, Computed: computed, Static: static}
		p.finish(method, start)
		return method
	}

	if !private && !computed && name == "constructor" {
		p.failEarly(keyStart, "classes may not have a field named 'constructor'")
		return nil
	} else if static && !private && !computed && name == "prototype" {
		p.failEarly(keyStart, "classes may not have a static property named 'prototype'")
		return nil
	} else if private {
		if p.declarePrivateName(name, privateField, static, keyStart); p.err != nil {
			return nil
		}
	}

	field := &PropertyDefinition{Key: key, Computed: computed, Static: static}
	if p.tt == EqToken {
		p.next()
		p.enterScope(scopeFunction)
		labels := p.labels
		p.labels = nil
		value := p.parseAssignExpr(ctx.fieldInitializer(), nil)
		p.labels = labels
		p.exitScope()
		if p.err != nil {
			return nil
		}
		field.Value = value
	}
	p.semicolon("class field")
	if p.err != nil {
		return nil
	}
	p.finish(field, start)
	return field
}

func (p *Parser) parseStaticBlock(ctx Context) INode {
	start := p.start
	p.next() // static
	if !p.consume("static block", OpenBraceToken) {
		return nil
	}
	p.enterScope(scopeFunction)
	labels := p.labels
	p.labels = nil
	list := p.parseStmtList(ctx.staticBlock())
	p.labels = labels
	p.exitScope()
	if p.err != nil || !p.consume("static block", CloseBraceToken) {
		return nil
	}
	block := &StaticBlock{Body: list}
	p.finish(block, start)
	return block
}
