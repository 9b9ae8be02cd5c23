package js

import (
	"io"

	"github.com/esparse/parse"
)

// DefaultMaxDepth is the nesting depth of statements and expressions allowed when Options.MaxDepth is zero.
const DefaultMaxDepth = 1024

// Options are the parser options.
type Options struct {
	StrictByDefault             bool // parse scripts as strict mode code
	RecordSourceLocations       bool // set the loc field of every node
	RecordRawLiteralText        bool // set the raw field of literals
	EnableExperimentalSyntax    bool // import attributes, dynamic import options and the regular expression v flag
	DisableLegacyWebCompatForms bool // reject the legacy forms of sloppy mode web browsers
	TreatInputAsModule          bool // parse with the module goal
	JSX                         bool // parse JSX elements
	MaxDepth                    int  // maximum nesting depth, defaults to DefaultMaxDepth
}

// Parser is the state for the parser.
type Parser struct {
	r     *parse.Input
	l     *Lexer
	o     Options
	err   error
	lines *parse.LineIndex

	tt      TokenType
	data    []byte
	start   int  // offset of the current token
	prevEnd int  // end offset of the previous token
	prevLT  bool // a line terminator precedes the current token
	escaped bool // the current identifier contains unicode escapes

	depth            int
	potentialArrowAt int

	scope   *scope
	private *privateScope
	labels  []label
	exports map[string]bool
	locals  []*Identifier // names exported without a source, which must be declared
}

// Parse returns an ESTree syntax tree of a script or module.
func Parse(r *parse.Input, o Options) (*Program, error) {
	p, ctx := newParser(r, o)
	p.next()
	program := p.parseProgram(ctx)
	if p.err != nil {
		return nil, p.err
	}
	return program, nil
}

// ParseExpr returns an ESTree syntax tree of a single expression.
func ParseExpr(r *parse.Input, o Options) (IExpr, error) {
	p, ctx := newParser(r, o)
	p.next()
	expr := p.parseExpr(ctx, nil)
	if p.tt != ErrorToken {
		p.fail("expression")
	}
	if p.err != nil {
		return nil, p.err
	}
	return expr, nil
}

func newParser(r *parse.Input, o Options) (*Parser, Context) {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	l := NewLexer(r)
	l.htmlComments = !o.TreatInputAsModule && !o.DisableLegacyWebCompatForms
	l.experimental = o.EnableExperimentalSyntax

	p := &Parser{
		r:                r,
		l:                l,
		o:                o,
		tt:               WhitespaceToken, // trick so that next() works
		potentialArrowAt: -1,
		exports:          map[string]bool{},
	}
	if o.RecordSourceLocations {
		p.lines = parse.NewLineIndex(r.Bytes())
	}
	p.enterScope(scopeTop | scopeFunction)

	ctx := ctxAllowIn
	if o.TreatInputAsModule {
		ctx |= ctxModule | ctxStrict | ctxAwait
	}
	if o.StrictByDefault {
		ctx |= ctxStrict
	}
	if !o.DisableLegacyWebCompatForms {
		ctx |= ctxWebCompat
	}
	if o.EnableExperimentalSyntax {
		ctx |= ctxExperimental
	}
	if o.JSX {
		ctx |= ctxJSX
	}
	return p, ctx
}

////////////////////////////////////////////////////////////////

func (p *Parser) next() {
	if p.tt == ErrorToken {
		return
	}
	p.prevEnd = p.start + len(p.data)
	p.prevLT = false
	p.tt, p.data = p.l.Next()
	for p.tt == WhitespaceToken || p.tt == LineTerminatorToken || p.tt == CommentToken || p.tt == CommentLineTerminatorToken {
		if p.tt == LineTerminatorToken || p.tt == CommentLineTerminatorToken {
			p.prevLT = true
		}
		p.tt, p.data = p.l.Next()
	}
	p.rescanned(p.tt, p.data)
}

// rescanned sets the current token after the lexer produced it, possibly by scanning the same input again in a different mode.
func (p *Parser) rescanned(tt TokenType, data []byte) {
	p.tt, p.data = tt, data
	p.start = p.l.Offset() - len(data)
	p.escaped = p.l.Escaped()
	if tt == ErrorToken {
		if err := p.l.Err(); err != io.EOF && p.err == nil {
			p.err = err
		}
		p.data = nil
	}
}

// name returns the current identifier name with unicode escapes decoded.
func (p *Parser) name() string {
	if p.escaped {
		if name, ok := decodeIdentifier(p.data); ok {
			return string(name)
		}
	}
	return string(p.data)
}

// isContextual returns true if the current token is the given contextual keyword, written without escapes.
func (p *Parser) isContextual(tt TokenType) bool {
	return p.tt == tt && !p.escaped
}

func (p *Parser) fail(in string, expected ...TokenType) {
	if p.err == nil {
		s := "unexpected"
		if 0 < len(expected) {
			s = "expected"
			for i, tt := range expected[:len(expected)-1] {
				if 0 < i {
					s += ","
				}
				s += " '" + tt.String() + "'"
			}
			if 2 < len(expected) {
				s += ", or"
			} else if 1 < len(expected) {
				s += " or"
			}
			s += " '" + expected[len(expected)-1].String() + "' instead of"
		}

		at := "'" + string(p.data) + "'"
		if p.tt == ErrorToken {
			at = "EOF"
		} else if p.tt == TemplateStartToken || p.tt == TemplateMiddleToken || p.tt == TemplateToken || p.tt == TemplateEndToken || p.tt == JSXTextToken || 20 < len(p.data) {
			at = p.tt.String()
		}
		p.failAt(parse.SyntaxError, p.start, "%s %s in %s", s, at, in)
	}
}

func (p *Parser) failAt(kind parse.ErrorKind, offset int, message string, a ...interface{}) {
	if p.err == nil {
		p.err = parse.NewError(p.r, kind, offset, message, a...)
	}
	p.tt = ErrorToken
	p.data = nil
}

// failEarly reports a static semantic error.
func (p *Parser) failEarly(offset int, message string, a ...interface{}) {
	p.failAt(parse.EarlyError, offset, message, a...)
}

func (p *Parser) consume(in string, tt TokenType) bool {
	if p.tt != tt {
		p.fail(in, tt)
		return false
	}
	p.next()
	return true
}

// semicolon consumes a semicolon or inserts one automatically.
func (p *Parser) semicolon(in string) {
	if p.tt == SemicolonToken {
		p.next()
	} else if p.tt != CloseBraceToken && p.tt != ErrorToken && !p.prevLT {
		p.fail(in, SemicolonToken)
	}
}

// enter increments the nesting depth and fails when it exceeds the maximum.
func (p *Parser) enter() bool {
	p.depth++
	if p.o.MaxDepth < p.depth {
		p.failAt(parse.SyntaxError, p.start, "too deeply nested")
		return false
	}
	return true
}

func (p *Parser) exit() {
	p.depth--
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseProgram(ctx Context) *Program {
	program := &Program{SourceType: "script"}
	if ctx.has(ctxModule) {
		program.SourceType = "module"
	}
	program.Body, _ = p.parseBody(ctx, nil, topStmt)
	if p.tt != ErrorToken {
		p.fail("statement")
	}
	if p.err != nil {
		return nil
	}
	for _, local := range p.locals {
		if !p.scope.declared(local.Name) {
			p.failEarly(local.Start, "export '%s' is not defined", local.Name)
			return nil
		}
	}
	p.finishAt(program, 0, p.r.Len())
	return program
}

// parseBody parses a statement list starting with a directive prologue, until a closing brace or the end of the input.
// It returns the context of the body, which is strict when the prologue contains a use strict directive.
func (p *Parser) parseBody(ctx Context, fs *funcState, pos stmtPos) ([]IStmt, Context) {
	list := []IStmt{}
	prologue := true
	octal := -1 // first legacy octal escape in the prologue
	for p.tt != CloseBraceToken && p.tt != ErrorToken {
		if prologue && p.tt != StringToken {
			prologue = false
			p.checkParams(ctx, fs)
		}
		stmt := p.parseStmt(ctx, pos)
		if p.err != nil {
			return list, ctx
		}
		if prologue {
			if lit := directive(stmt); lit != nil {
				raw := lit.raw[1 : len(lit.raw)-1]
				stmt.(*ExpressionStatement).Directive = raw
				if octal == -1 {
					octal = lit.octal
				}
				if raw == "use strict" {
					if fs != nil && !fs.simple {
						p.failEarly(lit.Start, "illegal 'use strict' directive in function with non-simple parameter list")
						return list, ctx
					} else if octal != -1 {
						p.failEarly(octal, "octal escape sequences are not allowed in strict mode")
						return list, ctx
					}
					ctx = ctx.with(ctxStrict)
				}
			} else {
				prologue = false
				p.checkParams(ctx, fs)
			}
		}
		list = append(list, stmt)
	}
	if prologue {
		p.checkParams(ctx, fs)
	}
	return list, ctx
}

// directive returns the string literal of a directive candidate.
func directive(stmt IStmt) *Literal {
	if exprStmt, ok := stmt.(*ExpressionStatement); ok {
		if lit, ok := exprStmt.Expression.(*Literal); ok && !lit.Parenthesized() && lit.Start == exprStmt.Start {
			if _, ok := lit.Value.(string); ok && lit.Regex == nil {
				return lit
			}
		}
	}
	return nil
}

type stmtPos int

// Statement positions, declarations are only allowed in statement lists.
const (
	topStmt   stmtPos = iota // script or module body
	listStmt                 // block, function body or case clause
	ifStmt                   // if or else branch
	labelStmt                // labelled statement body
	bodyStmt                 // loop or with body
)

func (pos stmtPos) allowsDeclaration() bool {
	return pos <= listStmt
}

func (p *Parser) parseStmt(ctx Context, pos stmtPos) IStmt {
	if !p.enter() {
		return nil
	}
	defer p.exit()

	start := p.start
	switch p.tt {
	case OpenBraceToken:
		if block := p.parseBlockStmt(ctx, "block statement"); block != nil {
			return block
		}
		return nil
	case SemicolonToken:
		p.next()
		stmt := &EmptyStatement{}
		p.finish(stmt, start)
		return stmt
	case VarToken:
		decl := p.parseVarDecl(ctx, "var", false)
		if decl == nil {
			return nil
		}
		p.semicolon("var statement")
		p.finish(decl, start)
		return decl
	case ConstToken:
		if !pos.allowsDeclaration() {
			p.fail("statement")
			return nil
		}
		decl := p.parseVarDecl(ctx, "const", false)
		if decl == nil {
			return nil
		}
		p.semicolon("const statement")
		p.finish(decl, start)
		return decl
	case LetToken:
		if p.isLet(pos.allowsDeclaration()) {
			if !pos.allowsDeclaration() {
				p.fail("statement")
				return nil
			}
			decl := p.parseVarDecl(ctx, "let", false)
			if decl == nil {
				return nil
			}
			p.semicolon("let statement")
			p.finish(decl, start)
			return decl
		}
	case FunctionToken:
		return p.parseFunctionStmt(ctx, pos, start, false)
	case AsyncToken:
		if next, _, lt := p.l.Peek(); next == FunctionToken && !lt && !p.escaped {
			if !pos.allowsDeclaration() {
				p.fail("statement")
				return nil
			}
			p.next()
			return p.parseFunctionStmt(ctx, pos, start, true)
		}
	case ClassToken:
		if !pos.allowsDeclaration() {
			p.fail("statement")
			return nil
		}
		return p.parseClassDecl(ctx, false)
	case IfToken:
		return p.parseIfStmt(ctx)
	case ForToken:
		return p.parseForStmt(ctx)
	case WhileToken:
		p.next()
		if !p.consume("while statement", OpenParenToken) {
			return nil
		}
		test := p.parseExpr(ctx.with(ctxAllowIn), nil)
		if !p.consume("while statement", CloseParenToken) {
			return nil
		}
		body := p.parseLoopBody(ctx)
		stmt := &WhileStatement{Test: test, Body: body}
		p.finish(stmt, start)
		return stmt
	case DoToken:
		p.next()
		body := p.parseLoopBody(ctx)
		if !p.consume("do-while statement", WhileToken) || !p.consume("do-while statement", OpenParenToken) {
			return nil
		}
		test := p.parseExpr(ctx.with(ctxAllowIn), nil)
		if !p.consume("do-while statement", CloseParenToken) {
			return nil
		}
		if p.tt == SemicolonToken {
			p.next()
		}
		stmt := &DoWhileStatement{Body: body, Test: test}
		p.finish(stmt, start)
		return stmt
	case ContinueToken, BreakToken:
		return p.parseBranchStmt(ctx)
	case ReturnToken:
		if !ctx.has(ctxFunction) {
			p.failEarly(start, "illegal return statement")
			return nil
		}
		p.next()
		var arg IExpr
		if p.tt != SemicolonToken && p.tt != CloseBraceToken && p.tt != ErrorToken && !p.prevLT {
			arg = p.parseExpr(ctx.with(ctxAllowIn), nil)
		}
		p.semicolon("return statement")
		stmt := &ReturnStatement{Argument: arg}
		p.finish(stmt, start)
		return stmt
	case WithToken:
		if ctx.has(ctxStrict) {
			p.failEarly(start, "with statement is not allowed in strict mode")
			return nil
		}
		p.next()
		if !p.consume("with statement", OpenParenToken) {
			return nil
		}
		object := p.parseExpr(ctx.with(ctxAllowIn), nil)
		if !p.consume("with statement", CloseParenToken) {
			return nil
		}
		body := p.parseStmt(ctx, bodyStmt)
		stmt := &WithStatement{Object: object, Body: body}
		p.finish(stmt, start)
		return stmt
	case SwitchToken:
		return p.parseSwitchStmt(ctx)
	case ThrowToken:
		p.next()
		if p.prevLT {
			p.failAt(parse.SyntaxError, p.prevEnd, "illegal newline after throw")
			return nil
		}
		arg := p.parseExpr(ctx.with(ctxAllowIn), nil)
		p.semicolon("throw statement")
		stmt := &ThrowStatement{Argument: arg}
		p.finish(stmt, start)
		return stmt
	case TryToken:
		return p.parseTryStmt(ctx)
	case DebuggerToken:
		p.next()
		p.semicolon("debugger statement")
		stmt := &DebuggerStatement{}
		p.finish(stmt, start)
		return stmt
	case ImportToken:
		if next, _, _ := p.l.Peek(); next != OpenParenToken && next != DotToken {
			if !ctx.has(ctxModule) {
				p.failEarly(start, "import declarations may only appear in modules")
				return nil
			} else if pos != topStmt {
				p.failEarly(start, "import declarations may only appear at the top level of a module")
				return nil
			}
			return p.parseImportDecl(ctx)
		}
	case ExportToken:
		if !ctx.has(ctxModule) {
			p.failEarly(start, "export declarations may only appear in modules")
			return nil
		} else if pos != topStmt {
			p.failEarly(start, "export declarations may only appear at the top level of a module")
			return nil
		}
		return p.parseExportDecl(ctx)
	case EnumToken:
		p.fail("statement")
		return nil
	}

	// expression or labelled statement
	identifier := IsIdentifier(p.tt)
	expr := p.parseExpr(ctx.with(ctxAllowIn), nil)
	if p.err != nil {
		return nil
	}
	if id, ok := expr.(*Identifier); ok && identifier && !id.Parenthesized() && p.tt == ColonToken {
		return p.parseLabelledStmt(ctx, pos, id)
	}
	p.semicolon("expression")
	stmt := &ExpressionStatement{Expression: expr}
	p.finish(stmt, start)
	return stmt
}

// isLet returns true if the current let token starts a lexical declaration.
func (p *Parser) isLet(list bool) bool {
	if !p.isContextual(LetToken) {
		return false
	}
	next, _, _ := p.l.Peek()
	if next == OpenBracketToken {
		return true
	} else if !list {
		return false
	} else if next == OpenBraceToken {
		return true
	}
	return IsIdentifierName(next) && next != InToken && next != InstanceofToken
}

func (p *Parser) parseBlockStmt(ctx Context, in string) *BlockStatement {
	start := p.start
	if !p.consume(in, OpenBraceToken) {
		return nil
	}
	p.enterScope(0)
	list := p.parseStmtList(ctx)
	p.exitScope()
	if !p.consume(in, CloseBraceToken) {
		return nil
	}
	block := &BlockStatement{Body: list}
	p.finish(block, start)
	return block
}

// parseStmtList parses statements until a closing brace.
func (p *Parser) parseStmtList(ctx Context) []IStmt {
	list := []IStmt{}
	for p.tt != CloseBraceToken && p.tt != ErrorToken {
		list = append(list, p.parseStmt(ctx, listStmt))
	}
	return list
}

func (p *Parser) parseLoopBody(ctx Context) IStmt {
	return p.parseStmt(ctx.with(ctxIteration), bodyStmt)
}

func (p *Parser) parseIfStmt(ctx Context) IStmt {
	start := p.start
	p.next()
	if !p.consume("if statement", OpenParenToken) {
		return nil
	}
	test := p.parseExpr(ctx.with(ctxAllowIn), nil)
	if !p.consume("if statement", CloseParenToken) {
		return nil
	}
	consequent := p.parseStmt(ctx, ifStmt)
	var alternate IStmt
	if p.tt == ElseToken {
		p.next()
		alternate = p.parseStmt(ctx, ifStmt)
	}
	stmt := &IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
	p.finish(stmt, start)
	return stmt
}

func (p *Parser) parseBranchStmt(ctx Context) IStmt {
	start := p.start
	isBreak := p.tt == BreakToken
	in := "continue statement"
	if isBreak {
		in = "break statement"
	}
	p.next()

	var id *Identifier
	if !p.prevLT && IsIdentifier(p.tt) {
		id = p.parseLabelIdentifier(ctx)
		if id == nil {
			return nil
		}
		found := false
		for i := len(p.labels) - 1; 0 <= i; i-- {
			if p.labels[i].name == id.Name {
				if !isBreak && !p.labels[i].loop {
					p.failEarly(id.Start, "continue statement must refer to an iteration statement label '%s'", id.Name)
					return nil
				}
				found = true
				break
			}
		}
		if !found {
			p.failEarly(id.Start, "undefined label '%s'", id.Name)
			return nil
		}
	} else if isBreak && !ctx.has(ctxIteration) && !ctx.has(ctxSwitch) {
		p.failEarly(start, "illegal break statement")
		return nil
	} else if !isBreak && !ctx.has(ctxIteration) {
		p.failEarly(start, "illegal continue statement: no surrounding iteration statement")
		return nil
	}
	p.semicolon(in)

	if isBreak {
		stmt := &BreakStatement{Label: id}
		p.finish(stmt, start)
		return stmt
	}
	stmt := &ContinueStatement{Label: id}
	p.finish(stmt, start)
	return stmt
}

func (p *Parser) parseLabelledStmt(ctx Context, pos stmtPos, id *Identifier) IStmt {
	p.next() // :
	for _, l := range p.labels {
		if l.name == id.Name {
			p.failEarly(id.Start, "label '%s' has already been declared", id.Name)
			return nil
		}
	}
	loop := p.tt == ForToken || p.tt == WhileToken || p.tt == DoToken
	for i := len(p.labels) - 1; 0 <= i && p.labels[i].stmtStart == id.Start; i-- {
		// consecutive labels refer to the same statement
		p.labels[i].stmtStart = p.start
		p.labels[i].loop = loop
	}
	p.labels = append(p.labels, label{name: id.Name, loop: loop, stmtStart: p.start})

	bodyPos := labelStmt
	if ifStmt <= pos && pos != labelStmt {
		bodyPos = bodyStmt
	}
	body := p.parseStmt(ctx, bodyPos)
	p.labels = p.labels[:len(p.labels)-1]

	stmt := &LabeledStatement{Label: id, Body: body}
	p.finish(stmt, id.Start)
	return stmt
}

func (p *Parser) parseSwitchStmt(ctx Context) IStmt {
	start := p.start
	p.next()
	if !p.consume("switch statement", OpenParenToken) {
		return nil
	}
	discriminant := p.parseExpr(ctx.with(ctxAllowIn), nil)
	if !p.consume("switch statement", CloseParenToken) || !p.consume("switch statement", OpenBraceToken) {
		return nil
	}

	p.enterScope(0)
	defer p.exitScope()

	cctx := ctx.with(ctxSwitch)
	cases := []*SwitchCase{}
	hasDefault := false
	for p.tt != CloseBraceToken && p.tt != ErrorToken {
		clauseStart := p.start
		var test IExpr
		if p.tt == CaseToken {
			p.next()
			test = p.parseExpr(ctx.with(ctxAllowIn), nil)
		} else if p.tt == DefaultToken {
			if hasDefault {
				p.failEarly(clauseStart, "multiple default clauses in switch statement")
				return nil
			}
			hasDefault = true
			p.next()
		} else {
			p.fail("switch statement", CaseToken, DefaultToken, CloseBraceToken)
			return nil
		}
		if !p.consume("switch statement", ColonToken) {
			return nil
		}
		list := []IStmt{}
		for p.tt != CaseToken && p.tt != DefaultToken && p.tt != CloseBraceToken && p.tt != ErrorToken {
			list = append(list, p.parseStmt(cctx, listStmt))
		}
		clause := &SwitchCase{Test: test, Consequent: list}
		p.finish(clause, clauseStart)
		cases = append(cases, clause)
	}
	if !p.consume("switch statement", CloseBraceToken) {
		return nil
	}
	stmt := &SwitchStatement{Discriminant: discriminant, Cases: cases}
	p.finish(stmt, start)
	return stmt
}

func (p *Parser) parseTryStmt(ctx Context) IStmt {
	start := p.start
	p.next()
	block := p.parseBlockStmt(ctx, "try statement")
	if block == nil {
		return nil
	}

	var handler *CatchClause
	if p.tt == CatchToken {
		catchStart := p.start
		p.next()
		var param IBinding
		if p.tt == OpenParenToken {
			p.next()
			paramStart := p.start
			param = p.parseBindingTarget(ctx)
			if p.err != nil {
				return nil
			}
			if id, ok := param.(*Identifier); ok {
				p.enterScope(scopeSimpleCatch)
				p.declareName(id.Name, bindSimpleCatch, paramStart)
			} else {
				p.enterScope(0)
				for _, id := range boundNames(param) {
					p.declareName(id.Name, bindLexical, id.Start)
				}
			}
			if !p.consume("catch clause", CloseParenToken) {
				return nil
			}
		} else {
			p.enterScope(0)
		}

		// the catch block shares the scope of the parameter
		bodyStart := p.start
		if !p.consume("catch clause", OpenBraceToken) {
			return nil
		}
		list := p.parseStmtList(ctx)
		p.exitScope()
		if !p.consume("catch clause", CloseBraceToken) {
			return nil
		}
		body := &BlockStatement{Body: list}
		p.finish(body, bodyStart)
		handler = &CatchClause{Param: param, Body: body}
		p.finish(handler, catchStart)
	}

	var finalizer *BlockStatement
	if p.tt == FinallyToken {
		p.next()
		if finalizer = p.parseBlockStmt(ctx, "finally clause"); finalizer == nil {
			return nil
		}
	}
	if handler == nil && finalizer == nil {
		p.fail("try statement", CatchToken, FinallyToken)
		return nil
	}
	stmt := &TryStatement{Block: block, Handler: handler, Finalizer: finalizer}
	p.finish(stmt, start)
	return stmt
}

// parseVarDecl parses a variable declaration without the terminating semicolon. In for statements, missing
// initializers are checked by the caller once the kind of loop is known.
func (p *Parser) parseVarDecl(ctx Context, kind string, inFor bool) *VariableDeclaration {
	start := p.start
	p.next()
	bind := bindVar
	if kind != "var" {
		bind = bindLexical
	}
	decl := &VariableDeclaration{Kind: kind, Declarations: []*VariableDeclarator{}}
	for {
		declStart := p.start
		id := p.parseBindingTarget(ctx)
		if p.err != nil {
			return nil
		}
		for _, name := range boundNames(id) {
			if bind == bindLexical && name.Name == "let" {
				p.failEarly(name.Start, "let is disallowed as a lexically bound name")
				return nil
			}
			p.declareName(name.Name, bind, name.Start)
		}

		var init IExpr
		if p.tt == EqToken {
			p.next()
			init = p.parseAssignExpr(ctx, nil)
		} else if !inFor || p.tt != InToken && !p.isContextual(OfToken) {
			if kind == "const" {
				p.failEarly(declStart, "missing initializer in const declaration")
				return nil
			} else if _, ok := id.(*Identifier); !ok {
				p.failEarly(declStart, "missing initializer in destructuring declaration")
				return nil
			}
		}
		declarator := &VariableDeclarator{ID: id, Init: init}
		p.finish(declarator, declStart)
		decl.Declarations = append(decl.Declarations, declarator)

		if p.tt != CommaToken {
			break
		}
		p.next()
	}
	p.finish(decl, start)
	return decl
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseForStmt(ctx Context) IStmt {
	start := p.start
	p.next()
	await := false
	if p.isContextual(AwaitToken) {
		if !ctx.has(ctxAwait) {
			p.failEarly(p.start, "for await is only valid in async functions and the top level of modules")
			return nil
		}
		await = true
		p.next()
	}
	if !p.consume("for statement", OpenParenToken) {
		return nil
	}

	p.enterScope(0)
	defer p.exitScope()

	hctx := ctx.without(ctxAllowIn)
	initStart := p.start
	if p.tt == SemicolonToken {
		if await {
			p.fail("for await statement", OfToken)
			return nil
		}
		return p.parseForRest(ctx, start, nil)
	}

	if p.tt == VarToken || p.tt == ConstToken || p.isLet(true) {
		kind := "var"
		if p.tt == ConstToken {
			kind = "const"
		} else if p.tt == LetToken {
			kind = "let"
		}
		decl := p.parseVarDecl(hctx, kind, true)
		if p.err != nil {
			return nil
		}
		isIn := p.tt == InToken
		if isIn && !await || p.isContextual(OfToken) {
			in := "for-of"
			if isIn {
				in = "for-in"
			}
			if len(decl.Declarations) != 1 {
				p.failEarly(initStart, "only a single variable declaration is allowed in a %s statement", in)
				return nil
			} else if d := decl.Declarations[0]; d.Init != nil {
				_, simple := d.ID.(*Identifier)
				if !isIn || kind != "var" || !simple || !ctx.sloppyWebCompat() {
					p.failEarly(initStart, "%s loop variable declaration may not have an initializer", in)
					return nil
				}
			}
			if !isIn && kind == "var" {
				p.checkForOfCatchParams(decl)
				if p.err != nil {
					return nil
				}
			}
			return p.parseForInOf(ctx, start, decl, isIn, await)
		} else if await {
			p.fail("for await statement", OfToken)
			return nil
		}
		for _, d := range decl.Declarations {
			if d.Init != nil {
				continue
			} else if kind == "const" {
				p.failEarly(d.Start, "missing initializer in const declaration")
				return nil
			} else if _, ok := d.ID.(*Identifier); !ok {
				p.failEarly(d.Start, "missing initializer in destructuring declaration")
				return nil
			}
		}
		return p.parseForRest(ctx, start, decl)
	}

	startsWithLet := p.tt == LetToken
	startsWithAsync := p.isContextual(AsyncToken)
	ce := newCoverErrors()
	var init IExpr
	if next, _, _ := p.l.Peek(); await && startsWithAsync && next == OfToken {
		// for await (async of x) is not the head of an async arrow
		init = p.parseIdentifierReference(hctx)
	} else {
		init = p.parseExpr(hctx, ce)
	}
	if p.err != nil {
		return nil
	}
	isIn := p.tt == InToken
	if isIn && !await || p.isContextual(OfToken) {
		if !isIn {
			if startsWithLet {
				p.failEarly(initStart, "the left-hand side of a for-of loop may not start with 'let'")
				return nil
			} else if id, ok := init.(*Identifier); ok && startsWithAsync && !await && !id.Parenthesized() && id.Name == "async" {
				p.failEarly(initStart, "the left-hand side of a for-of loop may not be 'async'")
				return nil
			}
		}
		if _, ok := init.(*AssignmentExpression); ok {
			p.failEarly(initStart, "AssignmentExpression is not a valid assignment target")
			return nil
		}
		left, err := p.toBinding(ctx, init, assignTarget)
		if err != nil {
			p.failCover(err)
			return nil
		}
		return p.parseForInOf(ctx, start, left, isIn, await)
	} else if await {
		p.fail("for await statement", OfToken)
		return nil
	}
	p.checkCover(ce)
	return p.parseForRest(ctx, start, init)
}

func (p *Parser) parseForInOf(ctx Context, start int, left INode, isIn, await bool) IStmt {
	p.next() // in or of
	var right IExpr
	if isIn {
		right = p.parseExpr(ctx.with(ctxAllowIn), nil)
	} else {
		right = p.parseAssignExpr(ctx.with(ctxAllowIn), nil)
	}
	if !p.consume("for statement", CloseParenToken) {
		return nil
	}
	body := p.parseLoopBody(ctx)
	if isIn {
		stmt := &ForInStatement{Left: left, Right: right, Body: body}
		p.finish(stmt, start)
		return stmt
	}
	stmt := &ForOfStatement{Await: await, Left: left, Right: right, Body: body}
	p.finish(stmt, start)
	return stmt
}

func (p *Parser) parseForRest(ctx Context, start int, init INode) IStmt {
	if !p.consume("for statement", SemicolonToken) {
		return nil
	}
	var test, update IExpr
	if p.tt != SemicolonToken {
		test = p.parseExpr(ctx.with(ctxAllowIn), nil)
	}
	if !p.consume("for statement", SemicolonToken) {
		return nil
	}
	if p.tt != CloseParenToken {
		update = p.parseExpr(ctx.with(ctxAllowIn), nil)
	}
	if !p.consume("for statement", CloseParenToken) {
		return nil
	}
	body := p.parseLoopBody(ctx)
	stmt := &ForStatement{Init: init, Test: test, Update: update, Body: body}
	p.finish(stmt, start)
	return stmt
}
