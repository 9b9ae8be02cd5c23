package js

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/esparse/parse"
	"github.com/kr/pretty"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/test"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"", ""},
		{"{}", "Stmt({ })"},
		{";", "Stmt(;)"},
		{"debugger;", "Stmt(debugger)"},
		{"a", "Stmt(a)"},
		{"a; b", "Stmt(a) Stmt(b)"},
		{"'use strict'; a", "Stmt('use strict') Stmt(a)"},
		{"/a/g.test(b)", "Stmt(/a/g.test(b))"},
		{"a\n/b/g", "Stmt(((a / b) / g))"},

		// automatic semicolon insertion
		{"a\nb", "Stmt(a) Stmt(b)"},
		{"a\n++b", "Stmt(a) Stmt((++b))"},
		{"a = b\n(c)", "Stmt((a = b(c)))"},
		{"function f() { return\na }", "Decl(function f() Stmt({ Stmt(return) Stmt(a) }))"},
		{"do a; while (b) c", "Stmt(do Stmt(a) while b) Stmt(c)"},

		// declarations
		{"var a = 1, b;", "Decl(var a = 1, b)"},
		{"let {a, b: c, ...d} = e;", "Decl(let {a, b: c, ...d} = e)"},
		{"const [a, , ...b] = c;", "Decl(const [a, , ...b] = c)"},
		{"let [a = 1, {b}] = c;", "Decl(let [a = 1, {b}] = c)"},
		{"function f(a, b = 1, ...c) {}", "Decl(function f(a, b = 1, ...c) Stmt({ }))"},
		{"function* g() { yield* a; yield; }", "Decl(function*g() Stmt({ Stmt((yield* a)) Stmt((yield)) }))"},
		{"async function f() { await a; }", "Decl(async function f() Stmt({ Stmt((await a)) }))"},
		{"async function* f() {}", "Decl(async function*f() Stmt({ }))"},
		{"class A extends B { constructor() { super(); } static #x = 1; get y() {} static {} }",
			"Decl(class A extends B { Method(constructor() Stmt({ Stmt(super()) })) Field(static #x = 1) Method(get y() Stmt({ })) Static({ }) })"},
		{"class A { static async *[m]() {} a; }", "Decl(class A { Method(static async *[m]() Stmt({ })) Field(a) })"},
		{"class A { #x; m() { return #x in this; } }", "Decl(class A { Field(#x) Method(m() Stmt({ Stmt(return (#x in this)) })) })"},

		// statements
		{"if (a) b; else c;", "Stmt(if a Stmt(b) else Stmt(c))"},
		{"if (a) b", "Stmt(if a Stmt(b))"},
		{"switch (a) { case 1: b; default: }", "Stmt(switch a Clause(case 1 Stmt(b)) Clause(default))"},
		{"try {} catch (e) {} finally {}", "Stmt(try Stmt({ }) catch e Stmt({ }) finally Stmt({ }))"},
		{"try {} catch {}", "Stmt(try Stmt({ }) catch Stmt({ }))"},
		{"throw a", "Stmt(throw a)"},
		{"while (a) b;", "Stmt(while a Stmt(b))"},
		{"for (;;) {}", "Stmt(for ; ; Stmt({ }))"},
		{"for (var i = 0; i < n; i++) ;", "Stmt(for Decl(var i = 0) ; (i < n) ; (i++) Stmt(;))"},
		{"for (let a = (b in c); ; );", "Stmt(for Decl(let a = (b in c)) ; ; Stmt(;))"},
		{"for (a in b) ;", "Stmt(for a in b Stmt(;))"},
		{"for (const [a] of b) ;", "Stmt(for Decl(const [a]) of b Stmt(;))"},
		{"for (var a = 1 in b) ;", "Stmt(for Decl(var a = 1) in b Stmt(;))"},
		{"a: while (1) break a;", "Stmt(a: Stmt(while 1 Stmt(break a)))"},
		{"a: for (;;) continue a;", "Stmt(a: Stmt(for ; ; Stmt(continue a)))"},
		{"with (a) b", "Stmt(with a Stmt(b))"},
		{"async function f() { for await (a of b) ; }", "Decl(async function f() Stmt({ Stmt(for await a of b Stmt(;)) }))"},
		{"async function f() { for await (async of x) ; }", "Decl(async function f() Stmt({ Stmt(for await async of x Stmt(;)) }))"},
		{"try {} catch (e) { for (var e in x) ; var e; }", "Stmt(try Stmt({ }) catch e Stmt({ Stmt(for Decl(var e) in x Stmt(;)) Decl(var e) }))"},

		// expressions
		{"x = {a, b: 1, [c]: 2, ...d}", "Stmt((x = {a, b: 1, [c]: 2, ...d}))"},
		{"x = {get a() {}, set a(v) {}, *g() {}, async m() {}}", "Stmt((x = {get a() Stmt({ }), set a(v) Stmt({ }), *g() Stmt({ }), async m() Stmt({ })}))"},
		{"x = function () {}", "Stmt((x = (function() Stmt({ }))))"},
		{"x = class {}", "Stmt((x = (class { })))"},
		{"(a, b) => a + b", "Stmt(((a, b) => (a + b)))"},
		{"async x => x", "Stmt((async (x) => x))"},
		{"async(a, b)", "Stmt(async(a, b))"},
		{"() => {}", "Stmt((() => Stmt({ })))"},
		{"`a${b}c`", "Stmt(`a${b}c`)"},
		{"tag`x`", "Stmt(tag`x`)"},
		{"new A", "Stmt((new A()))"},
		{"new A.b(c)", "Stmt((new A.b(c)))"},
		{"a?.b.c", "Stmt(Chain(a?.b.c))"},
		{"a?.[b]", "Stmt(Chain(a?.[b]))"},
		{"a?.()", "Stmt(Chain(a?.()))"},
		{"a.b(c, d)", "Stmt(a.b(c, d))"},
		{"a[0]", "Stmt(a[0])"},
		{"typeof a", "Stmt((typeof a))"},
		{"!a", "Stmt((!a))"},
		{"a++", "Stmt((a++))"},
		{"a ? b : c", "Stmt((a ? b : c))"},
		{"a, b", "Stmt((a , b))"},
		{"(a)", "Stmt(a)"},
		{"a ** b ** c", "Stmt((a ** (b ** c)))"},
		{"(-a) ** b", "Stmt(((-a) ** b))"},
		{"a + b * c", "Stmt((a + (b * c)))"},
		{"(a + b) * c", "Stmt(((a + b) * c))"},
		{"a ?? b", "Stmt((a ?? b))"},
		{"(a && b) ?? c", "Stmt(((a && b) ?? c))"},
		{"a = b = c", "Stmt((a = (b = c)))"},
		{"a += 1", "Stmt((a += 1))"},
		{"[a, , ...b] = c", "Stmt(([a, , ...b] = c))"},
		{"({a = 1} = b)", "Stmt(({a = 1} = b))"},
		{"({a: b.c} = d)", "Stmt(({a: b.c} = d))"},
		{"[a.b, c[0]] = d", "Stmt(([a.b, c[0]] = d))"},
		{"import('m')", "Stmt(import('m'))"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := Parse(parse.NewInputString(tt.js), Options{})
			test.Error(t, err)
			test.String(t, ast.String(), tt.expected)
		})
	}
}

func TestParseModule(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"import a, {b, c as d} from 'm'", "Stmt(import a, {b, c as d} from 'm')"},
		{"import * as ns from 'm'", "Stmt(import * as ns from 'm')"},
		{"import 'm'", "Stmt(import 'm')"},
		{"export const a = 1", "Stmt(export Decl(const a = 1))"},
		{"let a, b; export {a, b as c}", "Decl(let a, b) Stmt(export {a, b as c})"},
		{"export default 1 + 2", "Stmt(export default (1 + 2))"},
		{"export default function () {}", "Stmt(export default Decl(function() Stmt({ })))"},
		{"export * as ns from 'm'", "Stmt(export * as ns from 'm')"},
		{"export * from 'm'", "Stmt(export * from 'm')"},
		{"export {a as b} from 'm'", "Stmt(export {a as b} from 'm')"},
		{"await x", "Stmt((await x))"},
		{"import.meta", "Stmt(import.meta)"},
		{"for await (async of x) ;", "Stmt(for await async of x Stmt(;))"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := Parse(parse.NewInputString(tt.js), Options{TreatInputAsModule: true})
			test.Error(t, err)
			test.String(t, ast.String(), tt.expected)
			test.String(t, ast.SourceType, "module")
		})
	}
}

func TestParseJSX(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{`<div className="a" {...p}>hi {x}</div>`, `Stmt(<div className="a" {...p}>hi {x}</div>)`},
		{"<a.b />", "Stmt(<a.b />)"},
		{"<><br /></>", "Stmt(<><br /></>)"},
		{"<a>{}</a>", "Stmt(<a>{}</a>)"},
		{"<a:b c:d='e' />", "Stmt(<a:b c:d='e' />)"},
		{"x = <a>{...b}</a>", "Stmt((x = <a>{...b}</a>))"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := Parse(parse.NewInputString(tt.js), Options{JSX: true})
			test.Error(t, err)
			test.String(t, ast.String(), tt.expected)
		})
	}
}

func TestParseExpr(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"a + b", "(a + b)"},
		{"{a: 1}", "{a: 1}"},
		{"function () {}", "(function() Stmt({ }))"},
		{"a, b", "(a , b)"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			expr, err := ParseExpr(parse.NewInputString(tt.js), Options{})
			test.Error(t, err)
			test.String(t, expr.String(), tt.expected)
		})
	}

	_, err := ParseExpr(parse.NewInputString("a b"), Options{})
	require.Error(t, err)
	assert.Equal(t, parse.SyntaxError, err.(*parse.Error).Kind)
	assert.Equal(t, 2, err.(*parse.Error).Offset)
}

func TestParseError(t *testing.T) {
	var tests = []struct {
		js      string
		options Options
		kind    parse.ErrorKind
		offset  int
		message string
	}{
		{"a +", Options{}, parse.SyntaxError, 3, "unexpected EOF in expression"},
		{"for (let a of b, c) ;", Options{}, parse.SyntaxError, 15, "expected ')' instead of ',' in for statement"},
		{"({a = 1})", Options{}, parse.SyntaxError, 4, "shorthand property assignments are valid only in destructuring patterns"},
		{"a ?? b || c", Options{}, parse.SyntaxError, 7, "cannot mix '??' with '&&' or '||' without parentheses"},
		{"a && b ?? c", Options{}, parse.SyntaxError, 7, "cannot mix '??' with '&&' or '||' without parentheses"},
		{"-a ** 2", Options{}, parse.SyntaxError, 3, "unparenthesized unary expression can't appear on the left-hand side of '**'"},

		// assignment targets
		{"1 = 2", Options{}, parse.EarlyError, 0, "Literal is not a valid assignment target"},
		{"f() = 1", Options{}, parse.EarlyError, 0, "CallExpression is not a valid assignment target"},
		{"++1", Options{}, parse.EarlyError, 2, "Literal is not a valid assignment target"},
		{"for (a = 1 in b) ;", Options{}, parse.EarlyError, 5, "AssignmentExpression is not a valid assignment target"},
		{"({__proto__: 1, __proto__: 2})", Options{}, parse.EarlyError, 16, "redefinition of __proto__ property"},

		// strict mode
		{"'use strict'; with (a) {}", Options{}, parse.EarlyError, 14, "with statement is not allowed in strict mode"},
		{"with (a) {}", Options{StrictByDefault: true}, parse.EarlyError, 0, "with statement is not allowed in strict mode"},
		{"function f(a = 1) { 'use strict' }", Options{}, parse.EarlyError, 20, "illegal 'use strict' directive in function with non-simple parameter list"},
		{"'use strict'; function f(a, a) {}", Options{}, parse.EarlyError, 28, "duplicate parameter name 'a' not allowed in this context"},
		{"'use strict'; delete x", Options{}, parse.EarlyError, 14, "deleting local variable 'x' in strict mode"},
		{"'use strict'; var eval", Options{}, parse.EarlyError, 18, "binding 'eval' in strict mode"},
		{"'use strict'; 010", Options{}, parse.EarlyError, 14, "legacy octal literals are not allowed in strict mode"},
		{"'\\01'; 'use strict';", Options{}, parse.EarlyError, 1, "octal escape sequences are not allowed in strict mode"},

		// scoping and declarations
		{"(a, a) => 1", Options{}, parse.EarlyError, 4, "duplicate parameter name 'a' not allowed in this context"},
		{"let a; let a;", Options{}, parse.EarlyError, 11, "identifier 'a' has already been declared"},
		{"try {} catch (e) { for (var e of x) ; }", Options{}, parse.EarlyError, 28, "identifier 'e' has already been declared"},
		{"try {} catch (e) { { for (var [a, e] of x) ; } }", Options{}, parse.EarlyError, 34, "identifier 'e' has already been declared"},
		{"for (async of x) ;", Options{}, parse.SyntaxError, 14, "expected '=>' instead of 'x' in async arrow function"},
		{"for (var a = 1 of b) ;", Options{}, parse.EarlyError, 5, "for-of loop variable declaration may not have an initializer"},
		{"for (var a = 1 in b) ;", Options{DisableLegacyWebCompatForms: true}, parse.EarlyError, 5, "for-in loop variable declaration may not have an initializer"},
		{"function* g() { var yield; }", Options{}, parse.EarlyError, 20, "cannot use 'yield' as an identifier in a generator"},
		{"var await;", Options{TreatInputAsModule: true}, parse.EarlyError, 4, "cannot use 'await' as an identifier in an async function or module"},

		// control flow
		{"break;", Options{}, parse.EarlyError, 0, "illegal break statement"},
		{"continue;", Options{}, parse.EarlyError, 0, "illegal continue statement: no surrounding iteration statement"},
		{"return 1", Options{}, parse.EarlyError, 0, "illegal return statement"},
		{"a: a: ;", Options{}, parse.EarlyError, 3, "label 'a' has already been declared"},
		{"while (1) { break foo; }", Options{}, parse.EarlyError, 18, "undefined label 'foo'"},

		// classes
		{"class A { constructor() {} constructor() {} }", Options{}, parse.EarlyError, 27, "a class may only have one constructor"},
		{"class A { m() { this.#y } }", Options{}, parse.EarlyError, 21, "private field '#y' must be declared in an enclosing class"},
		{"class C { constructor() { super(); } }", Options{}, parse.EarlyError, 26, "'super' keyword unexpected here"},
		{"super()", Options{}, parse.EarlyError, 0, "'super' keyword unexpected here"},
		{"({ get a(x) {} })", Options{}, parse.EarlyError, 8, "getter must not have any formal parameters"},

		// modules
		{"import.meta", Options{}, parse.EarlyError, 0, "cannot use 'import.meta' outside a module"},
		{"import a from 'b'", Options{}, parse.EarlyError, 0, "import declarations may only appear in modules"},
		{"export {a}", Options{TreatInputAsModule: true}, parse.EarlyError, 8, "export 'a' is not defined"},
		{"let a; export {a}; export {a as a};", Options{TreatInputAsModule: true}, parse.EarlyError, 32, "duplicate export 'a'"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			_, err := Parse(parse.NewInputString(tt.js), tt.options)
			require.Error(t, err)
			perr, ok := err.(*parse.Error)
			require.True(t, ok, "error must be a *parse.Error")
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, tt.message, perr.Message)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse(parse.NewInputString("a;\n  b +"), Options{})
	require.Error(t, err)
	perr := err.(*parse.Error)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 6, perr.Column)
	assert.Equal(t, "SyntaxError: unexpected EOF in expression on line 2 and column 6\n    2:   b +\n            ^", err.Error())
}

func TestParseDepth(t *testing.T) {
	_, err := Parse(parse.NewInputString("((((((((((((a))))))))))))"), Options{MaxDepth: 10})
	require.Error(t, err)
	assert.Equal(t, "too deeply nested", err.(*parse.Error).Message)

	_, err = Parse(parse.NewInputString(strings.Repeat("[", 5000)), Options{})
	require.Error(t, err)
	assert.Equal(t, "too deeply nested", err.(*parse.Error).Message)

	_, err = Parse(parse.NewInputString(strings.Repeat("[", 300)+strings.Repeat("]", 300)), Options{})
	test.Error(t, err)
}

func TestParseLocations(t *testing.T) {
	ast, err := Parse(parse.NewInputString("a\n  b"), Options{RecordSourceLocations: true})
	require.NoError(t, err)
	require.Len(t, ast.Body, 2)

	stmt := ast.Body[1].(*ExpressionStatement)
	id := stmt.Expression.(*Identifier)
	assert.Equal(t, 4, id.Start)
	assert.Equal(t, 5, id.End)
	require.NotNil(t, id.Loc)
	assert.Equal(t, Position{Line: 2, Column: 2}, id.Loc.Start)
	assert.Equal(t, Position{Line: 2, Column: 3}, id.Loc.End)

	ast, err = Parse(parse.NewInputString("a"), Options{})
	require.NoError(t, err)
	assert.Nil(t, ast.Body[0].(*ExpressionStatement).Loc)
}

type spanRecorder []string

func (r *spanRecorder) Enter(n INode) IVisitor {
	b := n.base()
	span := fmt.Sprintf("%s[%d,%d]", b.Type, b.Start, b.End)
	if lit, ok := n.(*Literal); ok && lit.Regex != nil {
		span += " /" + lit.Regex.Pattern + "/" + lit.Regex.Flags
	}
	*r = append(*r, span)
	return r
}

func TestParseSpans(t *testing.T) {
	var tests = []struct {
		js       string
		expected string
	}{
		{"a / b / c", "Program[0,9] ExpressionStatement[0,9] BinaryExpression[0,9] BinaryExpression[0,5] Identifier[0,1] Identifier[4,5] Identifier[8,9]"},
		{"[a, /a/]", "Program[0,8] ExpressionStatement[0,8] ArrayExpression[0,8] Identifier[1,2] Literal[4,7] /a/"},
		{"a\n/b/g", "Program[0,6] ExpressionStatement[0,6] BinaryExpression[0,6] BinaryExpression[0,4] Identifier[0,1] Identifier[3,4] Identifier[5,6]"},
		{"x = /=/g", "Program[0,8] ExpressionStatement[0,8] AssignmentExpression[0,8] Identifier[0,1] Literal[4,8] /=/g"},
		{"for (const a of b) c;", "Program[0,21] ForOfStatement[0,21] VariableDeclaration[5,12] VariableDeclarator[11,12] Identifier[11,12] Identifier[16,17] ExpressionStatement[19,21] Identifier[19,20]"},
		{"for ([a, b] in c) ;", "Program[0,19] ForInStatement[0,19] ArrayPattern[5,11] Identifier[6,7] Identifier[9,10] Identifier[15,16] EmptyStatement[18,19]"},
		{"for (a of b)\n  c", "Program[0,16] ForOfStatement[0,16] Identifier[5,6] Identifier[10,11] ExpressionStatement[15,16] Identifier[15,16]"},
		{"for (var a in b) {}", "Program[0,19] ForInStatement[0,19] VariableDeclaration[5,10] VariableDeclarator[9,10] Identifier[9,10] Identifier[14,15] BlockStatement[17,19]"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := Parse(parse.NewInputString(tt.js), Options{RecordSourceLocations: true})
			require.NoError(t, err)
			var r spanRecorder
			Walk(&r, ast)
			test.String(t, strings.Join(r, " "), tt.expected)
		})
	}
}

func TestParseForLeft(t *testing.T) {
	ast, err := Parse(parse.NewInputString("for (let [a] of b) ; for (a.b in c) ; for ({a} of b) ;"), Options{})
	require.NoError(t, err)
	require.Len(t, ast.Body, 3)

	forOf := ast.Body[0].(*ForOfStatement)
	decl, ok := forOf.Left.(*VariableDeclaration)
	require.True(t, ok, "left must be a declaration")
	assert.Equal(t, "let", decl.Kind)
	assert.IsType(t, &ArrayPattern{}, decl.Declarations[0].ID)

	forIn := ast.Body[1].(*ForInStatement)
	assert.IsType(t, &MemberExpression{}, forIn.Left)
	assert.Equal(t, 26, forIn.Left.(*MemberExpression).Start)

	forOf = ast.Body[2].(*ForOfStatement)
	assert.IsType(t, &ObjectPattern{}, forOf.Left)
}

func TestParseLiterals(t *testing.T) {
	var tests = []struct {
		js    string
		value interface{}
	}{
		{"'a\\x41'", "aA"},
		{"'\\u{61}\\u0062'", "ab"},
		{"'a\\\nb'", "ab"},
		{"0x10", 16.0},
		{"0b101", 5.0},
		{"0o17", 15.0},
		{"1_000", 1000.0},
		{"1e3", 1000.0},
		{".5", 0.5},
		{"true", true},
		{"null", nil},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := Parse(parse.NewInputString(tt.js), Options{RecordRawLiteralText: true})
			require.NoError(t, err)
			lit := ast.Body[0].(*ExpressionStatement).Expression.(*Literal)
			assert.Equal(t, tt.value, lit.Value)
			assert.Equal(t, tt.js, lit.Raw)
		})
	}

	ast, err := Parse(parse.NewInputString("'\\u0041'; 'A'; '\\x41'"), Options{})
	require.NoError(t, err)
	escaped := ast.Body[0].(*ExpressionStatement).Expression.(*Literal)
	plain := ast.Body[1].(*ExpressionStatement).Expression.(*Literal)
	hex := ast.Body[2].(*ExpressionStatement).Expression.(*Literal)
	assert.Equal(t, plain.Value, escaped.Value)
	assert.Equal(t, plain.Value, hex.Value)

	ast, err = Parse(parse.NewInputString("10n; /a/g"), Options{})
	require.NoError(t, err)
	bigint := ast.Body[0].(*ExpressionStatement).Expression.(*Literal)
	assert.Equal(t, "10", bigint.Bigint)
	assert.Nil(t, bigint.Value)
	assert.Equal(t, "", bigint.Raw)
	regex := ast.Body[1].(*ExpressionStatement).Expression.(*Literal)
	assert.Equal(t, &RegExpValue{Pattern: "a", Flags: "g"}, regex.Regex)
}

func TestParseEscapedIdentifier(t *testing.T) {
	ast, err := Parse(parse.NewInputString("var \\u0061b, c\\u{64};"), Options{})
	require.NoError(t, err)
	test.String(t, ast.String(), "Decl(var ab, cd)")

	_, err = Parse(parse.NewInputString("v\\u0061r a;"), Options{})
	require.Error(t, err)
}

func TestParseDeterministic(t *testing.T) {
	src := "import {a} from 'm';\nexport default class extends a { #b = 1; get c() { return this.#b ?? `x${1}`; } }\nlabel: for (const [k, v] of Object.entries({a, ...a})) { if (k) continue label; }"
	o := Options{TreatInputAsModule: true, RecordSourceLocations: true, RecordRawLiteralText: true}

	ast1, err := Parse(parse.NewInputString(src), o)
	require.NoError(t, err)
	ast2, err := Parse(parse.NewInputString(src), o)
	require.NoError(t, err)

	b1, err := json.Marshal(ast1)
	require.NoError(t, err)
	b2, err := json.Marshal(ast2)
	require.NoError(t, err)
	if string(b1) != string(b2) {
		dmp := diffmatchpatch.New()
		t.Fatal(dmp.DiffPrettyText(dmp.DiffMain(string(b1), string(b2), false)))
	}

	var v1, v2 interface{}
	require.NoError(t, json.Unmarshal(b1, &v1))
	require.NoError(t, json.Unmarshal(b2, &v2))
	if diff := pretty.Diff(v1, v2); 0 < len(diff) {
		t.Fatal(diff)
	}
}

func TestParseConcurrent(t *testing.T) {
	srcs := []string{
		"var a = 1; function f(b) { return a + b; }",
		"class A { #x; m() { return this.#x; } }",
		"for (const a of b) { if (a) break; }",
		"x = async (a, {b}) => await a + b",
	}
	expected := make([]string, len(srcs))
	for i, src := range srcs {
		ast, err := Parse(parse.NewInputString(src), Options{})
		require.NoError(t, err)
		expected[i] = ast.String()
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8*len(srcs))
	for n := 0; n < 8; n++ {
		for i, src := range srcs {
			wg.Add(1)
			go func(i int, src string) {
				defer wg.Done()
				ast, err := Parse(parse.NewInputString(src), Options{})
				if err != nil {
					errs <- err
				} else if ast.String() != expected[i] {
					errs <- fmt.Errorf("%s: %s != %s", src, ast.String(), expected[i])
				}
			}(i, src)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func FuzzParse(f *testing.F) {
	f.Add("var a = 1;", false)
	f.Add("({a = 1} = b)", false)
	f.Add("export default class { #a; }", true)
	f.Add("`a${b`c${d}`}`", false)
	f.Add("a?.b?.[c]?.(d)", true)
	f.Fuzz(func(t *testing.T, src string, module bool) {
		ast, err := Parse(parse.NewInputString(src), Options{TreatInputAsModule: module, RecordSourceLocations: true})
		if err != nil {
			if _, ok := err.(*parse.Error); !ok {
				t.Fatalf("unexpected error type %T", err)
			}
			return
		}
		_ = ast.String()
	})
}

////////////////////////////////////////////////////////////////

func BenchmarkParse(b *testing.B) {
	src := []byte(strings.Repeat("function f(a, b) { if (a) { return [a, b].map((x) => x * 2); } else { return {a, b}; } }\n", 100))
	for i := 0; i < b.N; i++ {
		if _, err := Parse(parse.NewInputBytes(src), Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

func ExampleParse() {
	ast, err := Parse(parse.NewInputString("let a = b ?? 1;"), Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(ast)
	// Output: Decl(let a = (b ?? 1))
}
