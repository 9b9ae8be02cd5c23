package js

import "strings"

// Position is a line and column pair, the line is 1-based and the column 0-based.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the span of a node in lines and columns.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Base holds the fields shared by all nodes: the ESTree type name and the byte offsets of the node in the source.
type Base struct {
	Type  string          `json:"type"`
	Start int             `json:"start"`
	End   int             `json:"end"`
	Loc   *SourceLocation `json:"loc,omitempty"`

	parens int // number of enclosing parentheses
}

func (b *Base) base() *Base {
	return b
}

// Span returns the start and end offsets of the node.
func (b *Base) Span() (int, int) {
	return b.Start, b.End
}

// Parenthesized returns true if the node was enclosed in parentheses.
func (b *Base) Parenthesized() bool {
	return 0 < b.parens
}

// INode is any node of the syntax tree.
type INode interface {
	String() string
	base() *Base
}

// IStmt is a statement or declaration.
type IStmt interface {
	INode
	stmtNode()
}

// IExpr is an expression.
type IExpr interface {
	INode
	exprNode()
}

// IBinding is an assignment or binding target: an identifier, a member expression or a pattern.
type IBinding interface {
	INode
	bindingNode()
}

func join[T INode](list []T, sep string) string {
	s := ""
	for i, item := range list {
		if i != 0 {
			s += sep
		}
		if any(item) != nil {
			s += item.String()
		}
	}
	return s
}

func joinStmts[T INode](list []T) string {
	s := ""
	for _, item := range list {
		s += " " + item.String()
	}
	return s
}

////////////////////////////////////////////////////////////////

// Program is the root of the syntax tree.
type Program struct {
	Base
	Body       []IStmt `json:"body"`
	SourceType string  `json:"sourceType"`
}

func (n *Program) String() string {
	s := ""
	for i, item := range n.Body {
		if i != 0 {
			s += " "
		}
		s += item.String()
	}
	return s
}

////////////////////////////////////////////////////////////////

type ExpressionStatement struct {
	Base
	Expression IExpr  `json:"expression"`
	Directive  string `json:"directive,omitempty"`
}

func (n *ExpressionStatement) String() string {
	return "Stmt(" + n.Expression.String() + ")"
}

type BlockStatement struct {
	Base
	Body []IStmt `json:"body"`
}

func (n *BlockStatement) String() string {
	return "Stmt({" + joinStmts(n.Body) + " })"
}

type EmptyStatement struct {
	Base
}

func (n *EmptyStatement) String() string {
	return "Stmt(;)"
}

type DebuggerStatement struct {
	Base
}

func (n *DebuggerStatement) String() string {
	return "Stmt(debugger)"
}

type WithStatement struct {
	Base
	Object IExpr `json:"object"`
	Body   IStmt `json:"body"`
}

func (n *WithStatement) String() string {
	return "Stmt(with " + n.Object.String() + " " + n.Body.String() + ")"
}

type ReturnStatement struct {
	Base
	Argument IExpr `json:"argument"`
}

func (n *ReturnStatement) String() string {
	s := "Stmt(return"
	if n.Argument != nil {
		s += " " + n.Argument.String()
	}
	return s + ")"
}

type LabeledStatement struct {
	Base
	Label *Identifier `json:"label"`
	Body  IStmt       `json:"body"`
}

func (n *LabeledStatement) String() string {
	return "Stmt(" + n.Label.Name + ": " + n.Body.String() + ")"
}

type BreakStatement struct {
	Base
	Label *Identifier `json:"label"`
}

func (n *BreakStatement) String() string {
	if n.Label != nil {
		return "Stmt(break " + n.Label.Name + ")"
	}
	return "Stmt(break)"
}

type ContinueStatement struct {
	Base
	Label *Identifier `json:"label"`
}

func (n *ContinueStatement) String() string {
	if n.Label != nil {
		return "Stmt(continue " + n.Label.Name + ")"
	}
	return "Stmt(continue)"
}

type IfStatement struct {
	Base
	Test       IExpr `json:"test"`
	Consequent IStmt `json:"consequent"`
	Alternate  IStmt `json:"alternate"`
}

func (n *IfStatement) String() string {
	s := "Stmt(if " + n.Test.String() + " " + n.Consequent.String()
	if n.Alternate != nil {
		s += " else " + n.Alternate.String()
	}
	return s + ")"
}

type SwitchStatement struct {
	Base
	Discriminant IExpr         `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

func (n *SwitchStatement) String() string {
	return "Stmt(switch " + n.Discriminant.String() + joinStmts(n.Cases) + ")"
}

type SwitchCase struct {
	Base
	Test       IExpr   `json:"test"`
	Consequent []IStmt `json:"consequent"`
}

func (n *SwitchCase) String() string {
	s := "Clause(default"
	if n.Test != nil {
		s = "Clause(case " + n.Test.String()
	}
	return s + joinStmts(n.Consequent) + ")"
}

type ThrowStatement struct {
	Base
	Argument IExpr `json:"argument"`
}

func (n *ThrowStatement) String() string {
	return "Stmt(throw " + n.Argument.String() + ")"
}

type TryStatement struct {
	Base
	Block     *BlockStatement `json:"block"`
	Handler   *CatchClause    `json:"handler"`
	Finalizer *BlockStatement `json:"finalizer"`
}

func (n *TryStatement) String() string {
	s := "Stmt(try " + n.Block.String()
	if n.Handler != nil {
		s += " " + n.Handler.String()
	}
	if n.Finalizer != nil {
		s += " finally " + n.Finalizer.String()
	}
	return s + ")"
}

type CatchClause struct {
	Base
	Param IBinding        `json:"param"`
	Body  *BlockStatement `json:"body"`
}

func (n *CatchClause) String() string {
	s := "catch"
	if n.Param != nil {
		s += " " + n.Param.String()
	}
	return s + " " + n.Body.String()
}

type WhileStatement struct {
	Base
	Test IExpr `json:"test"`
	Body IStmt `json:"body"`
}

func (n *WhileStatement) String() string {
	return "Stmt(while " + n.Test.String() + " " + n.Body.String() + ")"
}

type DoWhileStatement struct {
	Base
	Body IStmt `json:"body"`
	Test IExpr `json:"test"`
}

func (n *DoWhileStatement) String() string {
	return "Stmt(do " + n.Body.String() + " while " + n.Test.String() + ")"
}

// ForStatement is a for loop with a VariableDeclaration or expression as Init.
type ForStatement struct {
	Base
	Init   INode `json:"init"`
	Test   IExpr `json:"test"`
	Update IExpr `json:"update"`
	Body   IStmt `json:"body"`
}

func (n *ForStatement) String() string {
	s := "Stmt(for"
	if n.Init != nil {
		s += " " + n.Init.String()
	}
	s += " ;"
	if n.Test != nil {
		s += " " + n.Test.String()
	}
	s += " ;"
	if n.Update != nil {
		s += " " + n.Update.String()
	}
	return s + " " + n.Body.String() + ")"
}

// ForInStatement is a for-in loop with a VariableDeclaration or pattern as Left.
type ForInStatement struct {
	Base
	Left  INode `json:"left"`
	Right IExpr `json:"right"`
	Body  IStmt `json:"body"`
}

func (n *ForInStatement) String() string {
	return "Stmt(for " + n.Left.String() + " in " + n.Right.String() + " " + n.Body.String() + ")"
}

// ForOfStatement is a for-of or for-await-of loop with a VariableDeclaration or pattern as Left.
type ForOfStatement struct {
	Base
	Await bool  `json:"await"`
	Left  INode `json:"left"`
	Right IExpr `json:"right"`
	Body  IStmt `json:"body"`
}

func (n *ForOfStatement) String() string {
	s := "Stmt(for"
	if n.Await {
		s += " await"
	}
	return s + " " + n.Left.String() + " of " + n.Right.String() + " " + n.Body.String() + ")"
}

////////////////////////////////////////////////////////////////

type VariableDeclaration struct {
	Base
	Declarations []*VariableDeclarator `json:"declarations"`
	Kind         string                `json:"kind"`
}

func (n *VariableDeclaration) String() string {
	return "Decl(" + n.Kind + " " + join(n.Declarations, ", ") + ")"
}

type VariableDeclarator struct {
	Base
	ID   IBinding `json:"id"`
	Init IExpr    `json:"init"`
}

func (n *VariableDeclarator) String() string {
	if n.Init != nil {
		return n.ID.String() + " = " + n.Init.String()
	}
	return n.ID.String()
}

// Function holds the fields shared by function declarations, expressions and methods.
type Function struct {
	ID        *Identifier     `json:"id"`
	Params    []IBinding      `json:"params"`
	Body      *BlockStatement `json:"body"`
	Generator bool            `json:"generator"`
	Async     bool            `json:"async"`
}

func (f *Function) signature() string {
	s := ""
	if f.Generator {
		s += "*"
	}
	if f.ID != nil {
		s += f.ID.Name
	}
	return s + "(" + join(f.Params, ", ") + ") " + f.Body.String()
}

func (f *Function) String() string {
	s := "function"
	if f.Async {
		s = "async function"
	}
	if !f.Generator && f.ID != nil {
		s += " "
	}
	return s + f.signature()
}

type FunctionDeclaration struct {
	Base
	Function
	Expression bool `json:"expression"`
}

func (n *FunctionDeclaration) String() string {
	return "Decl(" + n.Function.String() + ")"
}

type FunctionExpression struct {
	Base
	Function
	Expression bool `json:"expression"`
}

func (n *FunctionExpression) String() string {
	return "(" + n.Function.String() + ")"
}

// Class holds the fields shared by class declarations and expressions.
type Class struct {
	ID         *Identifier `json:"id"`
	SuperClass IExpr       `json:"superClass"`
	Body       *ClassBody  `json:"body"`
}

func (c *Class) String() string {
	s := "class"
	if c.ID != nil {
		s += " " + c.ID.Name
	}
	if c.SuperClass != nil {
		s += " extends " + c.SuperClass.String()
	}
	return s + " " + c.Body.String()
}

type ClassDeclaration struct {
	Base
	Class
}

func (n *ClassDeclaration) String() string {
	return "Decl(" + n.Class.String() + ")"
}

type ClassExpression struct {
	Base
	Class
}

func (n *ClassExpression) String() string {
	return "(" + n.Class.String() + ")"
}

// ClassBody holds MethodDefinition, PropertyDefinition and StaticBlock elements.
type ClassBody struct {
	Base
	Body []INode `json:"body"`
}

func (n *ClassBody) String() string {
	return "{" + joinStmts(n.Body) + " }"
}

func propertyKey(key IExpr, computed bool) string {
	if computed {
		return "[" + key.String() + "]"
	}
	return key.String()
}

type MethodDefinition struct {
	Base
	Key      IExpr               `json:"key"`
	Value    *FunctionExpression `json:"value"`
	Kind     string              `json:"kind"` // constructor, method, get or set
	Computed bool                `json:"computed"`
	Static   bool                `json:"static"`
}

func (n *MethodDefinition) String() string {
	s := "Method("
	if n.Static {
		s += "static "
	}
	if n.Kind == "get" || n.Kind == "set" {
		s += n.Kind + " "
	}
	if n.Value.Async {
		s += "async "
	}
	if n.Value.Generator {
		s += "*"
	}
	return s + propertyKey(n.Key, n.Computed) + "(" + join(n.Value.Params, ", ") + ") " + n.Value.Body.String() + ")"
}

type PropertyDefinition struct {
	Base
	Key      IExpr `json:"key"`
	Value    IExpr `json:"value"`
	Computed bool  `json:"computed"`
	Static   bool  `json:"static"`
}

func (n *PropertyDefinition) String() string {
	s := "Field("
	if n.Static {
		s += "static "
	}
	s += propertyKey(n.Key, n.Computed)
	if n.Value != nil {
		s += " = " + n.Value.String()
	}
	return s + ")"
}

type StaticBlock struct {
	Base
	Body []IStmt `json:"body"`
}

func (n *StaticBlock) String() string {
	return "Static({" + joinStmts(n.Body) + " })"
}

////////////////////////////////////////////////////////////////

type Identifier struct {
	Base
	Name string `json:"name"`
}

func (n *Identifier) String() string {
	return n.Name
}

type PrivateIdentifier struct {
	Base
	Name string `json:"name"`
}

func (n *PrivateIdentifier) String() string {
	return "#" + n.Name
}

// RegExpValue is the pattern and flags of a regular expression literal.
type RegExpValue struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

// Literal is a null, boolean, numeric, BigInt, string or regular expression literal. Value is nil, bool, float64 or string.
// Values that JSON cannot represent, such as regular expressions and BigInts, are nil.
type Literal struct {
	Base
	Value  interface{}  `json:"value"`
	Raw    string       `json:"raw,omitempty"`
	Regex  *RegExpValue `json:"regex,omitempty"`
	Bigint string       `json:"bigint,omitempty"`

	raw   string
	octal int // offset of the first legacy octal escape in a string, or -1
}

func (n *Literal) String() string {
	return n.raw
}

type ThisExpression struct {
	Base
}

func (n *ThisExpression) String() string {
	return "this"
}

type Super struct {
	Base
}

func (n *Super) String() string {
	return "super"
}

type ArrayExpression struct {
	Base
	Elements []IExpr `json:"elements"` // nil elements are holes

	trailingComma int // offset of a comma following a final spread element, or 0
}

func (n *ArrayExpression) String() string {
	return "[" + join(n.Elements, ", ") + "]"
}

// ObjectExpression holds Property and SpreadElement properties.
type ObjectExpression struct {
	Base
	Properties []INode `json:"properties"`

	trailingComma int // offset of a comma following a final spread element, or 0
}

func (n *ObjectExpression) String() string {
	return "{" + join(n.Properties, ", ") + "}"
}

// Property is a property of an object literal or object pattern. Value is a FunctionExpression for methods and accessors.
type Property struct {
	Base
	Key       IExpr  `json:"key"`
	Value     INode  `json:"value"`
	Kind      string `json:"kind"` // init, get or set
	Method    bool   `json:"method"`
	Shorthand bool   `json:"shorthand"`
	Computed  bool   `json:"computed"`
}

func (n *Property) String() string {
	if n.Shorthand {
		return n.Value.String()
	} else if fn, ok := n.Value.(*FunctionExpression); ok && (n.Method || n.Kind != "init") {
		s := ""
		if n.Kind != "init" {
			s += n.Kind + " "
		}
		if fn.Async {
			s += "async "
		}
		if fn.Generator {
			s += "*"
		}
		return s + propertyKey(n.Key, n.Computed) + "(" + join(fn.Params, ", ") + ") " + fn.Body.String()
	}
	return propertyKey(n.Key, n.Computed) + ": " + n.Value.String()
}

type SpreadElement struct {
	Base
	Argument IExpr `json:"argument"`
}

func (n *SpreadElement) String() string {
	return "..." + n.Argument.String()
}

type ArrowFunctionExpression struct {
	Base
	ID         *Identifier `json:"id"`
	Params     []IBinding  `json:"params"`
	Body       INode       `json:"body"` // BlockStatement or expression
	Expression bool        `json:"expression"`
	Generator  bool        `json:"generator"`
	Async      bool        `json:"async"`
}

func (n *ArrowFunctionExpression) String() string {
	s := "("
	if n.Async {
		s += "async "
	}
	return s + "(" + join(n.Params, ", ") + ") => " + n.Body.String() + ")"
}

type UnaryExpression struct {
	Base
	Operator string `json:"operator"`
	Prefix   bool   `json:"prefix"`
	Argument IExpr  `json:"argument"`
}

func (n *UnaryExpression) String() string {
	if 'a' <= n.Operator[0] && n.Operator[0] <= 'z' {
		return "(" + n.Operator + " " + n.Argument.String() + ")"
	}
	return "(" + n.Operator + n.Argument.String() + ")"
}

type UpdateExpression struct {
	Base
	Operator string `json:"operator"`
	Prefix   bool   `json:"prefix"`
	Argument IExpr  `json:"argument"`
}

func (n *UpdateExpression) String() string {
	if n.Prefix {
		return "(" + n.Operator + n.Argument.String() + ")"
	}
	return "(" + n.Argument.String() + n.Operator + ")"
}

type BinaryExpression struct {
	Base
	Operator string `json:"operator"`
	Left     IExpr  `json:"left"` // PrivateIdentifier for #x in y
	Right    IExpr  `json:"right"`
}

func (n *BinaryExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

type LogicalExpression struct {
	Base
	Operator string `json:"operator"`
	Left     IExpr  `json:"left"`
	Right    IExpr  `json:"right"`
}

func (n *LogicalExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

type AssignmentExpression struct {
	Base
	Operator string   `json:"operator"`
	Left     IBinding `json:"left"`
	Right    IExpr    `json:"right"`
}

func (n *AssignmentExpression) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

type ConditionalExpression struct {
	Base
	Test       IExpr `json:"test"`
	Consequent IExpr `json:"consequent"`
	Alternate  IExpr `json:"alternate"`
}

func (n *ConditionalExpression) String() string {
	return "(" + n.Test.String() + " ? " + n.Consequent.String() + " : " + n.Alternate.String() + ")"
}

type SequenceExpression struct {
	Base
	Expressions []IExpr `json:"expressions"`
}

func (n *SequenceExpression) String() string {
	return "(" + join(n.Expressions, " , ") + ")"
}

// MemberExpression is a property access, Property is a PrivateIdentifier for private member access.
type MemberExpression struct {
	Base
	Object   IExpr `json:"object"`
	Property IExpr `json:"property"`
	Computed bool  `json:"computed"`
	Optional bool  `json:"optional"`
}

func (n *MemberExpression) String() string {
	s := n.Object.String()
	if n.Optional {
		s += "?."
	} else if !n.Computed {
		s += "."
	}
	if n.Computed {
		return s + "[" + n.Property.String() + "]"
	}
	return s + n.Property.String()
}

// ChainExpression wraps an optional chain.
type ChainExpression struct {
	Base
	Expression IExpr `json:"expression"`
}

func (n *ChainExpression) String() string {
	return "Chain(" + n.Expression.String() + ")"
}

type CallExpression struct {
	Base
	Callee    IExpr   `json:"callee"`
	Arguments []IExpr `json:"arguments"`
	Optional  bool    `json:"optional"`
}

func (n *CallExpression) String() string {
	s := n.Callee.String()
	if n.Optional {
		s += "?."
	}
	return s + "(" + join(n.Arguments, ", ") + ")"
}

type NewExpression struct {
	Base
	Callee    IExpr   `json:"callee"`
	Arguments []IExpr `json:"arguments"`
}

func (n *NewExpression) String() string {
	return "(new " + n.Callee.String() + "(" + join(n.Arguments, ", ") + "))"
}

type YieldExpression struct {
	Base
	Argument IExpr `json:"argument"`
	Delegate bool  `json:"delegate"`
}

func (n *YieldExpression) String() string {
	s := "(yield"
	if n.Delegate {
		s += "*"
	}
	if n.Argument != nil {
		s += " " + n.Argument.String()
	}
	return s + ")"
}

type AwaitExpression struct {
	Base
	Argument IExpr `json:"argument"`
}

func (n *AwaitExpression) String() string {
	return "(await " + n.Argument.String() + ")"
}

// TemplateValue holds the raw and cooked strings of a template element. Cooked is nil for invalid escapes in tagged templates.
type TemplateValue struct {
	Raw    string  `json:"raw"`
	Cooked *string `json:"cooked"`
}

type TemplateElement struct {
	Base
	Value TemplateValue `json:"value"`
	Tail  bool          `json:"tail"`
}

func (n *TemplateElement) String() string {
	return n.Value.Raw
}

type TemplateLiteral struct {
	Base
	Quasis      []*TemplateElement `json:"quasis"`
	Expressions []IExpr            `json:"expressions"`
}

func (n *TemplateLiteral) String() string {
	s := "`"
	for i, quasi := range n.Quasis {
		s += quasi.Value.Raw
		if i < len(n.Expressions) {
			s += "${" + n.Expressions[i].String() + "}"
		}
	}
	return s + "`"
}

type TaggedTemplateExpression struct {
	Base
	Tag   IExpr            `json:"tag"`
	Quasi *TemplateLiteral `json:"quasi"`
}

func (n *TaggedTemplateExpression) String() string {
	return n.Tag.String() + n.Quasi.String()
}

// MetaProperty is new.target or import.meta.
type MetaProperty struct {
	Base
	Meta     *Identifier `json:"meta"`
	Property *Identifier `json:"property"`
}

func (n *MetaProperty) String() string {
	return n.Meta.Name + "." + n.Property.Name
}

// ImportExpression is a dynamic import, Options is the optional second argument.
type ImportExpression struct {
	Base
	Source  IExpr `json:"source"`
	Options IExpr `json:"options,omitempty"`
}

func (n *ImportExpression) String() string {
	if n.Options != nil {
		return "import(" + n.Source.String() + ", " + n.Options.String() + ")"
	}
	return "import(" + n.Source.String() + ")"
}

////////////////////////////////////////////////////////////////

type ArrayPattern struct {
	Base
	Elements []IBinding `json:"elements"` // nil elements are holes
}

func (n *ArrayPattern) String() string {
	return "[" + join(n.Elements, ", ") + "]"
}

// ObjectPattern holds Property and RestElement properties.
type ObjectPattern struct {
	Base
	Properties []INode `json:"properties"`
}

func (n *ObjectPattern) String() string {
	return "{" + join(n.Properties, ", ") + "}"
}

type AssignmentPattern struct {
	Base
	Left  IBinding `json:"left"`
	Right IExpr    `json:"right"`
}

func (n *AssignmentPattern) String() string {
	return n.Left.String() + " = " + n.Right.String()
}

type RestElement struct {
	Base
	Argument IBinding `json:"argument"`
}

func (n *RestElement) String() string {
	return "..." + n.Argument.String()
}

////////////////////////////////////////////////////////////////

// ImportDeclaration holds ImportSpecifier, ImportDefaultSpecifier and ImportNamespaceSpecifier specifiers.
type ImportDeclaration struct {
	Base
	Specifiers []INode            `json:"specifiers"`
	Source     *Literal           `json:"source"`
	Attributes []*ImportAttribute `json:"attributes"`
}

func (n *ImportDeclaration) String() string {
	s := "Stmt(import "
	named := []string{}
	for _, spec := range n.Specifiers {
		switch spec := spec.(type) {
		case *ImportDefaultSpecifier:
			s += spec.Local.Name + ", "
		case *ImportNamespaceSpecifier:
			s += "* as " + spec.Local.Name + ", "
		case *ImportSpecifier:
			named = append(named, spec.String())
		}
	}
	if 0 < len(named) {
		s += "{" + strings.Join(named, ", ") + "}, "
	}
	if 0 < len(n.Specifiers) {
		s = s[:len(s)-2] + " from "
	}
	return s + n.Source.String() + attributesString(n.Attributes) + ")"
}

type ImportSpecifier struct {
	Base
	Imported IExpr       `json:"imported"` // Identifier or string Literal
	Local    *Identifier `json:"local"`
}

func (n *ImportSpecifier) String() string {
	if id, ok := n.Imported.(*Identifier); ok && id.Name == n.Local.Name {
		return n.Local.Name
	}
	return n.Imported.String() + " as " + n.Local.Name
}

type ImportDefaultSpecifier struct {
	Base
	Local *Identifier `json:"local"`
}

func (n *ImportDefaultSpecifier) String() string {
	return n.Local.Name
}

type ImportNamespaceSpecifier struct {
	Base
	Local *Identifier `json:"local"`
}

func (n *ImportNamespaceSpecifier) String() string {
	return "* as " + n.Local.Name
}

type ImportAttribute struct {
	Base
	Key   IExpr    `json:"key"` // Identifier or string Literal
	Value *Literal `json:"value"`
}

func (n *ImportAttribute) String() string {
	return n.Key.String() + ": " + n.Value.String()
}

func attributesString(attrs []*ImportAttribute) string {
	if len(attrs) == 0 {
		return ""
	}
	return " with {" + join(attrs, ", ") + "}"
}

type ExportNamedDeclaration struct {
	Base
	Declaration IStmt              `json:"declaration"`
	Specifiers  []*ExportSpecifier `json:"specifiers"`
	Source      *Literal           `json:"source"`
	Attributes  []*ImportAttribute `json:"attributes"`
}

func (n *ExportNamedDeclaration) String() string {
	if n.Declaration != nil {
		return "Stmt(export " + n.Declaration.String() + ")"
	}
	s := "Stmt(export {" + join(n.Specifiers, ", ") + "}"
	if n.Source != nil {
		s += " from " + n.Source.String() + attributesString(n.Attributes)
	}
	return s + ")"
}

type ExportSpecifier struct {
	Base
	Local    IExpr `json:"local"`    // Identifier or string Literal
	Exported IExpr `json:"exported"` // Identifier or string Literal
}

func (n *ExportSpecifier) String() string {
	local, exported := n.Local.String(), n.Exported.String()
	if local == exported {
		return local
	}
	return local + " as " + exported
}

// ExportDefaultDeclaration exports a FunctionDeclaration, ClassDeclaration or expression.
type ExportDefaultDeclaration struct {
	Base
	Declaration INode `json:"declaration"`
}

func (n *ExportDefaultDeclaration) String() string {
	return "Stmt(export default " + n.Declaration.String() + ")"
}

type ExportAllDeclaration struct {
	Base
	Exported   IExpr              `json:"exported"`
	Source     *Literal           `json:"source"`
	Attributes []*ImportAttribute `json:"attributes"`
}

func (n *ExportAllDeclaration) String() string {
	s := "Stmt(export *"
	if n.Exported != nil {
		s += " as " + n.Exported.String()
	}
	return s + " from " + n.Source.String() + attributesString(n.Attributes) + ")"
}

////////////////////////////////////////////////////////////////

func (n *ExpressionStatement) stmtNode()      {}
func (n *BlockStatement) stmtNode()           {}
func (n *EmptyStatement) stmtNode()           {}
func (n *DebuggerStatement) stmtNode()        {}
func (n *WithStatement) stmtNode()            {}
func (n *ReturnStatement) stmtNode()          {}
func (n *LabeledStatement) stmtNode()         {}
func (n *BreakStatement) stmtNode()           {}
func (n *ContinueStatement) stmtNode()        {}
func (n *IfStatement) stmtNode()              {}
func (n *SwitchStatement) stmtNode()          {}
func (n *ThrowStatement) stmtNode()           {}
func (n *TryStatement) stmtNode()             {}
func (n *WhileStatement) stmtNode()           {}
func (n *DoWhileStatement) stmtNode()         {}
func (n *ForStatement) stmtNode()             {}
func (n *ForInStatement) stmtNode()           {}
func (n *ForOfStatement) stmtNode()           {}
func (n *VariableDeclaration) stmtNode()      {}
func (n *FunctionDeclaration) stmtNode()      {}
func (n *ClassDeclaration) stmtNode()         {}
func (n *ImportDeclaration) stmtNode()        {}
func (n *ExportNamedDeclaration) stmtNode()   {}
func (n *ExportDefaultDeclaration) stmtNode() {}
func (n *ExportAllDeclaration) stmtNode()     {}

func (n *Identifier) exprNode()               {}
func (n *PrivateIdentifier) exprNode()        {}
func (n *Literal) exprNode()                  {}
func (n *ThisExpression) exprNode()           {}
func (n *Super) exprNode()                    {}
func (n *ArrayExpression) exprNode()          {}
func (n *ObjectExpression) exprNode()         {}
func (n *SpreadElement) exprNode()            {}
func (n *FunctionExpression) exprNode()       {}
func (n *ArrowFunctionExpression) exprNode()  {}
func (n *ClassExpression) exprNode()          {}
func (n *UnaryExpression) exprNode()          {}
func (n *UpdateExpression) exprNode()         {}
func (n *BinaryExpression) exprNode()         {}
func (n *LogicalExpression) exprNode()        {}
func (n *AssignmentExpression) exprNode()     {}
func (n *ConditionalExpression) exprNode()    {}
func (n *SequenceExpression) exprNode()       {}
func (n *MemberExpression) exprNode()         {}
func (n *ChainExpression) exprNode()          {}
func (n *CallExpression) exprNode()           {}
func (n *NewExpression) exprNode()            {}
func (n *YieldExpression) exprNode()          {}
func (n *AwaitExpression) exprNode()          {}
func (n *TemplateLiteral) exprNode()          {}
func (n *TaggedTemplateExpression) exprNode() {}
func (n *MetaProperty) exprNode()             {}
func (n *ImportExpression) exprNode()         {}

func (n *Identifier) bindingNode()        {}
func (n *MemberExpression) bindingNode()  {}
func (n *ArrayPattern) bindingNode()      {}
func (n *ObjectPattern) bindingNode()     {}
func (n *AssignmentPattern) bindingNode() {}
func (n *RestElement) bindingNode()       {}
