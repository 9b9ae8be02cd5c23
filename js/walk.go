package js

import "reflect"

// IVisitor represents the AST Visitor
// Each INode encountered by `Walk` is passed to `Enter`, children nodes will be ignored if the returned IVisitor is nil
type IVisitor interface {
	Enter(n INode) IVisitor
}

// Walk traverses an AST in depth-first order
func Walk(v IVisitor, n INode) {
	if isnil(n) {
		return
	}

	if v = v.Enter(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *Program:
		walkList(v, n.Body)
	case *ExpressionStatement:
		Walk(v, n.Expression)
	case *BlockStatement:
		walkList(v, n.Body)
	case *WithStatement:
		Walk(v, n.Object)
		Walk(v, n.Body)
	case *ReturnStatement:
		Walk(v, n.Argument)
	case *LabeledStatement:
		Walk(v, n.Label)
		Walk(v, n.Body)
	case *BreakStatement:
		Walk(v, n.Label)
	case *ContinueStatement:
		Walk(v, n.Label)
	case *IfStatement:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)
	case *SwitchStatement:
		Walk(v, n.Discriminant)
		walkList(v, n.Cases)
	case *SwitchCase:
		Walk(v, n.Test)
		walkList(v, n.Consequent)
	case *ThrowStatement:
		Walk(v, n.Argument)
	case *TryStatement:
		Walk(v, n.Block)
		Walk(v, n.Handler)
		Walk(v, n.Finalizer)
	case *CatchClause:
		Walk(v, n.Param)
		Walk(v, n.Body)
	case *WhileStatement:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *DoWhileStatement:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *ForStatement:
		Walk(v, n.Init)
		Walk(v, n.Test)
		Walk(v, n.Update)
		Walk(v, n.Body)
	case *ForInStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ForOfStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *VariableDeclaration:
		walkList(v, n.Declarations)
	case *VariableDeclarator:
		Walk(v, n.ID)
		Walk(v, n.Init)
	case *FunctionDeclaration:
		walkFunction(v, &n.Function)
	case *FunctionExpression:
		walkFunction(v, &n.Function)
	case *ArrowFunctionExpression:
		walkList(v, n.Params)
		Walk(v, n.Body)
	case *ClassDeclaration:
		walkClass(v, &n.Class)
	case *ClassExpression:
		walkClass(v, &n.Class)
	case *ClassBody:
		walkList(v, n.Body)
	case *MethodDefinition:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *PropertyDefinition:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *StaticBlock:
		walkList(v, n.Body)
	case *ArrayExpression:
		walkList(v, n.Elements)
	case *ObjectExpression:
		walkList(v, n.Properties)
	case *Property:
		if !n.Shorthand {
			Walk(v, n.Key)
		}
		Walk(v, n.Value)
	case *SpreadElement:
		Walk(v, n.Argument)
	case *UnaryExpression:
		Walk(v, n.Argument)
	case *UpdateExpression:
		Walk(v, n.Argument)
	case *BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *LogicalExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *AssignmentExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ConditionalExpression:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)
	case *SequenceExpression:
		walkList(v, n.Expressions)
	case *MemberExpression:
		Walk(v, n.Object)
		Walk(v, n.Property)
	case *ChainExpression:
		Walk(v, n.Expression)
	case *CallExpression:
		Walk(v, n.Callee)
		walkList(v, n.Arguments)
	case *NewExpression:
		Walk(v, n.Callee)
		walkList(v, n.Arguments)
	case *YieldExpression:
		Walk(v, n.Argument)
	case *AwaitExpression:
		Walk(v, n.Argument)
	case *TemplateLiteral:
		for i, quasi := range n.Quasis {
			Walk(v, quasi)
			if i < len(n.Expressions) {
				Walk(v, n.Expressions[i])
			}
		}
	case *TaggedTemplateExpression:
		Walk(v, n.Tag)
		Walk(v, n.Quasi)
	case *MetaProperty:
		Walk(v, n.Meta)
		Walk(v, n.Property)
	case *ImportExpression:
		Walk(v, n.Source)
		Walk(v, n.Options)
	case *ArrayPattern:
		walkList(v, n.Elements)
	case *ObjectPattern:
		walkList(v, n.Properties)
	case *AssignmentPattern:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *RestElement:
		Walk(v, n.Argument)
	case *ImportDeclaration:
		walkList(v, n.Specifiers)
		Walk(v, n.Source)
		walkList(v, n.Attributes)
	case *ImportSpecifier:
		Walk(v, n.Imported)
		Walk(v, n.Local)
	case *ImportDefaultSpecifier:
		Walk(v, n.Local)
	case *ImportNamespaceSpecifier:
		Walk(v, n.Local)
	case *ImportAttribute:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *ExportNamedDeclaration:
		Walk(v, n.Declaration)
		walkList(v, n.Specifiers)
		Walk(v, n.Source)
		walkList(v, n.Attributes)
	case *ExportSpecifier:
		Walk(v, n.Local)
		Walk(v, n.Exported)
	case *ExportDefaultDeclaration:
		Walk(v, n.Declaration)
	case *ExportAllDeclaration:
		Walk(v, n.Exported)
		Walk(v, n.Source)
		walkList(v, n.Attributes)
	case *JSXElement:
		Walk(v, n.OpeningElement)
		walkList(v, n.Children)
		Walk(v, n.ClosingElement)
	case *JSXFragment:
		Walk(v, n.OpeningFragment)
		walkList(v, n.Children)
		Walk(v, n.ClosingFragment)
	case *JSXOpeningElement:
		Walk(v, n.Name)
		walkList(v, n.Attributes)
	case *JSXClosingElement:
		Walk(v, n.Name)
	case *JSXAttribute:
		Walk(v, n.Name)
		Walk(v, n.Value)
	case *JSXSpreadAttribute:
		Walk(v, n.Argument)
	case *JSXExpressionContainer:
		Walk(v, n.Expression)
	case *JSXSpreadChild:
		Walk(v, n.Expression)
	case *JSXNamespacedName:
		Walk(v, n.Namespace)
		Walk(v, n.Name)
	case *JSXMemberExpression:
		Walk(v, n.Object)
		Walk(v, n.Property)
	}
}

func walkList[T INode](v IVisitor, list []T) {
	for _, item := range list {
		Walk(v, item)
	}
}

func walkFunction(v IVisitor, f *Function) {
	Walk(v, f.ID)
	walkList(v, f.Params)
	Walk(v, f.Body)
}

func walkClass(v IVisitor, c *Class) {
	Walk(v, c.ID)
	Walk(v, c.SuperClass)
	Walk(v, c.Body)
}

// isnil returns true for nil interfaces and for interfaces holding a nil pointer, such as an absent label.
func isnil(n INode) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
