package js

import (
	"html"

	"github.com/esparse/parse"
)

// JSXElement is an element with its children, ClosingElement is nil for self-closing elements.
type JSXElement struct {
	Base
	OpeningElement *JSXOpeningElement `json:"openingElement"`
	Children       []INode            `json:"children"`
	ClosingElement *JSXClosingElement `json:"closingElement"`
}

func (n *JSXElement) String() string {
	s := n.OpeningElement.String()
	for _, child := range n.Children {
		s += child.String()
	}
	if n.ClosingElement != nil {
		s += n.ClosingElement.String()
	}
	return s
}

type JSXFragment struct {
	Base
	OpeningFragment *JSXOpeningFragment `json:"openingFragment"`
	Children        []INode             `json:"children"`
	ClosingFragment *JSXClosingFragment `json:"closingFragment"`
}

func (n *JSXFragment) String() string {
	s := "<>"
	for _, child := range n.Children {
		s += child.String()
	}
	return s + "</>"
}

// JSXOpeningElement holds JSXAttribute and JSXSpreadAttribute attributes.
type JSXOpeningElement struct {
	Base
	Name        INode   `json:"name"` // JSXIdentifier, JSXNamespacedName or JSXMemberExpression
	Attributes  []INode `json:"attributes"`
	SelfClosing bool    `json:"selfClosing"`
}

func (n *JSXOpeningElement) String() string {
	s := "<" + n.Name.String()
	for _, attr := range n.Attributes {
		s += " " + attr.String()
	}
	if n.SelfClosing {
		return s + " />"
	}
	return s + ">"
}

type JSXClosingElement struct {
	Base
	Name INode `json:"name"`
}

func (n *JSXClosingElement) String() string {
	return "</" + n.Name.String() + ">"
}

type JSXOpeningFragment struct {
	Base
}

func (n *JSXOpeningFragment) String() string {
	return "<>"
}

type JSXClosingFragment struct {
	Base
}

func (n *JSXClosingFragment) String() string {
	return "</>"
}

// JSXAttribute is a name with an optional string literal, expression container or element value.
type JSXAttribute struct {
	Base
	Name  INode `json:"name"` // JSXIdentifier or JSXNamespacedName
	Value INode `json:"value"`
}

func (n *JSXAttribute) String() string {
	if n.Value == nil {
		return n.Name.String()
	}
	return n.Name.String() + "=" + n.Value.String()
}

type JSXSpreadAttribute struct {
	Base
	Argument IExpr `json:"argument"`
}

func (n *JSXSpreadAttribute) String() string {
	return "{..." + n.Argument.String() + "}"
}

type JSXExpressionContainer struct {
	Base
	Expression INode `json:"expression"` // expression or JSXEmptyExpression
}

func (n *JSXExpressionContainer) String() string {
	return "{" + n.Expression.String() + "}"
}

type JSXEmptyExpression struct {
	Base
}

func (n *JSXEmptyExpression) String() string {
	return ""
}

type JSXSpreadChild struct {
	Base
	Expression IExpr `json:"expression"`
}

func (n *JSXSpreadChild) String() string {
	return "{..." + n.Expression.String() + "}"
}

// JSXText is text between tags, Value has the HTML character references decoded.
type JSXText struct {
	Base
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

func (n *JSXText) String() string {
	return n.Raw
}

type JSXIdentifier struct {
	Base
	Name string `json:"name"`
}

func (n *JSXIdentifier) String() string {
	return n.Name
}

type JSXNamespacedName struct {
	Base
	Namespace *JSXIdentifier `json:"namespace"`
	Name      *JSXIdentifier `json:"name"`
}

func (n *JSXNamespacedName) String() string {
	return n.Namespace.Name + ":" + n.Name.Name
}

type JSXMemberExpression struct {
	Base
	Object   INode          `json:"object"` // JSXIdentifier or JSXMemberExpression
	Property *JSXIdentifier `json:"property"`
}

func (n *JSXMemberExpression) String() string {
	return n.Object.String() + "." + n.Property.Name
}

func (n *JSXElement) exprNode()  {}
func (n *JSXFragment) exprNode() {}

////////////////////////////////////////////////////////////////

// nextJSX advances to the next token inside a JSX tag, or between tags for children.
func (p *Parser) nextJSX(child bool) {
	if p.tt == ErrorToken {
		return
	}
	p.prevEnd = p.start + len(p.data)
	p.prevLT = false
	if child {
		p.rescanned(p.l.NextJSXChild())
	} else {
		p.rescanned(p.l.NextJSXTag())
	}
}

// parseJSX parses a JSX element or fragment in expression position and resumes regular scanning after it.
func (p *Parser) parseJSX(ctx Context) IExpr {
	start := p.start
	p.nextJSX(false)
	elem := p.parseJSXElement(ctx, start)
	if elem == nil {
		return nil
	}
	p.next()
	return elem
}

// parseJSXElement parses an element whose less than sign starts at start, the current token follows it. It ends on the
// final greater than sign without advancing.
func (p *Parser) parseJSXElement(ctx Context, start int) IExpr {
	if !p.enter() {
		return nil
	}
	defer p.exit()

	if p.tt == GtToken {
		open := &JSXOpeningFragment{}
		p.finishAt(open, start, p.start+1)
		children, closeStart := p.parseJSXChildren(ctx)
		if p.err != nil {
			return nil
		} else if p.tt != GtToken {
			p.failAt(parse.SyntaxError, closeStart, "expected corresponding JSX closing tag for <>")
			return nil
		}
		closing := &JSXClosingFragment{}
		p.finishAt(closing, closeStart, p.start+1)
		frag := &JSXFragment{OpeningFragment: open, Children: children, ClosingFragment: closing}
		p.finishAt(frag, start, p.start+1)
		return frag
	}

	name := p.parseJSXElementName(true)
	if name == nil {
		return nil
	}
	open := &JSXOpeningElement{Name: name, Attributes: []INode{}}
	for p.tt != GtToken && p.tt != DivToken {
		attr := p.parseJSXAttribute(ctx)
		if attr == nil {
			return nil
		}
		open.Attributes = append(open.Attributes, attr)
	}
	if p.tt == DivToken {
		p.nextJSX(false)
		if p.tt != GtToken {
			p.fail("JSX element", GtToken)
			return nil
		}
		open.SelfClosing = true
		p.finishAt(open, start, p.start+1)
		elem := &JSXElement{OpeningElement: open, Children: []INode{}}
		p.finishAt(elem, start, p.start+1)
		return elem
	}
	p.finishAt(open, start, p.start+1)

	children, closeStart := p.parseJSXChildren(ctx)
	if p.err != nil {
		return nil
	}
	var closeName INode
	if p.tt != GtToken {
		if closeName = p.parseJSXElementName(true); closeName == nil {
			return nil
		}
	}
	if closeName == nil || closeName.String() != name.String() {
		p.failAt(parse.SyntaxError, closeStart, "expected corresponding JSX closing tag for <%s>", name.String())
		return nil
	} else if p.tt != GtToken {
		p.fail("JSX closing tag", GtToken)
		return nil
	}
	closing := &JSXClosingElement{Name: closeName}
	p.finishAt(closing, closeStart, p.start+1)
	elem := &JSXElement{OpeningElement: open, Children: children, ClosingElement: closing}
	p.finishAt(elem, start, p.start+1)
	return elem
}

// parseJSXChildren parses children until a closing tag. It returns the offset of the closing tag, whose name follows.
func (p *Parser) parseJSXChildren(ctx Context) ([]INode, int) {
	children := []INode{}
	for {
		p.nextJSX(true)
		switch p.tt {
		case JSXTextToken:
			raw := string(p.data)
			text := &JSXText{Value: html.UnescapeString(raw), Raw: raw}
			p.finishAt(text, p.start, p.start+len(p.data))
			children = append(children, text)
		case OpenBraceToken:
			child := p.parseJSXExpressionContainer(ctx, true)
			if child == nil {
				return nil, 0
			}
			children = append(children, child)
		case LtToken:
			start := p.start
			p.nextJSX(false)
			if p.tt == DivToken {
				p.nextJSX(false)
				return children, start
			}
			child := p.parseJSXElement(ctx, start)
			if child == nil {
				return nil, 0
			}
			children = append(children, child)
		default:
			p.fail("JSX element")
			return nil, 0
		}
	}
}

// parseJSXIdentifier parses a name inside a tag and advances.
func (p *Parser) parseJSXIdentifier() *JSXIdentifier {
	if p.tt != IdentifierToken {
		p.fail("JSX tag")
		return nil
	}
	start := p.start
	id := &JSXIdentifier{Name: string(p.data)}
	p.nextJSX(false)
	p.finish(id, start)
	return id
}

// parseJSXElementName parses a name, a namespaced name or, for element names, a member expression.
func (p *Parser) parseJSXElementName(element bool) INode {
	start := p.start
	id := p.parseJSXIdentifier()
	if id == nil {
		return nil
	}
	if p.tt == ColonToken {
		p.nextJSX(false)
		name := p.parseJSXIdentifier()
		if name == nil {
			return nil
		}
		ns := &JSXNamespacedName{Namespace: id, Name: name}
		p.finish(ns, start)
		return ns
	}
	var name INode = id
	for element && p.tt == DotToken {
		p.nextJSX(false)
		prop := p.parseJSXIdentifier()
		if prop == nil {
			return nil
		}
		member := &JSXMemberExpression{Object: name, Property: prop}
		p.finish(member, start)
		name = member
	}
	return name
}

func (p *Parser) parseJSXAttribute(ctx Context) INode {
	start := p.start
	if p.tt == OpenBraceToken {
		p.next()
		if !p.consume("JSX spread attribute", EllipsisToken) {
			return nil
		}
		arg := p.parseAssignExpr(ctx.with(ctxAllowIn), nil)
		if p.err != nil {
			return nil
		} else if p.tt != CloseBraceToken {
			p.fail("JSX spread attribute", CloseBraceToken)
			return nil
		}
		attr := &JSXSpreadAttribute{Argument: arg}
		p.finishAt(attr, start, p.start+1)
		p.nextJSX(false)
		return attr
	}

	name := p.parseJSXElementName(false)
	if name == nil {
		return nil
	}
	attr := &JSXAttribute{Name: name}
	if p.tt == EqToken {
		p.nextJSX(false)
		switch p.tt {
		case StringToken:
			raw := string(p.data)
			lit := p.newLiteral(html.UnescapeString(raw[1:len(raw)-1]), raw)
			p.finishAt(lit, p.start, p.start+len(p.data))
			attr.Value = lit
		case OpenBraceToken:
			container := p.parseJSXExpressionContainer(ctx, false)
			if container == nil {
				return nil
			} else if expr, ok := container.(*JSXExpressionContainer); ok {
				if _, empty := expr.Expression.(*JSXEmptyExpression); empty {
					p.failAt(parse.SyntaxError, expr.Start, "JSX attributes must only be assigned a non-empty expression")
					return nil
				}
			}
			attr.Value = container
		case LtToken:
			elemStart := p.start
			p.nextJSX(false)
			elem := p.parseJSXElement(ctx, elemStart)
			if elem == nil {
				return nil
			}
			attr.Value = elem
		default:
			p.fail("JSX attribute")
			return nil
		}
		p.nextJSX(false)
	}
	p.finish(attr, start)
	return attr
}

// parseJSXExpressionContainer parses an expression between braces, it ends on the closing brace without advancing.
// Children may also be empty or a spread.
func (p *Parser) parseJSXExpressionContainer(ctx Context, child bool) INode {
	start := p.start
	p.next()
	if p.tt == CloseBraceToken {
		empty := &JSXEmptyExpression{}
		p.finishAt(empty, start+1, p.start)
		container := &JSXExpressionContainer{Expression: empty}
		p.finishAt(container, start, p.start+1)
		return container
	}

	spread := false
	if child && p.tt == EllipsisToken {
		spread = true
		p.next()
	}
	expr := p.parseExpr(ctx.with(ctxAllowIn), nil)
	if p.err != nil {
		return nil
	} else if p.tt != CloseBraceToken {
		p.fail("JSX expression", CloseBraceToken)
		return nil
	}
	if spread {
		child := &JSXSpreadChild{Expression: expr}
		p.finishAt(child, start, p.start+1)
		return child
	}
	container := &JSXExpressionContainer{Expression: expr}
	p.finishAt(container, start, p.start+1)
	return container
}
