package js

import (
	"math"
	"reflect"

	"github.com/esparse/parse"
)

// finish sets the type and span of a node that ends with the previous token.
func (p *Parser) finish(n INode, start int) {
	p.finishAt(n, start, p.prevEnd)
}

// finishAt sets the type and span of a node, and its source location when requested.
func (p *Parser) finishAt(n INode, start, end int) {
	b := n.base()
	b.Type = reflect.TypeOf(n).Elem().Name()
	b.Start, b.End = start, end
	if p.lines != nil {
		b.Loc = p.loc(start, end)
	}
}

func (p *Parser) loc(start, end int) *SourceLocation {
	startLine, startCol := p.lines.LineCol(start)
	endLine, endCol := p.lines.LineCol(end)
	return &SourceLocation{
		Start: Position{Line: startLine, Column: startCol},
		End:   Position{Line: endLine, Column: endCol},
	}
}

// copyIdentifier returns a new identifier with the same name and span, used where ESTree shares a node between two fields.
func (p *Parser) copyIdentifier(id *Identifier) *Identifier {
	dup := &Identifier{Name: id.Name}
	dup.Base = id.Base
	dup.parens = 0
	return dup
}

////////////////////////////////////////////////////////////////

func (p *Parser) newLiteral(value interface{}, raw string) *Literal {
	lit := &Literal{Value: value, raw: raw, octal: -1}
	if p.o.RecordRawLiteralText {
		lit.Raw = raw
	}
	return lit
}

func (p *Parser) parseStringLiteral(ctx Context) *Literal {
	start := p.start
	raw := string(p.data)
	value, octal, escErr := decodeEscapes(p.data[1:len(p.data)-1], false)
	if escErr != nil {
		p.failAt(parse.LexicalError, start+1+escErr.Offset, escErr.Message)
		return nil
	}
	if octal != -1 {
		octal += start + 1
		if ctx.has(ctxStrict) {
			p.failEarly(octal, "octal escape sequences are not allowed in strict mode")
			return nil
		} else if !ctx.sloppyWebCompat() {
			p.failEarly(octal, "octal escape sequences are not allowed")
			return nil
		}
	}
	lit := p.newLiteral(value, raw)
	lit.octal = octal
	p.next()
	p.finish(lit, start)
	return lit
}

func (p *Parser) parseNumericLiteral(ctx Context) *Literal {
	start := p.start
	raw := string(p.data)
	if p.tt == LegacyOctalToken {
		if ctx.has(ctxStrict) {
			p.failEarly(start, "legacy octal literals are not allowed in strict mode")
			return nil
		} else if !ctx.sloppyWebCompat() {
			p.failEarly(start, "legacy octal literals are not allowed")
			return nil
		}
	}
	f, bigint := decodeNumber(p.tt, p.data)
	var lit *Literal
	if bigint != "" {
		lit = p.newLiteral(nil, raw)
		lit.Bigint = bigint
	} else if math.IsInf(f, 0) || math.IsNaN(f) {
		lit = p.newLiteral(nil, raw) // not representable in JSON
	} else {
		lit = p.newLiteral(f, raw)
	}
	p.next()
	p.finish(lit, start)
	return lit
}

func (p *Parser) parseRegExpLiteral() *Literal {
	tt, data := p.l.RegExp()
	p.rescanned(tt, data)
	if tt == ErrorToken {
		return nil
	}
	start := p.start
	pattern, flags := splitRegExp(p.data)
	lit := p.newLiteral(nil, string(p.data))
	lit.Regex = &RegExpValue{Pattern: pattern, Flags: flags}
	p.next()
	p.finish(lit, start)
	return lit
}

// parseTemplate parses a template literal. In tagged templates invalid escape sequences give a null cooked value.
func (p *Parser) parseTemplate(ctx Context, tagged bool) *TemplateLiteral {
	start := p.start
	tmpl := &TemplateLiteral{Quasis: []*TemplateElement{}, Expressions: []IExpr{}}
	for {
		tt, data, elemStart := p.tt, p.data, p.start
		tail := tt == TemplateToken || tt == TemplateEndToken
		body := data[1:]
		if tail {
			body = body[:len(body)-1]
		} else {
			body = body[:len(body)-2]
		}

		elem := &TemplateElement{Tail: tail}
		elem.Value.Raw = normalizeTemplateRaw(body)
		cooked, _, escErr := decodeEscapes(body, true)
		if escErr == nil {
			elem.Value.Cooked = &cooked
		} else if !tagged {
			p.failAt(parse.LexicalError, elemStart+1+escErr.Offset, escErr.Message)
			return nil
		}
		p.finishAt(elem, elemStart+1, elemStart+1+len(body))
		tmpl.Quasis = append(tmpl.Quasis, elem)
		if tail {
			p.next()
			break
		}

		p.next()
		expr := p.parseExpr(ctx.with(ctxAllowIn), nil)
		if p.err != nil {
			return nil
		} else if p.tt != CloseBraceToken {
			p.fail("template literal", CloseBraceToken)
			return nil
		}
		tmpl.Expressions = append(tmpl.Expressions, expr)
		p.rescanned(p.l.TemplateContinuation())
		if p.tt == ErrorToken {
			return nil
		}
	}
	p.finish(tmpl, start)
	return tmpl
}
