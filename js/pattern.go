package js

import "github.com/esparse/parse"

// parseIdentifierReference parses an identifier that refers to a binding.
func (p *Parser) parseIdentifierReference(ctx Context) *Identifier {
	if !IsIdentifier(p.tt) {
		p.fail("expression")
		return nil
	}
	start, name := p.start, p.name()
	if !p.checkIdentifier(ctx, name, start) {
		return nil
	}
	id := &Identifier{Name: name}
	p.next()
	p.finish(id, start)
	return id
}

func (p *Parser) parseLabelIdentifier(ctx Context) *Identifier {
	return p.parseIdentifierReference(ctx)
}

// parseBindingIdentifier parses an identifier that is declared.
func (p *Parser) parseBindingIdentifier(ctx Context) *Identifier {
	if !IsIdentifier(p.tt) {
		p.fail("binding")
		return nil
	}
	start, name := p.start, p.name()
	if !p.checkBinding(ctx, name, start) {
		return nil
	}
	id := &Identifier{Name: name}
	p.next()
	p.finish(id, start)
	return id
}

// parseBindingTarget parses an identifier, array pattern or object pattern.
func (p *Parser) parseBindingTarget(ctx Context) IBinding {
	switch p.tt {
	case OpenBracketToken:
		return p.parseArrayPattern(ctx)
	case OpenBraceToken:
		return p.parseObjectPattern(ctx)
	}
	if id := p.parseBindingIdentifier(ctx); id != nil {
		return id
	}
	return nil
}

// parseBindingElement parses a binding target with an optional default value.
func (p *Parser) parseBindingElement(ctx Context) IBinding {
	start := p.start
	target := p.parseBindingTarget(ctx)
	if p.err != nil || p.tt != EqToken {
		return target
	}
	p.next()
	init := p.parseAssignExpr(ctx.with(ctxAllowIn), nil)
	if p.err != nil {
		return nil
	}
	pattern := &AssignmentPattern{Left: target, Right: init}
	p.finish(pattern, start)
	return pattern
}

// parseRestElement parses a rest element, in object patterns only an identifier is allowed.
func (p *Parser) parseRestElement(ctx Context, array bool) *RestElement {
	start := p.start
	p.next() // ...
	var arg IBinding
	if array {
		arg = p.parseBindingTarget(ctx)
	} else if id := p.parseBindingIdentifier(ctx); id != nil {
		arg = id
	}
	if p.err != nil {
		return nil
	} else if p.tt == EqToken {
		p.failAt(parse.SyntaxError, p.start, "rest elements cannot have a default value")
		return nil
	}
	rest := &RestElement{Argument: arg}
	p.finish(rest, start)
	return rest
}

func (p *Parser) parseArrayPattern(ctx Context) IBinding {
	if !p.enter() {
		return nil
	}
	defer p.exit()

	start := p.start
	p.next()
	pattern := &ArrayPattern{Elements: []IBinding{}}
	for p.tt != CloseBracketToken {
		if p.tt == CommaToken {
			pattern.Elements = append(pattern.Elements, nil)
			p.next()
			continue
		} else if p.tt == EllipsisToken {
			rest := p.parseRestElement(ctx, true)
			if rest == nil {
				return nil
			}
			pattern.Elements = append(pattern.Elements, rest)
			if p.tt == CommaToken {
				p.failAt(parse.SyntaxError, p.start, "comma is not permitted after the rest element")
				return nil
			}
			break
		}
		elem := p.parseBindingElement(ctx)
		if p.err != nil {
			return nil
		}
		pattern.Elements = append(pattern.Elements, elem)
		if p.tt != CloseBracketToken && !p.consume("array pattern", CommaToken) {
			return nil
		}
	}
	if !p.consume("array pattern", CloseBracketToken) {
		return nil
	}
	p.finish(pattern, start)
	return pattern
}

func (p *Parser) parseObjectPattern(ctx Context) IBinding {
	if !p.enter() {
		return nil
	}
	defer p.exit()

	start := p.start
	p.next()
	pattern := &ObjectPattern{Properties: []INode{}}
	for p.tt != CloseBraceToken {
		if p.tt == EllipsisToken {
			rest := p.parseRestElement(ctx, false)
			if rest == nil {
				return nil
			}
			pattern.Properties = append(pattern.Properties, rest)
			if p.tt == CommaToken {
				p.failAt(parse.SyntaxError, p.start, "comma is not permitted after the rest element")
				return nil
			}
			break
		}

		propStart, keyTT, keyName := p.start, p.tt, p.name()
		key, computed := p.parsePropertyKey(ctx)
		if p.err != nil {
			return nil
		}
		prop := &Property{Key: key, Kind: "init", Computed: computed}
		if p.tt == ColonToken {
			p.next()
			if prop.Value = p.parseBindingElement(ctx); p.err != nil {
				return nil
			}
		} else if !computed && IsIdentifier(keyTT) {
			if !p.checkBinding(ctx, keyName, propStart) {
				return nil
			}
			prop.Shorthand = true
			value := IBinding(p.copyIdentifier(key.(*Identifier)))
			if p.tt == EqToken {
				p.next()
				init := p.parseAssignExpr(ctx.with(ctxAllowIn), nil)
				if p.err != nil {
					return nil
				}
				assign := &AssignmentPattern{Left: value, Right: init}
				p.finish(assign, propStart)
				value = assign
			}
			prop.Value = value
		} else {
			p.fail("object pattern", ColonToken)
			return nil
		}
		p.finish(prop, propStart)
		pattern.Properties = append(pattern.Properties, prop)
		if p.tt != CloseBraceToken && !p.consume("object pattern", CommaToken) {
			return nil
		}
	}
	if !p.consume("object pattern", CloseBraceToken) {
		return nil
	}
	p.finish(pattern, start)
	return pattern
}
