package js

// parseModuleExportName parses an identifier name or string used as an imported or exported name.
func (p *Parser) parseModuleExportName(ctx Context) IExpr {
	if p.tt == StringToken {
		if lit := p.parseStringLiteral(ctx); lit != nil {
			return lit
		}
		return nil
	} else if !IsIdentifierName(p.tt) {
		p.fail("module specifier")
		return nil
	}
	start := p.start
	id := &Identifier{Name: p.name()}
	p.next()
	p.finish(id, start)
	return id
}

func (p *Parser) addExport(name string, offset int) {
	if p.exports[name] {
		p.failEarly(offset, "duplicate export '%s'", name)
		return
	}
	p.exports[name] = true
}

// parseImportedBinding parses the local name of an import, which is a lexical declaration of the module scope.
func (p *Parser) parseImportedBinding(ctx Context) *Identifier {
	id := p.parseBindingIdentifier(ctx)
	if id == nil {
		return nil
	} else if p.declareName(id.Name, bindLexical, id.Start); p.err != nil {
		return nil
	}
	return id
}

// parseModuleSource parses the string literal naming the module, followed by optional import attributes.
func (p *Parser) parseModuleSource(ctx Context, in string) (*Literal, []*ImportAttribute) {
	if p.tt != StringToken {
		p.fail(in, StringToken)
		return nil, nil
	}
	source := p.parseStringLiteral(ctx)
	if source == nil {
		return nil, nil
	}
	attrs := p.parseImportAttributes(ctx)
	if p.err != nil {
		return nil, nil
	}
	return source, attrs
}

// parseImportAttributes parses a with clause of attributes, when experimental syntax is enabled.
func (p *Parser) parseImportAttributes(ctx Context) []*ImportAttribute {
	attrs := []*ImportAttribute{}
	if p.tt != WithToken || !ctx.has(ctxExperimental) {
		return attrs
	}
	p.next()
	if !p.consume("import attributes", OpenBraceToken) {
		return nil
	}
	keys := map[string]bool{}
	for p.tt != CloseBraceToken {
		start := p.start
		var key IExpr
		if p.tt == StringToken {
			if key = p.parseModuleExportName(ctx); key == nil {
				return nil
			}
		} else if IsIdentifierName(p.tt) {
			key = p.parseModuleExportName(ctx)
		} else {
			p.fail("import attributes")
			return nil
		}
		name := exportName(key)
		if keys[name] {
			p.failEarly(start, "duplicate import attribute key '%s'", name)
			return nil
		}
		keys[name] = true

		if !p.consume("import attributes", ColonToken) {
			return nil
		} else if p.tt != StringToken {
			p.fail("import attributes", StringToken)
			return nil
		}
		value := p.parseStringLiteral(ctx)
		if value == nil {
			return nil
		}
		attr := &ImportAttribute{Key: key, Value: value}
		p.finish(attr, start)
		attrs = append(attrs, attr)
		if p.tt != CloseBraceToken && !p.consume("import attributes", CommaToken) {
			return nil
		}
	}
	p.next() // }
	return attrs
}

func (p *Parser) parseImportDecl(ctx Context) IStmt {
	start := p.start
	p.next()
	decl := &ImportDeclaration{Specifiers: []INode{}}
	if p.tt != StringToken {
		if IsIdentifier(p.tt) {
			specStart := p.start
			local := p.parseImportedBinding(ctx)
			if local == nil {
				return nil
			}
			spec := &ImportDefaultSpecifier{Local: local}
			p.finish(spec, specStart)
			decl.Specifiers = append(decl.Specifiers, spec)
			if p.tt == CommaToken {
				p.next()
				if p.tt != MulToken && p.tt != OpenBraceToken {
					p.fail("import declaration", MulToken, OpenBraceToken)
					return nil
				}
			}
		}

		if p.tt == MulToken {
			specStart := p.start
			p.next()
			if !p.isContextual(AsToken) {
				p.fail("import declaration", AsToken)
				return nil
			}
			p.next()
			local := p.parseImportedBinding(ctx)
			if local == nil {
				return nil
			}
			spec := &ImportNamespaceSpecifier{Local: local}
			p.finish(spec, specStart)
			decl.Specifiers = append(decl.Specifiers, spec)
		} else if p.tt == OpenBraceToken {
			p.next()
			for p.tt != CloseBraceToken {
				spec := p.parseImportSpecifier(ctx)
				if spec == nil {
					return nil
				}
				decl.Specifiers = append(decl.Specifiers, spec)
				if p.tt != CloseBraceToken && !p.consume("import declaration", CommaToken) {
					return nil
				}
			}
			p.next() // }
		} else if len(decl.Specifiers) == 0 {
			p.fail("import declaration")
			return nil
		}
		if !p.isContextual(FromToken) {
			p.fail("import declaration", FromToken)
			return nil
		}
		p.next()
	}

	decl.Source, decl.Attributes = p.parseModuleSource(ctx, "import declaration")
	if p.err != nil {
		return nil
	}
	p.semicolon("import declaration")
	p.finish(decl, start)
	return decl
}

func (p *Parser) parseImportSpecifier(ctx Context) *ImportSpecifier {
	start := p.start
	imported := p.parseModuleExportName(ctx)
	if imported == nil {
		return nil
	}
	var local *Identifier
	if p.isContextual(AsToken) {
		p.next()
		if local = p.parseImportedBinding(ctx); local == nil {
			return nil
		}
	} else if id, ok := imported.(*Identifier); !ok {
		p.fail("import specifier", AsToken)
		return nil
	} else if !p.checkBinding(ctx, id.Name, id.Start) {
		return nil
	} else if p.declareName(id.Name, bindLexical, id.Start); p.err != nil {
		return nil
	} else {
		local = p.copyIdentifier(id)
	}
	spec := &ImportSpecifier{Imported: imported, Local: local}
	p.finish(spec, start)
	return spec
}

func (p *Parser) parseExportDecl(ctx Context) IStmt {
	start := p.start
	p.next()
	switch p.tt {
	case MulToken:
		p.next()
		decl := &ExportAllDeclaration{}
		if p.isContextual(AsToken) {
			p.next()
			nameStart := p.start
			if decl.Exported = p.parseModuleExportName(ctx); decl.Exported == nil {
				return nil
			} else if p.addExport(exportName(decl.Exported), nameStart); p.err != nil {
				return nil
			}
		}
		if !p.isContextual(FromToken) {
			p.fail("export declaration", FromToken)
			return nil
		}
		p.next()
		if decl.Source, decl.Attributes = p.parseModuleSource(ctx, "export declaration"); p.err != nil {
			return nil
		}
		p.semicolon("export declaration")
		p.finish(decl, start)
		return decl
	case DefaultToken:
		if p.addExport("default", p.start); p.err != nil {
			return nil
		}
		p.next()
		declStart := p.start
		var declaration INode
		if p.tt == FunctionToken {
			if fn := p.parseFunctionDecl(ctx, topStmt, declStart, false, true); fn != nil {
				declaration = fn
			}
		} else if next, _, lt := p.l.Peek(); p.isContextual(AsyncToken) && next == FunctionToken && !lt {
			p.next()
			if fn := p.parseFunctionDecl(ctx, topStmt, declStart, true, true); fn != nil {
				declaration = fn
			}
		} else if p.tt == ClassToken {
			declaration = p.parseClassDecl(ctx, true)
		} else {
			expr := p.parseAssignExpr(ctx.with(ctxAllowIn), nil)
			if p.err != nil {
				return nil
			}
			p.semicolon("export declaration")
			declaration = expr
		}
		if p.err != nil {
			return nil
		}
		decl := &ExportDefaultDeclaration{Declaration: declaration}
		p.finish(decl, start)
		return decl
	case OpenBraceToken:
		p.next()
		decl := &ExportNamedDeclaration{Specifiers: []*ExportSpecifier{}, Attributes: []*ImportAttribute{}}
		for p.tt != CloseBraceToken {
			specStart := p.start
			local := p.parseModuleExportName(ctx)
			if local == nil {
				return nil
			}
			exported := local
			if p.isContextual(AsToken) {
				p.next()
				if exported = p.parseModuleExportName(ctx); exported == nil {
					return nil
				}
			} else if id, ok := local.(*Identifier); ok {
				exported = p.copyIdentifier(id)
			}
			if p.addExport(exportName(exported), exported.base().Start); p.err != nil {
				return nil
			}
			spec := &ExportSpecifier{Local: local, Exported: exported}
			p.finish(spec, specStart)
			decl.Specifiers = append(decl.Specifiers, spec)
			if p.tt != CloseBraceToken && !p.consume("export declaration", CommaToken) {
				return nil
			}
		}
		p.next() // }

		if p.isContextual(FromToken) {
			p.next()
			if decl.Source, decl.Attributes = p.parseModuleSource(ctx, "export declaration"); p.err != nil {
				return nil
			}
		} else {
			// local exports refer to declarations of the module
			for _, spec := range decl.Specifiers {
				id, ok := spec.Local.(*Identifier)
				if !ok {
					p.fail("export declaration", FromToken)
					return nil
				} else if !p.checkIdentifier(ctx, id.Name, id.Start) {
					return nil
				}
				p.locals = append(p.locals, id)
			}
		}
		p.semicolon("export declaration")
		p.finish(decl, start)
		return decl
	case VarToken, ConstToken, FunctionToken, ClassToken:
	default:
		if !p.isLet(true) && !p.isContextual(AsyncToken) {
			p.fail("export declaration")
			return nil
		} else if p.tt == AsyncToken {
			if next, _, lt := p.l.Peek(); next != FunctionToken || lt {
				p.fail("export declaration")
				return nil
			}
		}
	}

	stmt := p.parseStmt(ctx, topStmt)
	if p.err != nil {
		return nil
	}
	for _, id := range boundNames(stmt) {
		if p.addExport(id.Name, id.Start); p.err != nil {
			return nil
		}
	}
	decl := &ExportNamedDeclaration{Declaration: stmt, Specifiers: []*ExportSpecifier{}, Attributes: []*ImportAttribute{}}
	p.finish(decl, start)
	return decl
}
