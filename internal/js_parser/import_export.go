package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

// parseImportStmt handles every form of ES import plus the TS-only
// "import x = require(...)" / "import x = A.B" forms and type-only imports.
func (p *parser) parseImportStmt(start uint32) js_ast.Stmt {
	// "import(" and "import." are the dynamic-import-call and import.meta
	// expression forms, not declarations; parseImportExpr expects to see
	// the "import" keyword itself, so check before consuming it.
	if p.lex.Token == js_lexer.TImport {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.at(js_lexer.TOpenParen) || p.at(js_lexer.TDot) {
			p.lex.Restore(checkpoint)
			p.lastEnd = savedEnd
			value := p.parseImportExpr(start)
			value = p.parseSuffix(value, js_ast.LLowest)
			p.semicolon()
			return js_ast.Stmt{Data: &js_ast.SExpr{Value: value}, Span: p.spanFrom(start)}
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
	}
	p.next() // "import"

	isTypeOnly := false
	if p.lex.IsContextualKeyword("type") {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if !p.at(js_lexer.TComma) && !p.lex.IsContextualKeyword("from") && !p.at(js_lexer.TEquals) {
			isTypeOnly = true
		} else {
			p.lex.Restore(checkpoint)
			p.lastEnd = savedEnd
		}
	}

	if p.at(js_lexer.TStringLiteral) {
		// "import 'module';" — bare side-effect import.
		specifier, specifierSpan := p.lex.Identifier, p.lex.Span()
		p.next()
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SImport{IsTypeOnly: isTypeOnly, ModuleSpecifier: specifier, ModuleSpecifierSpan: specifierSpan}, Span: p.spanFrom(start)}
	}

	var defaultName *js_ast.NodeRef
	if p.lex.IsIdentifierOrKeyword() {
		nameStart := p.lex.Start()
		name := p.lex.Identifier
		p.next()

		if p.eat(js_lexer.TEquals) {
			return p.parseImportEqualsTail(start, js_ast.NodeRef{Span: p.spanFrom(nameStart)}, isTypeOnly)
		}

		defaultName = &js_ast.NodeRef{Span: p.spanFrom(nameStart)}
		_ = name
		if !p.eat(js_lexer.TComma) {
			p.expectFrom()
			specifier, specifierSpan := p.lex.Identifier, p.lex.Span()
			p.next()
			p.semicolon()
			return js_ast.Stmt{Data: &js_ast.SImport{DefaultName: defaultName, IsTypeOnly: isTypeOnly, IsSingleLine: true,
				ModuleSpecifier: specifier, ModuleSpecifierSpan: specifierSpan},
				Span: p.spanFrom(start)}
		}
	}

	if p.eat(js_lexer.TAsterisk) {
		p.lex.IsContextualKeyword("as")
		p.next() // "as"
		starStart := p.lex.Start()
		p.next() // namespace name
		starSpan := p.spanFrom(starStart)
		p.expectFrom()
		specifier, specifierSpan := p.lex.Identifier, p.lex.Span()
		p.next() // module specifier
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SImport{DefaultName: defaultName, StarNameSpan: &starSpan, IsTypeOnly: isTypeOnly,
			ModuleSpecifier: specifier, ModuleSpecifierSpan: specifierSpan},
			Span: p.spanFrom(start)}
	}

	items, isSingleLine := p.parseImportClauseItems()
	p.expectFrom()
	specifier, specifierSpan := p.lex.Identifier, p.lex.Span()
	p.next() // module specifier
	p.semicolon()
	return js_ast.Stmt{Data: &js_ast.SImport{DefaultName: defaultName, Items: &items, IsTypeOnly: isTypeOnly, IsSingleLine: isSingleLine,
		ModuleSpecifier: specifier, ModuleSpecifierSpan: specifierSpan},
		Span: p.spanFrom(start)}
}

// expectFrom consumes the contextual "from" keyword preceding a module
// specifier.
func (p *parser) expectFrom() {
	if !p.lex.IsContextualKeyword("from") {
		p.unexpected()
	}
	p.next()
}

func (p *parser) parseImportEqualsTail(start uint32, name js_ast.NodeRef, isTypeOnly bool) js_ast.Stmt {
	stmt := &js_ast.STSImportEquals{Name: name, IsTypeOnly: isTypeOnly}
	if p.at(js_lexer.TStringLiteral) || (p.lex.IsContextualKeyword("require") && func() bool {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		ok := p.at(js_lexer.TOpenParen)
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
		return ok
	}()) {
		if p.lex.IsContextualKeyword("require") {
			p.next()
			p.expect(js_lexer.TOpenParen)
			specifier, specifierSpan := p.lex.Identifier, p.lex.Span()
			p.expect(js_lexer.TStringLiteral)
			p.expect(js_lexer.TCloseParen)
			stmt.ModuleRef = &js_ast.ImportRecordRef{Text: specifier, Span: specifierSpan}
		}
	} else {
		target := p.parseExpr(js_ast.LComma)
		stmt.Target = target
	}
	p.semicolon()
	return js_ast.Stmt{Data: stmt, Span: p.spanFrom(start)}
}

func (p *parser) parseImportClauseItems() ([]js_ast.ClauseItem, bool) {
	p.expect(js_lexer.TOpenBrace)
	var items []js_ast.ClauseItem
	isSingleLine := true
	for !p.at(js_lexer.TCloseBrace) {
		if p.lex.HasNewlineBefore {
			isSingleLine = false
		}
		isTypeOnly := false
		if p.lex.IsContextualKeyword("type") {
			checkpoint := p.lex.Save()
			savedEnd := p.lastEnd
			p.next()
			if !p.at(js_lexer.TComma) && !p.at(js_lexer.TCloseBrace) && !p.lex.IsContextualKeyword("as") {
				isTypeOnly = true
			} else {
				p.lex.Restore(checkpoint)
				p.lastEnd = savedEnd
			}
		}
		aliasStart := p.lex.Start()
		original := p.lex.Identifier
		p.next()
		nameStart := aliasStart
		alias := original
		aliasSpan := ast_span(aliasStart, p.lastEnd)
		if p.lex.IsContextualKeyword("as") {
			p.next()
			nameStart = p.lex.Start()
			alias = p.lex.Identifier
			p.next()
			aliasSpan = ast_span(nameStart, p.lastEnd)
		}
		items = append(items, js_ast.ClauseItem{Alias: alias, AliasSpan: aliasSpan,
			Name: js_ast.NodeRef{Span: p.spanFrom(nameStart)}, OriginalName: original, IsTypeOnly: isTypeOnly})
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	p.expect(js_lexer.TCloseBrace)
	return items, isSingleLine
}

// parseExportStmt handles every "export" form: clause, default, star,
// star-as, from-reexport, declaration, and TypeScript "export =".
func (p *parser) parseExportStmt(start uint32) js_ast.Stmt {
	p.next() // "export"

	if p.eat(js_lexer.TEquals) {
		value := p.parseExpr(js_ast.LComma)
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SExportEquals{Value: value}, Span: p.spanFrom(start)}
	}

	if p.eat(js_lexer.TDefault) {
		defaultStart := p.lex.Start()
		var inner js_ast.Stmt
		switch {
		case p.at(js_lexer.TFunction):
			inner = p.parseFnStmt(defaultStart, false)
		case p.lex.IsContextualKeyword("async"):
			checkpoint := p.lex.Save()
			savedEnd := p.lastEnd
			p.next()
			if p.at(js_lexer.TFunction) {
				inner = p.parseFnStmt(defaultStart, true)
			} else {
				p.lex.Restore(checkpoint)
				p.lastEnd = savedEnd
				value := p.parseExpr(js_ast.LComma)
				p.semicolon()
				inner = js_ast.Stmt{Data: &js_ast.SExpr{Value: value}, Span: p.spanFrom(defaultStart)}
			}
		case p.at(js_lexer.TClass):
			inner = p.parseClassStmt(defaultStart)
		default:
			value := p.parseExpr(js_ast.LComma)
			p.semicolon()
			inner = js_ast.Stmt{Data: &js_ast.SExpr{Value: value}, Span: p.spanFrom(defaultStart)}
		}
		return js_ast.Stmt{Data: &js_ast.SExportDefault{Value: inner}, Span: p.spanFrom(start)}
	}

	if p.eat(js_lexer.TAsterisk) {
		var alias *js_ast.ExportStarAlias
		if p.lex.IsContextualKeyword("as") {
			p.next()
			aliasStart := p.lex.Start()
			name := p.lex.Identifier
			p.next()
			alias = &js_ast.ExportStarAlias{OriginalName: name, Span: p.spanFrom(aliasStart)}
		}
		p.expectFrom()
		specifier, specifierSpan := p.lex.Identifier, p.lex.Span()
		p.next()
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SExportStar{Alias: alias, ModuleSpecifier: specifier, ModuleSpecifierSpan: specifierSpan}, Span: p.spanFrom(start)}
	}

	if p.at(js_lexer.TOpenBrace) {
		items, isSingleLine := p.parseImportClauseItems()
		if p.lex.IsContextualKeyword("from") {
			p.next()
			specifier, specifierSpan := p.lex.Identifier, p.lex.Span()
			p.next()
			p.semicolon()
			return js_ast.Stmt{Data: &js_ast.SExportFrom{Items: items, IsSingleLine: isSingleLine, ModuleSpecifier: specifier, ModuleSpecifierSpan: specifierSpan}, Span: p.spanFrom(start)}
		}
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SExportClause{Items: items, IsSingleLine: isSingleLine}, Span: p.spanFrom(start)}
	}

	if p.lex.IsContextualKeyword("type") {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.at(js_lexer.TOpenBrace) {
			items, isSingleLine := p.parseImportClauseItems()
			if p.lex.IsContextualKeyword("from") {
				p.next()
				specifier, specifierSpan := p.lex.Identifier, p.lex.Span()
				p.next()
				p.semicolon()
				return js_ast.Stmt{Data: &js_ast.SExportFrom{Items: items, IsSingleLine: isSingleLine, ModuleSpecifier: specifier, ModuleSpecifierSpan: specifierSpan}, Span: p.spanFrom(start)}
			}
			p.semicolon()
			return js_ast.Stmt{Data: &js_ast.SExportClause{Items: items, IsSingleLine: isSingleLine}, Span: p.spanFrom(start)}
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
	}

	if tsStmt, ok := p.tryParseTSStmt(start); ok {
		switch s := tsStmt.Data.(type) {
		case *js_ast.STSInterface:
			s.IsExport = true
		case *js_ast.STSTypeAlias:
			s.IsExport = true
		case *js_ast.STSEnum:
			s.IsExport = true
		case *js_ast.STSModule:
			s.IsExport = true
		}
		return tsStmt
	}

	decl := p.parseStmt()
	switch s := decl.Data.(type) {
	case *js_ast.SFunction:
		s.IsExport = true
	case *js_ast.SClass:
		s.IsExport = true
	case *js_ast.SLocal:
		s.IsExport = true
	}
	return decl
}
