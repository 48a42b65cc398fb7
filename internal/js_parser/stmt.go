package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

func (p *parser) parseStmt() js_ast.Stmt {
	start := p.lex.Start()

	switch p.lex.Token {
	case js_lexer.TOpenBrace:
		return p.parseBlockStmt()

	case js_lexer.TSemicolon:
		p.next()
		return js_ast.Stmt{Data: &js_ast.SEmpty{}, Span: p.spanFrom(start)}

	case js_lexer.TDebugger:
		p.next()
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SDebugger{}, Span: p.spanFrom(start)}

	case js_lexer.TVar, js_lexer.TConst:
		kind := js_ast.LocalVar
		if p.lex.Token == js_lexer.TConst {
			kind = js_ast.LocalConst
		}
		p.next()
		decls := p.parseDecls()
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SLocal{Decls: decls, Kind: kind}, Span: p.spanFrom(start)}

	case js_lexer.TFunction:
		return p.parseFnStmt(start, false)

	case js_lexer.TClass:
		return p.parseClassStmt(start)

	case js_lexer.TIf:
		return p.parseIfStmt(start)

	case js_lexer.TFor:
		return p.parseForStmt(start)

	case js_lexer.TWhile:
		p.next()
		p.expect(js_lexer.TOpenParen)
		test := p.parseExprOrCommaList()
		p.expect(js_lexer.TCloseParen)
		body := p.parseStmt()
		return js_ast.Stmt{Data: &js_ast.SWhile{Test: test, Body: body}, Span: p.spanFrom(start)}

	case js_lexer.TDo:
		p.next()
		body := p.parseStmt()
		p.expect(js_lexer.TWhile)
		p.expect(js_lexer.TOpenParen)
		test := p.parseExprOrCommaList()
		p.expect(js_lexer.TCloseParen)
		p.eat(js_lexer.TSemicolon)
		return js_ast.Stmt{Data: &js_ast.SDoWhile{Body: body, Test: test}, Span: p.spanFrom(start)}

	case js_lexer.TSwitch:
		return p.parseSwitchStmt(start)

	case js_lexer.TTry:
		return p.parseTryStmt(start)

	case js_lexer.TWith:
		p.next()
		p.expect(js_lexer.TOpenParen)
		value := p.parseExprOrCommaList()
		p.expect(js_lexer.TCloseParen)
		bodyStart := p.lex.Start()
		body := p.parseStmt()
		return js_ast.Stmt{Data: &js_ast.SWith{Value: value, Body: body, BodySpan: p.spanFrom(bodyStart)}, Span: p.spanFrom(start)}

	case js_lexer.TReturn:
		p.next()
		var value js_ast.Expr
		if !p.at(js_lexer.TSemicolon) && !p.at(js_lexer.TCloseBrace) && !p.at(js_lexer.TEndOfFile) && !p.lex.HasNewlineBefore {
			value = p.parseExprOrCommaList()
		}
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SReturn{ValueOrNil: value}, Span: p.spanFrom(start)}

	case js_lexer.TThrow:
		p.next()
		if p.lex.HasNewlineBefore {
			p.unexpected()
		}
		value := p.parseExprOrCommaList()
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SThrow{Value: value}, Span: p.spanFrom(start)}

	case js_lexer.TBreak:
		p.next()
		label := p.parseOptionalLabel()
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SBreak{Label: label}, Span: p.spanFrom(start)}

	case js_lexer.TContinue:
		p.next()
		label := p.parseOptionalLabel()
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SContinue{Label: label}, Span: p.spanFrom(start)}

	case js_lexer.TImport:
		return p.parseImportStmt(start)

	case js_lexer.TExport:
		return p.parseExportStmt(start)

	default:
		if p.lex.IsContextualKeyword("let") && p.letStartsDeclaration() {
			p.next()
			decls := p.parseDecls()
			p.semicolon()
			return js_ast.Stmt{Data: &js_ast.SLocal{Decls: decls, Kind: js_ast.LocalLet}, Span: p.spanFrom(start)}
		}
		if p.lex.IsContextualKeyword("using") {
			checkpoint := p.lex.Save()
			savedEnd := p.lastEnd
			p.next()
			if !p.lex.HasNewlineBefore && p.lex.IsIdentifierOrKeyword() {
				decls := p.parseDecls()
				p.semicolon()
				return js_ast.Stmt{Data: &js_ast.SLocal{Decls: decls, Kind: js_ast.LocalUsing}, Span: p.spanFrom(start)}
			}
			p.lex.Restore(checkpoint)
			p.lastEnd = savedEnd
		}
		if p.lex.IsContextualKeyword("async") {
			checkpoint := p.lex.Save()
			savedEnd := p.lastEnd
			p.next()
			if p.at(js_lexer.TFunction) && !p.lex.HasNewlineBefore {
				return p.parseFnStmt(start, true)
			}
			p.lex.Restore(checkpoint)
			p.lastEnd = savedEnd
		}
		if tsStmt, ok := p.tryParseTSStmt(start); ok {
			return tsStmt
		}
		return p.parseExprOrLabelStmt(start)
	}
}

// letStartsDeclaration disambiguates "let" the contextual keyword from
// "let" used as an ordinary identifier (legal in sloppy-mode code): a
// following identifier, "{", or "[" means a declaration.
func (p *parser) letStartsDeclaration() bool {
	checkpoint := p.lex.Save()
	savedEnd := p.lastEnd
	p.next()
	result := p.lex.IsIdentifierOrKeyword() || p.at(js_lexer.TOpenBracket) || p.at(js_lexer.TOpenBrace)
	p.lex.Restore(checkpoint)
	p.lastEnd = savedEnd
	return result
}

func (p *parser) semicolon() {
	if p.at(js_lexer.TSemicolon) {
		p.next()
		return
	}
	if !p.lex.HasNewlineBefore && !p.at(js_lexer.TCloseBrace) && !p.at(js_lexer.TEndOfFile) {
		p.unexpected()
	}
}

func (p *parser) parseBlockStmt() js_ast.Stmt {
	start := p.lex.Start()
	p.expect(js_lexer.TOpenBrace)
	var stmts []js_ast.Stmt
	for !p.at(js_lexer.TCloseBrace) && !p.at(js_lexer.TEndOfFile) {
		stmts = append(stmts, p.parseStmt())
	}
	closeStart := p.lex.Start()
	p.expect(js_lexer.TCloseBrace)
	return js_ast.Stmt{Data: &js_ast.SBlock{Stmts: stmts, CloseBraceSpan: ast_span(closeStart, p.lastEnd)}, Span: p.spanFrom(start)}
}

func (p *parser) parseDecls() []js_ast.Decl {
	var decls []js_ast.Decl
	for {
		binding := p.parseBinding()
		var typ *js_ast.TSTypeAnnotation
		if p.eat(js_lexer.TColon) {
			t := p.parseTSType()
			typ = &js_ast.TSTypeAnnotation{Type: t}
		}
		var value js_ast.Expr
		if p.eat(js_lexer.TEquals) {
			value = p.parseExpr(js_ast.LComma)
		}
		decls = append(decls, js_ast.Decl{Binding: binding, ValueOrNil: value, TSType: typ})
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	return decls
}

func (p *parser) parseFnStmt(start uint32, isAsync bool) js_ast.Stmt {
	p.expect(js_lexer.TFunction)
	isGenerator := p.eat(js_lexer.TAsterisk)
	nameStart := p.lex.Start()
	if !p.lex.IsIdentifierOrKeyword() {
		p.unexpected()
	}
	p.next()
	name := &js_ast.NodeRef{Span: p.spanFrom(nameStart)}
	fn := p.parseFnTailNamed(isAsync, isGenerator, name)
	return js_ast.Stmt{Data: &js_ast.SFunction{Fn: fn}, Span: p.spanFrom(start)}
}

func (p *parser) parseIfStmt(start uint32) js_ast.Stmt {
	p.next()
	p.expect(js_lexer.TOpenParen)
	test := p.parseExprOrCommaList()
	p.expect(js_lexer.TCloseParen)
	yes := p.parseStmt()
	var no js_ast.Stmt
	if p.eat(js_lexer.TElse) {
		no = p.parseStmt()
	}
	return js_ast.Stmt{Data: &js_ast.SIf{Test: test, Yes: yes, NoOrNil: no}, Span: p.spanFrom(start)}
}

// parseForStmt handles all four "for" forms: classic three-clause, for-in,
// for-of, and for-await-of. It disambiguates by parsing the init clause
// first and then checking which keyword follows, mirroring the grammar's
// own structure rather than trying to guess ahead.
func (p *parser) parseForStmt(start uint32) js_ast.Stmt {
	p.next()
	isAwait := false
	if p.lex.IsContextualKeyword("await") {
		p.next()
		isAwait = true
	}
	p.expect(js_lexer.TOpenParen)

	var init js_ast.Stmt
	if p.at(js_lexer.TSemicolon) {
		// no init clause
	} else if p.at(js_lexer.TVar) || p.at(js_lexer.TConst) || (p.lex.IsContextualKeyword("let") && p.letStartsDeclaration()) {
		kind := js_ast.LocalVar
		if p.at(js_lexer.TConst) {
			kind = js_ast.LocalConst
		} else if p.lex.IsContextualKeyword("let") {
			kind = js_ast.LocalLet
		}
		declStart := p.lex.Start()
		p.next()
		binding := p.parseBinding()
		if p.at(js_lexer.TIn) || p.lex.IsContextualKeyword("of") {
			return p.parseForInOfTail(start, js_ast.Stmt{Data: &js_ast.SLocal{Decls: []js_ast.Decl{{Binding: binding}}, Kind: kind}, Span: p.spanFrom(declStart)}, isAwait)
		}
		var value js_ast.Expr
		if p.eat(js_lexer.TEquals) {
			value = p.parseExpr(js_ast.LComma)
		}
		decls := []js_ast.Decl{{Binding: binding, ValueOrNil: value}}
		for p.eat(js_lexer.TComma) {
			b := p.parseBinding()
			var v js_ast.Expr
			if p.eat(js_lexer.TEquals) {
				v = p.parseExpr(js_ast.LComma)
			}
			decls = append(decls, js_ast.Decl{Binding: b, ValueOrNil: v})
		}
		init = js_ast.Stmt{Data: &js_ast.SLocal{Decls: decls, Kind: kind}, Span: p.spanFrom(declStart)}
	} else {
		exprStart := p.lex.Start()
		// The init expression is first parsed above LCompare, so a
		// following "in" is left unconsumed and can be recognized as the
		// for-in keyword rather than swallowed as a binary operator. When
		// neither "in" nor "of" follows, parsing resumes at LComma for an
		// ordinary init clause.
		expr := p.parseExpr(js_ast.LCompare + 1)
		initExprStmt := js_ast.Stmt{Data: &js_ast.SExpr{Value: expr}, Span: p.spanFrom(exprStart)}
		if p.at(js_lexer.TIn) || p.lex.IsContextualKeyword("of") {
			return p.parseForInOfTail(start, initExprStmt, isAwait)
		}
		expr = p.parseSuffix(expr, js_ast.LComma)
		init = js_ast.Stmt{Data: &js_ast.SExpr{Value: expr}, Span: p.spanFrom(exprStart)}
	}

	p.expect(js_lexer.TSemicolon)
	var test js_ast.Expr
	if !p.at(js_lexer.TSemicolon) {
		test = p.parseExprOrCommaList()
	}
	p.expect(js_lexer.TSemicolon)
	var update js_ast.Expr
	if !p.at(js_lexer.TCloseParen) {
		update = p.parseExprOrCommaList()
	}
	p.expect(js_lexer.TCloseParen)
	body := p.parseStmt()
	return js_ast.Stmt{Data: &js_ast.SFor{InitOrNil: init, TestOrNil: test, UpdateOrNil: update, Body: body}, Span: p.spanFrom(start)}
}

// parseForInOfTail parses the "in expr) body" / "of expr) body" tail shared
// by for-in and for-of once the loop variable clause has already been
// parsed into initStmt (an SLocal for "for (const x ...)" or an SExpr
// wrapping an assignment target, possibly a destructuring pattern, for
// "for (x ...)"/"for ([a, b] ...)").
func (p *parser) parseForInOfTail(start uint32, initStmt js_ast.Stmt, isAwait bool) js_ast.Stmt {
	isOf := p.lex.IsContextualKeyword("of")
	p.next()
	value := p.parseExpr(js_ast.LComma)
	p.expect(js_lexer.TCloseParen)
	body := p.parseStmt()
	if isOf {
		return js_ast.Stmt{Data: &js_ast.SForOf{Init: initStmt, Value: value, Body: body, IsAwait: isAwait}, Span: p.spanFrom(start)}
	}
	return js_ast.Stmt{Data: &js_ast.SForIn{Init: initStmt, Value: value, Body: body}, Span: p.spanFrom(start)}
}

func (p *parser) parseSwitchStmt(start uint32) js_ast.Stmt {
	p.next()
	p.expect(js_lexer.TOpenParen)
	test := p.parseExprOrCommaList()
	p.expect(js_lexer.TCloseParen)
	bodyStart := p.lex.Start()
	p.expect(js_lexer.TOpenBrace)
	var cases []js_ast.Case
	for !p.at(js_lexer.TCloseBrace) {
		var value js_ast.Expr
		if p.eat(js_lexer.TCase) {
			value = p.parseExprOrCommaList()
		} else {
			p.expect(js_lexer.TDefault)
		}
		p.expect(js_lexer.TColon)
		var body []js_ast.Stmt
		for !p.at(js_lexer.TCase) && !p.at(js_lexer.TDefault) && !p.at(js_lexer.TCloseBrace) {
			body = append(body, p.parseStmt())
		}
		cases = append(cases, js_ast.Case{ValueOrNil: value, Body: body})
	}
	p.expect(js_lexer.TCloseBrace)
	return js_ast.Stmt{Data: &js_ast.SSwitch{Test: test, Cases: cases, BodySpan: p.spanFrom(bodyStart)}, Span: p.spanFrom(start)}
}

func (p *parser) parseTryStmt(start uint32) js_ast.Stmt {
	p.next()
	blockStart := p.lex.Start()
	block := p.parseBlockStmtRaw()
	tryStmt := &js_ast.STry{Block: block, BlockSpan: p.spanFrom(blockStart)}

	if p.eat(js_lexer.TCatch) {
		catchStart := p.lex.Start()
		var binding js_ast.Binding
		if p.eat(js_lexer.TOpenParen) {
			binding = p.parseBinding()
			p.expect(js_lexer.TCloseParen)
		}
		catchBlockStart := p.lex.Start()
		catchBlock := p.parseBlockStmtRaw()
		tryStmt.Catch = &js_ast.Catch{BindingOrNil: binding, Block: catchBlock, Span: p.spanFrom(catchStart), BlockSpan: p.spanFrom(catchBlockStart)}
	}
	if p.eat(js_lexer.TFinally) {
		finallyStart := p.lex.Start()
		finallyBlock := p.parseBlockStmtRaw()
		tryStmt.Finally = &js_ast.Finally{Block: finallyBlock, Span: p.spanFrom(finallyStart)}
	}
	return js_ast.Stmt{Data: tryStmt, Span: p.spanFrom(start)}
}

func (p *parser) parseOptionalLabel() *js_ast.NodeRef {
	if !p.lex.HasNewlineBefore && p.at(js_lexer.TIdentifier) {
		labelStart := p.lex.Start()
		p.next()
		span := p.spanFrom(labelStart)
		return &js_ast.NodeRef{Span: span}
	}
	return nil
}

func (p *parser) parseExprOrLabelStmt(start uint32) js_ast.Stmt {
	if p.at(js_lexer.TIdentifier) {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		nameStart := p.lex.Start()
		p.next()
		if p.at(js_lexer.TColon) {
			name := &js_ast.NodeRef{Span: p.spanFrom(nameStart)}
			p.next()
			body := p.parseStmt()
			return js_ast.Stmt{Data: &js_ast.SLabel{Stmt: body, Name: *name}, Span: p.spanFrom(start)}
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
	}
	value := p.parseExprOrCommaList()
	p.semicolon()
	return js_ast.Stmt{Data: &js_ast.SExpr{Value: value}, Span: p.spanFrom(start)}
}
