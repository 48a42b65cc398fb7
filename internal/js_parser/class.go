package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

func (p *parser) parseClassStmt(start uint32) js_ast.Stmt {
	class := p.parseClass(start)
	return js_ast.Stmt{Data: &js_ast.SClass{Class: class}, Span: p.spanFrom(start)}
}

func (p *parser) parseClassExpr(start uint32) js_ast.Expr {
	class := p.parseClass(start)
	return js_ast.Expr{Data: &js_ast.EClass{Class: class}, Span: p.spanFrom(start)}
}

// parseClass parses a class declaration or expression body shared by both
// forms: optional decorators (consumed here while the current token is "@"),
// optional name, optional type parameters, optional "extends"/"implements",
// and the member list.
func (p *parser) parseClass(start uint32) js_ast.Class {
	var decorators []js_ast.Expr
	for p.at(js_lexer.TAt) {
		decorators = append(decorators, p.parseDecorator())
	}

	classKeywordStart := p.lex.Start()
	isAbstract := false
	if p.lex.IsContextualKeyword("abstract") {
		isAbstract = true
		p.next()
	}
	p.expect(js_lexer.TClass)
	classSpan := ast_span(classKeywordStart, p.lastEnd)

	var name *js_ast.NodeRef
	if p.lex.IsIdentifierOrKeyword() && !p.at(js_lexer.TExtends) && !p.at(js_lexer.TOpenBrace) {
		nameStart := p.lex.Start()
		p.next()
		name = &js_ast.NodeRef{Span: p.spanFrom(nameStart)}
	}

	var typeParams *js_ast.TSTypeParamDecl
	if p.at(js_lexer.TLessThan) {
		typeParams = p.parseTSTypeParams()
	}

	var extends js_ast.Expr
	var extendsTypeArgs []js_ast.TSType
	if p.eat(js_lexer.TExtends) {
		extends = p.parseSuffix(p.parseLHSExpr(), js_ast.LCall)
		if p.at(js_lexer.TLessThan) {
			extendsTypeArgs = p.parseTSTypeArgs()
		}
	}

	var implements []js_ast.TSType
	if p.lex.IsContextualKeyword("implements") {
		p.next()
		for {
			implements = append(implements, p.parseTSType())
			if !p.eat(js_lexer.TComma) {
				break
			}
		}
	}

	bodyStart := p.lex.Start()
	properties := p.parseClassBody()
	bodySpan := p.spanFrom(bodyStart)

	return js_ast.Class{
		TSDecorators: decorators, Name: name, TypeParams: typeParams, ExtendsOrNil: extends,
		ExtendsTypeArgs: extendsTypeArgs, Implements: implements, Properties: properties,
		ClassSpan: classSpan, BodySpan: bodySpan, IsAbstract: isAbstract,
	}
}

// parseLHSExpr parses a member/call chain with no suffix beyond what
// "extends" allows to precede its own optional "<T>" type-argument suffix:
// "class A extends B.C" is valid but parsing must stop before the class
// body's "{", so this parses at LCall and the caller is responsible for not
// swallowing a following "{".
func (p *parser) parseLHSExpr() js_ast.Expr {
	return p.parsePrefix(js_ast.LCall)
}

func (p *parser) parseClassBody() []js_ast.Property {
	p.expect(js_lexer.TOpenBrace)
	var props []js_ast.Property
	for !p.at(js_lexer.TCloseBrace) {
		if p.eat(js_lexer.TSemicolon) {
			continue
		}
		props = append(props, p.parseClassMember())
	}
	p.expect(js_lexer.TCloseBrace)
	return props
}

// parseClassMember parses one class body member: field, method, getter,
// setter, constructor, or static initialization block. Modifier keywords
// ("static", "public", "async", "get", ...) are contextual and only bind as
// modifiers when not immediately followed by a token that would make them
// the member name itself (e.g. "static() {}" is a method named "static").
func (p *parser) parseClassMember() js_ast.Property {
	var decorators []js_ast.Expr
	for p.at(js_lexer.TAt) {
		decorators = append(decorators, p.parseDecorator())
	}

	isStatic := false
	if p.lex.IsContextualKeyword("static") {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.at(js_lexer.TOpenBrace) {
			block := p.parseBlockStmtRaw()
			return js_ast.Property{Kind: js_ast.PropertyClassStaticBlock, IsStatic: true,
				ClassStaticBlock: &js_ast.ClassStaticBlock{Block: block}}
		}
		if isMemberModifierBoundary(p) {
			p.lex.Restore(checkpoint)
			p.lastEnd = savedEnd
		} else {
			isStatic = true
		}
	}

	accessibility := js_ast.AccessibilityNone
	isReadonly, isAbstract, isOverride, isDeclare, isAccessor := false, false, false, false, false
	for {
		switch {
		case p.lex.IsContextualKeyword("public") && !isMemberModifierBoundaryNext(p):
			accessibility = js_ast.AccessibilityPublic
		case p.lex.IsContextualKeyword("private") && !isMemberModifierBoundaryNext(p):
			accessibility = js_ast.AccessibilityPrivate
		case p.lex.IsContextualKeyword("protected") && !isMemberModifierBoundaryNext(p):
			accessibility = js_ast.AccessibilityProtected
		case p.lex.IsContextualKeyword("readonly") && !isMemberModifierBoundaryNext(p):
			isReadonly = true
		case p.lex.IsContextualKeyword("abstract") && !isMemberModifierBoundaryNext(p):
			isAbstract = true
		case p.lex.IsContextualKeyword("override") && !isMemberModifierBoundaryNext(p):
			isOverride = true
		case p.lex.IsContextualKeyword("declare") && !isMemberModifierBoundaryNext(p):
			isDeclare = true
		case p.lex.IsContextualKeyword("accessor") && !isMemberModifierBoundaryNext(p):
			isAccessor = true
		default:
			goto doneModifiers
		}
		p.next()
	}
doneModifiers:
	_ = isAbstract
	_ = isOverride

	isAsync := false
	isGenerator := p.eat(js_lexer.TAsterisk)
	if !isGenerator && p.lex.IsContextualKeyword("async") && !isMemberModifierBoundaryNext(p) {
		p.next()
		isAsync = true
		isGenerator = p.eat(js_lexer.TAsterisk)
	}

	kind := js_ast.PropertyNormal
	if isAccessor {
		kind = js_ast.PropertyAutoAccessor
	}
	if !isGenerator && !isAsync && !isAccessor && (p.lex.IsContextualKeyword("get") || p.lex.IsContextualKeyword("set")) && !isMemberModifierBoundaryNext(p) {
		isGet := p.lex.IsContextualKeyword("get")
		p.next()
		if isGet {
			kind = js_ast.PropertyGet
		} else {
			kind = js_ast.PropertySet
		}
	}

	key, isComputed := p.parsePropertyKey()
	optional := p.eat(js_lexer.TQuestion)
	definite := p.eat(js_lexer.TExclamation)

	if kind == js_ast.PropertyGet || kind == js_ast.PropertySet || p.at(js_lexer.TOpenParen) || p.at(js_lexer.TLessThan) {
		fn := p.parseFnTail(isAsync, isGenerator)
		value := js_ast.Expr{Data: &js_ast.EFunction{Fn: fn}, Span: key.Span}
		return js_ast.Property{Key: key, ValueOrNil: value, Kind: kind, IsComputed: isComputed, IsMethod: true,
			IsStatic: isStatic, TSDecorators: decorators, TSAccessibility: accessibility, TSReadonly: isReadonly,
			TSOptional: optional, TSDefinite: definite, IsDeclare: isDeclare}
	}

	var typ *js_ast.TSTypeAnnotation
	if p.eat(js_lexer.TColon) {
		t := p.parseTSType()
		typ = &js_ast.TSTypeAnnotation{Type: t}
	}
	var init js_ast.Expr
	if p.eat(js_lexer.TEquals) {
		init = p.parseExpr(js_ast.LComma)
	}
	p.semicolon()
	prop := js_ast.Property{Key: key, InitializerOrNil: init, Kind: kind, IsComputed: isComputed,
		IsStatic: isStatic, TSDecorators: decorators, TSAccessibility: accessibility, TSReadonly: isReadonly,
		TSOptional: optional, TSDefinite: definite, IsDeclare: isDeclare}
	_ = typ
	return prop
}

// isMemberModifierBoundary reports whether the current token means the
// previous contextual keyword was itself the member name rather than a
// modifier (e.g. "static" in "class { static() {} }" or "class { static = 1 }").
func isMemberModifierBoundary(p *parser) bool {
	return p.at(js_lexer.TOpenParen) || p.at(js_lexer.TEquals) || p.at(js_lexer.TSemicolon) ||
		p.at(js_lexer.TColon) || p.at(js_lexer.TCloseBrace) || p.at(js_lexer.TQuestion) ||
		p.at(js_lexer.TExclamation) || p.lex.HasNewlineBefore
}

// isMemberModifierBoundaryNext peeks one token ahead of the current
// contextual keyword without consuming it, to decide whether it is a
// modifier or the member name.
func isMemberModifierBoundaryNext(p *parser) bool {
	checkpoint := p.lex.Save()
	savedEnd := p.lastEnd
	p.next()
	boundary := isMemberModifierBoundary(p)
	p.lex.Restore(checkpoint)
	p.lastEnd = savedEnd
	return boundary
}
