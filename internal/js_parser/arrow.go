package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

// parseParenExprOrArrow disambiguates "(" starting a parenthesized
// expression from "(" starting an arrow function's parameter list. Both
// share an arbitrarily long prefix ("(a, b, {c, d: [e]}" is valid as both a
// destructuring-assignment target and an arrow parameter list), so this
// speculatively parses as an arrow head first and rewinds on failure, using
// the lexer's O(1) checkpoint/restore to make the rewind cheap.
func (p *parser) parseParenExprOrArrow(start uint32, isAsync bool) js_ast.Expr {
	if expr, ok := p.tryParseArrowFromParen(start, isAsync); ok {
		return expr
	}
	return p.parseParenExpr(start)
}

func (p *parser) parseParenExpr(start uint32) js_ast.Expr {
	p.expect(js_lexer.TOpenParen)
	value := p.parseExprOrCommaList()
	p.expect(js_lexer.TCloseParen)
	return value
}

// tryParseArrowFromParen attempts to parse "(" params ")" "=>" ...  It
// reports ok=false when the parenthesized group turns out not to be
// followed by "=>", after restoring the lexer to the checkpoint it took on
// entry, so the caller can re-parse the group from the same position.
func (p *parser) tryParseArrowFromParen(start uint32, isAsync bool) (js_ast.Expr, bool) {
	checkpoint := p.lex.Save()
	savedEnd := p.lastEnd
	ok := func() (ok bool) {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		p.expect(js_lexer.TOpenParen)
		p.parseArrowArgs()
		p.expect(js_lexer.TCloseParen)
		var returnType *js_ast.TSTypeAnnotation
		if p.at(js_lexer.TColon) {
			p.next()
			typ := p.parseTSType()
			returnType = &js_ast.TSTypeAnnotation{Type: typ}
		}
		if !p.at(js_lexer.TEqualsGreaterThan) || p.lex.HasNewlineBefore {
			return false
		}
		_ = returnType
		return true
	}()
	if !ok {
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
		return js_ast.Expr{}, false
	}
	p.lex.Restore(checkpoint)
	p.lastEnd = savedEnd

	// Re-parse for real now that we know it's an arrow head: the
	// speculative pass above only needed to decide yes/no, not to keep the
	// parsed args (TS type annotations inside a discarded attempt would
	// otherwise leak spans from the wrong parse).
	p.expect(js_lexer.TOpenParen)
	args := p.parseArrowArgs()
	p.expect(js_lexer.TCloseParen)
	var returnType *js_ast.TSTypeAnnotation
	if p.eat(js_lexer.TColon) {
		typ := p.parseTSType()
		returnType = &js_ast.TSTypeAnnotation{Type: typ}
	}
	expr := p.parseArrowBody(start, args, isAsync)
	if arrow, ok := expr.Data.(*js_ast.EArrow); ok {
		arrow.ReturnType = returnType
	}
	return expr, true
}

func (p *parser) parseArrowArgs() []js_ast.Arg {
	var args []js_ast.Arg
	for !p.at(js_lexer.TCloseParen) {
		arg, _ := p.parseArg()
		args = append(args, arg)
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	return args
}

// parseArg parses one parameter of a function/arrow/method parameter list
// and reports whether it was a rest parameter ("...args"), which only the
// last parameter may be.
func (p *parser) parseArg() (js_ast.Arg, bool) {
	var decorators []js_ast.Expr
	for p.at(js_lexer.TAt) {
		decorators = append(decorators, p.parseDecorator())
	}
	accessibility := js_ast.AccessibilityNone
	isReadonly := false
	for {
		if p.lex.IsContextualKeyword("public") {
			accessibility = js_ast.AccessibilityPublic
		} else if p.lex.IsContextualKeyword("private") {
			accessibility = js_ast.AccessibilityPrivate
		} else if p.lex.IsContextualKeyword("protected") {
			accessibility = js_ast.AccessibilityProtected
		} else if p.lex.IsContextualKeyword("readonly") {
			isReadonly = true
		} else {
			break
		}
		p.next()
	}
	isRest := p.eat(js_lexer.TDotDotDot)
	binding := p.parseBinding()
	optional := p.eat(js_lexer.TQuestion)
	var typ *js_ast.TSTypeAnnotation
	if p.eat(js_lexer.TColon) {
		t := p.parseTSType()
		typ = &js_ast.TSTypeAnnotation{Type: t}
	}
	var def js_ast.Expr
	if !isRest && p.eat(js_lexer.TEquals) {
		def = p.parseExpr(js_ast.LComma)
	}
	isParamProp := accessibility != js_ast.AccessibilityNone || isReadonly
	_ = optional
	return js_ast.Arg{Binding: binding, DefaultOrNil: def, TSDecorators: decorators, TSType: typ,
		TSAccessibility: accessibility, TSReadonly: isReadonly, IsTSParameterProp: isParamProp}, isRest
}

func (p *parser) parseDecorator() js_ast.Expr {
	start := p.lex.Start()
	p.expect(js_lexer.TAt)
	expr := p.parseExpr(js_ast.LCall)
	_ = start
	return expr
}

// parseArrowBody parses the "=> expr" or "=> { ...stmts }" tail once the
// parameter list has already been parsed (or synthesized from a single bare
// identifier, e.g. "x => x + 1").
func (p *parser) parseArrowBody(start uint32, args []js_ast.Arg, isAsync bool) js_ast.Expr {
	p.expect(js_lexer.TEqualsGreaterThan)
	arrow := &js_ast.EArrow{Args: args, IsAsync: isAsync}
	if p.at(js_lexer.TOpenBrace) {
		block := p.parseBlockStmt()
		arrow.Body = &js_ast.FnBody{Block: *block.Data.(*js_ast.SBlock), Span: block.Span}
	} else {
		arrow.PreferExpr = true
		arrow.ExprBody = p.parseExpr(js_ast.LComma)
	}
	return js_ast.Expr{Data: arrow, Span: p.spanFrom(start)}
}
