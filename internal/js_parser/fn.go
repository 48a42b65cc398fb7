package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

func (p *parser) parseFnExpr(start uint32, isAsync bool) js_ast.Expr {
	p.expect(js_lexer.TFunction)
	isGenerator := p.eat(js_lexer.TAsterisk)
	var name *js_ast.NodeRef
	if p.lex.IsIdentifierOrKeyword() && !p.at(js_lexer.TOpenParen) {
		nameStart := p.lex.Start()
		p.next()
		name = &js_ast.NodeRef{Span: p.spanFrom(nameStart)}
	}
	fn := p.parseFnTailNamed(isAsync, isGenerator, name)
	return js_ast.Expr{Data: &js_ast.EFunction{Fn: fn}, Span: p.spanFrom(start)}
}

// parseFnTail parses a function's type parameters, parameter list, return
// type, and body, for the anonymous forms (object/class methods, function
// expressions after the name has already been consumed elsewhere).
func (p *parser) parseFnTail(isAsync, isGenerator bool) js_ast.Fn {
	return p.parseFnTailNamed(isAsync, isGenerator, nil)
}

func (p *parser) parseFnTailNamed(isAsync, isGenerator bool, name *js_ast.NodeRef) js_ast.Fn {
	var typeParams *js_ast.TSTypeParamDecl
	if p.at(js_lexer.TLessThan) {
		typeParams = p.parseTSTypeParams()
	}
	openParenStart := p.lex.Start()
	p.expect(js_lexer.TOpenParen)
	openParenSpan := ast_span(openParenStart, p.lastEnd)
	var args []js_ast.Arg
	hasRest := false
	for !p.at(js_lexer.TCloseParen) {
		arg, isRest := p.parseArg()
		args = append(args, arg)
		hasRest = isRest
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	p.expect(js_lexer.TCloseParen)

	var returnType *js_ast.TSTypeAnnotation
	if p.eat(js_lexer.TColon) {
		t := p.parseTSType()
		returnType = &js_ast.TSTypeAnnotation{Type: t}
	}

	var body *js_ast.FnBody
	if p.at(js_lexer.TOpenBrace) {
		blockStart := p.lex.Start()
		block := p.parseBlockStmtRaw()
		body = &js_ast.FnBody{Block: block, Span: p.spanFrom(blockStart)}
	} else {
		// Ambient/overload signature with no body ("declare function f(): void;").
		p.eat(js_lexer.TSemicolon)
	}

	return js_ast.Fn{
		Name: name, Args: args, Body: body, ReturnType: returnType, TypeParams: typeParams,
		OpenParenSpan: openParenSpan, IsAsync: isAsync, IsGenerator: isGenerator, HasRestArg: hasRest,
	}
}

func (p *parser) parseBlockStmtRaw() js_ast.SBlock {
	stmt := p.parseBlockStmt()
	return *stmt.Data.(*js_ast.SBlock)
}
