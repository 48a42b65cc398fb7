package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

// tryParseTSStmt recognizes the TypeScript-only statement forms that start
// with a contextual keyword ("interface", "type", "enum", "namespace",
// "module", "declare", "abstract"). For "type", "namespace", "module" and
// "abstract" it restores the lexer and reports ok=false when the keyword
// turns out to be an ordinary identifier instead (e.g. "type" used as a
// variable name), matching the same checkpoint-and-commit approach used for
// "async" and "let"; "interface", "enum" and "declare" commit without
// lookahead.
func (p *parser) tryParseTSStmt(start uint32) (js_ast.Stmt, bool) {
	if p.options.SourceType.Language != js_ast.LanguageTS {
		return js_ast.Stmt{}, false
	}

	if p.lex.IsContextualKeyword("interface") {
		return p.parseInterfaceStmt(start, false), true
	}

	if p.lex.IsContextualKeyword("enum") || p.at(js_lexer.TEnum) {
		return p.parseEnumStmt(start, false, false), true
	}

	if p.lex.IsContextualKeyword("type") {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.lex.IsIdentifierOrKeyword() && !p.lex.HasNewlineBefore {
			return p.parseTypeAliasStmt(start, false), true
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
		return js_ast.Stmt{}, false
	}

	if p.lex.IsContextualKeyword("namespace") || p.lex.IsContextualKeyword("module") {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.lex.IsIdentifierOrKeyword() || p.at(js_lexer.TStringLiteral) {
			return p.parseTSModuleStmt(start, false), true
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
		return js_ast.Stmt{}, false
	}

	if p.lex.IsContextualKeyword("declare") {
		p.next()
		return p.parseDeclareStmt(start), true
	}

	if p.lex.IsContextualKeyword("abstract") {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.at(js_lexer.TClass) {
			return p.parseClassStmt(start), true
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
		return js_ast.Stmt{}, false
	}

	return js_ast.Stmt{}, false
}

// parseDeclareStmt handles "declare function/class/const/let/var/interface/
// type/enum/namespace/module/global ...". Ambient statements carry no
// runtime value, only type information; the semantic pass still declares
// their names like any other declaration.
func (p *parser) parseDeclareStmt(start uint32) js_ast.Stmt {
	switch {
	case p.at(js_lexer.TFunction):
		stmt := p.parseFnStmt(start, false)
		stmt.Data.(*js_ast.SFunction).Fn.IsDeclare = true
		return stmt
	case p.at(js_lexer.TClass):
		return p.parseClassStmt(start)
	case p.at(js_lexer.TVar) || p.at(js_lexer.TConst):
		stmt := p.parseStmt()
		if local, ok := stmt.Data.(*js_ast.SLocal); ok {
			local.IsDeclare = true
		}
		return stmt
	case p.lex.IsContextualKeyword("let"):
		p.next()
		decls := p.parseDecls()
		p.semicolon()
		return js_ast.Stmt{Data: &js_ast.SLocal{Decls: decls, Kind: js_ast.LocalLet, IsDeclare: true}, Span: p.spanFrom(start)}
	case p.lex.IsContextualKeyword("interface"):
		return p.parseInterfaceStmt(start, false)
	case p.lex.IsContextualKeyword("enum") || p.at(js_lexer.TEnum):
		return p.parseEnumStmt(start, false, false)
	case p.lex.IsContextualKeyword("type"):
		p.next()
		return p.parseTypeAliasStmt(start, false)
	case p.lex.IsContextualKeyword("namespace") || p.lex.IsContextualKeyword("module") || p.lex.IsContextualKeyword("global"):
		if !p.lex.IsContextualKeyword("global") {
			p.next() // "namespace"/"module"; "global" is itself the name
		}
		return p.parseTSModuleStmt(start, false)
	default:
		p.unexpected()
		return js_ast.Stmt{}
	}
}

func (p *parser) parseInterfaceStmt(start uint32, isExport bool) js_ast.Stmt {
	p.next() // "interface"
	nameStart := p.lex.Start()
	p.next()
	name := js_ast.NodeRef{Span: p.spanFrom(nameStart)}
	var typeParams *js_ast.TSTypeParamDecl
	if p.at(js_lexer.TLessThan) {
		typeParams = p.parseTSTypeParams()
	}
	var extends []js_ast.TSType
	if p.eat(js_lexer.TExtends) {
		for {
			extends = append(extends, p.parseTSType())
			if !p.eat(js_lexer.TComma) {
				break
			}
		}
	}
	body := p.parseTSObjectTypeBody()
	return js_ast.Stmt{Data: &js_ast.STSInterface{Name: name, TypeParams: typeParams, Extends: extends, Body: body, IsExport: isExport}, Span: p.spanFrom(start)}
}

func (p *parser) parseTypeAliasStmt(start uint32, isExport bool) js_ast.Stmt {
	nameStart := p.lex.Start()
	p.next()
	name := js_ast.NodeRef{Span: p.spanFrom(nameStart)}
	var typeParams *js_ast.TSTypeParamDecl
	if p.at(js_lexer.TLessThan) {
		typeParams = p.parseTSTypeParams()
	}
	p.expect(js_lexer.TEquals)
	value := p.parseTSType()
	p.semicolon()
	return js_ast.Stmt{Data: &js_ast.STSTypeAlias{Name: name, TypeParams: typeParams, Value: value, IsExport: isExport}, Span: p.spanFrom(start)}
}

func (p *parser) parseEnumStmt(start uint32, isExport, isConst bool) js_ast.Stmt {
	p.next() // "enum"
	nameStart := p.lex.Start()
	p.next()
	name := js_ast.NodeRef{Span: p.spanFrom(nameStart)}
	p.expect(js_lexer.TOpenBrace)
	var values []js_ast.STSEnumValue
	for !p.at(js_lexer.TCloseBrace) {
		memberStart := p.lex.Start()
		var memberName string
		if p.at(js_lexer.TStringLiteral) {
			memberName = p.lex.Identifier
		} else {
			memberName = p.lex.Identifier
		}
		p.next()
		var value js_ast.Expr
		if p.eat(js_lexer.TEquals) {
			value = p.parseExpr(js_ast.LComma)
		}
		values = append(values, js_ast.STSEnumValue{ValueOrNil: value, Name: memberName, Span: p.spanFrom(memberStart)})
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	p.expect(js_lexer.TCloseBrace)
	return js_ast.Stmt{Data: &js_ast.STSEnum{Values: values, Name: name, IsConst: isConst, IsExport: isExport}, Span: p.spanFrom(start)}
}

func (p *parser) parseTSModuleStmt(start uint32, isExport bool) js_ast.Stmt {
	nameStart := p.lex.Start()
	if p.at(js_lexer.TStringLiteral) {
		p.next()
	} else {
		p.next()
		for p.eat(js_lexer.TDot) {
			p.next()
		}
	}
	name := js_ast.NodeRef{Span: p.spanFrom(nameStart)}
	var stmts []js_ast.Stmt
	if p.at(js_lexer.TOpenBrace) {
		p.next()
		for !p.at(js_lexer.TCloseBrace) {
			stmts = append(stmts, p.parseStmt())
		}
		p.expect(js_lexer.TCloseBrace)
	} else {
		p.semicolon()
	}
	return js_ast.Stmt{Data: &js_ast.STSModule{Stmts: stmts, Name: name, IsExport: isExport}, Span: p.spanFrom(start)}
}

// parseTSObjectTypeBody parses the "{ ... }" member list shared by
// interfaces and object type literals.
func (p *parser) parseTSObjectTypeBody() []js_ast.TSSignature {
	p.expect(js_lexer.TOpenBrace)
	var members []js_ast.TSSignature
	for !p.at(js_lexer.TCloseBrace) {
		members = append(members, p.parseTSSignature())
		p.eat(js_lexer.TSemicolon)
		p.eat(js_lexer.TComma)
	}
	p.expect(js_lexer.TCloseBrace)
	return members
}

func (p *parser) parseTSSignature() js_ast.TSSignature {
	if p.at(js_lexer.TOpenBracket) {
		// Could be an index signature "[key: string]: T" or a computed
		// property name; only the former is valid in a type body.
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.lex.IsIdentifierOrKeyword() {
			keyStart := p.lex.Start()
			p.next()
			if p.at(js_lexer.TColon) {
				p.next()
				indexType := p.parseTSType()
				p.expect(js_lexer.TCloseBracket)
				p.expect(js_lexer.TColon)
				valueType := p.parseTSType()
				return js_ast.TSSignature{Kind: js_ast.TSSigIndex, Type: valueType,
					Key: js_ast.Expr{Data: &js_ast.EString{}, Span: p.spanFrom(keyStart)}, Params: []js_ast.Arg{{TSType: &js_ast.TSTypeAnnotation{Type: indexType}}}}
			}
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
	}

	if p.at(js_lexer.TOpenParen) || p.at(js_lexer.TLessThan) {
		var typeParams *js_ast.TSTypeParamDecl
		if p.at(js_lexer.TLessThan) {
			typeParams = p.parseTSTypeParams()
		}
		params, ret := p.parseTSFnSignatureTail()
		return js_ast.TSSignature{Kind: js_ast.TSSigCall, Params: params, Type: ret, TypeParams: typeParams}
	}

	if p.at(js_lexer.TNew) {
		p.next()
		var typeParams *js_ast.TSTypeParamDecl
		if p.at(js_lexer.TLessThan) {
			typeParams = p.parseTSTypeParams()
		}
		params, ret := p.parseTSFnSignatureTail()
		return js_ast.TSSignature{Kind: js_ast.TSSigConstruct, Params: params, Type: ret, TypeParams: typeParams}
	}

	readonly := false
	if p.lex.IsContextualKeyword("readonly") {
		readonly = true
		p.next()
	}

	kind := js_ast.TSSigProperty
	if p.lex.IsContextualKeyword("get") || p.lex.IsContextualKeyword("set") {
		isGet := p.lex.IsContextualKeyword("get")
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.at(js_lexer.TOpenParen) || p.at(js_lexer.TColon) || p.at(js_lexer.TSemicolon) || p.at(js_lexer.TCloseBrace) {
			p.lex.Restore(checkpoint)
			p.lastEnd = savedEnd
		} else if isGet {
			kind = js_ast.TSSigGet
		} else {
			kind = js_ast.TSSigSet
		}
	}

	key, isComputed := p.parsePropertyKey()
	optional := p.eat(js_lexer.TQuestion)

	if p.at(js_lexer.TOpenParen) || p.at(js_lexer.TLessThan) {
		var typeParams *js_ast.TSTypeParamDecl
		if p.at(js_lexer.TLessThan) {
			typeParams = p.parseTSTypeParams()
		}
		params, ret := p.parseTSFnSignatureTail()
		if kind == js_ast.TSSigProperty {
			kind = js_ast.TSSigMethod
		}
		return js_ast.TSSignature{Key: key, IsComputed: isComputed, Optional: optional, Readonly: readonly, Kind: kind, Params: params, Type: ret, TypeParams: typeParams}
	}

	var typ js_ast.TSType
	if p.eat(js_lexer.TColon) {
		typ = p.parseTSType()
	}
	return js_ast.TSSignature{Key: key, IsComputed: isComputed, Optional: optional, Readonly: readonly, Kind: kind, Type: typ}
}

func (p *parser) parseTSFnSignatureTail() ([]js_ast.Arg, js_ast.TSType) {
	p.expect(js_lexer.TOpenParen)
	var params []js_ast.Arg
	for !p.at(js_lexer.TCloseParen) {
		arg, _ := p.parseArg()
		params = append(params, arg)
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	p.expect(js_lexer.TCloseParen)
	var ret js_ast.TSType
	if p.eat(js_lexer.TColon) {
		ret = p.parseTSType()
	}
	return params, ret
}
