package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

var tsKeywordTypes = map[string]js_ast.TSKeywordKind{
	"any": js_ast.TSKeywordAny, "unknown": js_ast.TSKeywordUnknown, "never": js_ast.TSKeywordNever,
	"void": js_ast.TSKeywordVoid, "undefined": js_ast.TSKeywordUndefined, "null": js_ast.TSKeywordNull,
	"object": js_ast.TSKeywordObject, "string": js_ast.TSKeywordString, "number": js_ast.TSKeywordNumber,
	"boolean": js_ast.TSKeywordBoolean, "bigint": js_ast.TSKeywordBigInt, "symbol": js_ast.TSKeywordSymbol,
	"intrinsic": js_ast.TSKeywordIntrinsic,
}

// parseTSType parses a full type expression at the lowest precedence
// (union/conditional), the entry point used wherever a ": Type" annotation,
// type argument, or type alias RHS appears.
func (p *parser) parseTSType() js_ast.TSType {
	return p.parseTSConditionalType()
}

func (p *parser) parseTSConditionalType() js_ast.TSType {
	start := p.lex.Start()
	check := p.parseTSUnionType()
	if p.at(js_lexer.TExtends) {
		p.next()
		extends := p.parseTSUnionTypeNoConditional()
		p.expect(js_lexer.TQuestion)
		trueType := p.parseTSType()
		p.expect(js_lexer.TColon)
		falseType := p.parseTSType()
		return js_ast.TSType{Data: &js_ast.TSConditionalType{Check: check, Extends: extends, True: trueType, False: falseType}, Span: p.spanFrom(start)}
	}
	return check
}

func (p *parser) parseTSUnionTypeNoConditional() js_ast.TSType {
	return p.parseTSUnionType()
}

func (p *parser) parseTSUnionType() js_ast.TSType {
	start := p.lex.Start()
	p.eat(js_lexer.TBar)
	first := p.parseTSIntersectionType()
	if !p.at(js_lexer.TBar) {
		return first
	}
	types := []js_ast.TSType{first}
	for p.eat(js_lexer.TBar) {
		types = append(types, p.parseTSIntersectionType())
	}
	return js_ast.TSType{Data: &js_ast.TSUnionType{Types: types}, Span: p.spanFrom(start)}
}

func (p *parser) parseTSIntersectionType() js_ast.TSType {
	start := p.lex.Start()
	p.eat(js_lexer.TAmpersand)
	first := p.parseTSTypeOperator()
	if !p.at(js_lexer.TAmpersand) {
		return first
	}
	types := []js_ast.TSType{first}
	for p.eat(js_lexer.TAmpersand) {
		types = append(types, p.parseTSTypeOperator())
	}
	return js_ast.TSType{Data: &js_ast.TSIntersectionType{Types: types}, Span: p.spanFrom(start)}
}

func (p *parser) parseTSTypeOperator() js_ast.TSType {
	start := p.lex.Start()
	if p.lex.IsContextualKeyword("keyof") {
		p.next()
		return js_ast.TSType{Data: &js_ast.TSTypeOperator{Op: js_ast.TSTypeOperatorKeyof, Type: p.parseTSTypeOperator()}, Span: p.spanFrom(start)}
	}
	if p.lex.IsContextualKeyword("unique") {
		p.next()
		return js_ast.TSType{Data: &js_ast.TSTypeOperator{Op: js_ast.TSTypeOperatorUnique, Type: p.parseTSTypeOperator()}, Span: p.spanFrom(start)}
	}
	if p.lex.IsContextualKeyword("readonly") {
		p.next()
		return js_ast.TSType{Data: &js_ast.TSTypeOperator{Op: js_ast.TSTypeOperatorReadonly, Type: p.parseTSTypeOperator()}, Span: p.spanFrom(start)}
	}
	if p.lex.IsContextualKeyword("infer") {
		p.next()
		nameStart := p.lex.Start()
		name := p.lex.Identifier
		p.next()
		_ = nameStart
		return js_ast.TSType{Data: &js_ast.TSInferType{Name: name}, Span: p.spanFrom(start)}
	}
	return p.parseTSPostfixType()
}

// parseTSPostfixType parses the array-suffix and indexed-access forms:
// "T[]", "T[number]", chained any number of times.
func (p *parser) parseTSPostfixType() js_ast.TSType {
	start := p.lex.Start()
	t := p.parseTSPrimaryType()
	for !p.lex.HasNewlineBefore && p.at(js_lexer.TOpenBracket) {
		p.next()
		if p.eat(js_lexer.TCloseBracket) {
			t = js_ast.TSType{Data: &js_ast.TSArrayType{ElementType: t}, Span: p.spanFrom(start)}
			continue
		}
		index := p.parseTSType()
		p.expect(js_lexer.TCloseBracket)
		t = js_ast.TSType{Data: &js_ast.TSIndexedAccessType{ObjectType: t, IndexType: index}, Span: p.spanFrom(start)}
	}
	return t
}

func (p *parser) parseTSPrimaryType() js_ast.TSType {
	start := p.lex.Start()

	switch p.lex.Token {
	case js_lexer.TOpenParen:
		return p.parseTSParenOrFnType(start)
	case js_lexer.TLessThan:
		return p.parseTSFnTypeWithTypeParams(start)
	case js_lexer.TNew:
		p.next()
		isAbstract := false
		var typeParams *js_ast.TSTypeParamDecl
		if p.at(js_lexer.TLessThan) {
			typeParams = p.parseTSTypeParams()
		}
		params, ret := p.parseTSFnSignatureTailArrow()
		return js_ast.TSType{Data: &js_ast.TSConstructorType{TypeParams: typeParams, Params: params, ReturnType: ret, IsAbstract: isAbstract}, Span: p.spanFrom(start)}
	case js_lexer.TOpenBracket:
		return p.parseTSTupleType(start)
	case js_lexer.TOpenBrace:
		return js_ast.TSType{Data: &js_ast.TSTypeLiteral{Members: p.parseTSObjectTypeBody()}, Span: p.spanFrom(start)}
	case js_lexer.TThis:
		p.next()
		return js_ast.TSType{Data: &js_ast.TSThisType{}, Span: p.spanFrom(start)}
	case js_lexer.TTypeof:
		p.next()
		if p.lex.IsContextualKeyword("import") {
			return p.parseTSImportType(start)
		}
		name := p.parseTSQualifiedName()
		return js_ast.TSType{Data: &js_ast.TSTypeQuery{Name: name}, Span: p.spanFrom(start)}
	case js_lexer.TStringLiteral:
		value := p.lex.Identifier
		p.next()
		return js_ast.TSType{Data: &js_ast.TSLiteralType{Value: js_ast.Expr{Data: &js_ast.EString{Value: value}, Span: p.spanFrom(start)}}, Span: p.spanFrom(start)}
	case js_lexer.TNoSubstitutionTemplateLiteral, js_lexer.TTemplateHead:
		return p.parseTSTemplateLiteralType(start)
	case js_lexer.TNumericLiteral:
		value := p.lex.Number
		p.next()
		return js_ast.TSType{Data: &js_ast.TSLiteralType{Value: js_ast.Expr{Data: &js_ast.ENumber{Value: value}, Span: p.spanFrom(start)}}, Span: p.spanFrom(start)}
	case js_lexer.TMinus:
		p.next()
		value := p.lex.Number
		p.expect(js_lexer.TNumericLiteral)
		return js_ast.TSType{Data: &js_ast.TSLiteralType{Value: js_ast.Expr{Data: &js_ast.ENumber{Value: -value}, Span: p.spanFrom(start)}}, Span: p.spanFrom(start)}
	case js_lexer.TTrue, js_lexer.TFalse:
		isTrue := p.lex.Token == js_lexer.TTrue
		p.next()
		return js_ast.TSType{Data: &js_ast.TSLiteralType{Value: js_ast.Expr{Data: &js_ast.EBoolean{Value: isTrue}, Span: p.spanFrom(start)}}, Span: p.spanFrom(start)}
	case js_lexer.TDotDotDot:
		p.next()
		return js_ast.TSType{Data: &js_ast.TSRestType{Type: p.parseTSType()}, Span: p.spanFrom(start)}
	}

	if p.lex.IsContextualKeyword("import") {
		return p.parseTSImportType(start)
	}

	if p.lex.IsContextualKeyword("asserts") {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.lex.IsIdentifierOrKeyword() {
			p.next()
			if p.lex.IsContextualKeyword("is") {
				p.next()
				p.parseTSType()
			}
			return js_ast.TSType{Data: &js_ast.TSKeyword{Kind: js_ast.TSKeywordVoid}, Span: p.spanFrom(start)}
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
	}

	if p.lex.IsIdentifierOrKeyword() {
		if kind, ok := tsKeywordTypes[p.lex.Identifier]; ok {
			name := p.lex.Identifier
			p.next()
			if !p.at(js_lexer.TDot) {
				return js_ast.TSType{Data: &js_ast.TSKeyword{Kind: kind}, Span: p.spanFrom(start)}
			}
			// "object.Foo" etc: fall through to qualified-name parsing using
			// the already-consumed first segment.
			segs := []string{name}
			for p.eat(js_lexer.TDot) {
				segs = append(segs, p.lex.Identifier)
				p.next()
			}
			return p.finishTSTypeReference(start, segs)
		}
		return p.parseTSTypeReference(start)
	}

	p.unexpected()
	return js_ast.TSType{}
}

func (p *parser) parseTSQualifiedName() []string {
	segs := []string{p.lex.Identifier}
	p.next()
	for p.eat(js_lexer.TDot) {
		segs = append(segs, p.lex.Identifier)
		p.next()
	}
	return segs
}

func (p *parser) parseTSTypeReference(start uint32) js_ast.TSType {
	segs := p.parseTSQualifiedName()
	return p.finishTSTypeReference(start, segs)
}

func (p *parser) finishTSTypeReference(start uint32, segs []string) js_ast.TSType {
	var typeArgs []js_ast.TSType
	if p.at(js_lexer.TLessThan) {
		typeArgs = p.parseTSTypeArgs()
	}
	return js_ast.TSType{Data: &js_ast.TSTypeReference{Name: segs, TypeArgs: typeArgs}, Span: p.spanFrom(start)}
}

func (p *parser) parseTSTypeArgs() []js_ast.TSType {
	p.expect(js_lexer.TLessThan)
	var args []js_ast.TSType
	for !p.at(js_lexer.TGreaterThan) {
		args = append(args, p.parseTSType())
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	p.expect(js_lexer.TGreaterThan)
	return args
}

func (p *parser) parseTSImportType(start uint32) js_ast.TSType {
	p.next() // "import"
	p.expect(js_lexer.TOpenParen)
	p.expect(js_lexer.TStringLiteral)
	p.expect(js_lexer.TCloseParen)
	var qualifier []string
	for p.eat(js_lexer.TDot) {
		qualifier = append(qualifier, p.lex.Identifier)
		p.next()
	}
	var typeArgs []js_ast.TSType
	if p.at(js_lexer.TLessThan) {
		typeArgs = p.parseTSTypeArgs()
	}
	return js_ast.TSType{Data: &js_ast.TSImportType{Qualifier: qualifier, TypeArgs: typeArgs}, Span: p.spanFrom(start)}
}

func (p *parser) parseTSTemplateLiteralType(start uint32) js_ast.TSType {
	head := p.lex.Identifier
	isTail := p.lex.Token == js_lexer.TNoSubstitutionTemplateLiteral
	p.next()
	result := js_ast.TSTemplateLiteralType{Head: head}
	for !isTail {
		typ := p.parseTSType()
		p.lex.RescanCloseBraceAsTemplateToken()
		cooked := p.lex.Identifier
		isTail = p.lex.Token == js_lexer.TTemplateTail
		p.next()
		result.Spans = append(result.Spans, js_ast.TSTemplateLiteralSpan{Cooked: cooked, Type: typ})
	}
	return js_ast.TSType{Data: &result, Span: p.spanFrom(start)}
}

func (p *parser) parseTSTupleType(start uint32) js_ast.TSType {
	p.next() // "["
	var elements []js_ast.TSTupleElement
	for !p.at(js_lexer.TCloseBracket) {
		isRest := p.eat(js_lexer.TDotDotDot)
		label := ""
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		if p.lex.IsIdentifierOrKeyword() {
			name := p.lex.Identifier
			p.next()
			optional := p.eat(js_lexer.TQuestion)
			if p.at(js_lexer.TColon) {
				p.next()
				label = name
				_ = optional
			} else {
				p.lex.Restore(checkpoint)
				p.lastEnd = savedEnd
			}
		}
		typ := p.parseTSType()
		optional := p.eat(js_lexer.TQuestion)
		elements = append(elements, js_ast.TSTupleElement{Type: typ, Label: label, IsRest: isRest, Optional: optional})
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	p.expect(js_lexer.TCloseBracket)
	return js_ast.TSType{Data: &js_ast.TSTupleType{Elements: elements}, Span: p.spanFrom(start)}
}

// parseTSParenOrFnType disambiguates "(" starting a parenthesized type
// "(A | B)" from a function type "(a: A, b: B) => C", mirroring the
// expression-level arrow disambiguation but at the type grammar level.
func (p *parser) parseTSParenOrFnType(start uint32) js_ast.TSType {
	checkpoint := p.lex.Save()
	savedEnd := p.lastEnd
	isFn := func() (ok bool) {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		p.expect(js_lexer.TOpenParen)
		for !p.at(js_lexer.TCloseParen) {
			p.parseArg()
			if !p.eat(js_lexer.TComma) {
				break
			}
		}
		p.expect(js_lexer.TCloseParen)
		return p.at(js_lexer.TEqualsGreaterThan)
	}()
	p.lex.Restore(checkpoint)
	p.lastEnd = savedEnd

	if isFn {
		params, ret := p.parseTSFnSignatureTailArrow()
		return js_ast.TSType{Data: &js_ast.TSFunctionType{Params: params, ReturnType: ret}, Span: p.spanFrom(start)}
	}

	p.expect(js_lexer.TOpenParen)
	inner := p.parseTSType()
	p.expect(js_lexer.TCloseParen)
	return js_ast.TSType{Data: &js_ast.TSParenthesizedType{Type: inner}, Span: p.spanFrom(start)}
}

func (p *parser) parseTSFnTypeWithTypeParams(start uint32) js_ast.TSType {
	typeParams := p.parseTSTypeParams()
	params, ret := p.parseTSFnSignatureTailArrow()
	return js_ast.TSType{Data: &js_ast.TSFunctionType{TypeParams: typeParams, Params: params, ReturnType: ret}, Span: p.spanFrom(start)}
}

// parseTSFnSignatureTailArrow is like parseTSFnSignatureTail but expects
// "=>" rather than ":" before the return type, for function/constructor
// type expressions (as opposed to interface method signatures).
func (p *parser) parseTSFnSignatureTailArrow() ([]js_ast.Arg, js_ast.TSType) {
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
	p.expect(js_lexer.TEqualsGreaterThan)
	return params, p.parseTSType()
}

// parseTSTypeParams parses a "<T, U extends V = D, const W>" generic
// parameter list.
func (p *parser) parseTSTypeParams() *js_ast.TSTypeParamDecl {
	start := p.lex.Start()
	p.expect(js_lexer.TLessThan)
	var params []js_ast.TSTypeParam
	for !p.at(js_lexer.TGreaterThan) {
		paramStart := p.lex.Start()
		isConst := false
		if p.lex.IsContextualKeyword("const") {
			isConst = true
			p.next()
		}
		isIn, isOut := false, false
		for p.lex.IsContextualKeyword("in") || p.lex.IsContextualKeyword("out") {
			if p.lex.IsContextualKeyword("in") {
				isIn = true
			} else {
				isOut = true
			}
			p.next()
		}
		name := p.lex.Identifier
		p.next()
		var constraint, def js_ast.TSType
		if p.eat(js_lexer.TExtends) {
			constraint = p.parseTSType()
		}
		if p.eat(js_lexer.TEquals) {
			def = p.parseTSType()
		}
		params = append(params, js_ast.TSTypeParam{Name: name, Constraint: constraint, Default: def,
			Span: p.spanFrom(paramStart), IsConst: isConst, IsIn: isIn, IsOut: isOut})
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	p.expect(js_lexer.TGreaterThan)
	return &js_ast.TSTypeParamDecl{Params: params, Span: p.spanFrom(start)}
}

// parseTSTypeAssertion parses the legacy "<Type>expr" cast, valid only in
// non-JSX (.ts) source files.
func (p *parser) parseTSTypeAssertion(start uint32) js_ast.Expr {
	p.expect(js_lexer.TLessThan)
	typ := p.parseTSType()
	p.expect(js_lexer.TGreaterThan)
	value := p.parsePrefix(js_ast.LPrefix)
	return js_ast.Expr{Data: &js_ast.ETSTypeAssertion{Type: typ, Value: value}, Span: p.spanFrom(start)}
}
