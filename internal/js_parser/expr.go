package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

func (p *parser) parseExpr(level js_ast.L) js_ast.Expr {
	expr := p.parsePrefix(level)
	return p.parseSuffix(expr, level)
}

// parseExprOrCommaList parses a full comma-operator sequence; callers that
// want just one assignment-level expression use parseExpr(js_ast.LComma)
// directly instead.
func (p *parser) parseExprOrCommaList() js_ast.Expr {
	return p.parseExpr(js_ast.LLowest)
}

func (p *parser) parsePrefix(level js_ast.L) js_ast.Expr {
	start := p.lex.Start()

	// "yield" is lexed as an ordinary identifier (it is only reserved in
	// strict code), so it is recognized here by name.
	if p.at(js_lexer.TIdentifier) && p.lex.Identifier == "yield" {
		return p.parseYieldExpr(start)
	}

	// "await" is likewise lexed as an identifier and always parsed as the
	// operator here; the semantic pass reports it outside async functions.
	if p.at(js_lexer.TIdentifier) && p.lex.Identifier == "await" {
		p.next()
		value := p.parseExpr(js_ast.LPrefix)
		return js_ast.Expr{Data: &js_ast.EAwait{Value: value}, Span: p.spanFrom(start)}
	}

	switch p.lex.Token {
	case js_lexer.TNumericLiteral:
		value := p.lex.Number
		p.next()
		return js_ast.Expr{Data: &js_ast.ENumber{Value: value}, Span: p.spanFrom(start)}

	case js_lexer.TBigIntegerLiteral:
		value := p.lex.Identifier
		p.next()
		return js_ast.Expr{Data: &js_ast.EBigInt{Value: value}, Span: p.spanFrom(start)}

	case js_lexer.TStringLiteral:
		value := p.lex.Identifier
		p.next()
		return js_ast.Expr{Data: &js_ast.EString{Value: value}, Span: p.spanFrom(start)}

	case js_lexer.TNoSubstitutionTemplateLiteral:
		headSpan := p.lex.Span()
		cooked, raw := p.lex.RawTemplateContents()
		p.next()
		return js_ast.Expr{Data: &js_ast.ETemplate{HeadCooked: cooked, HeadRaw: raw, HeadSpan: headSpan}, Span: p.spanFrom(start)}

	case js_lexer.TTemplateHead:
		return p.parseTemplateLiteral(start, js_ast.Expr{})

	case js_lexer.TRegExpLiteral:
		value := p.lex.Identifier
		p.next()
		return js_ast.Expr{Data: &js_ast.ERegExp{Value: value}, Span: p.spanFrom(start)}

	case js_lexer.TTrue:
		p.next()
		return js_ast.Expr{Data: &js_ast.EBoolean{Value: true}, Span: p.spanFrom(start)}

	case js_lexer.TFalse:
		p.next()
		return js_ast.Expr{Data: &js_ast.EBoolean{Value: false}, Span: p.spanFrom(start)}

	case js_lexer.TNull:
		p.next()
		return js_ast.Expr{Data: &js_ast.ENull{}, Span: p.spanFrom(start)}

	case js_lexer.TThis:
		p.next()
		return js_ast.Expr{Data: &js_ast.EThis{}, Span: p.spanFrom(start)}

	case js_lexer.TSuper:
		p.next()
		return js_ast.Expr{Data: &js_ast.ESuper{}, Span: p.spanFrom(start)}

	case js_lexer.TOpenBracket:
		return p.parseArrayLiteral(start)

	case js_lexer.TOpenBrace:
		return p.parseObjectLiteral(start)

	case js_lexer.TOpenParen:
		return p.parseParenExprOrArrow(start, false)

	case js_lexer.TFunction:
		return p.parseFnExpr(start, false)

	case js_lexer.TClass:
		return p.parseClassExpr(start)

	case js_lexer.TNew:
		return p.parseNewExpr(start)

	case js_lexer.TImport:
		return p.parseImportExpr(start)

	case js_lexer.TPrivateIdentifier:
		name := p.lex.Identifier
		p.next()
		return js_ast.Expr{Data: &js_ast.EPrivateIdentifier{Name: name}, Span: p.spanFrom(start)}

	case js_lexer.TLessThan:
		if p.options.SourceType.JSX {
			expr := p.parseJSXElementOrFragment(start)
			p.next() // consume the element's own final ">"; ordinary tokenization resumes here
			return expr
		}
		return p.parseTSTypeAssertion(start)

	case js_lexer.TMinus, js_lexer.TPlus, js_lexer.TTilde, js_lexer.TExclamation,
		js_lexer.TMinusMinus, js_lexer.TPlusPlus, js_lexer.TTypeof, js_lexer.TVoid, js_lexer.TDelete:
		return p.parseUnaryPrefix(start)

	case js_lexer.TDotDotDot:
		p.next()
		value := p.parseExpr(js_ast.LSpread)
		return js_ast.Expr{Data: &js_ast.ESpread{Value: value}, Span: p.spanFrom(start)}

	default:
		if p.lex.IsIdentifierOrKeyword() {
			if p.lex.IsContextualKeyword("async") {
				return p.parseAsyncExpr(start)
			}
			name := p.lex.Identifier
			p.next()
			if p.at(js_lexer.TEqualsGreaterThan) && !p.lex.HasNewlineBefore {
				return p.parseArrowBody(start, []js_ast.Arg{identArg(name, start, p.lastEnd)}, false)
			}
			return js_ast.Expr{Data: &js_ast.EIdentifier{Name: name}, Span: p.spanFrom(start)}
		}
		p.unexpected()
		return js_ast.Expr{}
	}
}

var prefixUnaryOps = map[js_lexer.T]js_ast.OpCode{
	js_lexer.TPlus:        js_ast.UnOpPos,
	js_lexer.TMinus:       js_ast.UnOpNeg,
	js_lexer.TTilde:       js_ast.UnOpCpl,
	js_lexer.TExclamation: js_ast.UnOpNot,
	js_lexer.TVoid:        js_ast.UnOpVoid,
	js_lexer.TTypeof:      js_ast.UnOpTypeof,
	js_lexer.TDelete:      js_ast.UnOpDelete,
	js_lexer.TMinusMinus:  js_ast.UnOpPreDec,
	js_lexer.TPlusPlus:    js_ast.UnOpPreInc,
}

func (p *parser) parseUnaryPrefix(start uint32) js_ast.Expr {
	op := prefixUnaryOps[p.lex.Token]
	p.next()
	value := p.parseExpr(js_ast.LPrefix)
	return js_ast.Expr{Data: &js_ast.EUnary{Value: value, Op: op}, Span: p.spanFrom(start)}
}

func (p *parser) parseYieldExpr(start uint32) js_ast.Expr {
	p.next()
	isStar := p.eat(js_lexer.TAsterisk)
	var arg js_ast.Expr
	if !p.at(js_lexer.TSemicolon) && !p.at(js_lexer.TCloseParen) && !p.at(js_lexer.TCloseBrace) &&
		!p.at(js_lexer.TCloseBracket) && !p.at(js_lexer.TColon) && !p.at(js_lexer.TComma) &&
		!p.at(js_lexer.TEndOfFile) && !p.lex.HasNewlineBefore {
		arg = p.parseExpr(js_ast.LYield)
	}
	return js_ast.Expr{Data: &js_ast.EYield{ValueOrNil: arg, IsStar: isStar}, Span: p.spanFrom(start)}
}

// parseAsyncExpr handles every grammar position the contextual keyword
// "async" can start: "async function", "async (a, b) => ...",
// "async x => ...", or a plain identifier named "async".
func (p *parser) parseAsyncExpr(start uint32) js_ast.Expr {
	p.next()
	if p.lex.HasNewlineBefore {
		return js_ast.Expr{Data: &js_ast.EIdentifier{Name: "async"}, Span: p.spanFrom(start)}
	}
	if p.at(js_lexer.TFunction) {
		return p.parseFnExpr(start, true)
	}
	if p.at(js_lexer.TOpenParen) {
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		if expr, ok := p.tryParseArrowFromParen(start, true); ok {
			return expr
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
		return js_ast.Expr{Data: &js_ast.EIdentifier{Name: "async"}, Span: p.spanFrom(start)}
	}
	if p.lex.IsIdentifierOrKeyword() {
		argStart := p.lex.Start()
		name := p.lex.Identifier
		checkpoint := p.lex.Save()
		savedEnd := p.lastEnd
		p.next()
		if p.at(js_lexer.TEqualsGreaterThan) && !p.lex.HasNewlineBefore {
			return p.parseArrowBody(start, []js_ast.Arg{identArg(name, argStart, p.lastEnd)}, true)
		}
		p.lex.Restore(checkpoint)
		p.lastEnd = savedEnd
	}
	return js_ast.Expr{Data: &js_ast.EIdentifier{Name: "async"}, Span: p.spanFrom(start)}
}

func (p *parser) parseSuffix(left js_ast.Expr, level js_ast.L) js_ast.Expr {
	for {
		start := left.Span.Start
		switch p.lex.Token {
		case js_lexer.TDot:
			p.next()
			if !p.lex.IsIdentifierOrKeyword() {
				p.unexpected()
			}
			name := p.lex.Identifier
			nameSpan := p.lex.Span()
			p.next()
			left = js_ast.Expr{Data: &js_ast.EDot{Target: left, Name: name, NameSpan: nameSpan}, Span: p.spanFrom(start)}

		case js_lexer.TQuestionDot:
			p.next()
			switch p.lex.Token {
			case js_lexer.TOpenParen:
				args, closeSpan, isMultiLine := p.parseCallArgs()
				left = js_ast.Expr{Data: &js_ast.ECall{Target: left, Args: args, CloseParenSpan: closeSpan,
					IsOptionalChain: true, OptionalChainStart: true, IsMultiLine: isMultiLine}, Span: p.spanFrom(start)}
			case js_lexer.TOpenBracket:
				p.next()
				index := p.parseExprOrCommaList()
				p.expect(js_lexer.TCloseBracket)
				left = js_ast.Expr{Data: &js_ast.EIndex{Target: left, Index: index,
					IsOptionalChain: true, OptionalChainStart: true}, Span: p.spanFrom(start)}
			default:
				name := p.lex.Identifier
				nameSpan := p.lex.Span()
				p.next()
				left = js_ast.Expr{Data: &js_ast.EDot{Target: left, Name: name, NameSpan: nameSpan,
					IsOptionalChain: true, OptionalChainStart: true}, Span: p.spanFrom(start)}
			}
			left = js_ast.Expr{Data: &js_ast.EChain{Value: left}, Span: left.Span}

		case js_lexer.TOpenBracket:
			if level >= js_ast.LMember {
				return left
			}
			p.next()
			index := p.parseExprOrCommaList()
			p.expect(js_lexer.TCloseBracket)
			left = js_ast.Expr{Data: &js_ast.EIndex{Target: left, Index: index}, Span: p.spanFrom(start)}

		case js_lexer.TOpenParen:
			if level >= js_ast.LCall {
				return left
			}
			args, closeSpan, isMultiLine := p.parseCallArgs()
			left = js_ast.Expr{Data: &js_ast.ECall{Target: left, Args: args, CloseParenSpan: closeSpan, IsMultiLine: isMultiLine}, Span: p.spanFrom(start)}

		case js_lexer.TNoSubstitutionTemplateLiteral:
			headSpan := p.lex.Span()
			cooked, raw := p.lex.RawTemplateContents()
			p.next()
			left = js_ast.Expr{Data: &js_ast.ETemplate{TagOrNil: left, HeadCooked: cooked, HeadRaw: raw, HeadSpan: headSpan}, Span: p.spanFrom(start)}

		case js_lexer.TTemplateHead:
			left = p.parseTemplateLiteral(start, left)

		case js_lexer.TPlusPlus, js_lexer.TMinusMinus:
			if p.lex.HasNewlineBefore || level >= js_ast.LPostfix {
				return left
			}
			op := js_ast.UnOpPostInc
			if p.lex.Token == js_lexer.TMinusMinus {
				op = js_ast.UnOpPostDec
			}
			p.next()
			left = js_ast.Expr{Data: &js_ast.EUnary{Value: left, Op: op}, Span: p.spanFrom(start)}

		case js_lexer.TExclamation:
			if p.lex.HasNewlineBefore {
				return left
			}
			p.next()
			left = js_ast.Expr{Data: &js_ast.ETSNonNull{Value: left}, Span: p.spanFrom(start)}

		case js_lexer.TQuestion:
			if level >= js_ast.LConditional {
				return left
			}
			p.next()
			yes := p.parseExpr(js_ast.LAssign)
			p.expect(js_lexer.TColon)
			no := p.parseExpr(js_ast.LAssign)
			left = js_ast.Expr{Data: &js_ast.EIf{Test: left, Yes: yes, No: no}, Span: p.spanFrom(start)}

		default:
			if p.lex.IsContextualKeyword("as") && level < js_ast.LCompare {
				p.next()
				if p.lex.IsContextualKeyword("const") {
					p.next()
					left = js_ast.Expr{Data: &js_ast.ETSAs{Value: left}, Span: p.spanFrom(start)}
				} else {
					typ := p.parseTSType()
					left = js_ast.Expr{Data: &js_ast.ETSAs{Value: left, Type: typ}, Span: p.spanFrom(start)}
				}
				continue
			}
			if p.lex.IsContextualKeyword("satisfies") && level < js_ast.LCompare {
				p.next()
				typ := p.parseTSType()
				left = js_ast.Expr{Data: &js_ast.ETSSatisfies{Value: left, Type: typ}, Span: p.spanFrom(start)}
				continue
			}
			if op, isBinary := binaryOps[p.lex.Token]; isBinary {
				entry := js_ast.OpTable[op]
				if entry.Level < level {
					return left
				}
				p.next()
				nextLevel := entry.Level
				if op.IsLeftAssociative() {
					nextLevel++
				}
				right := p.parseExpr(nextLevel)
				left = js_ast.Expr{Data: &js_ast.EBinary{Left: left, Right: right, Op: op}, Span: p.spanFrom(start)}
				continue
			}
			if p.at(js_lexer.TComma) && level < js_ast.LComma {
				p.next()
				right := p.parseExpr(js_ast.LComma)
				left = js_ast.Expr{Data: &js_ast.ESequence{Exprs: []js_ast.Expr{left, right}}, Span: p.spanFrom(start)}
				continue
			}
			return left
		}
	}
}

var binaryOps = map[js_lexer.T]js_ast.OpCode{
	js_lexer.TPlus:                                js_ast.BinOpAdd,
	js_lexer.TMinus:                                js_ast.BinOpSub,
	js_lexer.TAsterisk:                             js_ast.BinOpMul,
	js_lexer.TSlash:                                js_ast.BinOpDiv,
	js_lexer.TPercent:                              js_ast.BinOpRem,
	js_lexer.TAsteriskAsterisk:                     js_ast.BinOpPow,
	js_lexer.TLessThan:                             js_ast.BinOpLt,
	js_lexer.TLessThanEquals:                       js_ast.BinOpLe,
	js_lexer.TGreaterThan:                          js_ast.BinOpGt,
	js_lexer.TGreaterThanEquals:                    js_ast.BinOpGe,
	js_lexer.TIn:                                   js_ast.BinOpIn,
	js_lexer.TInstanceof:                           js_ast.BinOpInstanceof,
	js_lexer.TLessThanLessThan:                     js_ast.BinOpShl,
	js_lexer.TGreaterThanGreaterThan:                js_ast.BinOpShr,
	js_lexer.TGreaterThanGreaterThanGreaterThan:     js_ast.BinOpUShr,
	js_lexer.TEqualsEquals:                         js_ast.BinOpLooseEq,
	js_lexer.TExclamationEquals:                    js_ast.BinOpLooseNe,
	js_lexer.TEqualsEqualsEquals:                   js_ast.BinOpStrictEq,
	js_lexer.TExclamationEqualsEquals:              js_ast.BinOpStrictNe,
	js_lexer.TQuestionQuestion:                     js_ast.BinOpNullishCoalescing,
	js_lexer.TBarBar:                               js_ast.BinOpLogicalOr,
	js_lexer.TAmpersandAmpersand:                   js_ast.BinOpLogicalAnd,
	js_lexer.TBar:                                  js_ast.BinOpBitwiseOr,
	js_lexer.TAmpersand:                            js_ast.BinOpBitwiseAnd,
	js_lexer.TCaret:                                js_ast.BinOpBitwiseXor,
	js_lexer.TEquals:                               js_ast.BinOpAssign,
	js_lexer.TPlusEquals:                           js_ast.BinOpAddAssign,
	js_lexer.TMinusEquals:                          js_ast.BinOpSubAssign,
	js_lexer.TAsteriskEquals:                       js_ast.BinOpMulAssign,
	js_lexer.TSlashEquals:                          js_ast.BinOpDivAssign,
	js_lexer.TPercentEquals:                        js_ast.BinOpRemAssign,
	js_lexer.TAsteriskAsteriskEquals:                js_ast.BinOpPowAssign,
	js_lexer.TLessThanLessThanEquals:                js_ast.BinOpShlAssign,
	js_lexer.TGreaterThanGreaterThanEquals:          js_ast.BinOpShrAssign,
	js_lexer.TGreaterThanGreaterThanGreaterThanEquals: js_ast.BinOpUShrAssign,
	js_lexer.TBarEquals:                            js_ast.BinOpBitwiseOrAssign,
	js_lexer.TAmpersandEquals:                       js_ast.BinOpBitwiseAndAssign,
	js_lexer.TCaretEquals:                           js_ast.BinOpBitwiseXorAssign,
	js_lexer.TQuestionQuestionEquals:                js_ast.BinOpNullishCoalescingAssign,
	js_lexer.TBarBarEquals:                          js_ast.BinOpLogicalOrAssign,
	js_lexer.TAmpersandAmpersandEquals:               js_ast.BinOpLogicalAndAssign,
}

func (p *parser) parseCallArgs() (args []js_ast.Expr, closeParenSpan js_ast.Span, isMultiLine bool) {
	p.expect(js_lexer.TOpenParen)
	for !p.at(js_lexer.TCloseParen) {
		if p.lex.HasNewlineBefore {
			isMultiLine = true
		}
		if p.eat(js_lexer.TDotDotDot) {
			itemStart := p.lastEnd
			value := p.parseExpr(js_ast.LComma)
			args = append(args, js_ast.Expr{Data: &js_ast.ESpread{Value: value}, Span: p.spanFrom(itemStart)})
		} else {
			args = append(args, p.parseExpr(js_ast.LComma))
		}
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	closeStart := p.lex.Start()
	p.expect(js_lexer.TCloseParen)
	closeParenSpan = ast_span(closeStart, p.lastEnd)
	return
}

func (p *parser) parseArrayLiteral(start uint32) js_ast.Expr {
	p.next()
	var items []js_ast.Expr
	isSingleLine := true
	hasSpread := false
	for !p.at(js_lexer.TCloseBracket) {
		if p.lex.HasNewlineBefore {
			isSingleLine = false
		}
		if p.at(js_lexer.TComma) {
			items = append(items, js_ast.Expr{Data: &js_ast.EMissing{}})
			p.next()
			continue
		}
		itemStart := p.lex.Start()
		if p.eat(js_lexer.TDotDotDot) {
			value := p.parseExpr(js_ast.LComma)
			items = append(items, js_ast.Expr{Data: &js_ast.ESpread{Value: value}, Span: p.spanFrom(itemStart)})
			hasSpread = true
		} else {
			items = append(items, p.parseExpr(js_ast.LComma))
		}
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	closeStart := p.lex.Start()
	p.expect(js_lexer.TCloseBracket)
	return js_ast.Expr{Data: &js_ast.EArray{Items: items, CloseBracketSpan: ast_span(closeStart, p.lastEnd),
		IsSingleLine: isSingleLine, HasSpread: hasSpread}, Span: p.spanFrom(start)}
}

func (p *parser) parseObjectLiteral(start uint32) js_ast.Expr {
	p.next()
	var props []js_ast.Property
	isSingleLine := true
	hasSpread := false
	for !p.at(js_lexer.TCloseBrace) {
		if p.lex.HasNewlineBefore {
			isSingleLine = false
		}
		prop := p.parseObjectProperty()
		if prop.Kind == js_ast.PropertySpread {
			hasSpread = true
		}
		props = append(props, prop)
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	closeStart := p.lex.Start()
	p.expect(js_lexer.TCloseBrace)
	return js_ast.Expr{Data: &js_ast.EObject{Properties: props, CloseBraceSpan: ast_span(closeStart, p.lastEnd),
		IsSingleLine: isSingleLine, HasSpread: hasSpread}, Span: p.spanFrom(start)}
}

func (p *parser) parseObjectProperty() js_ast.Property {
	if p.eat(js_lexer.TDotDotDot) {
		value := p.parseExpr(js_ast.LComma)
		return js_ast.Property{Kind: js_ast.PropertySpread, ValueOrNil: value}
	}

	isAsync := false
	isGenerator := p.eat(js_lexer.TAsterisk)
	if !isGenerator && p.lex.IsContextualKeyword("async") {
		checkpoint := p.lex.Save()
		p.next()
		if p.at(js_lexer.TColon) || p.at(js_lexer.TComma) || p.at(js_lexer.TCloseBrace) || p.at(js_lexer.TOpenParen) {
			p.lex.Restore(checkpoint)
		} else {
			isAsync = true
			isGenerator = p.eat(js_lexer.TAsterisk)
		}
	}

	kind := js_ast.PropertyNormal
	if !isGenerator && !isAsync && (p.lex.IsContextualKeyword("get") || p.lex.IsContextualKeyword("set")) {
		isGet := p.lex.IsContextualKeyword("get")
		checkpoint := p.lex.Save()
		p.next()
		if p.at(js_lexer.TColon) || p.at(js_lexer.TComma) || p.at(js_lexer.TCloseBrace) || p.at(js_lexer.TOpenParen) {
			p.lex.Restore(checkpoint)
		} else if isGet {
			kind = js_ast.PropertyGet
		} else {
			kind = js_ast.PropertySet
		}
	}

	key, isComputed := p.parsePropertyKey()

	if kind == js_ast.PropertyGet || kind == js_ast.PropertySet || p.at(js_lexer.TOpenParen) {
		fn := p.parseFnTail(isAsync, isGenerator)
		value := js_ast.Expr{Data: &js_ast.EFunction{Fn: fn}}
		return js_ast.Property{Kind: kind, Key: key, ValueOrNil: value, IsComputed: isComputed, IsMethod: true}
	}

	if p.eat(js_lexer.TColon) {
		value := p.parseExpr(js_ast.LComma)
		return js_ast.Property{Key: key, ValueOrNil: value, IsComputed: isComputed}
	}

	prop := js_ast.Property{Key: key, WasShorthand: true, IsComputed: isComputed}
	if ident, ok := key.Data.(*js_ast.EString); ok {
		prop.ValueOrNil = js_ast.Expr{Data: &js_ast.EIdentifier{Name: ident.Value}, Span: key.Span}
	}
	if p.eat(js_lexer.TEquals) {
		prop.InitializerOrNil = p.parseExpr(js_ast.LComma)
	}
	return prop
}

func (p *parser) parsePropertyKey() (js_ast.Expr, bool) {
	start := p.lex.Start()
	if p.eat(js_lexer.TOpenBracket) {
		key := p.parseExpr(js_ast.LComma)
		p.expect(js_lexer.TCloseBracket)
		return key, true
	}
	if p.at(js_lexer.TStringLiteral) {
		value := p.lex.Identifier
		p.next()
		return js_ast.Expr{Data: &js_ast.EString{Value: value}, Span: p.spanFrom(start)}, false
	}
	if p.at(js_lexer.TNumericLiteral) {
		value := p.lex.Number
		p.next()
		return js_ast.Expr{Data: &js_ast.ENumber{Value: value}, Span: p.spanFrom(start)}, false
	}
	if p.at(js_lexer.TPrivateIdentifier) {
		name := p.lex.Identifier
		p.next()
		return js_ast.Expr{Data: &js_ast.EPrivateIdentifier{Name: name}, Span: p.spanFrom(start)}, false
	}
	name := p.lex.Identifier
	if !p.lex.IsIdentifierOrKeyword() {
		p.unexpected()
	}
	p.next()
	return js_ast.Expr{Data: &js_ast.EString{Value: name}, Span: p.spanFrom(start)}, false
}

func (p *parser) parseNewExpr(start uint32) js_ast.Expr {
	p.next()
	if p.at(js_lexer.TDot) {
		p.next()
		if !p.lex.IsContextualKeyword("target") {
			p.unexpected()
		}
		p.next()
		return js_ast.Expr{Data: &js_ast.ENewTarget{}, Span: p.spanFrom(start)}
	}
	target := p.parsePrefix(js_ast.LMember)
	target = p.parseMemberSuffixOnly(target)
	var args []js_ast.Expr
	if p.at(js_lexer.TOpenParen) {
		args, _, _ = p.parseCallArgs()
	}
	return js_ast.Expr{Data: &js_ast.ENew{Target: target, Args: args}, Span: p.spanFrom(start)}
}

// parseMemberSuffixOnly parses ".x"/"[x]" suffixes only, used by "new" so
// that "new Foo().bar" parses "Foo()" as the call being constructed rather
// than swallowed into the callee chain, per the grammar's MemberExpression
// production.
func (p *parser) parseMemberSuffixOnly(left js_ast.Expr) js_ast.Expr {
	for {
		start := left.Span.Start
		switch p.lex.Token {
		case js_lexer.TDot:
			p.next()
			name := p.lex.Identifier
			nameSpan := p.lex.Span()
			p.next()
			left = js_ast.Expr{Data: &js_ast.EDot{Target: left, Name: name, NameSpan: nameSpan}, Span: p.spanFrom(start)}
		case js_lexer.TOpenBracket:
			p.next()
			index := p.parseExprOrCommaList()
			p.expect(js_lexer.TCloseBracket)
			left = js_ast.Expr{Data: &js_ast.EIndex{Target: left, Index: index}, Span: p.spanFrom(start)}
		default:
			return left
		}
	}
}

func (p *parser) parseImportExpr(start uint32) js_ast.Expr {
	p.next()
	if p.at(js_lexer.TDot) {
		p.next()
		if !p.lex.IsContextualKeyword("meta") {
			p.unexpected()
		}
		p.next()
		return js_ast.Expr{Data: &js_ast.EImportMeta{}, Span: p.spanFrom(start)}
	}
	p.expect(js_lexer.TOpenParen)
	specifier := p.parseExpr(js_ast.LComma)
	var options js_ast.Expr
	if p.eat(js_lexer.TComma) && !p.at(js_lexer.TCloseParen) {
		options = p.parseExpr(js_ast.LComma)
		p.eat(js_lexer.TComma)
	}
	closeStart := p.lex.Start()
	p.expect(js_lexer.TCloseParen)
	return js_ast.Expr{Data: &js_ast.EImportCall{Expr: specifier, OptionsOrNil: options,
		CloseParenSpan: ast_span(closeStart, p.lastEnd)}, Span: p.spanFrom(start)}
}

// parseTemplateLiteral parses from a just-seen TTemplateHead through the
// matching TTemplateTail; tagOrNil is the tag expression for a tagged
// template, or the zero Expr for a bare one.
func (p *parser) parseTemplateLiteral(start uint32, tagOrNil js_ast.Expr) js_ast.Expr {
	headSpan := p.lex.Span()
	headCooked, headRaw := p.lex.RawTemplateContents()
	p.next()
	var parts []js_ast.TemplatePart
	for {
		value := p.parseExprOrCommaList()
		p.lex.RescanCloseBraceAsTemplateToken()
		tailSpan := p.lex.Span()
		cooked, raw := p.lex.RawTemplateContents()
		isTail := p.lex.Token == js_lexer.TTemplateTail
		p.next()
		parts = append(parts, js_ast.TemplatePart{Value: value, TailCooked: cooked, TailRaw: raw, TailSpan: tailSpan})
		if isTail {
			break
		}
	}
	return js_ast.Expr{Data: &js_ast.ETemplate{TagOrNil: tagOrNil, HeadCooked: headCooked, HeadRaw: headRaw, HeadSpan: headSpan, Parts: parts},
		Span: p.spanFrom(start)}
}

func ast_span(start, end uint32) js_ast.Span { return js_ast.Span{Start: start, End: end} }

func identArg(name string, start, end uint32) js_ast.Arg {
	return js_ast.Arg{Binding: js_ast.Binding{Data: &js_ast.BIdentifier{}, Span: ast_span(start, end)}}
}
