package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

// parseBinding parses one binding target: an identifier, or an array/object
// destructuring pattern. The semantic builder fills in Ref for BIdentifier
// leaves during scope construction; the parser only records the span (the
// identifier's text is recovered from the source when needed).
func (p *parser) parseBinding() js_ast.Binding {
	start := p.lex.Start()
	switch p.lex.Token {
	case js_lexer.TOpenBracket:
		return p.parseArrayBinding(start)
	case js_lexer.TOpenBrace:
		return p.parseObjectBinding(start)
	default:
		if !p.lex.IsIdentifierOrKeyword() {
			p.unexpected()
		}
		p.next()
		return js_ast.Binding{Data: &js_ast.BIdentifier{}, Span: p.spanFrom(start)}
	}
}

func (p *parser) parseArrayBinding(start uint32) js_ast.Binding {
	p.next()
	var items []js_ast.ArrayBinding
	isSingleLine := true
	for !p.at(js_lexer.TCloseBracket) {
		if p.lex.HasNewlineBefore {
			isSingleLine = false
		}
		if p.at(js_lexer.TComma) {
			items = append(items, js_ast.ArrayBinding{Binding: js_ast.Binding{Data: &js_ast.BMissing{}}})
			p.next()
			continue
		}
		itemStart := p.lex.Start()
		isSpread := p.eat(js_lexer.TDotDotDot)
		binding := p.parseBinding()
		var defaultValue js_ast.Expr
		if !isSpread && p.eat(js_lexer.TEquals) {
			defaultValue = p.parseExpr(js_ast.LComma)
		}
		items = append(items, js_ast.ArrayBinding{Binding: binding, DefaultValueOrNil: defaultValue, IsSpread: isSpread})
		_ = itemStart
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	p.expect(js_lexer.TCloseBracket)
	return js_ast.Binding{Data: &js_ast.BArray{Items: items, IsSingleLine: isSingleLine}, Span: p.spanFrom(start)}
}

func (p *parser) parseObjectBinding(start uint32) js_ast.Binding {
	p.next()
	var props []js_ast.PropertyBinding
	isSingleLine := true
	for !p.at(js_lexer.TCloseBrace) {
		if p.lex.HasNewlineBefore {
			isSingleLine = false
		}
		if p.eat(js_lexer.TDotDotDot) {
			binding := p.parseBinding()
			props = append(props, js_ast.PropertyBinding{Value: binding, IsSpread: true})
			if !p.eat(js_lexer.TComma) {
				break
			}
			continue
		}

		key, isComputed := p.parsePropertyKey()
		var value js_ast.Binding
		if p.eat(js_lexer.TColon) {
			value = p.parseBinding()
		} else {
			// Shorthand "{ x }": value binding shares the key's span.
			value = js_ast.Binding{Data: &js_ast.BIdentifier{}, Span: key.Span}
		}
		var defaultValue js_ast.Expr
		if p.eat(js_lexer.TEquals) {
			defaultValue = p.parseExpr(js_ast.LComma)
		}
		props = append(props, js_ast.PropertyBinding{Key: key, Value: value, DefaultValueOrNil: defaultValue, IsComputed: isComputed})
		if !p.eat(js_lexer.TComma) {
			break
		}
	}
	p.expect(js_lexer.TCloseBrace)
	return js_ast.Binding{Data: &js_ast.BObject{Properties: props, IsSingleLine: isSingleLine}, Span: p.spanFrom(start)}
}

// convertExprToBinding converts a previously-parsed expression into a
// binding pattern. No parse function calls it: the left side of a
// destructuring assignment such as "[a, b] = x" stays an array/object
// literal expression in the tree.
func (p *parser) convertExprToBinding(expr js_ast.Expr) js_ast.Binding {
	switch e := expr.Data.(type) {
	case *js_ast.EIdentifier:
		return js_ast.Binding{Data: &js_ast.BIdentifier{}, Span: expr.Span}
	case *js_ast.EArray:
		items := make([]js_ast.ArrayBinding, 0, len(e.Items))
		for _, item := range e.Items {
			if _, ok := item.Data.(*js_ast.EMissing); ok {
				items = append(items, js_ast.ArrayBinding{Binding: js_ast.Binding{Data: &js_ast.BMissing{}}})
				continue
			}
			if spread, ok := item.Data.(*js_ast.ESpread); ok {
				items = append(items, js_ast.ArrayBinding{Binding: p.convertExprToBinding(spread.Value), IsSpread: true})
				continue
			}
			if assign, ok := item.Data.(*js_ast.EBinary); ok && assign.Op == js_ast.BinOpAssign {
				items = append(items, js_ast.ArrayBinding{Binding: p.convertExprToBinding(assign.Left), DefaultValueOrNil: assign.Right})
				continue
			}
			items = append(items, js_ast.ArrayBinding{Binding: p.convertExprToBinding(item)})
		}
		return js_ast.Binding{Data: &js_ast.BArray{Items: items, IsSingleLine: e.IsSingleLine}, Span: expr.Span}
	case *js_ast.EObject:
		props := make([]js_ast.PropertyBinding, 0, len(e.Properties))
		for _, prop := range e.Properties {
			if prop.Kind == js_ast.PropertySpread {
				props = append(props, js_ast.PropertyBinding{Value: p.convertExprToBinding(prop.ValueOrNil), IsSpread: true})
				continue
			}
			value := prop.ValueOrNil
			var def js_ast.Expr
			if assign, ok := value.Data.(*js_ast.EBinary); ok && assign.Op == js_ast.BinOpAssign {
				value = assign.Left
				def = assign.Right
			} else if prop.InitializerOrNil.Data != nil {
				def = prop.InitializerOrNil
			}
			props = append(props, js_ast.PropertyBinding{Key: prop.Key, Value: p.convertExprToBinding(value),
				DefaultValueOrNil: def, IsComputed: prop.IsComputed})
		}
		return js_ast.Binding{Data: &js_ast.BObject{Properties: props, IsSingleLine: e.IsSingleLine}, Span: expr.Span}
	default:
		p.log.AddError(&p.source, expr.Span.ToLoc(), "Invalid destructuring assignment target")
		panic(js_lexer.Panic{})
	}
}
