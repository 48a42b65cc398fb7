package js_parser

import (
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_lexer"
)

// parseJSXElementOrFragment parses "<Tag ...>...</Tag>" or "<>...</>". The
// opening "<" token is current but not yet consumed.
//
// It leaves its own final ">" current and unconsumed on return, the same
// way it received its opening "<": what lexing mode comes next (JSX text
// for a sibling in an enclosing children list, or ordinary tokenization for
// an expression context) depends on the caller, not on this function, so
// the choice of which "next" to call is left to the caller.
func (p *parser) parseJSXElementOrFragment(start uint32) js_ast.Expr {
	p.lastEnd = p.lex.End()
	p.lex.NextInsideJSXElement() // consume "<"; next is the tag name or ">"

	if p.at(js_lexer.TGreaterThan) {
		p.enterJSXText(js_lexer.TGreaterThan)
		children := p.parseJSXChildren()
		if !p.at(js_lexer.TLessThanSlash) {
			p.unexpected()
		}
		p.nextJSXElement() // consume "</"; next is the fragment's closing ">"
		if !p.at(js_lexer.TGreaterThan) {
			p.unexpected()
		}
		return js_ast.Expr{Data: &js_ast.EJSXFragment{Children: children}, Span: ast_span(start, p.lex.End())}
	}

	tagName, tagSpan := p.parseJSXTagName()
	attrs := p.parseJSXAttributes()

	if p.at(js_lexer.TSlash) {
		p.nextJSXElement() // consume "/"; next is the closing ">"
		if !p.at(js_lexer.TGreaterThan) {
			p.unexpected()
		}
		return js_ast.Expr{Data: &js_ast.EJSXElement{TagName: tagName, TagSpan: tagSpan, Attributes: attrs, IsSelfClosing: true},
			Span: ast_span(start, p.lex.End())}
	}

	p.enterJSXText(js_lexer.TGreaterThan)
	children := p.parseJSXChildren()
	if !p.at(js_lexer.TLessThanSlash) {
		p.unexpected()
	}
	closeStart := p.lex.Start()
	p.nextJSXElement() // consume "</"; next is the closing tag's name or ">"
	if len(tagName) > 0 {
		p.parseJSXTagName()
	}
	if !p.at(js_lexer.TGreaterThan) {
		p.unexpected()
	}
	return js_ast.Expr{Data: &js_ast.EJSXElement{TagName: tagName, TagSpan: tagSpan, Attributes: attrs, Children: children,
		CloseTagSpan: ast_span(closeStart, p.lex.End())}, Span: ast_span(start, p.lex.End())}
}

// enterJSXText verifies the current token and switches the lexer into
// JSX-text-scanning mode in one step, so that whatever follows a ">" or a
// child expression's "}" is read as raw JSX text rather than re-tokenized
// under ordinary JS lexing rules.
func (p *parser) enterJSXText(kind js_lexer.T) {
	if p.lex.Token != kind {
		p.unexpected()
	}
	p.lastEnd = p.lex.End()
	p.lex.NextJSXText()
}

func (p *parser) parseJSXTagName() ([]string, js_ast.Span) {
	start := p.lex.Start()
	segs := []string{p.lex.Identifier}
	p.nextJSXElement()
	for p.at(js_lexer.TDot) {
		p.lex.NextInsideJSXElement()
		segs = append(segs, p.lex.Identifier)
		p.nextJSXElement()
	}
	return segs, ast_span(start, p.lastEnd)
}

// nextJSXElement advances while staying in "inside a JSX element" lexing
// mode (tag/attribute names may contain "-"), recording lastEnd the same
// way the ordinary next() does.
func (p *parser) nextJSXElement() {
	p.lastEnd = p.lex.End()
	p.lex.NextInsideJSXElement()
}

func (p *parser) parseJSXAttributes() []js_ast.JSXAttribute {
	var attrs []js_ast.JSXAttribute
	for !p.at(js_lexer.TSlash) && !p.at(js_lexer.TGreaterThan) && !p.at(js_lexer.TEndOfFile) {
		if p.eat(js_lexer.TOpenBrace) {
			p.expect(js_lexer.TDotDotDot)
			value := p.parseExpr(js_ast.LComma)
			p.expect(js_lexer.TCloseBrace)
			attrs = append(attrs, js_ast.JSXAttribute{SpreadOrNil: value})
			p.nextJSXElement()
			continue
		}

		nameStart := p.lex.Start()
		name := p.lex.Identifier
		p.nextJSXElement()
		for p.at(js_lexer.TColon) || p.at(js_lexer.TMinus) {
			sep := "-"
			if p.at(js_lexer.TColon) {
				sep = ":"
			}
			p.lex.NextInsideJSXElement()
			name = name + sep + p.lex.Identifier
			p.nextJSXElement()
		}
		nameSpan := ast_span(nameStart, p.lastEnd)

		var value js_ast.Expr
		if p.eat(js_lexer.TEquals) {
			if p.at(js_lexer.TStringLiteral) {
				s := p.lex.Identifier
				valStart := p.lex.Start()
				p.next()
				value = js_ast.Expr{Data: &js_ast.EString{Value: s}, Span: p.spanFrom(valStart)}
			} else {
				p.expect(js_lexer.TOpenBrace)
				value = p.parseExpr(js_ast.LComma)
				p.expect(js_lexer.TCloseBrace)
			}
			p.nextJSXElement()
		}
		attrs = append(attrs, js_ast.JSXAttribute{Name: name, NameSpan: nameSpan, ValueOrNil: value})
	}
	return attrs
}

// parseJSXChildren parses the text/element/expression children between an
// opening tag's ">" and its matching close tag's "</". On entry the current
// token must already be a JSX-text-mode token (the caller switches lexing
// modes via enterJSXText before calling this); it leaves "</" current on
// return.
func (p *parser) parseJSXChildren() []js_ast.JSXChild {
	var children []js_ast.JSXChild
	for {
		if text := p.lex.Identifier; text != "" {
			children = append(children, js_ast.JSXChild{Data: &js_ast.JSXText{Value: text}, Span: ast_span(p.lex.Start(), p.lex.End())})
		}
		p.next() // read the "<", "{", or EOF that stopped the JSX text scan
		switch p.lex.Token {
		case js_lexer.TLessThanSlash:
			return children
		case js_lexer.TLessThan:
			childStart := p.lastEnd
			child := p.parseJSXElementOrFragment(childStart)
			children = append(children, js_ast.JSXChild{Data: &js_ast.JSXElementChild{Value: child}, Span: child.Span})
			p.enterJSXText(js_lexer.TGreaterThan)
		case js_lexer.TOpenBrace:
			exprStart := p.lastEnd
			p.next()
			if p.at(js_lexer.TCloseBrace) {
				children = append(children, js_ast.JSXChild{Data: &js_ast.JSXExprChild{}, Span: p.spanFrom(exprStart)})
			} else {
				value := p.parseExpr(js_ast.LComma)
				children = append(children, js_ast.JSXChild{Data: &js_ast.JSXExprChild{ValueOrNil: value}, Span: p.spanFrom(exprStart)})
				if !p.at(js_lexer.TCloseBrace) {
					p.unexpected()
				}
			}
			p.enterJSXText(js_lexer.TCloseBrace)
		default:
			p.unexpected()
		}
	}
}
