package semantic

import (
	"sort"

	"github.com/oxc-go/oxc/internal/ast"
	"github.com/oxc-go/oxc/internal/js_ast"
)

// JSDocEntry pairs a leading "/** ... */" comment with the declaration span
// it was attached to.
type JSDocEntry struct {
	Text     string
	Span     ast.Span // the comment's own span
	DeclSpan ast.Span
}

// JSDocIndex maps a declaration's span start to its leading doc comment, if
// any. Only multi-line comments starting with an extra "*" (i.e. "/**", not
// a plain "/*") count as doc comments; everything else is skipped.
type JSDocIndex struct {
	byDeclStart map[uint32]JSDocEntry
}

// For looks up the doc comment attached to a declaration by its span.
func (idx *JSDocIndex) For(declSpan ast.Span) (JSDocEntry, bool) {
	e, ok := idx.byDeclStart[declSpan.Start]
	return e, ok
}

// buildJSDocIndex attaches each doc comment to the nearest declaration whose
// span starts at or after the comment ends. declSpans may be in any order;
// a sorted copy is used.
func buildJSDocIndex(comments []js_ast.Comment, declSpans []ast.Span) *JSDocIndex {
	idx := &JSDocIndex{byDeclStart: make(map[uint32]JSDocEntry)}

	sorted := append([]ast.Span(nil), declSpans...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	pos := 0
	for _, c := range comments {
		if !isDocComment(c) {
			continue
		}
		for pos < len(sorted) && sorted[pos].Start < c.Span.End {
			pos++
		}
		if pos >= len(sorted) {
			break
		}
		decl := sorted[pos]
		if _, exists := idx.byDeclStart[decl.Start]; !exists {
			idx.byDeclStart[decl.Start] = JSDocEntry{Text: c.Text, Span: c.Span, DeclSpan: decl}
		}
	}
	return idx
}

func isDocComment(c js_ast.Comment) bool {
	return c.IsMultiLine && len(c.Text) > 0 && c.Text[0] == '*'
}
