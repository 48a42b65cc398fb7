package semantic

import (
	"fmt"

	"github.com/oxc-go/oxc/internal/ast"
	"github.com/oxc-go/oxc/internal/logger"
)

// addError records a semantic error at span using the same Log.AddError
// convention the parser uses (a *Source plus a byte Loc).
func (b *Builder) addError(span ast.Span, text string) {
	b.log.AddError(&b.source, logger.Loc{Start: int32(span.Start)}, text)
}

func (b *Builder) addErrorf(span ast.Span, format string, args ...any) {
	b.addError(span, fmt.Sprintf(format, args...))
}

func (b *Builder) reportDuplicateDeclaration(name string, span ast.Span) {
	b.addErrorf(span, "the symbol %q has already been declared", name)
}

func (b *Builder) reportReturnOutsideFunction(span ast.Span) {
	b.addError(span, "a \"return\" statement can only be used inside a function")
}

func (b *Builder) reportAwaitDisallowed(span ast.Span) {
	b.addError(span, "\"await\" can only be used inside an async function, or at the top level of a module")
}

func (b *Builder) reportYieldDisallowed(span ast.Span) {
	b.addError(span, "\"yield\" can only be used inside a generator function")
}

func (b *Builder) reportDuplicateLabel(name string, span ast.Span) {
	b.addErrorf(span, "the label %q has already been declared in this function", name)
}

func (b *Builder) reportDuplicateStrictParam(name string, span ast.Span) {
	b.addErrorf(span, "duplicate parameter %q is not allowed in this context", name)
}
