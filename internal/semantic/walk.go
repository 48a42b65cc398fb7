package semantic

import (
	"github.com/oxc-go/oxc/internal/ast"
	"github.com/oxc-go/oxc/internal/js_ast"
)

// buildStmt is the dedicated recursive-descent entry point for statements.
func (b *Builder) buildStmt(stmt js_ast.Stmt) {
	switch s := stmt.Data.(type) {
	case *js_ast.SBlock:
		id := b.pushScope(ScopeKindBlock, 0)
		for i := range s.Stmts {
			b.buildStmt(s.Stmts[i])
		}
		b.popScope(id)

	case *js_ast.SDirective:
		if s.Value == "use strict" && len(b.strict) > 0 {
			b.strict[len(b.strict)-1] = true
			b.scopes.Get(b.current).Flags |= ScopeFlagStrict
		}

	case *js_ast.SEmpty, *js_ast.SDebugger, *js_ast.SComment:
		// no semantic content

	case *js_ast.SExportClause:
		for i := range s.Items {
			item := &s.Items[i]
			b.reference(item.OriginalName, item.Name.Span, ReferenceFlagRead, &item.Name.Ref)
		}

	case *js_ast.SExportFrom:
		// Re-exported names are bindings of the other module, not this scope.

	case *js_ast.SExportDefault:
		b.buildStmt(s.Value)

	case *js_ast.SExportStar:
		// No local binding introduced beyond the (already-declared) namespace ref.

	case *js_ast.SExportEquals:
		b.buildExpr(s.Value)

	case *js_ast.SExpr:
		b.buildExpr(s.Value)

	case *js_ast.STSEnum:
		flags := SymbolFlagTSEnum
		if s.IsExport {
			flags |= SymbolFlagExport
		}
		b.declareNodeRef(&s.Name, flags)
		id := b.pushScope(ScopeKindModule, 0)
		for i := range s.Values {
			v := &s.Values[i]
			v.Ref = b.declare(v.Name, v.Span, SymbolFlagConst)
		}
		for i := range s.Values {
			if s.Values[i].ValueOrNil.Data != nil {
				b.buildExpr(s.Values[i].ValueOrNil)
			}
		}
		b.popScope(id)

	case *js_ast.STSModule:
		flags := SymbolFlagTSNamespace
		if s.IsExport {
			flags |= SymbolFlagExport
		}
		b.declareNodeRef(&s.Name, flags)
		id := b.pushScope(ScopeKindModule, 0)
		for i := range s.Stmts {
			b.buildStmt(s.Stmts[i])
		}
		b.popScope(id)

	case *js_ast.STSInterface:
		flags := SymbolFlagTypeOnly
		if s.IsExport {
			flags |= SymbolFlagExport
		}
		b.declareNodeRef(&s.Name, flags)

	case *js_ast.STSTypeAlias:
		flags := SymbolFlagTypeOnly
		if s.IsExport {
			flags |= SymbolFlagExport
		}
		b.declareNodeRef(&s.Name, flags)

	case *js_ast.STSImportEquals:
		flags := SymbolFlagImport
		if s.IsExport {
			flags |= SymbolFlagExport
		}
		if s.IsTypeOnly {
			flags |= SymbolFlagTypeOnly
		}
		b.declareNodeRef(&s.Name, flags)
		if s.Target.Data != nil {
			b.buildExpr(s.Target)
		}

	case *js_ast.SFunction:
		flags := SymbolFlagFunction
		if s.IsExport {
			flags |= SymbolFlagExport
		}
		if s.Fn.Name != nil {
			b.declareNodeRef(s.Fn.Name, flags)
		}
		b.buildFn(&s.Fn)

	case *js_ast.SClass:
		flags := SymbolFlagClass
		if s.IsExport {
			flags |= SymbolFlagExport
		}
		if s.Class.Name != nil {
			b.declareNodeRef(s.Class.Name, flags)
		}
		b.buildClass(&s.Class)

	case *js_ast.SLabel:
		fn := b.currentFn()
		name := b.textOf(s.Name.Span)
		if fn != nil {
			if fn.labels[name] {
				b.reportDuplicateLabel(name, s.Name.Span)
			} else {
				fn.labels[name] = true
			}
		}
		b.buildStmt(s.Stmt)
		if fn != nil {
			delete(fn.labels, name)
		}

	case *js_ast.SIf:
		b.buildExpr(s.Test)
		b.buildStmt(s.Yes)
		if s.NoOrNil.Data != nil {
			b.buildStmt(s.NoOrNil)
		}

	case *js_ast.SFor:
		id := b.pushScope(ScopeKindBlock, 0)
		if s.InitOrNil.Data != nil {
			b.buildStmt(s.InitOrNil)
		}
		if s.TestOrNil.Data != nil {
			b.buildExpr(s.TestOrNil)
		}
		if s.UpdateOrNil.Data != nil {
			b.buildExpr(s.UpdateOrNil)
		}
		b.buildStmt(s.Body)
		b.popScope(id)

	case *js_ast.SForIn:
		id := b.pushScope(ScopeKindBlock, 0)
		b.buildStmt(s.Init)
		b.buildExpr(s.Value)
		b.buildStmt(s.Body)
		b.popScope(id)

	case *js_ast.SForOf:
		id := b.pushScope(ScopeKindBlock, 0)
		b.buildStmt(s.Init)
		b.buildExpr(s.Value)
		b.buildStmt(s.Body)
		b.popScope(id)

	case *js_ast.SDoWhile:
		b.buildStmt(s.Body)
		b.buildExpr(s.Test)

	case *js_ast.SWhile:
		b.buildExpr(s.Test)
		b.buildStmt(s.Body)

	case *js_ast.SWith:
		b.buildExpr(s.Value)
		id := b.pushScope(ScopeKindWith, 0)
		b.buildStmt(s.Body)
		b.popScope(id)

	case *js_ast.STry:
		blockId := b.pushScope(ScopeKindBlock, 0)
		for i := range s.Block.Stmts {
			b.buildStmt(s.Block.Stmts[i])
		}
		b.popScope(blockId)

		if s.Catch != nil {
			catchId := b.pushScope(ScopeKindCatchBinding, 0)
			if s.Catch.BindingOrNil.Data != nil {
				b.buildBinding(s.Catch.BindingOrNil, SymbolFlagCatchParam)
			}
			bodyId := b.pushScope(ScopeKindBlock, 0)
			for i := range s.Catch.Block.Stmts {
				b.buildStmt(s.Catch.Block.Stmts[i])
			}
			b.popScope(bodyId)
			b.popScope(catchId)
		}

		if s.Finally != nil {
			finallyId := b.pushScope(ScopeKindBlock, 0)
			for i := range s.Finally.Block.Stmts {
				b.buildStmt(s.Finally.Block.Stmts[i])
			}
			b.popScope(finallyId)
		}

	case *js_ast.SSwitch:
		b.buildExpr(s.Test)
		id := b.pushScope(ScopeKindBlock, 0)
		for ci := range s.Cases {
			c := &s.Cases[ci]
			if c.ValueOrNil.Data != nil {
				b.buildExpr(c.ValueOrNil)
			}
			for i := range c.Body {
				b.buildStmt(c.Body[i])
			}
		}
		b.popScope(id)

	case *js_ast.SImport:
		b.buildImport(s)

	case *js_ast.SReturn:
		fn := b.currentFn()
		if fn == nil || !fn.inFunction {
			b.reportReturnOutsideFunction(stmt.Span)
		}
		if s.ValueOrNil.Data != nil {
			b.buildExpr(s.ValueOrNil)
		}

	case *js_ast.SThrow:
		b.buildExpr(s.Value)

	case *js_ast.SLocal:
		flags := localFlags(s.Kind)
		if s.IsExport {
			flags |= SymbolFlagExport
		}
		for i := range s.Decls {
			decl := &s.Decls[i]
			b.buildBinding(decl.Binding, flags)
			if decl.ValueOrNil.Data != nil {
				b.buildExpr(decl.ValueOrNil)
			}
		}

	case *js_ast.SBreak:
		// The label, if any, is not checked against the enclosing labels
		// here or in the parser.

	case *js_ast.SContinue:
		// Same as SBreak.
	}
}

func localFlags(kind js_ast.LocalKind) SymbolFlags {
	switch kind {
	case js_ast.LocalVar:
		return SymbolFlagVar
	case js_ast.LocalConst, js_ast.LocalAwaitUsing:
		return SymbolFlagConst
	default: // LocalLet, LocalUsing
		return SymbolFlagLet
	}
}

func (b *Builder) buildImport(s *js_ast.SImport) {
	if s.DefaultName != nil {
		b.declareNodeRef(s.DefaultName, SymbolFlagImport)
	}
	if s.StarNameSpan != nil {
		name := b.textOf(*s.StarNameSpan)
		s.NamespaceRef = b.declare(name, *s.StarNameSpan, SymbolFlagImport)
	}
	if s.Items != nil {
		for i := range *s.Items {
			item := &(*s.Items)[i]
			flags := SymbolFlagImport
			if s.IsTypeOnly || item.IsTypeOnly {
				flags |= SymbolFlagTypeOnly
			}
			item.Name.Ref = b.declare(item.Alias, item.AliasSpan, flags)
		}
	}
}

// declareNodeRef declares the symbol named by a NodeRef's span and writes
// the resulting id back into Ref.
func (b *Builder) declareNodeRef(n *js_ast.NodeRef, flags SymbolFlags) {
	name := b.textOf(n.Span)
	n.Ref = b.declare(name, n.Span, flags)
}

func (b *Builder) textOf(span ast.Span) string {
	if int(span.End) > len(b.source.Contents) || span.Start > span.End {
		return ""
	}
	return b.source.Contents[span.Start:span.End]
}
