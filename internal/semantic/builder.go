// Package semantic turns a parsed Program into scope/symbol/reference
// tables, a module record, a JSDoc index, and (per function) a simplified
// control-flow graph, in one linear pass over the AST. It does not change the
// tree's shape; it assigns the dense symbol ids itself and writes them into
// the Ref fields of bindings and resolved references.
package semantic

import (
	"github.com/oxc-go/oxc/internal/ast"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/logger"
	"github.com/oxc-go/oxc/internal/module_record"
)

// Semantic is the complete output of one Build call.
type Semantic struct {
	Scopes     *ScopeTable
	Symbols    *SymbolTable
	References *ReferenceTable
	Module     *module_record.Record
	JSDoc      *JSDocIndex
	CFGs       map[ast.SymbolId]*ControlFlowGraph // keyed by the function's own name symbol, when it has one
}

// fnContext tracks the nearest enclosing function so return/await/yield and
// label-redeclaration checks don't need to re-walk ancestors.
type fnContext struct {
	isAsync     bool
	isGenerator bool
	inFunction  bool
	labels      map[string]bool
}

// Builder drives the single pass. Its state is the scope stack (as a current
// scope id, since the ScopeTable itself holds parent links), the table being
// filled in, and the small amount of context a recursive-descent walker
// needs that a generic visitor couldn't carry without extra bookkeeping.
type Builder struct {
	log    logger.Log
	source logger.Source

	scopes     *ScopeTable
	symbols    *SymbolTable
	references *ReferenceTable

	current ast.ScopeId
	strict  []bool // one entry per active scope, for nested strict-mode propagation

	fnStack []*fnContext

	declSpans []ast.Span
	comments  []js_ast.Comment

	cfgs map[ast.SymbolId]*ControlFlowGraph

	// refTargets parallels the reference table: the AST slot (an EIdentifier,
	// EPrivateIdentifier, or ClauseItem's Ref field) that should be patched
	// with the resolved symbol once resolution completes. Resolution is
	// deferred to scope-pop time, so the Ref can't be written at the
	// reference's own visit time the way a symbol's Ref can be at declare
	// time.
	refTargets []*js_ast.Ref
}

// Build runs the semantic pass over program and returns the completed
// tables. log/source follow the same convention internal/js_parser.Parse
// uses for error reporting.
func Build(log logger.Log, source logger.Source, program *js_ast.Program) *Semantic {
	b := &Builder{
		log:        log,
		source:     source,
		scopes:     newScopeTable(),
		symbols:    newSymbolTable(),
		references: newReferenceTable(),
		comments:   program.Comments,
		cfgs:       make(map[ast.SymbolId]*ControlFlowGraph),
	}

	topKind := ScopeKindModule
	var topFlags ScopeFlags
	if program.SourceType.IsModule || program.HasLexicalDeclarationInTopLevel {
		topFlags |= ScopeFlagStrict
	}
	top := b.pushScope(topKind, topFlags)
	b.fnStack = append(b.fnStack, &fnContext{inFunction: false, labels: make(map[string]bool)})

	for i := range program.Stmts {
		b.buildStmt(program.Stmts[i])
	}

	b.popScope(top)
	b.fnStack = b.fnStack[:len(b.fnStack)-1]

	nameOf := func(ref js_ast.Ref) string {
		if !ref.IsValid() {
			return ""
		}
		return b.symbols.Get(ref).Name
	}

	return &Semantic{
		Scopes:     b.scopes,
		Symbols:    b.symbols,
		References: b.references,
		Module:     module_record.Build(program, nameOf),
		JSDoc:      buildJSDocIndex(b.comments, b.declSpans),
		CFGs:       b.cfgs,
	}
}

func (b *Builder) pushScope(kind ScopeKind, flags ScopeFlags) ast.ScopeId {
	parent := b.current
	if len(b.strict) == 0 {
		parent = ast.RootScopeId
	}
	if b.isStrict() {
		flags |= ScopeFlagStrict
	}
	id := b.scopes.push(parent, kind, flags)
	b.current = id
	b.strict = append(b.strict, flags.Has(ScopeFlagStrict))
	return id
}

func (b *Builder) isStrict() bool {
	if len(b.strict) == 0 {
		return false
	}
	return b.strict[len(b.strict)-1]
}

func (b *Builder) currentFn() *fnContext {
	if len(b.fnStack) == 0 {
		return nil
	}
	return b.fnStack[len(b.fnStack)-1]
}

// popScope resolves every reference this scope collected (its own plus
// anything bubbled up from a child) against its own, by-now-complete
// bindings, then bubbles whatever's left to the parent's unresolved list.
// Hoisted (var/function) declarations never reach this point still
// unresolved in the wrong scope, because declare() puts them directly in
// their target scope: this step only ever needs to look at one level.
func (b *Builder) popScope(id ast.ScopeId) {
	scope := b.scopes.Get(id)
	b.resolveAgainstOwn(scope, false)
	b.resolveAgainstOwn(scope, true)

	b.strict = b.strict[:len(b.strict)-1]
	b.current = scope.Parent
}

func (b *Builder) resolveAgainstOwn(scope *Scope, typeOnly bool) {
	unresolvedPtr := scope.unresolvedFor(typeOnly)
	bindings := scope.bindingsFor(typeOnly)

	var stillUnresolved []ast.ReferenceId
	for _, refId := range *unresolvedPtr {
		ref := b.references.Get(refId)
		if symId, ok := bindings.get(ref.Name); ok {
			ref.ResolvedSymbol = symId
			sym := b.symbols.Get(symId)
			sym.References = append(sym.References, refId)
			if target := b.refTargets[refId.GetIndex()]; target != nil {
				*target = symId
			}
			continue
		}
		stillUnresolved = append(stillUnresolved, refId)
	}
	*unresolvedPtr = nil

	// Every scope this builder ever pops has a valid parent: the program's
	// own top-level scope's parent is the root sentinel (ast.RootScopeId),
	// which is where GlobalUnresolved reads from. The sentinel itself is
	// never popped.
	parent := b.scopes.Get(scope.Parent)
	parentUnresolved := parent.unresolvedFor(typeOnly)
	*parentUnresolved = append(*parentUnresolved, stillUnresolved...)
}

// declare inserts a binding. Hoisted kinds (var/function) climb to the
// nearest scope that StopsHoisting(); everything else lands in the current
// scope. A same-scope collision between two block-scoped declarations, or
// between a block-scoped and a hoisted declaration, is an error; var/var,
// var/function, and function/function collisions silently keep the symbol
// declared first and merge the new flags into it.
func (b *Builder) declare(name string, span ast.Span, flags SymbolFlags) ast.SymbolId {
	target := b.current
	if flags.IsHoisted() {
		target = b.targetForHoist()
	}
	scope := b.scopes.Get(target)
	bindings := scope.bindingsFor(flags.Has(SymbolFlagTypeOnly))

	if existingId, ok := bindings.get(name); ok {
		existing := b.symbols.Get(existingId)
		if flags.IsHoisted() && existing.Flags.IsHoisted() {
			existing.Flags |= flags
			b.declSpans = append(b.declSpans, span)
			return existingId
		}
		b.reportDuplicateDeclaration(name, span)
		b.declSpans = append(b.declSpans, span)
		return existingId
	}

	id := b.symbols.add(Symbol{Name: name, DeclSpan: span, Flags: flags, ScopeId: target})
	bindings.set(name, id)
	b.declSpans = append(b.declSpans, span)
	return id
}

// targetForHoist walks up from the current scope to the nearest one that
// stops hoisting (function body/args, module top level, TS namespace/enum,
// class static block).
func (b *Builder) targetForHoist() ast.ScopeId {
	id := b.current
	for {
		scope := b.scopes.Get(id)
		if scope.Kind.StopsHoisting() || !scope.Parent.IsValid() {
			return id
		}
		id = scope.Parent
	}
}

// reference records a use site against the current scope's unresolved list;
// resolution is deferred to that scope's own pop (see popScope), which is
// what lets a reference bind to a same-scope declaration that appears later
// in source order (function/var hoisting, mutual function recursion).
// target, if non-nil, is the AST slot to patch with the resolved SymbolId
// once (if ever) this reference resolves; it stays untouched (its parser-
// supplied zero value, invalid) for a reference that escalates to global.
func (b *Builder) reference(name string, span ast.Span, flags ReferenceFlags, target *js_ast.Ref) ast.ReferenceId {
	id := b.references.add(Reference{Name: name, Span: span, Flags: flags, ResolvedSymbol: ast.InvalidSymbolId})
	b.refTargets = append(b.refTargets, target)
	scope := b.scopes.Get(b.current)
	unresolvedPtr := scope.unresolvedFor(flags.Has(ReferenceFlagTypeOnly))
	*unresolvedPtr = append(*unresolvedPtr, id)
	return id
}
