package semantic

import "github.com/oxc-go/oxc/internal/ast"

// ScopeKind classifies what introduced a scope. The ordering matters: kinds
// at or after ScopeKindModule stop a hoisted var/function declaration from
// climbing any further, mirroring how scope boundaries work in real JS
// (function bodies, the top-level module scope, TS namespaces/enums, and
// class static blocks all introduce a fresh "var" target).
type ScopeKind uint8

const (
	ScopeKindBlock ScopeKind = iota
	ScopeKindWith
	ScopeKindLabel
	ScopeKindClassName
	ScopeKindClassBody
	ScopeKindCatchBinding

	// Kinds below this line stop hoisting.
	ScopeKindModule // program top level, TS namespace, or TS enum
	ScopeKindFunctionArgs
	ScopeKindFunctionBody
	ScopeKindClassStaticBlock
)

// StopsHoisting reports whether a var/function declaration made directly in
// a scope of this kind stays here instead of climbing to the parent.
func (k ScopeKind) StopsHoisting() bool { return k >= ScopeKindModule }

// ScopeFlags records scope-wide properties that several rules need without
// walking back to the declaring node.
type ScopeFlags uint16

const (
	ScopeFlagStrict ScopeFlags = 1 << iota
	ScopeFlagArrow
	ScopeFlagGenerator
	ScopeFlagAsync
)

func (f ScopeFlags) Has(flag ScopeFlags) bool { return f&flag != 0 }

// orderedBindings is an insertion-ordered name -> SymbolId map. Order is
// preserved because shadowing diagnostics and deterministic output both
// depend on declaration order, and a plain Go map has none.
type orderedBindings struct {
	names []string
	index map[string]ast.SymbolId
}

func newOrderedBindings() *orderedBindings {
	return &orderedBindings{index: make(map[string]ast.SymbolId)}
}

func (b *orderedBindings) get(name string) (ast.SymbolId, bool) {
	id, ok := b.index[name]
	return id, ok
}

func (b *orderedBindings) set(name string, id ast.SymbolId) {
	if _, ok := b.index[name]; !ok {
		b.names = append(b.names, name)
	}
	b.index[name] = id
}

// Names returns bindings in declaration order.
func (b *orderedBindings) Names() []string { return b.names }

// Scope is one entry of the scope table: a parent link, the kind/flags that
// describe it, and two independent binding namespaces (value and TS
// type-only) since a type alias and a value never collide by name.
type Scope struct {
	Parent ast.ScopeId
	Kind   ScopeKind
	Flags  ScopeFlags

	values *orderedBindings
	types  *orderedBindings

	// unresolved accumulates references seen in this scope (or bubbled up
	// from a child scope) that haven't found a binding yet. It's drained at
	// scope-pop time against this scope's own (by-then complete) bindings;
	// leftovers bubble to the parent. See Builder.popScope.
	unresolved     []ast.ReferenceId
	typeUnresolved []ast.ReferenceId
}

// ValueBindings returns the scope's value-namespace bindings as a map from
// name to SymbolId; map iteration order is unspecified (ValueNames gives
// declaration order).
func (s *Scope) ValueBindings() map[string]ast.SymbolId { return snapshot(s.values) }

// TypeBindings returns the scope's TS type-only namespace bindings as a map
// from name to SymbolId; map iteration order is unspecified (TypeNames gives
// declaration order).
func (s *Scope) TypeBindings() map[string]ast.SymbolId { return snapshot(s.types) }

// ValueNames returns value-namespace binding names in declaration order.
func (s *Scope) ValueNames() []string { return append([]string(nil), s.values.Names()...) }

// TypeNames returns TS type-only namespace binding names in declaration order.
func (s *Scope) TypeNames() []string { return append([]string(nil), s.types.Names()...) }

func snapshot(b *orderedBindings) map[string]ast.SymbolId {
	out := make(map[string]ast.SymbolId, len(b.names))
	for _, name := range b.names {
		out[name] = b.index[name]
	}
	return out
}

func (s *Scope) bindingsFor(typeOnly bool) *orderedBindings {
	if typeOnly {
		return s.types
	}
	return s.values
}

func (s *Scope) unresolvedFor(typeOnly bool) *[]ast.ReferenceId {
	if typeOnly {
		return &s.typeUnresolved
	}
	return &s.unresolved
}

// ScopeTable is the dense, stable-ID array of every scope in a file.
// ScopeId 0 is the reserved root sentinel above the program's own top-level
// scope (see ast.RootScopeId); any reference still unresolved when the
// program scope pops bubbles into the root's own unresolved list and is
// reported there as global.
type ScopeTable struct {
	scopes []Scope
}

func newScopeTable() *ScopeTable {
	t := &ScopeTable{}
	// Index 0 is ast.RootScopeId; give it an invalid parent of itself so
	// nothing ever tries to climb past it.
	t.scopes = append(t.scopes, Scope{
		Parent: ast.InvalidScopeId,
		Kind:   ScopeKindModule,
		values: newOrderedBindings(),
		types:  newOrderedBindings(),
	})
	return t
}

func (t *ScopeTable) push(parent ast.ScopeId, kind ScopeKind, flags ScopeFlags) ast.ScopeId {
	id := ast.MakeScopeId(uint32(len(t.scopes)))
	t.scopes = append(t.scopes, Scope{
		Parent: parent,
		Kind:   kind,
		Flags:  flags,
		values: newOrderedBindings(),
		types:  newOrderedBindings(),
	})
	return id
}

// Get returns the scope record for id. Panics on an invalid/out-of-range id
// since every id this package hands out came from this same table.
func (t *ScopeTable) Get(id ast.ScopeId) *Scope { return &t.scopes[id.GetIndex()] }

// Len returns the number of scopes, including the root sentinel.
func (t *ScopeTable) Len() int { return len(t.scopes) }

// GlobalUnresolved returns the references that were never resolved anywhere
// in the file — identifiers treated as ambient globals.
func (t *ScopeTable) GlobalUnresolved() []ast.ReferenceId {
	return append([]ast.ReferenceId(nil), t.scopes[ast.RootScopeId.GetIndex()].unresolved...)
}
