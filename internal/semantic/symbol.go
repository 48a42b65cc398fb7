package semantic

import "github.com/oxc-go/oxc/internal/ast"

// SymbolFlags are independent bits, not an exclusive kind: a single binding
// can be both "const" and "export", or "function" and "hoisted" by virtue of
// being a sloppy-mode block-level function declaration.
type SymbolFlags uint32

const (
	SymbolFlagVar SymbolFlags = 1 << iota
	SymbolFlagLet
	SymbolFlagConst
	SymbolFlagFunction
	SymbolFlagClass
	SymbolFlagImport
	SymbolFlagExport
	SymbolFlagTypeOnly
	SymbolFlagCatchParam
	SymbolFlagParameter
	SymbolFlagLabel
	SymbolFlagTSEnum
	SymbolFlagTSNamespace
)

func (f SymbolFlags) Has(flag SymbolFlags) bool { return f&flag != 0 }

// IsHoisted reports whether a declaration with these flags hoists to the
// nearest enclosing function/script scope instead of staying block-scoped.
func (f SymbolFlags) IsHoisted() bool {
	return f.Has(SymbolFlagVar) || f.Has(SymbolFlagFunction)
}

// IsBlockScoped reports whether a declaration with these flags is confined
// to the block it's declared in.
func (f SymbolFlags) IsBlockScoped() bool {
	return f.Has(SymbolFlagLet) || f.Has(SymbolFlagConst) || f.Has(SymbolFlagClass)
}

// Symbol is one entry of the symbol table.
type Symbol struct {
	Name     string
	DeclSpan ast.Span
	Flags    SymbolFlags
	ScopeId  ast.ScopeId

	// References lists every ReferenceId that resolved to this symbol, in
	// the order resolution happened (not source order, since resolution is
	// deferred to scope-pop time).
	References []ast.ReferenceId
}

// SymbolTable is the dense, stable-ID array of every symbol in a file.
type SymbolTable struct {
	symbols []Symbol
}

func newSymbolTable() *SymbolTable { return &SymbolTable{} }

func (t *SymbolTable) add(sym Symbol) ast.SymbolId {
	id := ast.MakeSymbolId(uint32(len(t.symbols)))
	t.symbols = append(t.symbols, sym)
	return id
}

// Get returns the symbol record for id.
func (t *SymbolTable) Get(id ast.SymbolId) *Symbol { return &t.symbols[id.GetIndex()] }

// Len returns the number of symbols.
func (t *SymbolTable) Len() int { return len(t.symbols) }
