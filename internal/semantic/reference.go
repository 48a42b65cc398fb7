package semantic

import "github.com/oxc-go/oxc/internal/ast"

// ReferenceFlags records how an identifier is used at its use site.
type ReferenceFlags uint8

const (
	ReferenceFlagRead ReferenceFlags = 1 << iota
	ReferenceFlagWrite
	ReferenceFlagTypeOnly
)

func (f ReferenceFlags) Has(flag ReferenceFlags) bool { return f&flag != 0 }

// Reference is one entry of the reference table: a use site and, once
// resolution completes, the symbol it binds to. ResolvedSymbol stays
// ast.InvalidSymbolId for a reference that escalates all the way to the
// root scope unbound, i.e. an ambient global.
type Reference struct {
	Name           string
	Span           ast.Span
	Flags          ReferenceFlags
	ResolvedSymbol ast.SymbolId
}

// IsResolved reports whether this reference found a declaring symbol
// anywhere in the file.
func (r Reference) IsResolved() bool { return r.ResolvedSymbol.IsValid() }

// ReferenceTable is the dense, stable-ID array of every identifier
// reference in a file.
type ReferenceTable struct {
	references []Reference
}

func newReferenceTable() *ReferenceTable { return &ReferenceTable{} }

func (t *ReferenceTable) add(ref Reference) ast.ReferenceId {
	id := ast.MakeReferenceId(uint32(len(t.references)))
	t.references = append(t.references, ref)
	return id
}

// Get returns the reference record for id.
func (t *ReferenceTable) Get(id ast.ReferenceId) *Reference { return &t.references[id.GetIndex()] }

// Len returns the number of references.
func (t *ReferenceTable) Len() int { return len(t.references) }
