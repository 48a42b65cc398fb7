// Package ast holds the low-level plumbing shared by every AST and table in
// this module: spans, interned atoms, and the dense-index handle type used
// for every cross-cutting relation (parent links, symbol<->reference,
// scope<->binding) instead of pointers, so that the AST stays a strict tree.
package ast

import "github.com/oxc-go/oxc/internal/logger"

// Span is a half-open byte range into a Source's contents. It is the
// fundamental location type every AST node carries.
type Span struct {
	Start uint32
	End   uint32
}

// Len returns the span's length in bytes.
func (s Span) Len() uint32 { return s.End - s.Start }

// Contains reports whether child lies entirely within s, per the span
// containment invariant (every child span is a subrange of its parent's).
func (s Span) Contains(child Span) bool {
	return child.Start >= s.Start && child.End <= s.End
}

// Before reports whether s ends at or before other.Start, i.e. s is
// source-ordered ahead of other with no overlap.
func (s Span) Before(other Span) bool {
	return s.End <= other.Start
}

// Text slices src's contents to this span's bytes. It panics (debug builds
// of callers are expected to have validated bounds already) if the span is
// out of range.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

func (s Span) ToRange() logger.Range {
	return logger.Range{Loc: logger.Loc{Start: int32(s.Start)}, Len: int32(s.End - s.Start)}
}

func (s Span) ToLoc() logger.Loc {
	return logger.Loc{Start: int32(s.Start)}
}

// Atom is an interned-or-borrowed string slice tagged with the span it came
// from. Equality is by contents, not by span or provenance. Value is
// borrowed from the source text unless the token required escape decoding,
// in which case it was copied into the arena.
type Atom struct {
	Span  Span
	Value string
}

func (a Atom) Equal(b Atom) bool { return a.Value == b.Value }

// Index32 stores a 32-bit index where the zero value is an invalid index.
// This is the dense-handle type used for AstNodeId, ScopeId, SymbolId, and
// ReferenceId: cheaper and safer than a pointer, and it keeps the AST a
// strict tree instead of a pointer graph.
type Index32 struct {
	flippedBits uint32
}

// InvalidIndex32 is the zero value; IsValid reports false for it.
var InvalidIndex32 = Index32{}

func MakeIndex32(index uint32) Index32 {
	return Index32{flippedBits: ^index}
}

func (i Index32) IsValid() bool {
	return i.flippedBits != 0
}

func (i Index32) GetIndex() uint32 {
	return ^i.flippedBits
}

// AstNodeId, ScopeId, SymbolId, and ReferenceId are all dense Index32
// handles into their respective tables. They're distinct named types so the
// compiler catches accidental cross-wiring (passing a ScopeId where a
// SymbolId is expected).
type (
	AstNodeId   Index32
	ScopeId     Index32
	SymbolId    Index32
	ReferenceId Index32
)

var (
	InvalidAstNodeId   = AstNodeId(InvalidIndex32)
	InvalidScopeId     = ScopeId(InvalidIndex32)
	InvalidSymbolId    = SymbolId(InvalidIndex32)
	InvalidReferenceId = ReferenceId(InvalidIndex32)
)

func MakeAstNodeId(index uint32) AstNodeId     { return AstNodeId(MakeIndex32(index)) }
func MakeScopeId(index uint32) ScopeId         { return ScopeId(MakeIndex32(index)) }
func MakeSymbolId(index uint32) SymbolId       { return SymbolId(MakeIndex32(index)) }
func MakeReferenceId(index uint32) ReferenceId { return ReferenceId(MakeIndex32(index)) }

func (i AstNodeId) IsValid() bool   { return Index32(i).IsValid() }
func (i AstNodeId) GetIndex() uint32 { return Index32(i).GetIndex() }

func (i ScopeId) IsValid() bool   { return Index32(i).IsValid() }
func (i ScopeId) GetIndex() uint32 { return Index32(i).GetIndex() }

func (i SymbolId) IsValid() bool   { return Index32(i).IsValid() }
func (i SymbolId) GetIndex() uint32 { return Index32(i).GetIndex() }

func (i ReferenceId) IsValid() bool   { return Index32(i).IsValid() }
func (i ReferenceId) GetIndex() uint32 { return Index32(i).GetIndex() }

// RootScopeId is the reserved sentinel scope above the program scope; the
// program's own top-level scope is always its child.
var RootScopeId = MakeScopeId(0)
