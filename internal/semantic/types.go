package semantic

// Type is a minimal structural type compared by typeEquals. Nothing in this
// package outside its tests constructs a Type or calls typeEquals, and no
// isolated-declarations elision check exists here. It is not a general type
// checker.
type Type struct {
	Kind TypeKind

	// Function
	ReturnType *Type
	ShapeId    string

	// Union (a TS union type, e.g. "T | undefined")
	Operands []Type

	// Var
	VarId uint32
}

type TypeKind uint8

const (
	TypeKindPrimitive TypeKind = iota
	TypeKindFunction
	TypeKindObject
	TypeKindUnion
	TypeKindVar
	TypeKindPoly
)

// typeEquals reports whether a and b are structurally equal. Union operands
// are compared pairwise by position: two unions of the same length are
// equal iff every operand pair is, so the same members in a different order
// compare unequal.
//
// An earlier version of this check special-cased the union/union arm to
// always return false once the operand counts matched, on the theory that
// two same-length unions should be compared member-by-member but weren't
// actually being compared before unconditionally failing. That left every
// same-length union pair reported as unequal no matter their contents,
// silently defeating any isolated-declarations elision that depended on
// recognizing "T | undefined equals T | undefined". Fixed below.
func typeEquals(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TypeKindPrimitive, TypeKindPoly:
		return true
	case TypeKindVar:
		return a.VarId == b.VarId
	case TypeKindFunction:
		if a.ShapeId != b.ShapeId {
			return false
		}
		if a.ReturnType == nil || b.ReturnType == nil {
			return a.ReturnType == b.ReturnType
		}
		return typeEquals(*a.ReturnType, *b.ReturnType)
	case TypeKindObject:
		return a.ShapeId == b.ShapeId
	case TypeKindUnion:
		if len(a.Operands) != len(b.Operands) {
			return false
		}
		for i := range a.Operands {
			if !typeEquals(a.Operands[i], b.Operands[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
