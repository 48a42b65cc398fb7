package semantic

import "testing"

// TestUnionEqualitySameLengthRegression pins the fix for a same-length-union
// structural-equality check that used to report every equal-length union
// pair as unequal regardless of their member types. Two unions built from
// identical operands, in the same order, must compare equal.
func TestUnionEqualitySameLengthRegression(t *testing.T) {
	str := Type{Kind: TypeKindObject, ShapeId: "String"}
	undef := Type{Kind: TypeKindPrimitive}

	a := Type{Kind: TypeKindUnion, Operands: []Type{str, undef}}
	b := Type{Kind: TypeKindUnion, Operands: []Type{str, undef}}
	if !typeEquals(a, b) {
		t.Fatalf("expected two same-length unions with identical operands to be structurally equal")
	}

	num := Type{Kind: TypeKindObject, ShapeId: "Number"}
	c := Type{Kind: TypeKindUnion, Operands: []Type{str, num}}
	if typeEquals(a, c) {
		t.Fatalf("expected unions with differing operands at the same position to be unequal")
	}
}

func TestUnionEqualityDifferentLength(t *testing.T) {
	str := Type{Kind: TypeKindObject, ShapeId: "String"}
	undef := Type{Kind: TypeKindPrimitive}
	a := Type{Kind: TypeKindUnion, Operands: []Type{str}}
	b := Type{Kind: TypeKindUnion, Operands: []Type{str, undef}}
	if typeEquals(a, b) {
		t.Fatalf("expected unions of different lengths to be unequal")
	}
}
