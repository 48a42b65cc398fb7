// Package js_ast is the arena-backed, discriminated-union AST produced by
// internal/js_parser and consumed by internal/semantic, internal/traverse,
// and internal/linter.
//
// Every node is arena-allocated (see internal/arena) and carries an
// ast.Span. Cross-cutting relations (parent links, symbol<->reference) are
// dense ast.Index32 handles, never pointers between nodes, so the tree stays
// a strict tree: a node is referenced by at most one parent field, never
// shared.
//
// Polymorphic node families (Expr, Stmt, Binding, TSType) use a sum-type
// idiom: a concrete struct per variant, an unexported marker method binding
// it to a narrow interface, and a wrapper struct carrying the shared Span
// alongside the variant payload. This gives a flat discriminant with no
// vtable or embedding, and keeps node construction a plain struct literal.
package js_ast

import (
	"github.com/oxc-go/oxc/internal/ast"
)

type Span = ast.Span

// Ref identifies a symbol. It is resolved by internal/semantic; the parser
// allocates a placeholder Ref for every binding and reference it sees and
// leaves resolution to the semantic builder's own pass.
type Ref = ast.SymbolId

// NodeRef pairs a Span with a Ref, used wherever a named declaration needs
// both its own location and the symbol it declares (function/class name,
// labeled statement name, import/export local name).
type NodeRef struct {
	Span Span
	Ref  Ref
}

// Expr is a generic expression node: a Span plus one of the E* variants.
type Expr struct {
	Data E
	Span Span
}

// E is never called; it exists purely to encode the Expression sum type in
// Go's type system, matching every E* variant below.
type E interface{ isExpr() }

// Stmt is a generic statement node: a Span plus one of the S* variants.
type Stmt struct {
	Data S
	Span Span
}

type S interface{ isStmt() }

// Binding is a generic pattern node used for binding (declaration) targets:
// a Span plus one of the B* variants.
type Binding struct {
	Data B
	Span Span
}

type B interface{ isBinding() }

func (*BMissing) isBinding()    {}
func (*BIdentifier) isBinding() {}
func (*BArray) isBinding()      {}
func (*BObject) isBinding()     {}

// BMissing marks an elided array-pattern slot: "const [, b] = x".
type BMissing struct{}

type BIdentifier struct{ Ref Ref }

type ArrayBinding struct {
	Binding           Binding
	DefaultValueOrNil Expr
	IsSpread          bool
}

type BArray struct {
	Items        []ArrayBinding
	IsSingleLine bool
}

type PropertyBinding struct {
	Key               Expr
	Value             Binding
	DefaultValueOrNil Expr
	IsComputed        bool
	IsSpread          bool
	PreferQuotedKey   bool
}

type BObject struct {
	Properties   []PropertyBinding
	IsSingleLine bool
}

// PropertyKind distinguishes object/class member shapes that share the
// Property struct below.
type PropertyKind uint8

const (
	PropertyNormal PropertyKind = iota
	PropertyGet
	PropertySet
	PropertySpread
	PropertyClassStaticBlock
	PropertyAutoAccessor // TS "accessor" class fields
)

type ClassStaticBlock struct {
	Block SBlock
	Span  Span
}

// Property is shared between object literals (EObject) and class bodies
// (Class): both are "a sequence of keyed members with optional value, with
// method/computed/static modifiers".
type Property struct {
	ClassStaticBlock *ClassStaticBlock

	Key Expr

	// Omitted for class fields with no initializer.
	ValueOrNil Expr

	// Default value in destructuring patterns, or class field initializer.
	InitializerOrNil Expr

	TSDecorators []Expr

	Kind            PropertyKind
	IsComputed      bool
	IsMethod        bool
	IsStatic        bool
	IsDeclare       bool // TS "declare" modifier
	TSAccessibility TSAccessibility
	TSReadonly      bool
	TSOptional      bool
	TSDefinite      bool // "!" definite assignment assertion
	WasShorthand    bool
	PreferQuotedKey bool
}

type Arg struct {
	Binding      Binding
	DefaultOrNil Expr
	TSDecorators []Expr
	TSType       *TSTypeAnnotation

	TSAccessibility   TSAccessibility
	TSReadonly        bool
	IsTSParameterProp bool // "constructor(public x: boolean) {}"
}

type Fn struct {
	Name         *NodeRef
	Args         []Arg
	Body         *FnBody // nil for overload signatures / ambient declarations
	ReturnType   *TSTypeAnnotation
	TypeParams   *TSTypeParamDecl
	ArgumentsRef Ref
	OpenParenSpan Span

	IsAsync     bool
	IsGenerator bool
	HasRestArg  bool
	IsDeclare   bool
}

type FnBody struct {
	Block SBlock
	Span  Span
}

type TSAccessibility uint8

const (
	AccessibilityNone TSAccessibility = iota
	AccessibilityPublic
	AccessibilityPrivate
	AccessibilityProtected
)

type Class struct {
	TSDecorators []Expr
	Name         *NodeRef
	TypeParams   *TSTypeParamDecl
	ExtendsOrNil Expr
	ExtendsTypeArgs []TSType
	Implements   []TSType
	Properties   []Property
	ClassSpan    Span
	BodySpan     Span
	IsAbstract   bool
}
