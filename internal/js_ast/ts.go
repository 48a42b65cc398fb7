package js_ast

// TSType is the TypeScript type-expression sum type: union, intersection,
// conditional, mapped, indexed access, tuple, rest, template-literal types,
// keyof/typeof/infer, "this" type, plus the ordinary reference/primitive
// forms. Every concrete TS* type below implements it.
type TSType struct {
	Data TSTypeData
	Span Span
}

type TSTypeData interface{ isTSType() }

func (*TSKeyword) isTSType()        {}
func (*TSTypeReference) isTSType()  {}
func (*TSArrayType) isTSType()      {}
func (*TSTupleType) isTSType()      {}
func (*TSUnionType) isTSType()      {}
func (*TSIntersectionType) isTSType() {}
func (*TSConditionalType) isTSType() {}
func (*TSMappedType) isTSType()     {}
func (*TSIndexedAccessType) isTSType() {}
func (*TSFunctionType) isTSType()   {}
func (*TSConstructorType) isTSType() {}
func (*TSTypeLiteral) isTSType()    {}
func (*TSLiteralType) isTSType()    {}
func (*TSTemplateLiteralType) isTSType() {}
func (*TSTypeOperator) isTSType()   {} // keyof / readonly / unique
func (*TSTypeQuery) isTSType()      {} // typeof X
func (*TSInferType) isTSType()      {}
func (*TSThisType) isTSType()       {}
func (*TSParenthesizedType) isTSType() {}
func (*TSRestType) isTSType()       {}
func (*TSOptionalType) isTSType()   {}
func (*TSImportType) isTSType()     {}

// TSKeywordKind enumerates the primitive/utility keyword types.
type TSKeywordKind uint8

const (
	TSKeywordAny TSKeywordKind = iota
	TSKeywordUnknown
	TSKeywordNever
	TSKeywordVoid
	TSKeywordUndefined
	TSKeywordNull
	TSKeywordObject
	TSKeywordString
	TSKeywordNumber
	TSKeywordBoolean
	TSKeywordBigInt
	TSKeywordSymbol
	TSKeywordIntrinsic
)

type TSKeyword struct{ Kind TSKeywordKind }

// TSTypeReference is a named type, possibly with generic arguments:
// "Foo", "Array<T>", "A.B.C<T>".
type TSTypeReference struct {
	Name     []string // dotted qualified name segments
	TypeArgs []TSType
}

type TSArrayType struct{ ElementType TSType }

type TSTupleElement struct {
	Type     TSType
	Label    string // named tuple member, e.g. "[first: string]"
	IsRest   bool
	Optional bool
}

type TSTupleType struct{ Elements []TSTupleElement }

type TSUnionType struct{ Types []TSType }
type TSIntersectionType struct{ Types []TSType }

// TSConditionalType is "Check extends Extends ? True : False", with optional
// "infer" bindings living inside Extends (see TSInferType).
type TSConditionalType struct {
	Check   TSType
	Extends TSType
	True    TSType
	False   TSType
}

// TSMappedType is "{ [K in Keys]: Value }" with optional +/-readonly and
// +/-optional modifiers and an optional "as" name remapping clause.
type TSMappedType struct {
	TypeParamName  string
	Constraint     TSType
	NameType       TSType // "as" clause, nil if absent
	Value          TSType
	ReadonlyModifier TSModifierOp
	OptionalModifier TSModifierOp
}

type TSModifierOp uint8

const (
	TSModifierNone TSModifierOp = iota
	TSModifierAdd
	TSModifierRemove
)

type TSIndexedAccessType struct {
	ObjectType TSType
	IndexType  TSType
}

type TSFunctionType struct {
	TypeParams *TSTypeParamDecl
	Params     []Arg
	ReturnType TSType
}

type TSConstructorType struct {
	TypeParams *TSTypeParamDecl
	Params     []Arg
	ReturnType TSType
	IsAbstract bool
}

// TSSignature is a member of an interface body or object type literal:
// property, method, call, construct, or index signature.
type TSSignature struct {
	Key          Expr
	IsComputed   bool
	Optional     bool
	Readonly     bool
	Type         TSType // property type, or TSFunctionType-shaped for methods
	Params       []Arg  // set for method/call/construct/index signatures
	TypeParams   *TSTypeParamDecl
	Kind         TSSignatureKind
}

type TSSignatureKind uint8

const (
	TSSigProperty TSSignatureKind = iota
	TSSigMethod
	TSSigCall
	TSSigConstruct
	TSSigIndex
	TSSigGet
	TSSigSet
)

type TSTypeLiteral struct{ Members []TSSignature }

// TSLiteralType is a literal used as a type: "type X = 'a' | 'b' | 1".
type TSLiteralType struct{ Value Expr }

type TSTemplateLiteralSpan struct {
	Cooked string
	Type   TSType
}

type TSTemplateLiteralType struct {
	Head  string
	Spans []TSTemplateLiteralSpan
}

type TSTypeOperatorKind uint8

const (
	TSTypeOperatorKeyof TSTypeOperatorKind = iota
	TSTypeOperatorUnique
	TSTypeOperatorReadonly
)

type TSTypeOperator struct {
	Op   TSTypeOperatorKind
	Type TSType
}

// TSTypeQuery is "typeof x" used in type position.
type TSTypeQuery struct{ Name []string }

// TSInferType is "infer X" inside a conditional type's Extends clause.
type TSInferType struct{ Name string }

type TSThisType struct{}

type TSParenthesizedType struct{ Type TSType }
type TSRestType struct{ Type TSType }
type TSOptionalType struct{ Type TSType }

// TSImportType is "import('module').Member<T>".
type TSImportType struct {
	ImportRecordIndex uint32
	Qualifier         []string
	TypeArgs          []TSType
}

// TSTypeAnnotation wraps a TSType with the colon token's span, used wherever
// a binding/parameter/return carries an optional ": Type" suffix.
type TSTypeAnnotation struct {
	Type Type_
}

// Type_ avoids a name clash with the TSType sum type above while keeping the
// annotation a thin wrapper; it is always exactly one TSType.
type Type_ = TSType

// TSTypeParam is one entry of a generic parameter list, e.g. the "T extends
// U = D" of "function f<T extends U = D>()" (const modifier covers
// TS 5's "const T" type parameters).
type TSTypeParam struct {
	Name        string
	Constraint  TSType
	Default     TSType
	Span        Span
	IsConst     bool
	IsIn        bool
	IsOut       bool
}

type TSTypeParamDecl struct {
	Params []TSTypeParam
	Span   Span
}

// TSDecorator is a "@decorator" or "@decorator(args)" attached to a class,
// method, or parameter; stored as a plain Expr (identifier, call, or member
// expression) since a decorator is just an ordinary expression evaluated at
// class-definition time.
type TSDecorator = Expr

// The following are TS-flavored E* expression variants: they wrap an
// ordinary Expr with extra type-level syntax that has no run-time effect
// beyond what the wrapped expression already does.

// ETSAs is "expr as Type".
type ETSAs struct {
	Value Expr
	Type  TSType
}

// ETSSatisfies is "expr satisfies Type" (TS 4.9+).
type ETSSatisfies struct {
	Value Expr
	Type  TSType
}

// ETSNonNull is "expr!", the non-null assertion operator.
type ETSNonNull struct{ Value Expr }

// ETSInstantiation is "expr<T>" used to instantiate a generic function or
// class reference without calling it.
type ETSInstantiation struct {
	Value    Expr
	TypeArgs []TSType
}

// ETSTypeAssertion is the legacy "<Type>expr" cast syntax (not available in
// .tsx files, where "<" starts JSX instead).
type ETSTypeAssertion struct {
	Type  TSType
	Value Expr
}
