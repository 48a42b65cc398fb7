package traverse

import (
	"github.com/oxc-go/oxc/internal/arena"
	"github.com/oxc-go/oxc/internal/js_ast"
)

// AncestorKind tags an Ancestor entry with the concrete node kind of the
// parent it was pushed for, derived automatically from the parent's Go type
// rather than threaded through by hand at every call site in Walk.
type AncestorKind uint16

const (
	AncestorRoot AncestorKind = iota
	AncestorOther
	AncestorSBlock
	AncestorSIf
	AncestorSFor
	AncestorSForIn
	AncestorSForOf
	AncestorSWhile
	AncestorSDoWhile
	AncestorSWith
	AncestorSTry
	AncestorSSwitch
	AncestorSLabel
	AncestorSReturn
	AncestorSThrow
	AncestorSExpr
	AncestorSLocal
	AncestorSFunction
	AncestorSClass
	AncestorEBinary
	AncestorEUnary
	AncestorECall
	AncestorENew
	AncestorEDot
	AncestorEIndex
	AncestorEArray
	AncestorEObject
	AncestorEArrow
	AncestorEFunction
	AncestorEClass
	AncestorEIf
	AncestorESequence
	AncestorEChain
	AncestorESpread
	AncestorEAwait
	AncestorEYield
	AncestorETemplate
	AncestorEJSXElement
	AncestorEJSXFragment
	AncestorProperty
	AncestorArg
	AncestorDecl
)

// Ancestor is one entry of the traversal ancestor stack: the parent node the
// driver descended from to reach the node currently being visited.
type Ancestor struct {
	Kind AncestorKind
	Node any
}

// ancestorKindOf classifies a node for the ancestor stack. Node kinds with
// no traversal-relevant children (leaf expressions, TS types, and the
// smaller composite structs) fall through to AncestorOther: find_ancestor
// callers that need finer distinction type-switch on Ancestor.Node directly.
func ancestorKindOf(node any) AncestorKind {
	switch node.(type) {
	case js_ast.Stmt:
		return ancestorKindOfStmt(node.(js_ast.Stmt))
	case js_ast.Expr:
		return ancestorKindOfExpr(node.(js_ast.Expr))
	case js_ast.Property:
		return AncestorProperty
	case js_ast.Arg:
		return AncestorArg
	case js_ast.Decl:
		return AncestorDecl
	default:
		return AncestorOther
	}
}

func ancestorKindOfStmt(s js_ast.Stmt) AncestorKind {
	switch s.Data.(type) {
	case *js_ast.SBlock:
		return AncestorSBlock
	case *js_ast.SIf:
		return AncestorSIf
	case *js_ast.SFor:
		return AncestorSFor
	case *js_ast.SForIn:
		return AncestorSForIn
	case *js_ast.SForOf:
		return AncestorSForOf
	case *js_ast.SWhile:
		return AncestorSWhile
	case *js_ast.SDoWhile:
		return AncestorSDoWhile
	case *js_ast.SWith:
		return AncestorSWith
	case *js_ast.STry:
		return AncestorSTry
	case *js_ast.SSwitch:
		return AncestorSSwitch
	case *js_ast.SLabel:
		return AncestorSLabel
	case *js_ast.SReturn:
		return AncestorSReturn
	case *js_ast.SThrow:
		return AncestorSThrow
	case *js_ast.SExpr:
		return AncestorSExpr
	case *js_ast.SLocal:
		return AncestorSLocal
	case *js_ast.SFunction:
		return AncestorSFunction
	case *js_ast.SClass:
		return AncestorSClass
	default:
		return AncestorOther
	}
}

func ancestorKindOfExpr(e js_ast.Expr) AncestorKind {
	switch e.Data.(type) {
	case *js_ast.EBinary:
		return AncestorEBinary
	case *js_ast.EUnary:
		return AncestorEUnary
	case *js_ast.ECall:
		return AncestorECall
	case *js_ast.ENew:
		return AncestorENew
	case *js_ast.EDot:
		return AncestorEDot
	case *js_ast.EIndex:
		return AncestorEIndex
	case *js_ast.EArray:
		return AncestorEArray
	case *js_ast.EObject:
		return AncestorEObject
	case *js_ast.EArrow:
		return AncestorEArrow
	case *js_ast.EFunction:
		return AncestorEFunction
	case *js_ast.EClass:
		return AncestorEClass
	case *js_ast.EIf:
		return AncestorEIf
	case *js_ast.ESequence:
		return AncestorESequence
	case *js_ast.EChain:
		return AncestorEChain
	case *js_ast.ESpread:
		return AncestorESpread
	case *js_ast.EAwait:
		return AncestorEAwait
	case *js_ast.EYield:
		return AncestorEYield
	case *js_ast.ETemplate:
		return AncestorETemplate
	case *js_ast.EJSXElement:
		return AncestorEJSXElement
	case *js_ast.EJSXFragment:
		return AncestorEJSXFragment
	default:
		return AncestorOther
	}
}

// Token is the unique capability required to call any mutating TraverseCtx
// method. At most one Token exists per TraverseCtx at a time: NewToken
// panics on a second call before the first Token is released, and a method
// that takes a Token panics if handed one issued by a different TraverseCtx
// (including the zero Token{}, which belongs to no ctx). This lets a
// transform hold ordinary Go pointers into the AST and mutate through them
// without any further synchronization, while still making "only the driver
// may mutate during a transform" a checked invariant instead of a
// convention.
type Token struct{ ctx *TraverseCtx }

// TraverseCtx is passed to a Transformer's Enter/Exit callbacks. It tracks
// the ancestor stack and holds the arena given to NewTraverseCtx, which
// nothing in this package allocates from. Scopes and Symbols are not set by
// anything in this module and stay nil unless the caller assigns them.
type TraverseCtx struct {
	ancestors   []Ancestor
	arena       *arena.Arena
	tokenIssued bool

	Scopes  any
	Symbols any
}

// NewTraverseCtx creates a context with the ancestor stack seeded with a
// single root entry, which pop refuses to pop past.
func NewTraverseCtx(a *arena.Arena) *TraverseCtx {
	return &TraverseCtx{
		ancestors: []Ancestor{{Kind: AncestorRoot}},
		arena:     a,
	}
}

func (ctx *TraverseCtx) Arena() *arena.Arena { return ctx.arena }

// Ancestors returns the live ancestor stack, current node last (during an
// Enter/Exit callback the top entry is the node itself, not its parent;
// use Parent or FindAncestor to skip it). Callers must not retain or mutate
// the returned slice past the current Enter/Exit callback.
func (ctx *TraverseCtx) Ancestors() []Ancestor { return ctx.ancestors }

// Parent returns the nearest ancestor strictly above the node currently
// being entered/exited, or the root sentinel if none exists.
func (ctx *TraverseCtx) Parent() Ancestor {
	if len(ctx.ancestors) < 2 {
		return ctx.ancestors[0]
	}
	return ctx.ancestors[len(ctx.ancestors)-2]
}

func (ctx *TraverseCtx) push(node any) {
	ctx.ancestors = append(ctx.ancestors, Ancestor{Kind: ancestorKindOf(node), Node: node})
}

// pop removes the nearest ancestor. It panics if called when only the root
// sentinel remains, matching the "never shrinks below 1" invariant.
func (ctx *TraverseCtx) pop() {
	if len(ctx.ancestors) <= 1 {
		panic("traverse: ancestor stack must never shrink below the root entry")
	}
	ctx.ancestors = ctx.ancestors[:len(ctx.ancestors)-1]
}

// FindResult is the ternary outcome of a find_ancestor-style search: Found
// carries a value and stops the walk, Stop halts the walk with no result,
// and Continue moves on to the next ancestor outward.
type FindResult[T any] struct {
	kind  findKind
	value T
}

type findKind uint8

const (
	findContinue findKind = iota
	findStop
	findFound
)

func FindContinue[T any]() FindResult[T] { return FindResult[T]{kind: findContinue} }
func FindStop[T any]() FindResult[T]     { return FindResult[T]{kind: findStop} }
func FindFound[T any](value T) FindResult[T] {
	return FindResult[T]{kind: findFound, value: value}
}

// FindAncestor walks from the nearest ancestor outward to the root, calling
// f on each; the node currently being entered/exited itself is not
// considered a candidate. It returns f's value and true on the first
// FindFound, or the zero value and false if f ever returns FindStop or the
// root is reached without a match.
func FindAncestor[T any](ctx *TraverseCtx, f func(Ancestor) FindResult[T]) (T, bool) {
	for i := len(ctx.ancestors) - 2; i >= 0; i-- {
		switch r := f(ctx.ancestors[i]); r.kind {
		case findFound:
			return r.value, true
		case findStop:
			var zero T
			return zero, false
		}
	}
	var zero T
	return zero, false
}

// NewToken issues this context's single Token. It panics if one is already
// outstanding; the caller must Release it before requesting another.
func (ctx *TraverseCtx) NewToken() Token {
	if ctx.tokenIssued {
		panic("traverse: a Token is already outstanding for this TraverseCtx")
	}
	ctx.tokenIssued = true
	return Token{ctx: ctx}
}

// Release frees t so a future NewToken call can succeed. It panics if t was
// not issued by ctx.
func (ctx *TraverseCtx) Release(t Token) {
	ctx.checkToken(t)
	ctx.tokenIssued = false
}

func (ctx *TraverseCtx) checkToken(t Token) {
	if t.ctx != ctx {
		panic("traverse: Token was not issued by this TraverseCtx")
	}
}

// ReplaceExpr overwrites *dst with with. dst is typically a field of a node
// still reachable from an Ancestor on the stack (e.g. &parent.(*js_ast.SIf).Test).
func (ctx *TraverseCtx) ReplaceExpr(t Token, dst *js_ast.Expr, with js_ast.Expr) {
	ctx.checkToken(t)
	*dst = with
}

func (ctx *TraverseCtx) ReplaceStmt(t Token, dst *js_ast.Stmt, with js_ast.Stmt) {
	ctx.checkToken(t)
	*dst = with
}

func (ctx *TraverseCtx) ReplaceBinding(t Token, dst *js_ast.Binding, with js_ast.Binding) {
	ctx.checkToken(t)
	*dst = with
}

// InsertStmt inserts stmt into *list at index, shifting later statements
// back. index == len(*list) appends.
func (ctx *TraverseCtx) InsertStmt(t Token, list *[]js_ast.Stmt, index int, stmt js_ast.Stmt) {
	ctx.checkToken(t)
	*list = append((*list)[:index:index], append([]js_ast.Stmt{stmt}, (*list)[index:]...)...)
}

// RemoveStmt deletes and returns the statement at index.
func (ctx *TraverseCtx) RemoveStmt(t Token, list *[]js_ast.Stmt, index int) js_ast.Stmt {
	ctx.checkToken(t)
	removed := (*list)[index]
	*list = append((*list)[:index], (*list)[index+1:]...)
	return removed
}

// Transformer receives Enter/Exit callbacks for every node Traverse visits,
// with ctx.Parent() giving the immediately enclosing node at Enter time.
// Enter/Exit receive ctx but not the Token that Traverse holds, and
// ctx.NewToken panics while that Token is outstanding, so the
// ctx.Replace*/Insert*/Remove* methods cannot be called from Enter/Exit.
type Transformer interface {
	Enter(node any, ctx *TraverseCtx)
	Exit(node any, ctx *TraverseCtx)
}

// ctxVisitor adapts a Transformer to the read-only Visitor interface so that
// Traverse can reuse Walk's dispatch table instead of maintaining a second,
// parallel one.
type ctxVisitor struct {
	t     Transformer
	ctx   *TraverseCtx
	stack []any
}

func (cv *ctxVisitor) Visit(node any) Visitor {
	if node == nil {
		n := cv.stack[len(cv.stack)-1]
		cv.stack = cv.stack[:len(cv.stack)-1]
		cv.t.Exit(n, cv.ctx)
		cv.ctx.pop()
		return nil
	}
	cv.ctx.push(node)
	cv.stack = append(cv.stack, node)
	cv.t.Enter(node, cv.ctx)
	return cv
}

// Traverse drives t over program, holding ctx's Token for the duration of
// the walk and releasing it on return (including on panic, so a failed
// transform never leaks the outstanding Token).
func Traverse(t Transformer, program *js_ast.Program, ctx *TraverseCtx) {
	tok := ctx.NewToken()
	defer ctx.Release(tok)

	cv := &ctxVisitor{t: t, ctx: ctx}
	for i := range program.Stmts {
		Walk(cv, program.Stmts[i])
	}
}
