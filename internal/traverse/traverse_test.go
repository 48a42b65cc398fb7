package traverse

import (
	"testing"

	"github.com/oxc-go/oxc/internal/arena"
	"github.com/oxc-go/oxc/internal/js_ast"
)

// buildSample builds "function () { if (a) { return a + 1; } }" (a function
// statement with no name) by hand,
// without going through the lexer/parser, to keep this package's tests
// independent of js_parser.
func buildSample() *js_ast.Program {
	ident := func(name string) js_ast.Expr {
		return js_ast.Expr{Data: &js_ast.EIdentifier{Name: name}}
	}
	num := func(v float64) js_ast.Expr {
		return js_ast.Expr{Data: &js_ast.ENumber{Value: v}}
	}
	binary := js_ast.Expr{Data: &js_ast.EBinary{Left: ident("a"), Right: num(1)}}
	ret := js_ast.Stmt{Data: &js_ast.SReturn{ValueOrNil: binary}}
	ifStmt := js_ast.Stmt{Data: &js_ast.SIf{
		Test: ident("a"),
		Yes:  js_ast.Stmt{Data: &js_ast.SBlock{Stmts: []js_ast.Stmt{ret}}},
	}}
	fn := js_ast.Stmt{Data: &js_ast.SFunction{Fn: js_ast.Fn{
		Body: &js_ast.FnBody{Block: js_ast.SBlock{Stmts: []js_ast.Stmt{ifStmt}}},
	}}}
	return &js_ast.Program{Stmts: []js_ast.Stmt{fn}}
}

// countingVisitor counts every EIdentifier node entered.
type countingVisitor struct{ idents int }

func (c *countingVisitor) Visit(node any) Visitor {
	if e, ok := node.(js_ast.Expr); ok {
		if _, ok := e.Data.(*js_ast.EIdentifier); ok {
			c.idents++
		}
	}
	return c
}

func TestWalkVisitsEveryIdentifier(t *testing.T) {
	program := buildSample()
	v := &countingVisitor{}
	for _, s := range program.Stmts {
		Walk(v, s)
	}
	if v.idents != 2 {
		t.Fatalf("expected 2 identifiers, got %d", v.idents)
	}
}

func TestWalkSkipsAbsentOptionalFields(t *testing.T) {
	// SIf.NoOrNil is the zero Stmt (no else branch); Walk must not call Visit
	// for it.
	var sawNilStmtVisit bool
	program := buildSample()
	var v visitorFunc
	v = func(node any) Visitor {
		if s, ok := node.(js_ast.Stmt); ok && s.Data == nil {
			sawNilStmtVisit = true
		}
		return v
	}
	for _, s := range program.Stmts {
		Walk(v, s)
	}
	if sawNilStmtVisit {
		t.Fatal("Walk visited a zero-value (absent) Stmt")
	}
}

type visitorFunc func(node any) Visitor

func (f visitorFunc) Visit(node any) Visitor { return f(node) }

// findFnTransformer records, for every EBinary it enters, whether a
// FindAncestor search locates the enclosing SFunction.
type findFnTransformer struct {
	foundForBinary bool
}

func (f *findFnTransformer) Enter(node any, ctx *TraverseCtx) {
	e, ok := node.(js_ast.Expr)
	if !ok {
		return
	}
	if _, ok := e.Data.(*js_ast.EBinary); !ok {
		return
	}
	_, found := FindAncestor(ctx, func(a Ancestor) FindResult[*js_ast.Fn] {
		if s, ok := a.Node.(js_ast.Stmt); ok {
			if fn, ok := s.Data.(*js_ast.SFunction); ok {
				return FindFound(&fn.Fn)
			}
		}
		return FindContinue[*js_ast.Fn]()
	})
	f.foundForBinary = found
}

func (f *findFnTransformer) Exit(node any, ctx *TraverseCtx) {}

func TestFindAncestorLocatesEnclosingFunction(t *testing.T) {
	program := buildSample()
	ctx := NewTraverseCtx(arena.New(0))
	tr := &findFnTransformer{}
	Traverse(tr, program, ctx)
	if !tr.foundForBinary {
		t.Fatal("FindAncestor did not locate the enclosing function for the binary expression")
	}
	if len(ctx.Ancestors()) != 1 {
		t.Fatalf("ancestor stack should be back to just the root after Traverse, got %d entries", len(ctx.Ancestors()))
	}
}

func TestTokenGuardsMutation(t *testing.T) {
	ctx := NewTraverseCtx(arena.New(0))
	tok := ctx.NewToken()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected NewToken to panic while a token is already outstanding")
			}
		}()
		ctx.NewToken()
	}()

	ctx.Release(tok)
	tok2 := ctx.NewToken()
	ctx.Release(tok2)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected Release to panic on a token from a different context")
			}
		}()
		other := NewTraverseCtx(arena.New(0))
		otherTok := other.NewToken()
		ctx.Release(otherTok)
	}()
}

func TestReplaceExprMutatesInPlace(t *testing.T) {
	ctx := NewTraverseCtx(arena.New(0))
	tok := ctx.NewToken()
	defer ctx.Release(tok)

	target := js_ast.Expr{Data: &js_ast.ENumber{Value: 1}}
	ctx.ReplaceExpr(tok, &target, js_ast.Expr{Data: &js_ast.ENumber{Value: 2}})
	if target.Data.(*js_ast.ENumber).Value != 2 {
		t.Fatalf("expected replaced value 2, got %v", target.Data.(*js_ast.ENumber).Value)
	}
}

func TestInsertAndRemoveStmt(t *testing.T) {
	ctx := NewTraverseCtx(arena.New(0))
	tok := ctx.NewToken()
	defer ctx.Release(tok)

	list := []js_ast.Stmt{{Data: &js_ast.SDebugger{}}, {Data: &js_ast.SEmpty{}}}
	ctx.InsertStmt(tok, &list, 1, js_ast.Stmt{Data: &js_ast.SBreak{}})
	if len(list) != 3 {
		t.Fatalf("expected 3 statements after insert, got %d", len(list))
	}
	if _, ok := list[1].Data.(*js_ast.SBreak); !ok {
		t.Fatalf("expected SBreak at index 1, got %T", list[1].Data)
	}

	removed := ctx.RemoveStmt(tok, &list, 0)
	if _, ok := removed.Data.(*js_ast.SDebugger); !ok {
		t.Fatalf("expected removed statement to be SDebugger, got %T", removed.Data)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 statements after remove, got %d", len(list))
	}
}
