package semantic

import (
	"testing"

	"github.com/oxc-go/oxc/internal/ast"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_parser"
	"github.com/oxc-go/oxc/internal/logger"
)

func build(t *testing.T, contents string, isModule bool) (*Semantic, logger.Log) {
	t.Helper()
	log := logger.NewDeferLog()
	source := logger.Source{Index: 0, PrettyPath: "<test>", Contents: contents}
	program, ok := js_parser.Parse(log, source, js_parser.Options{
		SourceType: js_ast.SourceType{IsModule: isModule},
	})
	if !ok {
		t.Fatalf("parse failed for %q", contents)
	}
	return Build(log, source, &program), log
}

func findSymbol(sem *Semantic, name string) (ast.SymbolId, *Symbol, bool) {
	for i := 0; i < sem.Symbols.Len(); i++ {
		id := ast.MakeSymbolId(uint32(i))
		sym := sem.Symbols.Get(id)
		if sym.Name == name {
			return id, sym, true
		}
	}
	return ast.InvalidSymbolId, nil, false
}

func TestVarHoistsToFunctionScope(t *testing.T) {
	sem, _ := build(t, `function f() { if (true) { var x = 1; } return x; }`, false)
	_, sym, ok := findSymbol(sem, "x")
	if !ok {
		t.Fatalf("expected a symbol named x")
	}
	if !sym.Flags.Has(SymbolFlagVar) {
		t.Fatalf("expected x to carry SymbolFlagVar, got %v", sym.Flags)
	}
	if len(sym.References) != 1 {
		t.Fatalf("expected the return statement's x to resolve to the hoisted var, got %d references", len(sym.References))
	}
}

func TestLetStaysBlockScoped(t *testing.T) {
	sem, log := build(t, `{ let y = 1; } y;`, false)
	if log.HasErrors() {
		t.Fatalf("an unresolved reference escalating to global should not itself be an error, got: %v", log.Done())
	}
	if unresolved := sem.Scopes.GlobalUnresolved(); len(unresolved) != 1 {
		t.Fatalf("expected exactly one global-unresolved reference (y, out of its block's scope), got %d", len(unresolved))
	}
}

func TestDuplicateLetIsAnError(t *testing.T) {
	_, log := build(t, `let a = 1; let a = 2;`, false)
	if !log.HasErrors() {
		t.Fatalf("expected a duplicate-declaration error for redeclared let")
	}
}

func TestVarVarMergeIsNotAnError(t *testing.T) {
	sem, log := build(t, `var a = 1; var a = 2;`, false)
	if log.HasErrors() {
		t.Fatalf("did not expect an error merging two var declarations of the same name")
	}
	count := 0
	for i := 0; i < sem.Symbols.Len(); i++ {
		if sem.Symbols.Get(ast.MakeSymbolId(uint32(i))).Name == "a" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected var/var collision to merge into one symbol, found %d", count)
	}
}

func TestFunctionDeclarationGetsCFG(t *testing.T) {
	sem, _ := build(t, `function f(x) { if (x) { return 1; } return 2; }`, false)
	id, _, ok := findSymbol(sem, "f")
	if !ok {
		t.Fatalf("expected a symbol named f")
	}
	cfg, ok := sem.CFGs[id]
	if !ok {
		t.Fatalf("expected a CFG keyed by f's symbol id")
	}
	if len(cfg.Exits) != 0 {
		t.Fatalf("expected both branches of f to return, leaving no fallthrough exit, got %d", len(cfg.Exits))
	}
}

func TestReturnOutsideFunctionIsAnError(t *testing.T) {
	_, log := build(t, `return 1;`, false)
	if !log.HasErrors() {
		t.Fatalf("expected a return-outside-function error")
	}
}

func TestAwaitOutsideAsyncIsAnError(t *testing.T) {
	_, log := build(t, `function f() { return await 1; }`, false)
	if !log.HasErrors() {
		t.Fatalf("expected an await-disallowed error in a non-async function")
	}
}

func TestNamedFunctionExpressionOwnNameIsLocalToItself(t *testing.T) {
	sem, _ := build(t, `var g = function self() { return self; }; self;`, false)
	unresolved := sem.Scopes.GlobalUnresolved()
	found := false
	for _, refId := range unresolved {
		ref := sem.References.Get(refId)
		if ref.Name == "self" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the top-level self reference to escalate to global, since the function expression's own name is scoped to its own body")
	}
}

func TestImportBindingResolves(t *testing.T) {
	sem, log := build(t, `import { foo } from "mod"; foo();`, true)
	if log.HasErrors() {
		t.Fatalf("did not expect errors, got: %v", log.Done())
	}
	_, sym, ok := findSymbol(sem, "foo")
	if !ok {
		t.Fatalf("expected a symbol named foo")
	}
	if !sym.Flags.Has(SymbolFlagImport) {
		t.Fatalf("expected foo to carry SymbolFlagImport")
	}
	if len(sym.References) != 1 {
		t.Fatalf("expected one reference to foo, got %d", len(sym.References))
	}
}
