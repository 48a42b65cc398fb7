package module_record_test

import (
	"testing"

	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_parser"
	"github.com/oxc-go/oxc/internal/logger"
	"github.com/oxc-go/oxc/internal/semantic"
)

func build(t *testing.T, contents string) *semantic.Semantic {
	t.Helper()
	log := logger.NewDeferLog()
	source := logger.Source{Index: 0, PrettyPath: "<test>", Contents: contents}
	program, ok := js_parser.Parse(log, source, js_parser.Options{
		SourceType: js_ast.SourceType{IsModule: true},
	})
	if !ok {
		t.Fatalf("parse failed for %q", contents)
	}
	return semantic.Build(log, source, &program)
}

func TestNamedImportEntry(t *testing.T) {
	sem := build(t, `import { foo as bar } from "mod";`)
	if !sem.Module.HasModuleSyntax {
		t.Fatalf("expected HasModuleSyntax")
	}
	if len(sem.Module.Imports) != 1 {
		t.Fatalf("expected one import entry, got %d", len(sem.Module.Imports))
	}
	entry := sem.Module.Imports[0]
	if entry.ModuleRequest != "mod" {
		t.Fatalf("expected module request mod, got %q", entry.ModuleRequest)
	}
	if entry.ImportedName != "foo" {
		t.Fatalf("expected imported name foo, got %q", entry.ImportedName)
	}
	if entry.LocalName != "bar" {
		t.Fatalf("expected local name bar, got %q", entry.LocalName)
	}
}

func TestDefaultAndNamespaceImports(t *testing.T) {
	sem := build(t, `import def, * as ns from "mod";`)
	if len(sem.Module.Imports) != 2 {
		t.Fatalf("expected two import entries, got %d", len(sem.Module.Imports))
	}
	var sawDefault, sawNamespace bool
	for _, e := range sem.Module.Imports {
		switch e.Kind {
		case 1: // ImportDefault
			sawDefault = e.LocalName == "def"
		case 2: // ImportNamespace
			sawNamespace = e.LocalName == "ns"
		}
	}
	if !sawDefault || !sawNamespace {
		t.Fatalf("expected both a default and a namespace import entry, imports: %+v", sem.Module.Imports)
	}
}

func TestSideEffectImportHasNoBindings(t *testing.T) {
	sem := build(t, `import "mod";`)
	if len(sem.Module.Imports) != 1 {
		t.Fatalf("expected one import entry, got %d", len(sem.Module.Imports))
	}
	entry := sem.Module.Imports[0]
	if entry.LocalName != "" || entry.ImportedName != "" {
		t.Fatalf("expected a side-effect-only import to carry no names, got %+v", entry)
	}
}

func TestExportedDeclarationRoundTripsThroughNameOf(t *testing.T) {
	sem := build(t, `export function f() {} export class C {} export const a = 1;`)
	names := make(map[string]bool)
	for _, e := range sem.Module.Exports {
		names[e.ExportedName] = true
	}
	for _, want := range []string{"f", "C", "a"} {
		if !names[want] {
			t.Fatalf("expected an export entry named %q, got %+v", want, sem.Module.Exports)
		}
	}
}

func TestReExportStarWithAlias(t *testing.T) {
	sem := build(t, `export * as ns from "mod";`)
	if len(sem.Module.Exports) != 1 {
		t.Fatalf("expected one export entry, got %d", len(sem.Module.Exports))
	}
	entry := sem.Module.Exports[0]
	if !entry.IsStar || entry.ExportedName != "ns" || entry.ModuleRequest != "mod" {
		t.Fatalf("unexpected star re-export entry: %+v", entry)
	}
}
