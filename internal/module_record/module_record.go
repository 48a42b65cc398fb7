// Package module_record builds the import/export entry tables (component I)
// as a side effect of the semantic pass: a single scan over a program's
// top-level statements, since import/export declarations are only legal
// there.
package module_record

import (
	"github.com/oxc-go/oxc/internal/ast"
	"github.com/oxc-go/oxc/internal/js_ast"
)

// ImportKind classifies the shape of an import entry.
type ImportKind uint8

const (
	ImportNamed ImportKind = iota
	ImportDefault
	ImportNamespace
	ImportSideEffectOnly
	ImportRequireEquals // TS "import x = require('y')"
)

// ImportEntry is one binding introduced by an import declaration. For
// ImportSideEffectOnly, LocalName/ImportedName are both empty.
type ImportEntry struct {
	ModuleRequest     string
	ModuleRequestSpan ast.Span

	// ImportedName is the name as exported by the source module ("" for
	// ImportDefault/ImportNamespace/ImportSideEffectOnly, where there is no
	// separate exported identifier to track).
	ImportedName     string
	ImportedNameSpan ast.Span

	LocalName string
	LocalSpan ast.Span

	IsTypeOnly bool
	Kind       ImportKind
}

// ExportEntry is one binding produced by an export declaration, including
// the three re-export forms.
type ExportEntry struct {
	// LocalName is the local binding being exported; empty for
	// "export * from 'x'". For "export {x} from 'y'" it holds the clause
	// name x, even though no local declaration backs it.
	LocalName string
	LocalSpan ast.Span

	ExportedName     string
	ExportedNameSpan ast.Span

	// ModuleRequest is set for every re-export form; empty for a local
	// export.
	ModuleRequest     string
	ModuleRequestSpan ast.Span

	// IsStar is true for "export * from" and "export * as ns from".
	IsStar bool
}

// Record holds every import/export entry discovered in a program, plus
// whether the file uses any module syntax at all.
type Record struct {
	Imports         []ImportEntry
	Exports         []ExportEntry
	HasModuleSyntax bool
}

// Build scans a program's top-level statements for import/export forms.
// Import and export declarations are only legal at the top level of a
// module, so this does not need a full tree walk. nameOf resolves a symbol
// reference to its declared name; the semantic builder supplies this once
// the symbol table exists, since the parser itself never stores binding
// text, only spans and Refs.
func Build(program *js_ast.Program, nameOf func(js_ast.Ref) string) *Record {
	r := &Record{}
	for _, stmt := range program.Stmts {
		buildStmt(r, stmt, nameOf)
	}
	return r
}

func buildImport(r *Record, s *js_ast.SImport, nameOf func(js_ast.Ref) string) {
	request := ImportEntry{ModuleRequest: s.ModuleSpecifier, ModuleRequestSpan: s.ModuleSpecifierSpan, IsTypeOnly: s.IsTypeOnly}

	switch {
	case s.DefaultName == nil && s.Items == nil && s.StarNameSpan == nil:
		entry := request
		entry.Kind = ImportSideEffectOnly
		r.Imports = append(r.Imports, entry)
		return
	}

	if s.DefaultName != nil {
		entry := request
		entry.Kind = ImportDefault
		entry.LocalName = nameOf(s.DefaultName.Ref)
		entry.LocalSpan = s.DefaultName.Span
		r.Imports = append(r.Imports, entry)
	}
	if s.StarNameSpan != nil {
		entry := request
		entry.Kind = ImportNamespace
		entry.LocalName = nameOf(s.NamespaceRef)
		entry.LocalSpan = *s.StarNameSpan
		r.Imports = append(r.Imports, entry)
	}
	if s.Items != nil {
		for _, item := range *s.Items {
			entry := request
			entry.Kind = ImportNamed
			entry.ImportedName = item.OriginalName
			entry.ImportedNameSpan = item.AliasSpan
			entry.LocalName = nameOf(item.Name.Ref)
			entry.LocalSpan = item.Name.Span
			entry.IsTypeOnly = s.IsTypeOnly || item.IsTypeOnly
			r.Imports = append(r.Imports, entry)
		}
	}
}

func buildStmt(r *Record, stmt js_ast.Stmt, nameOf func(js_ast.Ref) string) {
	switch s := stmt.Data.(type) {
	case *js_ast.SImport:
		r.HasModuleSyntax = true
		buildImport(r, s, nameOf)

	case *js_ast.STSImportEquals:
		if s.ModuleRef != nil {
			r.HasModuleSyntax = true
			r.Imports = append(r.Imports, ImportEntry{
				ModuleRequest:     s.ModuleRef.Text,
				ModuleRequestSpan: s.ModuleRef.Span,
				LocalName:         nameOf(s.Name.Ref),
				LocalSpan:         s.Name.Span,
				IsTypeOnly:        s.IsTypeOnly,
				Kind:              ImportRequireEquals,
			})
		}

	case *js_ast.SExportFrom:
		r.HasModuleSyntax = true
		for _, item := range s.Items {
			r.Exports = append(r.Exports, ExportEntry{
				LocalName:         item.OriginalName,
				LocalSpan:         item.Name.Span,
				ExportedName:      item.Alias,
				ExportedNameSpan:  item.AliasSpan,
				ModuleRequest:     s.ModuleSpecifier,
				ModuleRequestSpan: s.ModuleSpecifierSpan,
			})
		}

	case *js_ast.SExportStar:
		r.HasModuleSyntax = true
		entry := ExportEntry{
			ModuleRequest:     s.ModuleSpecifier,
			ModuleRequestSpan: s.ModuleSpecifierSpan,
			IsStar:            true,
		}
		if s.Alias != nil {
			entry.ExportedName = s.Alias.OriginalName
			entry.ExportedNameSpan = s.Alias.Span
		}
		r.Exports = append(r.Exports, entry)

	case *js_ast.SExportClause:
		r.HasModuleSyntax = true
		for _, item := range s.Items {
			r.Exports = append(r.Exports, ExportEntry{
				LocalName:        item.OriginalName,
				LocalSpan:        item.Name.Span,
				ExportedName:     item.Alias,
				ExportedNameSpan: item.AliasSpan,
			})
		}

	case *js_ast.SExportDefault:
		r.HasModuleSyntax = true
		r.Exports = append(r.Exports, ExportEntry{
			LocalName:        "default",
			ExportedName:     "default",
			ExportedNameSpan: s.DefaultName.Span,
		})

	case *js_ast.SExportEquals:
		r.HasModuleSyntax = true
		r.Exports = append(r.Exports, ExportEntry{ExportedName: "export="})

	case *js_ast.SFunction:
		if s.IsExport {
			r.HasModuleSyntax = true
			if s.Fn.Name != nil {
				name := nameOf(s.Fn.Name.Ref)
				r.Exports = append(r.Exports, ExportEntry{
					LocalName:        name,
					ExportedName:     name,
					ExportedNameSpan: s.Fn.Name.Span,
					LocalSpan:        s.Fn.Name.Span,
				})
			}
		}

	case *js_ast.SClass:
		if s.IsExport {
			r.HasModuleSyntax = true
			if s.Class.Name != nil {
				name := nameOf(s.Class.Name.Ref)
				r.Exports = append(r.Exports, ExportEntry{
					LocalName:        name,
					ExportedName:     name,
					ExportedNameSpan: s.Class.Name.Span,
					LocalSpan:        s.Class.Name.Span,
				})
			}
		}

	case *js_ast.SLocal:
		if s.IsExport {
			r.HasModuleSyntax = true
			for _, decl := range s.Decls {
				if ident, ok := decl.Binding.Data.(*js_ast.BIdentifier); ok {
					name := nameOf(ident.Ref)
					r.Exports = append(r.Exports, ExportEntry{
						LocalName:        name,
						ExportedName:     name,
						LocalSpan:        decl.Binding.Span,
						ExportedNameSpan: decl.Binding.Span,
					})
				}
			}
		}
	}
}
