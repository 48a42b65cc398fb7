package js_ast

// Language distinguishes the JS/TS grammar surface a file is parsed with.
type Language uint8

const (
	LanguageJS Language = iota
	LanguageTS
)

// SourceType is the parser's entry contract: module vs script parsing goal,
// TypeScript grammar on/off, and JSX on/off. It is set by the caller (or
// inferred from the file extension by a collaborator) and never changed
// mid-parse, though a "@jsxImportSource"-style comment pragma may override
// the JSX import source for that one file.
type SourceType struct {
	Language Language
	IsModule bool
	JSX      bool
	// TSX additionally disables the legacy "<Type>expr" assertion syntax
	// because "<" always starts JSX in that grammar.
	TSX bool
}

// Comment is a single comment's text (without the delimiters) and span,
// recorded in the trivia map and scanned for JSDoc attachment and pragma
// directives regardless of doc-comment status.
type Comment struct {
	Text        string
	Span        Span
	IsMultiLine bool
}

// Pragma holds the directives the lexer can extract from any comment
// ("@jsx", "@jsxFrag", "@jsxRuntime", "@jsxImportSource"); these override
// configuration for the file they appear in.
type Pragma struct {
	JSXFactory       string
	JSXFragment      string
	JSXRuntime       string
	JSXImportSource  string
}

// Program is the AST root: a directive prologue followed by a statement
// sequence, plus everything recorded during parsing that downstream
// components need without a second traversal.
type Program struct {
	Stmts      []Stmt
	Comments   []Comment
	Pragma     Pragma
	SourceType SourceType

	// HasLexicalDeclarationInTopLevel records whether a top-level let/const
	// declaration exists; the semantic builder then marks the top-level
	// scope strict, as it does for a module.
	HasLexicalDeclarationInTopLevel bool
}
