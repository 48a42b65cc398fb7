// Package oxc is the public library surface: parse, build semantic tables,
// and run the linter over a single file or a batch, without any caller
// needing to import an internal/ package directly — a thin, stable surface
// in front of an internal implementation that's free to change shape
// underneath it.
package oxc

import (
	"context"

	"github.com/oxc-go/oxc/internal/config"
	"github.com/oxc-go/oxc/internal/diagnostics"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_parser"
	"github.com/oxc-go/oxc/internal/linter"
	"github.com/oxc-go/oxc/internal/logger"
	"github.com/oxc-go/oxc/internal/module_record"
	"github.com/oxc-go/oxc/internal/semantic"
)

// SourceType re-exports js_ast.SourceType so callers never need to import
// internal/js_ast for the one type they pass into Parse.
type SourceType = js_ast.SourceType

// Language re-exports js_ast.Language and its two values.
type Language = js_ast.Language

const (
	LanguageJS = js_ast.LanguageJS
	LanguageTS = js_ast.LanguageTS
)

// ParseResult is external interface item 1: parse(source_text, source_type)
// -> { program, errors, panicked, module_record_info }.
type ParseResult struct {
	Program          js_ast.Program
	Errors           []logger.Msg
	Panicked         bool
	ModuleRecordInfo module_record.Record
}

// Parse lexes and parses sourceText under sourceType. On an unrecoverable
// lexer/parser error, Panicked is true and Program holds whatever partial
// statement list was accumulated before the panic was recovered — callers
// may still feed it to Build and the linter, which run on partial ASTs.
func Parse(sourceText string, sourceType SourceType) ParseResult {
	log := logger.NewDeferLog()
	source := logger.Source{Contents: sourceText}
	program, ok := js_parser.Parse(log, source, js_parser.Options{SourceType: sourceType})
	msgs := log.Done()

	rec := module_record.Build(&program, func(ref js_ast.Ref) string { return "" })

	return ParseResult{
		Program:          program,
		Errors:           msgs,
		Panicked:         !ok,
		ModuleRecordInfo: *rec,
	}
}

// BuildOptions configures Build; currently empty, reserved for future
// semantic-pass toggles that can grow in place without changing Build's
// signature.
type BuildOptions struct{}

// BuildResult is external interface item 2: build(program, source_text,
// options) -> { semantic, errors }.
type BuildResult struct {
	Semantic *semantic.Semantic
	Errors   []logger.Msg
}

// Build runs the semantic pass over an already-parsed program.
func Build(program *js_ast.Program, sourceText string, _ BuildOptions) BuildResult {
	log := logger.NewDeferLog()
	source := logger.Source{Contents: sourceText}
	sem := semantic.Build(log, source, program)
	return BuildResult{Semantic: sem, Errors: log.Done()}
}

// Config re-exports config.Config so a caller only needs this package to
// load and pass through an .oxlintrc.json.
type Config = config.Config

// ParseConfig strips JSONC comments from data and parses it as an
// .oxlintrc.json document (external interface item 6).
func ParseConfig(data []byte) (*Config, error) {
	return config.Parse(data)
}

// Linter is external interface item 4: Linter::run(path, source_text,
// source_type, config) -> Vec<Diagnostic>, plus BatchRun as the streaming
// variant for batch mode.
type Linter struct {
	registry *linter.Registry
}

// NewLinter returns a Linter pre-loaded with every built-in rule.
func NewLinter() *Linter {
	return &Linter{registry: linter.NewRegistry()}
}

// Run lints one file and returns its diagnostics in wire format (external
// interface item 5), UTF-16-encoded columns per the LSP default.
func (l *Linter) Run(path, sourceText string, sourceType SourceType, cfg *Config) []diagnostics.Diagnostic {
	source := logger.Source{PrettyPath: path, Contents: sourceText}
	result := linter.Run(path, source, linter.Options{
		Registry:   l.registry,
		Config:     cfg,
		SourceType: sourceType,
	})
	out := make([]diagnostics.Diagnostic, 0, len(result.Messages))
	for _, msg := range result.Messages {
		out = append(out, diagnostics.FromMsg(msg, &source, diagnostics.UTF16))
	}
	return out
}

// BatchRun lints every file in files across a worker pool, returning a
// RunID (for caller-side correlation with a later run) plus each file's
// wire-format diagnostics.
func (l *Linter) BatchRun(ctx context.Context, files map[string]FileInput, cfg *Config, workers int) (runID string, perFile map[string][]diagnostics.Diagnostic) {
	batchFiles := make([]linter.File, 0, len(files))
	sources := make(map[string]logger.Source, len(files))
	for path, in := range files {
		src := logger.Source{PrettyPath: path, Contents: in.SourceText}
		sources[path] = src
		batchFiles = append(batchFiles, linter.File{Path: path, Source: src, SourceType: in.SourceType})
	}

	batch := linter.BatchRun(ctx, batchFiles, linter.Options{Registry: l.registry, Config: cfg}, workers)

	perFile = make(map[string][]diagnostics.Diagnostic, len(batch.Results))
	for _, fr := range batch.Results {
		src := sources[fr.Path]
		diags := make([]diagnostics.Diagnostic, 0, len(fr.Result.Messages))
		for _, msg := range fr.Result.Messages {
			diags = append(diags, diagnostics.FromMsg(msg, &src, diagnostics.UTF16))
		}
		perFile[fr.Path] = diags
	}
	return batch.RunID, perFile
}

// FileInput is one file handed to Linter.BatchRun.
type FileInput struct {
	SourceText string
	SourceType SourceType
}
