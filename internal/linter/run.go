package linter

import (
	"github.com/oxc-go/oxc/internal/config"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/js_parser"
	"github.com/oxc-go/oxc/internal/logger"
	"github.com/oxc-go/oxc/internal/semantic"
	"github.com/oxc-go/oxc/internal/traverse"
)

// Options configures one Run call.
type Options struct {
	Registry   *Registry
	Config     *config.Config
	SourceType js_ast.SourceType
	FixMode    bool
}

// Result is everything one lint run over a single file produced.
type Result struct {
	Program  js_ast.Program
	Semantic *semantic.Semantic
	Messages []logger.Msg
	Fixes    []proposedFix
}

// Run lexes, parses, builds semantic tables for, and lints source, in that
// order: everything for one file happens on the calling goroutine against
// its own tree, with no state shared across files. The tree's nodes are
// ordinary Go heap values, not allocations in an internal/arena Arena.
func Run(filePath string, source logger.Source, opts Options) Result {
	log := logger.NewDeferLog()
	program, _ := js_parser.Parse(log, source, js_parser.Options{SourceType: opts.SourceType})
	sem := semantic.Build(log, source, &program)

	ctx := &Context{
		Program:  &program,
		Semantic: sem,
		Source:   &source,
		FilePath: filePath,
		FixMode:  opts.FixMode,
		config:   opts.Config,
		log:      log,
	}
	if opts.FixMode {
		ctx.fix = &fixCollector{}
	}

	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry()
	}

	var nodeRules []NodeRule
	var onceRules []OnceRule
	for _, rule := range registry.All() {
		if nr, ok := rule.(NodeRule); ok {
			nodeRules = append(nodeRules, nr)
		}
		if or, ok := rule.(OnceRule); ok {
			onceRules = append(onceRules, or)
		}
	}

	if len(nodeRules) > 0 {
		dispatcher := &ruleDispatcher{rules: nodeRules, ctx: ctx}
		for _, stmt := range program.Stmts {
			traverse.Walk(dispatcher, stmt)
		}
	}
	for _, rule := range onceRules {
		rule.RunOnce(ctx)
	}

	result := Result{Program: program, Semantic: sem, Messages: log.Done()}
	if ctx.fix != nil {
		result.Fixes = ctx.fix.Resolve()
	}
	return result
}

// ruleDispatcher is the traverse.Visitor that fans every node out to every
// enabled NodeRule, once per node, matching "the linter enumerates nodes
// once; for each node, every enabled per-node rule is invoked."
type ruleDispatcher struct {
	rules []NodeRule
	ctx   *Context
}

func (d *ruleDispatcher) Visit(node any) traverse.Visitor {
	if node == nil {
		return nil
	}
	for _, rule := range d.rules {
		rule.RunOnNode(node, d.ctx)
	}
	return d
}
