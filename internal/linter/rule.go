// Package linter implements the rule framework: a Context each rule is
// handed once per node, a registry of rules keyed by plugin/name, and a
// runner that drives internal/traverse once per file and dispatches every
// registered node-rule at each node. The runner does not filter rules by
// plugin (config.Plugins is not read); each rule looks up its own severity
// and reports nothing when it is off or unconfigured. Rules are pure with respect to the AST —
// they read through Context and push diagnostics, never mutate the tree.
package linter

import (
	"github.com/oxc-go/oxc/internal/config"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/logger"
	"github.com/oxc-go/oxc/internal/semantic"
)

// Rule is implemented by every lint rule. Name/Plugin identify it for
// configuration lookup and for the diagnostic's (plugin, rule) code. At
// least one of RunOnNode/RunOnce should do something; a rule that
// implements neither is simply never invoked.
type Rule interface {
	Name() string
	Plugin() string
}

// NodeRule is invoked once per AST node the traverse visits, in source
// order, while node is being entered (not on its exit).
type NodeRule interface {
	Rule
	RunOnNode(node any, ctx *Context)
}

// OnceRule is invoked exactly once per file, after the node pass, for
// checks that need a whole-file view (module-level export counts, say)
// rather than a per-node trigger.
type OnceRule interface {
	Rule
	RunOnce(ctx *Context)
}

// ConfigurableRule accepts a rule-specific options blob parsed from its
// oxlintrc tuple form ("rule": ["error", {...}]). Run never calls
// FromConfiguration, so every rule, implementing this or not, sees only its
// bare severity.
type ConfigurableRule interface {
	Rule
	FromConfiguration(options []byte) Rule
}

// Context is what a rule sees: the parsed program and its semantic tables,
// the source text, per-plugin settings, the fix-mode flag, and the
// diagnostic sink. It carries no mutation surface into the AST — rules
// communicate only by calling Diagnostic.
type Context struct {
	Program  *js_ast.Program
	Semantic *semantic.Semantic
	Source   *logger.Source
	FilePath string

	Settings map[string]RuleSettings
	FixMode  bool

	config *config.Config
	log    logger.Log
	fix    *fixCollector
}

// effectiveSeverity resolves rule's configured severity for this file,
// applying any matching override. The second return is false when the rule
// has no entry in the config at all; an unconfigured rule is still
// dispatched to every node but reports nothing.
func (ctx *Context) effectiveSeverity(rule Rule, name string) (config.Severity, bool) {
	if ctx.config == nil {
		return config.SeverityOff, false
	}
	setting, ok := ctx.config.RuleSettingFor(name, ctx.FilePath)
	return setting.Severity, ok
}

// RuleSettings is the per-plugin settings object a rule can read via
// Context.Settings[pluginName]; its shape is rule-defined, so it stays
// opaque JSON here.
type RuleSettings = []byte

// Fix is an edit a rule proposes: replace the bytes at Span with
// Replacement. Overlapping fixes proposed in the same pass are resolved
// non-overlapping/earliest-wins by the runner, never applied by the rule
// itself.
type Fix struct {
	Span        logger.Range
	Replacement string
}

// Diagnostic records one lint finding at span, tagged with the calling
// rule's (plugin, name) code, and an optional Fix when ctx.FixMode is set
// and the rule has one to offer.
func (ctx *Context) Diagnostic(rule Rule, severity config.Severity, span logger.Range, message string, fix *Fix) {
	if severity == config.SeverityOff {
		return
	}
	kind := logger.Warning
	if severity == config.SeverityError {
		kind = logger.Error
	}
	data := logger.MsgData{
		Text:       message,
		Location:   logger.LocationOrNil(ctx.Source, span),
		UserDetail: &logger.RuleCode{Plugin: rule.Plugin(), Rule: rule.Name()},
	}
	ctx.log.AddMsg(logger.Msg{Kind: kind, Data: data})

	if ctx.FixMode && fix != nil && ctx.fix != nil {
		ctx.fix.propose(proposedFix{span: fix.Span, replacement: fix.Replacement})
	}
}
