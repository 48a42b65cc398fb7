package linter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc/internal/config"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/linter"
	"github.com/oxc-go/oxc/internal/logger"
)

func runEqEqEq(t *testing.T, contents string, severity config.Severity) linter.Result {
	t.Helper()
	cfg := &config.Config{Rules: map[string]config.RuleSetting{
		"eqeqeq": {Severity: severity},
	}}
	source := logger.Source{Index: 0, PrettyPath: "<test>", Contents: contents}
	return linter.Run("<test>", source, linter.Options{
		Config:     cfg,
		SourceType: js_ast.SourceType{},
	})
}

func TestEqEqEqReportsOneDiagnosticWhenEnabled(t *testing.T) {
	result := runEqEqEq(t, "if (a==b) {}", config.SeverityError)
	require.Len(t, result.Messages, 1)
	code, ok := result.Messages[0].Data.UserDetail.(*logger.RuleCode)
	require.True(t, ok)
	require.Equal(t, "eqeqeq", code.Rule)
}

func TestEqEqEqSilentWhenOff(t *testing.T) {
	result := runEqEqEq(t, "if (a==b) {}", config.SeverityOff)
	require.Empty(t, result.Messages)
}

func TestEqEqEqIgnoresStrictEquality(t *testing.T) {
	result := runEqEqEq(t, "if (a===b) {}", config.SeverityError)
	require.Empty(t, result.Messages)
}

func TestBatchRunIsDeterministicallyOrdered(t *testing.T) {
	cfg := &config.Config{Rules: map[string]config.RuleSetting{"eqeqeq": {Severity: config.SeverityError}}}
	files := []linter.File{
		{Path: "b.js", Source: logger.Source{PrettyPath: "b.js", Contents: "a==b;"}},
		{Path: "a.js", Source: logger.Source{PrettyPath: "a.js", Contents: "c==d;"}},
	}
	batch := linter.BatchRun(context.Background(), files, linter.Options{Config: cfg}, 4)
	require.NotEmpty(t, batch.RunID)
	require.Len(t, batch.Results, 2)
	require.Equal(t, "a.js", batch.Results[0].Path)
	require.Equal(t, "b.js", batch.Results[1].Path)
}
