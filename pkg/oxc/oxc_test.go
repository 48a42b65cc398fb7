package oxc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc/internal/config"
	"github.com/oxc-go/oxc/pkg/oxc"
)

func TestParseAndBuildRoundTrip(t *testing.T) {
	result := oxc.Parse("const x = 1; x;", oxc.SourceType{})
	require.False(t, result.Panicked)
	require.Empty(t, result.Errors)

	built := oxc.Build(&result.Program, "const x = 1; x;", oxc.BuildOptions{})
	require.Empty(t, built.Errors)
	require.Equal(t, 1, built.Semantic.Symbols.Len())
}

func TestLinterRunProducesWireDiagnostic(t *testing.T) {
	l := oxc.NewLinter()
	cfg := &config.Config{Rules: map[string]config.RuleSetting{"eqeqeq": {Severity: config.SeverityError}}}

	diags := l.Run("a.js", "if (a==b) {}", oxc.SourceType{}, cfg)
	require.Len(t, diags, 1)
	require.Equal(t, "eqeqeq", diags[0].Rule)
}

func TestLinterBatchRunCorrelatesByRunID(t *testing.T) {
	l := oxc.NewLinter()
	cfg := &config.Config{Rules: map[string]config.RuleSetting{"eqeqeq": {Severity: config.SeverityWarn}}}

	files := map[string]oxc.FileInput{
		"a.js": {SourceText: "a==b;"},
		"b.js": {SourceText: "c===d;"},
	}
	runID, perFile := l.BatchRun(context.Background(), files, cfg, 2)
	require.NotEmpty(t, runID)
	require.Len(t, perFile["a.js"], 1)
	require.Empty(t, perFile["b.js"])
}

func TestParseConfigStripsComments(t *testing.T) {
	cfg, err := oxc.ParseConfig([]byte(`{ // comment
		"plugins": ["eslint"]
	}`))
	require.NoError(t, err)
	require.Equal(t, []string{"eslint"}, cfg.Plugins)
}
