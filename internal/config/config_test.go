package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc/internal/config"
)

func TestParseStripsJSONCComments(t *testing.T) {
	src := []byte(`{
		// line comment
		"plugins": ["eslint"], /* block
		comment */
		"rules": { "eqeqeq": "error" }
	}`)
	cfg, err := config.Parse(src)
	require.NoError(t, err)
	require.Equal(t, []string{"eslint"}, cfg.Plugins)
	setting, ok := cfg.Rules["eqeqeq"]
	require.True(t, ok)
	require.Equal(t, config.SeverityError, setting.Severity)
}

func TestParseRuleSettingTuple(t *testing.T) {
	cfg, err := config.Parse([]byte(`{"rules": {"max-len": ["warn", {"max": 100}]}}`))
	require.NoError(t, err)
	setting := cfg.Rules["max-len"]
	require.Equal(t, config.SeverityWarn, setting.Severity)
	require.Len(t, setting.Options, 1)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte(`{"bogus": true}`))
	require.Error(t, err)
}

func TestOverrideAppliesToMatchingFile(t *testing.T) {
	cfg, err := config.Parse([]byte(`{
		"rules": {"eqeqeq": "error"},
		"overrides": [{"files": ["*.test.js"], "rules": {"eqeqeq": "off"}}]
	}`))
	require.NoError(t, err)

	setting, ok := cfg.RuleSettingFor("eqeqeq", "src/foo.js")
	require.True(t, ok)
	require.Equal(t, config.SeverityError, setting.Severity)

	setting, ok = cfg.RuleSettingFor("eqeqeq", "src/foo.test.js")
	require.True(t, ok)
	require.Equal(t, config.SeverityOff, setting.Severity)
}

func TestIgnorePatternsNegation(t *testing.T) {
	cfg := &config.Config{IgnorePatterns: []string{"*.gen.js", "!keep.gen.js"}}
	require.True(t, cfg.IsIgnored("foo.gen.js"))
	require.False(t, cfg.IsIgnored("keep.gen.js"))
	require.False(t, cfg.IsIgnored("foo.js"))
}

func TestDiscoverWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".oxlintrc.json"), []byte(`{"plugins":["eslint"]}`), 0o644))

	d, err := config.NewDiscoverer(8)
	require.NoError(t, err)

	cfg, err := d.Discover(nested)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, []string{"eslint"}, cfg.Plugins)

	// second call for the same directory must hit the cache, not re-read the file
	require.NoError(t, os.Remove(filepath.Join(root, ".oxlintrc.json")))
	cfg2, err := d.Discover(nested)
	require.NoError(t, err)
	require.Same(t, cfg, cfg2)
}

func TestDiscoverReturnsNilWhenNoneFound(t *testing.T) {
	root := t.TempDir()
	d, err := config.NewDiscoverer(8)
	require.NoError(t, err)
	cfg, err := d.Discover(root)
	require.NoError(t, err)
	require.Nil(t, cfg)
}
