// Package config loads an .oxlintrc.json-style configuration: JSONC
// comment stripping, a severity-or-tuple rule-setting schema, glob-scoped
// overrides merged over the base config, and gitignore-style ignorePatterns
// with "!"-negation. Discovery walks from a target file upward to the
// filesystem root, caching parsed trees by directory with an LRU so a
// batch lint run over many files in the same project doesn't re-parse the
// same config chain per file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Severity is one of off/warn/error; off suppresses rule registration
// entirely rather than registering it at a zero severity.
type Severity string

const (
	SeverityOff   Severity = "off"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// RuleSetting accepts either a bare severity string or a [severity,
// options...] tuple, the same permissive shape .eslintrc-family configs
// use.
type RuleSetting struct {
	Severity Severity
	Options  []json.RawMessage
}

func (r *RuleSetting) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		r.Severity = Severity(asString)
		return nil
	}
	var asTuple []json.RawMessage
	if err := json.Unmarshal(data, &asTuple); err != nil {
		return fmt.Errorf("rule setting must be a severity string or a [severity, options...] tuple: %w", err)
	}
	if len(asTuple) == 0 {
		return fmt.Errorf("rule setting tuple must have at least a severity")
	}
	if err := json.Unmarshal(asTuple[0], &asString); err != nil {
		return fmt.Errorf("rule setting tuple's first element must be a severity string: %w", err)
	}
	r.Severity = Severity(asString)
	r.Options = asTuple[1:]
	return nil
}

// Override applies a settings delta to files matched by a set of globs,
// merged over the base config in array order (later overrides win on
// conflicting keys).
type Override struct {
	Files   []string               `json:"files"`
	Rules   map[string]RuleSetting `json:"rules,omitempty"`
	Env     map[string]bool        `json:"env,omitempty"`
	Globals map[string]string      `json:"globals,omitempty"`
}

// Config is the parsed shape of one .oxlintrc.json.
type Config struct {
	Plugins        []string                   `json:"plugins,omitempty"`
	Categories     map[string]Severity        `json:"categories,omitempty"`
	Rules          map[string]RuleSetting     `json:"rules,omitempty"`
	Settings       map[string]json.RawMessage `json:"settings,omitempty"`
	Env            map[string]bool            `json:"env,omitempty"`
	Globals        map[string]string          `json:"globals,omitempty"`
	Overrides      []Override                 `json:"overrides,omitempty"`
	IgnorePatterns []string                   `json:"ignorePatterns,omitempty"`
}

// RuleSettingFor resolves the effective RuleSetting for rule at path,
// applying every override whose Files pattern matches path, in array order,
// over the base Rules map.
func (c *Config) RuleSettingFor(rule, path string) (RuleSetting, bool) {
	setting, ok := c.Rules[rule]
	for _, o := range c.Overrides {
		if !matchesAny(o.Files, path) {
			continue
		}
		if s, present := o.Rules[rule]; present {
			setting, ok = s, true
		}
	}
	return setting, ok
}

func matchesAny(globs []string, path string) bool {
	for _, g := range globs {
		if ok, _ := filepath.Match(g, filepath.Base(path)); ok {
			return true
		}
		if ok, _ := filepath.Match(g, path); ok {
			return true
		}
	}
	return false
}

// IsIgnored reports whether path matches c.IgnorePatterns, a gitignore-style
// list evaluated in order: a later "!"-prefixed pattern re-includes a path
// an earlier pattern excluded.
func (c *Config) IsIgnored(path string) bool {
	ignored := false
	for _, pattern := range c.IgnorePatterns {
		negate := false
		p := pattern
		if len(p) > 0 && p[0] == '!' {
			negate = true
			p = p[1:]
		}
		if matched, _ := filepath.Match(p, filepath.Base(path)); matched {
			ignored = !negate
			continue
		}
		if matched, _ := filepath.Match(p, path); matched {
			ignored = !negate
		}
	}
	return ignored
}

// Parse strips JSONC comments from src and deserializes it into a Config.
// Unknown top-level keys are rejected as a diagnostic-worthy error —
// json.Decoder.DisallowUnknownFields is the idiomatic standard-library way
// to surface that without hand-rolling a second schema walk.
func Parse(src []byte) (*Config, error) {
	stripped := stripJSONC(src)
	dec := json.NewDecoder(bytes.NewReader(stripped))
	dec.DisallowUnknownFields()
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("invalid .oxlintrc.json: %w", err)
	}
	return &c, nil
}

const fileName = ".oxlintrc.json"

// Discoverer caches parsed configs by the directory they were discovered
// in, so Discover from many files under the same project tree parses each
// .oxlintrc.json once. Only the directory holding the config (or, when none
// is found, the filesystem root) is cached; intermediate directories are
// probed again on every call.
type Discoverer struct {
	cache *lru.Cache[string, *Config]
}

// NewDiscoverer creates a Discoverer with an LRU cache sized for size
// distinct directories; a typical batch run touches far fewer directories
// than files, so this stays small even for large repositories.
func NewDiscoverer(size int) (*Discoverer, error) {
	cache, err := lru.New[string, *Config](size)
	if err != nil {
		return nil, fmt.Errorf("creating config cache: %w", err)
	}
	return &Discoverer{cache: cache}, nil
}

// Discover walks upward from dir looking for .oxlintrc.json, returning the
// first one found (or nil, nil if none exists anywhere above dir).
func (d *Discoverer) Discover(dir string) (*Config, error) {
	dir = filepath.Clean(dir)
	for {
		if cached, ok := d.cache.Get(dir); ok {
			return cached, nil
		}
		candidate := filepath.Join(dir, fileName)
		if data, err := os.ReadFile(candidate); err == nil {
			cfg, err := Parse(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", candidate, err)
			}
			d.cache.Add(dir, cfg)
			return cfg, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			d.cache.Add(dir, nil)
			return nil, nil
		}
		dir = parent
	}
}
