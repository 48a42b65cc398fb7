// Package resolver answers one narrow question for the linter: does a
// module specifier resolve to something on disk? It is not a general
// bundler resolver (package.json "exports" maps, tsconfig "paths", node_modules
// walk-up) — only the has-module-lookup surface rules like
// import/no-unresolved need.
package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// extensions is the order node-style resolution tries when a specifier has
// no extension of its own.
var extensions = []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs", ".d.ts"}

// Resolver answers whether a specifier imported from fromDir exists.
// Implementations never error: an unresolvable specifier is reported as
// false, which the caller turns into a lint diagnostic, not a fatal error.
type Resolver interface {
	HasModule(fromDir, specifier string) bool
}

// FS resolves specifiers against the real filesystem. It only handles
// relative specifiers ("./x", "../x"); bare specifiers ("react",
// "@scope/pkg") are assumed to resolve (node_modules resolution is out of
// scope here) unless NoBarePackages is set, matching the common case where
// a lint run only cares about catching broken relative imports.
type FS struct {
	NoBarePackages bool
}

func (r FS) HasModule(fromDir, specifier string) bool {
	if !strings.HasPrefix(specifier, ".") {
		return !r.NoBarePackages
	}

	candidate := filepath.Join(fromDir, specifier)
	if fileExists(candidate) {
		return true
	}
	for _, ext := range extensions {
		if fileExists(candidate + ext) {
			return true
		}
	}
	for _, ext := range extensions {
		if fileExists(filepath.Join(candidate, "index"+ext)) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
