// Package partial_loader extracts embedded JavaScript/TypeScript regions
// from a non-JS host file so the rest of the pipeline can lint each region
// as a standalone unit and remap its diagnostics back to host-file byte
// offsets. Supported hosts, by extension: .astro (frontmatter fence plus
// every <script> block in the template body), .vue/.svelte (one <script>
// block), .html (every <script> block).
package partial_loader

import (
	"fmt"
	"strings"

	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/logger"
)

// Region is one embedded script extracted from a host file: a Source ready
// to hand to js_parser.Parse, already carrying HostOffset/HostPath so any
// diagnostic Loc produced while lexing/parsing it can be translated back to
// the host file via Source.ToHostOffset.
type Region struct {
	Source     logger.Source
	SourceType js_ast.SourceType
}

// Loader extracts every embedded script Region from one host file's
// contents.
type Loader interface {
	Extract(hostPath string, contents string) ([]Region, error)
}

// ForExtension returns the Loader registered for a host file's extension
// (case-insensitively, including the leading dot), or nil if the
// extension isn't one of the supported partial-loader hosts.
func ForExtension(ext string) Loader {
	switch strings.ToLower(ext) {
	case ".astro":
		return AstroLoader{}
	case ".vue", ".svelte":
		return SingleScriptLoader{}
	case ".html", ".htm":
		return HTMLLoader{}
	}
	return nil
}

// region builds a Region for the script text between [start, end) in host,
// picking a TS/JSX-aware SourceType from the <script> tag's own attributes
// (lang="ts", setup, etc. aren't modeled individually — only `lang` is,
// since that's the one attribute that changes which grammar to parse with).
func region(hostPath, host string, start, end int, tagAttrs string) Region {
	sourceType := js_ast.SourceType{IsModule: true}
	if strings.Contains(tagAttrs, `lang="ts"`) || strings.Contains(tagAttrs, `lang='ts'`) {
		sourceType.Language = js_ast.LanguageTS
	}
	if strings.Contains(tagAttrs, `lang="tsx"`) || strings.Contains(tagAttrs, `lang='tsx'`) {
		sourceType.Language = js_ast.LanguageTS
		sourceType.TSX = true
	}
	return Region{
		SourceType: sourceType,
		Source: logger.Source{
			PrettyPath: fmt.Sprintf("%s[%d:%d]", hostPath, start, end),
			Contents:   host[start:end],
			HostOffset: int32(start),
			HostPath:   hostPath,
		},
	}
}

// scriptBlocks finds every well-formed <script ...>...</script> block in
// host starting at or after from, returning one Region per block. A
// <script> tag with no matching </script> (malformed host markup) ends the
// scan: that block and any after it are not returned. No loader calls
// TreeSitterExtract for the remainder.
func scriptBlocks(hostPath, host string, from int) []Region {
	var regions []Region
	pos := from
	for {
		openStart := indexFrom(host, "<script", pos)
		if openStart < 0 {
			break
		}
		tagEnd := indexFrom(host, ">", openStart)
		if tagEnd < 0 {
			break
		}
		attrs := host[openStart:tagEnd]
		if strings.HasSuffix(strings.TrimSpace(attrs), "/") {
			// self-closing <script src="..." />: no inline body to extract
			pos = tagEnd + 1
			continue
		}
		bodyStart := tagEnd + 1
		closeStart := indexFrom(host, "</script>", bodyStart)
		if closeStart < 0 {
			// Unterminated tag; stop the delimiter scan here and return
			// only the blocks found so far.
			break
		}
		regions = append(regions, region(hostPath, host, bodyStart, closeStart, attrs))
		pos = closeStart + len("</script>")
	}
	return regions
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}
