package partial_loader

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
)

// TreeSitterExtract re-parses host with the HTML grammar and returns one
// Region per script_element's raw_text child. Unlike scriptBlocks it does
// not read the tag's lang attribute, so every Region it returns has the
// language of an attribute-less <script>. None of the loaders in this
// package call it; AstroLoader, SingleScriptLoader and HTMLLoader use
// scriptBlocks only.
func TreeSitterExtract(hostPath string, contents string) ([]Region, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(html.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(contents))
	if err != nil {
		return nil, fmt.Errorf("parsing %s as HTML for script extraction: %w", hostPath, err)
	}

	var regions []Region
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.Type() == "script_element" {
			if raw := findRawText(n); raw != nil {
				regions = append(regions, region(hostPath, contents, int(raw.StartByte()), int(raw.EndByte()), ""))
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(tree.RootNode())
	return regions, nil
}

func findRawText(scriptElement *sitter.Node) *sitter.Node {
	for i := 0; i < int(scriptElement.ChildCount()); i++ {
		child := scriptElement.Child(i)
		if child.Type() == "raw_text" {
			return child
		}
	}
	return nil
}
