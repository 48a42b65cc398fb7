package partial_loader

// HTMLLoader extracts every inline <script> block in an ordinary .html
// host, with no frontmatter concept (that's .astro-specific).
type HTMLLoader struct{}

func (HTMLLoader) Extract(hostPath string, contents string) ([]Region, error) {
	return scriptBlocks(hostPath, contents, 0), nil
}

// SingleScriptLoader implements the .vue/.svelte hosts: exactly one
// <script> block is meaningful (a second one, if present, is a malformed
// file as far as this loader is concerned and is ignored rather than
// guessed at).
type SingleScriptLoader struct{}

func (SingleScriptLoader) Extract(hostPath string, contents string) ([]Region, error) {
	regions := scriptBlocks(hostPath, contents, 0)
	if len(regions) > 1 {
		regions = regions[:1]
	}
	return regions, nil
}
