package partial_loader

import "strings"

// AstroLoader implements the .astro host: an optional frontmatter fence
// ("---\n...\n---") at the top of the file, treated as one module-scope
// region, plus every <script> block in the template body beneath it, each
// yielded as its own independently-remapped region.
type AstroLoader struct{}

func (AstroLoader) Extract(hostPath string, contents string) ([]Region, error) {
	var regions []Region
	bodyStart := 0

	if strings.HasPrefix(contents, "---") {
		fenceEnd := strings.Index(contents[3:], "---")
		if fenceEnd >= 0 {
			start := 3
			end := 3 + fenceEnd
			regions = append(regions, region(hostPath, contents, start, end, ""))
			bodyStart = end + 3
		}
	}

	regions = append(regions, scriptBlocks(hostPath, contents, bodyStart)...)
	return regions, nil
}
