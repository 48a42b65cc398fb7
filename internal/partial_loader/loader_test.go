package partial_loader_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/logger"
	"github.com/oxc-go/oxc/internal/partial_loader"
)

func TestAstroExtractsFrontmatterAndScriptBlocks(t *testing.T) {
	host := "---\nconst x = 1;\n---\n<div>\n<script>const y = 2;</script>\n<script lang=\"ts\">const z: number = 3;</script>\n</div>\n"
	regions, err := partial_loader.AstroLoader{}.Extract("page.astro", host)
	require.NoError(t, err)
	require.Len(t, regions, 3)

	require.Contains(t, regions[0].Source.Contents, "const x = 1;")
	require.Contains(t, regions[1].Source.Contents, "const y = 2;")
	require.Contains(t, regions[2].Source.Contents, "const z: number = 3;")
	require.Equal(t, js_ast.LanguageTS, regions[2].SourceType.Language)

	for _, r := range regions {
		require.Equal(t, "page.astro", r.Source.HostPath)
		require.True(t, r.Source.HostOffset > 0)
	}
}

func TestSingleScriptLoaderTakesOnlyFirstBlock(t *testing.T) {
	host := "<template></template>\n<script>const a = 1;</script>\n<script>const b = 2;</script>"
	regions, err := partial_loader.SingleScriptLoader{}.Extract("App.vue", host)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	require.Contains(t, regions[0].Source.Contents, "const a = 1;")
}

func TestHostOffsetRemapsToOriginalFile(t *testing.T) {
	host := "<html><script>const a = 1;</script></html>"
	regions, err := partial_loader.HTMLLoader{}.Extract("index.html", host)
	require.NoError(t, err)
	require.Len(t, regions, 1)

	region := regions[0]
	hostOffset := region.Source.ToHostOffset(logger.Loc{Start: 0})
	require.Equal(t, region.Source.HostOffset, hostOffset)
}

func TestForExtensionDispatch(t *testing.T) {
	require.IsType(t, partial_loader.AstroLoader{}, partial_loader.ForExtension(".astro"))
	require.IsType(t, partial_loader.SingleScriptLoader{}, partial_loader.ForExtension(".vue"))
	require.IsType(t, partial_loader.HTMLLoader{}, partial_loader.ForExtension(".html"))
	require.Nil(t, partial_loader.ForExtension(".js"))
}
