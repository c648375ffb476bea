package icon

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/radchenko/landing/internal/platform/icons"
	"github.com/stretchr/testify/require"
)

func TestSVGRendersCatalogPaths(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, SVG(icons.ArrowDown, "w-6 h-6").Render(&buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	svg := doc.Find("svg")
	require.Equal(t, 1, svg.Length())
	require.Equal(t, "true", svg.AttrOr("aria-hidden", ""))
	require.Equal(t, "arrow-down", svg.AttrOr("data-icon", ""))
	require.Equal(t, "shrink-0 w-6 h-6", svg.AttrOr("class", ""))
	require.Equal(t, "M19 14l-7 7m0 0l-7-7m7 7V3", svg.Find("path").AttrOr("d", ""))
}

func TestSVGUnknownIDRendersNothing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, SVG("missing", "w-6").Render(&buf))
	require.Empty(t, strings.TrimSpace(buf.String()))
}
