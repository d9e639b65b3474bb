package markdown

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCollapsesBlankRuns(t *testing.T) {
	assert.Equal(t, "A\n\nB", Normalize("A\n\n\n\nB"))
	assert.Equal(t, "A\n\nB", Normalize("A\n\n\nB"))
	assert.Equal(t, "A\n\nB", Normalize("A\n\nB"))
	assert.Equal(t, "A\nB", Normalize("A\nB"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "local-transportation", Slugify("Local Transportation!!"))
	assert.Equal(t, "food-dining", Slugify("Food & Dining"))
	assert.Equal(t, "day-by-day-itinerary", Slugify("Day-by-Day Itinerary"))
	assert.Equal(t, "budget-breakdown", Slugify("  Budget   Breakdown  "))
}

func TestSlugifyIdempotent(t *testing.T) {
	first := Slugify("Local Transportation!!")
	assert.Equal(t, "local-transportation", first)
	assert.Equal(t, first, Slugify(first))
}

func TestExtractTOC(t *testing.T) {
	buffer := "# Trip Overview\n" +
		"Some intro text.\n\n" +
		"## Day-by-Day Itinerary\n" +
		"- Morning\n\n" +
		"### Day 1\n" +
		"## Food & Dining\n" +
		"##\n" +
		"## Travel Tips\n"

	toc := ExtractTOC(buffer)
	require.Len(t, toc, 3)
	assert.Equal(t, Heading{Title: "Day-by-Day Itinerary", Slug: "day-by-day-itinerary"}, toc[0])
	assert.Equal(t, Heading{Title: "Food & Dining", Slug: "food-dining"}, toc[1])
	assert.Equal(t, Heading{Title: "Travel Tips", Slug: "travel-tips"}, toc[2])
}

func TestComposeRecomputesFromScratch(t *testing.T) {
	doc := Compose("# Trip\n\n\n\n## Accommodations\ntext")
	assert.Equal(t, "# Trip\n\n## Accommodations\ntext", doc.Normalized)
	require.Len(t, doc.TOC, 1)
	assert.Equal(t, "accommodations", doc.TOC[0].Slug)
}

func TestRenderToleratesPartialMarkdown(t *testing.T) {
	partials := []string{
		"",
		"#",
		"# Trip Over",
		"## Day 1\n- Morning act",
		"**bold with no clos",
		"| a | b\n| -",
	}
	for _, partial := range partials {
		out, err := Render(partial)
		require.NoError(t, err)
		_ = out
	}
}

func TestRenderProducesHeadings(t *testing.T) {
	out, err := Render("## Travel Tips\n\nPack light.")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h2>Travel Tips</h2>")
}

func TestExportRaw(t *testing.T) {
	exp := NewExport("# Trip\nVisit X")
	var buf bytes.Buffer
	require.NoError(t, exp.Raw(&buf))
	assert.Equal(t, "# Trip\nVisit X", buf.String())
}

func TestExportSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.md")
	exp := NewExport("## Accommodations\n- Hotel A")
	require.NoError(t, exp.SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## Accommodations\n- Hotel A", string(data))
}

func TestExportHTMLDocument(t *testing.T) {
	exp := NewExport("# My Trip\n\nHello")
	var buf bytes.Buffer
	require.NoError(t, exp.HTMLDocument(&buf, "Goa Trip"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Goa Trip</title>")
	assert.Contains(t, out, "<h1>My Trip</h1>")
}
