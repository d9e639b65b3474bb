// Package markdown presents the streamed itinerary buffer as a navigable
// document while it is still growing. Everything is recomputed from the full
// buffer on each update; itinerary text is short enough that rescans are fine.
package markdown

import (
	"regexp"
	"strings"
)

var (
	blankRuns     = regexp.MustCompile(`\n{3,}`)
	slugStrip     = regexp.MustCompile(`[^a-z0-9 -]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Normalize collapses runs of three or more consecutive newlines down to
// exactly one blank line.
func Normalize(s string) string {
	return blankRuns.ReplaceAllString(s, "\n\n")
}

// Slugify derives a stable anchor identifier from a heading title. The
// derivation is idempotent: slugs pass through unchanged.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	return slug
}

// Heading is one table-of-contents entry.
type Heading struct {
	Title string
	Slug  string
}

// ExtractTOC scans the buffer for second-level heading lines and returns
// their titles and slugs in document order.
func ExtractTOC(buffer string) []Heading {
	var toc []Heading
	for _, line := range strings.Split(buffer, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "## ") {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))
		if title == "" {
			continue
		}
		toc = append(toc, Heading{Title: title, Slug: Slugify(title)})
	}
	return toc
}

// Document is the derived view of one buffer snapshot.
type Document struct {
	Raw        string
	Normalized string
	TOC        []Heading
}

// Compose derives the full view from a buffer snapshot. Safe to call on
// partial markdown at any intermediate state.
func Compose(buffer string) Document {
	normalized := Normalize(buffer)
	return Document{
		Raw:        buffer,
		Normalized: normalized,
		TOC:        ExtractTOC(normalized),
	}
}
