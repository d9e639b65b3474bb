package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Render converts the normalized buffer to HTML. Incomplete structures (an
// unterminated heading or list mid-stream) render as best-effort content;
// the parser never rejects partial input.
func Render(buffer string) ([]byte, error) {
	var out bytes.Buffer
	if err := md.Convert([]byte(Normalize(buffer)), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
