package content

import (
	"bytes"
	"fmt"
	"strings"

	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts note markdown into HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds the goldmark pipeline used for all notes.
// The highlight style applies to fenced code blocks.
func NewRenderer(highlightStyle string) *Renderer {
	if highlightStyle == "" {
		highlightStyle = "github"
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Notes embed raw HTML (and MDX passes JSX through as-is).
			html.WithUnsafe(),
		),
	)

	return &Renderer{md: md}
}

// Render converts markdown to HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// StripMDXHeader removes the leading ESM import/export lines an .mdx
// file may carry so the rest renders as plain markdown. Lines inside
// the body are left alone.
func StripMDXHeader(body string) string {
	lines := strings.Split(body, "\n")
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" ||
			strings.HasPrefix(trimmed, "import ") ||
			strings.HasPrefix(trimmed, "export ") {
			i++
			continue
		}
		break
	}
	return strings.Join(lines[i:], "\n")
}
