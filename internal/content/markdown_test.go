package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererBasics(t *testing.T) {
	r := NewRenderer("")

	html, err := r.Render("## Hello World\n\nSome *emphasis*.\n")
	require.NoError(t, err)

	assert.Contains(t, html, `<h2 id="hello-world">Hello World</h2>`)
	assert.Contains(t, html, "<em>emphasis</em>")
}

func TestRendererGFMTable(t *testing.T) {
	r := NewRenderer("")

	html, err := r.Render("| A | B |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)

	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>1</td>")
}

func TestRendererCodeHighlighting(t *testing.T) {
	r := NewRenderer("github")

	html, err := r.Render("```go\nfunc main() {}\n```\n")
	require.NoError(t, err)

	// Chroma emits styled spans for recognized languages.
	assert.Contains(t, html, "<pre")
	assert.Contains(t, html, "main")
	assert.Contains(t, html, "<span")
}

func TestStripMDXHeader(t *testing.T) {
	input := `import Callout from '../components/Callout'
export const meta = { layout: 'note' }

# Real content

Text.
`
	got := StripMDXHeader(input)
	assert.NotContains(t, got, "import Callout")
	assert.NotContains(t, got, "export const")
	assert.Contains(t, got, "# Real content")
}
