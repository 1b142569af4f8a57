package sidebar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notedown-dev/notedown/internal/nav"
)

func testSections() []nav.Section {
	return []nav.Section{
		{
			Title: "TypeScript",
			Items: []nav.Item{
				{Title: "Basics", Slug: "typescript/basics"},
				{Title: "Generics", Slug: "typescript/generics"},
			},
		},
		{
			Title: "Rust",
			Items: []nav.Item{
				{Title: "Ownership", Slug: "rust/ownership"},
			},
		},
	}
}

func renderToString(t *testing.T, sections []nav.Section, currentPath string, state OverlayState) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Render(sections, currentPath, state).Render(&sb))
	return sb.String()
}

func TestRender_ActiveItemIsExclusive(t *testing.T) {
	sections := testSections()

	for _, sec := range sections {
		for _, it := range sec.Items {
			out := renderToString(t, sections, "/docs/"+it.Slug, OverlayClosed)

			assert.Equal(t, 1, strings.Count(out, `class="sidebar-link active"`),
				"exactly one active link for %s", it.Slug)
			assert.Contains(t, out,
				`<a href="/docs/`+it.Slug+`" class="sidebar-link active">`)
		}
	}
}

func TestRender_NoActiveItemForUnknownPath(t *testing.T) {
	out := renderToString(t, testSections(), "/docs/nope", OverlayClosed)
	assert.NotContains(t, out, "sidebar-link active")
}

func TestRender_ActiveRequiresFullPathEquality(t *testing.T) {
	// A prefix of a real route must not highlight it.
	out := renderToString(t, testSections(), "/docs/typescript", OverlayClosed)
	assert.NotContains(t, out, "sidebar-link active")
}

func TestRender_ScenarioGoIntro(t *testing.T) {
	sections := []nav.Section{
		{Title: "Go", Items: []nav.Item{{Title: "Intro", Slug: "go/intro"}}},
	}

	out := renderToString(t, sections, "/docs/go/intro", OverlayClosed)

	assert.Contains(t, out, `<a href="/docs/go/intro" class="sidebar-link active">Intro</a>`)
	assert.Equal(t, 1, strings.Count(out, "active"))
}

func TestRender_OverlayMountedOnlyWhileOpen(t *testing.T) {
	sections := testSections()

	closed := renderToString(t, sections, "/", OverlayClosed)
	assert.NotContains(t, closed, "sidebar-scrim")
	assert.NotContains(t, closed, "sidebar-overlay")
	assert.Contains(t, closed, "sidebar-desktop", "desktop panel always renders")

	open := renderToString(t, sections, "/", OverlayOpen)
	assert.Contains(t, open, "sidebar-scrim")
	assert.Contains(t, open, "sidebar-overlay")
	assert.Contains(t, open, "sidebar-desktop")
	assert.Contains(t, open, `aria-label="Close menu"`)
}

func TestPresenter_InitialStateClosed(t *testing.T) {
	p := NewPresenter()
	assert.False(t, p.IsOpen())
	assert.Equal(t, OverlayClosed, p.State())
}

func TestPresenter_OpenCloseRoundTrip(t *testing.T) {
	p := NewPresenter()

	p.Open()
	assert.True(t, p.IsOpen())

	p.Close()
	assert.False(t, p.IsOpen())
}

func TestPresenter_CloseWhenClosedIsNoop(t *testing.T) {
	p := NewPresenter()
	p.Close()
	p.Close()
	assert.False(t, p.IsOpen())
}

func TestPresenter_OpenTwiceStaysOpen(t *testing.T) {
	p := NewPresenter()
	p.Open()
	p.Open()
	assert.True(t, p.IsOpen())
}

func TestPresenter_NavigationCommitClosesOverlay(t *testing.T) {
	p := NewPresenter()
	p.Open()

	// Following any rendered link commits a navigation.
	p.NavigationCommit()

	assert.False(t, p.IsOpen())
}

func TestPresenter_ViewReflectsState(t *testing.T) {
	p := NewPresenter()
	sections := testSections()

	var sb strings.Builder
	require.NoError(t, p.View(sections, "/").Render(&sb))
	assert.NotContains(t, sb.String(), "sidebar-scrim")

	p.Open()
	sb.Reset()
	require.NoError(t, p.View(sections, "/").Render(&sb))
	assert.Contains(t, sb.String(), "sidebar-scrim")
}

func TestOpenButton(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, OpenButton().Render(&sb))
	assert.Contains(t, sb.String(), `aria-label="Open menu"`)
	assert.Contains(t, sb.String(), "@post('/sidebar/open')")
}
