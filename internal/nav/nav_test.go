package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notedown-dev/notedown/internal/content"
)

func testLibrary() *content.Library {
	return content.NewLibrary([]content.Section{
		{
			Title: "Go",
			Docs: []*content.Doc{
				{Title: "Intro", Slug: "go/intro"},
				{Title: "Generics", Slug: "go/generics"},
			},
		},
		{
			Title: "Rust",
			Docs: []*content.Doc{
				{Title: "Ownership", Slug: "rust/ownership"},
			},
		},
	})
}

func TestBuild(t *testing.T) {
	sections := Build(testLibrary())

	require.Len(t, sections, 2)
	assert.Equal(t, "Go", sections[0].Title)
	require.Len(t, sections[0].Items, 2)
	assert.Equal(t, Item{Title: "Intro", Slug: "go/intro"}, sections[0].Items[0])
}

func TestItemRoute(t *testing.T) {
	it := Item{Title: "Intro", Slug: "go/intro"}
	assert.Equal(t, "/docs/go/intro", it.Route())
}

func TestItemIsActive(t *testing.T) {
	it := Item{Title: "Intro", Slug: "go/intro"}

	assert.True(t, it.IsActive("/docs/go/intro"))
	assert.False(t, it.IsActive("/docs/go/intro2"))
	assert.False(t, it.IsActive("/docs/go"))
	assert.False(t, it.IsActive("/docs/go/intro/"))
	assert.False(t, it.IsActive("/"))
	assert.False(t, it.IsActive(""))
}
