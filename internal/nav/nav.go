// Package nav builds the navigation model for the notes site.
// Sections and items are loaded once per library load and treated as
// read-only by everything that renders them.
package nav

import "github.com/notedown-dev/notedown/internal/content"

// RoutePrefix is the path prefix under which all notes are served.
const RoutePrefix = "/docs/"

// Item is a single navigable note link.
type Item struct {
	Title string
	Slug  string
}

// Section groups items under a display label.
type Section struct {
	Title string
	Items []Item
}

// Route returns the page path for the item, derived from its slug.
func (i Item) Route() string {
	return RoutePrefix + i.Slug
}

// IsActive reports whether the item is the one currently displayed.
// Pure derivation from the current path; nothing is stored.
func (i Item) IsActive(currentPath string) bool {
	return currentPath == i.Route()
}

// Build converts a loaded library into the ordered section list.
// Section and item order follow the library's ordering rules.
func Build(lib *content.Library) []Section {
	if lib == nil {
		return nil
	}

	sections := make([]Section, 0, len(lib.Sections))
	for _, sec := range lib.Sections {
		items := make([]Item, 0, len(sec.Docs))
		for _, d := range sec.Docs {
			items = append(items, Item{Title: d.Title, Slug: d.Slug})
		}
		sections = append(sections, Section{Title: sec.Title, Items: items})
	}
	return sections
}
