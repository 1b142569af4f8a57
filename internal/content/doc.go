// Package content loads markdown notes from disk into an immutable,
// ordered library that the UI and the static builder render from.
package content

import "time"

// Doc is a single loaded note. Immutable after the scanner returns it.
type Doc struct {
	Title       string
	Slug        string
	Section     string
	Order       int
	Description string
	Tags        []string
	HTML        string // rendered body
	Raw         string // markdown body after frontmatter
	FilePath    string
	UpdatedAt   time.Time
}

// Section groups the docs of one content subdirectory in display order.
type Section struct {
	Title string
	Order int
	Docs  []*Doc
}

// Library is the full set of loaded notes.
type Library struct {
	Sections []Section
	bySlug   map[string]*Doc
}

// NewLibrary builds a library from already-ordered sections.
func NewLibrary(sections []Section) *Library {
	lib := &Library{Sections: sections, bySlug: make(map[string]*Doc)}
	for _, sec := range sections {
		for _, d := range sec.Docs {
			lib.bySlug[d.Slug] = d
		}
	}
	return lib
}

// Lookup returns the doc for a slug, or nil if the slug is unknown.
func (l *Library) Lookup(slug string) *Doc {
	if l == nil {
		return nil
	}
	return l.bySlug[slug]
}

// Docs returns all docs across sections in display order.
func (l *Library) Docs() []*Doc {
	if l == nil {
		return nil
	}
	var out []*Doc
	for _, sec := range l.Sections {
		out = append(out, sec.Docs...)
	}
	return out
}

// Len returns the number of loaded docs.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.bySlug)
}
