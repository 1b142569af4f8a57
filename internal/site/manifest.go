package site

import (
	"time"

	"github.com/google/uuid"

	"github.com/notedown-dev/notedown/internal/content"
)

// Manifest describes one static export of the site. It is written to
// manifest.json at the root of the output directory so deploy tooling
// can tell builds apart.
type Manifest struct {
	BuildID     string    `json:"build_id"`
	SiteTitle   string    `json:"site_title"`
	GeneratedAt time.Time `json:"generated_at"`
	Pages       []PageRef `json:"pages"`
	Stats       Stats     `json:"stats"`
}

// PageRef identifies a single exported note page.
type PageRef struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Section string `json:"section"`
	Path    string `json:"path"` // output path relative to the export root
}

// Stats contains counts for the exported site.
type Stats struct {
	SectionCount int `json:"section_count"`
	NoteCount    int `json:"note_count"`
	TagCount     int `json:"tag_count"`
}

// GenerateManifest builds a Manifest from the loaded library.
func GenerateManifest(siteTitle string, lib *content.Library) *Manifest {
	m := &Manifest{
		BuildID:     uuid.NewString(),
		SiteTitle:   siteTitle,
		GeneratedAt: time.Now().UTC(),
		Pages:       []PageRef{},
	}

	tags := make(map[string]bool)
	for _, sec := range lib.Sections {
		for _, doc := range sec.Docs {
			m.Pages = append(m.Pages, PageRef{
				Title:   doc.Title,
				Slug:    doc.Slug,
				Section: sec.Title,
				Path:    "docs/" + doc.Slug + "/index.html",
			})
			for _, t := range doc.Tags {
				tags[t] = true
			}
		}
	}

	m.Stats = Stats{
		SectionCount: len(lib.Sections),
		NoteCount:    len(m.Pages),
		TagCount:     len(tags),
	}
	return m
}
