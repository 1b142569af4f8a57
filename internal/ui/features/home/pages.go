package home

import (
	"sort"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/nav"
)

// recentLimit caps the "recently updated" list on the landing page.
const recentLimit = 5

// Overview renders the landing page content.
func Overview(siteTitle string, lib *content.Library) g.Node {
	return h.Div(
		h.H1(g.Text(siteTitle)),
		h.P(
			h.Class("doc-meta"),
			g.Textf("%d notes across %d sections.", lib.Len(), len(lib.Sections)),
		),
		recentList(lib),
		g.Map(lib.Sections, sectionCard),
	)
}

func sectionCard(sec content.Section) g.Node {
	return h.Div(
		h.Class("section-card"),
		h.H2(g.Text(sec.Title)),
		h.Ul(
			g.Map(sec.Docs, func(d *content.Doc) g.Node {
				return h.Li(
					h.A(h.Href(nav.RoutePrefix+d.Slug), g.Text(d.Title)),
					g.If(d.Description != "",
						h.Span(h.Class("doc-meta"), g.Text(" — "+d.Description)),
					),
				)
			}),
		),
	)
}

func recentList(lib *content.Library) g.Node {
	docs := lib.Docs()
	if len(docs) == 0 {
		return h.P(g.Text("No notes yet. Add markdown files to the content directory."))
	}

	sorted := make([]*content.Doc, len(docs))
	copy(sorted, docs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}

	return h.Div(
		h.H2(g.Text("Recently updated")),
		h.Ul(
			g.Map(sorted, func(d *content.Doc) g.Node {
				return h.Li(
					h.A(h.Href(nav.RoutePrefix+d.Slug), g.Text(d.Title)),
					h.Span(h.Class("doc-meta"), g.Text(" "+d.UpdatedAt.Format("Jan 2, 2006"))),
				)
			}),
		),
	)
}
