package searchview

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/notedown-dev/notedown/internal/nav"
	"github.com/notedown-dev/notedown/internal/search"
)

// Results renders the search results page content.
func Results(query string, results []search.Result) g.Node {
	if query == "" {
		return h.Div(
			h.H1(g.Text("Search")),
			h.P(g.Text("Type a query in the search box above.")),
		)
	}

	return h.Div(
		h.H1(g.Textf("Results for %q", query)),
		h.P(h.Class("doc-meta"), g.Textf("%d matching notes", len(results))),
		g.If(len(results) == 0,
			h.P(g.Text("Nothing matched. Try fewer or different words.")),
		),
		g.Map(results, result),
	)
}

func result(r search.Result) g.Node {
	return h.Div(
		h.Class("search-result"),
		h.H3(h.A(h.Href(nav.RoutePrefix+r.Slug), g.Text(r.Title))),
		h.P(
			// The snippet carries <mark> markup produced by the index.
			g.Raw(r.Snippet),
		),
		h.Span(h.Class("doc-meta"), g.Text(r.Section)),
	)
}
