package docs

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/notedown-dev/notedown/internal/content"
)

// ArticleID is the id of the patchable article region.
const ArticleID = "doc-content"

// Article renders one note's body with its metadata line. The region
// subscribes to /updates so edits on disk patch it in place.
func Article(doc *content.Doc) g.Node {
	return h.Div(
		h.ID(ArticleID),
		g.Attr("data-on-load", "@get('/updates?slug="+doc.Slug+"')"),
		articleBody(doc),
	)
}

// StaticArticle renders the same region without the live-update
// subscription, for static exports.
func StaticArticle(doc *content.Doc) g.Node {
	return h.Div(
		h.ID(ArticleID),
		articleBody(doc),
	)
}

func articleBody(doc *content.Doc) g.Node {
	return h.Article(
		h.H1(g.Text(doc.Title)),
		h.Div(
			h.Class("doc-meta"),
			g.Text("Updated "+doc.UpdatedAt.Format("Jan 2, 2006")),
			g.If(len(doc.Tags) > 0, tagList(doc.Tags)),
		),
		g.Raw(doc.HTML),
	)
}

// NotFound renders the missing-note page.
func NotFound(slug string) g.Node {
	return h.Div(
		h.ID(ArticleID),
		h.Article(
			h.H1(g.Text("Note not found")),
			h.P(
				g.Text("There is no note at "),
				h.Code(g.Text("/docs/"+slug)),
				g.Text("."),
			),
			h.P(h.A(h.Href("/"), g.Text("Back to the overview"))),
		),
	)
}

func tagList(tags []string) g.Node {
	return h.Span(
		h.Class("doc-tags"),
		g.Map(tags, func(tag string) g.Node {
			return h.Span(g.Text(tag))
		}),
	)
}
