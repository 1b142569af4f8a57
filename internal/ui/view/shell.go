// Package view provides the shared page shell for the notes site.
package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/notedown-dev/notedown/internal/ui/resources"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
)

// datastarCDN is the script powering SSE patches and the small
// client-side actions (sidebar toggle, live reload).
const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// PageData carries everything the shell needs to render a page.
type PageData struct {
	Title       string // page title, prefixed to the site title
	SiteTitle   string
	Theme       string // "light" or "dark"
	IsDev       bool   // enables the live-reload listener
	CurrentPath string
	Sidebar     g.Node
	Content     g.Node
}

// Shell renders a complete HTML document around the given content.
func Shell(d PageData) g.Node {
	title := d.SiteTitle
	if d.Title != "" {
		title = d.Title + " - " + d.SiteTitle
	}
	theme := d.Theme
	if theme == "" {
		theme = "light"
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			g.Attr("data-theme", theme),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href(resources.StaticPath("css/site.css"))),
				h.Script(h.Type("module"), h.Src(datastarCDN)),
				h.Script(h.Defer(), h.Src(resources.StaticPath("js/app.js"))),
			),
			h.Body(
				g.If(d.IsDev, g.Attr("data-on-load", "@get('/reload')")),
				header(d),
				h.Div(
					h.Class("layout"),
					d.Sidebar,
					h.Main(h.Class("content"), d.Content),
				),
			),
		),
	)
}

func header(d PageData) g.Node {
	nextTheme := "dark"
	if d.Theme == "dark" {
		nextTheme = "light"
	}

	return h.Header(
		h.Class("topbar"),
		sidebar.OpenButton(),
		h.A(h.Href("/"), h.Class("brand"), g.Text(d.SiteTitle)),
		h.Form(
			h.Class("search-form"),
			h.Action("/search"),
			h.Method("get"),
			h.Input(
				h.Type("search"),
				h.Name("q"),
				h.Placeholder("Search notes..."),
				g.Attr("aria-label", "Search notes"),
			),
		),
		h.Form(
			h.Class("theme-form"),
			h.Action("/theme"),
			h.Method("post"),
			h.Input(h.Type("hidden"), h.Name("theme"), h.Value(nextTheme)),
			h.Button(
				h.Type("submit"),
				h.Class("theme-toggle"),
				g.Attr("aria-label", "Toggle theme"),
				g.Text(themeGlyph(nextTheme)),
			),
		),
	)
}

func themeGlyph(next string) string {
	if next == "dark" {
		return "☾" // moon: switch to dark
	}
	return "☀" // sun: switch to light
}
