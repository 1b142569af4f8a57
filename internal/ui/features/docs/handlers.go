package docs

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/nav"
	"github.com/notedown-dev/notedown/internal/ui/features/common"
	"github.com/notedown-dev/notedown/internal/ui/notifier"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
	"github.com/notedown-dev/notedown/internal/ui/view"
)

// Handlers provides HTTP handlers for note pages and the sidebar
// overlay controls.
type Handlers struct {
	store        *content.Store
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	presenter    *sidebar.Presenter
	siteTitle    string
	isDev        bool
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	store *content.Store,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	presenter *sidebar.Presenter,
	siteTitle string,
	isDev bool,
	logger *slog.Logger,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		store:        store,
		sessionStore: sessionStore,
		notifier:     notify,
		presenter:    presenter,
		siteTitle:    siteTitle,
		isDev:        isDev,
		logger:       logger,
	}
}

// DocPage renders one note. The wildcard carries the full slug path,
// e.g. /docs/go/intro -> "go/intro".
func (h *Handlers) DocPage(w http.ResponseWriter, r *http.Request) {
	// Arriving here is a navigation commit: the overlay (if it was
	// open on the previous page) closes.
	h.presenter.NavigationCommit()

	lib := h.store.Library()
	slug := chi.URLParam(r, "*")
	doc := lib.Lookup(slug)

	sections := nav.Build(lib)
	shell := view.PageData{
		SiteTitle:   h.siteTitle,
		Theme:       common.Theme(h.sessionStore, r),
		IsDev:       h.isDev,
		CurrentPath: r.URL.Path,
		Sidebar:     h.presenter.View(sections, r.URL.Path),
	}

	if doc == nil {
		shell.Title = "Not found"
		shell.Content = NotFound(slug)
		w.WriteHeader(http.StatusNotFound)
		if err := view.Shell(shell).Render(w); err != nil {
			h.logger.Error("failed to render not-found page", "slug", slug, "error", err)
		}
		return
	}

	shell.Title = doc.Title
	shell.Content = Article(doc)
	if err := view.Shell(shell).Render(w); err != nil {
		h.logger.Error("failed to render note page", "slug", slug, "error", err)
	}
}

// SidebarOpen mounts the mobile overlay and patches the sidebar region.
func (h *Handlers) SidebarOpen(w http.ResponseWriter, r *http.Request) {
	h.presenter.Open()
	h.patchSidebar(w, r)
}

// SidebarClose dismisses the overlay (close control or scrim).
func (h *Handlers) SidebarClose(w http.ResponseWriter, r *http.Request) {
	h.presenter.Close()
	h.patchSidebar(w, r)
}

func (h *Handlers) patchSidebar(w http.ResponseWriter, r *http.Request) {
	currentPath := common.RefererPath(r)
	sections := nav.Build(h.store.Library())

	html, err := view.String(h.presenter.View(sections, currentPath))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElements(html); err != nil {
		h.logger.Error("failed to patch sidebar", "error", err)
	}
}

// Updates is the long-lived SSE endpoint a note page subscribes to.
// When the watcher reloads content, the article and sidebar regions
// are re-rendered in place.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := h.sendDocView(sse, slug); err != nil {
				_ = sse.ConsoleError(err)
				// Keep the stream alive; the next update may succeed.
			}
		}
	}
}

func (h *Handlers) sendDocView(sse *datastar.ServerSentEventGenerator, slug string) error {
	lib := h.store.Library()
	currentPath := nav.RoutePrefix + slug

	sidebarHTML, err := view.String(h.presenter.View(nav.Build(lib), currentPath))
	if err != nil {
		return err
	}
	if err := sse.PatchElements(sidebarHTML); err != nil {
		return err
	}

	doc := lib.Lookup(slug)
	if doc == nil {
		// The note was deleted out from under the page; a full reload
		// routes the reader to the 404 page.
		return sse.ExecuteScript("window.location.reload()")
	}

	articleHTML, err := view.String(Article(doc))
	if err != nil {
		return err
	}
	return sse.PatchElements(articleHTML)
}
