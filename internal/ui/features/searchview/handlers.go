package searchview

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/nav"
	"github.com/notedown-dev/notedown/internal/search"
	"github.com/notedown-dev/notedown/internal/ui/features/common"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
	"github.com/notedown-dev/notedown/internal/ui/view"
)

// resultLimit caps how many hits a single results page shows.
const resultLimit = 25

// Handlers provides HTTP handlers for the search results page.
type Handlers struct {
	store        *content.Store
	index        *search.Index
	sessionStore sessions.Store
	presenter    *sidebar.Presenter
	siteTitle    string
	isDev        bool
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	store *content.Store,
	index *search.Index,
	sessionStore sessions.Store,
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
		index:        index,
		sessionStore: sessionStore,
		presenter:    presenter,
		siteTitle:    siteTitle,
		isDev:        isDev,
		logger:       logger,
	}
}

// SearchPage runs the query from ?q= and renders the results.
func (h *Handlers) SearchPage(w http.ResponseWriter, r *http.Request) {
	h.presenter.NavigationCommit()

	query := r.URL.Query().Get("q")

	results, err := h.index.Query(query, resultLimit)
	if err != nil {
		h.logger.Error("search failed", "query", query, "error", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	lib := h.store.Library()
	page := view.PageData{
		Title:       "Search",
		SiteTitle:   h.siteTitle,
		Theme:       common.Theme(h.sessionStore, r),
		IsDev:       h.isDev,
		CurrentPath: r.URL.Path,
		Sidebar:     h.presenter.View(nav.Build(lib), r.URL.Path),
		Content:     Results(query, results),
	}

	if err := view.Shell(page).Render(w); err != nil {
		h.logger.Error("failed to render search page", "error", err)
	}
}
