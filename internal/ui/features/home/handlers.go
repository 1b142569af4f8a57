package home

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/nav"
	"github.com/notedown-dev/notedown/internal/ui/features/common"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
	"github.com/notedown-dev/notedown/internal/ui/view"
)

// Handlers provides HTTP handlers for the landing page and reader
// preferences.
type Handlers struct {
	store        *content.Store
	sessionStore sessions.Store
	presenter    *sidebar.Presenter
	siteTitle    string
	isDev        bool
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	store *content.Store,
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
		sessionStore: sessionStore,
		presenter:    presenter,
		siteTitle:    siteTitle,
		isDev:        isDev,
		logger:       logger,
	}
}

// HomePage renders the landing page with the section overview.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	h.presenter.NavigationCommit()

	lib := h.store.Library()
	sections := nav.Build(lib)

	page := view.PageData{
		SiteTitle:   h.siteTitle,
		Theme:       common.Theme(h.sessionStore, r),
		IsDev:       h.isDev,
		CurrentPath: r.URL.Path,
		Sidebar:     h.presenter.View(sections, r.URL.Path),
		Content:     Overview(h.siteTitle, lib),
	}

	if err := view.Shell(page).Render(w); err != nil {
		h.logger.Error("failed to render home page", "error", err)
	}
}

// ThemeToggle persists the posted theme preference and sends the
// reader back to the page they were on.
func (h *Handlers) ThemeToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	theme := r.PostFormValue("theme")
	if err := common.SaveTheme(h.sessionStore, w, r, theme); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, common.RefererPath(r), http.StatusSeeOther)
}
