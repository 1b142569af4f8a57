// Package searchview provides the full-text search results page.
package searchview

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/search"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
)

// SetupRoutes configures routes for the search feature.
func SetupRoutes(
	router chi.Router,
	store *content.Store,
	index *search.Index,
	sessionStore sessions.Store,
	presenter *sidebar.Presenter,
	siteTitle string,
	isDev bool,
	logger *slog.Logger,
) error {
	handlers := NewHandlers(store, index, sessionStore, presenter, siteTitle, isDev, logger)

	router.Get("/search", handlers.SearchPage)

	return nil
}
