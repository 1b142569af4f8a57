// Package docs provides the note pages and the sidebar overlay
// controls.
package docs

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/ui/notifier"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
)

// SetupRoutes configures routes for the docs feature.
func SetupRoutes(
	router chi.Router,
	store *content.Store,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	presenter *sidebar.Presenter,
	siteTitle string,
	isDev bool,
	logger *slog.Logger,
) error {
	handlers := NewHandlers(store, sessionStore, notify, presenter, siteTitle, isDev, logger)

	router.Get("/docs/*", handlers.DocPage)
	router.Post("/sidebar/open", handlers.SidebarOpen)
	router.Post("/sidebar/close", handlers.SidebarClose)
	router.Get("/updates", handlers.Updates)

	return nil
}
