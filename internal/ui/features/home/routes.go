// Package home provides the landing page and reader preferences.
package home

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(
	router chi.Router,
	store *content.Store,
	sessionStore sessions.Store,
	presenter *sidebar.Presenter,
	siteTitle string,
	isDev bool,
	logger *slog.Logger,
) error {
	handlers := NewHandlers(store, sessionStore, presenter, siteTitle, isDev, logger)

	router.Get("/", handlers.HomePage)
	router.Post("/theme", handlers.ThemeToggle)

	return nil
}
