// Package router sets up HTTP routes for the notes site server.
package router

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/search"
	docsFeature "github.com/notedown-dev/notedown/internal/ui/features/docs"
	homeFeature "github.com/notedown-dev/notedown/internal/ui/features/home"
	searchFeature "github.com/notedown-dev/notedown/internal/ui/features/searchview"
	"github.com/notedown-dev/notedown/internal/ui/notifier"
	"github.com/notedown-dev/notedown/internal/ui/resources"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
)

// Deps bundles what the feature routes need.
type Deps struct {
	Store        *content.Store
	Index        *search.Index
	SessionStore sessions.Store
	Notifier     *notifier.Notifier
	Presenter    *sidebar.Presenter
	SiteTitle    string
	IsDev        bool
	Logger       *slog.Logger
}

// SetupRoutes configures all routes for the site server.
func SetupRoutes(router chi.Router, d Deps) error {
	// Hot reload endpoint for dev mode
	if d.IsDev {
		setupReload(router)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Feature routes
	if err := homeFeature.SetupRoutes(router, d.Store, d.SessionStore, d.Presenter, d.SiteTitle, d.IsDev, d.Logger); err != nil {
		return err
	}

	if err := docsFeature.SetupRoutes(router, d.Store, d.SessionStore, d.Notifier, d.Presenter, d.SiteTitle, d.IsDev, d.Logger); err != nil {
		return err
	}

	if err := searchFeature.SetupRoutes(router, d.Store, d.Index, d.SessionStore, d.Presenter, d.SiteTitle, d.IsDev, d.Logger); err != nil {
		return err
	}

	return nil
}

func setupReload(router chi.Router) {
	reloadChan := make(chan struct{}, 1)
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)
		select {
		case <-reloadChan:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		select {
		case reloadChan <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
