// Package ui provides the local web server for the notes site.
package ui

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/search"
	"github.com/notedown-dev/notedown/internal/ui/notifier"
	"github.com/notedown-dev/notedown/internal/ui/router"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
)

// Server is the notes site server.
type Server struct {
	store        *content.Store
	index        *search.Index
	sessionStore *sessions.CookieStore
	presenter    *sidebar.Presenter
	port         int
	watch        bool
	contentDir   string
	siteTitle    string
	isDev        bool
	logger       *slog.Logger
	notifier     *notifier.Notifier
}

// Config holds configuration for the site server.
type Config struct {
	Store         *content.Store
	Index         *search.Index
	Port          int
	Watch         bool
	SessionSecret string
	Logger        *slog.Logger
	ContentDir    string
	SiteTitle     string
	IsDev         bool
}

// NewServer creates a new site server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return &Server{
		store:        cfg.Store,
		index:        cfg.Index,
		sessionStore: sessionStore,
		presenter:    sidebar.NewPresenter(),
		port:         cfg.Port,
		watch:        cfg.Watch,
		contentDir:   cfg.ContentDir,
		siteTitle:    cfg.SiteTitle,
		isDev:        cfg.IsDev,
		logger:       cfg.Logger,
		notifier:     notifier.New(),
	}
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting site server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	deps := router.Deps{
		Store:        s.store,
		Index:        s.index,
		SessionStore: s.sessionStore,
		Notifier:     s.notifier,
		Presenter:    s.presenter,
		SiteTitle:    s.siteTitle,
		IsDev:        s.isDev,
		Logger:       s.logger,
	}
	if err := router.SetupRoutes(r, deps); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start file watcher if enabled
	if s.watch {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down site server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchFiles watches the content directory and reloads the library
// (and search index) when note files change.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, s.contentDir); err != nil {
		s.logger.Error("failed to watch content directory", "error", err)
		// Don't fail - continue without watching
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if !isContentFile(event.Name) {
				// New subdirectories need to be watched too.
				if event.Op&fsnotify.Create != 0 {
					_ = watchDirRecursive(watcher, event.Name)
				}
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			changed := event.Name
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("content changed, reloading", "file", changed)

				if err := s.store.Reload(); err != nil {
					return
				}
				if err := s.index.Rebuild(s.store.Library()); err != nil {
					s.logger.Error("search index rebuild failed", "error", err)
				}

				s.notifier.Broadcast(notifier.Event{Path: changed})
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// isContentFile reports whether a change to the file affects the site.
func isContentFile(name string) bool {
	switch filepath.Ext(name) {
	case ".md", ".mdx":
		return true
	}
	return filepath.Base(name) == content.SectionMetaFile
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
