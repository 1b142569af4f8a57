package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/notedown-dev/notedown/internal/cli/config"
	"github.com/notedown-dev/notedown/internal/search"
	"github.com/notedown-dev/notedown/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the notes site locally",
		Long: `Start a local web server for browsing your notes.

The server provides:
- Section navigation with a responsive sidebar
- Full-text search across all notes
- Live reload while you edit note files`,
		Example: `  # Serve on the default port
  notedown serve

  # Serve on a custom port
  notedown serve --port 3000

  # Serve without auto-opening the browser
  notedown serve --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8484)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch for file changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	// Get serve config with defaults
	serveCfg := cfg.GetServeConfig()

	// CLI flags override config file
	port := serveCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := serveCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := serveCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}

	index, err := openIndex(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = index.Close() }()

	if err := index.Rebuild(store.Library()); err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}

	serverCfg := ui.Config{
		Store:         store,
		Index:         index,
		Port:          port,
		Watch:         watch,
		SessionSecret: sessionSecret(),
		Logger:        logger,
		ContentDir:    cfg.ContentDir,
		SiteTitle:     cfg.SiteTitle,
		IsDev:         watch,
	}
	server := ui.NewServer(serverCfg)

	// Open browser if configured
	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Serving %d notes on http://localhost:%d\n", store.Library().Len(), port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return server.Serve(ctx)
}

// openIndex opens the search index at the configured path, creating
// the parent directory and schema as needed.
func openIndex(cfg *config.Config, logger *slog.Logger) (*search.Index, error) {
	indexDir := filepath.Dir(cfg.IndexPath)
	if indexDir != "." && indexDir != "" {
		if err := os.MkdirAll(indexDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create index directory: %w", err)
		}
	}

	index := search.New(logger)
	if err := index.Open(cfg.IndexPath); err != nil {
		return nil, fmt.Errorf("failed to open search index: %w", err)
	}
	if err := index.InitSchema(); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("failed to init search index: %w", err)
	}
	return index, nil
}

// sessionSecret returns the cookie-session secret.
func sessionSecret() string {
	secret := os.Getenv("NOTEDOWN_SESSION_SECRET")
	if secret == "" {
		// Default secret for local development
		secret = "notedown-dev-secret-change-in-production" //nolint:gosec
	}
	return secret
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
