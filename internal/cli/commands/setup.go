package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/notedown-dev/notedown/internal/cli/config"
	"github.com/notedown-dev/notedown/internal/cli/output"
	"github.com/notedown-dev/notedown/internal/content"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		ContentDir:     getEnvOrDefault("NOTEDOWN_CONTENT_DIR", config.DefaultContentDir),
		SiteTitle:      getEnvOrDefault("NOTEDOWN_SITE_TITLE", config.DefaultSiteTitle),
		HighlightStyle: getEnvOrDefault("NOTEDOWN_HIGHLIGHT_STYLE", config.DefaultHighlightStyle),
		IndexPath:      getEnvOrDefault("NOTEDOWN_INDEX_PATH", config.DefaultIndexPath),
		IncludeDrafts:  os.Getenv("NOTEDOWN_DRAFTS") == "true",
		Verbose:        os.Getenv("NOTEDOWN_VERBOSE") == "true",
		OutputFormat:   os.Getenv("NOTEDOWN_OUTPUT"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadStore validates the content directory and loads the library.
func loadStore(cfg *config.Config, logger *slog.Logger) (*content.Store, error) {
	if err := cfg.ValidateContentDir(); err != nil {
		return nil, err
	}

	scanner := content.NewScanner(cfg.ContentDir, content.ScannerOptions{
		HighlightStyle: cfg.HighlightStyle,
		IncludeDrafts:  cfg.IncludeDrafts,
		Logger:         logger,
	})
	store := content.NewStore(scanner, logger)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}
