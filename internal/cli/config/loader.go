package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store the logger in context.
// This key is shared with root.go via both using the same type.
type loggerKey struct{}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// configNames are the file names recognized as a notedown config, in
// priority order.
var configNames = []string{"notedown.yaml", "notedown.yml"}

// configExistsIn checks if a notedown config file exists in the directory.
func configExistsIn(dir string) bool {
	for _, name := range configNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// findProjectRootUpward searches upward from startDir for a notedown config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func findProjectRootUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if configExistsIn(dir) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// inferProjectRoot determines the project root from CLI flags and filesystem.
// Priority:
//  1. Infer from --content-dir (parent if it contains a config or is named "content")
//  2. Search upward from CWD for notedown.yaml
//  3. Current working directory
func inferProjectRoot(flags *pflag.FlagSet) string {
	// 1. Infer from --content-dir
	if flags != nil {
		if contentDir, _ := flags.GetString("content-dir"); contentDir != "" && flags.Changed("content-dir") {
			absContent, err := filepath.Abs(contentDir)
			if err == nil {
				parent := filepath.Dir(absContent)

				// If parent has a config file, it's the project root
				if configExistsIn(parent) {
					return parent
				}

				// If folder is named "content", assume parent is root
				if filepath.Base(absContent) == DefaultContentDir {
					return parent
				}
			}
		}
	}

	// 2. Search upward from CWD for notedown.yaml
	if cwd, err := os.Getwd(); err == nil {
		if root := findProjectRootUpward(cwd); root != "" {
			return root
		}
	}

	// 3. Default to CWD
	cwd, _ := os.Getwd()
	if cwd == "" {
		cwd = "."
	}
	return cwd
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	// Infer project root from flags before loading config.
	// This enables the anchor pattern where --content-dir testdata/content
	// implies the project root is testdata/.
	projectRoot := inferProjectRoot(flags)

	// Paths explicitly provided as flags are relative to CWD, not the
	// project root; make them absolute now to prevent double-resolution.
	var flagContentDir, flagIndexPath, flagOutputDir string
	if flags != nil {
		if flags.Changed("content-dir") {
			if v, _ := flags.GetString("content-dir"); v != "" {
				flagContentDir, _ = filepath.Abs(v)
			}
		}
		if flags.Changed("index") {
			if v, _ := flags.GetString("index"); v != "" {
				flagIndexPath, _ = filepath.Abs(v)
			}
		}
		if flags.Changed("out") {
			if v, _ := flags.GetString("out"); v != "" {
				flagOutputDir, _ = filepath.Abs(v)
			}
		}
	}

	// If an explicit config file is provided, use its directory as the
	// project root (unless a more specific hint was given via flags).
	if cfgFile != "" && projectRoot == inferProjectRoot(nil) {
		if absPath, err := filepath.Abs(cfgFile); err == nil {
			projectRoot = filepath.Dir(absPath)
		}
	}

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"content_dir":     DefaultContentDir,
		"site_title":      DefaultSiteTitle,
		"highlight_style": DefaultHighlightStyle,
		"index_path":      DefaultIndexPath,
		"drafts":          false,
		"verbose":         false,
		"output":          DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load the config file, searching the project root when
	// none was given explicitly.
	if cfgFile == "" {
		for _, name := range configNames {
			candidate := filepath.Join(projectRoot, name)
			if _, err := os.Stat(candidate); err == nil {
				cfgFile = candidate
				break
			}
		}
	}
	configFileUsed = cfgFile
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (NOTEDOWN_ prefix)
	// Transform: NOTEDOWN_CONTENT_DIR -> content_dir
	if err := k.Load(env.Provider("NOTEDOWN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "NOTEDOWN_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")

			// The CLI uses --index for brevity; the config key is index_path.
			if key == "index" {
				return "index_path", posflag.FlagVal(flags, f)
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct. Env values arrive as strings,
	// so decoding stays weakly typed (e.g. NOTEDOWN_SERVE_PORT=9000).
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Set project root and resolve relative paths against it.
	cfg.ProjectRoot = projectRoot

	if flagContentDir != "" {
		cfg.ContentDir = flagContentDir
	} else {
		cfg.ContentDir = resolvePathRelativeTo(cfg.ContentDir, projectRoot)
	}
	if flagIndexPath != "" {
		cfg.IndexPath = flagIndexPath
	} else {
		cfg.IndexPath = resolvePathRelativeTo(cfg.IndexPath, projectRoot)
	}
	if cfg.Build != nil {
		if flagOutputDir != "" {
			cfg.Build.OutputDir = flagOutputDir
		} else {
			cfg.Build.OutputDir = resolvePathRelativeTo(cfg.Build.OutputDir, projectRoot)
		}
	} else if flagOutputDir != "" {
		cfg.Build = &BuildConfig{OutputDir: flagOutputDir, Minify: true}
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// ValidateContentDir checks that the content directory exists.
func (c *Config) ValidateContentDir() error {
	if _, err := os.Stat(c.ContentDir); os.IsNotExist(err) {
		return fmt.Errorf("content directory does not exist: %s\nHint: run 'notedown init' or use --content-dir to point at your notes", c.ContentDir)
	}
	return nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
