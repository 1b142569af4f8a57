// Package config provides configuration management for the notedown CLI.
package config

// ServeConfig holds configuration for the local site server.
type ServeConfig struct {
	Port     int  `koanf:"port"`
	AutoOpen bool `koanf:"auto_open"`
	Watch    bool `koanf:"watch"`
}

// DefaultServeConfig returns a ServeConfig with default values.
func DefaultServeConfig() *ServeConfig {
	return &ServeConfig{
		Port:     8484,
		AutoOpen: true,
		Watch:    true,
	}
}

// GetServeConfig returns the serve config with defaults applied for
// any unset values.
func (c *Config) GetServeConfig() *ServeConfig {
	if c.Serve == nil {
		return DefaultServeConfig()
	}
	serve := c.Serve
	if serve.Port == 0 {
		serve.Port = 8484
	}
	return serve
}

// BuildConfig holds configuration for static exports.
type BuildConfig struct {
	OutputDir string `koanf:"output_dir"`
	Minify    bool   `koanf:"minify"`
}

// GetBuildConfig returns the build config with defaults applied.
func (c *Config) GetBuildConfig() *BuildConfig {
	if c.Build == nil {
		return &BuildConfig{OutputDir: DefaultOutputDir, Minify: true}
	}
	build := c.Build
	if build.OutputDir == "" {
		build.OutputDir = DefaultOutputDir
	}
	return build
}

// Config holds all CLI configuration options.
type Config struct {
	ContentDir     string       `koanf:"content_dir"`
	SiteTitle      string       `koanf:"site_title"`
	HighlightStyle string       `koanf:"highlight_style"`
	IndexPath      string       `koanf:"index_path"`
	IncludeDrafts  bool         `koanf:"drafts"`
	Verbose        bool         `koanf:"verbose"`
	OutputFormat   string       `koanf:"output"`
	Serve          *ServeConfig `koanf:"serve"`
	Build          *BuildConfig `koanf:"build"`

	// ProjectRoot is the inferred project directory; not read from the
	// config file.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultContentDir     = "content"
	DefaultSiteTitle      = "Notedown"
	DefaultHighlightStyle = "github"
	DefaultIndexPath      = ".notedown/index.db"
	DefaultOutputDir      = "dist"
	DefaultOutput         = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
