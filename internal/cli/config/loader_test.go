package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "notedown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, DefaultContentDir), cfg.ContentDir)
	assert.Equal(t, DefaultSiteTitle, cfg.SiteTitle)
	assert.Equal(t, DefaultHighlightStyle, cfg.HighlightStyle)
	assert.Equal(t, filepath.Join(dir, ".notedown", "index.db"), cfg.IndexPath)
	assert.False(t, cfg.IncludeDrafts)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, 8484, cfg.GetServeConfig().Port)
	assert.Equal(t, filepath.Join(dir, DefaultContentDir), cfg.ContentDir)
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	writeConfig(t, dir, `
site_title: My Language Notes
content_dir: notes
highlight_style: dracula
serve:
  port: 9000
  watch: false
build:
  output_dir: public
  minify: true
`)
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "My Language Notes", cfg.SiteTitle)
	assert.Equal(t, filepath.Join(dir, "notes"), cfg.ContentDir)
	assert.Equal(t, "dracula", cfg.HighlightStyle)
	require.NotNil(t, cfg.Serve)
	assert.Equal(t, 9000, cfg.Serve.Port)
	assert.False(t, cfg.Serve.Watch)
	require.NotNil(t, cfg.Build)
	assert.Equal(t, filepath.Join(dir, "public"), cfg.Build.OutputDir)
	assert.True(t, cfg.Build.Minify)
	assert.Equal(t, filepath.Join(dir, "notedown.yaml"), GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	writeConfig(t, dir, "site_title: From File\n")
	t.Chdir(dir)
	t.Setenv("NOTEDOWN_SITE_TITLE", "From Env")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.SiteTitle)
}

func TestLoadConfigFlagsWinOverEnv(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("NOTEDOWN_SITE_TITLE", "From Env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("site-title", "", "")
	flags.String("content-dir", "", "")
	require.NoError(t, flags.Parse([]string{"--site-title", "From Flag"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "From Flag", cfg.SiteTitle)
}

func TestLoadConfigInfersRootFromContentDir(t *testing.T) {
	ResetConfig()
	project := t.TempDir()
	contentDir := filepath.Join(project, "content")
	require.NoError(t, os.MkdirAll(contentDir, 0750))
	writeConfig(t, project, "site_title: Anchored\n")

	// Run from an unrelated directory; the --content-dir flag anchors
	// the project root.
	t.Chdir(t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("content-dir", "", "")
	require.NoError(t, flags.Parse([]string{"--content-dir", contentDir}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, project, cfg.ProjectRoot)
	assert.Equal(t, "Anchored", cfg.SiteTitle)
	assert.Equal(t, contentDir, cfg.ContentDir)
}

func TestLoadConfigUpwardSearch(t *testing.T) {
	ResetConfig()
	project := t.TempDir()
	nested := filepath.Join(project, "content", "go")
	require.NoError(t, os.MkdirAll(nested, 0750))
	writeConfig(t, project, "site_title: Found Upward\n")
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "Found Upward", cfg.SiteTitle)
}

func TestLoadConfigExplicitFileSetsRoot(t *testing.T) {
	ResetConfig()
	project := t.TempDir()
	cfgPath := writeConfig(t, project, "content_dir: notes\n")
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, project, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(project, "notes"), cfg.ContentDir)
}

func TestValidateContentDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{ContentDir: filepath.Join(dir, "missing")}
	assert.ErrorContains(t, cfg.ValidateContentDir(), "content directory does not exist")

	cfg.ContentDir = dir
	assert.NoError(t, cfg.ValidateContentDir())
}
