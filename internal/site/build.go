// Package site exports the notes library to a static HTML site that
// can be hosted on GitHub Pages or any file server.
package site

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	g "maragu.dev/gomponents"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/nav"
	"github.com/notedown-dev/notedown/internal/ui/features/docs"
	"github.com/notedown-dev/notedown/internal/ui/features/home"
	"github.com/notedown-dev/notedown/internal/ui/resources"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
	"github.com/notedown-dev/notedown/internal/ui/view"
)

// Builder exports a loaded library as a static site.
type Builder struct {
	lib       *content.Library
	siteTitle string
	minify    bool
	logger    *slog.Logger
}

// NewBuilder creates a Builder for the given library.
func NewBuilder(lib *content.Library, siteTitle string, minify bool, logger *slog.Logger) *Builder {
	return &Builder{
		lib:       lib,
		siteTitle: siteTitle,
		minify:    minify,
		logger:    logger,
	}
}

// Build writes the full static site to outputDir and returns its manifest.
func (b *Builder) Build(outputDir string) (*Manifest, error) {
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	sections := nav.Build(b.lib)

	// Overview page
	if err := b.writePage(outputDir, "index.html", "", "/", sections, home.Overview(b.siteTitle, b.lib)); err != nil {
		return nil, err
	}

	// One page per note
	for _, doc := range b.lib.Docs() {
		route := nav.RoutePrefix + doc.Slug
		outPath := filepath.Join("docs", filepath.FromSlash(doc.Slug), "index.html")
		if err := b.writePage(outputDir, outPath, doc.Title, route, sections, docs.StaticArticle(doc)); err != nil {
			return nil, err
		}
	}

	if err := b.copyStaticAssets(outputDir); err != nil {
		return nil, fmt.Errorf("failed to copy static assets: %w", err)
	}

	manifest := GenerateManifest(b.siteTitle, b.lib)
	if err := writeJSON(filepath.Join(outputDir, "manifest.json"), manifest); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	b.logger.Info("static site built",
		"dir", outputDir,
		"pages", manifest.Stats.NoteCount+1,
		"build_id", manifest.BuildID)
	return manifest, nil
}

// writePage renders one page through the shared shell and writes it to disk.
func (b *Builder) writePage(outputDir, relPath, title, route string, sections []nav.Section, body g.Node) error {
	page := view.Shell(view.PageData{
		Title:       title,
		SiteTitle:   b.siteTitle,
		Theme:       "light",
		CurrentPath: route,
		Sidebar:     sidebar.Render(sections, route, sidebar.OverlayClosed),
		Content:     body,
	})

	outPath := filepath.Join(outputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", relPath, err)
	}

	f, err := os.Create(outPath) //nolint:gosec // G304: path is derived from note slugs
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", relPath, err)
	}
	defer func() { _ = f.Close() }()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render %s: %w", relPath, err)
	}
	return nil
}

// copyStaticAssets copies the embedded static files into the export,
// minifying CSS and JS when the builder is configured to.
func (b *Builder) copyStaticAssets(outputDir string) error {
	staticFS := resources.FS()
	return fs.WalkDir(staticFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(staticFS, path)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", path, err)
		}

		if b.minify {
			if minified, merr := MinifyAsset(path, data); merr != nil {
				b.logger.Warn("asset minify failed, keeping original", "asset", path, "error", merr)
			} else {
				data = minified
			}
		}

		outPath := filepath.Join(outputDir, "static", filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(outPath), 0750); err != nil {
			return err
		}
		return os.WriteFile(outPath, data, 0600)
	})
}

func writeJSON(path string, data any) error {
	f, err := os.Create(path) //nolint:gosec // G304: path is from trusted source
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// CleanOutputDir removes a previous export, refusing paths that do not
// look like a build directory.
func CleanOutputDir(outputDir string) error {
	if outputDir == "" || outputDir == "/" || outputDir == "." {
		return fmt.Errorf("refusing to clean %q", outputDir)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "manifest.json")); err != nil {
		if os.IsNotExist(err) {
			// Fresh or foreign directory: only clean if it's empty or absent.
			entries, rerr := os.ReadDir(outputDir)
			if os.IsNotExist(rerr) {
				return nil
			}
			if rerr != nil {
				return rerr
			}
			if len(entries) > 0 {
				return fmt.Errorf("%s exists and is not a previous build (no manifest.json)", outputDir)
			}
			return nil
		}
		return err
	}
	return os.RemoveAll(outputDir)
}
