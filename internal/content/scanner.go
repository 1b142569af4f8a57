package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// SectionMetaFile is the optional per-directory file that names and
// orders a section, e.g. content/rust/_section.yaml.
const SectionMetaFile = "_section.yaml"

// sectionMeta is the parsed form of a _section.yaml file.
type sectionMeta struct {
	Title string `yaml:"title"`
	Order int    `yaml:"order"`
}

// Scanner loads note files from a content directory.
type Scanner struct {
	dir           string
	renderer      *Renderer
	logger        *slog.Logger
	includeDrafts bool
}

// ScannerOptions configures a Scanner.
type ScannerOptions struct {
	HighlightStyle string
	IncludeDrafts  bool
	Logger         *slog.Logger
}

// NewScanner creates a scanner rooted at dir.
func NewScanner(dir string, opts ScannerOptions) *Scanner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		dir:           dir,
		renderer:      NewRenderer(opts.HighlightStyle),
		logger:        logger,
		includeDrafts: opts.IncludeDrafts,
	}
}

// ScanDir walks the content directory and loads every .md and .mdx
// file into an ordered Library.
func (s *Scanner) ScanDir() (*Library, error) {
	titler := cases.Title(language.English)

	type sectionAcc struct {
		title string
		order int
		docs  []*Doc
	}
	sections := make(map[string]*sectionAcc)

	sectionFor := func(dirName string) *sectionAcc {
		if acc, ok := sections[dirName]; ok {
			return acc
		}
		acc := &sectionAcc{title: titler.String(strings.ReplaceAll(dirName, "-", " "))}
		if dirName == "." {
			acc.title = "Notes"
		}
		if meta := s.loadSectionMeta(dirName); meta != nil {
			if meta.Title != "" {
				acc.title = meta.Title
			}
			acc.order = meta.Order
		}
		sections[dirName] = acc
		return acc
	}

	bySlug := make(map[string]*Doc)

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories are not content.
			if d.Name() != "." && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(d.Name())
		if ext != ".md" && ext != ".mdx" {
			return nil
		}

		doc, err := s.loadFile(path, ext, titler)
		if err != nil {
			return err
		}
		if doc == nil {
			return nil // draft
		}

		if prev, dup := bySlug[doc.Slug]; dup {
			// Duplicate slugs are a configuration defect in the content
			// tree; keep the first file so routes stay stable.
			s.logger.Warn("duplicate slug, skipping note",
				"slug", doc.Slug, "file", path, "kept", prev.FilePath)
			return nil
		}
		bySlug[doc.Slug] = doc

		acc := sectionFor(doc.Section)
		acc.docs = append(acc.docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan content directory: %w", err)
	}

	lib := &Library{bySlug: bySlug}
	for _, acc := range sections {
		docs := acc.docs
		sort.SliceStable(docs, func(i, j int) bool {
			if docs[i].Order != docs[j].Order {
				return docs[i].Order < docs[j].Order
			}
			return docs[i].Title < docs[j].Title
		})
		lib.Sections = append(lib.Sections, Section{
			Title: acc.title,
			Order: acc.order,
			Docs:  docs,
		})
	}
	sort.SliceStable(lib.Sections, func(i, j int) bool {
		if lib.Sections[i].Order != lib.Sections[j].Order {
			return lib.Sections[i].Order < lib.Sections[j].Order
		}
		return lib.Sections[i].Title < lib.Sections[j].Title
	})

	return lib, nil
}

// loadFile parses one note file. Returns nil for skipped drafts.
func (s *Scanner) loadFile(path, ext string, titler cases.Caser) (*Doc, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the scanned content dir
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, err := ExtractFrontmatter(string(raw))
	if err != nil {
		setErrorFile(err, path)
		return nil, err
	}

	fm := result.Config
	if fm.Draft && !s.includeDrafts {
		return nil, nil
	}

	body := result.Body
	if ext == ".mdx" {
		body = StripMDXHeader(body)
	}

	htmlBody, err := s.renderer.Render(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(rel), ext)

	doc := &Doc{
		Title:       fm.Title,
		Slug:        fm.Slug,
		Section:     fm.Section,
		Order:       fm.Order,
		Description: fm.Description,
		Tags:        fm.Tags,
		HTML:        htmlBody,
		Raw:         body,
		FilePath:    path,
		UpdatedAt:   info.ModTime().UTC(),
	}
	if doc.Title == "" {
		doc.Title = titler.String(strings.ReplaceAll(base, "-", " "))
	}
	if doc.Slug == "" {
		doc.Slug = slugForPath(rel, ext)
	}
	if doc.Section == "" {
		doc.Section = s.sectionDir(path)
	}

	return doc, nil
}

// sectionDir returns the content-relative directory a file lives in.
func (s *Scanner) sectionDir(path string) string {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		return "."
	}
	return filepath.ToSlash(filepath.Dir(rel))
}

// loadSectionMeta reads dir/_section.yaml if present.
func (s *Scanner) loadSectionMeta(dirName string) *sectionMeta {
	path := filepath.Join(s.dir, dirName, SectionMetaFile)
	raw, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the scanned content dir
	if err != nil {
		return nil
	}
	var meta sectionMeta
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		s.logger.Warn("invalid section metadata", "file", path, "error", err)
		return nil
	}
	return &meta
}

// slugForPath derives a route slug from a content-relative path,
// slugifying each path segment separately so nesting survives.
func slugForPath(rel, ext string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), ext)
	parts := strings.Split(rel, "/")
	for i, p := range parts {
		parts[i] = slug.Make(p)
	}
	return strings.Join(parts, "/")
}

// setErrorFile attaches the file path to parse errors that carry one.
func setErrorFile(err error, path string) {
	switch e := err.(type) {
	case *FrontmatterParseError:
		e.File = path
	case *UnknownFieldError:
		e.File = path
	}
}
