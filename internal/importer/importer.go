// Package importer converts HTML pages into markdown notes with
// generated frontmatter, ready to drop into the content directory.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gosimple/slug"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// Options control how an imported page becomes a note.
type Options struct {
	Title   string   // overrides the title found in the document
	Section string   // target section; empty means the CLI decides
	Tags    []string // tags written into the frontmatter
}

// Note is a converted page ready to be written to disk.
type Note struct {
	Title    string
	Slug     string // filename-safe slug derived from the title
	Markdown string // body only, without frontmatter
	Content  string // full file content including frontmatter
}

// noteFrontmatter is the YAML block emitted at the top of imported notes.
type noteFrontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Section     string   `yaml:"section,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// ConvertHTML turns an HTML document into a markdown note.
func ConvertHTML(r io.Reader, opts Options) (*Note, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = documentTitle(doc)
	}
	if title == "" {
		title = "Imported note " + time.Now().UTC().Format("2006-01-02")
	}

	markdown, err := htmltomarkdown.ConvertString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to convert html: %w", err)
	}
	markdown = stripLeadingTitle(markdown, title)

	fm := noteFrontmatter{
		Title:       title,
		Description: documentDescription(doc),
		Section:     opts.Section,
		Tags:        opts.Tags,
	}
	front, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	return &Note{
		Title:    title,
		Slug:     slug.Make(title),
		Markdown: markdown,
		Content:  "---\n" + string(front) + "---\n\n" + markdown + "\n",
	}, nil
}

// WriteNote writes the note under contentDir/<section>/<slug>.md and
// returns the file path. It refuses to overwrite an existing note.
func WriteNote(contentDir string, note *Note, section string) (string, error) {
	dir := contentDir
	if section != "" {
		dir = filepath.Join(contentDir, slug.Make(section))
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create section directory: %w", err)
	}

	path := filepath.Join(dir, note.Slug+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("note already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(note.Content), 0600); err != nil {
		return "", fmt.Errorf("failed to write note: %w", err)
	}
	return path, nil
}

// documentTitle prefers the first <h1>, falling back to <title>.
func documentTitle(doc *html.Node) string {
	if h1 := findFirst(doc, "h1"); h1 != nil {
		if t := strings.TrimSpace(textContent(h1)); t != "" {
			return t
		}
	}
	if el := findFirst(doc, "title"); el != nil {
		return strings.TrimSpace(textContent(el))
	}
	return ""
}

// documentDescription reads the meta description if present.
func documentDescription(doc *html.Node) string {
	var desc string
	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "meta" {
			return true
		}
		var name, content string
		for _, attr := range n.Attr {
			switch attr.Key {
			case "name":
				name = attr.Val
			case "content":
				content = attr.Val
			}
		}
		if name == "description" && content != "" {
			desc = strings.TrimSpace(content)
			return false
		}
		return true
	})
	return desc
}

// stripLeadingTitle drops a leading "# Title" heading that duplicates
// the frontmatter title; the site renders the title itself.
func stripLeadingTitle(markdown, title string) string {
	trimmed := strings.TrimLeft(markdown, "\n")
	first, rest, found := strings.Cut(trimmed, "\n")
	if !found {
		first = trimmed
		rest = ""
	}
	heading := strings.TrimSpace(strings.TrimPrefix(first, "# "))
	if strings.HasPrefix(first, "# ") && strings.EqualFold(heading, title) {
		return strings.TrimLeft(rest, "\n")
	}
	return markdown
}

func findFirst(n *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(n, func(node *html.Node) bool {
		if node.Type == html.ElementNode && node.Data == tag {
			found = node
			return false
		}
		return true
	})
	return found
}

// walk visits nodes depth-first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(node *html.Node) bool {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		return true
	})
	return sb.String()
}
