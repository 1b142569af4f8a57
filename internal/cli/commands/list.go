package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/notedown-dev/notedown/internal/cli/output"
	"github.com/notedown-dev/notedown/internal/content"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes by section",
		Long: `List all loaded notes with their slug, section, and tags.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all notes (auto-detect output format)
  notedown list

  # List notes as JSON
  notedown list --output json

  # Include drafts
  notedown list --drafts`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	store, err := loadStore(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}
	lib := store.Library()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listJSON(lib, r)
	case output.ModeMarkdown:
		return listMarkdown(lib, r)
	default:
		return listText(lib, r)
	}
}

// listText outputs notes as a styled table.
func listText(lib *content.Library, r *output.Renderer) error {
	r.Header(1, fmt.Sprintf("Notes (%d total)", lib.Len()))

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Section", "Title", "Slug", "Updated", "Tags"})

	for _, sec := range lib.Sections {
		for _, doc := range sec.Docs {
			t.AppendRow(table.Row{
				sec.Title,
				doc.Title,
				doc.Slug,
				doc.UpdatedAt.Format("2006-01-02"),
				strings.Join(doc.Tags, ", "),
			})
		}
	}

	t.Render()
	return nil
}

// listMarkdown outputs notes in markdown format.
func listMarkdown(lib *content.Library, r *output.Renderer) error {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Notes (%d total)", lib.Len())))
	r.Println("")

	for _, sec := range lib.Sections {
		r.Println(output.FormatHeader(2, sec.Title))
		for _, doc := range sec.Docs {
			r.Println(output.FormatKeyValue(doc.Title, "/docs/"+doc.Slug))
		}
		r.Println("")
	}
	return nil
}

// noteInfo is the JSON shape of one note in list output.
type noteInfo struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Section   string   `json:"section"`
	Tags      []string `json:"tags,omitempty"`
	UpdatedAt string   `json:"updated_at"`
	FilePath  string   `json:"file_path"`
}

// listJSON outputs notes as JSON.
func listJSON(lib *content.Library, r *output.Renderer) error {
	notes := make([]noteInfo, 0, lib.Len())
	for _, sec := range lib.Sections {
		for _, doc := range sec.Docs {
			notes = append(notes, noteInfo{
				Title:     doc.Title,
				Slug:      doc.Slug,
				Section:   sec.Title,
				Tags:      doc.Tags,
				UpdatedAt: doc.UpdatedAt.Format("2006-01-02"),
				FilePath:  doc.FilePath,
			})
		}
	}
	return r.JSON(notes)
}
