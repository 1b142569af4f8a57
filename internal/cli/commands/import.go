package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notedown-dev/notedown/internal/importer"
)

// ImportOptions holds options for the import command.
type ImportOptions struct {
	Title   string
	Section string
	Tags    []string
	Stdout  bool
}

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	opts := &ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import <file.html>",
		Short: "Import an HTML page as a markdown note",
		Long: `Convert a saved HTML page into a markdown note with generated
frontmatter and write it into the content directory.

Pass "-" to read the HTML from stdin.`,
		Example: `  # Import a saved article into the rust section
  notedown import article.html --section rust --tag rust --tag async

  # Convert from stdin and print instead of writing
  curl -s https://example.com/post | notedown import - --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Override the note title")
	cmd.Flags().StringVar(&opts.Section, "section", "", "Section directory for the note")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tag for the note (repeatable)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the note instead of writing a file")

	return cmd
}

func runImport(cmd *cobra.Command, src string, opts *ImportOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	var in io.Reader
	if src == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(src) //nolint:gosec // G304: user-provided input file
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", src, err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	note, err := importer.ConvertHTML(in, importer.Options{
		Title:   opts.Title,
		Section: opts.Section,
		Tags:    opts.Tags,
	})
	if err != nil {
		return err
	}

	if opts.Stdout {
		r.Println(strings.TrimRight(note.Content, "\n"))
		return nil
	}

	path, err := importer.WriteNote(cmdCtx.Cfg.ContentDir, note, opts.Section)
	if err != nil {
		return err
	}

	r.Success(fmt.Sprintf("Imported %q", note.Title))
	r.KeyValue("File", path)
	return nil
}
