package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notedown-dev/notedown/internal/cli/output"
)

// SearchOptions holds options for the search command.
type SearchOptions struct {
	Limit int
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search notes from the terminal",
		Long: `Run a full-text search over all notes and print matching
snippets with the note slug.`,
		Example: `  # Find notes mentioning goroutines
  notedown search goroutines

  # Search a phrase, JSON output
  notedown search "borrow checker" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 10, "Maximum number of results")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, opts *SearchOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	store, err := loadStore(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}

	index, err := openIndex(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = index.Close() }()

	if err := index.Rebuild(store.Library()); err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}

	results, err := index.Query(query, opts.Limit)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(results)
	}

	if len(results) == 0 {
		r.Println("No matches.")
		return nil
	}

	for _, res := range results {
		r.KeyValue(res.Title, "/docs/"+res.Slug)
		r.Println("  " + stripSnippetMarks(res.Snippet))
	}
	return nil
}

// stripSnippetMarks removes the HTML highlight tags the web UI uses.
func stripSnippetMarks(s string) string {
	s = strings.ReplaceAll(s, "<mark>", "")
	return strings.ReplaceAll(s, "</mark>", "")
}
