package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notedown-dev/notedown/internal/site"
)

// BuildOptions holds options for the build command.
type BuildOptions struct {
	OutputDir string
	Minify    bool
	Clean     bool
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the notes site as static HTML",
		Long: `Render every note to static HTML for hosting on GitHub Pages
or any file server.

The export contains one directory per note slug, the shared static
assets, and a manifest.json describing the build.`,
		Example: `  # Build into the default output directory
  notedown build

  # Build into a custom directory without minification
  notedown build --out public --minify=false

  # Remove a previous export first
  notedown build --clean`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutputDir, "out", "", "Output directory (default: dist)")
	cmd.Flags().BoolVar(&opts.Minify, "minify", true, "Minify CSS and JS assets")
	cmd.Flags().BoolVar(&opts.Clean, "clean", false, "Remove a previous export before building")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *BuildOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	buildCfg := cfg.GetBuildConfig()
	outDir := buildCfg.OutputDir
	if opts.OutputDir != "" {
		outDir = opts.OutputDir
	}
	minify := buildCfg.Minify
	if cmd.Flags().Changed("minify") {
		minify = opts.Minify
	}

	store, err := loadStore(cfg, cmdCtx.Logger)
	if err != nil {
		return err
	}

	if opts.Clean {
		if err := site.CleanOutputDir(outDir); err != nil {
			return fmt.Errorf("failed to clean output directory: %w", err)
		}
	}

	builder := site.NewBuilder(store.Library(), cfg.SiteTitle, minify, cmdCtx.Logger)
	manifest, err := builder.Build(outDir)
	if err != nil {
		return err
	}

	r.Success(fmt.Sprintf("Exported %d notes to %s", manifest.Stats.NoteCount, outDir))
	r.KeyValue("Build ID", manifest.BuildID)
	r.KeyValue("Sections", fmt.Sprintf("%d", manifest.Stats.SectionCount))
	return nil
}
