package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/notedown-dev/notedown/internal/cli/config"
	"github.com/notedown-dev/notedown/internal/cli/output"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new notes project",
		Long: `Initialize a new notedown project with a content directory,
a starter note, and a notedown.yaml configuration file.`,
		Example: `  # Initialize in the current directory
  notedown init

  # Initialize in a new directory
  notedown init my-notes

  # Overwrite an existing configuration
  notedown init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

const initialConfig = `# notedown configuration
site_title: My Notes
content_dir: content
highlight_style: github

serve:
  port: 8484
  auto_open: true
  watch: true

build:
  output_dir: dist
  minify: true
`

const initialNote = `---
title: Welcome
description: How this notebook works.
order: 1
---

Every markdown file under ` + "`content/`" + ` becomes a page here.
Directories group notes into sidebar sections; add a ` + "`_section.yaml`" + `
to rename or reorder a section.

Start the local server with:

` + "```sh" + `
notedown serve
` + "```" + `
`

const initialSectionMeta = `title: Getting Started
order: 1
`

func runInit(r *output.Renderer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	cfgPath := filepath.Join(dir, "notedown.yaml")
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}
	if err := os.WriteFile(cfgPath, []byte(initialConfig), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	sectionDir := filepath.Join(dir, config.DefaultContentDir, "getting-started")
	if err := os.MkdirAll(sectionDir, 0750); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}

	notePath := filepath.Join(sectionDir, "welcome.md")
	if _, err := os.Stat(notePath); os.IsNotExist(err) || force {
		if err := os.WriteFile(notePath, []byte(initialNote), 0600); err != nil {
			return fmt.Errorf("failed to write starter note: %w", err)
		}
	}

	metaPath := filepath.Join(sectionDir, "_section.yaml")
	if _, err := os.Stat(metaPath); os.IsNotExist(err) || force {
		if err := os.WriteFile(metaPath, []byte(initialSectionMeta), 0600); err != nil {
			return fmt.Errorf("failed to write section metadata: %w", err)
		}
	}

	r.Success("Initialized notedown project")
	r.KeyValue("Config", cfgPath)
	r.KeyValue("Content", filepath.Join(dir, config.DefaultContentDir))
	r.Println("")
	r.Println("Next: notedown serve")
	return nil
}
