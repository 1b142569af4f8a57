// Package main provides tests for the notedown CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notedown-dev/notedown/internal/cli"
	"github.com/notedown-dev/notedown/internal/cli/config"
	"github.com/notedown-dev/notedown/internal/cli/testutil"
)

func newCmd(t *testing.T) (*bytes.Buffer, func(args ...string) error) {
	t.Helper()
	config.ResetConfig()
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return buf, func(args ...string) error {
		cmd.SetArgs(args)
		return cmd.Execute()
	}
}

func TestVersionCommand(t *testing.T) {
	buf, run := newCmd(t)
	if err := run("version"); err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "notedown") {
		t.Errorf("version output should contain 'notedown', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	buf, run := newCmd(t)
	if err := run("--help"); err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	expectedCommands := []string{"serve", "build", "list", "search", "import", "init"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestListCommand(t *testing.T) {
	project := testutil.SetupTestProject(t)

	buf, run := newCmd(t)
	err := run("list", "--content-dir", filepath.Join(project, "content"))
	if err != nil {
		t.Errorf("list command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Notes (3 total)") {
		t.Errorf("list output should contain note count, got: %s", output)
	}
	if !strings.Contains(output, "go/intro") {
		t.Errorf("list output should contain slug 'go/intro', got: %s", output)
	}
}

func TestListCommandJSON(t *testing.T) {
	project := testutil.SetupTestProject(t)

	buf, run := newCmd(t)
	err := run("list", "--output", "json", "--content-dir", filepath.Join(project, "content"))
	if err != nil {
		t.Errorf("list --output json command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `"slug": "go/intro"`) {
		t.Errorf("json output should contain go/intro entry, got: %s", output)
	}
}

func TestBuildCommand(t *testing.T) {
	project := testutil.SetupTestProject(t)
	outDir := filepath.Join(t.TempDir(), "dist")

	_, run := newCmd(t)
	err := run("build",
		"--content-dir", filepath.Join(project, "content"),
		"--out", outDir,
		"--minify=false")
	if err != nil {
		t.Fatalf("build command error = %v", err)
	}

	for _, rel := range []string{"index.html", "manifest.json", filepath.Join("docs", "go", "intro", "index.html")} {
		if _, err := os.Stat(filepath.Join(outDir, rel)); err != nil {
			t.Errorf("expected %s in export: %v", rel, err)
		}
	}
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-notes")

	_, run := newCmd(t)
	if err := run("init", dir); err != nil {
		t.Fatalf("init command error = %v", err)
	}

	for _, rel := range []string{
		"notedown.yaml",
		filepath.Join("content", "getting-started", "welcome.md"),
		filepath.Join("content", "getting-started", "_section.yaml"),
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("expected %s after init: %v", rel, err)
		}
	}

	// Second init without --force refuses to overwrite.
	_, run2 := newCmd(t)
	if err := run2("init", dir); err == nil {
		t.Error("init over an existing project should return an error")
	}
}

func TestImportCommandStdout(t *testing.T) {
	project := testutil.SetupTestProject(t)
	page := filepath.Join(t.TempDir(), "page.html")
	html := "<html><head><title>Channels</title></head><body><h1>Channels</h1><p>Share memory by communicating.</p></body></html>"
	if err := os.WriteFile(page, []byte(html), 0600); err != nil {
		t.Fatal(err)
	}

	buf, run := newCmd(t)
	err := run("import", page,
		"--content-dir", filepath.Join(project, "content"),
		"--section", "go",
		"--stdout")
	if err != nil {
		t.Fatalf("import command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "title: Channels") {
		t.Errorf("import output should contain frontmatter title, got: %s", output)
	}
	if !strings.Contains(output, "Share memory by communicating.") {
		t.Errorf("import output should contain converted body, got: %s", output)
	}
}

func TestCompletionCommand(t *testing.T) {
	shells := []string{"bash", "zsh", "fish", "powershell"}

	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			_, run := newCmd(t)
			if err := run("completion", shell); err != nil {
				t.Errorf("completion %s command error = %v", shell, err)
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	_, run := newCmd(t)
	if err := run("unknown-command"); err == nil {
		t.Error("unknown command should return an error")
	}
}
