// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/notedown-dev/notedown/internal/cli/output"
)

// SetupTestProject creates a temporary project with a config file and
// a small set of notes, and returns its root directory.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	dirs := []string{
		filepath.Join(tmpDir, "content", "go"),
		filepath.Join(tmpDir, "content", "rust"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0750); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}

	files := map[string]string{
		"notedown.yaml": "site_title: Test Notes\ncontent_dir: content\n",
		filepath.Join("content", "go", "_section.yaml"): "title: Go\norder: 1\n",
		filepath.Join("content", "go", "intro.md"): `---
title: Intro
order: 1
tags: [go]
---

Go compiles fast and ships a garbage collector.
`,
		filepath.Join("content", "go", "generics.md"): `---
title: Generics
order: 2
---

Type parameters arrived in Go 1.18.
`,
		filepath.Join("content", "rust", "ownership.md"): `---
title: Ownership
tags: [rust, memory]
---

The borrow checker enforces unique mutable access.
`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(body), 0600); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	return tmpDir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}
