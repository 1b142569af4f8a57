// Package features provides shared test utilities for UI feature tests.
package features

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/notedown-dev/notedown/internal/content"
	"github.com/notedown-dev/notedown/internal/search"
	"github.com/notedown-dev/notedown/internal/testutil"
	"github.com/notedown-dev/notedown/internal/ui/notifier"
)

// TestNote is a helper to create note files with minimal boilerplate.
type TestNote struct {
	Path    string // content-relative path, e.g. "go/intro.md"
	Title   string
	Order   int
	Body    string
	Draft   bool
	NoFront bool // write the body without any frontmatter
}

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Store        *content.Store
	Index        *search.Index
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore

	contentDir string
}

// SetupTestFixture writes the given notes under a temp content dir,
// loads them, and builds the search index.
func SetupTestFixture(t *testing.T, notes ...TestNote) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)
	contentDir := t.TempDir()

	for _, n := range notes {
		path := filepath.Join(contentDir, filepath.FromSlash(n.Path))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte(buildNoteFile(n)), 0600))
	}

	scanner := content.NewScanner(contentDir, content.ScannerOptions{Logger: logger})
	store := content.NewStore(scanner, logger)
	require.NoError(t, store.Load())

	ix := search.New(logger)
	require.NoError(t, ix.Open(":memory:"))
	require.NoError(t, ix.InitSchema())
	require.NoError(t, ix.Rebuild(store.Library()))

	t.Cleanup(func() {
		_ = ix.Close()
	})

	return &TestFixture{
		Store:        store,
		Index:        ix,
		Notifier:     notifier.New(),
		SessionStore: sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!")),
		contentDir:   contentDir,
	}
}

// ContentDir returns the fixture's temp content directory.
func (f *TestFixture) ContentDir() string {
	return f.contentDir
}

// Library returns the currently loaded library.
func (f *TestFixture) Library() *content.Library {
	return f.Store.Library()
}

func buildNoteFile(n TestNote) string {
	body := n.Body
	if body == "" {
		body = "Some note body."
	}
	if n.NoFront {
		return body + "\n"
	}

	out := "---\n"
	if n.Title != "" {
		out += "title: " + n.Title + "\n"
	}
	if n.Order != 0 {
		out += "order: " + strconv.Itoa(n.Order) + "\n"
	}
	if n.Draft {
		out += "draft: true\n"
	}
	out += "---\n\n"
	return out + body + "\n"
}
