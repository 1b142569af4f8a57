package docs

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notedown-dev/notedown/internal/testutil"
	"github.com/notedown-dev/notedown/internal/ui/features"
	"github.com/notedown-dev/notedown/internal/ui/notifier"
	"github.com/notedown-dev/notedown/internal/ui/sidebar"
)

func setupRouter(t *testing.T) (*features.TestFixture, *sidebar.Presenter, chi.Router) {
	t.Helper()

	fixture := features.SetupTestFixture(t,
		features.TestNote{Path: "go/intro.md", Title: "Intro", Order: 1, Body: "Go basics."},
		features.TestNote{Path: "go/generics.md", Title: "Generics", Order: 2, Body: "Type parameters."},
		features.TestNote{Path: "rust/ownership.md", Title: "Ownership", Body: "Borrow checker."},
	)

	presenter := sidebar.NewPresenter()
	router := chi.NewRouter()
	require.NoError(t, SetupRoutes(router, fixture.Store, fixture.SessionStore,
		fixture.Notifier, presenter, "Test Notes", false, testutil.NewTestLogger(t)))

	return fixture, presenter, router
}

func TestDocPage(t *testing.T) {
	_, _, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/docs/go/intro", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "<!doctype html>")
	assert.Contains(t, body, "<title>Intro - Test Notes</title>")
	assert.Contains(t, body, "Go basics.")
	assert.Contains(t, body, `<a href="/docs/go/intro" class="sidebar-link active">Intro</a>`)
	// Exactly one link carries the active class.
	assert.Equal(t, 1, strings.Count(body, `sidebar-link active`))
}

func TestDocPageNotFound(t *testing.T) {
	_, _, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/docs/go/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Note not found")
	assert.Contains(t, body, "/docs/go/missing")
	// The sidebar still renders, with nothing highlighted.
	assert.NotContains(t, body, "sidebar-link active")
}

func TestDocPageCommitsNavigation(t *testing.T) {
	_, presenter, router := setupRouter(t)

	presenter.Open()
	require.True(t, presenter.IsOpen())

	req := httptest.NewRequest(http.MethodGet, "/docs/go/intro", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Rendering a page is a navigation commit: the overlay closes.
	assert.False(t, presenter.IsOpen())
	assert.NotContains(t, rec.Body.String(), "sidebar-scrim")
}

func TestSidebarOpenAndClose(t *testing.T) {
	_, presenter, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/sidebar/open", nil)
	req.Header.Set("Referer", "http://localhost/docs/go/intro")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	assert.True(t, presenter.IsOpen())

	patch := rec.Body.String()
	assert.Contains(t, patch, "sidebar-overlay")
	assert.Contains(t, patch, "sidebar-scrim")
	// The overlay keeps the current page highlighted.
	assert.Contains(t, patch, `class="sidebar-link active"`)

	req = httptest.NewRequest(http.MethodPost, "/sidebar/close", nil)
	req.Header.Set("Referer", "http://localhost/docs/go/intro")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.False(t, presenter.IsOpen())
	assert.NotContains(t, rec.Body.String(), "sidebar-scrim")
}

func TestSidebarCloseWhenAlreadyClosed(t *testing.T) {
	_, presenter, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/sidebar/close", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, presenter.IsOpen())
}

func TestUpdatesPatchesArticle(t *testing.T) {
	fixture, _, router := setupRouter(t)

	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/updates?slug=go/intro", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// Wait until the handler has subscribed before broadcasting.
	require.Eventually(t, func() bool {
		return fixture.Notifier.ListenerCount() == 1
	}, time.Second, 10*time.Millisecond)

	fixture.Notifier.Broadcast(notifier.Event{Path: "go/intro.md"})

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var saw struct{ sidebar, article bool }
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, `id="sidebar"`) {
			saw.sidebar = true
		}
		if strings.Contains(line, `id="doc-content"`) {
			saw.article = true
		}
		if saw.sidebar && saw.article {
			break
		}
	}
	assert.True(t, saw.sidebar, "expected a sidebar patch")
	assert.True(t, saw.article, "expected an article patch")
}
