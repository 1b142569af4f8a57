// Package common provides shared helpers for UI features.
package common

import (
	"net/http"
	"net/url"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie session holding reader preferences.
const SessionName = "notedown"

// themeKey is the session key for the color theme.
const themeKey = "theme"

// Theme returns the reader's theme preference, defaulting to "light".
func Theme(store sessions.Store, r *http.Request) string {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return "light"
	}
	if v, ok := session.Values[themeKey].(string); ok && (v == "light" || v == "dark") {
		return v
	}
	return "light"
}

// SaveTheme persists the reader's theme preference.
func SaveTheme(store sessions.Store, w http.ResponseWriter, r *http.Request, theme string) error {
	if theme != "dark" {
		theme = "light"
	}
	session, _ := store.Get(r, SessionName)
	session.Values[themeKey] = theme
	return session.Save(r, w)
}

// RefererPath extracts the path of the page a control was activated
// on, so patches keep the right link highlighted. Falls back to "/".
func RefererPath(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
