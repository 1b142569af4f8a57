package view

import (
	"strings"

	g "maragu.dev/gomponents"
)

// String renders a node to a string, for SSE element patches.
func String(n g.Node) (string, error) {
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
