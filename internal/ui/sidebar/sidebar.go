// Package sidebar renders the navigation sidebar and tracks the mobile
// overlay's open/closed state.
//
// The desktop panel is always rendered (the stylesheet hides it below
// the breakpoint); the mobile overlay pair (scrim + sliding panel) is
// rendered only while the overlay is open. Which link is active is a
// pure derivation from the current request path, never stored.
package sidebar

import (
	"sync"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/notedown-dev/notedown/internal/nav"
)

// ElementID is the id of the patchable sidebar region in the page.
const ElementID = "sidebar"

// OverlayState is the mobile overlay's state. Kept as an exhaustive
// two-value enumeration so animation callbacks can't introduce a third
// "partially open" state.
type OverlayState int

const (
	// OverlayClosed is the initial state; the overlay is unmounted.
	OverlayClosed OverlayState = iota
	// OverlayOpen mounts the scrim and the sliding panel.
	OverlayOpen
)

// Presenter owns the overlay state for one browsing session.
// Open and Close are idempotent; there are no failure modes.
type Presenter struct {
	mu    sync.Mutex
	state OverlayState
}

// NewPresenter returns a presenter with the overlay closed.
func NewPresenter() *Presenter {
	return &Presenter{state: OverlayClosed}
}

// Open mounts the mobile overlay. No-op if already open.
func (p *Presenter) Open() {
	p.mu.Lock()
	p.state = OverlayOpen
	p.mu.Unlock()
}

// Close dismisses the mobile overlay. No-op if already closed.
// Triggered by the explicit close control, by following any navigation
// link, and by activating the scrim.
func (p *Presenter) Close() {
	p.mu.Lock()
	p.state = OverlayClosed
	p.mu.Unlock()
}

// NavigationCommit resets the overlay after a link has been followed,
// so the next page renders without it.
func (p *Presenter) NavigationCommit() {
	p.Close()
}

// State returns the current overlay state.
func (p *Presenter) State() OverlayState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsOpen reports whether the overlay is mounted.
func (p *Presenter) IsOpen() bool {
	return p.State() == OverlayOpen
}

// View renders the sidebar region with the presenter's current state.
func (p *Presenter) View(sections []nav.Section, currentPath string) g.Node {
	return Render(sections, currentPath, p.State())
}

// Render is a pure function of the navigation data, the current path,
// and the overlay state. The desktop panel is always present; the
// overlay pair only while open.
func Render(sections []nav.Section, currentPath string, state OverlayState) g.Node {
	return h.Div(
		h.ID(ElementID),
		h.Aside(
			h.Class("sidebar sidebar-desktop"),
			sectionList(sections, currentPath),
		),
		g.If(state == OverlayOpen,
			g.Group([]g.Node{
				h.Div(
					h.Class("sidebar-scrim"),
					g.Attr("data-on-click", "@post('/sidebar/close')"),
				),
				h.Aside(
					h.Class("sidebar sidebar-overlay sidebar-enter"),
					h.Button(
						h.Class("sidebar-close"),
						g.Attr("aria-label", "Close menu"),
						g.Attr("data-on-click", "@post('/sidebar/close')"),
						g.Text("×"),
					),
					sectionList(sections, currentPath),
				),
			}),
		),
	)
}

// OpenButton renders the "open menu" control shown on narrow viewports.
func OpenButton() g.Node {
	return h.Button(
		h.Class("sidebar-open-btn"),
		g.Attr("aria-label", "Open menu"),
		g.Attr("data-on-click", "@post('/sidebar/open')"),
		g.Text("☰"),
	)
}

func sectionList(sections []nav.Section, currentPath string) g.Node {
	return h.Nav(
		h.Class("sidebar-nav"),
		g.Map(sections, func(sec nav.Section) g.Node {
			return h.Div(
				h.Class("sidebar-section"),
				h.H3(h.Class("sidebar-section-title"), g.Text(sec.Title)),
				h.Ul(
					g.Map(sec.Items, func(it nav.Item) g.Node {
						return h.Li(link(it, currentPath))
					}),
				),
			)
		}),
	)
}

// link renders one navigation link. The active class is the single
// rendering difference between the current page's item and the rest.
func link(it nav.Item, currentPath string) g.Node {
	cls := "sidebar-link"
	if it.IsActive(currentPath) {
		cls += " active"
	}
	return h.A(
		h.Href(it.Route()),
		h.Class(cls),
		g.Text(it.Title),
	)
}
