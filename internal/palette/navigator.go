package palette

import (
	"strings"

	"github.com/atomicstack/dashboard-palette/internal/logging/events"
)

// State is the navigator's position.
type State int

const (
	Idle State = iota
	Listing
	Paged
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listing:
		return "listing"
	case Paged:
		return "paged"
	default:
		return "unknown"
	}
}

// Navigator tracks whether the palette is open, the page being viewed and the
// query text. It implements Controller.
type Navigator struct {
	pages PageLookup
	open  bool
	page  string
	query string
}

// NewNavigator returns an idle navigator resolving pages through pages.
func NewNavigator(pages PageLookup) *Navigator {
	return &Navigator{pages: pages}
}

// State derives the current state from the open flag and page.
func (n *Navigator) State() State {
	if !n.open {
		return Idle
	}
	if n.page == "" {
		return Listing
	}
	return Paged
}

// IsOpen reports whether the palette is shown.
func (n *Navigator) IsOpen() bool { return n.open }

// Page returns the current page name, empty while listing.
func (n *Navigator) Page() string { return n.page }

// Query returns the search text.
func (n *Navigator) Query() string { return n.query }

// Open shows the palette on the merged listing.
func (n *Navigator) Open() {
	events.Page.Open(n.State().String())
	n.open = true
	n.page = ""
}

// Close hides the palette and clears the page and query.
func (n *Navigator) Close() {
	events.Page.Close(n.State().String())
	n.open = false
	n.page = ""
	n.query = ""
}

// SetOpen opens or closes the palette.
func (n *Navigator) SetOpen(open bool) {
	if open {
		n.Open()
		return
	}
	n.Close()
}

// SetPage switches to the named page. Unknown pages are rejected and leave
// the state untouched. The query is cleared unless preserveQuery is set.
// Calling SetPage while idle opens the palette on that page.
func (n *Navigator) SetPage(name string, preserveQuery bool) bool {
	name = strings.TrimSpace(name)
	if name == "" || n.pages == nil {
		events.Page.Reject(name)
		return false
	}
	if _, ok := n.pages.Page(name); !ok {
		events.Page.Reject(name)
		return false
	}
	events.Page.Set(name, preserveQuery)
	n.open = true
	n.page = name
	if !preserveQuery {
		n.query = ""
	}
	return true
}

// GoBack leaves the current page for the listing. The query is kept.
func (n *Navigator) GoBack() bool {
	if n.page == "" {
		return false
	}
	events.Page.Back(n.page)
	n.page = ""
	return true
}

// SetQuery replaces the search text.
func (n *Navigator) SetQuery(query string) {
	n.query = query
}

// Reconcile returns to the listing when the current page is no longer
// registered. It reports whether the page was dropped.
func (n *Navigator) Reconcile() bool {
	if n.page == "" || n.pages == nil {
		return false
	}
	if _, ok := n.pages.Page(n.page); ok {
		return false
	}
	return n.GoBack()
}

var _ Controller = (*Navigator)(nil)
