// Package live runs one page per browser connection. The browser reports
// scrolls, intersections and clicks over a websocket; the session feeds them
// to a page.Page on a single goroutine and sends back DOM operations.
package live

// Client event types.
const (
	EventScroll         = "scroll"
	EventIntersect      = "intersect"
	EventToggleTheme    = "toggle_theme"
	EventToggleLanguage = "toggle_language"
	EventToggleMenu     = "toggle_menu"
	EventNavigate       = "navigate"
	EventScrollTop      = "scroll_top"
	EventInput          = "input"
	EventContact        = "contact"
)

// Event is a message from the browser.
type Event struct {
	Type         string  `json:"type"`
	Target       string  `json:"target,omitempty"`
	Offset       float64 `json:"offset,omitempty"`
	Intersecting bool    `json:"intersecting,omitempty"`
	Value        string  `json:"value,omitempty"`
	Name         string  `json:"name,omitempty"`
	Email        string  `json:"email,omitempty"`
	Message      string  `json:"message,omitempty"`
}

// Server operation types.
const (
	OpClassAdd       = "class_add"
	OpClassRemove    = "class_remove"
	OpScrollIntoView = "scroll_into_view"
	OpScrollTop      = "scroll_top"
	OpObserve        = "observe"
	OpUnobserve      = "unobserve"
	OpText           = "text"
	OpHTML           = "html"
	OpAttr           = "attr"
	OpResetForm      = "reset_form"
)

// Op is a DOM operation for the browser to apply.
type Op struct {
	Op        string  `json:"op"`
	Target    string  `json:"target,omitempty"`
	Class     string  `json:"class,omitempty"`
	Name      string  `json:"name,omitempty"`
	Value     string  `json:"value,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}
