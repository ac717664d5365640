package page

// Navigator scrolls to sections and owns the mobile menu flag.
type Navigator struct {
	doc      Document
	menuOpen bool
}

func NewNavigator(doc Document) *Navigator {
	return &Navigator{doc: doc}
}

func (n *Navigator) MenuOpen() bool { return n.menuOpen }

func (n *Navigator) ToggleMenu() bool {
	n.menuOpen = !n.menuOpen
	return n.menuOpen
}

// GoToSection scrolls section id into view when it is rendered and closes the
// menu either way. It reports whether the section was found.
func (n *Navigator) GoToSection(id string) bool {
	el, ok := n.doc.FindByID(id)
	if ok && el != nil {
		n.doc.ScrollIntoView(el)
	}
	n.menuOpen = false
	return ok
}

func (n *Navigator) ScrollToTop() {
	n.doc.ScrollToTop()
}
