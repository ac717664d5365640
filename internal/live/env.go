package live

import (
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/view"
)

// The session is the page's environment. All of these methods run on the
// session loop.

type element string

func (e element) ID() string { return string(e) }

func (s *Session) FindByID(id string) (page.Element, bool) {
	if !s.ids[id] {
		return nil, false
	}
	return element(id), true
}

func (s *Session) ScrollIntoView(el page.Element) {
	s.send(Op{Op: OpScrollIntoView, Target: el.ID()})
}

func (s *Session) ScrollToTop() {
	s.send(Op{Op: OpScrollTop})
}

func (s *Session) RootClasses() page.ClassList {
	return &classList{s: s, target: view.RootID, set: map[string]bool{}}
}

func (s *Session) ObserveIntersection(el page.Element, threshold float64, fn func(bool)) page.Subscription {
	id := el.ID()
	s.observers[id] = fn
	s.send(Op{Op: OpObserve, Target: id, Threshold: threshold})
	return page.SubscriptionFunc(func() {
		if _, ok := s.observers[id]; !ok {
			return
		}
		delete(s.observers, id)
		s.send(Op{Op: OpUnobserve, Target: id})
	})
}

func (s *Session) OnScroll(fn func(float64)) page.Subscription {
	s.nextScrollID++
	id := s.nextScrollID
	s.scrollFns[id] = fn
	return page.SubscriptionFunc(func() { delete(s.scrollFns, id) })
}

func (s *Session) GetItem(key string) (string, bool, error) {
	return s.storage.GetItem(key)
}

func (s *Session) SetItem(key, value string) error {
	return s.storage.SetItem(key, value)
}

// classList mirrors the class set of one browser element.
type classList struct {
	s      *Session
	target string
	set    map[string]bool
}

func (c *classList) Add(name string) {
	c.set[name] = true
	c.s.send(Op{Op: OpClassAdd, Target: c.target, Class: name})
}

func (c *classList) Remove(name string) {
	delete(c.set, name)
	c.s.send(Op{Op: OpClassRemove, Target: c.target, Class: name})
}

func (c *classList) Contains(name string) bool { return c.set[name] }
