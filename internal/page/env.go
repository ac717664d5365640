// Package page holds the state of one mounted portfolio page: theme,
// language, section visibility, back-to-top visibility, the rotating hero
// tagline, the mobile menu and the contact form.
//
// Everything the page needs from the browser goes through Environment, so a
// page can be driven by a live websocket session or by fakes in tests. A Page
// is not safe for concurrent use; callers drive it from a single goroutine.
package page

import "time"

// Element is a rendered node the document can locate by id.
type Element interface {
	ID() string
}

// ClassList is the class list of the document root.
type ClassList interface {
	Add(class string)
	Remove(class string)
	Contains(class string) bool
}

// Subscription is released exactly once when its owner goes away.
type Subscription interface {
	Unsubscribe()
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop()
}

// Document locates and scrolls rendered sections.
type Document interface {
	FindByID(id string) (Element, bool)
	ScrollIntoView(el Element)
	ScrollToTop()
	RootClasses() ClassList
}

// Viewport reports intersection and scroll events.
type Viewport interface {
	// ObserveIntersection calls fn with the latest intersection result of el
	// against threshold, the minimum visible fraction of el.
	ObserveIntersection(el Element, threshold float64, fn func(intersecting bool)) Subscription
	// OnScroll calls fn with the vertical scroll offset in pixels.
	OnScroll(fn func(offsetY float64)) Subscription
}

// Storage is the key/value slot the theme preference is persisted in.
type Storage interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Scheduler runs callbacks later on the page's goroutine.
type Scheduler interface {
	Every(d time.Duration, fn func()) Timer
	After(d time.Duration, fn func()) Timer
}

// Environment is everything a Page consumes from its host.
type Environment interface {
	Document
	Viewport
	Storage
	Scheduler
}

type subscriptionFunc func()

func (f subscriptionFunc) Unsubscribe() { f() }

// SubscriptionFunc adapts a release function to a Subscription.
func SubscriptionFunc(release func()) Subscription {
	return subscriptionFunc(release)
}
