package page

import (
	"errors"
	"time"
)

type fakeElement string

func (e fakeElement) ID() string { return string(e) }

type fakeClasses map[string]bool

func (c fakeClasses) Add(class string)            { c[class] = true }
func (c fakeClasses) Remove(class string)         { delete(c, class) }
func (c fakeClasses) Contains(class string) bool { return c[class] }

type intersectionWatch struct {
	el        Element
	threshold float64
	fn        func(bool)
}

type fakeTimer struct {
	sched   *fakeEnv
	every   time.Duration
	due     time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() { t.stopped = true }

// fakeEnv is a single-goroutine stand-in for a browser tab.
type fakeEnv struct {
	ids       map[string]bool
	classes   fakeClasses
	scrolled  []string
	toTop     int
	offset    float64
	watches   map[int]*intersectionWatch
	scrollFns map[int]func(float64)
	nextSub   int

	items    map[string]string
	getErr   error
	setErr   error
	setCalls int

	now    time.Duration
	timers []*fakeTimer
}

func newFakeEnv(ids ...string) *fakeEnv {
	e := &fakeEnv{
		ids:       map[string]bool{},
		classes:   fakeClasses{},
		watches:   map[int]*intersectionWatch{},
		scrollFns: map[int]func(float64){},
		items:     map[string]string{},
	}
	for _, id := range ids {
		e.ids[id] = true
	}
	return e
}

func (e *fakeEnv) FindByID(id string) (Element, bool) {
	if !e.ids[id] {
		return nil, false
	}
	return fakeElement(id), true
}

func (e *fakeEnv) ScrollIntoView(el Element) { e.scrolled = append(e.scrolled, el.ID()) }
func (e *fakeEnv) ScrollToTop()              { e.toTop++ }
func (e *fakeEnv) RootClasses() ClassList    { return e.classes }

func (e *fakeEnv) ObserveIntersection(el Element, threshold float64, fn func(bool)) Subscription {
	e.nextSub++
	id := e.nextSub
	e.watches[id] = &intersectionWatch{el: el, threshold: threshold, fn: fn}
	return SubscriptionFunc(func() { delete(e.watches, id) })
}

func (e *fakeEnv) OnScroll(fn func(float64)) Subscription {
	e.nextSub++
	id := e.nextSub
	e.scrollFns[id] = fn
	return SubscriptionFunc(func() { delete(e.scrollFns, id) })
}

// intersect reports a visible fraction for element id to every watcher of it.
func (e *fakeEnv) intersect(id string, fraction float64) {
	for _, w := range e.watches {
		if w.el.ID() == id {
			w.fn(fraction >= w.threshold)
		}
	}
}

func (e *fakeEnv) scrollTo(offset float64) {
	e.offset = offset
	for _, fn := range e.scrollFns {
		fn(offset)
	}
}

func (e *fakeEnv) GetItem(key string) (string, bool, error) {
	if e.getErr != nil {
		return "", false, e.getErr
	}
	v, ok := e.items[key]
	return v, ok, nil
}

func (e *fakeEnv) SetItem(key, value string) error {
	e.setCalls++
	if e.setErr != nil {
		return e.setErr
	}
	e.items[key] = value
	return nil
}

func (e *fakeEnv) Every(d time.Duration, fn func()) Timer {
	t := &fakeTimer{sched: e, every: d, due: e.now + d, fn: fn}
	e.timers = append(e.timers, t)
	return t
}

func (e *fakeEnv) After(d time.Duration, fn func()) Timer {
	t := &fakeTimer{sched: e, due: e.now + d, fn: fn}
	e.timers = append(e.timers, t)
	return t
}

// advance moves the fake clock forward, firing due timers in order.
func (e *fakeEnv) advance(d time.Duration) {
	end := e.now + d
	for {
		var next *fakeTimer
		for _, t := range e.timers {
			if t.stopped || t.due > end {
				continue
			}
			if next == nil || t.due < next.due {
				next = t
			}
		}
		if next == nil {
			break
		}
		e.now = next.due
		if next.every > 0 {
			next.due += next.every
		} else {
			next.stopped = true
		}
		next.fn()
	}
	e.now = end
}

func (e *fakeEnv) activeTimers() int {
	n := 0
	for _, t := range e.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

var errStorage = errors.New("storage unavailable")
