package page

// DefaultVisibilityThreshold is the visible fraction a section needs before
// its entry animation runs.
const DefaultVisibilityThreshold = 0.15

// Visibility tracks whether one element has entered the viewport. Once it has,
// it stays visible: leaving the viewport does not replay the animation.
type Visibility struct {
	viewport  Viewport
	threshold float64
	onChange  func()

	el      Element
	sub     Subscription
	visible bool
}

// Observe returns an unbound handle. onChange, if set, runs when the flag
// flips to true.
func Observe(viewport Viewport, threshold float64, onChange func()) *Visibility {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultVisibilityThreshold
	}
	return &Visibility{viewport: viewport, threshold: threshold, onChange: onChange}
}

// Bind attaches the handle to el and registers the intersection watcher.
// Binding the same element again is a no-op; binding another one moves the
// watcher.
func (v *Visibility) Bind(el Element) {
	if el == nil {
		return
	}
	if v.sub != nil && v.el != nil && v.el.ID() == el.ID() {
		return
	}
	v.release()
	v.el = el
	v.sub = v.viewport.ObserveIntersection(el, v.threshold, v.update)
}

func (v *Visibility) update(intersecting bool) {
	if !intersecting || v.visible {
		return
	}
	v.visible = true
	if v.onChange != nil {
		v.onChange()
	}
}

func (v *Visibility) Visible() bool { return v.visible }

func (v *Visibility) Threshold() float64 { return v.threshold }

// Close unregisters the watcher. The flag keeps its last value.
func (v *Visibility) Close() {
	v.release()
	v.el = nil
}

func (v *Visibility) release() {
	if v.sub != nil {
		v.sub.Unsubscribe()
		v.sub = nil
	}
}
