package page

// DefaultScrollThreshold is the offset in pixels from which the back-to-top
// control shows.
const DefaultScrollThreshold = 300

// ScrollMonitor derives back-to-top visibility from scroll events.
type ScrollMonitor struct {
	threshold float64
	onChange  func(visible bool)

	sub     Subscription
	visible bool
}

func NewScrollMonitor(threshold float64, onChange func(visible bool)) *ScrollMonitor {
	if threshold <= 0 {
		threshold = DefaultScrollThreshold
	}
	return &ScrollMonitor{threshold: threshold, onChange: onChange}
}

// Start subscribes to viewport scroll events. Starting twice keeps the first
// subscription.
func (m *ScrollMonitor) Start(viewport Viewport) {
	if m.sub != nil {
		return
	}
	m.sub = viewport.OnScroll(m.Update)
}

// Update applies one scroll offset.
func (m *ScrollMonitor) Update(offsetY float64) {
	visible := offsetY >= m.threshold
	if visible == m.visible {
		return
	}
	m.visible = visible
	if m.onChange != nil {
		m.onChange(visible)
	}
}

func (m *ScrollMonitor) Visible() bool { return m.visible }

func (m *ScrollMonitor) Stop() {
	if m.sub != nil {
		m.sub.Unsubscribe()
		m.sub = nil
	}
}
