package page

import "time"

// DefaultTaglineInterval is how long each hero role title stays up.
const DefaultTaglineInterval = 3 * time.Second

// Rotator cycles the hero tagline through the role list of the current
// language.
type Rotator struct {
	sched    Scheduler
	interval time.Duration
	lists    map[Language][]string
	onChange func(index int)

	lang   Language
	index  int
	timer  Timer
	active bool
}

func NewRotator(sched Scheduler, interval time.Duration, lists map[Language][]string, onChange func(index int)) *Rotator {
	if interval <= 0 {
		interval = DefaultTaglineInterval
	}
	return &Rotator{
		sched:    sched,
		interval: interval,
		lists:    lists,
		onChange: onChange,
		lang:     DefaultLanguage,
	}
}

// Start begins rotating the list of lang from index 0, replacing any running
// timer.
func (r *Rotator) Start(lang Language) {
	r.Stop()
	r.active = true
	r.lang = lang
	r.index = 0
	if len(r.lists[lang]) > 1 {
		r.timer = r.sched.Every(r.interval, r.advance)
	}
}

// SetLanguage switches lists and resets to the first entry. A started rotator
// keeps rotating with a fresh timer.
func (r *Rotator) SetLanguage(lang Language) {
	if r.active {
		r.Start(lang)
		return
	}
	r.lang = lang
	r.index = 0
}

func (r *Rotator) advance() {
	n := len(r.lists[r.lang])
	if n == 0 {
		return
	}
	r.index = (r.index + 1) % n
	if r.onChange != nil {
		r.onChange(r.index)
	}
}

func (r *Rotator) Index() int { return r.index }

// Current returns the tagline on display, or "" for an empty list.
func (r *Rotator) Current() string {
	list := r.lists[r.lang]
	if len(list) == 0 {
		return ""
	}
	return list[r.index%len(list)]
}

// Running reports whether a rotation timer is scheduled.
func (r *Rotator) Running() bool { return r.timer != nil }

func (r *Rotator) Stop() {
	r.active = false
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
