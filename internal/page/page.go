package page

import "time"

// ChangeKind names the part of the page state that changed.
type ChangeKind int

const (
	ChangeTheme ChangeKind = iota + 1
	ChangeLanguage
	ChangeMenu
	ChangeBackToTop
	ChangeSection
	ChangeTagline
	ChangeContact
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeTheme:
		return "theme"
	case ChangeLanguage:
		return "language"
	case ChangeMenu:
		return "menu"
	case ChangeBackToTop:
		return "back_to_top"
	case ChangeSection:
		return "section"
	case ChangeTagline:
		return "tagline"
	case ChangeContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Change is one state transition. Section is set for ChangeSection.
type Change struct {
	Kind    ChangeKind
	Section string
}

// Section is an animated region of the page and the visible fraction that
// triggers its entry animation.
type Section struct {
	ID        string
	Threshold float64
}

// Config holds the page's fixed settings.
type Config struct {
	StorageKey      string
	TaglineInterval time.Duration
	NoticeDuration  time.Duration
	ScrollThreshold float64
	Taglines        map[Language][]string
	Sections        []Section
}

// State is a snapshot of everything the renderer needs.
type State struct {
	Theme         Theme
	Language      Language
	MenuOpen      bool
	ShowBackToTop bool
	TaglineIndex  int
	Tagline       string
	Visible       map[string]bool
	NoticeVisible bool
	Contact       ContactFields
}

// SectionVisible reports whether section id has entered the viewport.
func (s State) SectionVisible(id string) bool { return s.Visible[id] }

// InitialState is what a page looks like before it mounts: the persisted theme
// applied, the default language, nothing scrolled into view.
func InitialState(store ThemeStore, taglines map[Language][]string) State {
	st := State{
		Theme:    LoadInitialTheme(store),
		Language: DefaultLanguage,
		Visible:  map[string]bool{},
	}
	if list := taglines[st.Language]; len(list) > 0 {
		st.Tagline = list[0]
	}
	return st
}

// Page wires the coordinators of one mounted page together.
type Page struct {
	env Environment
	cfg Config

	theme    *ThemeCoordinator
	lang     *LanguageCoordinator
	rotator  *Rotator
	scroll   *ScrollMonitor
	nav      *Navigator
	contact  *ContactForm
	sections map[string]*Visibility

	onChange []func(Change)
	mounted  bool
}

// New builds a page over env. Nothing is subscribed until Mount.
func New(env Environment, cfg Config) *Page {
	p := &Page{
		env:      env,
		cfg:      cfg,
		sections: make(map[string]*Visibility, len(cfg.Sections)),
	}
	p.theme = NewThemeCoordinator(NewStorageThemeStore(env, cfg.StorageKey), env.RootClasses())
	p.lang = NewLanguageCoordinator()
	p.rotator = NewRotator(env, cfg.TaglineInterval, cfg.Taglines, func(int) {
		p.emit(Change{Kind: ChangeTagline})
	})
	p.scroll = NewScrollMonitor(cfg.ScrollThreshold, func(bool) {
		p.emit(Change{Kind: ChangeBackToTop})
	})
	p.nav = NewNavigator(env)
	p.contact = NewContactForm(env, cfg.NoticeDuration, func() {
		p.emit(Change{Kind: ChangeContact})
	})
	for _, s := range cfg.Sections {
		id := s.ID
		p.sections[id] = Observe(env, s.Threshold, func() {
			p.emit(Change{Kind: ChangeSection, Section: id})
		})
	}
	return p
}

// OnChange registers fn to run after every state transition.
func (p *Page) OnChange(fn func(Change)) {
	p.onChange = append(p.onChange, fn)
}

func (p *Page) emit(c Change) {
	for _, fn := range p.onChange {
		fn(c)
	}
}

// Mount applies the persisted theme and acquires every subscription and
// timer. Mounting twice is a no-op.
func (p *Page) Mount() {
	if p.mounted {
		return
	}
	p.mounted = true
	p.theme.Init()
	p.scroll.Start(p.env)
	p.rotator.Start(p.lang.Language())
	for _, s := range p.cfg.Sections {
		if el, ok := p.env.FindByID(s.ID); ok {
			p.sections[s.ID].Bind(el)
		}
	}
}

// Unmount releases everything Mount acquired and cancels pending timers.
func (p *Page) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	p.scroll.Stop()
	p.rotator.Stop()
	p.contact.Stop()
	for _, v := range p.sections {
		v.Close()
	}
}

func (p *Page) Mounted() bool { return p.mounted }

func (p *Page) ToggleTheme() Theme {
	t := p.theme.Toggle()
	p.emit(Change{Kind: ChangeTheme})
	return t
}

// ToggleLanguage switches language and restarts the tagline rotation from the
// first entry of the new list.
func (p *Page) ToggleLanguage() Language {
	lang := p.lang.Toggle()
	p.rotator.SetLanguage(lang)
	p.emit(Change{Kind: ChangeLanguage})
	return lang
}

func (p *Page) ToggleMenu() bool {
	open := p.nav.ToggleMenu()
	p.emit(Change{Kind: ChangeMenu})
	return open
}

// GoToSection scrolls to section id and closes the menu.
func (p *Page) GoToSection(id string) bool {
	found := p.nav.GoToSection(id)
	p.emit(Change{Kind: ChangeMenu})
	return found
}

func (p *Page) ScrollToTop() { p.nav.ScrollToTop() }

func (p *Page) SetContactField(name, value string) { p.contact.SetField(name, value) }

// SubmitContact submits the contact form and returns what was sent.
func (p *Page) SubmitContact() ContactFields { return p.contact.Submit() }

// ShowNotice shows the contact confirmation for the notice duration, as after
// a submission that reached the server without the live channel.
func (p *Page) ShowNotice() { p.contact.ShowNotice() }

func (p *Page) State() State {
	st := State{
		Theme:         p.theme.Theme(),
		Language:      p.lang.Language(),
		MenuOpen:      p.nav.MenuOpen(),
		ShowBackToTop: p.scroll.Visible(),
		TaglineIndex:  p.rotator.Index(),
		Tagline:       p.rotator.Current(),
		Visible:       make(map[string]bool, len(p.sections)),
		NoticeVisible: p.contact.NoticeVisible(),
		Contact:       p.contact.Fields(),
	}
	for id, v := range p.sections {
		st.Visible[id] = v.Visible()
	}
	return st
}
