package page

import (
	"testing"
	"time"
)

func newTestPage(env *fakeEnv) *Page {
	return New(env, Config{
		TaglineInterval: time.Second,
		NoticeDuration:  2 * time.Second,
		Taglines:        testTaglines,
		Sections: []Section{
			{ID: "about", Threshold: 0.1},
			{ID: "skills", Threshold: 0.5},
			{ID: "certificates"},
		},
	})
}

func TestPageMountAppliesPersistedTheme(t *testing.T) {
	env := newFakeEnv("about", "skills")
	env.items[DefaultStorageKey] = "true"

	p := newTestPage(env)
	p.Mount()

	st := p.State()
	if st.Theme != ThemeDark || !env.classes.Contains(DarkClass) {
		t.Errorf("theme = %q, dark class = %v", st.Theme, env.classes.Contains(DarkClass))
	}
	if st.Language != Khmer {
		t.Errorf("language = %q, want km", st.Language)
	}
	if st.Tagline != testTaglines[Khmer][0] {
		t.Errorf("tagline = %q", st.Tagline)
	}
}

func TestPageUnmountReleasesEverything(t *testing.T) {
	env := newFakeEnv("about", "skills", "certificates")
	p := newTestPage(env)
	p.Mount()
	p.Mount()

	if len(env.watches) != 3 || len(env.scrollFns) != 1 {
		t.Fatalf("watches=%d scroll=%d after mount", len(env.watches), len(env.scrollFns))
	}
	p.SubmitContact()
	if env.activeTimers() != 2 {
		t.Fatalf("active timers = %d, want tagline + notice", env.activeTimers())
	}

	p.Unmount()
	if len(env.watches) != 0 || len(env.scrollFns) != 0 || env.activeTimers() != 0 {
		t.Errorf("leaked: watches=%d scroll=%d timers=%d", len(env.watches), len(env.scrollFns), env.activeTimers())
	}
	if p.Mounted() {
		t.Error("still mounted")
	}
}

func TestPageSkipsUnrenderedSections(t *testing.T) {
	env := newFakeEnv("about")
	p := newTestPage(env)
	p.Mount()
	if len(env.watches) != 1 {
		t.Errorf("watches = %d, want 1", len(env.watches))
	}
}

func TestPageLanguageToggleResetsTagline(t *testing.T) {
	env := newFakeEnv()
	p := newTestPage(env)
	p.Mount()
	env.advance(2 * time.Second)
	if p.State().TaglineIndex != 2 {
		t.Fatalf("index = %d, want 2", p.State().TaglineIndex)
	}

	var kinds []ChangeKind
	p.OnChange(func(c Change) { kinds = append(kinds, c.Kind) })

	if got := p.ToggleLanguage(); got != English {
		t.Fatalf("ToggleLanguage() = %q", got)
	}
	st := p.State()
	if st.TaglineIndex != 0 || st.Tagline != "Developer" {
		t.Errorf("after toggle: index=%d tagline=%q", st.TaglineIndex, st.Tagline)
	}
	if len(kinds) != 1 || kinds[0] != ChangeLanguage {
		t.Errorf("changes = %v", kinds)
	}
	if got := (Text{KM: "ក", EN: "A"}).In(st.Language); got != "A" {
		t.Errorf("text after toggle = %q, want English", got)
	}
}

func TestPageChangeEvents(t *testing.T) {
	env := newFakeEnv("about", "skills")
	p := newTestPage(env)
	var got []Change
	p.OnChange(func(c Change) { got = append(got, c) })
	p.Mount()

	env.scrollTo(400)
	env.intersect("about", 0.2)
	env.advance(time.Second)
	p.ToggleTheme()
	p.ToggleMenu()
	p.GoToSection("missing")

	want := []Change{
		{Kind: ChangeBackToTop},
		{Kind: ChangeSection, Section: "about"},
		{Kind: ChangeTagline},
		{Kind: ChangeTheme},
		{Kind: ChangeMenu},
		{Kind: ChangeMenu},
	}
	if len(got) != len(want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	st := p.State()
	if !st.ShowBackToTop || !st.SectionVisible("about") || st.SectionVisible("skills") || st.MenuOpen {
		t.Errorf("state = %+v", st)
	}
}

func TestPageContactFlow(t *testing.T) {
	env := newFakeEnv()
	p := newTestPage(env)
	p.Mount()
	p.SetContactField(FieldName, "Sok")
	p.SetContactField(FieldEmail, "sok@example.com")
	p.SetContactField(FieldMessage, "hello")
	p.SubmitContact()

	st := p.State()
	if !st.Contact.Empty() || !st.NoticeVisible {
		t.Errorf("after submit: %+v", st)
	}
	env.advance(2 * time.Second)
	if p.State().NoticeVisible {
		t.Error("notice not dismissed")
	}
}

func TestInitialState(t *testing.T) {
	env := newFakeEnv()
	env.items[DefaultStorageKey] = "garbage"
	st := InitialState(NewStorageThemeStore(env, ""), testTaglines)
	if st.Theme != ThemeLight || st.Language != Khmer || st.Tagline != testTaglines[Khmer][0] {
		t.Errorf("InitialState = %+v", st)
	}
}

func TestChangeKindString(t *testing.T) {
	if ChangeBackToTop.String() != "back_to_top" || ChangeKind(99).String() != "unknown" {
		t.Error("unexpected ChangeKind names")
	}
}
