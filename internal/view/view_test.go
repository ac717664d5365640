package view

import (
	"html"
	"strings"
	"testing"
	"time"

	g "maragu.dev/gomponents"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

func baseState() page.State {
	return page.State{
		Theme:    page.ThemeLight,
		Language: page.Khmer,
		Visible:  map[string]bool{},
	}
}

func TestDocumentAppliesDarkTheme(t *testing.T) {
	c := content.Default()
	st := baseState()

	light := render(t, Document(c, st, Options{}))
	if strings.Contains(light, `class="dark"`) {
		t.Error("light theme rendered the dark class")
	}
	if !strings.HasPrefix(strings.ToLower(light), "<!doctype html>") {
		t.Errorf("missing doctype: %.40s", light)
	}

	st.Theme = page.ThemeDark
	dark := render(t, Document(c, st, Options{LiveURL: "/ws"}))
	if !strings.Contains(dark, `<html id="root" lang="km" class="dark">`) {
		t.Errorf("dark theme not on root element")
	}
	if !strings.Contains(dark, `data-live="/ws"`) {
		t.Error("live url missing")
	}
}

func TestDocumentLanguage(t *testing.T) {
	c := content.Default()
	st := baseState()

	km := render(t, Document(c, st, Options{}))
	if !strings.Contains(km, c.Hero.Greeting.KM) || strings.Contains(km, html.EscapeString(c.Hero.Greeting.EN)) {
		t.Error("khmer page should only carry khmer greeting")
	}

	st.Language = page.English
	en := render(t, Document(c, st, Options{}))
	if !strings.Contains(en, `lang="en"`) || !strings.Contains(en, html.EscapeString(c.Hero.Greeting.EN)) {
		t.Error("english page missing english text")
	}
}

func TestTaglineFallback(t *testing.T) {
	c := content.Default()
	st := baseState()
	if got := Tagline(c, st); got != c.Hero.Taglines[0].KM {
		t.Errorf("Tagline = %q", got)
	}
	st.Tagline = "X"
	if got := Tagline(c, st); got != "X" {
		t.Errorf("Tagline = %q", got)
	}
	out := render(t, App(c, st))
	if !strings.Contains(out, `<span id="tagline" aria-live="polite">X</span>`) {
		t.Error("tagline element missing")
	}
}

func TestSectionVisibilityClass(t *testing.T) {
	c := content.Default()
	st := baseState()
	st.Visible[content.SectionSkills] = true

	out := render(t, App(c, st))
	if !strings.Contains(out, `<section id="skills" class="in-view reveal scroll-mt-16 px-4 py-20">`) {
		t.Error("visible section missing in-view class")
	}
	if !strings.Contains(out, `<section id="about" class="reveal scroll-mt-16 px-4 py-20">`) {
		t.Error("hidden section should not carry in-view")
	}
}

// openingTag returns the start tag of the element with the given id.
func openingTag(t *testing.T, doc, id string) string {
	t.Helper()
	i := strings.Index(doc, `id="`+id+`"`)
	if i < 0 {
		t.Fatalf("%s missing", id)
	}
	return doc[i : i+strings.Index(doc[i:], ">")]
}

func hidden(tag string) bool {
	return strings.Contains(tag, " "+HiddenClass+`"`) || strings.Contains(tag, `"`+HiddenClass+" ") ||
		strings.Contains(tag, `"`+HiddenClass+`"`)
}

func TestMenuBackToTopAndNotice(t *testing.T) {
	c := content.Default()
	st := baseState()
	ids := []string{MenuID, BackToTopID, NoticeID}

	closed := render(t, App(c, st))
	for _, id := range ids {
		if tag := openingTag(t, closed, id); !hidden(tag) {
			t.Errorf("%s should start hidden: %s", id, tag)
		}
	}

	st.MenuOpen = true
	st.ShowBackToTop = true
	st.NoticeVisible = true
	open := render(t, App(c, st))
	for _, id := range ids {
		if tag := openingTag(t, open, id); hidden(tag) {
			t.Errorf("%s should be shown: %s", id, tag)
		}
	}
}

func TestContactFormKeepsValues(t *testing.T) {
	c := content.Default()
	st := baseState()
	st.Contact = page.ContactFields{Name: "Dara", Email: "d@example.com", Message: "<hi>"}

	out := render(t, App(c, st))
	for _, want := range []string{
		`name="name"`, `value="Dara"`, `value="d@example.com"`, `&lt;hi&gt;</textarea>`,
		`action="/contact"`, `method="post"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("contact form missing %s", want)
		}
	}
}

func TestContactFieldsRequired(t *testing.T) {
	out := render(t, App(content.Default(), baseState()))
	for _, id := range []string{"contact-name", "contact-email", "contact-message"} {
		if tag := openingTag(t, out, id); !strings.Contains(tag, " required") {
			t.Errorf("%s is not required: %s", id, tag)
		}
	}
}

func TestNoticeDurationOnBody(t *testing.T) {
	c := content.Default()
	out := render(t, Document(c, baseState(), Options{NoticeDuration: 2 * time.Second}))
	if !strings.Contains(out, `style="--notice-duration:2000ms"`) {
		t.Error("notice duration not passed to the stylesheet")
	}
	if strings.Contains(render(t, Document(c, baseState(), Options{})), "--notice-duration") {
		t.Error("zero notice duration rendered")
	}
}

func TestServicesSection(t *testing.T) {
	c := content.Default()
	st := baseState()
	st.Language = page.English
	out := render(t, App(c, st))
	if !strings.Contains(out, `<section id="services"`) {
		t.Fatal("services section missing")
	}
	for _, item := range c.Services.Items {
		if !strings.Contains(out, html.EscapeString(item.Title.EN)) {
			t.Errorf("service %q missing", item.Title.EN)
		}
	}
	if !strings.Contains(out, "• Wi-Fi Configuration") {
		t.Error("service examples missing")
	}
}

func TestNavLabelsFollowLanguage(t *testing.T) {
	c := content.Default()
	for _, lang := range []page.Language{page.Khmer, page.English} {
		st := baseState()
		st.Language = lang
		out := render(t, App(c, st))
		for _, item := range c.Nav {
			want := html.EscapeString(item.Label.In(lang))
			other := html.EscapeString(item.Label.In(lang.Other()))
			if !strings.Contains(out, ">"+want+"<") {
				t.Errorf("%s: nav label %q missing", lang, want)
			}
			if want != other && strings.Contains(out, ">"+other+"<") {
				t.Errorf("%s: nav label %q in the other language", lang, other)
			}
		}
	}
}

func TestProjectsDeviceMockups(t *testing.T) {
	c := content.Default()
	out := render(t, App(c, baseState()))
	if !strings.Contains(out, "device-iphone") || !strings.Contains(out, "device-android") {
		t.Error("device mockups missing")
	}
	if strings.Count(out, "<video") != 2 {
		t.Errorf("expected 2 videos, got %d", strings.Count(out, "<video"))
	}
}

func TestAboutRendersMarkdown(t *testing.T) {
	c := content.Default()
	st := baseState()
	st.Language = page.English
	out := render(t, App(c, st))
	if !strings.Contains(out, "<strong>5 years</strong>") {
		t.Error("about body not rendered as markdown")
	}
}

func TestSpherePoints(t *testing.T) {
	for i := 0; i < 10; i++ {
		x, y, z := spherePoint(i, 10)
		if r := x*x + y*y + z*z; r < 0.999 || r > 1.001 {
			t.Errorf("point %d off the unit sphere: r^2 = %f", i, r)
		}
	}
	if _, _, z := spherePoint(0, 1); z != 1 {
		t.Error("single point should face forward")
	}
}

func TestCarouselDuplicatesTrack(t *testing.T) {
	out := render(t, Carousel([]g.Node{g.Text("a")}))
	if strings.Count(out, "carousel-track") != 2 {
		t.Errorf("carousel = %s", out)
	}
	if !strings.Contains(out, `aria-hidden="true"`) {
		t.Error("duplicate track should be hidden from assistive tech")
	}
}
