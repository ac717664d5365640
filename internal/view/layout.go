// Package view renders the portfolio page with gomponents. Every function is
// pure: the same content and page state always produce the same HTML.
package view

import (
	"fmt"
	"io"
	"time"

	g "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
)

// Element ids the live client addresses.
const (
	RootID        = "root"
	AppID         = "app"
	MenuID        = "mobile-menu"
	TaglineID     = "tagline"
	BackToTopID   = "back-to-top"
	ContactFormID = "contact-form"
	NoticeID      = "contact-notice"
)

// Classes and attributes shared with the live client.
const (
	HiddenClass = "hidden"
	InViewClass = "in-view"
	RevealClass = "reveal"
	ActionAttr  = "data-action"
	TargetAttr  = "data-target"
	LiveURLAttr = "data-live"
)

const (
	tailwindCDN  = "https://cdn.tailwindcss.com"
	tailwindConf = "tailwind.config = { darkMode: 'class' }"
)

// Options tune the document shell.
type Options struct {
	// LiveURL is the websocket endpoint the client connects to. Empty
	// leaves the page static.
	LiveURL string
	// NoticeDuration is how long a server-rendered contact notice stays up
	// when no live session takes it over.
	NoticeDuration time.Duration
}

// tr renders bilingual text in one language.
type tr page.Language

func (l tr) s(t page.Text) string { return t.In(page.Language(l)) }

func (l tr) t(t page.Text) g.Node { return g.Text(l.s(t)) }

// Document is the full HTML page.
func Document(c *content.Content, st page.State, opts Options) g.Node {
	l := tr(st.Language)
	return Doctype(
		HTML(ID(RootID), Lang(string(st.Language)), g.If(st.Theme.Dark(), Class(page.DarkClass)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(l.s(c.Profile.Name)+" | "+l.s(c.Labels.Brand))),
				Script(Src(tailwindCDN)),
				Script(g.Raw(tailwindConf)),
				Link(Rel("stylesheet"), Href("/static/site.css")),
			),
			Body(Class("bg-white text-gray-900 antialiased transition-colors dark:bg-gray-950 dark:text-gray-100"),
				g.If(opts.LiveURL != "", g.Attr(LiveURLAttr, opts.LiveURL)),
				g.If(opts.NoticeDuration > 0, Style(fmt.Sprintf("--notice-duration:%dms", opts.NoticeDuration.Milliseconds()))),
				Div(ID(AppID), App(c, st)),
				Script(Src("/static/live.js"), g.Attr("defer")),
			),
		),
	)
}

// App is everything inside the #app container. The live session re-renders
// it when the language changes.
func App(c *content.Content, st page.State) g.Node {
	l := tr(st.Language)
	return g.Group{
		navBar(c, st, l),
		Main(Class("pt-16"),
			heroSection(c, st, l),
			aboutSection(c, st, l),
			technologiesSection(c, st, l),
			experienceSection(c, st, l),
			skillsSection(c, st, l),
			nonSkillsSection(c, st, l),
			projectsSection(c, st, l),
			certificatesSection(c, st, l),
			servicesSection(c, st, l),
			contactSection(c, st, l),
		),
		footer(c, l),
		backToTop(c, st, l),
	}
}

// Render writes n to w.
func Render(w io.Writer, n g.Node) error {
	return n.Render(w)
}

func action(name string) g.Node { return g.Attr(ActionAttr, name) }

func navigate(section string) g.Node {
	return g.Group{action("navigate"), g.Attr(TargetAttr, section)}
}

func navBar(c *content.Content, st page.State, l tr) g.Node {
	link := func(extra string) func(content.NavItem) g.Node {
		return func(item content.NavItem) g.Node {
			return Li(A(
				Href("#"+item.Section),
				navigate(item.Section),
				Class("transition-colors hover:text-blue-600 dark:hover:text-blue-400"+extra),
				l.t(item.Label),
			))
		}
	}

	return Header(Class("fixed inset-x-0 top-0 z-40 border-b border-gray-200 bg-white/80 backdrop-blur dark:border-gray-800 dark:bg-gray-950/80"),
		Nav(Class("mx-auto flex h-16 max-w-6xl items-center justify-between px-4"),
			A(Href("#"+content.SectionHero), navigate(content.SectionHero), Class("text-lg font-bold"),
				l.t(c.Labels.Brand)),
			Ul(Class("hidden gap-6 md:flex"), g.Map(c.Nav, link(""))),
			Div(Class("flex items-center gap-2"),
				Button(Type("button"), ID("theme-toggle"), action("toggle_theme"),
					g.Attr("aria-label", l.s(c.Labels.ToggleTheme)),
					Class("rounded-full p-2 hover:bg-gray-100 dark:hover:bg-gray-800"),
					Span(Class("dark:hidden"), g.Text("🌙")),
					Span(Class("hidden dark:inline"), g.Text("☀️")),
				),
				Button(Type("button"), ID("language-toggle"), action("toggle_language"),
					g.Attr("aria-label", l.s(c.Labels.ToggleLang)),
					Class("rounded-full px-3 py-1 text-sm font-medium hover:bg-gray-100 dark:hover:bg-gray-800"),
					l.t(c.Labels.LanguageName),
				),
				Button(Type("button"), ID("menu-toggle"), action("toggle_menu"),
					g.Attr("aria-label", l.s(c.Labels.ToggleMenu)),
					g.Attr("aria-controls", MenuID),
					Class("rounded p-2 md:hidden hover:bg-gray-100 dark:hover:bg-gray-800"),
					g.Text("☰"),
				),
			),
		),
		Div(ID(MenuID),
			gc.Classes{"border-t border-gray-200 px-4 pb-4 md:hidden dark:border-gray-800": true, HiddenClass: !st.MenuOpen},
			Ul(Class("flex flex-col gap-3 pt-3"), g.Map(c.Nav, link(" block py-1"))),
		),
	)
}

// section wraps an animated page region. Visible sections carry the in-view
// class the stylesheet animates on.
func section(id string, visible bool, children ...g.Node) g.Node {
	return Section(ID(id),
		gc.Classes{RevealClass + " scroll-mt-16 px-4 py-20": true, InViewClass: visible},
		Div(Class("mx-auto max-w-6xl"), g.Group(children)),
	)
}

func heading(l tr, title page.Text, subtitle *page.Text) g.Node {
	return Div(Class("mb-12 text-center"),
		H2(Class("text-3xl font-bold md:text-4xl"), l.t(title)),
		g.Iff(subtitle != nil, func() g.Node {
			return P(Class("mt-3 text-gray-600 dark:text-gray-400"), l.t(*subtitle))
		}),
	)
}

func footer(c *content.Content, l tr) g.Node {
	return Footer(Class("border-t border-gray-200 py-8 text-center text-sm text-gray-500 dark:border-gray-800 dark:text-gray-400"),
		P(g.Text("© "), l.t(c.Footer.Copyright)),
		P(Class("mt-1"), l.t(c.Footer.Tagline)),
	)
}

func backToTop(c *content.Content, st page.State, l tr) g.Node {
	return Button(Type("button"), ID(BackToTopID), action("scroll_top"),
		g.Attr("aria-label", l.s(c.Labels.BackToTop)),
		gc.Classes{
			"fixed bottom-6 right-6 z-40 rounded-full bg-blue-600 p-3 text-white shadow-lg transition hover:bg-blue-700": true,
			HiddenClass: !st.ShowBackToTop,
		},
		g.Text("↑"),
	)
}
