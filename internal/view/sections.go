package view

import (
	"fmt"
	"log"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
)

// Tagline is the text of the rotating hero role title. Before the rotator
// has produced anything it falls back to the first entry.
func Tagline(c *content.Content, st page.State) string {
	if st.Tagline != "" {
		return st.Tagline
	}
	if len(c.Hero.Taglines) == 0 {
		return ""
	}
	return c.Hero.Taglines[0].In(st.Language)
}

func heroSection(c *content.Content, st page.State, l tr) g.Node {
	return Section(ID(content.SectionHero),
		Class("flex min-h-[calc(100vh-4rem)] items-center px-4"),
		Div(Class("mx-auto flex max-w-6xl flex-col-reverse items-center gap-12 md:flex-row"),
			Div(Class("flex-1 text-center md:text-left"),
				P(Class("text-lg text-gray-600 dark:text-gray-400"), l.t(c.Hero.Greeting)),
				H1(Class("mt-2 text-4xl font-extrabold md:text-6xl"), l.t(c.Profile.Name)),
				P(Class("mt-4 text-2xl font-semibold text-blue-600 dark:text-blue-400"),
					Span(ID(TaglineID), g.Attr("aria-live", "polite"), g.Text(Tagline(c, st))),
				),
				P(Class("mt-6 text-xl"), l.t(c.Hero.Title)),
				P(Class("mt-2 text-gray-600 dark:text-gray-400"), l.t(c.Hero.Subtitle)),
				A(Href("#"+content.SectionAbout), navigate(content.SectionAbout),
					Class("mt-8 inline-block rounded-full bg-blue-600 px-6 py-3 font-medium text-white hover:bg-blue-700"),
					l.t(c.Hero.CTA),
				),
			),
			Div(Class("flex size-56 shrink-0 items-center justify-center rounded-full bg-gradient-to-br from-blue-500 to-purple-600 text-6xl font-bold text-white shadow-xl md:size-72"),
				g.Text(c.Profile.Initials),
			),
		),
	)
}

// markdown renders long-form text, falling back to plain text when the
// source cannot be converted.
func markdown(src string) g.Node {
	html, err := content.Markdown(src)
	if err != nil {
		log.Printf("view: %v", err)
		return P(g.Text(src))
	}
	return g.Raw(html)
}

func aboutSection(c *content.Content, st page.State, l tr) g.Node {
	a := c.About
	return section(content.SectionAbout, st.SectionVisible(content.SectionAbout),
		heading(l, a.Heading, nil),
		Div(Class("grid gap-12 md:grid-cols-2"),
			Div(
				Div(Class("prose max-w-none space-y-4 dark:prose-invert"), markdown(l.s(a.Body))),
				Div(Class("mt-8 grid grid-cols-2 gap-4"),
					g.Map(a.Stats, func(s content.Stat) g.Node {
						return Div(Class("rounded-xl bg-gray-100 p-4 text-center dark:bg-gray-900"),
							P(Class("text-2xl font-bold text-blue-600 dark:text-blue-400"), l.t(s.Value)),
							P(Class("text-sm text-gray-600 dark:text-gray-400"), l.t(s.Label)),
						)
					}),
				),
			),
			Div(
				H3(Class("mb-4 text-xl font-semibold"), l.t(a.Education)),
				Ul(Class("space-y-3"),
					g.Map(a.Degrees, func(d page.Text) g.Node {
						return Li(Class("rounded-lg border border-gray-200 p-4 dark:border-gray-800"), l.t(d))
					}),
				),
			),
		),
	)
}

func technologiesSection(c *content.Content, st page.State, l tr) g.Node {
	t := c.Technologies
	return section(content.SectionTechnologies, st.SectionVisible(content.SectionTechnologies),
		heading(l, t.Heading, &t.Subtitle),
		IconCloud(t.IconURLs()),
	)
}

func experienceSection(c *content.Content, st page.State, l tr) g.Node {
	e := c.Experience
	return section(content.SectionExperience, st.SectionVisible(content.SectionExperience),
		heading(l, e.Heading, nil),
		Ol(Class("relative space-y-10 border-l border-gray-200 pl-8 dark:border-gray-800"),
			g.Map(e.Jobs, func(j content.Job) g.Node {
				return Li(Class("relative"),
					Span(Class("absolute -left-[2.55rem] top-1 size-4 rounded-full bg-blue-600")),
					Div(Class("flex items-center gap-4"),
						g.If(j.Logo != "", Img(Src(j.Logo), Alt(j.Company), Class("size-12 rounded-lg object-contain"), g.Attr("loading", "lazy"))),
						Div(
							H3(Class("text-xl font-semibold"), l.t(j.Role)),
							P(Class("text-gray-600 dark:text-gray-400"), g.Text(j.Company), g.Text(" · "), l.t(j.Period)),
						),
					),
					Ul(Class("mt-3 list-disc space-y-1 pl-5"),
						g.Map(j.Bullets, func(b page.Text) g.Node { return Li(l.t(b)) }),
					),
				)
			}),
		),
	)
}

func skillsSection(c *content.Content, st page.State, l tr) g.Node {
	s := c.Skills
	return section(content.SectionSkills, st.SectionVisible(content.SectionSkills),
		heading(l, s.Heading, &s.Subtitle),
		Div(Class("grid gap-8 md:grid-cols-3"),
			g.Map(s.Groups, func(grp content.SkillGroup) g.Node {
				return Div(Class("rounded-2xl border border-gray-200 p-6 dark:border-gray-800"),
					H3(Class("mb-6 flex items-center gap-2 text-xl font-semibold"),
						Span(g.Text(grp.Icon)), l.t(grp.Title)),
					Div(Class("space-y-4"),
						g.Map(grp.Items, func(sk content.Skill) g.Node {
							return Div(
								Div(Class("mb-1 flex justify-between text-sm"),
									Span(l.t(sk.Name)),
									Span(g.Textf("%d%%", sk.Level)),
								),
								Div(Class("h-2 rounded-full bg-gray-200 dark:bg-gray-800"),
									g.Attr("role", "progressbar"),
									g.Attr("aria-valuenow", fmt.Sprint(sk.Level)),
									g.Attr("aria-valuemin", "0"),
									g.Attr("aria-valuemax", "100"),
									Div(Class(fmt.Sprintf("skill-bar h-2 rounded-full bg-%s-500", grp.Color)),
										Style(fmt.Sprintf("width:%d%%", sk.Level))),
								),
							)
						}),
					),
				)
			}),
		),
	)
}

func nonSkillsSection(c *content.Content, st page.State, l tr) g.Node {
	n := c.NonSkills
	var outer, inner []string
	for i, t := range n.Traits {
		if i%2 == 0 {
			outer = append(outer, t.Icon)
		} else {
			inner = append(inner, t.Icon)
		}
	}
	return section(content.SectionNonSkills, st.SectionVisible(content.SectionNonSkills),
		heading(l, n.Heading, nil),
		Div(Class("grid items-center gap-12 md:grid-cols-2"),
			Div(Class("relative mx-auto flex size-80 items-center justify-center"),
				Span(Class("text-4xl font-bold"), g.Text(c.Profile.Initials)),
				g.If(len(outer) > 0, OrbitingCircles(outer, 140, false)),
				g.If(len(inner) > 0, OrbitingCircles(inner, 80, true)),
			),
			Div(Class("grid gap-4 sm:grid-cols-2"),
				g.Map(n.Traits, func(t content.Trait) g.Node {
					return Div(Class("rounded-xl bg-gray-100 p-5 dark:bg-gray-900"),
						Span(Class("text-3xl"), g.Text(t.Icon)),
						H3(Class("mt-2 font-semibold"), l.t(t.Title)),
						P(Class("text-sm text-gray-600 dark:text-gray-400"), l.t(t.Description)),
					)
				}),
			),
		),
	)
}

func deviceMockup(p content.Project) g.Node {
	switch p.Device {
	case content.DeviceIPhone:
		return Iphone15Pro(p.Video)
	case content.DeviceAndroid:
		return Android(p.Video)
	default:
		return nil
	}
}

func projectsSection(c *content.Content, st page.State, l tr) g.Node {
	pr := c.Projects
	return section(content.SectionProjects, st.SectionVisible(content.SectionProjects),
		heading(l, pr.Heading, &pr.Subtitle),
		Div(Class("grid gap-8 md:grid-cols-2 lg:grid-cols-3"),
			g.Map(pr.Items, func(p content.Project) g.Node {
				return Article(Class("flex flex-col rounded-2xl border border-gray-200 p-6 dark:border-gray-800"),
					deviceMockup(p),
					Div(Class("mt-6 flex items-center gap-2"),
						Span(Class("text-2xl"), g.Text(p.Icon)),
						H3(Class("text-xl font-semibold"), l.t(p.Title)),
					),
					P(Class("mt-2 flex-1 text-gray-600 dark:text-gray-400"), l.t(p.Description)),
					Ul(Class("mt-4 flex flex-wrap gap-2"),
						g.Map(p.Tags, func(tag string) g.Node {
							return Li(Class("rounded-full bg-blue-100 px-3 py-1 text-xs text-blue-800 dark:bg-blue-900/40 dark:text-blue-300"), g.Text(tag))
						}),
					),
					Div(Class("mt-4 flex gap-4 text-sm font-medium"),
						g.If(p.Source != "", A(Href(p.Source), Target("_blank"), Rel("noopener"), Class("text-blue-600 hover:underline dark:text-blue-400"), l.t(pr.Details))),
						g.If(p.Demo != "", A(Href(p.Demo), Target("_blank"), Rel("noopener"), Class("text-blue-600 hover:underline dark:text-blue-400"), l.t(pr.LiveDemo))),
					),
				)
			}),
		),
	)
}

func certificatesSection(c *content.Content, st page.State, l tr) g.Node {
	cs := c.Certificates
	cards := make([]g.Node, 0, len(cs.Items))
	for _, cert := range cs.Items {
		cards = append(cards, Figure(Class("w-64 shrink-0 overflow-hidden rounded-xl border border-gray-200 dark:border-gray-800"),
			Img(Src(cert.Image), Alt(l.s(cert.Title)), Class("h-40 w-full object-cover"), g.Attr("loading", "lazy")),
			FigCaption(Class("p-4"),
				P(Class("font-semibold"), l.t(cert.Title)),
				P(Class("text-sm text-gray-600 dark:text-gray-400"), g.Text(cert.Issuer)),
			),
		))
	}
	return section(content.SectionCertificates, st.SectionVisible(content.SectionCertificates),
		heading(l, cs.Heading, nil),
		Carousel(cards),
	)
}

func servicesSection(c *content.Content, st page.State, l tr) g.Node {
	sv := c.Services
	return section(content.SectionServices, st.SectionVisible(content.SectionServices),
		heading(l, sv.Heading, &sv.Subtitle),
		Div(Class("grid gap-8 md:grid-cols-2 lg:grid-cols-4"),
			g.Map(sv.Items, func(item content.Service) g.Node {
				return Article(Class("rounded-xl bg-white p-6 text-center shadow-lg transition hover:scale-105 hover:shadow-xl dark:bg-gray-900"),
					Div(Class(fmt.Sprintf("mx-auto mb-4 flex h-16 w-16 items-center justify-center rounded-xl bg-%s-100 dark:bg-%s-900", item.Color, item.Color)),
						Span(Class("text-3xl"), g.Text(item.Icon))),
					H3(Class("mb-3 text-xl font-semibold"), l.t(item.Title)),
					P(Class("mb-4 text-gray-600 dark:text-gray-300"), l.t(item.Description)),
					Ul(Class("space-y-1 text-sm text-gray-500 dark:text-gray-400"),
						g.Map(item.Examples, func(ex string) g.Node { return Li(g.Text("• " + ex)) })),
				)
			}),
		),
	)
}

func contactSection(c *content.Content, st page.State, l tr) g.Node {
	ct := c.Contact
	field := func(id string, label page.Text, input g.Node) g.Node {
		return Div(
			Label(g.Attr("for", id), Class("mb-1 block text-sm font-medium"), l.t(label)),
			input,
		)
	}
	inputClass := Class("w-full rounded-lg border border-gray-300 bg-white px-4 py-2 dark:border-gray-700 dark:bg-gray-900")

	return section(content.SectionContact, st.SectionVisible(content.SectionContact),
		heading(l, ct.Heading, &ct.Subtitle),
		Div(Class("grid gap-12 md:grid-cols-2"),
			Form(ID(ContactFormID), Action("/contact"), Method("post"), Class("space-y-4"),
				field("contact-name", ct.NameLabel,
					Input(ID("contact-name"), Name(page.FieldName), Type("text"), Required(), inputClass,
						Placeholder(l.s(ct.NamePlaceholder)), Value(st.Contact.Name))),
				field("contact-email", ct.EmailLabel,
					Input(ID("contact-email"), Name(page.FieldEmail), Type("email"), Required(), inputClass,
						Placeholder(l.s(ct.EmailPlaceholder)), Value(st.Contact.Email))),
				field("contact-message", ct.MessageLabel,
					Textarea(ID("contact-message"), Name(page.FieldMessage), g.Attr("rows", "5"), Required(), inputClass,
						Placeholder(l.s(ct.MessagePlaceholder)), g.Text(st.Contact.Message))),
				Button(Type("submit"), Class("rounded-full bg-blue-600 px-6 py-3 font-medium text-white hover:bg-blue-700"),
					l.t(ct.Submit)),
				Notice(c, st),
			),
			Div(Class("space-y-4"),
				H3(Class("text-xl font-semibold"), l.t(ct.InfoHeading)),
				P(A(Href("mailto:"+c.Profile.Email), Class("hover:underline"), g.Text("✉️ "+c.Profile.Email))),
				g.If(c.Profile.Phone != "", P(g.Text("📞 "+c.Profile.Phone))),
				P(g.Text("📍 "), l.t(c.Profile.Location)),
				P(Class("text-gray-600 dark:text-gray-400"), l.t(ct.ServiceArea)),
				Div(Class("flex gap-4"),
					g.If(c.Profile.GitHub != "", A(Href(c.Profile.GitHub), Target("_blank"), Rel("noopener"), Class("hover:underline"), g.Text("GitHub"))),
					g.If(c.Profile.LinkedIn != "", A(Href(c.Profile.LinkedIn), Target("_blank"), Rel("noopener"), Class("hover:underline"), g.Text("LinkedIn"))),
				),
			),
		),
	)
}

// Notice is the contact confirmation. It is rendered hidden unless the
// notice is showing.
func Notice(c *content.Content, st page.State) g.Node {
	class := "rounded-lg bg-green-100 px-4 py-3 text-green-800 dark:bg-green-900/40 dark:text-green-300"
	if !st.NoticeVisible {
		class += " " + HiddenClass
	}
	return Div(ID(NoticeID), Class(class), g.Attr("role", "status"),
		g.Text(c.Contact.Notice.In(st.Language)))
}
