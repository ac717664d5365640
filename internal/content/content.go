// Package content holds the static, bilingual text of the portfolio page.
package content

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/page"
)

// Section ids, in page order.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionTechnologies = "technologies"
	SectionExperience   = "experience"
	SectionSkills       = "skills"
	SectionNonSkills    = "nonskills"
	SectionProjects     = "projects"
	SectionCertificates = "certificates"
	SectionServices     = "services"
	SectionContact      = "contact"
)

// SectionIDs lists every section the page renders.
var SectionIDs = []string{
	SectionHero,
	SectionAbout,
	SectionTechnologies,
	SectionExperience,
	SectionSkills,
	SectionNonSkills,
	SectionProjects,
	SectionCertificates,
	SectionServices,
	SectionContact,
}

type Profile struct {
	Name     page.Text `yaml:"name"`
	Initials string    `yaml:"initials"`
	Email    string    `yaml:"email"`
	Phone    string    `yaml:"phone"`
	GitHub   string    `yaml:"github"`
	LinkedIn string    `yaml:"linkedin"`
	Location page.Text `yaml:"location"`
}

type NavItem struct {
	Section string    `yaml:"section"`
	Label   page.Text `yaml:"label"`
}

type Hero struct {
	Greeting page.Text   `yaml:"greeting"`
	Title    page.Text   `yaml:"title"`
	Subtitle page.Text   `yaml:"subtitle"`
	CTA      page.Text   `yaml:"cta"`
	Taglines []page.Text `yaml:"taglines"`
}

type Stat struct {
	Label page.Text `yaml:"label"`
	Value page.Text `yaml:"value"`
}

type About struct {
	Heading   page.Text   `yaml:"heading"`
	Body      page.Text   `yaml:"body"` // markdown
	Stats     []Stat      `yaml:"stats"`
	Education page.Text   `yaml:"education"`
	Degrees   []page.Text `yaml:"degrees"`
}

type Technologies struct {
	Heading  page.Text `yaml:"heading"`
	Subtitle page.Text `yaml:"subtitle"`
	Slugs    []string  `yaml:"slugs"`
}

// IconURLs returns the simpleicons CDN url of every slug.
func (t Technologies) IconURLs() []string {
	urls := make([]string, 0, len(t.Slugs))
	for _, slug := range t.Slugs {
		urls = append(urls, fmt.Sprintf("https://cdn.simpleicons.org/%s/%s", slug, slug))
	}
	return urls
}

type Job struct {
	Role    page.Text   `yaml:"role"`
	Company string      `yaml:"company"`
	Period  page.Text   `yaml:"period"`
	Logo    string      `yaml:"logo"`
	Bullets []page.Text `yaml:"bullets"`
}

type Experience struct {
	Heading page.Text `yaml:"heading"`
	Jobs    []Job     `yaml:"jobs"`
}

type Skill struct {
	Name  page.Text `yaml:"name"`
	Level int       `yaml:"level"`
}

type SkillGroup struct {
	Title page.Text `yaml:"title"`
	Icon  string    `yaml:"icon"`
	Color string    `yaml:"color"`
	Items []Skill   `yaml:"items"`
}

type Skills struct {
	Heading  page.Text    `yaml:"heading"`
	Subtitle page.Text    `yaml:"subtitle"`
	Groups   []SkillGroup `yaml:"groups"`
}

type Trait struct {
	Title       page.Text `yaml:"title"`
	Description page.Text `yaml:"description"`
	Icon        string    `yaml:"icon"`
}

type NonSkills struct {
	Heading page.Text `yaml:"heading"`
	Traits  []Trait   `yaml:"traits"`
}

// Device is the mockup a project demo video plays in.
type Device string

const (
	DeviceIPhone  Device = "iphone"
	DeviceAndroid Device = "android"
	DeviceNone    Device = ""
)

type Project struct {
	Title       page.Text `yaml:"title"`
	Description page.Text `yaml:"description"`
	Icon        string    `yaml:"icon"`
	Tags        []string  `yaml:"tags"`
	Device      Device    `yaml:"device"`
	Video       string    `yaml:"video"`
	Source      string    `yaml:"source"`
	Demo        string    `yaml:"demo"`
}

type Projects struct {
	Heading  page.Text `yaml:"heading"`
	Subtitle page.Text `yaml:"subtitle"`
	Details  page.Text `yaml:"details"`
	LiveDemo page.Text `yaml:"live_demo"`
	Items    []Project `yaml:"items"`
}

type Certificate struct {
	Title  page.Text `yaml:"title"`
	Issuer string    `yaml:"issuer"`
	Image  string    `yaml:"image"`
}

type Certificates struct {
	Heading page.Text     `yaml:"heading"`
	Items   []Certificate `yaml:"items"`
}

// Service is one kind of work offered, with a short list of examples.
type Service struct {
	Title       page.Text `yaml:"title"`
	Description page.Text `yaml:"description"`
	Icon        string    `yaml:"icon"`
	Color       string    `yaml:"color"`
	Examples    []string  `yaml:"examples"`
}

type Services struct {
	Heading  page.Text `yaml:"heading"`
	Subtitle page.Text `yaml:"subtitle"`
	Items    []Service `yaml:"items"`
}

type Contact struct {
	Heading            page.Text `yaml:"heading"`
	Subtitle           page.Text `yaml:"subtitle"`
	NameLabel          page.Text `yaml:"name_label"`
	NamePlaceholder    page.Text `yaml:"name_placeholder"`
	EmailLabel         page.Text `yaml:"email_label"`
	EmailPlaceholder   page.Text `yaml:"email_placeholder"`
	MessageLabel       page.Text `yaml:"message_label"`
	MessagePlaceholder page.Text `yaml:"message_placeholder"`
	Submit             page.Text `yaml:"submit"`
	Notice             page.Text `yaml:"notice"`
	InfoHeading        page.Text `yaml:"info_heading"`
	ServiceArea        page.Text `yaml:"service_area"`
}

type Footer struct {
	Copyright page.Text `yaml:"copyright"`
	Tagline   page.Text `yaml:"tagline"`
}

// Labels are the short control labels used outside any one section.
type Labels struct {
	Brand        page.Text `yaml:"brand"`
	ToggleTheme  page.Text `yaml:"toggle_theme"`
	ToggleLang   page.Text `yaml:"toggle_language"`
	ToggleMenu   page.Text `yaml:"toggle_menu"`
	BackToTop    page.Text `yaml:"back_to_top"`
	LanguageName page.Text `yaml:"language_name"`
}

// Content is every piece of text and media the page renders.
type Content struct {
	Profile      Profile      `yaml:"profile"`
	Labels       Labels       `yaml:"labels"`
	Nav          []NavItem    `yaml:"nav"`
	Hero         Hero         `yaml:"hero"`
	About        About        `yaml:"about"`
	Technologies Technologies `yaml:"technologies"`
	Experience   Experience   `yaml:"experience"`
	Skills       Skills       `yaml:"skills"`
	NonSkills    NonSkills    `yaml:"nonskills"`
	Projects     Projects     `yaml:"projects"`
	Certificates Certificates `yaml:"certificates"`
	Services     Services     `yaml:"services"`
	Contact      Contact      `yaml:"contact"`
	Footer       Footer       `yaml:"footer"`
}

// Taglines splits the hero role titles into one list per language.
func (c *Content) Taglines() map[page.Language][]string {
	out := map[page.Language][]string{}
	for _, t := range c.Hero.Taglines {
		out[page.Khmer] = append(out[page.Khmer], t.KM)
		out[page.English] = append(out[page.English], t.EN)
	}
	return out
}

// Sections returns the animated sections with their visibility thresholds.
// The hero is on screen at load and is not observed.
func (c *Content) Sections(threshold float64) []page.Section {
	var out []page.Section
	for _, id := range SectionIDs {
		if id == SectionHero {
			continue
		}
		out = append(out, page.Section{ID: id, Threshold: threshold})
	}
	return out
}
