package page

import (
	"sort"
	"strings"
)

// Language selects which literal of a bilingual content point is shown.
type Language string

const (
	Khmer   Language = "km"
	English Language = "en"
)

// DefaultLanguage is the language a page mounts with.
const DefaultLanguage = Khmer

// Other returns the language a toggle switches to.
func (l Language) Other() Language {
	if l == English {
		return Khmer
	}
	return English
}

// Text is one bilingual content point.
type Text struct {
	KM string `yaml:"km" json:"km"`
	EN string `yaml:"en" json:"en"`
}

// In returns the literal for lang. Every bilingual string on the page is
// resolved through it.
func (t Text) In(lang Language) string {
	if lang == English {
		return t.EN
	}
	return t.KM
}

// Complete reports whether both literals are present.
func (t Text) Complete() bool {
	return strings.TrimSpace(t.KM) != "" && strings.TrimSpace(t.EN) != ""
}

// Catalog is every bilingual content point of the page keyed by id.
type Catalog map[string]Text

// Missing lists ids whose entry lacks one of the two literals, sorted.
func (c Catalog) Missing() []string {
	var ids []string
	for id, t := range c {
		if !t.Complete() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// LanguageCoordinator holds the current language.
type LanguageCoordinator struct {
	lang Language
}

func NewLanguageCoordinator() *LanguageCoordinator {
	return &LanguageCoordinator{lang: DefaultLanguage}
}

func (c *LanguageCoordinator) Language() Language { return c.lang }

// Toggle flips between Khmer and English and returns the new language.
func (c *LanguageCoordinator) Toggle() Language {
	c.lang = c.lang.Other()
	return c.lang
}
