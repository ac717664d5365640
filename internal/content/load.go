package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/page"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in content. It panics if the embedded file is
// broken, which a test catches.
func Default() *Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default: %v", err))
	}
	return c
}

// Load reads content from path, or returns the built-in content when path is
// empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Parse(defaultYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML content and checks its structure. Missing translations
// are not an error here; see Catalog().Missing().
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ValidationError lists every structural problem found in a content file.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid content: " + strings.Join(e.Problems, "; ")
}

// Validate checks references and ranges that would otherwise render a broken
// page.
func (c *Content) Validate() error {
	var problems []string
	known := map[string]bool{}
	for _, id := range SectionIDs {
		known[id] = true
	}
	for i, n := range c.Nav {
		if !known[n.Section] {
			problems = append(problems, fmt.Sprintf("nav.%d: unknown section %q", i, n.Section))
		}
	}
	if len(c.Hero.Taglines) == 0 {
		problems = append(problems, "hero.taglines: at least one tagline is required")
	}
	for gi, g := range c.Skills.Groups {
		for si, s := range g.Items {
			if s.Level < 0 || s.Level > 100 {
				problems = append(problems, fmt.Sprintf("skills.groups.%d.items.%d: level %d out of 0-100", gi, si, s.Level))
			}
		}
	}
	for i, p := range c.Projects.Items {
		switch p.Device {
		case DeviceIPhone, DeviceAndroid:
			if p.Video == "" {
				problems = append(problems, fmt.Sprintf("projects.items.%d: device %q needs a video", i, p.Device))
			}
		case DeviceNone:
		default:
			problems = append(problems, fmt.Sprintf("projects.items.%d: unknown device %q", i, p.Device))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Check returns an error naming every content point that lacks one of its
// two translations.
func (c *Content) Check() error {
	missing := c.Catalog().Missing()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingTranslation, strings.Join(missing, ", "))
}

// ErrMissingTranslation is wrapped by Check.
var ErrMissingTranslation = errors.New("missing translation")

// PageConfig fills the content-derived fields of a page configuration.
func (c *Content) PageConfig(base page.Config, visibilityThreshold float64) page.Config {
	base.Taglines = c.Taglines()
	base.Sections = c.Sections(visibilityThreshold)
	return base
}
