package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/page"
)

func TestDefaultContentIsComplete(t *testing.T) {
	c := Default()
	if err := c.Check(); err != nil {
		t.Fatalf("default content: %v", err)
	}
	if len(c.Nav) == 0 || len(c.Projects.Items) == 0 || len(c.Certificates.Items) == 0 || len(c.Services.Items) == 0 {
		t.Error("default content is missing sections")
	}
}

func TestTaglinesHaveEqualLengths(t *testing.T) {
	lists := Default().Taglines()
	if len(lists[page.Khmer]) == 0 {
		t.Fatal("no Khmer taglines")
	}
	if len(lists[page.Khmer]) != len(lists[page.English]) {
		t.Errorf("km %d taglines, en %d", len(lists[page.Khmer]), len(lists[page.English]))
	}
}

func TestCatalogKeys(t *testing.T) {
	cat := Default().Catalog()
	for _, id := range []string{"hero.title", "hero.taglines.0", "projects.items.1.title", "skills.groups.0.items.2.name", "labels.back_to_top", "services.items.3.description"} {
		if _, ok := cat[id]; !ok {
			t.Errorf("catalog missing %q", id)
		}
	}
	if _, ok := cat["profile.email"]; ok {
		t.Error("plain string field ended up in the catalog")
	}
}

func TestCheckReportsMissingTranslation(t *testing.T) {
	c := Default()
	c.Hero.CTA = page.Text{KM: "ស្វែងយល់បន្ថែម"}
	err := c.Check()
	if !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("Check() = %v, want ErrMissingTranslation", err)
	}
	if !strings.Contains(err.Error(), "hero.cta") {
		t.Errorf("error %q does not name hero.cta", err)
	}
}

func TestValidate(t *testing.T) {
	data := []byte(`
nav:
  - section: nowhere
    label: {km: "ក", en: "A"}
skills:
  groups:
    - items:
        - {name: {km: "ក", en: "A"}, level: 120}
projects:
  items:
    - device: iphone
    - device: tablet
`)
	_, err := Parse(data)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Parse error = %v, want ValidationError", err)
	}
	if len(verr.Problems) != 5 {
		t.Errorf("problems = %v, want 5", verr.Problems)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(path, defaultYAML, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Profile.Initials != Default().Profile.Initials {
		t.Errorf("initials = %q", c.Profile.Initials)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSectionsSkipHero(t *testing.T) {
	secs := Default().Sections(0.2)
	if len(secs) != len(SectionIDs)-1 {
		t.Fatalf("sections = %d", len(secs))
	}
	for _, s := range secs {
		if s.ID == SectionHero {
			t.Error("hero is observed")
		}
		if s.Threshold != 0.2 {
			t.Errorf("%s threshold = %v", s.ID, s.Threshold)
		}
	}
}

func TestIconURLs(t *testing.T) {
	urls := Technologies{Slugs: []string{"git"}}.IconURLs()
	if len(urls) != 1 || urls[0] != "https://cdn.simpleicons.org/git/git" {
		t.Errorf("urls = %v", urls)
	}
}

func TestMarkdown(t *testing.T) {
	html, err := Markdown("I have **5 years** of experience.\n\n<script>x</script>")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<strong>5 years</strong>") {
		t.Errorf("html = %q", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("raw html passed through: %q", html)
	}
}
