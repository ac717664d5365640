package content

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/Zachkp/portfolio/internal/page"
)

var textType = reflect.TypeOf(page.Text{})

// Catalog flattens every bilingual content point into a table keyed by its
// yaml path, e.g. "hero.taglines.0" or "projects.items.2.title".
func (c *Content) Catalog() page.Catalog {
	cat := page.Catalog{}
	collect(cat, "", reflect.ValueOf(*c))
	return cat
}

func collect(cat page.Catalog, prefix string, v reflect.Value) {
	switch {
	case v.Type() == textType:
		cat[prefix] = v.Interface().(page.Text)
	case v.Kind() == reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := strings.Split(f.Tag.Get("yaml"), ",")[0]
			if name == "" || name == "-" {
				continue
			}
			collect(cat, join(prefix, name), v.Field(i))
		}
	case v.Kind() == reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			collect(cat, join(prefix, strconv.Itoa(i)), v.Index(i))
		}
	}
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
