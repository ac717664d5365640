package page

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Theme is the light/dark visual mode of the whole page.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DarkClass is the root class the stylesheet keys dark colors on.
const DarkClass = "dark"

// DefaultStorageKey is the slot the theme preference is persisted under.
const DefaultStorageKey = "darkMode"

// ErrMalformedTheme is returned by a ThemeStore whose slot holds something
// other than a JSON boolean.
var ErrMalformedTheme = errors.New("malformed theme preference")

// Dark reports whether t is the dark theme.
func (t Theme) Dark() bool { return t == ThemeDark }

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t.Dark() {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeStore loads and saves the theme preference.
type ThemeStore interface {
	Load() (Theme, error)
	Save(Theme) error
}

// StorageThemeStore keeps the theme as a JSON boolean under one key.
type StorageThemeStore struct {
	storage Storage
	key     string
}

// NewStorageThemeStore returns a store writing to key, or DefaultStorageKey
// when key is empty.
func NewStorageThemeStore(storage Storage, key string) *StorageThemeStore {
	if key == "" {
		key = DefaultStorageKey
	}
	return &StorageThemeStore{storage: storage, key: key}
}

// Load returns ThemeLight with a nil error when nothing is stored.
func (s *StorageThemeStore) Load() (Theme, error) {
	raw, ok, err := s.storage.GetItem(s.key)
	if err != nil {
		return ThemeLight, fmt.Errorf("reading %s: %w", s.key, err)
	}
	if !ok {
		return ThemeLight, nil
	}
	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		return ThemeLight, fmt.Errorf("%w: %q", ErrMalformedTheme, raw)
	}
	if dark {
		return ThemeDark, nil
	}
	return ThemeLight, nil
}

func (s *StorageThemeStore) Save(t Theme) error {
	raw, _ := json.Marshal(t.Dark())
	if err := s.storage.SetItem(s.key, string(raw)); err != nil {
		return fmt.Errorf("writing %s: %w", s.key, err)
	}
	return nil
}

// LoadInitialTheme reads the persisted preference. Any failure counts as no
// preference at all.
func LoadInitialTheme(store ThemeStore) Theme {
	t, err := store.Load()
	if err != nil {
		log.Printf("page: theme preference ignored: %v", err)
		return ThemeLight
	}
	if t != ThemeDark {
		return ThemeLight
	}
	return t
}

// ThemeCoordinator owns the theme, its persisted slot and the root class.
type ThemeCoordinator struct {
	store ThemeStore
	root  ClassList
	theme Theme
}

// NewThemeCoordinator starts in the light theme; call Init to apply the
// persisted preference.
func NewThemeCoordinator(store ThemeStore, root ClassList) *ThemeCoordinator {
	return &ThemeCoordinator{store: store, root: root, theme: ThemeLight}
}

// Init loads the persisted preference and applies it.
func (c *ThemeCoordinator) Init() Theme {
	c.Set(LoadInitialTheme(c.store))
	return c.theme
}

func (c *ThemeCoordinator) Theme() Theme { return c.theme }

// Set changes the theme, persists it and updates the root class before
// returning. A failed save leaves the session theme switched.
func (c *ThemeCoordinator) Set(t Theme) {
	if t != ThemeDark {
		t = ThemeLight
	}
	c.theme = t
	if err := c.store.Save(t); err != nil {
		log.Printf("page: theme not persisted: %v", err)
	}
	if t.Dark() {
		c.root.Add(DarkClass)
	} else {
		c.root.Remove(DarkClass)
	}
}

// Toggle switches to the opposite theme and returns it.
func (c *ThemeCoordinator) Toggle() Theme {
	c.Set(c.theme.Opposite())
	return c.theme
}
