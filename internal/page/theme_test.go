package page

import (
	"errors"
	"testing"
)

func TestThemePersistenceRoundTrip(t *testing.T) {
	env := newFakeEnv()

	c := NewThemeCoordinator(NewStorageThemeStore(env, ""), env.RootClasses())
	c.Set(ThemeDark)
	if got := env.items[DefaultStorageKey]; got != "true" {
		t.Fatalf("stored value = %q, want %q", got, "true")
	}

	again := NewThemeCoordinator(NewStorageThemeStore(env, ""), fakeClasses{})
	if got := again.Init(); got != ThemeDark {
		t.Errorf("reloaded theme = %q, want dark", got)
	}

	again.Set(ThemeLight)
	third := NewThemeCoordinator(NewStorageThemeStore(env, ""), fakeClasses{})
	if got := third.Init(); got != ThemeLight {
		t.Errorf("reloaded theme = %q, want light", got)
	}
}

func TestLoadInitialThemeFallsBackOnCorruptData(t *testing.T) {
	for _, raw := range []string{"yes", "", "{", `"dark"`, "1"} {
		env := newFakeEnv()
		env.items[DefaultStorageKey] = raw

		store := NewStorageThemeStore(env, "")
		if _, err := store.Load(); !errors.Is(err, ErrMalformedTheme) {
			t.Errorf("Load(%q) error = %v, want ErrMalformedTheme", raw, err)
		}
		if got := LoadInitialTheme(store); got != ThemeLight {
			t.Errorf("LoadInitialTheme(%q) = %q, want light", raw, got)
		}
	}
}

func TestLoadInitialThemeAbsent(t *testing.T) {
	env := newFakeEnv()
	if got := LoadInitialTheme(NewStorageThemeStore(env, "")); got != ThemeLight {
		t.Errorf("got %q, want light", got)
	}
}

func TestToggleThemeKeepsClassAndStorageInStep(t *testing.T) {
	env := newFakeEnv()
	c := NewThemeCoordinator(NewStorageThemeStore(env, ""), env.RootClasses())
	start := c.Init()

	check := func(step string) {
		t.Helper()
		dark := c.Theme().Dark()
		if env.classes.Contains(DarkClass) != dark {
			t.Errorf("%s: root class dark=%v, theme %q", step, env.classes.Contains(DarkClass), c.Theme())
		}
		want := "false"
		if dark {
			want = "true"
		}
		if env.items[DefaultStorageKey] != want {
			t.Errorf("%s: stored %q, theme %q", step, env.items[DefaultStorageKey], c.Theme())
		}
	}

	c.Toggle()
	check("first toggle")
	if c.Theme() == start {
		t.Fatalf("first toggle kept theme %q", start)
	}
	c.Toggle()
	check("second toggle")
	if c.Theme() != start {
		t.Errorf("two toggles: theme = %q, want %q", c.Theme(), start)
	}
}

func TestThemeSwitchesWhenStorageFails(t *testing.T) {
	env := newFakeEnv()
	env.getErr = errStorage
	env.setErr = errStorage

	c := NewThemeCoordinator(NewStorageThemeStore(env, ""), env.RootClasses())
	if got := c.Init(); got != ThemeLight {
		t.Fatalf("Init() = %q, want light", got)
	}
	if got := c.Toggle(); got != ThemeDark {
		t.Fatalf("Toggle() = %q, want dark", got)
	}
	if !env.classes.Contains(DarkClass) {
		t.Error("dark class not applied after failed save")
	}
	if env.setCalls == 0 {
		t.Error("expected a save attempt")
	}
}

func TestStorageThemeStoreCustomKey(t *testing.T) {
	env := newFakeEnv()
	store := NewStorageThemeStore(env, "theme")
	if err := store.Save(ThemeDark); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := env.items[DefaultStorageKey]; ok {
		t.Error("default key written")
	}
	if env.items["theme"] != "true" {
		t.Errorf("theme key = %q", env.items["theme"])
	}
}
