package page

import "testing"

func TestVisibilityObserversAreIndependent(t *testing.T) {
	env := newFakeEnv("about", "skills")
	about := Observe(env, 0.1, nil)
	skills := Observe(env, 0.5, nil)
	about.Bind(fakeElement("about"))
	skills.Bind(fakeElement("skills"))

	env.intersect("about", 0.3)

	if !about.Visible() {
		t.Error("about should be visible")
	}
	if skills.Visible() {
		t.Error("skills should not be visible")
	}

	env.intersect("skills", 0.3)
	if skills.Visible() {
		t.Error("skills visible below its 0.5 threshold")
	}
	env.intersect("skills", 0.6)
	if !skills.Visible() {
		t.Error("skills should be visible at 0.6")
	}
}

func TestVisibilityStaysTrueAfterLeaving(t *testing.T) {
	env := newFakeEnv("hero")
	calls := 0
	v := Observe(env, DefaultVisibilityThreshold, func() { calls++ })
	v.Bind(fakeElement("hero"))

	env.intersect("hero", 1)
	env.intersect("hero", 0)
	env.intersect("hero", 1)

	if !v.Visible() {
		t.Error("flag reset after leaving viewport")
	}
	if calls != 1 {
		t.Errorf("onChange called %d times, want 1", calls)
	}
}

func TestVisibilityCloseUnregisters(t *testing.T) {
	env := newFakeEnv("projects")
	v := Observe(env, 0.2, nil)
	v.Bind(fakeElement("projects"))
	v.Bind(fakeElement("projects"))
	if len(env.watches) != 1 {
		t.Fatalf("watches = %d after double bind, want 1", len(env.watches))
	}

	v.Bind(fakeElement("contact"))
	if len(env.watches) != 1 {
		t.Fatalf("watches = %d after rebind, want 1", len(env.watches))
	}

	v.Close()
	if len(env.watches) != 0 {
		t.Errorf("watches = %d after Close, want 0", len(env.watches))
	}
}

func TestVisibilityThresholdDefault(t *testing.T) {
	env := newFakeEnv()
	for _, th := range []float64{0, -1, 1.5} {
		if got := Observe(env, th, nil).Threshold(); got != DefaultVisibilityThreshold {
			t.Errorf("Observe(%v).Threshold() = %v", th, got)
		}
	}
	if got := Observe(env, 1, nil).Threshold(); got != 1 {
		t.Errorf("threshold 1 changed to %v", got)
	}
}
