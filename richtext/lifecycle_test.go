package richtext

import (
	"errors"
	"testing"

	"github.com/iw2rmb/richbind/content"
	"github.com/iw2rmb/richbind/surface"
)

func TestMount_SeedsNonEmptyValueOnce(t *testing.T) {
	m, fm, _ := newTestModel(t, Config{Value: "<p>seed</p>"})
	if got := m.State(); got != StateUninitialized {
		t.Fatalf("initial state: got %v, want %v", got, StateUninitialized)
	}

	m = mountReady(t, m)
	if len(fm.surfaces) != 1 {
		t.Fatalf("surfaces: got %d, want 1", len(fm.surfaces))
	}
	s := fm.last()
	if got := s.injected; len(got) != 1 || got[0] != "<p>seed</p>" {
		t.Fatalf("seed injections: got %q", got)
	}
	if s.listener == nil {
		t.Fatalf("expected edit subscription after ready")
	}

	m = m.SetValue("<p>seed</p>")
	if got := len(s.injected); got != 1 {
		t.Fatalf("injections after same value: got %d, want 1", got)
	}
}

func TestMount_EmptyValueSkipsSeed(t *testing.T) {
	for _, v := range []string{"", content.EmptyDocument} {
		m, fm, _ := newTestModel(t, Config{Value: v})
		mountReady(t, m)
		if got := fm.last().injected; len(got) != 0 {
			t.Fatalf("injections for seed %q: got %q, want none", v, got)
		}
	}
}

func TestMount_PassesSurfaceConfig(t *testing.T) {
	tb := surface.BasicToolbar()
	m, fm, _ := newTestModel(t, Config{Placeholder: "Describe the product", Toolbar: tb})
	mountReady(t, m)

	cfg := fm.last().cfg
	if cfg.Placeholder != "Describe the product" || cfg.Toolbar.Formats != tb.Formats {
		t.Fatalf("surface config: got %+v", cfg)
	}
}

func TestMount_ValueSetWhileInitializingBecomesSeed(t *testing.T) {
	m, fm, _ := newTestModel(t, Config{Value: "<p>old</p>"})
	cmd := m.Init()
	if got := m.State(); got != StateInitializing {
		t.Fatalf("state: got %v, want %v", got, StateInitializing)
	}
	m = m.SetValue("<p>loaded</p>")
	m = drain(m, cmd)

	if got := fm.last().injected; len(got) != 1 || got[0] != "<p>loaded</p>" {
		t.Fatalf("seed injections: got %q", got)
	}
}

func TestMount_ReentrantCallsBuildOneSurface(t *testing.T) {
	m, fm, _ := newTestModel(t, Config{Value: "<p>x</p>"})

	first := m.Mount()
	second := m.Mount()
	third := m.Init()
	msgs := []any{first(), second(), third()}

	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	if len(fm.surfaces) != 1 {
		t.Fatalf("surfaces: got %d, want 1", len(fm.surfaces))
	}
	if got := len(fm.last().injected); got != 1 {
		t.Fatalf("seed injections: got %d, want 1", got)
	}
	if cmd := m.Mount(); cmd != nil {
		t.Fatalf("Mount when ready must be a no-op")
	}
}

func TestUnmount_DuringInitializingBuildsNothing(t *testing.T) {
	m, fm, changes := newTestModel(t, Config{Value: "<p>x</p>"})
	cmd := m.Init()
	m = m.Unmount()

	m = drain(m, cmd)
	if len(fm.surfaces) != 0 {
		t.Fatalf("surfaces: got %d, want 0", len(fm.surfaces))
	}
	if got := m.State(); got != StateDestroyed {
		t.Fatalf("state: got %v, want %v", got, StateDestroyed)
	}
	if cmd := m.Mount(); cmd != nil {
		t.Fatalf("Mount after Unmount must be a no-op")
	}
	if len(changes.values) != 0 {
		t.Fatalf("unexpected OnChange calls: %q", changes.values)
	}
	if owner := m.Container().Owner(); owner != "" {
		t.Fatalf("container still claimed by %q", owner)
	}
}

func TestUnmount_BeforeMountIsTerminal(t *testing.T) {
	m, fm, _ := newTestModel(t, Config{})
	m = m.Unmount()
	m = drain(m, m.Init())
	if len(fm.surfaces) != 0 || m.State() != StateDestroyed {
		t.Fatalf("got %d surfaces in state %v", len(fm.surfaces), m.State())
	}
}

func TestMount_DetachedContainerAbortsSilently(t *testing.T) {
	c := surface.NewContainer()
	m, fm, _ := newTestModel(t, Config{Container: c})

	m = drain(m, m.Init())
	if len(fm.surfaces) != 0 {
		t.Fatalf("surfaces: got %d, want 0", len(fm.surfaces))
	}
	if got := m.State(); got != StateInitializing {
		t.Fatalf("state: got %v, want %v", got, StateInitializing)
	}

	c.Attach(40, 5)
	m = drain(m, m.Mount())
	if got := m.State(); got != StateReady {
		t.Fatalf("state after retry: got %v, want %v", got, StateReady)
	}
}

func TestMount_UnmeasuredContainerAbortsSilently(t *testing.T) {
	c := surface.NewContainer()
	c.Attach(0, 0)
	m, fm, _ := newTestModel(t, Config{Container: c})

	m = drain(m, m.Init())
	if len(fm.surfaces) != 0 {
		t.Fatalf("surfaces: got %d, want 0", len(fm.surfaces))
	}
	if got := m.State(); got != StateInitializing {
		t.Fatalf("state: got %v, want %v", got, StateInitializing)
	}
	if got := c.Owner(); got != "" {
		t.Fatalf("container owner: got %q, want none", got)
	}

	c.Resize(40, 5)
	m = drain(m, m.Mount())
	if got := m.State(); got != StateReady {
		t.Fatalf("state after retry: got %v, want %v", got, StateReady)
	}
}

func TestMount_ContainerDetachedDuringDelayAborts(t *testing.T) {
	m, fm, _ := newTestModel(t, Config{})
	cmd := m.Init()
	m.Container().Detach()
	drain(m, cmd)
	if len(fm.surfaces) != 0 {
		t.Fatalf("surfaces: got %d, want 0", len(fm.surfaces))
	}
}

func TestMount_OneSurfacePerContainerAcrossControllers(t *testing.T) {
	c := surface.NewContainer()
	c.Attach(80, 10)
	fm := &fakeMounter{}

	a, _, _ := newTestModel(t, Config{Container: c, Mount: fm.mount})
	b, _, _ := newTestModel(t, Config{Container: c, Mount: fm.mount})

	a = mountReady(t, a)
	b = drain(b, b.Init())
	if got := b.State(); got != StateInitializing {
		t.Fatalf("second controller state: got %v, want %v", got, StateInitializing)
	}
	if fm.maxLive != 1 {
		t.Fatalf("max live surfaces: got %d, want 1", fm.maxLive)
	}

	// Strict-mode style remount: tear down the first, mount the second.
	a.Unmount()
	b = drain(b, b.Mount())
	if got := b.State(); got != StateReady {
		t.Fatalf("second controller after first unmounted: got %v, want %v", got, StateReady)
	}
	if fm.maxLive != 1 || len(fm.surfaces) != 2 {
		t.Fatalf("max live=%d total=%d, want 1 and 2", fm.maxLive, len(fm.surfaces))
	}
	if got := c.Owner(); got != b.ID() {
		t.Fatalf("container owner: got %q, want %q", got, b.ID())
	}
}

func TestMount_FailureIsLoggedAndRetryable(t *testing.T) {
	m, fm, _ := newTestModel(t, Config{})
	fm.err = errors.New("widget script not loaded")

	m = drain(m, m.Init())
	if got := m.State(); got != StateInitializing {
		t.Fatalf("state after failed mount: got %v, want %v", got, StateInitializing)
	}
	if owner := m.Container().Owner(); owner != "" {
		t.Fatalf("failed mount left claim by %q", owner)
	}

	fm.err = nil
	m = drain(m, m.Mount())
	if got := m.State(); got != StateReady {
		t.Fatalf("state after retry: got %v, want %v", got, StateReady)
	}
}

func TestUnmount_ReleasesSurfaceAndSwallowsFaults(t *testing.T) {
	m, fm, _ := newTestModel(t, Config{})
	fm.prepare = func(s *fakeSurface) {
		s.unsubscribeErr = errors.New("listener already detached")
		s.panicOnRelease = true
	}
	m = mountReady(t, m)
	s := fm.last()

	m = m.Unmount()
	if s.unsubscribed != 1 || s.released != 1 {
		t.Fatalf("teardown calls: unsubscribe=%d release=%d, want 1/1", s.unsubscribed, s.released)
	}
	if m.Surface() != nil {
		t.Fatalf("surface handle must be cleared")
	}
	if owner := m.Container().Owner(); owner != "" {
		t.Fatalf("container still claimed by %q", owner)
	}

	m = m.Unmount()
	if s.released != 1 {
		t.Fatalf("second Unmount released again")
	}
}

func TestBestEffort(t *testing.T) {
	if err := bestEffort("noop", func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sentinel := errors.New("gone")
	if err := bestEffort("release", func() error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel, got %v", err)
	}
	if err := bestEffort("release", func() error { panic("boom") }); err == nil {
		t.Fatalf("expected panic to surface as error")
	}
}
