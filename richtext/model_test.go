package richtext

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/richbind/surface"
)

func TestScenario_TypeEchoUpdateUnmount(t *testing.T) {
	m, fm, changes := newTestModel(t, Config{Value: ""})
	m = mountReady(t, m)
	s := fm.last()

	s.typeHTML("<p>Hello</p>")
	if diff := cmp.Diff([]string{"<p>Hello</p>"}, changes.values); diff != "" {
		t.Fatalf("OnChange calls (-want +got):\n%s", diff)
	}

	m = m.SetValue("<p>Hello</p>")
	if len(s.injected) != 0 {
		t.Fatalf("echo injected: %q", s.injected)
	}

	m = m.SetValue("<p>Updated</p>")
	if diff := cmp.Diff([]string{"<p>Updated</p>"}, s.injected); diff != "" {
		t.Fatalf("injections (-want +got):\n%s", diff)
	}
	if s.html != "<p>Updated</p>" {
		t.Fatalf("surface content: got %q", s.html)
	}

	listener := s.listener
	m = m.Unmount()
	if s.released != 1 {
		t.Fatalf("surface not released")
	}
	listener("<p>ghost</p>", surface.SourceUser)
	if len(changes.values) != 1 {
		t.Fatalf("callbacks after unmount: %q", changes.values)
	}
	if got := m.State(); got != StateDestroyed {
		t.Fatalf("state: got %v, want %v", got, StateDestroyed)
	}
}

func TestView_ByState(t *testing.T) {
	m, _, _ := newTestModel(t, Config{Placeholder: "Describe the product"})
	if got := m.View(); !strings.Contains(got, "Describe the product") {
		t.Fatalf("view before mount: got %q", got)
	}

	m = mountReady(t, m)
	if got := m.View(); got != "" {
		t.Fatalf("fake surface renders nothing, got %q", got)
	}

	m = m.Unmount()
	if got := m.View(); got != "" {
		t.Fatalf("view after unmount: got %q", got)
	}
}

func TestView_DefaultLoadingText(t *testing.T) {
	m, _, _ := newTestModel(t, Config{})
	if got := m.View(); !strings.Contains(got, "Loading editor") {
		t.Fatalf("view: got %q", got)
	}
}

func TestModel_CopiesShareController(t *testing.T) {
	m, fm, _ := newTestModel(t, Config{})
	cp := m
	m = mountReady(t, m)

	if cp.State() != StateReady || cp.Surface() != fm.last() {
		t.Fatalf("copy does not observe the mounted surface")
	}
	if cp.ID() != m.ID() {
		t.Fatalf("copy id mismatch")
	}
}

func TestState_String(t *testing.T) {
	want := map[State]string{
		StateUninitialized: "uninitialized",
		StateInitializing:  "initializing",
		StateReady:         "ready",
		StateDestroyed:     "destroyed",
		State(42):          "unknown",
	}
	for s, w := range want {
		if got := s.String(); got != w {
			t.Fatalf("State(%d).String(): got %q, want %q", s, got, w)
		}
	}
}
