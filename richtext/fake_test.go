package richtext

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"

	"github.com/iw2rmb/richbind/surface"
)

// fakeSurface records what the controller does to it.
type fakeSurface struct {
	html     string
	listener surface.Listener
	cfg      surface.Config

	injected     []string
	unsubscribed int
	released     int

	// notifyOnSet makes SetHTML report the new content with setSource.
	notifyOnSet bool
	setSource   surface.Source

	unsubscribeErr error
	panicOnRelease bool
}

func (f *fakeSurface) HTML() string { return f.html }

func (f *fakeSurface) SetHTML(h string) {
	f.injected = append(f.injected, h)
	f.html = h
	if f.notifyOnSet && f.listener != nil {
		f.listener(h, f.setSource)
	}
}

func (f *fakeSurface) Subscribe(fn surface.Listener) { f.listener = fn }

func (f *fakeSurface) Unsubscribe() error {
	f.unsubscribed++
	f.listener = nil
	return f.unsubscribeErr
}

func (f *fakeSurface) Release() error {
	f.released++
	if f.panicOnRelease {
		panic("widget already gone")
	}
	return nil
}

// typeHTML simulates the user editing the document into h.
func (f *fakeSurface) typeHTML(h string) {
	f.html = h
	if f.listener != nil {
		f.listener(h, surface.SourceUser)
	}
}

type fakeMounter struct {
	surfaces []*fakeSurface
	maxLive  int
	err      error
	prepare  func(*fakeSurface)
}

func (fm *fakeMounter) live() int {
	n := 0
	for _, s := range fm.surfaces {
		if s.released == 0 {
			n++
		}
	}
	return n
}

func (fm *fakeMounter) mount(_ *surface.Container, cfg surface.Config) (surface.Surface, error) {
	if fm.err != nil {
		return nil, fm.err
	}
	s := &fakeSurface{cfg: cfg}
	if fm.prepare != nil {
		fm.prepare(s)
	}
	fm.surfaces = append(fm.surfaces, s)
	fm.maxLive = max(fm.maxLive, fm.live())
	return s, nil
}

func (fm *fakeMounter) last() *fakeSurface {
	if len(fm.surfaces) == 0 {
		return nil
	}
	return fm.surfaces[len(fm.surfaces)-1]
}

type changeLog struct {
	values []string
}

func (c *changeLog) record(v string) { c.values = append(c.values, v) }

// newTestModel returns an unmounted model with an attached container, a fake
// mounter and construction on the next loop turn.
func newTestModel(t *testing.T, cfg Config) (Model, *fakeMounter, *changeLog) {
	t.Helper()
	fm := &fakeMounter{}
	changes := &changeLog{}
	if cfg.Mount == nil {
		cfg.Mount = fm.mount
	}
	if cfg.OnChange == nil {
		cfg.OnChange = changes.record
	}
	if cfg.Container == nil {
		cfg.Container = surface.NewContainer()
		cfg.Container.Attach(80, 10)
	}
	if cfg.InitDelay == 0 {
		cfg.InitDelay = -1
	}
	if cfg.EchoWindow == 0 {
		cfg.EchoWindow = -1
	}
	cfg.Logger = zaptest.NewLogger(t)
	return New(cfg), fm, changes
}

// drain runs cmd and feeds every resulting message back into m until no
// commands remain.
func drain(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(m, c)
		}
	default:
		var next tea.Cmd
		m, next = m.Update(msg)
		m = drain(m, next)
	}
	return m
}

// mountReady mounts m and runs it to Ready.
func mountReady(t *testing.T, m Model) Model {
	t.Helper()
	m = drain(m, m.Init())
	if got := m.State(); got != StateReady {
		t.Fatalf("state after mount: got %v, want %v", got, StateReady)
	}
	return m
}
