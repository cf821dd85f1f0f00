package richtext

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iw2rmb/richbind/internal/deferred"
	"github.com/iw2rmb/richbind/surface"
)

// Model is a Bubble Tea component binding a controlled value to one editing
// surface.
//
// Copies of a Model share the same controller; each New call creates an
// independent controller with its own surface.
type Model struct {
	b *bridge
}

// New returns an unmounted editor. Config.Mount is required.
func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	id := uuid.NewString()
	log := cfg.Logger.Named("richtext").With(zap.String("editor", id))

	b := &bridge{
		id:    id,
		cfg:   cfg,
		log:   log,
		value: cfg.Value,
		life:  newLifecycle(id, cfg, log),
	}
	if cfg.EchoWindow > 0 {
		b.echoTimer = deferred.New(cfg.EchoWindow)
	}
	return Model{b: b}
}

// ID returns the controller id used in logs and container claims.
func (m Model) ID() string { return m.b.id }

// State returns the lifecycle state.
func (m Model) State() State { return m.b.state }

// Value returns the latest document known to the controller.
func (m Model) Value() string { return m.b.value }

// Suppressing reports whether emitted values are awaiting their echo.
func (m Model) Suppressing() bool { return len(m.b.echoes) > 0 }

// Container returns the container the surface is built in.
func (m Model) Container() *surface.Container { return m.b.cfg.Container }

// Surface returns the live surface, or nil before Ready and after Unmount.
func (m Model) Surface() surface.Surface { return m.b.life.handle }

// Init mounts the editor.
func (m Model) Init() tea.Cmd { return m.Mount() }

// Mount starts surface construction. Calling it again before the surface is
// ready restarts the construction delay; calling it once ready or after
// Unmount does nothing.
func (m Model) Mount() tea.Cmd { return m.b.mount() }

// Unmount cancels pending work and releases the surface. No callbacks fire
// afterwards.
func (m Model) Unmount() Model {
	m.b.unmount()
	return m
}

// SetValue passes the host's current value to the controller.
//
// Before the surface is ready the value becomes the seed. Once ready, a value
// that echoes an earlier OnChange call, or that matches the surface content,
// is ignored; any other value replaces the surface content wholesale and the
// cursor position is lost.
func (m Model) SetValue(v string) Model {
	m.b.setValue(v)
	return m
}

// Focus gives input focus to the surface, now or once it is ready.
func (m Model) Focus() Model {
	m.b.wantFocus = true
	if f, ok := m.b.life.handle.(surface.Focusable); ok {
		f.Focus()
	}
	return m
}

// Blur removes input focus, now or once the surface is ready.
func (m Model) Blur() Model {
	m.b.wantFocus = false
	if f, ok := m.b.life.handle.(surface.Focusable); ok {
		f.Blur()
	}
	return m
}

// Focused reports whether the live surface has input focus.
func (m Model) Focused() bool {
	f, ok := m.b.life.handle.(surface.Focusable)
	return ok && f.Focused()
}

// Update runs construction and echo timers and forwards other messages to
// the surface once it is ready.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, m.b.update(msg)
}

// View renders the surface, or the loading placeholder before it exists.
func (m Model) View() string {
	switch m.b.state {
	case StateReady:
		if w, ok := m.b.life.handle.(surface.Widget); ok {
			return w.View()
		}
		return ""
	case StateDestroyed:
		return ""
	}
	text := m.b.cfg.Placeholder
	if text == "" {
		text = "Loading editor…"
	}
	return m.b.cfg.LoadingStyle.Render(text)
}
