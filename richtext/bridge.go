package richtext

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/richbind/content"
	"github.com/iw2rmb/richbind/internal/deferred"
	"github.com/iw2rmb/richbind/surface"
)

// bridge is the synchronization state shared by copies of a Model.
type bridge struct {
	id    string
	cfg   Config
	log   *zap.Logger
	state State

	// value is the latest document known to both sides: the seed before the
	// surface exists, then the last emitted or applied value.
	value string

	life *lifecycle

	// echoes holds values passed to OnChange that the host has not echoed
	// back yet, oldest first. A non-empty queue is the suppression flag.
	echoes    []string
	echoTimer *deferred.Timer

	injecting bool
	wantFocus bool

	// cmds collects commands produced by surface callbacks during Update.
	cmds []tea.Cmd
}

func (b *bridge) mount() tea.Cmd {
	switch b.state {
	case StateUninitialized:
		b.state = StateInitializing
		b.log.Debug("Mounting editor", zap.String("container", b.cfg.Container.ID()))
		return b.life.initialize()
	case StateInitializing:
		return b.life.initialize()
	}
	return nil
}

func (b *bridge) unmount() {
	if b.state == StateDestroyed {
		return
	}
	prev := b.state
	b.state = StateDestroyed
	b.clearEchoes()
	b.life.destroy()
	b.cmds = nil
	b.log.Debug("Editor unmounted", zap.Stringer("from", prev))
}

func (b *bridge) update(msg tea.Msg) tea.Cmd {
	if b.life.owns(msg) {
		if b.state == StateInitializing {
			b.finishInit(msg)
		}
		return b.flush()
	}
	if b.echoTimer != nil && b.echoTimer.Owns(msg) {
		if b.echoTimer.Fire(msg) && len(b.echoes) > 0 {
			b.log.Debug("Pending echoes expired", zap.Int("count", len(b.echoes)))
			b.echoes = nil
		}
		return nil
	}
	if b.state != StateReady {
		return nil
	}
	var cmd tea.Cmd
	if w, ok := b.life.handle.(surface.Widget); ok {
		cmd = w.Update(msg)
	}
	return tea.Batch(cmd, b.flush())
}

func (b *bridge) finishInit(msg tea.Msg) {
	s, err := b.life.construct(msg)
	switch {
	case errors.Is(err, errDetached), errors.Is(err, errUnmeasured), errors.Is(err, errOccupied):
		b.log.Debug("Surface construction aborted", zap.Error(err))
		return
	case err != nil:
		b.log.Warn("Surface construction failed", zap.Error(err))
		return
	case s == nil:
		return
	}

	b.state = StateReady
	if !content.IsEmpty(b.value) {
		b.inject(b.value, "seed")
	}
	if f, ok := s.(surface.Focusable); ok {
		if b.wantFocus {
			f.Focus()
		} else {
			f.Blur()
		}
	}
	s.Subscribe(b.onEdit)
	b.log.Debug("Editor ready")
}

// onEdit handles surface notifications.
func (b *bridge) onEdit(_ string, src surface.Source) {
	if b.state != StateReady || b.injecting || src == surface.SourceAPI {
		return
	}
	v := content.Canonical(b.life.handle.HTML())
	b.value = v
	b.pushEcho(v)
	if b.cfg.OnChange != nil {
		b.cfg.OnChange(v)
	}
}

func (b *bridge) setValue(v string) {
	switch b.state {
	case StateDestroyed:
		return
	case StateUninitialized, StateInitializing:
		b.value = v
		return
	}

	if i := b.matchEcho(v); i >= 0 {
		b.echoes = b.echoes[i+1:]
		if len(b.echoes) == 0 && b.echoTimer != nil {
			b.echoTimer.Cancel()
		}
		return
	}
	b.clearEchoes()
	b.value = v

	if content.Equivalent(v, b.life.handle.HTML()) {
		return
	}
	b.inject(v, "external")
}

// inject replaces the surface content. Notifications raised while it runs
// are ignored.
func (b *bridge) inject(v, reason string) {
	b.injecting = true
	defer func() { b.injecting = false }()

	b.life.handle.SetHTML(v)
	b.log.Debug("Injected content", zap.String("reason", reason), zap.Int("bytes", len(v)))
}

func (b *bridge) pushEcho(v string) {
	b.echoes = append(b.echoes, v)
	if n := len(b.echoes) - maxPendingEchoes; n > 0 {
		b.echoes = b.echoes[n:]
	}
	if b.echoTimer != nil {
		b.cmds = append(b.cmds, b.echoTimer.Start())
	}
}

// matchEcho returns the index of the oldest pending echo equivalent to v, or
// -1.
func (b *bridge) matchEcho(v string) int {
	for i, e := range b.echoes {
		if content.Equivalent(e, v) {
			return i
		}
	}
	return -1
}

func (b *bridge) clearEchoes() {
	b.echoes = nil
	if b.echoTimer != nil {
		b.echoTimer.Cancel()
	}
}

func (b *bridge) flush() tea.Cmd {
	if len(b.cmds) == 0 {
		return nil
	}
	cmds := b.cmds
	b.cmds = nil
	return tea.Batch(cmds...)
}
