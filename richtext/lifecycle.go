package richtext

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iw2rmb/richbind/internal/deferred"
	"github.com/iw2rmb/richbind/surface"
)

var (
	errDetached   = errors.New("container detached")
	errUnmeasured = errors.New("container not measured")
	errOccupied   = errors.New("container claimed by another editor")
)

// lifecycle owns the one surface of a controller: it schedules construction,
// guards against duplicates and tears the surface down.
type lifecycle struct {
	owner     string
	container *surface.Container
	mount     surface.MountFunc
	cfg       surface.Config
	log       *zap.Logger

	pending *deferred.Timer
	handle  surface.Surface
}

func newLifecycle(owner string, cfg Config, log *zap.Logger) *lifecycle {
	return &lifecycle{
		owner:     owner,
		container: cfg.Container,
		mount:     cfg.Mount,
		cfg:       surface.Config{Placeholder: cfg.Placeholder, Toolbar: cfg.Toolbar},
		log:       log,
		pending:   deferred.New(cfg.InitDelay),
	}
}

// initialize schedules construction. With a live surface it does nothing; a
// construction already pending is superseded by the new run, so only one can
// complete.
func (l *lifecycle) initialize() tea.Cmd {
	if l.handle != nil {
		return nil
	}
	if l.pending.Pending() {
		l.log.Debug("Superseding pending surface construction")
	}
	return l.pending.Start()
}

// owns reports whether msg is a construction tick of this lifecycle.
func (l *lifecycle) owns(msg tea.Msg) bool { return l.pending.Owns(msg) }

// construct builds the surface for a live construction tick. It returns nil
// without error for stale ticks.
func (l *lifecycle) construct(msg tea.Msg) (surface.Surface, error) {
	if !l.pending.Fire(msg) || l.handle != nil {
		return nil, nil
	}
	if !l.container.Attached() {
		return nil, errDetached
	}
	if !l.container.Measured() {
		return nil, errUnmeasured
	}
	if !l.container.Claim(l.owner) {
		return nil, fmt.Errorf("%w: %s", errOccupied, l.container.Owner())
	}
	if l.mount == nil {
		l.container.Vacate(l.owner)
		return nil, errors.New("no mount function configured")
	}
	s, err := l.mount(l.container, l.cfg)
	if err == nil && s == nil {
		err = errors.New("mount returned no surface")
	}
	if err != nil {
		l.container.Vacate(l.owner)
		return nil, fmt.Errorf("mount surface: %w", err)
	}
	l.handle = s
	return s, nil
}

// cancel drops a pending construction. It reports whether one was pending.
func (l *lifecycle) cancel() bool { return l.pending.Cancel() }

// destroy cancels pending construction and releases the surface. Faults
// raised by the surface while detaching are logged and dropped.
func (l *lifecycle) destroy() {
	if l.cancel() {
		l.log.Debug("Cancelled pending surface construction")
	}
	if l.handle == nil {
		return
	}
	s := l.handle
	l.handle = nil
	defer l.container.Vacate(l.owner)

	var err error
	multierr.AppendInto(&err, bestEffort("unsubscribe", s.Unsubscribe))
	multierr.AppendInto(&err, bestEffort("release", s.Release))
	if err != nil {
		l.log.Warn("Surface teardown fault ignored", zap.Error(err))
	}
}

// bestEffort runs fn, turning a panic into an error.
func bestEffort(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", op, r)
		}
	}()
	if e := fn(); e != nil {
		return fmt.Errorf("%s: %w", op, e)
	}
	return nil
}
