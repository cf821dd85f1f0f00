package richtext

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/richbind/surface"
)

const (
	DefaultInitDelay  = 10 * time.Millisecond
	DefaultEchoWindow = 150 * time.Millisecond

	// maxPendingEchoes bounds the echo queue for hosts that never echo.
	maxPendingEchoes = 32
)

// Config configures a Model.
type Config struct {
	// Value is the initial document. A non-empty value is injected once when
	// the surface becomes ready.
	Value string

	// OnChange receives the document after each user edit. It is called
	// synchronously from Update.
	OnChange func(value string)

	Placeholder string
	Toolbar     surface.Toolbar

	// Container receives the surface. A nil container is replaced by a new,
	// detached one that the host attaches through Model.Container.
	Container *surface.Container

	// Mount builds the surface. Required.
	Mount surface.MountFunc

	// InitDelay postpones construction after Mount. Zero means
	// DefaultInitDelay; negative means the next loop turn.
	InitDelay time.Duration

	// EchoWindow is how long an emitted value is remembered as a pending
	// echo. Zero means DefaultEchoWindow; negative keeps pending echoes until
	// they are matched or superseded.
	EchoWindow time.Duration

	// LoadingStyle renders the placeholder shown before the surface exists.
	LoadingStyle lipgloss.Style

	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	switch {
	case c.InitDelay == 0:
		c.InitDelay = DefaultInitDelay
	case c.InitDelay < 0:
		c.InitDelay = 0
	}
	if c.EchoWindow == 0 {
		c.EchoWindow = DefaultEchoWindow
	}
	if c.Container == nil {
		c.Container = surface.NewContainer()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
