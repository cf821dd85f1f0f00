package surface

import tea "github.com/charmbracelet/bubbletea"

// Source identifies where an edit notification originated.
type Source uint8

const (
	// SourceUnknown is reported by surfaces that cannot tell user edits from
	// programmatic ones.
	SourceUnknown Source = iota
	// SourceUser marks edits produced by user interaction.
	SourceUser
	// SourceAPI marks edits produced by SetHTML.
	SourceAPI
)

func (s Source) String() string {
	switch s {
	case SourceUser:
		return "user"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Listener receives the surface content after every effective edit.
type Listener func(html string, src Source)

// Surface is one live editing widget bound to one container.
type Surface interface {
	// HTML returns the current document.
	HTML() string
	// SetHTML replaces the whole document with html.
	SetHTML(html string)
	// Subscribe installs fn as the edit listener, replacing any previous one.
	Subscribe(fn Listener)
	// Unsubscribe detaches the edit listener.
	Unsubscribe() error
	// Release frees the widget. The surface must not be used afterwards.
	Release() error
}

// Widget is implemented by surfaces that render inside a Bubble Tea program.
type Widget interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Focusable is implemented by widgets that track input focus.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}

// Config is passed to a MountFunc.
type Config struct {
	Placeholder string
	Toolbar     Toolbar
}

// MountFunc constructs a surface inside c.
type MountFunc func(c *Container, cfg Config) (Surface, error)
