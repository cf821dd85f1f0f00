package termsurface

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/richbind/buffer"
	"github.com/iw2rmb/richbind/content"
	"github.com/iw2rmb/richbind/surface"
)

var (
	ErrDetached = errors.New("termsurface: container is detached")
	ErrReleased = errors.New("termsurface: surface released")
)

// Options tunes a Surface beyond the per-call-site surface.Config.
type Options struct {
	// Nil selects DefaultKeyMap and DefaultStyle.
	KeyMap *KeyMap
	Style  *Style

	Clipboard Clipboard
	ReadOnly  bool

	// Forwarded to buffer.Options.
	HistoryLimit int
}

// Surface is a terminal editing surface. It implements surface.Surface,
// surface.Widget and surface.Focusable.
type Surface struct {
	container *surface.Container
	cfg       surface.Config
	opt       Options

	buf      *buffer.Buffer
	viewport viewport.Model

	listener surface.Listener
	focused  bool
	released bool

	lastTextVersion uint64
}

var (
	_ surface.Surface   = (*Surface)(nil)
	_ surface.Widget    = (*Surface)(nil)
	_ surface.Focusable = (*Surface)(nil)
)

// Mount builds a surface with default options. It satisfies
// surface.MountFunc.
func Mount(c *surface.Container, cfg surface.Config) (surface.Surface, error) {
	return MountWith(Options{})(c, cfg)
}

// MountWith returns a surface.MountFunc building surfaces with opt.
func MountWith(opt Options) surface.MountFunc {
	return func(c *surface.Container, cfg surface.Config) (surface.Surface, error) {
		s, err := New(c, cfg, opt)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// New builds a surface inside c, sized to the container.
func New(c *surface.Container, cfg surface.Config, opt Options) (*Surface, error) {
	if !c.Attached() {
		return nil, ErrDetached
	}
	if opt.KeyMap == nil {
		km := DefaultKeyMap()
		opt.KeyMap = &km
	}
	if opt.Style == nil {
		st := DefaultStyle()
		opt.Style = &st
	}

	s := &Surface{
		container: c,
		cfg:       cfg,
		opt:       opt,
		buf:       buffer.New("", buffer.Options{HistoryLimit: opt.HistoryLimit}),
		viewport:  viewport.New(0, 0),
		focused:   true,
	}
	w, h := c.Size()
	s.SetSize(w, h)
	return s, nil
}

// Buffer exposes the document for hosts and tests.
func (s *Surface) Buffer() *buffer.Buffer { return s.buf }

func (s *Surface) HTML() string {
	return content.FromParagraphs(s.buf.Paragraphs())
}

// SetHTML replaces the document. The listener sees the result as an API edit.
func (s *Surface) SetHTML(html string) {
	if s.released {
		return
	}
	s.buf.Replace(strings.Join(content.Paragraphs(html), "\n"), buffer.ChangeSourceRemote)
	s.notify(surface.SourceAPI)
	s.refresh()
}

func (s *Surface) Subscribe(fn surface.Listener) {
	if s.released {
		return
	}
	s.listener = fn
}

func (s *Surface) Unsubscribe() error {
	if s.released {
		return ErrReleased
	}
	s.listener = nil
	return nil
}

func (s *Surface) Release() error {
	if s.released {
		return ErrReleased
	}
	s.released = true
	s.listener = nil
	return nil
}

func (s *Surface) Focus() {
	if !s.focused {
		s.focused = true
		s.refresh()
	}
}

func (s *Surface) Blur() {
	if s.focused {
		s.focused = false
		s.refresh()
	}
}

func (s *Surface) Focused() bool { return s.focused }

// SetSize resizes the surface, toolbar strip included, and the container.
func (s *Surface) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	s.container.Resize(width, height)

	s.viewport.Width = width
	s.viewport.Height = max(height-s.toolbarHeight(), 0)
	s.refresh()
}

func (s *Surface) Update(msg tea.Msg) tea.Cmd {
	if s.released {
		return nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		s.updateKey(msg)
		s.notify(surface.SourceUser)
		s.refresh()
		return nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (s *Surface) View() string {
	if s.released {
		return ""
	}
	if s.toolbarHeight() == 0 {
		return s.viewport.View()
	}
	return s.renderToolbar() + "\n" + s.viewport.View()
}

// notify reports the document to the listener if the text changed since the
// last notification.
func (s *Surface) notify(src surface.Source) {
	tv := s.buf.TextVersion()
	if tv == s.lastTextVersion {
		return
	}
	s.lastTextVersion = tv
	if s.listener != nil {
		s.listener(s.HTML(), src)
	}
}

func (s *Surface) refresh() {
	text, cursorRow := s.renderContent()
	s.viewport.SetContent(text)
	s.followCursor(cursorRow)
}

func (s *Surface) followCursor(row int) {
	h := s.viewport.Height - s.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := s.viewport.YOffset
	switch {
	case row < y:
		s.viewport.SetYOffset(row)
	case row >= y+h:
		s.viewport.SetYOffset(row - h + 1)
	}
}
