package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/richbind/config"
	"github.com/iw2rmb/richbind/richtext"
	"github.com/iw2rmb/richbind/surface"
	"github.com/iw2rmb/richbind/termsurface"
)

// product is the host-owned state the editors are bound to.
type product struct {
	Description string
	Notes       string
}

type productLoadedMsg struct{ description string }

const (
	fieldDescription = iota
	fieldNotes
	fieldCount
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	focusBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63"))
	blurBorder   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	loadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

type form struct {
	product *product
	editors [fieldCount]richtext.Model
	focus   int

	// sent holds the values last handed to each editor.
	sent [fieldCount]string

	loaded    string
	loadAfter time.Duration
	log       *zap.Logger
}

func newForm(cfg *config.Config, log *zap.Logger, value, loaded string, loadAfter time.Duration) form {
	p := &product{Description: value}
	f := form{product: p, loaded: loaded, loadAfter: loadAfter, log: log}

	newEditor := func(ec config.EditorConfig, v string, onChange func(string)) richtext.Model {
		c := surface.NewContainer()
		c.Attach(60, 8)
		return richtext.New(richtext.Config{
			Value:        v,
			OnChange:     onChange,
			Placeholder:  ec.Placeholder,
			Toolbar:      ec.Toolbar(),
			Container:    c,
			Mount:        termsurface.Mount,
			InitDelay:    cfg.Timing.InitDelay,
			EchoWindow:   echoWindow(cfg.Timing.EchoWindow),
			LoadingStyle: loadingStyle,
			Logger:       log,
		})
	}
	f.editors[fieldDescription] = newEditor(cfg.Editors.Description, p.Description, func(v string) { p.Description = v })
	f.editors[fieldNotes] = newEditor(cfg.Editors.Notes, p.Notes, func(v string) { p.Notes = v })
	f.editors[fieldDescription] = f.editors[fieldDescription].Focus()
	f.sent = [fieldCount]string{p.Description, p.Notes}
	return f
}

// echoWindow maps the configured window: zero keeps echoes until matched.
func echoWindow(d time.Duration) time.Duration {
	if d == 0 {
		return -1
	}
	return d
}

func (f form) Init() tea.Cmd {
	cmds := []tea.Cmd{f.editors[fieldDescription].Init(), f.editors[fieldNotes].Init()}
	if f.loadAfter > 0 {
		desc := f.loaded
		cmds = append(cmds, tea.Tick(f.loadAfter, func(time.Time) tea.Msg {
			return productLoadedMsg{description: desc}
		}))
	}
	return tea.Batch(cmds...)
}

func (f form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q", "ctrl+c":
			for i := range f.editors {
				f.editors[i] = f.editors[i].Unmount()
			}
			return f, tea.Quit
		case "tab", "shift+tab":
			f.editors[f.focus] = f.editors[f.focus].Blur()
			f.focus = (f.focus + 1) % fieldCount
			f.editors[f.focus] = f.editors[f.focus].Focus()
			return f, nil
		}
		var cmd tea.Cmd
		f.editors[f.focus], cmd = f.editors[f.focus].Update(msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		size := tea.WindowSizeMsg{Width: max(msg.Width-2, 20), Height: max((msg.Height-8)/2, 4)}
		for i := range f.editors {
			f.editors[i].Container().Resize(size.Width, size.Height)
			var cmd tea.Cmd
			f.editors[i], cmd = f.editors[i].Update(size)
			cmds = append(cmds, cmd)
		}

	case productLoadedMsg:
		f.log.Info("Product loaded", zap.Int("bytes", len(msg.description)))
		f.product.Description = msg.description

	default:
		for i := range f.editors {
			var cmd tea.Cmd
			f.editors[i], cmd = f.editors[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Hand changed host state back to the editors, echoes included.
	for i, v := range [fieldCount]string{f.product.Description, f.product.Notes} {
		if v != f.sent[i] {
			f.sent[i] = v
			f.editors[i] = f.editors[i].SetValue(v)
		}
	}
	return f, tea.Batch(cmds...)
}

func (f form) View() string {
	var sb strings.Builder
	for i, title := range []string{"Description", "Notes"} {
		border := blurBorder
		if i == f.focus {
			border = focusBorder
		}
		sb.WriteString(labelStyle.Render(title))
		sb.WriteString("\n")
		sb.WriteString(border.Render(f.editors[i].View()))
		sb.WriteString("\n")
	}
	sb.WriteString(valueStyle.Render("description = " + f.product.Description))
	sb.WriteString("\n")
	sb.WriteString(valueStyle.Render("notes = " + f.product.Notes))
	sb.WriteString("\n")
	sb.WriteString(valueStyle.Render("tab: switch field  ctrl+q: quit"))
	return sb.String()
}
