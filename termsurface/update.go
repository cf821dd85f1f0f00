package termsurface

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/richbind/buffer"
)

func (s *Surface) updateKey(msg tea.KeyMsg) {
	if !s.focused {
		return
	}
	ro := s.opt.ReadOnly

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !ro {
			s.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return
	}

	km := *s.opt.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		s.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		s.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		s.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		s.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.WordLeft):
		s.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		s.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		s.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		s.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		s.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		s.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case ro:
		// Everything below mutates the document.

	case key.Matches(msg, km.Backspace):
		s.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		s.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		s.buf.InsertNewline()
	case key.Matches(msg, km.Undo):
		s.buf.Undo()
	case key.Matches(msg, km.Redo):
		s.buf.Redo()
	case key.Matches(msg, km.Paste):
		s.pasteClipboard()

	case msg.Type == tea.KeyTab:
		s.buf.InsertText("\t")
	case msg.Type == tea.KeySpace:
		s.buf.InsertText(" ")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		s.buf.InsertText(string(msg.Runes))
	}
}

func (s *Surface) pasteClipboard() {
	if s.opt.Clipboard == nil {
		return
	}
	text, err := s.opt.Clipboard.ReadText()
	if err != nil || text == "" {
		return
	}
	s.buf.InsertText(normalizeNewlines(text))
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
