package termsurface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/richbind/internal/grapheme"
)

func (s *Surface) toolbarHeight() int {
	if len(s.cfg.Toolbar.Labels()) == 0 {
		return 0
	}
	return 1
}

// renderToolbar draws the configured controls on a single strip, truncated
// to the surface width.
func (s *Surface) renderToolbar() string {
	st := s.opt.Style
	labels := s.cfg.Toolbar.Labels()
	items := make([]string, len(labels))
	for i, l := range labels {
		items[i] = st.ToolbarItem.Render(l)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	if w := s.viewport.Width; w > 0 {
		strip = lipgloss.NewStyle().MaxWidth(w).Render(strip)
	}
	return st.Toolbar.Render(strip)
}

// renderContent returns the wrapped document and the visual row holding the
// cursor.
func (s *Surface) renderContent() (string, int) {
	st := s.opt.Style
	cur := s.buf.Cursor()
	showCursor := s.focused && !s.opt.ReadOnly

	if s.buf.IsEmpty() && s.cfg.Placeholder != "" {
		ph := st.Placeholder.Render(s.cfg.Placeholder)
		if showCursor {
			ph = st.Cursor.Render(" ") + ph
		}
		return ph, 0
	}

	width := s.viewport.Width
	var (
		out       []string
		cursorRow int
	)
	for row := 0; row < s.buf.LineCount(); row++ {
		col := -1
		if showCursor && row == cur.Row {
			col = cur.Col
		}
		lines, at := s.wrapLine(s.buf.Line(row), width, col)
		if at >= 0 {
			cursorRow = len(out) + at
		}
		out = append(out, lines...)
	}
	return strings.Join(out, "\n"), cursorRow
}

// wrapLine soft-wraps one paragraph at width cells. When cursorCol >= 0 the
// cluster at that column (or a trailing cell) is drawn with the cursor style
// and the wrapped row index holding it is returned.
func (s *Surface) wrapLine(clusters []string, width, cursorCol int) ([]string, int) {
	st := s.opt.Style

	var (
		rows      []string
		sb        strings.Builder
		used      int
		cursorRow = -1
	)
	flush := func() {
		rows = append(rows, sb.String())
		sb.Reset()
		used = 0
	}
	emit := func(cell string, w int, cursor bool) {
		if width > 0 && used > 0 && used+w > width {
			flush()
		}
		if cursor {
			cursorRow = len(rows)
			sb.WriteString(st.Cursor.Render(cell))
		} else {
			sb.WriteString(st.Text.Render(cell))
		}
		used += w
	}

	for i, c := range clusters {
		cell := c
		if c == "\t" {
			cell = " "
		}
		emit(cell, max(grapheme.Width(c), 1), i == cursorCol)
	}
	if cursorCol >= len(clusters) {
		emit(" ", 1, true)
	}
	flush()
	return rows, cursorRow
}
