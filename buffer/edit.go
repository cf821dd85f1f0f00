package buffer

import "github.com/iw2rmb/richbind/internal/grapheme"

// InsertText inserts s at the cursor. s may contain '\n'.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	b.edit(Pos{}, Pos{}, s, true)
}

// InsertNewline splits the current paragraph at the cursor.
func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.edit(Pos{Row: row, Col: col - 1}, b.cursor, "", false)
	case row > 0:
		// Join with the previous paragraph.
		b.edit(Pos{Row: row - 1, Col: len(b.lines[row-1])}, b.cursor, "", false)
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.edit(b.cursor, Pos{Row: row, Col: col + 1}, "", false)
	case row < len(b.lines)-1:
		b.edit(b.cursor, Pos{Row: row + 1, Col: 0}, "", false)
	}
}

// Replace swaps the whole document for text and moves the cursor to the end.
// It records a change with the given source even when the cursor is all that
// moves; a no-op replacement records nothing.
func (b *Buffer) Replace(text string, source ChangeSource) {
	before := b.Text()
	if before == text {
		return
	}
	prev := b.snapshot()
	change := b.beginChange(source, before)

	b.lines = splitLines(text)
	b.cursor = b.endPos()
	b.recordUndo(prev)
	b.commitChange(change)
}

// edit replaces [start, end) with text as a local change. When atCursor is
// set the range is the cursor position.
func (b *Buffer) edit(start, end Pos, text string, atCursor bool) {
	if atCursor {
		start, end = b.cursor, b.cursor
	}
	start, end = b.clampPos(start), b.clampPos(end)
	if ComparePos(start, end) > 0 {
		start, end = end, start
	}
	if start == end && text == "" {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal, prev.text)

	b.cursor = b.replaceRange(start, end, text)
	b.recordUndo(prev)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(start, end Pos, text string) (next Pos) {
	prefix := append([]string(nil), b.lines[start.Row][:start.Col]...)
	suffix := append([]string(nil), b.lines[end.Row][end.Col:]...)

	ins := splitLines(text)
	repl := make([][]string, 0, len(ins))
	for i, part := range ins {
		line := append([]string(nil), part...)
		if i == 0 {
			line = append(prefix, line...)
		}
		repl = append(repl, line)
	}
	last := len(repl) - 1
	next = Pos{Row: start.Row + last, Col: len(repl[last])}
	repl[last] = append(repl[last], suffix...)

	out := make([][]string, 0, len(b.lines)-(end.Row-start.Row)+last)
	out = append(out, b.lines[:start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[end.Row+1:]...)
	b.lines = out
	return next
}

// wordEnd returns the column after the word or space run starting at col.
func wordEnd(line []string, col int) int {
	for col < len(line) && grapheme.IsSpace(line[col]) {
		col++
	}
	for col < len(line) && grapheme.IsWord(line[col]) {
		col++
	}
	if col < len(line) && !grapheme.IsWord(line[col]) && !grapheme.IsSpace(line[col]) {
		col++
	}
	return col
}

// wordStart returns the column where the word ending at col begins.
func wordStart(line []string, col int) int {
	for col > 0 && grapheme.IsSpace(line[col-1]) {
		col--
	}
	if col > 0 && !grapheme.IsWord(line[col-1]) {
		return col - 1
	}
	for col > 0 && grapheme.IsWord(line[col-1]) {
		col--
	}
	return col
}
