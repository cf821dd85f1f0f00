package buffer

import (
	"strings"

	"github.com/iw2rmb/richbind/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

// Buffer holds paragraphs as rows of grapheme clusters.
type Buffer struct {
	lines [][]string

	// version bumps on any state change; textVersion only when text changes.
	version     uint64
	textVersion uint64

	cursor Pos

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

// Text returns the document with paragraphs joined by '\n'.
func (b *Buffer) Text() string {
	return strings.Join(b.Paragraphs(), "\n")
}

// Paragraphs returns one string per row. The result has at least one element.
func (b *Buffer) Paragraphs() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = grapheme.Join(line)
	}
	return out
}

// Line returns the clusters of row, or nil when row is out of range.
func (b *Buffer) Line(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// IsEmpty reports whether the document is a single empty paragraph.
func (b *Buffer) IsEmpty() bool { return len(b.lines) == 1 && len(b.lines[0]) == 0 }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func (b *Buffer) endPos() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
