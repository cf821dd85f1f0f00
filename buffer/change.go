package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceRemote
)

func (s ChangeSource) String() string {
	if s == ChangeSourceRemote {
		return "remote"
	}
	return "local"
}

// Change describes the most recent effective text mutation.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
	TextBefore    string
	TextAfter     string
}

// LastChange returns the most recent text change.
func (b *Buffer) LastChange() (Change, bool) {
	return b.lastChange, b.hasLastChange
}

type changeBuilder struct {
	source        ChangeSource
	versionBefore uint64
	cursorBefore  Pos
	textBefore    string
}

func (b *Buffer) beginChange(source ChangeSource, textBefore string) changeBuilder {
	return changeBuilder{
		source:        source,
		versionBefore: b.version,
		cursorBefore:  b.cursor,
		textBefore:    textBefore,
	}
}

// commitChange bumps both versions and records the change.
func (b *Buffer) commitChange(cb changeBuilder) {
	b.version++
	b.textVersion++
	b.lastChange = Change{
		Source:        cb.source,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
		TextBefore:    cb.textBefore,
		TextAfter:     b.Text(),
	}
	b.hasLastChange = true
}
