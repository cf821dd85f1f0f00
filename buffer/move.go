package buffer

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move relocates the cursor. Moves never change text.
func (b *Buffer) Move(m Move) {
	b.SetCursor(b.moveCursor(b.cursor, m))
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		if m.Dir == DirHome || m.Dir == DirUp || m.Dir == DirLeft {
			return Pos{}
		}
		return b.endPos()
	}
	return p
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		if p.Col > 0 {
			return Pos{Row: p.Row, Col: p.Col - 1}
		}
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: b.lineLen(p.Row - 1)}
		}
	case DirRight:
		if p.Col < b.lineLen(p.Row) {
			return Pos{Row: p.Row, Col: p.Col + 1}
		}
		if p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1}
		}
	default:
		return b.moveLine(p, dir)
	}
	return p
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return b.moveGrapheme(p, DirLeft)
		}
		return Pos{Row: p.Row, Col: wordStart(b.lines[p.Row], p.Col)}
	case DirRight:
		if p.Col >= b.lineLen(p.Row) {
			return b.moveGrapheme(p, DirRight)
		}
		return Pos{Row: p.Row, Col: wordEnd(b.lines[p.Row], p.Col)}
	}
	return b.moveLine(p, dir)
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirUp:
		if p.Row == 0 {
			return Pos{}
		}
		return b.clampPos(Pos{Row: p.Row - 1, Col: p.Col})
	case DirDown:
		if p.Row >= len(b.lines)-1 {
			return b.endPos()
		}
		return b.clampPos(Pos{Row: p.Row + 1, Col: p.Col})
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, Col: b.lineLen(p.Row)}
	}
	return p
}
