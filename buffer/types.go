package buffer

// Pos points into the document by (row, grapheme column).
type Pos struct {
	Row int
	Col int
}

func ComparePos(a, b Pos) int {
	switch {
	case a.Row != b.Row:
		if a.Row < b.Row {
			return -1
		}
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

// ClampPos clamps p into a document of rowCount rows where lineLen(row)
// returns the grapheme length of row. rowCount is treated as at least 1.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	rowCount = max(rowCount, 1)
	row := min(max(p.Row, 0), rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = max(lineLen(row), 0)
	}
	return Pos{Row: row, Col: min(max(p.Col, 0), maxCol)}
}
