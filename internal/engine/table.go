package engine

// TableCell is one row of the scoring-table enumeration an external
// renderer consumes (spec §6): the score, which back-pointers are set,
// whether the cell lies on some co-optimal path, and whether its
// diagonal predecessor was a character match.
type TableCell struct {
	Col, Row      int
	Score         int
	Diag, Up, Left bool
	InOptimalPath bool
	Match         bool
}

// Table is a read-only handle onto a finished computation's score and
// walk matrices, letting a renderer walk the table without reaching
// into engine internals. The match bit is recomputed from the raw
// sequence bytes rather than stored on the score cell (see the module's
// design notes on the source's unused match bit).
type Table struct {
	comp *Computation
}

// Dims returns the table's (M, N) extents.
func (t *Table) Dims() (m, n int) {
	return t.comp.scores.M, t.comp.scores.N
}

// Cell returns the rendering view of cell (col, row).
func (t *Table) Cell(col, row int) TableCell {
	sc := t.comp.scores.At(col, row)
	wc := t.comp.walk.Cell(col, row)
	match := col > 0 && row > 0 && t.comp.s1[col-1] == t.comp.s2[row-1]
	return TableCell{
		Col:           col,
		Row:           row,
		Score:         sc.Score(),
		Diag:          wc.Diag,
		Up:            wc.Up,
		Left:          wc.Left,
		InOptimalPath: wc.InOptimalPath,
		Match:         match,
	}
}

// Each calls yield for every cell in col-major, row-minor order (for
// col in 0..M: for row in 0..N), stopping early if yield returns false.
func (t *Table) Each(yield func(TableCell) bool) {
	m, n := t.Dims()
	for col := 0; col < m; col++ {
		for row := 0; row < n; row++ {
			if !yield(t.Cell(col, row)) {
				return
			}
		}
	}
}

// MaxAbsScore returns the largest |score| recorded during scoring (see
// matrix.ScoreMatrix.NoteAbsScore and Params.RenderTable).
func (t *Table) MaxAbsScore() int {
	return t.comp.scores.MaxAbsScore()
}

// TopString and SideString expose the two input sequences a renderer
// prints along the table's top row and left column.
func (t *Table) TopString() string  { return string(t.comp.s1) }
func (t *Table) SideString() string { return string(t.comp.s2) }
