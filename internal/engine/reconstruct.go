package engine

import (
	"fmt"

	"nwsw/internal/matrix"
)

// startCell is one member of the LOCAL reconstruction start-cell set.
type startCell struct {
	Col, Row int
}

// startingCells returns every cell whose score equals the table's
// maximum absolute score, in column-major order (matching the
// deterministic start-cell enumeration the spec requires for LOCAL).
func (c *Computation) startingCells() []startCell {
	target := c.scores.MaxAbsScore()
	var cells []startCell
	for col := 1; col < c.scores.M; col++ {
		for row := 1; row < c.scores.N; row++ {
			if c.scores.At(col, row).Score() == target {
				cells = append(cells, startCell{Col: col, Row: row})
			}
		}
	}
	return cells
}

// padLeader walks from (M-1, N-1) down to (startCol, startRow),
// writing the un-traversed suffix into X/Y so that a LOCAL alignment's
// buffers read correctly from the bottom-right corner of the table
// down to wherever its local segment actually begins. Diagonal overhang
// walks one sequence alone, padding the other with spaces.
func (c *Computation) padLeader(x, y []byte, startCol, startRow int) int {
	i, j := c.scores.M-1, c.scores.N-1
	n := 0

	for i-startCol > j-startRow {
		x[n] = c.s1[i-1]
		y[n] = ' '
		i--
		n++
	}
	for j-startRow > i-startCol {
		x[n] = ' '
		y[n] = c.s2[j-1]
		j--
		n++
	}
	for j != startRow || i != startCol {
		x[n] = c.s1[i-1]
		y[n] = c.s2[j-1]
		i--
		j--
		n++
	}
	return n
}

// fillRestOfSolution exhausts whatever remains of both input sequences
// once a walk reaches the top or left edge of its subtable, so a
// solution buffer always runs all the way back to (0,0) even when the
// optimal path itself stopped short.
func (c *Computation) fillRestOfSolution(x, y []byte, i, j, n int) int {
	for i > 0 && j > 0 {
		x[n] = c.s1[i-1]
		y[n] = c.s2[j-1]
		n++
		i--
		j--
	}
	for i > 0 {
		x[n] = c.s1[i-1]
		y[n] = ' '
		n++
		i--
	}
	for j > 0 {
		x[n] = ' '
		y[n] = c.s2[j-1]
		n++
		j--
	}
	return n
}

// emit reverses the first n bytes of x/y (the buffers are filled
// outside-in as the walk moves away from the start cell) and reports
// the resulting alignment to sink.
func (c *Computation) emit(x, y []byte, n int, sink AlignmentSink) {
	top := reversed(x[:n])
	side := reversed(y[:n])
	sink.Emit(string(top), string(side), countStats(top, side))
	c.incSolutionCount()
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// walkFrom performs the iterative depth-first enumeration of every
// co-optimal alignment reachable from (startCol, startRow), using the
// walk matrix's own done-bits and src-dir fields as the traversal's
// scratchpad instead of an explicit call stack. n is the buffer offset
// to resume writing at (0 for GLOBAL, the padded-leader length for
// LOCAL).
func (c *Computation) walkFrom(x, y []byte, startCol, startRow, n int, sink AlignmentSink) {
	i, j := startCol, startRow

	for i >= 0 && j >= 0 && i <= startCol && j <= startRow &&
		!(i == startCol && j == startRow && c.walk.Cell(i, j).AllDone()) {

		wc := c.walk.Cell(i, j)
		if c.params.RenderTable {
			wc.InOptimalPath = true
		}

		if !wc.Diag && !wc.Left && !wc.Up {
			newN := c.fillRestOfSolution(x, y, i, j, n)
			c.emit(x, y, newN, sink)
		}

		if wc.AllDone() {
			wc.ResetDone()
			switch wc.SrcDir {
			case matrix.DirUp:
				j++
				c.walk.Cell(i, j).UpDone = true
			case matrix.DirLeft:
				i++
				c.walk.Cell(i, j).LeftDone = true
			case matrix.DirDiag:
				i++
				j++
				c.walk.Cell(i, j).DiagDone = true
			default:
				panic(fmt.Sprintf("unreachable: backtrack from (%d,%d) with no source direction", i, j))
			}
			n--
		} else {
			switch {
			case wc.Diag && !wc.DiagDone:
				x[n] = c.s1[i-1]
				y[n] = c.s2[j-1]
				i--
				j--
				c.walk.Cell(i, j).SrcDir = matrix.DirDiag
			case wc.Left && !wc.LeftDone:
				x[n] = c.s1[i-1]
				y[n] = gapChar
				i--
				c.walk.Cell(i, j).SrcDir = matrix.DirLeft
			case wc.Up && !wc.UpDone:
				x[n] = gapChar
				y[n] = c.s2[j-1]
				j--
				c.walk.Cell(i, j).SrcDir = matrix.DirUp
			}
			n++
		}
	}
}

// reconstruct enumerates every co-optimal alignment for the filled
// computation and reports each one to sink. GLOBAL has a single start
// cursor at the table's bottom-right corner; LOCAL has one start cursor
// per cell carrying the table's maximum absolute score, each preceded
// by its padded leader.
func (c *Computation) reconstruct(sink AlignmentSink) {
	maxLen := c.scores.M + c.scores.N
	x := make([]byte, maxLen)
	y := make([]byte, maxLen)

	if c.params.Algorithm == Global {
		c.walkFrom(x, y, c.scores.M-1, c.scores.N-1, 0, sink)
		return
	}

	for _, start := range c.startingCells() {
		n := c.padLeader(x, y, start.Col, start.Row)
		c.walkFrom(x, y, start.Col, start.Row, n, sink)
	}
}
