// Package matrix implements the two parallel dynamic-programming grids
// that back a pairwise alignment computation: the score matrix (C1),
// which carries each cell's numeric score and a per-cell readiness
// handshake, and the walk matrix (C2), which carries the back-pointer
// bits and per-traversal bookkeeping consumed by the reconstruction
// engine.
package matrix

import "sync"

// ScoreCell holds one cell's score plus the readiness handshake a
// column-parallel fill uses to signal a neighboring worker that the
// cell's score is final. The mutex/cond pair is only initialized when
// the owning ScoreMatrix is built in threaded mode; single-threaded
// fills never touch them.
type ScoreCell struct {
	score int
	ready bool
	mu    sync.Mutex
	cond  *sync.Cond
}

// Score returns the cell's score without synchronization. In a threaded
// fill the scoring engine uses it for the cell above (written earlier by
// the same goroutine) and for the diagonal cell, which the previous
// row's WaitReady on the left neighbor already ordered before this read
// (see Computation.scoreCell in internal/engine).
func (c *ScoreCell) Score() int {
	return c.score
}

// Set writes the cell's score, marks it ready, and signals any worker
// waiting on WaitReady. In single-threaded mode this is a plain write.
func (c *ScoreCell) Set(score int, threaded bool) {
	if !threaded {
		c.score = score
		c.ready = true
		return
	}
	c.mu.Lock()
	c.score = score
	c.ready = true
	c.cond.Signal()
	c.mu.Unlock()
}

// WaitReady blocks until the cell's score has been written, then
// returns it. Only meaningful in threaded mode; the caller never
// invokes this for a cell it owns itself.
func (c *ScoreCell) WaitReady() int {
	c.mu.Lock()
	for !c.ready {
		c.cond.Wait()
	}
	score := c.score
	c.mu.Unlock()
	return score
}

// ScoreMatrix is a dense (M)x(N) grid of ScoreCell stored column-major:
// Cols[col] is one contiguous column, so a worker assigned a column
// processes contiguous memory top-to-bottom.
type ScoreMatrix struct {
	M, N     int
	Cols     [][]ScoreCell
	threaded bool

	// MaxAbsScore is the largest |score| observed so far. It defines
	// the LOCAL start-cell set and is optionally tracked under GLOBAL
	// for table rendering (see engine.Params.RenderTable).
	maxAbsMu    sync.Mutex
	maxAbsScore int
}

// New allocates an (M)x(N) score matrix. threaded controls whether
// per-cell mutex/cond pairs are initialized; single-threaded runs skip
// them entirely per spec §5.
func New(M, N int, threaded bool) *ScoreMatrix {
	s := &ScoreMatrix{M: M, N: N, threaded: threaded}
	s.Cols = make([][]ScoreCell, M)
	for c := 0; c < M; c++ {
		s.Cols[c] = make([]ScoreCell, N)
		if threaded {
			for r := 0; r < N; r++ {
				cell := &s.Cols[c][r]
				cell.cond = sync.NewCond(&cell.mu)
			}
		}
	}
	return s
}

// At returns the cell at (col, row).
func (s *ScoreMatrix) At(col, row int) *ScoreCell {
	return &s.Cols[col][row]
}

// Threaded reports whether this matrix was built with per-cell sync
// primitives.
func (s *ScoreMatrix) Threaded() bool {
	return s.threaded
}

// NoteAbsScore records |score| as a candidate for MaxAbsScore. Safe to
// call concurrently from multiple scoring workers.
func (s *ScoreMatrix) NoteAbsScore(score int) {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	if s.threaded {
		s.maxAbsMu.Lock()
		if abs > s.maxAbsScore {
			s.maxAbsScore = abs
		}
		s.maxAbsMu.Unlock()
		return
	}
	if abs > s.maxAbsScore {
		s.maxAbsScore = abs
	}
}

// MaxAbsScore returns the largest |score| recorded via NoteAbsScore.
func (s *ScoreMatrix) MaxAbsScore() int {
	return s.maxAbsScore
}

// InitGlobalBorder writes the GLOBAL (Needleman-Wunsch) border scores:
// score(i,0) = -i*d along the top row, score(0,j) = -j*d along the
// left column, all marked ready so column workers never wait on them.
func (s *ScoreMatrix) InitGlobalBorder(d int) {
	s.Cols[0][0].score = 0
	s.Cols[0][0].ready = true
	for i := 1; i < s.M; i++ {
		s.Cols[i][0].score = -i * d
		s.Cols[i][0].ready = true
	}
	for j := 1; j < s.N; j++ {
		s.Cols[0][j].score = -j * d
		s.Cols[0][j].ready = true
	}
}

// InitLocalBorder writes the LOCAL (Smith-Waterman) border: every
// border cell scores 0 and is marked ready.
func (s *ScoreMatrix) InitLocalBorder() {
	for i := 0; i < s.M; i++ {
		s.Cols[i][0].ready = true
	}
	for j := 0; j < s.N; j++ {
		s.Cols[0][j].ready = true
	}
}
