package engine

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"nwsw/internal/matrix"
)

// Computation binds two borrowed sequences, scoring parameters, and the
// score/walk matrix pair for a single alignment run. It owns the
// solution counter; the walk matrix owns the branch counter (see
// matrix.WalkMatrix.IncBranchCount).
type Computation struct {
	s1, s2   []byte
	params   Params
	threaded bool

	scores *matrix.ScoreMatrix
	walk   *matrix.WalkMatrix

	solutionMu    sync.RWMutex
	solutionCount uint64
}

func newComputation(s1, s2 []byte, params Params) *Computation {
	M := len(s1) + 1
	N := len(s2) + 1
	threaded := params.Workers > 1

	c := &Computation{
		s1:       s1,
		s2:       s2,
		params:   params,
		threaded: threaded,
		scores:   matrix.New(M, N, threaded),
		walk:     matrix.New(M, N, threaded),
	}

	if params.Algorithm == Local {
		c.scores.InitLocalBorder()
		// No back-pointers on the border: every *_done is vacuously true.
		c.walk.Cell(0, 0).ResetDone()
		for i := 0; i < M; i++ {
			c.walk.Cell(i, 0).ResetDone()
		}
		for j := 0; j < N; j++ {
			c.walk.Cell(0, j).ResetDone()
		}
	} else {
		c.scores.InitGlobalBorder(params.Indel)
		c.walk.Cell(0, 0).ResetDone()
		for i := 1; i < M; i++ {
			wc := c.walk.Cell(i, 0)
			wc.Left = true
			wc.ResetDone()
		}
		for j := 1; j < N; j++ {
			wc := c.walk.Cell(0, j)
			wc.Up = true
			wc.ResetDone()
		}
	}

	return c
}

func (c *Computation) incSolutionCount() {
	if c.threaded {
		c.solutionMu.Lock()
		c.solutionCount++
		c.solutionMu.Unlock()
		return
	}
	c.solutionCount++
}

func (c *Computation) solutions() uint64 {
	if c.threaded {
		c.solutionMu.RLock()
		defer c.solutionMu.RUnlock()
	}
	return c.solutionCount
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func max3OrZero(a, b, c int) int {
	m := max3(a, b, c)
	if m < 0 {
		return 0
	}
	return m
}

// scoreCell computes and publishes the score for interior cell (col,
// row), then marks the corresponding walk cell's back-pointer bits.
// col and row are both >= 1.
func (c *Computation) scoreCell(col, row int) {
	upScore := c.scores.At(col, row-1).Score() - c.params.Indel

	diagScore := c.scores.At(col-1, row-1).Score()
	if c.s1[col-1] == c.s2[row-1] {
		diagScore += c.params.Match
	} else {
		diagScore -= c.params.Mismatch
	}

	var leftScore int
	if c.threaded {
		leftScore = c.scores.At(col-1, row).WaitReady() - c.params.Indel
	} else {
		leftScore = c.scores.At(col-1, row).Score() - c.params.Indel
	}

	var score int
	if c.params.Algorithm == Local {
		score = max3OrZero(upScore, leftScore, diagScore)
	} else {
		score = max3(upScore, leftScore, diagScore)
	}
	c.scores.At(col, row).Set(score, c.threaded)

	if c.params.Algorithm == Local || c.params.RenderTable {
		c.scores.NoteAbsScore(score)
	}

	wc := c.walk.Cell(col, row)
	if c.params.Algorithm == Local && score == 0 {
		wc.DiagDone, wc.LeftDone, wc.UpDone = true, true, true
	} else {
		if score == diagScore {
			wc.Diag = true
			wc.DiagDone = false
		} else {
			wc.DiagDone = true
		}
		if score == upScore {
			wc.Up = true
			wc.UpDone = false
		} else {
			wc.UpDone = true
		}
		if score == leftScore {
			wc.Left = true
			wc.LeftDone = false
		} else {
			wc.LeftDone = true
		}
	}
	if wc.Branches() >= 2 {
		c.walk.IncBranchCount()
	}
}

// scoreColumn fills rows 1..N-1 of a single column, top to bottom.
func (c *Computation) scoreColumn(col int) {
	for row := 1; row < c.scores.N; row++ {
		c.scoreCell(col, row)
	}
}

// fillScores spawns Params.Workers goroutines, each owning the static
// round-robin column set {w+1, w+1+p, w+1+2p, ...}, and joins them
// before returning. With Workers == 1 it runs the identical scan
// sequentially with no goroutine or sync overhead at all.
func (c *Computation) fillScores() error {
	p := c.params.Workers
	if p == 1 {
		for col := 1; col < c.scores.M; col++ {
			c.scoreColumn(col)
		}
		return nil
	}

	var g errgroup.Group
	for w := 0; w < p; w++ {
		start := w + 1
		g.Go(func() error {
			for col := start; col < c.scores.M; col += p {
				c.scoreColumn(col)
			}
			return nil
		})
	}
	return g.Wait()
}
