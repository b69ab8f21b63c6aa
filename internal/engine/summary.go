package engine

// Summary carries the derived quantities a caller wants after a run:
// how many co-optimal alignments were found, the optimal score, the
// branch count (a diagnostic), and a handle for enumerating the filled
// scoring table.
type Summary struct {
	SolutionCount uint64
	OptimalScore  int
	BranchCount   uint64
	Table         *Table
}

func (c *Computation) summary() Summary {
	score := c.scores.At(c.scores.M-1, c.scores.N-1).Score()
	if c.params.Algorithm == Local {
		score = c.scores.MaxAbsScore()
	}
	return Summary{
		SolutionCount: c.solutions(),
		OptimalScore:  score,
		BranchCount:   c.walk.BranchCount(),
		Table:         &Table{comp: c},
	}
}
