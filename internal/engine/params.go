// Package engine binds two sequences and a set of scoring parameters to
// a score matrix and a walk matrix, fills them in column-striped
// parallel, and reconstructs every co-optimal alignment from the
// result. It is the Go rendering of run_alignment: the single entry
// point external callers (the CLI, the web API, the benchmark/profile
// harnesses) use to run an alignment.
package engine

import "github.com/pkg/errors"

// Algorithm selects which recurrence the scoring engine fills the
// table with: Needleman-Wunsch (global) or Smith-Waterman (local).
type Algorithm int

const (
	Global Algorithm = iota
	Local
)

func (a Algorithm) String() string {
	if a == Local {
		return "local"
	}
	return "global"
}

// Params carries the configuration the original source models as a
// handful of global flags (qflag, tflag, lflag, sflag, uflag, cflag).
// Here they're an explicit record threaded through Run rather than
// package state; the scoring/reconstruction engines only ever consult
// RenderTable and Workers/Algorithm, never a CLI flag directly.
type Params struct {
	Match     int
	Mismatch  int
	Indel     int
	Workers   int
	Algorithm Algorithm

	// RenderTable is set when a caller intends to render the scoring
	// table afterward. It gates two things that are otherwise pure
	// overhead: marking in_optimal_path during reconstruction, and
	// (GLOBAL only) tracking the table's maximum absolute score. LOCAL
	// always tracks the maximum absolute score regardless of this flag,
	// since it defines the reconstruction start-cell set.
	RenderTable bool
}

// Validate rejects parameter combinations the core cannot act on.
// Bad-option/bad-operand errors belong to this class per the input
// error taxonomy: fatal, surfaced with context, never retried.
func (p Params) Validate() error {
	if p.Match < 0 {
		return errors.Errorf("match bonus must be >= 0, got %d", p.Match)
	}
	if p.Mismatch < 0 {
		return errors.Errorf("mismatch penalty must be >= 0, got %d", p.Mismatch)
	}
	if p.Indel < 0 {
		return errors.Errorf("indel penalty must be >= 0, got %d", p.Indel)
	}
	if p.Workers < 1 {
		return errors.Errorf("worker count must be >= 1, got %d", p.Workers)
	}
	return nil
}
