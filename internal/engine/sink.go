package engine

// AlignmentStats carries the per-alignment match/mismatch/indel counts
// computed on the fly during emission (the original's -l counts).
type AlignmentStats struct {
	Matches    int
	Mismatches int
	Indels     int
}

// AlignmentSink receives one Emit call per co-optimal alignment found
// during reconstruction, top and side already in forward (left-to-right)
// order with '-' standing in for an indel.
type AlignmentSink interface {
	Emit(top, side string, stats AlignmentStats)
}

// SinkFunc adapts a plain function to an AlignmentSink.
type SinkFunc func(top, side string, stats AlignmentStats)

func (f SinkFunc) Emit(top, side string, stats AlignmentStats) {
	f(top, side, stats)
}

// DiscardSink drops every alignment, for callers that only want the
// Summary (e.g. a run with -q and neither -l nor -t).
var DiscardSink AlignmentSink = SinkFunc(func(string, string, AlignmentStats) {})

func countStats(x, y []byte) AlignmentStats {
	var stats AlignmentStats
	for i := range x {
		switch {
		case x[i] == y[i]:
			stats.Matches++
		case x[i] == gapChar || y[i] == gapChar:
			stats.Indels++
		default:
			stats.Mismatches++
		}
	}
	return stats
}

const gapChar = '-'
