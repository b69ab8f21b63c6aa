package engine

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedAlignment struct {
	Top, Side string
	Stats     AlignmentStats
}

type collectingSink struct {
	alignments []recordedAlignment
}

func (s *collectingSink) Emit(top, side string, stats AlignmentStats) {
	s.alignments = append(s.alignments, recordedAlignment{Top: top, Side: side, Stats: stats})
}

func (s *collectingSink) sortedPairs() []string {
	pairs := make([]string, len(s.alignments))
	for i, a := range s.alignments {
		pairs[i] = a.Top + "\n" + a.Side
	}
	sort.Strings(pairs)
	return pairs
}

func runFixed(t *testing.T, s1, s2 string, m, k, d int, alg Algorithm, workers int) (Summary, *collectingSink) {
	t.Helper()
	sink := &collectingSink{}
	summary, err := Run([]byte(s1), []byte(s2), Params{
		Match:     m,
		Mismatch:  k,
		Indel:     d,
		Workers:   workers,
		Algorithm: alg,
	}, sink)
	require.NoError(t, err)
	return summary, sink
}

// S1 - GLOBAL small.
func TestGlobalSmallAlignment(t *testing.T) {
	summary, sink := runFixed(t, "GCATGCU", "GATTACA", 1, 1, 1, Global, 1)

	assert.Equal(t, 0, summary.OptimalScore)
	require.GreaterOrEqual(t, len(sink.alignments), 3)

	found := false
	for _, a := range sink.alignments {
		if a.Top == "GCATG-CU" && a.Side == "G-ATTACA" {
			found = true
		}
	}
	assert.True(t, found, "expected GCATG-CU/G-ATTACA among emitted alignments: %v", sink.sortedPairs())
}

// S2 - GLOBAL identical.
func TestGlobalIdenticalSequences(t *testing.T) {
	summary, sink := runFixed(t, "AAA", "AAA", 1, 1, 2, Global, 1)

	assert.EqualValues(t, 1, summary.SolutionCount)
	assert.Equal(t, 3, summary.OptimalScore)
	require.Len(t, sink.alignments, 1)
	assert.Equal(t, "AAA", sink.alignments[0].Top)
	assert.Equal(t, "AAA", sink.alignments[0].Side)
	assert.Equal(t, 3, sink.alignments[0].Stats.Matches)
}

// S3 - GLOBAL one empty sequence.
func TestGlobalOneEmptySequence(t *testing.T) {
	summary, sink := runFixed(t, "ABC", "", 1, 1, 1, Global, 1)

	assert.Equal(t, -3, summary.OptimalScore)
	require.Len(t, sink.alignments, 1)
	assert.Equal(t, "ABC", sink.alignments[0].Top)
	assert.Equal(t, "---", sink.alignments[0].Side)
}

// S4 - LOCAL.
func TestLocalAlignmentContainsExpectedSegment(t *testing.T) {
	summary, sink := runFixed(t, "TGTTACGG", "GGTTGACTA", 3, 3, 2, Local, 1)

	assert.Equal(t, 13, summary.OptimalScore)

	found := false
	for _, a := range sink.alignments {
		if strings.Contains(a.Top, "GTT-AC") && strings.Contains(a.Side, "GTTGAC") {
			found = true
		}
	}
	assert.True(t, found, "expected a local segment GTT-AC/GTTGAC among: %v", sink.sortedPairs())
}

// S5 - parallel equivalence.
func TestParallelMatchesSequentialResult(t *testing.T) {
	seq, seqSink := runFixed(t, "GCATGCU", "GATTACA", 1, 1, 1, Global, 1)
	par, parSink := runFixed(t, "GCATGCU", "GATTACA", 1, 1, 1, Global, 4)

	assert.Equal(t, seq.SolutionCount, par.SolutionCount)
	assert.Equal(t, seq.OptimalScore, par.OptimalScore)
	assert.Equal(t, seqSink.sortedPairs(), parSink.sortedPairs())
}

// S6 - branching.
func TestNoBranchingWhenMismatchDominates(t *testing.T) {
	summary, sink := runFixed(t, "AT", "AT", 1, 100, 1, Global, 1)

	assert.EqualValues(t, 0, summary.BranchCount)
	assert.EqualValues(t, 1, summary.SolutionCount)
	require.Len(t, sink.alignments, 1)
}

func TestBothSequencesEmptyEmitsNoAlignments(t *testing.T) {
	summary, sink := runFixed(t, "", "", 1, 1, 1, Global, 1)

	assert.Equal(t, 0, summary.OptimalScore)
	assert.Empty(t, sink.alignments)
	assert.EqualValues(t, 0, summary.SolutionCount)
}

func TestLocalEmptySequenceEmitsNoAlignments(t *testing.T) {
	summary, sink := runFixed(t, "ACGT", "", 2, 2, 1, Local, 1)

	assert.Equal(t, 0, summary.OptimalScore)
	assert.Empty(t, sink.alignments)
}

func TestTableEnumerationOrderAndDimensions(t *testing.T) {
	summary, _ := runFixed(t, "AC", "AG", 1, 1, 1, Global, 1)

	m, n := summary.Table.Dims()
	assert.Equal(t, 3, m)
	assert.Equal(t, 3, n)

	var order [][2]int
	summary.Table.Each(func(c TableCell) bool {
		order = append(order, [2]int{c.Col, c.Row})
		return true
	})
	assert.Equal(t, [2]int{0, 0}, order[0])
	assert.Equal(t, [2]int{0, 1}, order[1])
	assert.Equal(t, [2]int{0, 2}, order[2])
	assert.Equal(t, [2]int{1, 0}, order[3])
}

func TestEmittedAlignmentLengthInvariant(t *testing.T) {
	_, sink := runFixed(t, "GCATGCU", "GATTACA", 1, 1, 1, Global, 1)

	for _, a := range sink.alignments {
		require.Len(t, a.Top, len(a.Side))
		assert.LessOrEqual(t, len(a.Top), len("GCATGCU")+len("GATTACA"))
		assert.Equal(t, "GCATGCU", strings.ReplaceAll(a.Top, "-", ""))
		assert.Equal(t, "GATTACA", strings.ReplaceAll(a.Side, "-", ""))
	}
}

func TestValidateRejectsBadParams(t *testing.T) {
	_, err := Run([]byte("A"), []byte("A"), Params{Match: -1, Workers: 1}, nil)
	assert.Error(t, err)

	_, err = Run([]byte("A"), []byte("A"), Params{Workers: 0}, nil)
	assert.Error(t, err)
}

func TestBranchCountMatchesMultiParentCells(t *testing.T) {
	summary, _ := runFixed(t, "GCATGCU", "GATTACA", 1, 1, 1, Global, 1)

	var branching uint64
	summary.Table.Each(func(c TableCell) bool {
		n := 0
		if c.Diag {
			n++
		}
		if c.Up {
			n++
		}
		if c.Left {
			n++
		}
		if n >= 2 {
			branching++
		}
		return true
	})
	assert.Equal(t, branching, summary.BranchCount)
}
