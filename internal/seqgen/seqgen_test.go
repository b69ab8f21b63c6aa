package seqgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSequenceLengthAndAlphabet(t *testing.T) {
	for _, length := range []int{0, 1, 10, 100} {
		seq := RandomSequence(length)
		require.Len(t, seq, length)
		for _, symbol := range seq {
			assert.Contains(t, "ATCG", string(symbol))
		}
	}
}

func TestRandomSequenceVaries(t *testing.T) {
	assert.NotEqual(t, RandomSequence(200), RandomSequence(200))
}

func TestGeneratorHonorsCustomAlphabet(t *testing.T) {
	g := New([]byte("01"), 42)
	seq := g.RandomSequence(500)
	require.Len(t, seq, 500)
	for _, symbol := range seq {
		assert.Contains(t, "01", string(symbol))
	}
}

func TestGeneratorNilAlphabetFallsBackToDefault(t *testing.T) {
	g := New(nil, 1)
	seq := g.RandomSequence(50)
	for _, symbol := range seq {
		assert.Contains(t, string(DefaultAlphabet), string(symbol))
	}
}

func TestWithSNPChangesExactlyOnePosition(t *testing.T) {
	original := "GATTACA"
	for pos := 0; pos < len(original); pos++ {
		mutated := WithSNP(original, pos)
		require.Len(t, mutated, len(original))

		differences := 0
		for i := range original {
			if original[i] != mutated[i] {
				differences++
				assert.Equal(t, pos, i)
			}
		}
		assert.Equal(t, 1, differences)
	}
}

func TestWithSNPInvalidPositionIsNoop(t *testing.T) {
	assert.Equal(t, "GATTACA", WithSNP("GATTACA", -1))
	assert.Equal(t, "GATTACA", WithSNP("GATTACA", 100))
}

func TestWithSNPSingleSymbolAlphabetIsNoop(t *testing.T) {
	g := New([]byte("A"), 7)
	assert.Equal(t, "AAAA", g.WithSNP("AAAA", 2))
}

func TestWithInsertion(t *testing.T) {
	assert.Equal(t, "GAXXTTACA", WithInsertion("GATTACA", 2, "XX"))
	assert.Equal(t, "GATTACA", WithInsertion("GATTACA", -1, "XX"))
}

func TestWithDeletion(t *testing.T) {
	assert.Equal(t, "GAACA", WithDeletion("GATTACA", 2, 2))
	assert.Equal(t, "GA", WithDeletion("GATTACA", 2, 500))
}

func TestWithBurstReplacesContiguousRun(t *testing.T) {
	original := "GATTACAGATTACA"
	mutated := WithBurst(original, 3, 4)
	require.Len(t, mutated, len(original))

	for i := 0; i < len(original); i++ {
		inBurst := i >= 3 && i < 7
		if !inBurst {
			assert.Equal(t, original[i], mutated[i], "position %d outside the burst should be untouched", i)
		}
	}
}

func TestWithBurstClampsToSequenceEnd(t *testing.T) {
	original := "GATTACA"
	mutated := WithBurst(original, 5, 100)
	require.Len(t, mutated, len(original))
	assert.Equal(t, original[:5], mutated[:5])
}

func TestWithBurstInvalidIsNoop(t *testing.T) {
	assert.Equal(t, "GATTACA", WithBurst("GATTACA", -1, 3))
	assert.Equal(t, "GATTACA", WithBurst("GATTACA", 2, 0))
}

func TestWithMutationsChangesExactCount(t *testing.T) {
	original := "GATTACAGATTACA"
	mutated := WithMutations(original, 5)
	require.Len(t, mutated, len(original))

	differences := 0
	for i := range original {
		if original[i] != mutated[i] {
			differences++
		}
	}
	assert.Equal(t, 5, differences)
}

func TestConsensusPicksMostCommonBase(t *testing.T) {
	consensus := Consensus([]string{"AAA", "AAT", "AAG"})
	assert.Equal(t, "AA", consensus[:2])
}

func TestConsensusTieBreaksByAlphabetOrder(t *testing.T) {
	// A two-way tie at every position: DefaultAlphabet is "ACGT", so a
	// tie between 'C' and 'A' should always resolve to 'A'.
	consensus := Consensus([]string{"C", "A"})
	assert.Equal(t, "A", consensus)
}

func TestConsensusEmptyInput(t *testing.T) {
	assert.Equal(t, "", Consensus(nil))
}
