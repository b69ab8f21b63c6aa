package seqio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTwoSequencesHappyPath(t *testing.T) {
	s1, s2, err := readTwoSequences(strings.NewReader("  GCATGCU \n GATTACA\n"))
	require.NoError(t, err)
	assert.Equal(t, "GCATGCU", string(s1))
	assert.Equal(t, "GATTACA", string(s2))
}

func TestReadTwoSequencesOnlyOneToken(t *testing.T) {
	_, _, err := readTwoSequences(strings.NewReader("GCATGCU"))
	assert.Error(t, err)
}

func TestReadTwoSequencesEmptyStream(t *testing.T) {
	_, _, err := readTwoSequences(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadTwoSequencesIgnoresTrailingTokens(t *testing.T) {
	s1, s2, err := readTwoSequences(strings.NewReader("AAA AAA extra-trailing-token"))
	require.NoError(t, err)
	assert.Equal(t, "AAA", string(s1))
	assert.Equal(t, "AAA", string(s2))
}
