package matrix

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMatrixGlobalBorder(t *testing.T) {
	s := New(4, 3, false)
	s.InitGlobalBorder(2)

	assert.Equal(t, 0, s.At(0, 0).Score())
	assert.Equal(t, -2, s.At(1, 0).Score())
	assert.Equal(t, -4, s.At(2, 0).Score())
	assert.Equal(t, -6, s.At(3, 0).Score())
	assert.Equal(t, -2, s.At(0, 1).Score())
	assert.Equal(t, -4, s.At(0, 2).Score())
}

func TestScoreMatrixLocalBorderIsZero(t *testing.T) {
	s := New(3, 3, false)
	s.InitLocalBorder()

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, s.At(i, 0).Score())
	}
	for j := 0; j < 3; j++ {
		assert.Equal(t, 0, s.At(0, j).Score())
	}
}

func TestScoreCellWaitReadyBlocksUntilSet(t *testing.T) {
	s := New(2, 2, true)
	cell := s.At(1, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	got := -1
	go func() {
		defer wg.Done()
		got = cell.WaitReady()
	}()

	cell.Set(7, true)
	wg.Wait()

	require.Equal(t, 7, got)
}

func TestNoteAbsScoreTracksMaximum(t *testing.T) {
	s := New(2, 2, false)
	s.NoteAbsScore(3)
	s.NoteAbsScore(-9)
	s.NoteAbsScore(5)

	assert.Equal(t, 9, s.MaxAbsScore())
}
