package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkCellResetDoneInvariant(t *testing.T) {
	c := &WalkCell{Diag: true, Up: false, Left: true}
	c.ResetDone()

	assert.False(t, c.DiagDone)
	assert.True(t, c.UpDone)
	assert.False(t, c.LeftDone)
	assert.False(t, c.AllDone())
}

func TestWalkCellBranches(t *testing.T) {
	c := &WalkCell{}
	assert.Equal(t, 0, c.Branches())

	c.Diag = true
	assert.Equal(t, 1, c.Branches())

	c.Left = true
	assert.Equal(t, 2, c.Branches())

	c.Up = true
	assert.Equal(t, 3, c.Branches())
}

func TestWalkCellMarkDone(t *testing.T) {
	c := &WalkCell{Diag: true, Left: true, Up: true}
	c.ResetDone()
	assert.False(t, c.AllDone())

	c.MarkDone(DirDiag)
	c.MarkDone(DirLeft)
	assert.False(t, c.AllDone())

	c.MarkDone(DirUp)
	assert.True(t, c.AllDone())
}

func TestBranchCountSingleThreaded(t *testing.T) {
	w := New(2, 2, false)
	assert.Equal(t, uint64(0), w.BranchCount())

	w.IncBranchCount()
	w.IncBranchCount()
	assert.Equal(t, uint64(2), w.BranchCount())
}

func TestBranchCountThreadedConcurrentIncrement(t *testing.T) {
	w := New(2, 2, true)
	const n = 200

	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func() {
			w.IncBranchCount()
			done <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}

	assert.Equal(t, uint64(n), w.BranchCount())
}
