package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasHistoryCommitUndoRedo(t *testing.T) {
	h := NewCanvasHistory("v1")
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	h.Commit("v2")
	h.Commit("v3")
	assert.Equal(t, "v3", h.Present())
	assert.True(t, h.CanUndo())

	assert.True(t, h.Undo())
	assert.Equal(t, "v2", h.Present())
	assert.True(t, h.CanRedo())

	assert.True(t, h.Redo())
	assert.Equal(t, "v3", h.Present())
	assert.False(t, h.CanRedo())
}

func TestCanvasHistoryCommitDiscardsRedoBranch(t *testing.T) {
	h := NewCanvasHistory("v1")
	h.Commit("v2")
	h.Undo()

	h.Commit("v2b")
	assert.Equal(t, "v2b", h.Present())
	assert.False(t, h.CanRedo())

	assert.True(t, h.Undo())
	assert.Equal(t, "v1", h.Present())
}

func TestCanvasHistoryIgnoresNoOpCommit(t *testing.T) {
	h := NewCanvasHistory("v1")
	h.Commit("v1")
	assert.False(t, h.CanUndo())
}

func TestCanvasHistoryUndoAtFloor(t *testing.T) {
	h := NewCanvasHistory("v1")
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
	assert.Equal(t, "v1", h.Present())
}
