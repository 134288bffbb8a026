// Package history implements the bounded snapshot stack behind undo/redo.
package history

import (
	"github.com/maskedsyntax/splashy/internal/raster"
)

// MaxDepth is the number of snapshots kept before the oldest is dropped.
const MaxDepth = 100

// Stack holds full-surface snapshots of the active layer. Pushing while
// undone states exist discards the redo tail, so a new stroke after undo
// cannot be redone over.
type Stack struct {
	snaps []*raster.Surface
	index int
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{index: -1}
}

// Push records a snapshot of the surface as the newest state.
func (h *Stack) Push(s *raster.Surface) {
	h.snaps = h.snaps[:h.index+1]
	if len(h.snaps) == MaxDepth {
		h.snaps = append(h.snaps[:0], h.snaps[1:]...)
		h.index--
	}
	h.snaps = append(h.snaps, s.Clone())
	h.index++
}

// Undo steps back one state and returns the snapshot to restore. The
// returned surface belongs to the stack; callers must copy from it.
func (h *Stack) Undo() (*raster.Surface, bool) {
	if h.index <= 0 {
		return nil, false
	}
	h.index--
	return h.snaps[h.index], true
}

// Redo steps forward one state and returns the snapshot to restore. The
// returned surface belongs to the stack; callers must copy from it.
func (h *Stack) Redo() (*raster.Surface, bool) {
	if h.index >= len(h.snaps)-1 {
		return nil, false
	}
	h.index++
	return h.snaps[h.index], true
}

// CanUndo reports whether Undo would succeed.
func (h *Stack) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether Redo would succeed.
func (h *Stack) CanRedo() bool { return h.index < len(h.snaps)-1 }

// Len returns the number of stored snapshots.
func (h *Stack) Len() int { return len(h.snaps) }

// Reset discards all snapshots.
func (h *Stack) Reset() {
	h.snaps = nil
	h.index = -1
}
