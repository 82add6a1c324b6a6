package script

// CanvasHistory is a linear undo/redo stack over flat script text. Canvas
// transforms propose text; nothing lands in the history until the caller
// commits it here.
type CanvasHistory struct {
	past    []string
	present string
	future  []string
}

// NewCanvasHistory starts a history at the given initial text.
func NewCanvasHistory(initial string) *CanvasHistory {
	return &CanvasHistory{present: initial}
}

// Present returns the current text.
func (h *CanvasHistory) Present() string { return h.present }

// Commit records an accepted edit. Any redo branch is discarded: committing
// after an undo rewrites history from that point.
func (h *CanvasHistory) Commit(text string) {
	if text == h.present {
		return
	}
	h.past = append(h.past, h.present)
	h.present = text
	h.future = nil
}

// Undo steps back one edit. It reports whether a step was taken.
func (h *CanvasHistory) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	h.future = append(h.future, h.present)
	h.present = h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	return true
}

// Redo reapplies the most recently undone edit.
func (h *CanvasHistory) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	h.past = append(h.past, h.present)
	h.present = h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	return true
}

// CanUndo reports whether any past state remains.
func (h *CanvasHistory) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether any undone state remains.
func (h *CanvasHistory) CanRedo() bool { return len(h.future) > 0 }
