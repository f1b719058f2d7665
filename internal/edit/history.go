package edit

// Change is one reversible document mutation.
type Change struct {
	// Label names the change for display and debugging.
	Label string

	// Undo reverses the change.
	Undo func()

	// Redo re-applies the change after an undo.
	Redo func()
}

// History is a linear undo/redo stack of changes.
type History struct {
	undo []Change
	redo []Change
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Push records a change as the newest undoable entry and clears the
// redo stack.
func (h *History) Push(ch Change) {
	h.undo = append(h.undo, ch)
	h.redo = h.redo[:0]
}

// Replay pops one entry in the given direction and applies it. With
// redo false the newest change is undone; with redo true the most
// recently undone change is re-applied. Returns false when the
// relevant stack is empty.
func (h *History) Replay(redo bool) bool {
	if redo {
		if len(h.redo) == 0 {
			return false
		}
		ch := h.redo[len(h.redo)-1]
		h.redo = h.redo[:len(h.redo)-1]
		if ch.Redo != nil {
			ch.Redo()
		}
		h.undo = append(h.undo, ch)
		return true
	}

	if len(h.undo) == 0 {
		return false
	}
	ch := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	if ch.Undo != nil {
		ch.Undo()
	}
	h.redo = append(h.redo, ch)
	return true
}

// CanReplay reports whether a replay in the given direction would
// apply anything.
func (h *History) CanReplay(redo bool) bool {
	if redo {
		return len(h.redo) > 0
	}
	return len(h.undo) > 0
}

// Len returns the number of undoable changes.
func (h *History) Len() int { return len(h.undo) }
