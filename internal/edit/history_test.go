package edit

import "testing"

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory()
	value := 0

	h.Push(Change{
		Label: "set one",
		Undo:  func() { value = 0 },
		Redo:  func() { value = 1 },
	})
	value = 1

	if !h.CanReplay(false) || h.CanReplay(true) {
		t.Fatal("fresh change: undo should be available, redo not")
	}

	if !h.Replay(false) {
		t.Fatal("undo reported nothing to do")
	}
	if value != 0 {
		t.Errorf("value after undo = %d, want 0", value)
	}
	if !h.CanReplay(true) {
		t.Fatal("redo unavailable after undo")
	}

	if !h.Replay(true) {
		t.Fatal("redo reported nothing to do")
	}
	if value != 1 {
		t.Errorf("value after redo = %d, want 1", value)
	}
}

func TestHistoryEmptyReplay(t *testing.T) {
	h := NewHistory()
	if h.Replay(false) {
		t.Error("undo on empty history reported success")
	}
	if h.Replay(true) {
		t.Error("redo on empty history reported success")
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(Change{Label: "a"})
	h.Replay(false)
	if !h.CanReplay(true) {
		t.Fatal("redo unavailable after undo")
	}

	h.Push(Change{Label: "b"})
	if h.CanReplay(true) {
		t.Error("redo stack survived a new change")
	}
	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.Len())
	}
}

func TestHistoryOrderIsLIFO(t *testing.T) {
	h := NewHistory()
	var order []string
	h.Push(Change{Label: "first", Undo: func() { order = append(order, "first") }})
	h.Push(Change{Label: "second", Undo: func() { order = append(order, "second") }})

	h.Replay(false)
	h.Replay(false)
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("undo order = %v, want [second first]", order)
	}
}
