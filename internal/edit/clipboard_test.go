package edit

import (
	"errors"
	"testing"

	"github.com/dshills/keynav/internal/block"
)

func sourceWorkspace(t *testing.T) (*block.Workspace, *block.Block) {
	t.Helper()
	ws := block.NewWorkspace()
	b := ws.NewBlock("widget")
	b.AddField("NAME", "w1")
	return ws, b
}

func TestCopyAndPaste(t *testing.T) {
	ws, b := sourceWorkspace(t)
	cb := NewClipboard()

	data, err := cb.Copy(b)
	if err != nil {
		t.Fatalf("Copy error = %v", err)
	}
	if data.Source != ws {
		t.Error("snapshot source is not the originating workspace")
	}
	if !cb.CanPaste() {
		t.Fatal("CanPaste = false after a copy")
	}

	pasted, err := cb.Paste()
	if err != nil {
		t.Fatalf("Paste error = %v", err)
	}
	if pasted.Workspace() != ws {
		t.Error("paste landed outside the copy's source workspace")
	}
	if pasted == b || pasted.ID() == b.ID() {
		t.Error("paste returned the original block")
	}
	if got := pasted.Fields()[0].Text(); got != "w1" {
		t.Errorf("pasted field = %q, want w1", got)
	}

	// The snapshot survives pasting; a second paste yields a third copy.
	second, err := cb.Paste()
	if err != nil {
		t.Fatalf("second Paste error = %v", err)
	}
	if second == pasted || second.ID() == pasted.ID() {
		t.Error("pastes share identity")
	}
	if len(ws.TopBlocks()) != 3 {
		t.Errorf("top blocks = %d, want 3", len(ws.TopBlocks()))
	}
}

func TestCopyRejectsNonCopyable(t *testing.T) {
	ws, _ := sourceWorkspace(t)
	cb := NewClipboard()

	if _, err := cb.Copy(ws.NewComment("c")); !errors.Is(err, ErrNotCopyable) {
		t.Errorf("copying a comment error = %v, want ErrNotCopyable", err)
	}
	if _, err := cb.Copy(nil); !errors.Is(err, ErrNotCopyable) {
		t.Errorf("copying nil error = %v, want ErrNotCopyable", err)
	}
}

func TestPasteEmptyClipboard(t *testing.T) {
	cb := NewClipboard()
	if cb.CanPaste() {
		t.Error("empty clipboard reports CanPaste")
	}
	if _, err := cb.Paste(); !errors.Is(err, ErrClipboardEmpty) {
		t.Errorf("Paste error = %v, want ErrClipboardEmpty", err)
	}
}

func TestPasteTargetsSourceWorkspaceState(t *testing.T) {
	ws, b := sourceWorkspace(t)
	cb := NewClipboard()
	if _, err := cb.Copy(b); err != nil {
		t.Fatal(err)
	}

	// Paste admission follows the source workspace, not whoever asks.
	ws.SetReadOnly(true)
	if cb.CanPaste() {
		t.Error("CanPaste = true with a read-only source")
	}
	if _, err := cb.Paste(); !errors.Is(err, ErrPasteTarget) {
		t.Errorf("Paste error = %v, want ErrPasteTarget", err)
	}

	ws.SetReadOnly(false)
	ws.SetRendered(false)
	if cb.CanPaste() {
		t.Error("CanPaste = true with an unrendered source")
	}

	ws.SetRendered(true)
	if !cb.CanPaste() {
		t.Error("CanPaste = false once the source is editable again")
	}
}
