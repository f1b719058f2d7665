package dispatch

import (
	"errors"
	"testing"

	"github.com/dshills/keynav/internal/block"
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/nav/cursor"
)

// fixture is a dispatcher over [a -> b(v) -> c] plus a comment.
type fixture struct {
	ws   *block.Workspace
	cur  *cursor.Cursor
	disp *Dispatcher
	a    *block.Block
	b    *block.Block
	c    *block.Block
	v    *block.Block
	note *block.Comment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ws := block.NewWorkspace()
	f := &fixture{ws: ws}

	f.a = ws.NewBlock("a")
	f.a.SetNext(true)
	f.b = ws.NewBlock("b")
	f.b.SetPrevious(true)
	f.b.SetNext(true)
	slot := f.b.AppendValueInput("VALUE")
	f.c = ws.NewBlock("c")
	f.c.SetPrevious(true)

	f.v = ws.NewBlock("v")
	f.v.SetOutput(true)
	for _, err := range []error{
		f.v.OutputConnection().Connect(slot.Connection()),
		f.b.PreviousConnection().Connect(f.a.NextConnection()),
		f.c.PreviousConnection().Connect(f.b.NextConnection()),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	f.note = ws.NewComment("note")

	f.cur = cursor.New(ws)
	f.disp = New(ws, f.cur)
	return f
}

func press(t *testing.T, f *fixture, spec string) bool {
	t.Helper()
	c := key.MustParse(spec)
	var ev key.Event
	if c.Key == key.KeyRune {
		ev = key.NewRuneEvent(c.Rune, c.Mods)
	} else {
		ev = key.NewSpecialEvent(c.Key, c.Mods)
	}
	handled, err := f.disp.OnKey(ev)
	if err != nil {
		t.Fatalf("OnKey(%s) error = %v", spec, err)
	}
	return handled
}

func TestOnKeyMovesCursor(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.a)

	if !press(t, f, "Down") {
		t.Fatal("Down not handled")
	}
	if got := f.cur.Current(); got != block.Node(f.a.NextConnection()) {
		t.Errorf("position after Down = %v, want a's next connection", got)
	}

	if !press(t, f, "Up") {
		t.Fatal("Up not handled")
	}
	if got := f.cur.Current(); got != block.Node(f.a) {
		t.Errorf("position after Up = %v, want a", got)
	}

	if !press(t, f, "Right") {
		t.Fatal("Right not handled")
	}
	if got := f.cur.Current(); got != block.Node(f.a.NextConnection()) {
		t.Errorf("position after Right = %v, want a's next connection", got)
	}
}

func TestOnKeyUnboundChord(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.a)

	if press(t, f, "q") {
		t.Error("unbound chord reported handled")
	}
	if got := f.cur.Current(); got != block.Node(f.a) {
		t.Error("unbound chord moved focus")
	}
}

func TestNavigationBlockedDuringDragAndEdit(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.a)

	f.ws.SetDragging(true)
	if press(t, f, "Down") {
		t.Error("cursor moved during a drag")
	}
	f.ws.SetDragging(false)

	f.ws.SetEditingField(true)
	if press(t, f, "Down") {
		t.Error("cursor moved during a field edit session")
	}
}

func TestDeleteAdmissionMatrix(t *testing.T) {
	tests := []struct {
		name      string
		readOnly  bool
		dragging  bool
		editing   bool
		deletable bool
		want      bool
	}{
		{"plain", false, false, false, true, true},
		{"read-only", true, false, false, true, false},
		{"dragging", false, true, false, true, false},
		{"editing", false, false, true, true, false},
		{"not deletable", false, false, false, false, false},
		{"read-only and not deletable", true, false, false, false, false},
	}

	for _, tt := range tests {
		f := newFixture(t)
		f.ws.Focus().Focus(f.b)
		f.ws.SetReadOnly(tt.readOnly)
		f.ws.SetDragging(tt.dragging)
		f.ws.SetEditingField(tt.editing)
		f.b.SetDeletable(tt.deletable)

		if got := press(t, f, "Delete"); got != tt.want {
			t.Errorf("%s: Delete handled = %v, want %v", tt.name, got, tt.want)
		}
		if deleted := f.b.Disposed(); deleted != tt.want {
			t.Errorf("%s: disposed = %v, want %v", tt.name, deleted, tt.want)
		}
	}
}

func TestDeleteRecoversCursor(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.b)

	if !press(t, f, "Delete") {
		t.Fatal("Delete not handled")
	}
	if !f.b.Disposed() {
		t.Fatal("b survived")
	}
	// The stack healed and the cursor recovered onto the surviving
	// connection above the deleted block.
	if got := f.cur.Current(); got != block.Node(f.a.NextConnection()) {
		t.Errorf("recovered position = %v, want a's next connection", got)
	}
	if got := f.a.NextConnection().TargetBlock(); got != f.c {
		t.Errorf("a connects to %v, want c", got)
	}
}

func TestDeleteComment(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.note)

	if !press(t, f, "Backspace") {
		t.Fatal("Backspace not handled")
	}
	if !f.note.Disposed() {
		t.Error("comment survived")
	}
}

func TestCopyAdmissionMatrix(t *testing.T) {
	tests := []struct {
		name     string
		dragging bool
		editing  bool
		movable  bool
		want     bool
	}{
		{"plain", false, false, true, true},
		{"dragging", true, false, true, false},
		{"editing", false, true, true, false},
		{"immovable", false, false, false, false},
	}

	for _, tt := range tests {
		f := newFixture(t)
		f.ws.Focus().Focus(f.b)
		f.ws.SetDragging(tt.dragging)
		f.ws.SetEditingField(tt.editing)
		f.b.SetMovable(tt.movable)

		if got := press(t, f, "Ctrl+c"); got != tt.want {
			t.Errorf("%s: Copy handled = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCopyNotAdmittedOnReadOnlyWorkspace(t *testing.T) {
	// Read-only protection flows through the deletability layer of the
	// copy check, so copy is withheld along with cut and delete.
	f := newFixture(t)
	f.ws.Focus().Focus(f.b)
	f.ws.SetReadOnly(true)

	if press(t, f, "Ctrl+c") {
		t.Error("Copy admitted on a read-only workspace")
	}
	if f.disp.Clipboard().Data() != nil {
		t.Error("copy populated the clipboard on a read-only workspace")
	}
}

func TestCutNeverAdmittedForNonDeletable(t *testing.T) {
	for _, readOnly := range []bool{false, true} {
		for _, dragging := range []bool{false, true} {
			f := newFixture(t)
			f.ws.Focus().Focus(f.b)
			f.b.SetDeletable(false)
			f.ws.SetReadOnly(readOnly)
			f.ws.SetDragging(dragging)

			if press(t, f, "Ctrl+x") {
				t.Errorf("Cut admitted with non-deletable focus (readOnly=%v dragging=%v)",
					readOnly, dragging)
			}
		}
	}
}

func TestCutRemovesAndCopies(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.c)

	if !press(t, f, "Meta+x") {
		t.Fatal("Cut not handled")
	}
	if !f.c.Disposed() {
		t.Error("cut block survived")
	}
	if f.disp.Clipboard().Data() == nil {
		t.Error("cut left the clipboard empty")
	}
}

func TestPasteRoundTripWithUndo(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.c)
	tops := len(f.ws.TopBlocks())

	if !press(t, f, "Ctrl+c") {
		t.Fatal("Copy not handled")
	}
	if !press(t, f, "Ctrl+v") {
		t.Fatal("Paste not handled")
	}
	if got := len(f.ws.TopBlocks()); got != tops+1 {
		t.Fatalf("top blocks after paste = %d, want %d", got, tops+1)
	}
	pasted := f.ws.LastTopBlock()
	if got := f.cur.Current(); got != block.Node(pasted) {
		t.Errorf("cursor after paste = %v, want the pasted block", got)
	}

	if !press(t, f, "Ctrl+z") {
		t.Fatal("Undo not handled")
	}
	if got := len(f.ws.TopBlocks()); got != tops {
		t.Errorf("top blocks after undo = %d, want %d", got, tops)
	}

	if !press(t, f, "Ctrl+Shift+z") {
		t.Fatal("Redo not handled")
	}
	if got := len(f.ws.TopBlocks()); got != tops+1 {
		t.Errorf("top blocks after redo = %d, want %d", got, tops+1)
	}
}

func TestPasteWithoutCopyNotAdmitted(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.b)

	if press(t, f, "Ctrl+v") {
		t.Error("Paste admitted with an empty clipboard")
	}
}

func TestPasteFollowsSourceWorkspace(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.b)

	if !press(t, f, "Ctrl+c") {
		t.Fatal("Copy not handled")
	}
	f.ws.SetReadOnly(true)
	if press(t, f, "Ctrl+v") {
		t.Error("Paste admitted into a read-only source workspace")
	}
}

func TestEscapeDismissesTransientUI(t *testing.T) {
	f := newFixture(t)
	f.ws.ShowTransientUI()
	f.ws.SetEditingField(true)

	if !press(t, f, "Escape") {
		t.Fatal("Escape not handled")
	}
	if f.ws.HasTransientUI() || f.ws.IsEditingField() {
		t.Error("transient UI survived Escape")
	}

	f.ws.SetReadOnly(true)
	f.ws.ShowTransientUI()
	if press(t, f, "Escape") {
		t.Error("Escape admitted on a read-only workspace")
	}
}

func TestJumpCommands(t *testing.T) {
	f := newFixture(t)

	// Home: back to the enclosing block.
	f.ws.Focus().Focus(f.b.FirstInputConnection())
	if !press(t, f, "Home") {
		t.Fatal("Home not handled")
	}
	if got := f.cur.Current(); got != block.Node(f.b) {
		t.Errorf("after Home: %v, want b", got)
	}

	// End: the block's last input connection.
	if !press(t, f, "End") {
		t.Fatal("End not handled")
	}
	if got := f.cur.Current(); got != block.Node(f.b.LastInputConnection()) {
		t.Errorf("after End: %v, want b's value connection", got)
	}

	// PageUp: root of the containing stack.
	if !press(t, f, "PageUp") {
		t.Fatal("PageUp not handled")
	}
	if got := f.cur.Current(); got != block.Node(f.a) {
		t.Errorf("after PageUp: %v, want a", got)
	}

	// PageDown: bottom of the stack.
	if !press(t, f, "PageDown") {
		t.Fatal("PageDown not handled")
	}
	if got := f.cur.Current(); got != block.Node(f.c) {
		t.Errorf("after PageDown: %v, want c", got)
	}
}

func TestJumpWorkspaceEndpoints(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.c)

	if !press(t, f, "Ctrl+Home") {
		t.Fatal("Ctrl+Home not handled")
	}
	if got := f.cur.Current(); got != block.Node(f.ws.FirstTopBlock()) {
		t.Errorf("after Ctrl+Home: %v, want the first top block", got)
	}

	if !press(t, f, "Meta+End") {
		t.Fatal("Meta+End not handled")
	}
	if got := f.cur.Current(); got != block.Node(f.ws.LastTopBlock()) {
		t.Errorf("after Meta+End: %v, want the last top block", got)
	}
}

func TestJumpRequiresBlockOutsideFlyout(t *testing.T) {
	f := newFixture(t)

	// No block focused: block jumps are inadmissible.
	f.ws.Focus().Focus(f.note)
	if press(t, f, "Home") {
		t.Error("Home admitted with a comment focused")
	}

	// Flyouts admit workspace jumps but not block jumps.
	f.ws.Focus().Focus(f.b)
	f.ws.SetFlyout(true)
	if press(t, f, "Home") {
		t.Error("Home admitted inside a flyout")
	}
	if !press(t, f, "Ctrl+End") {
		t.Error("workspace jump rejected inside a flyout")
	}
}

func TestShortcutRegistryUniqueNames(t *testing.T) {
	r := NewRegistry()
	sc := &Shortcut{Name: "x", Callback: func(*Context, key.Event) (bool, error) { return true, nil }}
	if err := r.Register(sc); err != nil {
		t.Fatalf("Register error = %v", err)
	}
	if err := r.Register(sc); !errors.Is(err, ErrDuplicateShortcut) {
		t.Errorf("second Register error = %v, want ErrDuplicateShortcut", err)
	}
	if err := r.Register(&Shortcut{}); !errors.Is(err, ErrInvalidShortcut) {
		t.Errorf("unnamed Register error = %v, want ErrInvalidShortcut", err)
	}

	r.Unregister("x")
	if r.Get("x") != nil {
		t.Error("shortcut survived Unregister")
	}
}

func TestDispatchFallsThroughFailedPreconditions(t *testing.T) {
	f := newFixture(t)
	f.ws.Focus().Focus(f.b)

	// A higher-priority binding whose precondition never holds must not
	// shadow the default command on the same chord.
	err := f.disp.Shortcuts().Register(&Shortcut{
		Name:         "custom.remove",
		Precondition: func(*Context) bool { return false },
		Callback: func(*Context, key.Event) (bool, error) {
			t.Fatal("inadmissible shortcut ran")
			return false, nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = f.disp.Keymaps().Register(&keymap.Keymap{
		Name:     "user",
		Priority: 10,
		Bindings: []keymap.Binding{{Keys: "Delete", Action: "custom.remove"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if !press(t, f, "Delete") {
		t.Fatal("Delete not handled")
	}
	if !f.b.Disposed() {
		t.Error("default delete did not run")
	}
}
