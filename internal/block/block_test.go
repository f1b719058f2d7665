package block

import (
	"errors"
	"testing"
)

func TestConnectRemovesChildFromTopLevel(t *testing.T) {
	ws := NewWorkspace()
	a := ws.NewBlock("a")
	a.SetNext(true)
	b := ws.NewBlock("b")
	b.SetPrevious(true)

	if len(ws.TopBlocks()) != 2 {
		t.Fatalf("top blocks = %d, want 2", len(ws.TopBlocks()))
	}
	if err := b.PreviousConnection().Connect(a.NextConnection()); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	tops := ws.TopBlocks()
	if len(tops) != 1 || tops[0] != a {
		t.Errorf("top blocks after connect = %v, want [a]", tops)
	}
	if b.ParentBlock() != a {
		t.Errorf("b.ParentBlock() = %v, want a", b.ParentBlock())
	}

	// Either side of the pair may initiate.
	b.PreviousConnection().Disconnect()
	if len(ws.TopBlocks()) != 2 {
		t.Errorf("top blocks after disconnect = %d, want 2", len(ws.TopBlocks()))
	}
	if err := a.NextConnection().Connect(b.PreviousConnection()); err != nil {
		t.Fatalf("Connect from parent side: %v", err)
	}
	if len(ws.TopBlocks()) != 1 {
		t.Errorf("top blocks = %d, want 1", len(ws.TopBlocks()))
	}
}

func TestConnectRejectsMismatchedKinds(t *testing.T) {
	ws := NewWorkspace()
	a := ws.NewBlock("a")
	a.SetNext(true)
	v := ws.NewBlock("v")
	v.SetOutput(true)

	err := v.OutputConnection().Connect(a.NextConnection())
	if !errors.Is(err, ErrConnectionMismatch) {
		t.Errorf("output-to-next error = %v, want ErrConnectionMismatch", err)
	}

	var nilConn *Connection
	if err := nilConn.Connect(a.NextConnection()); !errors.Is(err, ErrNilConnection) {
		t.Errorf("nil connect error = %v, want ErrNilConnection", err)
	}
}

func TestConnectStealsOccupiedSocket(t *testing.T) {
	ws := NewWorkspace()
	owner := ws.NewBlock("owner")
	slot := owner.AppendValueInput("V")
	first := ws.NewBlock("first")
	first.SetOutput(true)
	second := ws.NewBlock("second")
	second.SetOutput(true)

	connect(t, first.OutputConnection(), slot.Connection())
	connect(t, second.OutputConnection(), slot.Connection())

	if got := slot.Connection().TargetBlock(); got != second {
		t.Errorf("socket holds %v, want second", got)
	}
	if first.OutputConnection().IsConnected() {
		t.Error("displaced block still connected")
	}
	// The displaced block returns to the top level.
	found := false
	for _, b := range ws.TopBlocks() {
		if b == first {
			found = true
		}
	}
	if !found {
		t.Error("displaced block missing from top level")
	}
}

func TestDisposeHealsStack(t *testing.T) {
	d := buildSample(t)

	// Deleting print should reconnect bump to the DO input.
	d.print.Dispose(true)

	if !d.print.Disposed() {
		t.Fatal("print not marked disposed")
	}
	if !d.hello.Disposed() {
		t.Error("input subtree survived dispose")
	}
	if d.bump.Disposed() {
		t.Error("stack below healed dispose was disposed")
	}
	if got := d.doIn.Connection().TargetBlock(); got != d.bump {
		t.Errorf("DO input holds %v, want bump", got)
	}
	if got := d.bump.SurroundParent(); got != d.repeat {
		t.Errorf("bump surround parent = %v, want repeat", got)
	}
}

func TestDisposeWithoutHealTakesChain(t *testing.T) {
	d := buildSample(t)

	d.repeat.Dispose(false)

	for name, b := range map[string]*Block{
		"repeat": d.repeat, "number": d.number, "print": d.print,
		"hello": d.hello, "bump": d.bump, "done": d.done,
	} {
		if !b.Disposed() {
			t.Errorf("%s survived unhealed dispose", name)
		}
	}
	if d.alone.Disposed() {
		t.Error("unrelated stack was disposed")
	}
	tops := d.ws.TopBlocks()
	if len(tops) != 1 || tops[0] != d.alone {
		t.Errorf("top blocks = %v, want [alone]", tops)
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	ws := NewWorkspace()
	b := ws.NewBlock("b")
	b.Dispose(true)
	b.Dispose(true)
	if len(ws.TopBlocks()) != 0 {
		t.Errorf("top blocks = %d, want 0", len(ws.TopBlocks()))
	}
}

func TestCopyDataClonesDeep(t *testing.T) {
	d := buildSample(t)

	data := d.repeat.CopyData()
	if data.Source != d.ws {
		t.Fatal("copy source is not the originating workspace")
	}

	clone := data.Instantiate()
	if clone == d.repeat || clone.ID() == d.repeat.ID() {
		t.Error("clone shares identity with the original")
	}
	if clone.Workspace() != nil {
		t.Error("detached clone belongs to a workspace")
	}
	if !clone.InputsInline() {
		t.Error("clone dropped the inline flag")
	}

	// The inline value and the nested chain came along.
	val := clone.FirstInputConnection().TargetBlock()
	if val == nil || val.Type() != "number" {
		t.Fatalf("clone value block = %v, want a number", val)
	}
	if got := val.Fields()[0].Text(); got != "10" {
		t.Errorf("clone field text = %q, want 10", got)
	}
	stmt := clone.LastInputConnection().TargetBlock()
	if stmt == nil || stmt.Type() != "print" {
		t.Fatalf("clone statement block = %v, want print", stmt)
	}
	if below := stmt.NextConnection().TargetBlock(); below == nil || below.Type() != "bump" {
		t.Errorf("clone nested chain bottom = %v, want bump", below)
	}

	// The next-chain below the copied block is cloned too.
	if next := clone.NextConnection().TargetBlock(); next == nil || next.Type() != "done" {
		t.Errorf("clone next chain = %v, want done", next)
	}

	// Each instantiation is independent.
	again := data.Instantiate()
	if again == clone || again.ID() == clone.ID() {
		t.Error("instantiations share identity")
	}

	// Mutating the clone leaves the original alone.
	val.Fields()[0].SetText("99")
	if d.number.Fields()[0].Text() != "10" {
		t.Error("clone mutation leaked into the original")
	}
}

func TestPasteAdoptsCloneTree(t *testing.T) {
	d := buildSample(t)

	pasted := d.ws.Paste(d.repeat.CopyData().Instantiate())
	if pasted == nil {
		t.Fatal("paste returned nil")
	}
	if pasted.Workspace() != d.ws {
		t.Error("pasted block not adopted by the workspace")
	}
	if got := d.ws.LastTopBlock(); got != pasted {
		t.Errorf("last top block = %v, want the pasted block", got)
	}
	inner := pasted.LastInputConnection().TargetBlock()
	if inner == nil || inner.Workspace() != d.ws {
		t.Error("nested clone blocks not adopted")
	}
}

func TestCanDelete(t *testing.T) {
	d := buildSample(t)

	if !CanDelete(d.print) {
		t.Error("ordinary block not deletable")
	}
	if !CanDelete(d.note) {
		t.Error("comment not deletable")
	}
	if CanDelete(nil) {
		t.Error("nil deletable")
	}
	if CanDelete(d.ws) {
		t.Error("workspace deletable")
	}
	if CanDelete(d.hello.Fields()[0]) {
		t.Error("field deletable")
	}

	d.print.SetDeletable(false)
	if CanDelete(d.print) {
		t.Error("block deletable after SetDeletable(false)")
	}

	d.ws.SetReadOnly(true)
	if CanDelete(d.bump) {
		t.Error("block deletable on a read-only workspace")
	}
}

func TestCanCopy(t *testing.T) {
	d := buildSample(t)

	if !CanCopy(d.print) {
		t.Error("ordinary block not copyable")
	}
	if CanCopy(d.note) {
		t.Error("comment copyable without a snapshot implementation")
	}
	if CanCopy(nil) {
		t.Error("nil copyable")
	}

	// Without a CopyableReporter the deletable and movable flags decide.
	d.print.SetMovable(false)
	if CanCopy(d.print) {
		t.Error("immovable block copyable")
	}
	d.print.SetMovable(true)
	d.print.SetDeletable(false)
	if CanCopy(d.print) {
		t.Error("undeletable block copyable")
	}
}

func TestWorkspaceTransientUI(t *testing.T) {
	ws := NewWorkspace()
	ws.ShowTransientUI()
	ws.SetEditingField(true)

	if !ws.HasTransientUI() || !ws.IsEditingField() {
		t.Fatal("flags not set")
	}
	ws.HideTransientUI()
	if ws.HasTransientUI() {
		t.Error("transient UI still showing")
	}
	if ws.IsEditingField() {
		t.Error("field edit session survived HideTransientUI")
	}
}

func TestFocusManagerNotifies(t *testing.T) {
	ws := NewWorkspace()
	b := ws.NewBlock("b")

	var gotOld, gotNew Node
	ws.Focus().OnChange(func(old, new Node) { gotOld, gotNew = old, new })
	ws.Focus().Focus(b)

	if ws.Focus().Focused() != Node(b) {
		t.Error("focus not recorded")
	}
	if gotOld != nil || gotNew != Node(b) {
		t.Errorf("listener saw %v -> %v, want nil -> b", gotOld, gotNew)
	}
}

func TestPlaySoundWithoutAudioIsSafe(t *testing.T) {
	ws := NewWorkspace()
	ws.PlaySound("nest-1") // must not panic
}
