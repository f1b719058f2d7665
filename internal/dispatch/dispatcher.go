package dispatch

import (
	"github.com/dshills/keynav/internal/block"
	"github.com/dshills/keynav/internal/edit"
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/nav/cursor"
)

// Dispatcher turns key events into shortcut executions for one
// workspace.
type Dispatcher struct {
	ws        *block.Workspace
	cur       *cursor.Cursor
	clipboard *edit.Clipboard
	history   *edit.History
	keymaps   *keymap.Registry
	shortcuts *Registry
}

// New creates a dispatcher for the workspace with the default keymap
// and the built-in shortcut set installed.
func New(ws *block.Workspace, cur *cursor.Cursor) *Dispatcher {
	d := &Dispatcher{
		ws:        ws,
		cur:       cur,
		clipboard: edit.NewClipboard(),
		history:   edit.NewHistory(),
		keymaps:   keymap.NewRegistry(),
		shortcuts: NewRegistry(),
	}
	// The default tables cannot fail to install.
	if err := d.keymaps.Register(keymap.Default()); err != nil {
		panic(err)
	}
	if err := RegisterDefaults(d.shortcuts); err != nil {
		panic(err)
	}
	return d
}

// Keymaps returns the dispatcher's keymap registry.
func (d *Dispatcher) Keymaps() *keymap.Registry { return d.keymaps }

// Shortcuts returns the dispatcher's shortcut registry.
func (d *Dispatcher) Shortcuts() *Registry { return d.shortcuts }

// Clipboard returns the clipboard collaborator.
func (d *Dispatcher) Clipboard() *edit.Clipboard { return d.clipboard }

// History returns the history collaborator.
func (d *Dispatcher) History() *edit.History { return d.history }

// Cursor returns the navigation cursor.
func (d *Dispatcher) Cursor() *cursor.Cursor { return d.cur }

// Workspace returns the dispatcher's workspace.
func (d *Dispatcher) Workspace() *block.Workspace { return d.ws }

// OnKey dispatches one key event: resolve the chord to candidate
// shortcuts, evaluate preconditions in priority order, execute the
// first admissible callback. Returns whether the event was handled
// and any invariant-violation error from the callback.
//
// An unresolved chord or an all-preconditions-failed dispatch is a
// no-op, not an error.
func (d *Dispatcher) OnKey(ev key.Event) (bool, error) {
	names := d.keymaps.Resolve(ev.Chord())
	if len(names) == 0 {
		return false, nil
	}

	ctx := d.buildContext()
	for _, name := range names {
		sc := d.shortcuts.Get(name)
		if sc == nil || sc.Callback == nil {
			continue
		}
		if sc.Precondition != nil && !sc.Precondition(ctx) {
			continue
		}
		return sc.Callback(ctx, ev)
	}
	return false, nil
}

// buildContext snapshots current state for one dispatch.
func (d *Dispatcher) buildContext() *Context {
	return &Context{
		Workspace: d.ws,
		Focused:   d.ws.Focus().Focused(),
		Cursor:    d.cur,
		Clipboard: d.clipboard,
		History:   d.history,
	}
}
