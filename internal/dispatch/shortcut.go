package dispatch

import (
	"sort"
	"sync"

	"github.com/dshills/keynav/internal/block"
	"github.com/dshills/keynav/internal/edit"
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/nav/cursor"
)

// Context is the state snapshot a shortcut runs against. It is built
// fresh per dispatch; preconditions read it and must not mutate
// anything, callbacks may.
type Context struct {
	// Workspace is the workspace receiving the key event.
	Workspace *block.Workspace

	// Focused is the currently focused node, or nil.
	Focused block.Node

	// Cursor is the navigation cursor for the workspace.
	Cursor *cursor.Cursor

	// Clipboard is the copy/paste collaborator.
	Clipboard *edit.Clipboard

	// History is the undo/redo collaborator.
	History *edit.History
}

// Precondition decides whether a shortcut is admissible in the given
// context. Must be pure.
type Precondition func(*Context) bool

// Callback executes a shortcut's effect. The boolean reports whether
// the event was handled (suppressing default platform behavior); the
// error is reserved for invariant violations, which callers surface
// rather than swallow.
type Callback func(*Context, key.Event) (bool, error)

// Shortcut is a named, preconditioned command.
type Shortcut struct {
	// Name uniquely identifies the shortcut.
	Name string

	// Description documents the shortcut.
	Description string

	// Precondition gates execution. A nil precondition always admits.
	Precondition Precondition

	// Callback is the shortcut's effect.
	Callback Callback
}

// Registry holds shortcuts by name. Each dispatcher owns its own
// registry; there is no process-wide table.
type Registry struct {
	mu        sync.RWMutex
	shortcuts map[string]*Shortcut
}

// NewRegistry creates an empty shortcut registry.
func NewRegistry() *Registry {
	return &Registry{shortcuts: make(map[string]*Shortcut)}
}

// Register adds a shortcut. Names are unique; registering an existing
// name returns ErrDuplicateShortcut.
func (r *Registry) Register(sc *Shortcut) error {
	if sc == nil || sc.Name == "" {
		return ErrInvalidShortcut
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.shortcuts[sc.Name]; exists {
		return ErrDuplicateShortcut
	}
	r.shortcuts[sc.Name] = sc
	return nil
}

// Unregister removes a shortcut by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shortcuts, name)
}

// Get returns the shortcut registered under name, or nil.
func (r *Registry) Get(name string) *Shortcut {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.shortcuts[name]
}

// Names returns all registered shortcut names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.shortcuts))
	for name := range r.shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
