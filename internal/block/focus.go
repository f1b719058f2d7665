package block

// FocusManager tracks the focused node for a workspace. It is the only
// holder of "current position": the navigation cursor, the command
// layer, and the rendering layer all read the same value here, so they
// can never drift apart within a turn.
type FocusManager struct {
	focused  Node
	onChange func(old, new Node)
}

// NewFocusManager creates a focus manager with nothing focused.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// Focused returns the currently focused node, or nil.
func (f *FocusManager) Focused() Node { return f.focused }

// Focus makes n the focused node. Focusing nil clears focus. The
// change is visible to Focused before Focus returns.
func (f *FocusManager) Focus(n Node) {
	old := f.focused
	f.focused = n
	if f.onChange != nil && old != n {
		f.onChange(old, n)
	}
}

// OnChange installs a listener invoked after every focus change. Used
// by the rendering layer; at most one listener is supported.
func (f *FocusManager) OnChange(fn func(old, new Node)) {
	f.onChange = fn
}
