// Package dispatch routes key chords to named shortcuts and executes
// them against the current navigation state.
//
// A Shortcut pairs a unique name with a precondition and a callback.
// Dispatch is two-stage, and deliberately side-effect free until the
// last step: the keymap registry resolves a chord to candidate action
// names, each candidate's precondition is evaluated against a context
// snapshot (workspace, focused node, cursor, clipboard, history), and
// the first shortcut whose precondition holds runs its callback. The
// callback's boolean return states whether the key event was consumed
// and default platform behavior should be suppressed.
//
// Both registries are plain objects owned by the Dispatcher. Creating
// two dispatchers yields two fully independent command tables.
//
// RegisterDefaults installs the built-in command set: escape, delete,
// copy, cut, paste, undo, redo, the cursor moves, and the jump
// commands. Their admission rules are small, precise state checks;
// see defaults.go.
package dispatch
