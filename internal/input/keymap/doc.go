// Package keymap maps key chords to named actions.
//
// A Binding ties one chord specification to one action name; a Keymap
// is a named, prioritized collection of bindings. The Registry indexes
// every registered keymap by canonical chord form and resolves a chord
// to the action names bound to it, highest priority first. Several
// chords may resolve to the same action (Ctrl and Meta variants for
// cross-platform parity) and one chord may carry several candidate
// actions - the dispatcher picks the first whose precondition holds.
//
// Registries are explicit objects owned by their dispatcher. Nothing
// in this package is process-global, so independent editor instances
// never share bindings.
//
// User keymaps load from JSON files; see Loader.
package keymap
