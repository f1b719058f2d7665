// Package key provides key event types and chord parsing for the
// input system.
//
// The fundamental types:
//
//   - Key: identifies a keyboard key (special keys or runes)
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with modifiers and timestamp
//   - Chord: a modifier combination plus a key, with a canonical
//     serialized form used to index shortcut bindings
//
// Chord specifications accept two formats:
//
//   - Long: "Ctrl+Delete", "Ctrl+Shift+Z", "Meta+c"
//   - Short: "C-Del", "C-S-z", "M-c"
//
// Both parse to the same canonical form, so either may appear in
// keymap files.
package key
