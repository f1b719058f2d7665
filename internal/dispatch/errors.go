package dispatch

import "errors"

// Registry errors.
var (
	// ErrInvalidShortcut indicates a nil or unnamed shortcut.
	ErrInvalidShortcut = errors.New("dispatch: invalid shortcut")

	// ErrDuplicateShortcut indicates a name that is already
	// registered.
	ErrDuplicateShortcut = errors.New("dispatch: shortcut name already registered")
)
