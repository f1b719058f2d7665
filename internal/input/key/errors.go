package key

import "errors"

// Parse errors.
var (
	// ErrEmptySpec indicates an empty chord specification.
	ErrEmptySpec = errors.New("key: empty chord spec")

	// ErrUnknownModifier indicates an unrecognized modifier name.
	ErrUnknownModifier = errors.New("key: unknown modifier")

	// ErrUnknownKey indicates an unrecognized key name.
	ErrUnknownKey = errors.New("key: unknown key")
)
