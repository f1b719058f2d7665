package cursor

import "errors"

// Cursor errors.
var (
	// ErrPostDeleteWithoutPre indicates PostDelete was called while no
	// deletion recovery was armed.
	ErrPostDeleteWithoutPre = errors.New("cursor: post-delete without preceding pre-delete")

	// ErrNoRecoveryCandidate indicates every captured recovery
	// candidate was destroyed by the deletion.
	ErrNoRecoveryCandidate = errors.New("cursor: no recovery candidate survived deletion")
)
