package edit

import "errors"

// Clipboard errors.
var (
	// ErrNotCopyable indicates the node does not support copying.
	ErrNotCopyable = errors.New("edit: node is not copyable")

	// ErrClipboardEmpty indicates a paste with nothing copied.
	ErrClipboardEmpty = errors.New("edit: clipboard is empty")

	// ErrPasteTarget indicates the copy-source workspace cannot accept
	// a paste (unrendered or read-only).
	ErrPasteTarget = errors.New("edit: paste target workspace unavailable")
)
