package edit

import "github.com/dshills/keynav/internal/block"

// Clipboard holds the most recent copy snapshot.
type Clipboard struct {
	data *block.CopyData
}

// NewClipboard creates an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy snapshots a node onto the clipboard. The node must implement
// the Copyable capability; admission checks beyond that (capability
// verdicts, drag state) are the caller's responsibility.
func (c *Clipboard) Copy(n block.Node) (*block.CopyData, error) {
	cp, ok := n.(block.Copyable)
	if !ok {
		return nil, ErrNotCopyable
	}
	data := cp.CopyData()
	if data == nil {
		return nil, ErrNotCopyable
	}
	c.data = data
	return data, nil
}

// Data returns the last copy snapshot, or nil.
func (c *Clipboard) Data() *block.CopyData { return c.data }

// CanPaste reports whether a paste is currently possible: the
// clipboard is non-empty and the source workspace is rendered and
// editable.
func (c *Clipboard) CanPaste() bool {
	return c.data != nil &&
		c.data.Source != nil &&
		c.data.Source.IsRendered() &&
		!c.data.Source.IsReadOnly()
}

// Paste instantiates the snapshot into the workspace the copy was
// taken from and returns the new block.
func (c *Clipboard) Paste() (*block.Block, error) {
	if c.data == nil {
		return nil, ErrClipboardEmpty
	}
	if !c.CanPaste() {
		return nil, ErrPasteTarget
	}
	return c.data.Source.Paste(c.data.Instantiate()), nil
}
