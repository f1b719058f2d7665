package block

import "github.com/google/uuid"

// Comment is a free-floating workspace comment. Comments participate in
// navigation as top-level nodes after the block stacks and are
// deletable and movable by default.
type Comment struct {
	id        uuid.UUID
	ws        *Workspace
	text      string
	deletable bool
	movable   bool
	disposed  bool
}

// ID implements Node.
func (c *Comment) ID() uuid.UUID { return c.id }

// Kind implements Node.
func (c *Comment) Kind() Kind { return KindComment }

// Text returns the comment text.
func (c *Comment) Text() string { return c.text }

// SetText updates the comment text.
func (c *Comment) SetText(text string) { c.text = text }

// Workspace implements Node.
func (c *Comment) Workspace() *Workspace { return c.ws }

// Disposed implements Node.
func (c *Comment) Disposed() bool { return c.disposed }

// Dispose removes the comment from its workspace.
func (c *Comment) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.ws != nil {
		c.ws.removeComment(c)
	}
}

// IsDeletable implements Deletable.
func (c *Comment) IsDeletable() bool { return c.deletable && !c.disposed }

// SetDeletable marks the comment as user-deletable or not.
func (c *Comment) SetDeletable(v bool) { c.deletable = v }

// IsMovable implements Movable.
func (c *Comment) IsMovable() bool { return c.movable && !c.disposed }

// SetMovable marks the comment as user-movable or not.
func (c *Comment) SetMovable(v bool) { c.movable = v }

// Parent implements Node.
func (c *Comment) Parent() Node { return navParent(c) }

// FirstChild implements Node. Comments have no navigation children.
func (c *Comment) FirstChild() Node { return nil }

// NextSibling implements Node.
func (c *Comment) NextSibling() Node { return navNextSibling(c) }

// PreviousSibling implements Node.
func (c *Comment) PreviousSibling() Node { return navPreviousSibling(c) }
