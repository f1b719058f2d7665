package block

import (
	"fmt"

	"github.com/google/uuid"
)

// ConnectionKind identifies the role of a connection on its block.
type ConnectionKind int

const (
	// ConnPrevious is the connection on top of a stack block.
	ConnPrevious ConnectionKind = iota

	// ConnNext is the connection under a stack block.
	ConnNext

	// ConnOutput is the plug on the left of a value block.
	ConnOutput

	// ConnValue is a value-input socket on a block.
	ConnValue

	// ConnStatement is a statement-input socket on a block. Like a
	// next connection, it accepts a previous connection, so both count
	// as "next-statement" connections for navigation purposes.
	ConnStatement
)

// String returns a human-readable name for the kind.
func (k ConnectionKind) String() string {
	switch k {
	case ConnPrevious:
		return "previous"
	case ConnNext:
		return "next"
	case ConnOutput:
		return "output"
	case ConnValue:
		return "input-value"
	case ConnStatement:
		return "input-statement"
	default:
		return fmt.Sprintf("ConnectionKind(%d)", int(k))
	}
}

// IsNextStatement reports whether the connection accepts a previous
// connection: a block's own next connection or a statement input.
func (k ConnectionKind) IsNextStatement() bool {
	return k == ConnNext || k == ConnStatement
}

// IsInput reports whether the kind is an input socket on a block.
func (k ConnectionKind) IsInput() bool {
	return k == ConnValue || k == ConnStatement
}

// Connection is a typed attachment point on a block. Connections pair
// up: a previous connection attaches to a next or statement connection,
// and an output connection attaches to a value connection.
type Connection struct {
	id     uuid.UUID
	kind   ConnectionKind
	owner  *Block
	target *Connection
}

func newConnection(kind ConnectionKind, owner *Block) *Connection {
	return &Connection{id: uuid.New(), kind: kind, owner: owner}
}

// ID implements Node.
func (c *Connection) ID() uuid.UUID { return c.id }

// Kind implements Node.
func (c *Connection) Kind() Kind { return KindConnection }

// ConnectionKind returns the role of this connection.
func (c *Connection) ConnectionKind() ConnectionKind { return c.kind }

// Owner returns the block this connection belongs to.
func (c *Connection) Owner() *Block { return c.owner }

// Workspace implements Node.
func (c *Connection) Workspace() *Workspace {
	if c.owner == nil {
		return nil
	}
	return c.owner.Workspace()
}

// Disposed implements Node. A connection is disposed with its owner.
func (c *Connection) Disposed() bool {
	return c.owner == nil || c.owner.Disposed()
}

// Target returns the connection this one is attached to, or nil.
func (c *Connection) Target() *Connection { return c.target }

// TargetBlock returns the block on the other side, or nil.
func (c *Connection) TargetBlock() *Block {
	if c.target == nil {
		return nil
	}
	return c.target.owner
}

// IsConnected reports whether the connection is attached.
func (c *Connection) IsConnected() bool { return c.target != nil }

// Connect attaches c to other. Exactly one side must be a previous or
// output connection; the other must accept it. Any prior attachment on
// the accepting side is broken first, and the child block leaves the
// workspace top level.
func (c *Connection) Connect(other *Connection) error {
	if c == nil || other == nil {
		return ErrNilConnection
	}
	child, parent := orientPair(c, other)
	if child == nil {
		return fmt.Errorf("%w: %s to %s", ErrConnectionMismatch, c.kind, other.kind)
	}
	if child.target != nil {
		child.disconnectPair()
	}
	if parent.target != nil {
		parent.disconnectPair()
	}
	child.target = parent
	parent.target = child
	if child.owner != nil && child.owner.ws != nil {
		child.owner.ws.removeTopBlock(child.owner)
	}
	return nil
}

// orientPair identifies which side of a pair is the child (previous or
// output) connection. Returns nils if the kinds are incompatible.
func orientPair(a, b *Connection) (child, parent *Connection) {
	switch {
	case a.kind == ConnPrevious && b.kind.IsNextStatement():
		return a, b
	case b.kind == ConnPrevious && a.kind.IsNextStatement():
		return b, a
	case a.kind == ConnOutput && b.kind == ConnValue:
		return a, b
	case b.kind == ConnOutput && a.kind == ConnValue:
		return b, a
	}
	return nil, nil
}

// Disconnect breaks the attachment, if any. The detached child block
// rejoins the workspace top level.
func (c *Connection) Disconnect() {
	if c == nil || c.target == nil {
		return
	}
	c.disconnectPair()
}

func (c *Connection) disconnectPair() {
	other := c.target
	c.target = nil
	if other != nil {
		other.target = nil
	}
	child := c
	if c.kind.IsNextStatement() || c.kind == ConnValue {
		child = other
	}
	if child != nil && child.owner != nil && child.owner.ws != nil && !child.owner.disposed {
		child.owner.ws.addTopBlock(child.owner)
	}
}

// Parent implements Node. Input connections are children of their
// owning block; previous and next connections sit at the owning
// block's stack level.
func (c *Connection) Parent() Node { return navParent(c) }

// FirstChild implements Node. A statement connection descends into the
// attached stack, a value connection into the attached block.
func (c *Connection) FirstChild() Node { return navFirstChild(c) }

// NextSibling implements Node.
func (c *Connection) NextSibling() Node { return navNextSibling(c) }

// PreviousSibling implements Node.
func (c *Connection) PreviousSibling() Node { return navPreviousSibling(c) }
