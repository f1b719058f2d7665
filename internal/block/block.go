package block

import "github.com/google/uuid"

// Block is a program block: a row of fields and input sockets, with
// optional previous/next connections for stacking and an optional
// output connection for plugging into a value input.
type Block struct {
	id           uuid.UUID
	typ          string
	ws           *Workspace
	inputsInline bool
	fields       []*Field
	inputs       []*Input
	prev         *Connection
	next         *Connection
	output       *Connection
	deletable    bool
	movable      bool
	disposed     bool
}

// Input is one input row on a block: zero or more fields followed by an
// optional connection socket. A dummy input has no connection.
type Input struct {
	name   string
	owner  *Block
	fields []*Field
	conn   *Connection
}

// Name returns the input's name within its block.
func (in *Input) Name() string { return in.name }

// Fields returns the input's fields in row order.
func (in *Input) Fields() []*Field { return in.fields }

// Connection returns the input's socket, or nil for a dummy input.
func (in *Input) Connection() *Connection { return in.conn }

// ID implements Node.
func (b *Block) ID() uuid.UUID { return b.id }

// Kind implements Node.
func (b *Block) Kind() Kind { return KindBlock }

// Type returns the block's type name.
func (b *Block) Type() string { return b.typ }

// Workspace implements Node.
func (b *Block) Workspace() *Workspace { return b.ws }

// Disposed implements Node.
func (b *Block) Disposed() bool { return b.disposed }

// InputsInline reports whether the block renders its inputs on the same
// visual row as the block instead of as nested indented lines.
func (b *Block) InputsInline() bool { return b.inputsInline }

// SetInputsInline switches the block between inline and stacked input
// layout.
func (b *Block) SetInputsInline(v bool) { b.inputsInline = v }

// IsDeletable implements Deletable. A read-only workspace protects
// every block on it, so copy admission, which layers on deletability,
// is also withheld there.
func (b *Block) IsDeletable() bool {
	return b.deletable && !b.disposed && (b.ws == nil || !b.ws.IsReadOnly())
}

// SetDeletable marks the block as user-deletable or not.
func (b *Block) SetDeletable(v bool) { b.deletable = v }

// IsMovable implements Movable.
func (b *Block) IsMovable() bool { return b.movable && !b.disposed }

// SetMovable marks the block as user-movable or not.
func (b *Block) SetMovable(v bool) { b.movable = v }

// Shape builders. A block's shape is fixed by the caller right after
// construction and not expected to change afterwards.

// SetPrevious gives or removes the block's previous connection.
func (b *Block) SetPrevious(enabled bool) {
	if enabled && b.prev == nil {
		b.prev = newConnection(ConnPrevious, b)
	} else if !enabled && b.prev != nil {
		b.prev.Disconnect()
		b.prev = nil
	}
}

// SetNext gives or removes the block's next connection.
func (b *Block) SetNext(enabled bool) {
	if enabled && b.next == nil {
		b.next = newConnection(ConnNext, b)
	} else if !enabled && b.next != nil {
		b.next.Disconnect()
		b.next = nil
	}
}

// SetOutput gives or removes the block's output connection. A block
// cannot have both an output and a previous connection.
func (b *Block) SetOutput(enabled bool) {
	if enabled && b.output == nil {
		b.output = newConnection(ConnOutput, b)
	} else if !enabled && b.output != nil {
		b.output.Disconnect()
		b.output = nil
	}
}

// AddField appends a block-level field before any inputs.
func (b *Block) AddField(name, text string) *Field {
	f := newField(b, name, text)
	b.fields = append(b.fields, f)
	return f
}

// AppendValueInput appends a value input socket.
func (b *Block) AppendValueInput(name string) *Input {
	return b.appendInput(name, ConnValue)
}

// AppendStatementInput appends a statement input socket.
func (b *Block) AppendStatementInput(name string) *Input {
	return b.appendInput(name, ConnStatement)
}

// AppendDummyInput appends an input row with no connection, used to
// hold fields on their own row.
func (b *Block) AppendDummyInput(name string) *Input {
	in := &Input{name: name, owner: b}
	b.inputs = append(b.inputs, in)
	return in
}

func (b *Block) appendInput(name string, kind ConnectionKind) *Input {
	in := &Input{name: name, owner: b, conn: newConnection(kind, b)}
	b.inputs = append(b.inputs, in)
	return in
}

// AddInputField appends a field to an input row.
func (in *Input) AddInputField(name, text string) *Field {
	f := newField(in.owner, name, text)
	in.fields = append(in.fields, f)
	return f
}

// PreviousConnection returns the block's previous connection, or nil.
func (b *Block) PreviousConnection() *Connection { return b.prev }

// NextConnection returns the block's next connection, or nil.
func (b *Block) NextConnection() *Connection { return b.next }

// OutputConnection returns the block's output connection, or nil.
func (b *Block) OutputConnection() *Connection { return b.output }

// Inputs returns the block's input rows in order.
func (b *Block) Inputs() []*Input { return b.inputs }

// Fields returns the block-level fields in order.
func (b *Block) Fields() []*Field { return b.fields }

// InputConnections returns the connections of all non-dummy inputs, in
// row order.
func (b *Block) InputConnections() []*Connection {
	var out []*Connection
	for _, in := range b.inputs {
		if in.conn != nil {
			out = append(out, in.conn)
		}
	}
	return out
}

// HasStatementInput reports whether any input is a statement socket.
func (b *Block) HasStatementInput() bool {
	for _, in := range b.inputs {
		if in.conn != nil && in.conn.kind == ConnStatement {
			return true
		}
	}
	return false
}

// FirstInputConnection returns the first non-dummy input connection,
// or nil.
func (b *Block) FirstInputConnection() *Connection {
	for _, in := range b.inputs {
		if in.conn != nil {
			return in.conn
		}
	}
	return nil
}

// LastInputConnection returns the last non-dummy input connection, or
// nil.
func (b *Block) LastInputConnection() *Connection {
	for i := len(b.inputs) - 1; i >= 0; i-- {
		if b.inputs[i].conn != nil {
			return b.inputs[i].conn
		}
	}
	return nil
}

// ParentBlock returns the block this one is directly attached to via
// its previous or output connection, or nil if detached or top level.
func (b *Block) ParentBlock() *Block {
	if b.prev != nil && b.prev.target != nil {
		return b.prev.target.owner
	}
	if b.output != nil && b.output.target != nil {
		return b.output.target.owner
	}
	return nil
}

// SurroundParent returns the nearest enclosing block: the owner of the
// value or statement input the chain containing b hangs from. Stack
// siblings above b do not count. Returns nil for a top-level chain.
func (b *Block) SurroundParent() *Block {
	seen := make(map[*Block]bool)
	for cur := b; cur != nil && !seen[cur]; {
		seen[cur] = true
		if cur.output != nil && cur.output.target != nil {
			return cur.output.target.owner
		}
		if cur.prev != nil && cur.prev.target != nil {
			if cur.prev.target.kind == ConnStatement {
				return cur.prev.target.owner
			}
			cur = cur.prev.target.owner
			continue
		}
		return nil
	}
	return nil
}

// RootBlock returns the topmost block of the structure containing b:
// the first ancestor (following previous and output attachments) with
// no parent of its own.
func (b *Block) RootBlock() *Block {
	seen := make(map[*Block]bool)
	cur := b
	for !seen[cur] {
		seen[cur] = true
		p := cur.ParentBlock()
		if p == nil {
			return cur
		}
		cur = p
	}
	return cur
}

// LastStackBlock returns the final block reachable from b by following
// next connections.
func (b *Block) LastStackBlock() *Block {
	seen := make(map[*Block]bool)
	cur := b
	for !seen[cur] {
		seen[cur] = true
		if cur.next == nil || cur.next.target == nil {
			return cur
		}
		cur = cur.next.target.owner
	}
	return cur
}

// Dispose removes the block from the document, along with every block
// attached to its inputs. When heal is true the stack is repaired: the
// doomed block's neighbors above and below are connected to each other
// and the rest of the stack survives. When heal is false the next-chain
// is disposed too.
func (b *Block) Dispose(heal bool) {
	if b.disposed {
		return
	}
	b.disposed = true

	var above, below *Connection
	if b.prev != nil && b.prev.target != nil {
		above = b.prev.target
		b.prev.Disconnect()
	}
	if b.output != nil && b.output.target != nil {
		b.output.Disconnect()
	}
	if b.next != nil && b.next.target != nil {
		below = b.next.target
		if heal {
			b.next.Disconnect()
		}
	}

	if heal && above != nil && below != nil {
		_ = below.Connect(above)
	}

	for _, in := range b.inputs {
		if in.conn == nil {
			continue
		}
		if tb := in.conn.TargetBlock(); tb != nil {
			tb.Dispose(false)
		}
	}
	if !heal && below != nil {
		below.owner.Dispose(false)
	}

	if b.ws != nil {
		b.ws.removeTopBlock(b)
	}
}

// CopyData implements Copyable: the snapshot holds a detached deep
// clone of the block and remembers the workspace the copy was taken
// from, which is where a later paste will land.
func (b *Block) CopyData() *CopyData {
	return &CopyData{Source: b.ws, Block: b.cloneDetached()}
}

// CopyData is a clipboard snapshot of a block subtree.
type CopyData struct {
	// Source is the workspace the copy was taken from.
	Source *Workspace

	// Block is a detached deep clone, not part of any workspace.
	Block *Block
}

// Instantiate returns a fresh detached clone of the snapshot, so the
// same copy can be pasted any number of times.
func (d *CopyData) Instantiate() *Block {
	if d == nil || d.Block == nil {
		return nil
	}
	return d.Block.cloneDetached()
}

// cloneDetached deep-copies the block, its fields, and every block
// attached below or inside it. The clone belongs to no workspace.
func (b *Block) cloneDetached() *Block {
	c := &Block{
		id:           uuid.New(),
		typ:          b.typ,
		inputsInline: b.inputsInline,
		deletable:    b.deletable,
		movable:      b.movable,
	}
	if b.prev != nil {
		c.prev = newConnection(ConnPrevious, c)
	}
	if b.next != nil {
		c.next = newConnection(ConnNext, c)
	}
	if b.output != nil {
		c.output = newConnection(ConnOutput, c)
	}
	for _, f := range b.fields {
		c.fields = append(c.fields, newField(c, f.name, f.text))
	}
	for _, in := range b.inputs {
		ci := &Input{name: in.name, owner: c}
		for _, f := range in.fields {
			ci.fields = append(ci.fields, newField(c, f.name, f.text))
		}
		if in.conn != nil {
			ci.conn = newConnection(in.conn.kind, c)
			if tb := in.conn.TargetBlock(); tb != nil {
				tc := tb.cloneDetached()
				switch in.conn.kind {
				case ConnValue:
					tc.output.target = ci.conn
					ci.conn.target = tc.output
				case ConnStatement:
					tc.prev.target = ci.conn
					ci.conn.target = tc.prev
				}
			}
		}
		c.inputs = append(c.inputs, ci)
	}
	if b.next != nil {
		if nb := b.next.TargetBlock(); nb != nil {
			nc := nb.cloneDetached()
			nc.prev.target = c.next
			c.next.target = nc.prev
		}
	}
	return c
}

// adopt attaches a detached clone tree to a workspace.
func (b *Block) adopt(ws *Workspace) {
	seen := make(map[*Block]bool)
	var walk func(*Block)
	walk = func(blk *Block) {
		if blk == nil || seen[blk] {
			return
		}
		seen[blk] = true
		blk.ws = ws
		for _, in := range blk.inputs {
			if in.conn != nil {
				walk(in.conn.TargetBlock())
			}
		}
		if blk.next != nil {
			walk(blk.next.TargetBlock())
		}
	}
	walk(b)
}

// Parent implements Node: the value input a value block plugs into, or
// the container of the stack chain (statement input or workspace).
func (b *Block) Parent() Node { return navParent(b) }

// FirstChild implements Node: the block's first field or input socket.
func (b *Block) FirstChild() Node { return navFirstChild(b) }

// NextSibling implements Node.
func (b *Block) NextSibling() Node { return navNextSibling(b) }

// PreviousSibling implements Node.
func (b *Block) PreviousSibling() Node { return navPreviousSibling(b) }
