package block

import "github.com/google/uuid"

// Kind identifies the concrete type of a navigable node.
type Kind int

const (
	// KindWorkspace is the workspace root.
	KindWorkspace Kind = iota

	// KindBlock is a program block.
	KindBlock

	// KindConnection is a typed attachment point on a block.
	KindConnection

	// KindField is an editable field on a block.
	KindField

	// KindComment is a free-floating workspace comment.
	KindComment
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWorkspace:
		return "Workspace"
	case KindBlock:
		return "Block"
	case KindConnection:
		return "Connection"
	case KindField:
		return "Field"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Node is any focusable element of the document: a block, connection,
// field, comment, or the workspace root.
//
// The four accessor methods expose the navigation graph. They must be
// mutually consistent: NextSibling and PreviousSibling are inverses,
// and every child's Parent is the node it was reached from.
type Node interface {
	// ID returns the node's unique identity.
	ID() uuid.UUID

	// Kind returns the concrete kind of the node.
	Kind() Kind

	// Workspace returns the workspace the node belongs to.
	Workspace() *Workspace

	// Disposed reports whether the node has been removed from the
	// document. Disposed nodes are never valid navigation targets.
	Disposed() bool

	// Parent returns the navigation parent, or nil at the root.
	Parent() Node

	// FirstChild returns the first navigation child, or nil.
	FirstChild() Node

	// NextSibling returns the following sibling, or nil.
	NextSibling() Node

	// PreviousSibling returns the preceding sibling, or nil.
	PreviousSibling() Node
}

// Deletable is implemented by nodes that may be removed by the user.
type Deletable interface {
	IsDeletable() bool
}

// Movable is implemented by nodes that may be repositioned by the user.
type Movable interface {
	IsMovable() bool
}

// Copyable is implemented by nodes that can be placed on the clipboard.
type Copyable interface {
	// CopyData returns a clipboard snapshot of the node.
	CopyData() *CopyData
}

// CopyableReporter optionally refines Copyable: a node that implements
// it decides copyability itself instead of falling back to the
// deletable-and-movable check.
type CopyableReporter interface {
	IsCopyable() bool
}

// CanCopy reports whether n is admissible for a clipboard copy. The
// node must implement Copyable; if it also implements CopyableReporter
// that verdict is final, otherwise it must be both deletable and
// movable in its own right.
func CanCopy(n Node) bool {
	if n == nil {
		return false
	}
	if _, ok := n.(Copyable); !ok {
		return false
	}
	if r, ok := n.(CopyableReporter); ok {
		return r.IsCopyable()
	}
	d, ok := n.(Deletable)
	if !ok || !d.IsDeletable() {
		return false
	}
	m, ok := n.(Movable)
	return ok && m.IsMovable()
}

// CanDelete reports whether n may be deleted by the user.
func CanDelete(n Node) bool {
	if n == nil {
		return false
	}
	d, ok := n.(Deletable)
	return ok && d.IsDeletable() && !n.Disposed()
}

// Audio is the feedback collaborator. Play is fire-and-forget; failure
// to produce sound is never an error.
type Audio interface {
	Play(sound string)
}
