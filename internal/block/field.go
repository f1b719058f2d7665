package block

import "github.com/google/uuid"

// Field is an editable slot on a block, such as a variable name or a
// number literal. Fields are navigable but carry no capabilities; they
// are edited in place through an exclusive edit session on the
// workspace.
type Field struct {
	id    uuid.UUID
	owner *Block
	name  string
	text  string
}

func newField(owner *Block, name, text string) *Field {
	return &Field{id: uuid.New(), owner: owner, name: name, text: text}
}

// ID implements Node.
func (f *Field) ID() uuid.UUID { return f.id }

// Kind implements Node.
func (f *Field) Kind() Kind { return KindField }

// Name returns the field's name within its block.
func (f *Field) Name() string { return f.name }

// Text returns the field's current text.
func (f *Field) Text() string { return f.text }

// SetText updates the field's text.
func (f *Field) SetText(text string) { f.text = text }

// Owner returns the block this field belongs to.
func (f *Field) Owner() *Block { return f.owner }

// Workspace implements Node.
func (f *Field) Workspace() *Workspace {
	if f.owner == nil {
		return nil
	}
	return f.owner.Workspace()
}

// Disposed implements Node. A field is disposed with its owner.
func (f *Field) Disposed() bool {
	return f.owner == nil || f.owner.Disposed()
}

// Parent implements Node.
func (f *Field) Parent() Node { return navParent(f) }

// FirstChild implements Node. Fields have no navigation children.
func (f *Field) FirstChild() Node { return nil }

// NextSibling implements Node.
func (f *Field) NextSibling() Node { return navNextSibling(f) }

// PreviousSibling implements Node.
func (f *Field) PreviousSibling() Node { return navPreviousSibling(f) }
