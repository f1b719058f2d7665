package block

import "github.com/google/uuid"

// Workspace is the root of the document and of the navigation graph.
// It owns the top-level block stacks and comments, the focus manager,
// and the UI state flags the command layer gates on.
type Workspace struct {
	id        uuid.UUID
	topBlocks []*Block
	comments  []*Comment
	focus     *FocusManager
	audio     Audio

	readOnly     bool
	flyout       bool
	rendered     bool
	dragging     bool
	editingField bool
	transientUI  bool
}

// NewWorkspace creates an empty, rendered workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		id:       uuid.New(),
		focus:    NewFocusManager(),
		rendered: true,
	}
}

// NewBlock creates a block of the given type in this workspace. The
// block starts at the top level, deletable and movable; the caller
// shapes it with the Block builder methods and connects it into place.
func (ws *Workspace) NewBlock(blockType string) *Block {
	b := &Block{
		id:        uuid.New(),
		typ:       blockType,
		ws:        ws,
		deletable: true,
		movable:   true,
	}
	ws.topBlocks = append(ws.topBlocks, b)
	return b
}

// NewComment creates a workspace comment.
func (ws *Workspace) NewComment(text string) *Comment {
	c := &Comment{
		id:        uuid.New(),
		ws:        ws,
		text:      text,
		deletable: true,
		movable:   true,
	}
	ws.comments = append(ws.comments, c)
	return c
}

// Paste attaches a detached clipboard clone to this workspace at the
// top level and returns it. The caller keeps ownership of the original
// snapshot; pass a fresh clone per paste.
func (ws *Workspace) Paste(b *Block) *Block {
	if b == nil {
		return nil
	}
	b.adopt(ws)
	ws.topBlocks = append(ws.topBlocks, b)
	return b
}

// TopBlocks returns the top-level blocks in document order.
func (ws *Workspace) TopBlocks() []*Block {
	out := make([]*Block, len(ws.topBlocks))
	copy(out, ws.topBlocks)
	return out
}

// FirstTopBlock returns the first top-level block, or nil.
func (ws *Workspace) FirstTopBlock() *Block {
	if len(ws.topBlocks) == 0 {
		return nil
	}
	return ws.topBlocks[0]
}

// LastTopBlock returns the last top-level block, or nil.
func (ws *Workspace) LastTopBlock() *Block {
	if len(ws.topBlocks) == 0 {
		return nil
	}
	return ws.topBlocks[len(ws.topBlocks)-1]
}

// Comments returns the workspace comments in document order.
func (ws *Workspace) Comments() []*Comment {
	out := make([]*Comment, len(ws.comments))
	copy(out, ws.comments)
	return out
}

// Focus returns the focus manager, the single source of truth for the
// current navigation position.
func (ws *Workspace) Focus() *FocusManager { return ws.focus }

// Audio returns the audio collaborator, or nil if none is attached.
func (ws *Workspace) Audio() Audio { return ws.audio }

// SetAudio attaches the audio feedback collaborator.
func (ws *Workspace) SetAudio(a Audio) { ws.audio = a }

// PlaySound asks the audio collaborator for a cue. Safe with no
// collaborator attached.
func (ws *Workspace) PlaySound(sound string) {
	if ws.audio != nil {
		ws.audio.Play(sound)
	}
}

// IsReadOnly reports whether the workspace rejects edits.
func (ws *Workspace) IsReadOnly() bool { return ws.readOnly }

// SetReadOnly toggles the read-only flag.
func (ws *Workspace) SetReadOnly(v bool) { ws.readOnly = v }

// IsFlyout reports whether this workspace is an auxiliary preview area
// rather than the primary editing surface.
func (ws *Workspace) IsFlyout() bool { return ws.flyout }

// SetFlyout marks the workspace as a flyout.
func (ws *Workspace) SetFlyout(v bool) { ws.flyout = v }

// IsRendered reports whether the workspace is currently rendered.
func (ws *Workspace) IsRendered() bool { return ws.rendered }

// SetRendered toggles the rendered flag.
func (ws *Workspace) SetRendered(v bool) { ws.rendered = v }

// IsDragging reports whether a drag gesture is in progress.
func (ws *Workspace) IsDragging() bool { return ws.dragging }

// SetDragging toggles the drag-in-progress flag.
func (ws *Workspace) SetDragging(v bool) { ws.dragging = v }

// IsEditingField reports whether a modal field edit session holds
// exclusive focus.
func (ws *Workspace) IsEditingField() bool { return ws.editingField }

// SetEditingField toggles the exclusive edit session flag.
func (ws *Workspace) SetEditingField(v bool) { ws.editingField = v }

// HasTransientUI reports whether transient chrome (menus, tooltips,
// field editors) is showing.
func (ws *Workspace) HasTransientUI() bool { return ws.transientUI }

// ShowTransientUI marks transient chrome as visible.
func (ws *Workspace) ShowTransientUI() { ws.transientUI = true }

// HideTransientUI dismisses transient chrome, including any field edit
// session.
func (ws *Workspace) HideTransientUI() {
	ws.transientUI = false
	ws.editingField = false
}

func (ws *Workspace) addTopBlock(b *Block) {
	for _, existing := range ws.topBlocks {
		if existing == b {
			return
		}
	}
	ws.topBlocks = append(ws.topBlocks, b)
}

func (ws *Workspace) removeTopBlock(b *Block) {
	for i, existing := range ws.topBlocks {
		if existing == b {
			ws.topBlocks = append(ws.topBlocks[:i], ws.topBlocks[i+1:]...)
			return
		}
	}
}

func (ws *Workspace) removeComment(c *Comment) {
	for i, existing := range ws.comments {
		if existing == c {
			ws.comments = append(ws.comments[:i], ws.comments[i+1:]...)
			return
		}
	}
}

// ID implements Node.
func (ws *Workspace) ID() uuid.UUID { return ws.id }

// Kind implements Node.
func (ws *Workspace) Kind() Kind { return KindWorkspace }

// Workspace implements Node.
func (ws *Workspace) Workspace() *Workspace { return ws }

// Disposed implements Node. Workspaces live for the whole session.
func (ws *Workspace) Disposed() bool { return false }

// Parent implements Node. The workspace is the navigation root.
func (ws *Workspace) Parent() Node { return nil }

// FirstChild implements Node: the first node of the first top-level
// stack, or the first comment on an otherwise empty workspace.
func (ws *Workspace) FirstChild() Node { return navFirstChild(ws) }

// NextSibling implements Node.
func (ws *Workspace) NextSibling() Node { return nil }

// PreviousSibling implements Node.
func (ws *Workspace) PreviousSibling() Node { return nil }
