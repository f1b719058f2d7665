package dispatch

import (
	"github.com/dshills/keynav/internal/block"
	"github.com/dshills/keynav/internal/edit"
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/nav/traverse"
)

// RegisterDefaults installs the built-in shortcuts into a registry.
func RegisterDefaults(r *Registry) error {
	defaults := []*Shortcut{
		{
			Name:         keymap.ActionCursorNext,
			Description:  "Move to the next line",
			Precondition: canNavigate,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				return ctx.Cursor.Next() != nil, nil
			},
		},
		{
			Name:         keymap.ActionCursorPrev,
			Description:  "Move to the previous line",
			Precondition: canNavigate,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				return ctx.Cursor.Prev() != nil, nil
			},
		},
		{
			Name:         keymap.ActionCursorIn,
			Description:  "Step into the current line",
			Precondition: canNavigate,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				return ctx.Cursor.In() != nil, nil
			},
		},
		{
			Name:         keymap.ActionCursorOut,
			Description:  "Step out of the current line",
			Precondition: canNavigate,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				return ctx.Cursor.Out() != nil, nil
			},
		},
		{
			Name:        keymap.ActionEscape,
			Description: "Dismiss transient UI",
			Precondition: func(ctx *Context) bool {
				return !ctx.Workspace.IsReadOnly()
			},
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				ctx.Workspace.HideTransientUI()
				return true, nil
			},
		},
		{
			Name:         keymap.ActionDelete,
			Description:  "Delete the focused node",
			Precondition: canDelete,
			Callback:     deleteFocused,
		},
		{
			Name:         keymap.ActionCopy,
			Description:  "Copy the focused node",
			Precondition: canCopy,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				_, err := ctx.Clipboard.Copy(ctx.Focused)
				return err == nil, nil
			},
		},
		{
			Name:        keymap.ActionCut,
			Description: "Cut the focused node",
			Precondition: func(ctx *Context) bool {
				return canCopy(ctx) && block.CanDelete(ctx.Focused)
			},
			Callback: func(ctx *Context, ev key.Event) (bool, error) {
				if _, err := ctx.Clipboard.Copy(ctx.Focused); err != nil {
					return false, nil
				}
				return deleteFocused(ctx, ev)
			},
		},
		{
			Name:        keymap.ActionPaste,
			Description: "Paste into the copy's source workspace",
			Precondition: func(ctx *Context) bool {
				// Paste targets where the copy came from, so only the
				// clipboard's source workspace state matters here.
				return ctx.Clipboard.CanPaste()
			},
			Callback: pasteClipboard,
		},
		{
			Name:         keymap.ActionUndo,
			Description:  "Undo the last change",
			Precondition: canReplayHistory,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				ctx.Workspace.HideTransientUI()
				ctx.History.Replay(false)
				return true, nil
			},
		},
		{
			Name:         keymap.ActionRedo,
			Description:  "Redo the last undone change",
			Precondition: canReplayHistory,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				ctx.Workspace.HideTransientUI()
				ctx.History.Replay(true)
				return true, nil
			},
		},
		{
			Name:         keymap.ActionJumpBlockStart,
			Description:  "Jump to the start of the focused block",
			Precondition: hasBlockOutsideFlyout,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				ctx.Cursor.JumpTo(block.EnclosingBlock(ctx.Focused))
				return true, nil
			},
		},
		{
			Name:         keymap.ActionJumpBlockEnd,
			Description:  "Jump to the end of the focused block",
			Precondition: hasBlockOutsideFlyout,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				b := block.EnclosingBlock(ctx.Focused)
				if conn := b.LastInputConnection(); conn != nil {
					ctx.Cursor.JumpTo(conn)
				} else {
					ctx.Cursor.JumpTo(b)
				}
				return true, nil
			},
		},
		{
			Name:         keymap.ActionJumpStackTop,
			Description:  "Jump to the root of the containing stack",
			Precondition: hasBlockOutsideFlyout,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				ctx.Cursor.JumpTo(block.EnclosingBlock(ctx.Focused).RootBlock())
				return true, nil
			},
		},
		{
			Name:         keymap.ActionJumpStackBottom,
			Description:  "Jump to the bottom of the containing stack",
			Precondition: hasBlockOutsideFlyout,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				last := block.EnclosingBlock(ctx.Focused).RootBlock().LastStackBlock()
				if nc := last.NextConnection(); nc != nil {
					ctx.Cursor.JumpTo(nc)
				} else {
					ctx.Cursor.JumpTo(traverse.LastDescendant(last))
				}
				return true, nil
			},
		},
		{
			Name:         keymap.ActionJumpWorkspaceFirst,
			Description:  "Jump to the first top-level block",
			Precondition: noDrag,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				first := ctx.Workspace.FirstTopBlock()
				if first == nil {
					return false, nil
				}
				ctx.Cursor.JumpTo(first)
				return true, nil
			},
		},
		{
			Name:         keymap.ActionJumpWorkspaceLast,
			Description:  "Jump to the last top-level block",
			Precondition: noDrag,
			Callback: func(ctx *Context, _ key.Event) (bool, error) {
				last := ctx.Workspace.LastTopBlock()
				if last == nil {
					return false, nil
				}
				ctx.Cursor.JumpTo(last)
				return true, nil
			},
		},
	}

	for _, sc := range defaults {
		if err := r.Register(sc); err != nil {
			return err
		}
	}
	return nil
}

// canNavigate admits cursor moves whenever no drag is active and no
// field edit session holds exclusive focus.
func canNavigate(ctx *Context) bool {
	return !ctx.Workspace.IsDragging() && !ctx.Workspace.IsEditingField()
}

// canDelete admits deletion of a deletable focused node on an editable
// workspace, outside drags and edit sessions.
func canDelete(ctx *Context) bool {
	return block.CanDelete(ctx.Focused) &&
		!ctx.Workspace.IsReadOnly() &&
		!ctx.Workspace.IsDragging() &&
		!ctx.Workspace.IsEditingField()
}

// canCopy admits copying when the focused node passes the layered
// copyability check, outside drags and edit sessions.
func canCopy(ctx *Context) bool {
	return block.CanCopy(ctx.Focused) &&
		!ctx.Workspace.IsDragging() &&
		!ctx.Workspace.IsEditingField()
}

// canReplayHistory admits undo and redo on an editable workspace with
// no drag active.
func canReplayHistory(ctx *Context) bool {
	return !ctx.Workspace.IsReadOnly() && !ctx.Workspace.IsDragging()
}

// hasBlockOutsideFlyout admits block and stack jumps: a node with a
// block ancestor is focused and the workspace is not a flyout preview.
func hasBlockOutsideFlyout(ctx *Context) bool {
	return block.EnclosingBlock(ctx.Focused) != nil && !ctx.Workspace.IsFlyout()
}

// noDrag admits workspace-wide jumps, including inside flyouts.
func noDrag(ctx *Context) bool {
	return !ctx.Workspace.IsDragging()
}

// deleteFocused disposes the focused node, bracketing block deletion
// with the cursor's recovery machine.
func deleteFocused(ctx *Context, _ key.Event) (bool, error) {
	switch n := ctx.Focused.(type) {
	case *block.Block:
		ctx.Cursor.PreDelete(n)
		n.Dispose(true)
		if err := ctx.Cursor.PostDelete(); err != nil {
			return true, err
		}
		return true, nil
	case *block.Comment:
		ctx.Cursor.PreDelete(nil)
		n.Dispose()
		if err := ctx.Cursor.PostDelete(); err != nil {
			return true, err
		}
		return true, nil
	default:
		return false, nil
	}
}

// pasteClipboard pastes into the clipboard's source workspace and
// records the change for undo.
func pasteClipboard(ctx *Context, _ key.Event) (bool, error) {
	data := ctx.Clipboard.Data()
	pasted, err := ctx.Clipboard.Paste()
	if err != nil {
		return false, nil
	}
	current := pasted
	ctx.History.Push(edit.Change{
		Label: "paste",
		Undo:  func() { current.Dispose(false) },
		Redo:  func() { current = data.Source.Paste(data.Instantiate()) },
	})
	if pasted.Workspace() == ctx.Workspace {
		ctx.Cursor.JumpTo(pasted)
	}
	return true, nil
}
