package keymap

// Action names for the built-in commands. The dispatch package
// registers a shortcut under each of these.
const (
	ActionCursorNext = "cursor.next"
	ActionCursorPrev = "cursor.prev"
	ActionCursorIn   = "cursor.in"
	ActionCursorOut  = "cursor.out"

	ActionEscape = "ui.escape"
	ActionDelete = "edit.delete"
	ActionCopy   = "edit.copy"
	ActionCut    = "edit.cut"
	ActionPaste  = "edit.paste"
	ActionUndo   = "edit.undo"
	ActionRedo   = "edit.redo"

	ActionJumpBlockStart     = "jump.blockStart"
	ActionJumpBlockEnd       = "jump.blockEnd"
	ActionJumpStackTop       = "jump.stackTop"
	ActionJumpStackBottom    = "jump.stackBottom"
	ActionJumpWorkspaceFirst = "jump.workspaceFirst"
	ActionJumpWorkspaceLast  = "jump.workspaceLast"
)

// Default returns the built-in keymap. Ctrl chords carry Meta twins so
// the same commands work with Cmd on macOS.
func Default() *Keymap {
	return &Keymap{
		Name: "default",
		Bindings: []Binding{
			{Keys: "Down", Action: ActionCursorNext, Description: "Next line"},
			{Keys: "Up", Action: ActionCursorPrev, Description: "Previous line"},
			{Keys: "Right", Action: ActionCursorIn, Description: "Step in"},
			{Keys: "Left", Action: ActionCursorOut, Description: "Step out"},

			{Keys: "Escape", Action: ActionEscape, Description: "Dismiss transient UI"},
			{Keys: "Delete", Action: ActionDelete, Description: "Delete focused node"},
			{Keys: "Backspace", Action: ActionDelete, Description: "Delete focused node"},

			{Keys: "Ctrl+c", Action: ActionCopy, Description: "Copy"},
			{Keys: "Meta+c", Action: ActionCopy, Description: "Copy"},
			{Keys: "Ctrl+x", Action: ActionCut, Description: "Cut"},
			{Keys: "Meta+x", Action: ActionCut, Description: "Cut"},
			{Keys: "Ctrl+v", Action: ActionPaste, Description: "Paste"},
			{Keys: "Meta+v", Action: ActionPaste, Description: "Paste"},

			{Keys: "Ctrl+z", Action: ActionUndo, Description: "Undo"},
			{Keys: "Meta+z", Action: ActionUndo, Description: "Undo"},
			{Keys: "Ctrl+Shift+z", Action: ActionRedo, Description: "Redo"},
			{Keys: "Meta+Shift+z", Action: ActionRedo, Description: "Redo"},
			{Keys: "Ctrl+y", Action: ActionRedo, Description: "Redo"},

			{Keys: "Home", Action: ActionJumpBlockStart, Description: "Start of block"},
			{Keys: "End", Action: ActionJumpBlockEnd, Description: "End of block"},
			{Keys: "PageUp", Action: ActionJumpStackTop, Description: "Top of stack"},
			{Keys: "PageDown", Action: ActionJumpStackBottom, Description: "Bottom of stack"},
			{Keys: "Ctrl+Home", Action: ActionJumpWorkspaceFirst, Description: "First block in workspace"},
			{Keys: "Meta+Home", Action: ActionJumpWorkspaceFirst, Description: "First block in workspace"},
			{Keys: "Ctrl+End", Action: ActionJumpWorkspaceLast, Description: "Last block in workspace"},
			{Keys: "Meta+End", Action: ActionJumpWorkspaceLast, Description: "Last block in workspace"},
		},
	}
}
