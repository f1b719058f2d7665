package cursor

import (
	"strconv"

	"github.com/dshills/keynav/internal/block"
	"github.com/dshills/keynav/internal/nav/traverse"
)

// Cursor navigates a workspace one logical line, or one nesting level,
// at a time.
type Cursor struct {
	ws   *block.Workspace
	loop bool

	state   recoveryState
	pending []block.Node
}

// New creates a cursor for the workspace with wrap-around enabled.
func New(ws *block.Workspace) *Cursor {
	return &Cursor{ws: ws, loop: true}
}

// Workspace returns the workspace this cursor navigates.
func (c *Cursor) Workspace() *block.Workspace { return c.ws }

// Loop reports whether moves wrap at the structural boundaries.
func (c *Cursor) Loop() bool { return c.loop }

// SetLoop sets the cursor's default wrap-around mode.
func (c *Cursor) SetLoop(v bool) { c.loop = v }

// Current returns the focused node, or nil if nothing is focused.
func (c *Cursor) Current() block.Node {
	return c.ws.Focus().Focused()
}

// Next moves to the next logical line. Returns the new position, or
// nil (leaving focus unchanged) when there is none.
func (c *Cursor) Next() block.Node {
	cur := c.Current()
	target := traverse.Next(c.ws, cur, traverse.ValidLine, c.loop)
	if target != nil {
		c.moveTo(cur, target)
	}
	return target
}

// Prev moves to the previous logical line. Returns the new position,
// or nil (leaving focus unchanged) when there is none.
func (c *Cursor) Prev() block.Node {
	cur := c.Current()
	target := traverse.Previous(c.ws, cur, traverse.ValidLineFrom(cur), c.loop)
	if target != nil {
		c.moveTo(cur, target)
	}
	return target
}

// In moves one step deeper: the next node at any nesting level.
func (c *Cursor) In() block.Node {
	cur := c.Current()
	target := traverse.Next(c.ws, cur, traverse.ValidAny, c.loop)
	if target != nil {
		c.moveTo(cur, target)
	}
	return target
}

// Out moves one step shallower: the previous node at any nesting
// level.
func (c *Cursor) Out() block.Node {
	cur := c.Current()
	target := traverse.Previous(c.ws, cur, traverse.ValidAny, c.loop)
	if target != nil {
		c.moveTo(cur, target)
	}
	return target
}

// AtEndOfLine reports whether descending into the current node lands
// exactly where advancing past it would: nothing nested is left to
// explore on this line.
func (c *Cursor) AtEndOfLine() bool {
	cur := c.Current()
	if cur == nil {
		return false
	}
	in := traverse.Next(c.ws, cur, traverse.ValidAny, c.loop)
	next := traverse.Next(c.ws, cur, traverse.ValidLine, c.loop)
	return in == next
}

// FirstNode returns the first navigable node of the workspace.
func (c *Cursor) FirstNode() block.Node {
	return traverse.FirstNode(c.ws)
}

// LastNode returns the last navigable node of the workspace.
func (c *Cursor) LastNode() block.Node {
	return traverse.LastNode(c.ws)
}

// JumpTo focuses n directly, with the same depth cue as a step move.
func (c *Cursor) JumpTo(n block.Node) {
	if n == nil {
		return
	}
	c.moveTo(c.Current(), n)
}

// moveTo updates focus and requests an audible cue when the nesting
// depth changed.
func (c *Cursor) moveTo(old, target block.Node) {
	c.ws.Focus().Focus(target)
	if old == nil {
		return
	}
	oldDepth := block.NestingDepth(old)
	newDepth := block.NestingDepth(target)
	if oldDepth != newDepth {
		c.ws.PlaySound("nest-" + strconv.Itoa(newDepth))
	}
}
