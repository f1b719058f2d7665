package traverse

import "github.com/dshills/keynav/internal/block"

// Predicate decides whether a candidate node is a legitimate stopping
// point. Predicates must be pure: evaluation never mutates the graph.
type Predicate func(block.Node) bool

// ValidAny admits every non-nil node. It is the predicate for the IN
// and OUT directions, which stop at each nesting level.
func ValidAny(n block.Node) bool { return n != nil }

// ValidLine admits the nodes that begin a logical line when moving
// forward:
//
//   - a block that is not plugged into a parent through its output
//     connection (a statement-level block, not an inline value),
//   - a comment,
//   - a next or statement connection,
//   - a value connection, unless it is the first input slot of a block
//     that also has statement inputs. The first slot of such a block is
//     read as part of the block's own row; later slots start new lines.
func ValidLine(n block.Node) bool {
	switch v := n.(type) {
	case *block.Comment:
		return true
	case *block.Block:
		out := v.OutputConnection()
		return out == nil || !out.IsConnected()
	case *block.Connection:
		return validLineConnection(v)
	default:
		return false
	}
}

func validLineConnection(c *block.Connection) bool {
	k := c.ConnectionKind()
	if k.IsNextStatement() {
		return true
	}
	if k != block.ConnValue {
		return false
	}
	owner := c.Owner()
	if owner != nil && owner.HasStatementInput() && owner.FirstInputConnection() == c {
		return false
	}
	return true
}

// ValidLineFrom returns the backward-direction line predicate anchored
// at the current position. Backward admission needs the start node:
// stepping over a sibling stack must not descend into it, and two
// blocks that render on the same visual row must not both be stops.
func ValidLineFrom(start block.Node) Predicate {
	return func(n block.Node) bool {
		switch v := n.(type) {
		case *block.Comment:
			return true
		case *block.Connection:
			return validLineConnection(v)
		case *block.Block:
			return validPreviousBlock(start, v)
		default:
			return false
		}
	}
}

// validPreviousBlock applies the backward-direction admission rules
// for a block candidate.
func validPreviousBlock(start block.Node, cand *block.Block) bool {
	// Inline values are read as part of their owning row, never as
	// their own line. This also covers the first value input of a
	// block with statement inputs and values nested in non-statement
	// inputs, which forward navigation skips for the same reason.
	if out := cand.OutputConnection(); out != nil && out.IsConnected() {
		return false
	}

	// Stepping back from a bare next connection (one whose block is
	// not nested in any input) must not stop deep inside the statement
	// stacks of the preceding block.
	if sc, ok := start.(*block.Connection); ok &&
		sc.ConnectionKind() == block.ConnNext &&
		sc.Owner() != nil && sc.Owner().SurroundParent() == nil &&
		insideStatementInput(cand) {
		return false
	}

	return !sharesRowWith(start, cand)
}

// sharesRowWith reports whether the candidate block renders on the
// same visual row as the current node's block, derived purely from the
// parent chains and inline-input flags.
func sharesRowWith(start block.Node, cand *block.Block) bool {
	// A block whose surrounding parent lays its inputs out inline sits
	// on that parent's row.
	if sp := cand.SurroundParent(); sp != nil && sp.InputsInline() {
		return true
	}

	cur := block.EnclosingBlock(start)
	if cur == nil {
		return false
	}

	// A line cannot be shared with one's own ancestor.
	if block.IsDescendantOf(cand, cur) {
		return true
	}

	common := commonSurroundAncestors(cur, cand)
	if len(common) == 0 {
		return false
	}
	for _, a := range common {
		if !a.InputsInline() {
			return false
		}
	}
	// Every shared ancestor renders inline: same visual row.
	return true
}

// commonSurroundAncestors returns the blocks that strictly surround
// both a and b.
func commonSurroundAncestors(a, b *block.Block) []*block.Block {
	inA := make(map[*block.Block]bool)
	for i, anc := range block.SurroundAncestors(a) {
		if i == 0 {
			continue // the block itself
		}
		inA[anc] = true
	}
	var out []*block.Block
	for i, anc := range block.SurroundAncestors(b) {
		if i == 0 {
			continue
		}
		if inA[anc] {
			out = append(out, anc)
		}
	}
	return out
}

// insideStatementInput reports whether b is nested, at any depth,
// under a statement input of another block.
func insideStatementInput(b *block.Block) bool {
	seen := make(map[*block.Block]bool)
	for cur := b; cur != nil && !seen[cur]; {
		seen[cur] = true
		if prev := cur.PreviousConnection(); prev != nil && prev.Target() != nil {
			if prev.Target().ConnectionKind() == block.ConnStatement {
				return true
			}
			cur = prev.Target().Owner()
			continue
		}
		if out := cur.OutputConnection(); out != nil && out.Target() != nil {
			cur = out.Target().Owner()
			continue
		}
		return false
	}
	return false
}
