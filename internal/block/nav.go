package block

// Navigation graph layout. Every focusable node has a position in one
// tree rooted at the workspace:
//
//	workspace
//	  [prev conn] block [fields... input conns...] [next conn]  <- stack chain
//	  ...next stack...
//	  comments...
//
// A stack chain is a flat sibling list: each block in the chain
// contributes its previous connection, itself, and its next connection.
// Nested stacks are the children of their statement input connection;
// a value block is the sole child of the value input it plugs into.

// navChildren returns the ordered navigation children of n.
func navChildren(n Node) []Node {
	switch v := n.(type) {
	case *Workspace:
		var out []Node
		for _, b := range v.topBlocks {
			appendStackChain(&out, b)
		}
		for _, c := range v.comments {
			if !c.disposed {
				out = append(out, c)
			}
		}
		return out
	case *Connection:
		switch v.kind {
		case ConnStatement:
			if tb := v.TargetBlock(); tb != nil {
				var out []Node
				appendStackChain(&out, tb)
				return out
			}
		case ConnValue:
			if tb := v.TargetBlock(); tb != nil {
				return []Node{tb}
			}
		}
		return nil
	case *Block:
		var out []Node
		for _, f := range v.fields {
			out = append(out, f)
		}
		for _, in := range v.inputs {
			for _, f := range in.fields {
				out = append(out, f)
			}
			if in.conn != nil {
				out = append(out, in.conn)
			}
		}
		return out
	default:
		return nil
	}
}

// appendStackChain appends the full sibling chain of a stack starting
// at b. Guards against malformed next-links forming a cycle.
func appendStackChain(out *[]Node, b *Block) {
	seen := make(map[*Block]bool)
	for blk := b; blk != nil && !seen[blk]; {
		seen[blk] = true
		if blk.prev != nil {
			*out = append(*out, blk.prev)
		}
		*out = append(*out, blk)
		if blk.next != nil {
			*out = append(*out, blk.next)
			blk = blk.next.TargetBlock()
			continue
		}
		return
	}
}

// stackContainer returns the navigation parent of a stack chain
// containing b: the statement connection the chain hangs from, or the
// workspace for a top-level chain.
func stackContainer(b *Block) Node {
	seen := make(map[*Block]bool)
	cur := b
	for !seen[cur] {
		seen[cur] = true
		if cur.prev != nil && cur.prev.target != nil {
			switch cur.prev.target.kind {
			case ConnStatement:
				return cur.prev.target
			case ConnNext:
				cur = cur.prev.target.owner
				continue
			}
		}
		break
	}
	if cur.ws != nil {
		return cur.ws
	}
	return nil
}

// navParent computes the navigation parent for any node.
func navParent(n Node) Node {
	switch v := n.(type) {
	case *Workspace:
		return nil
	case *Comment:
		if v.ws == nil {
			return nil
		}
		return v.ws
	case *Field:
		if v.owner == nil {
			return nil
		}
		return v.owner
	case *Connection:
		if v.owner == nil {
			return nil
		}
		if v.kind.IsInput() {
			return v.owner
		}
		// Previous/next connections sit at their block's stack level.
		// Output connections do not appear in the navigation graph but
		// resolve to their owner for completeness.
		if v.kind == ConnOutput {
			return v.owner
		}
		return stackContainer(v.owner)
	case *Block:
		if v.output != nil && v.output.target != nil {
			return v.output.target
		}
		return stackContainer(v)
	default:
		return nil
	}
}

// navFirstChild computes the first navigation child for any node.
func navFirstChild(n Node) Node {
	kids := navChildren(n)
	if len(kids) == 0 {
		return nil
	}
	return kids[0]
}

// navNextSibling computes the following sibling for any node.
func navNextSibling(n Node) Node {
	return navSibling(n, 1)
}

// navPreviousSibling computes the preceding sibling for any node.
func navPreviousSibling(n Node) Node {
	return navSibling(n, -1)
}

func navSibling(n Node, offset int) Node {
	parent := navParent(n)
	if parent == nil {
		return nil
	}
	kids := navChildren(parent)
	for i, k := range kids {
		if k == n {
			j := i + offset
			if j < 0 || j >= len(kids) {
				return nil
			}
			return kids[j]
		}
	}
	return nil
}

// EnclosingBlock returns the block a node belongs to: the node itself
// for a block, the owner for connections and fields, nil for comments
// and the workspace.
func EnclosingBlock(n Node) *Block {
	switch v := n.(type) {
	case *Block:
		return v
	case *Connection:
		return v.owner
	case *Field:
		return v.owner
	default:
		return nil
	}
}

// AncestorBlocks returns the chain of blocks enclosing n, innermost
// first, starting with n's own enclosing block. The chain follows
// previous and output attachments, so stack siblings above n are
// included on the way to the root.
func AncestorBlocks(n Node) []*Block {
	var out []*Block
	seen := make(map[*Block]bool)
	for b := EnclosingBlock(n); b != nil && !seen[b]; b = b.ParentBlock() {
		seen[b] = true
		out = append(out, b)
	}
	return out
}

// SurroundAncestors returns the chain of surrounding blocks of n,
// innermost first: the blocks whose inputs n is nested inside, not
// stack siblings.
func SurroundAncestors(n Node) []*Block {
	var out []*Block
	b := EnclosingBlock(n)
	if b == nil {
		return nil
	}
	out = append(out, b)
	seen := map[*Block]bool{b: true}
	for p := b.SurroundParent(); p != nil && !seen[p]; p = p.SurroundParent() {
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// NestingDepth returns how many blocks surround n's own block. Top
// level is depth zero for blocks and comments; nodes on a block report
// that block's depth.
func NestingDepth(n Node) int {
	b := EnclosingBlock(n)
	if b == nil {
		return 0
	}
	depth := 0
	seen := map[*Block]bool{b: true}
	for p := b.SurroundParent(); p != nil && !seen[p]; p = p.SurroundParent() {
		seen[p] = true
		depth++
	}
	return depth
}

// IsDescendantOf reports whether node is strictly inside ancestor's
// block, nested through inputs (stack siblings below ancestor do not
// count as descendants).
func IsDescendantOf(n Node, ancestor *Block) bool {
	if ancestor == nil {
		return false
	}
	b := EnclosingBlock(n)
	if b == nil || b == ancestor {
		return false
	}
	seen := map[*Block]bool{b: true}
	for p := b.SurroundParent(); p != nil && !seen[p]; p = p.SurroundParent() {
		if p == ancestor {
			return true
		}
		seen[p] = true
	}
	return false
}
