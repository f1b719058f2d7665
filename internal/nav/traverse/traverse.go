package traverse

import "github.com/dshills/keynav/internal/block"

// FirstNode returns the structurally first navigable node of the
// workspace, or nil when it is empty.
func FirstNode(ws *block.Workspace) block.Node {
	if ws == nil {
		return nil
	}
	return ws.FirstChild()
}

// LastNode returns the structurally last navigable node of the
// workspace: the rightmost descendant of the root. Nil when empty.
func LastNode(ws *block.Workspace) block.Node {
	if ws == nil {
		return nil
	}
	var cur block.Node = ws
	seen := make(map[block.Node]bool)
	for {
		c := lastChild(cur)
		if c == nil || seen[c] {
			break
		}
		seen[c] = true
		cur = c
	}
	if cur == block.Node(ws) {
		return nil
	}
	return cur
}

// Next returns the first admissible node after start in pre-order, or
// nil. A start at the last node with loop disabled returns nil without
// searching; everywhere else the search wraps past the structural end,
// so trailing inadmissible nodes never strand the cursor. The visited
// set bounds the search to one full revolution.
func Next(ws *block.Workspace, start block.Node, valid Predicate, loop bool) block.Node {
	if start == nil || valid == nil {
		return nil
	}
	if !loop && start == LastNode(ws) {
		return nil
	}

	visited := make(map[block.Node]bool)
	n := start
	for {
		if visited[n] {
			return nil
		}
		visited[n] = true

		cand := nextPreOrder(n)
		if cand == nil {
			// Structural end: wrap.
			cand = FirstNode(ws)
			if cand == nil {
				return nil
			}
		}
		if valid(cand) {
			return cand
		}
		n = cand
	}
}

// Previous returns the first admissible node before start in pre-order,
// or nil. The mirror of Next: a start at the first node with loop
// disabled returns nil without searching; everywhere else the search
// wraps past the structural start.
func Previous(ws *block.Workspace, start block.Node, valid Predicate, loop bool) block.Node {
	if start == nil || valid == nil {
		return nil
	}
	if !loop && start == FirstNode(ws) {
		return nil
	}

	visited := make(map[block.Node]bool)
	n := start
	for {
		if visited[n] {
			return nil
		}
		visited[n] = true

		cand := prevPreOrder(n, start)
		if cand == nil {
			// Structural start: wrap.
			cand = LastNode(ws)
			if cand == nil {
				return nil
			}
		}
		if valid(cand) {
			return cand
		}
		n = cand
	}
}

// LastDescendant returns the last node visited inside n's subtree in
// pre-order: its rightmost descendant, or n itself when it has no
// children.
func LastDescendant(n block.Node) block.Node {
	if n == nil {
		return nil
	}
	return rightmostDescendant(n, nil)
}

// nextPreOrder returns the node after n in pre-order: its first child,
// its next sibling, or the next sibling of the nearest ancestor that
// has one. Nil at the structural end.
func nextPreOrder(n block.Node) block.Node {
	if c := n.FirstChild(); c != nil {
		return c
	}
	if s := n.NextSibling(); s != nil {
		return s
	}
	seen := make(map[block.Node]bool)
	for p := n.Parent(); p != nil && !seen[p]; p = p.Parent() {
		seen[p] = true
		if s := p.NextSibling(); s != nil {
			return s
		}
	}
	return nil
}

// prevPreOrder returns the node before n in pre-order: the rightmost
// descendant of its previous sibling, or its parent. Nil at the root.
// The descent refuses to re-enter orig, which guards against cycles
// through the start node.
func prevPreOrder(n, orig block.Node) block.Node {
	if s := n.PreviousSibling(); s != nil {
		return rightmostDescendant(s, orig)
	}
	return n.Parent()
}

// rightmostDescendant descends through last children from n, stopping
// before revisiting stop or any node already seen.
func rightmostDescendant(n, stop block.Node) block.Node {
	seen := make(map[block.Node]bool)
	cur := n
	for {
		c := lastChild(cur)
		if c == nil || c == stop || seen[c] {
			return cur
		}
		seen[c] = true
		cur = c
	}
}

// lastChild returns the final child of n, walking the sibling chain
// with a cycle guard.
func lastChild(n block.Node) block.Node {
	c := n.FirstChild()
	if c == nil {
		return nil
	}
	seen := make(map[block.Node]bool)
	for {
		if seen[c] {
			return c
		}
		seen[c] = true
		s := c.NextSibling()
		if s == nil {
			return c
		}
		c = s
	}
}
