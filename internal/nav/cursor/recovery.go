package cursor

import "github.com/dshills/keynav/internal/block"

// recoveryState is the deletion-recovery machine state.
type recoveryState int

const (
	recoveryIdle recoveryState = iota
	recoveryPending
)

// PreDelete captures recovery candidates for an imminent block
// deletion and arms the recovery machine. Candidates, in priority
// order:
//
//  1. the current position, if any
//  2. the connection the doomed block hangs from (the neighbor's next,
//     statement, or value connection)
//  3. the block below the doomed one in its stack
//  4. the doomed block's parent block
//  5. the workspace root
//
// The caller must invoke PostDelete exactly once after the deletion.
func (c *Cursor) PreDelete(doomed *block.Block) {
	var cands []block.Node
	if cur := c.Current(); cur != nil {
		cands = append(cands, cur)
	}
	if doomed != nil {
		if prev := doomed.PreviousConnection(); prev != nil && prev.Target() != nil {
			cands = append(cands, prev.Target())
		} else if out := doomed.OutputConnection(); out != nil && out.Target() != nil {
			cands = append(cands, out.Target())
		}
		if next := doomed.NextConnection(); next != nil && next.TargetBlock() != nil {
			cands = append(cands, next.TargetBlock())
		}
		if p := doomed.ParentBlock(); p != nil {
			cands = append(cands, p)
		}
	}
	cands = append(cands, c.ws)

	c.pending = cands
	c.state = recoveryPending
}

// PostDelete disarms the recovery machine and focuses the first
// captured candidate whose owning block survived the deletion.
//
// Returns ErrPostDeleteWithoutPre if no PreDelete preceded this call,
// and ErrNoRecoveryCandidate if every candidate was destroyed - both
// are programmer errors, never silently absorbed.
func (c *Cursor) PostDelete() error {
	if c.state != recoveryPending {
		return ErrPostDeleteWithoutPre
	}
	cands := c.pending
	c.pending = nil
	c.state = recoveryIdle

	for _, cand := range cands {
		if cand == nil || cand.Disposed() {
			continue
		}
		if owner := block.EnclosingBlock(cand); owner != nil && owner.Disposed() {
			continue
		}
		c.ws.Focus().Focus(cand)
		return nil
	}
	return ErrNoRecoveryCandidate
}
