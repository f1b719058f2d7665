// Package cursor holds the user's position in a workspace and moves it
// with line-oriented semantics.
//
// The cursor never stores a position of its own: it reads and writes
// the workspace's FocusManager, so the navigation position and the
// visible focus are always the same value. Moves that find no target
// leave focus untouched and return nil.
//
// Deletion recovery is a two-state machine. PreDelete captures a
// priority-ordered list of candidate positions before a block is
// removed; PostDelete, called after the removal, focuses the first
// candidate that survived. Calling PostDelete while idle, or
// exhausting every candidate, is an invariant violation reported as an
// error - a silently wrong position is worse than a loud failure.
package cursor
