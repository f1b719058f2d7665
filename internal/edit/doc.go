// Package edit provides the in-memory document-mutation collaborators
// the command layer drives: a clipboard that remembers where its
// contents came from, and an undo/redo history of reversible changes.
//
// Paste always targets the workspace the last copy was taken from,
// regardless of where focus currently sits, which is why the clipboard
// rather than the dispatcher owns that decision.
package edit
