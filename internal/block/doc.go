// Package block provides the navigable node model for a block-based
// visual program: blocks, connections, fields, comments, and the
// workspace root that owns them.
//
// The package defines two related structures over the same objects:
//
//   - The document structure: blocks own fields and inputs, and attach
//     to each other through typed connections (previous, next, output,
//     value-input, statement-input).
//   - The navigation graph: a tree over every focusable node, exposed
//     through the Node accessor methods Parent, FirstChild, NextSibling,
//     and PreviousSibling. Connections between blocks are modeled as
//     parent/child edges here, so a pre-order walk of the navigation
//     graph visits the program the way a reader scans lines of code.
//
// Navigation order within a stack is: a block's previous connection,
// the block itself, its fields and input connections (in row order),
// its next connection, then the next block in the stack. A nested stack
// hangs off its statement-input connection; a value block hangs off the
// value-input connection it is plugged into.
//
// Node capabilities (deletion, movement, copying) are declared through
// interface implementation rather than runtime probing: see Deletable,
// Movable, Copyable, and CopyableReporter.
//
// The FocusManager is the single source of truth for "current position";
// navigation code reads and writes focus through it and never caches a
// separate copy.
package block
