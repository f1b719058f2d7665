// Package traverse computes the next and previous stopping points in a
// workspace's navigation graph.
//
// The engine defines a total pre-order over the graph (node, then its
// children, then its following siblings) and walks it forward or
// backward from a start node until a candidate satisfies the supplied
// predicate. Predicates encode the "lines of code" metaphor: moving
// next/previous stops only on nodes that begin a new logical line,
// while moving in/out stops on every node.
//
// The walk carries a visited set so that a malformed, cyclic graph can
// never hang the caller; on a well-formed tree the set is pure
// overhead and never trips.
//
// Loop mode controls wrap-around: with loop enabled, walking past the
// structural end continues from the other end of the workspace. With
// loop disabled, a walk starting at the known endpoint returns nil
// without searching.
package traverse
