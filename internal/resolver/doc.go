// Package resolver validates a module dependency graph and derives the
// orderings and include sets a build plan is made of.
//
// Only static edges (dag.PublicLink and dag.PrivateLink) constrain the
// result. Dynamic loads may legitimately form cycles, because runtime loading
// has no link-time ordering, so they are ignored here entirely.
//
// # Determinism
//
// Every traversal visits modules in ascending name order. Two runs over the
// same descriptors produce the same build order, the same include lists and
// the same cycle report, regardless of discovery or registration order.
package resolver
