// Package dag turns a registry of module descriptors into a directed graph
// of modules connected by typed edges.
//
// # Edges
//
// An edge points from the depending module to its dependency and carries one
// of three kinds:
//
//   - PublicLink: the dependency is part of the module's public interface.
//     Its public include paths are re-exported to the module's dependents.
//   - PrivateLink: the dependency is only needed to build the module itself.
//   - DynamicLoad: the dependency is loaded at runtime. It is recorded for
//     the build plan but takes no part in cycle checks or link order.
//
// # Lifecycle
//
// A Graph is derived data: Build freezes the registry, wires every edge and
// returns a Graph that is never mutated again. Read-only use from several
// goroutines is therefore safe without locking. Any reference to a module
// missing from the registry aborts the build with *UnresolvedDependencyError.
//
// # Conditional Dependencies
//
// WithEdgeFilter installs a predicate that sees every edge before it enters
// the graph. Platform or configuration specific dependencies can be modeled
// by dropping edges there, which keeps descriptors themselves
// platform-agnostic.
package dag
