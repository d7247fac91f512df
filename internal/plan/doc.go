// Package plan projects a resolved module graph into the build plan handed to
// a compiler and linker driver.
//
// For every module the plan lists:
//
//   - IncludePaths: the module's own public and private include paths, then
//     the transitive public include paths of each direct public or private
//     dependency. A private dependency's headers are visible here but are
//     never re-exported to the module's own dependents.
//   - LinkList: every module reachable over public or private edges, in
//     global build order.
//   - DynamicLoads: the direct runtime-loaded modules. Load order is decided
//     at runtime; the list is sorted only to keep output stable.
//
// A single global build order is shared by all modules. Plans are read-only
// once emitted and can be written as JSON or YAML.
package plan
