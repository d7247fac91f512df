// Package descriptor defines the declaration of a single build module: its
// identity, the include directories it exposes publicly or keeps private, the
// modules it links against and the modules it loads at runtime.
//
// # Why Descriptor Is Immutable
//
// Rules files in other build systems are usually mutable objects filled in by
// sequential assignment, which makes a half-configured module observable.
// Here a Descriptor only comes out of New (or Builder.Build) after every
// field has been validated, and it exposes read-only accessors afterwards.
//
// # Validation Rules
//
//   - The name must be non-empty.
//   - A module must not list itself in any dependency set.
//   - Include path entries and dependency names must not be empty.
//
// All violations of one descriptor are reported together in an
// *InvalidDescriptorError so authors can fix them in one pass.
//
// # Normalization
//
// Include paths keep their declared order, use forward slashes and are
// resolved against the module directory when one is set. Dependency sets
// are stored sorted and deduplicated.
package descriptor
