// Package registry collects every module descriptor discovered for a single
// resolution run and indexes it by name.
//
// A Registry is created explicitly per run and passed to the graph builder;
// there is no process-wide module table. Registration order is preserved so
// that every downstream iteration is deterministic. Once Freeze is called (the
// graph builder does this) the registry rejects further registrations.
//
// Local defects are reported per offending descriptor: RegisterAll keeps
// going after a DuplicateModuleError and returns all of them combined with
// go.uber.org/multierr.
package registry
