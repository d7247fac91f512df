// Package config defines the format-agnostic record a module descriptor file
// decodes into, along with the Loader interface that concrete file formats
// implement.
//
// A Module record is deliberately loose: strings for enums, plain slices for
// sets. Converting it with Module.Descriptor is the single place where
// validation happens. Concrete loaders live in separate packages (hcl,
// yamlcfg).
package config
