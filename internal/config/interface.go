package config

import "context"

// Loader reads module declarations in one file format.
type Loader interface {
	// Name identifies the format in logs, e.g. "hcl".
	Name() string
	// Extensions lists the file suffixes the loader claims, e.g.
	// ".module.hcl".
	Extensions() []string
	// LoadFile parses a single file. A file may declare several modules.
	LoadFile(ctx context.Context, path string) ([]*Module, error)
}
