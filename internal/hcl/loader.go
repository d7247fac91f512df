package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
)

// Extension is the suffix of HCL descriptor files.
const Extension = ".module.hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
// It holds no state and is safe for concurrent use.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Name() string { return "hcl" }

func (l *Loader) Extensions() []string { return []string{Extension} }

// LoadFile reads and decodes one descriptor file.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*config.Module, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return l.Parse(ctx, src, path)
}

// Parse decodes descriptor source. filename is used for diagnostics and as
// the base of module_dir.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) ([]*config.Module, error) {
	logger := ctxlog.FromContext(ctx)

	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", filename, err)
	}
	fileDir := filepath.Dir(abs)

	// A fresh parser per call keeps the loader safe for concurrent use.
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	modules := make([]*config.Module, 0, len(root.Modules))
	for _, raw := range root.Modules {
		m, diags := decodeModule(raw, filename, fileDir)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode module %q in %s: %w", raw.Name, filename, diags)
		}
		modules = append(modules, m)
	}

	logger.Debug("Loaded HCL descriptor file.", "file", filename, "modules", len(modules))
	return modules, nil
}
