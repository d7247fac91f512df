// Package yamlcfg provides a YAML implementation of the config.Loader
// interface, for projects that generate descriptors from other tooling.
//
// A file holds one or more documents, each with a modules list:
//
//	modules:
//	  - name: UI
//	    pch_mode: use_explicit_or_shared_pch
//	    public_include_paths: [Source/Public, Source/Classes]
//	    private_dependencies: [RenderCore, RHI]
//	---
//	modules:
//	  - name: RHI
//
// Modules of every document are returned in file order. Unknown keys are rejected. Relative directories resolve against the
// directory of the file, which is also the default module directory.
package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
)

// Extensions claimed by the loader.
var Extensions = []string{".module.yaml", ".module.yml"}

type document struct {
	Modules []*config.Module `yaml:"modules"`
}

// Loader decodes YAML descriptor files. It is safe for concurrent use.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a YAML descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Name() string { return "yaml" }

func (l *Loader) Extensions() []string { return Extensions }

// LoadFile reads and decodes one descriptor file.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*config.Module, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return l.Parse(ctx, src, path)
}

// Parse decodes descriptor source read from filename.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) ([]*config.Module, error) {
	logger := ctxlog.FromContext(ctx)

	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", filename, err)
	}
	fileDir := filepath.Dir(abs)

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var modules []*config.Module
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
		}
		modules = append(modules, doc.Modules...)
	}

	for _, m := range modules {
		if m == nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: empty module entry", filename)
		}
		m.Source = filename
		switch {
		case m.Directory == "":
			m.Directory = filepath.ToSlash(fileDir)
		case !filepath.IsAbs(m.Directory):
			m.Directory = filepath.ToSlash(filepath.Join(fileDir, m.Directory))
		}
	}

	logger.Debug("Loaded YAML descriptor file.", "file", filename, "modules", len(modules))
	return modules, nil
}
