package config

import (
	"errors"

	"github.com/specialistvlad/modgraph/internal/descriptor"
)

// Module is one decoded module declaration.
type Module struct {
	Name string `yaml:"name"`
	// Directory is the module directory. Loaders default it to the
	// directory of the declaring file.
	Directory string `yaml:"directory"`
	// Source is the file the record was read from.
	Source string `yaml:"-"`

	PCHMode string `yaml:"pch_mode"`

	PublicIncludePaths  []string `yaml:"public_include_paths"`
	PrivateIncludePaths []string `yaml:"private_include_paths"`

	PublicDependencies  []string `yaml:"public_dependencies"`
	PrivateDependencies []string `yaml:"private_dependencies"`
	DynamicDependencies []string `yaml:"dynamic_dependencies"`
}

// Descriptor validates the record and converts it. An unknown pch_mode is
// reported together with any other rule violation of the same record.
func (m *Module) Descriptor() (*descriptor.Descriptor, error) {
	mode, pchErr := descriptor.ParsePCHMode(m.PCHMode)

	d, err := descriptor.New(descriptor.Spec{
		Name:                m.Name,
		Directory:           m.Directory,
		Source:              m.Source,
		PublicIncludePaths:  m.PublicIncludePaths,
		PrivateIncludePaths: m.PrivateIncludePaths,
		PublicDependencies:  m.PublicDependencies,
		PrivateDependencies: m.PrivateDependencies,
		DynamicDependencies: m.DynamicDependencies,
		PCHMode:             mode,
	})
	if pchErr == nil {
		return d, err
	}

	var invalid *descriptor.InvalidDescriptorError
	if errors.As(err, &invalid) {
		invalid.Problems = append(invalid.Problems, pchErr.Error())
		return nil, invalid
	}
	return nil, &descriptor.InvalidDescriptorError{
		Module:   m.Name,
		Source:   m.Source,
		Problems: []string{pchErr.Error()},
	}
}
