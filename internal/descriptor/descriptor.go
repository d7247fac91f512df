package descriptor

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Spec is the plain, author-supplied record a Descriptor is constructed from.
// Loaders produce Specs; nothing downstream of New ever sees one.
type Spec struct {
	Name string
	// Directory is the module directory. Relative include paths are resolved
	// against it when it is set.
	Directory string
	// Source names the file the record was read from, for diagnostics only.
	Source string

	PublicIncludePaths  []string
	PrivateIncludePaths []string

	PublicDependencies  []string
	PrivateDependencies []string
	DynamicDependencies []string

	PCHMode PCHMode
}

// Descriptor is the validated, immutable declaration of one build module.
// All accessors return copies, so callers cannot mutate a registered module.
type Descriptor struct {
	name      string
	directory string
	source    string

	publicIncludes  []string
	privateIncludes []string

	publicDeps  []string
	privateDeps []string
	dynamicDeps []string

	pch PCHMode
}

// New validates spec and returns the resulting Descriptor. Every violated
// rule is collected into a single *InvalidDescriptorError.
func New(spec Spec) (*Descriptor, error) {
	name := strings.TrimSpace(spec.Name)
	v := &validator{module: name, source: spec.Source}

	if name == "" {
		v.addf("module name must not be empty")
	}
	if _, ok := pchNames[spec.PCHMode]; !ok {
		v.addf("pch mode %d is not a known mode", int(spec.PCHMode))
	}

	dir := normalizeSlashes(strings.TrimSpace(spec.Directory))

	d := &Descriptor{
		name:            name,
		directory:       dir,
		source:          spec.Source,
		publicIncludes:  v.paths("public include path", dir, spec.PublicIncludePaths),
		privateIncludes: v.paths("private include path", dir, spec.PrivateIncludePaths),
		publicDeps:      v.deps("public dependency", name, spec.PublicDependencies),
		privateDeps:     v.deps("private dependency", name, spec.PrivateDependencies),
		dynamicDeps:     v.deps("dynamic dependency", name, spec.DynamicDependencies),
		pch:             spec.PCHMode,
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Name returns the module's unique identity.
func (d *Descriptor) Name() string { return d.name }

// Directory returns the module directory, or "" when none was declared.
func (d *Descriptor) Directory() string { return d.directory }

// Source returns the file the descriptor was loaded from, if any.
func (d *Descriptor) Source() string { return d.source }

// PublicIncludePaths returns the include directories exposed to dependents.
func (d *Descriptor) PublicIncludePaths() []string { return slices.Clone(d.publicIncludes) }

// PrivateIncludePaths returns the include directories only this module sees.
func (d *Descriptor) PrivateIncludePaths() []string { return slices.Clone(d.privateIncludes) }

// PublicDependencies returns the sorted set of public link dependencies.
func (d *Descriptor) PublicDependencies() []string { return slices.Clone(d.publicDeps) }

// PrivateDependencies returns the sorted set of private link dependencies.
func (d *Descriptor) PrivateDependencies() []string { return slices.Clone(d.privateDeps) }

// DynamicDependencies returns the sorted set of modules loaded at runtime.
func (d *Descriptor) DynamicDependencies() []string { return slices.Clone(d.dynamicDeps) }

// PCHMode returns the module's precompiled-header policy.
func (d *Descriptor) PCHMode() PCHMode { return d.pch }

// Spec returns a record equivalent to the one the descriptor was built from,
// with paths already normalized.
func (d *Descriptor) Spec() Spec {
	return Spec{
		Name:                d.name,
		Directory:           d.directory,
		Source:              d.source,
		PublicIncludePaths:  d.PublicIncludePaths(),
		PrivateIncludePaths: d.PrivateIncludePaths(),
		PublicDependencies:  d.PublicDependencies(),
		PrivateDependencies: d.PrivateDependencies(),
		DynamicDependencies: d.DynamicDependencies(),
		PCHMode:             d.pch,
	}
}

// String implements fmt.Stringer.
func (d *Descriptor) String() string {
	return fmt.Sprintf("module %q", d.name)
}

// validator accumulates rule violations for one descriptor.
type validator struct {
	module   string
	source   string
	problems []string
}

func (v *validator) addf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &InvalidDescriptorError{Module: v.module, Source: v.source, Problems: v.problems}
}

// paths validates and normalizes an ordered list of include directories.
// Order is preserved; exact duplicates within one list are dropped.
func (v *validator) paths(role, dir string, in []string) []string {
	out := make([]string, 0, len(in))
	for i, p := range in {
		p = strings.TrimSpace(p)
		if p == "" {
			v.addf("%s #%d is empty", role, i+1)
			continue
		}
		p = resolvePath(dir, p)
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

// deps validates a dependency set and returns it sorted and deduplicated.
func (v *validator) deps(role, self string, in []string) []string {
	out := make([]string, 0, len(in))
	for i, name := range in {
		name = strings.TrimSpace(name)
		switch {
		case name == "":
			v.addf("%s #%d is empty", role, i+1)
		case self != "" && name == self:
			v.addf("module lists itself as a %s", role)
		default:
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func normalizeSlashes(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(p))
}

func resolvePath(dir, p string) string {
	p = filepath.ToSlash(p)
	if dir == "" || path.IsAbs(p) || filepath.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(dir, p)
}
