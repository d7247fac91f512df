package descriptor

// Builder assembles a Spec through chained setters and validates it once in
// Build. List setters append, so a builder can be filled incrementally.
type Builder struct {
	spec Spec
}

// NewBuilder starts a descriptor for the named module.
func NewBuilder(name string) *Builder {
	return &Builder{spec: Spec{Name: name}}
}

func (b *Builder) Directory(dir string) *Builder {
	b.spec.Directory = dir
	return b
}

func (b *Builder) Source(file string) *Builder {
	b.spec.Source = file
	return b
}

func (b *Builder) PublicIncludes(paths ...string) *Builder {
	b.spec.PublicIncludePaths = append(b.spec.PublicIncludePaths, paths...)
	return b
}

func (b *Builder) PrivateIncludes(paths ...string) *Builder {
	b.spec.PrivateIncludePaths = append(b.spec.PrivateIncludePaths, paths...)
	return b
}

func (b *Builder) PublicDeps(names ...string) *Builder {
	b.spec.PublicDependencies = append(b.spec.PublicDependencies, names...)
	return b
}

func (b *Builder) PrivateDeps(names ...string) *Builder {
	b.spec.PrivateDependencies = append(b.spec.PrivateDependencies, names...)
	return b
}

func (b *Builder) DynamicDeps(names ...string) *Builder {
	b.spec.DynamicDependencies = append(b.spec.DynamicDependencies, names...)
	return b
}

func (b *Builder) PCH(mode PCHMode) *Builder {
	b.spec.PCHMode = mode
	return b
}

// Build validates the accumulated spec. The builder may be reused afterwards;
// the returned Descriptor does not share memory with it.
func (b *Builder) Build() (*Descriptor, error) {
	return New(b.spec)
}

// MustBuild is like Build but panics on an invalid descriptor. It is meant
// for tests and statically known fixtures.
func (b *Builder) MustBuild() *Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
