package registry

import (
	"iter"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"github.com/specialistvlad/modgraph/internal/descriptor"
	"github.com/specialistvlad/modgraph/internal/limits"
)

// Registry maps module names to their descriptors for one resolution run.
// It is not safe for concurrent use; discovery parallelism ends before
// registration begins.
type Registry struct {
	byName  map[string]*descriptor.Descriptor
	ordered []*descriptor.Descriptor
	limits  limits.Limits
	frozen  bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLimits overrides the default size limits.
func WithLimits(l limits.Limits) Option {
	return func(r *Registry) {
		r.limits = l
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		byName: make(map[string]*descriptor.Descriptor),
		limits: limits.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts d. It fails with *DuplicateModuleError if the name is
// taken, with *limits.GraphTooLargeError if the module limit would be
// exceeded and with ErrFrozen after Freeze.
func (r *Registry) Register(d *descriptor.Descriptor) error {
	if r.frozen {
		return ErrFrozen
	}
	if prev, exists := r.byName[d.Name()]; exists {
		return &DuplicateModuleError{Module: d.Name(), Sources: []string{prev.Source(), d.Source()}}
	}
	if err := r.limits.CheckModules(len(r.ordered) + 1); err != nil {
		return err
	}
	r.byName[d.Name()] = d
	r.ordered = append(r.ordered, d)
	return nil
}

// RegisterAll registers every descriptor, continuing past duplicates so all
// of them are reported at once. A size-limit violation stops immediately.
func (r *Registry) RegisterAll(ds ...*descriptor.Descriptor) error {
	var errs error
	for _, d := range ds {
		err := r.Register(d)
		if err == nil {
			continue
		}
		if _, dup := err.(*DuplicateModuleError); !dup {
			return multierr.Append(errs, err)
		}
		errs = multierr.Append(errs, err)
	}
	return errs
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*descriptor.Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, &UnknownModuleError{Module: name}
	}
	return d, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// All yields every descriptor in registration order. The sequence is lazy
// and may be ranged over any number of times.
func (r *Registry) All() iter.Seq[*descriptor.Descriptor] {
	return func(yield func(*descriptor.Descriptor) bool) {
		for _, d := range r.ordered {
			if !yield(d) {
				return
			}
		}
	}
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ordered))
	for d := range r.All() {
		names = append(names, d.Name())
	}
	return names
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Limits returns the size limits the registry was configured with.
func (r *Registry) Limits() limits.Limits {
	return r.limits
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// SortByName returns a copy of ds ordered by module name, so registration
// order does not depend on discovery timing.
func SortByName(ds []*descriptor.Descriptor) []*descriptor.Descriptor {
	out := slices.Clone(ds)
	slices.SortStableFunc(out, func(a, b *descriptor.Descriptor) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}
