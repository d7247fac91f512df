package resolver

import (
	"context"
	"slices"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// Resolver answers ordering and visibility questions about one graph.
type Resolver struct {
	g *dag.Graph
	// names holds every module sorted ascending.
	names []string
}

// Result is everything the plan emitter needs from the resolver.
type Result struct {
	// Order is the global build order: dependencies before dependents.
	Order []string
	// PublicIncludes maps each module to its transitive public include set.
	PublicIncludes map[string][]string

	position map[string]int
}

// Position returns the index of module in Order, or -1.
func (r *Result) Position(module string) int {
	if i, ok := r.position[module]; ok {
		return i
	}
	return -1
}

// New creates a Resolver for g.
func New(g *dag.Graph) *Resolver {
	names := g.Nodes()
	slices.Sort(names)
	return &Resolver{g: g, names: names}
}

// staticDeps returns the distinct link-time dependencies of name, sorted.
func (r *Resolver) staticDeps(name string) []string {
	deps, _ := r.g.Dependencies(name, dag.StaticKinds...)
	slices.Sort(deps)
	return deps
}

// Validate checks that static edges form no cycle. It uses a depth-first
// search with on-stack marking and reports the first cycle found as a
// *CyclicDependencyError.
func (r *Resolver) Validate() error {
	const (
		unvisited = iota
		onStack
		done
	)
	state := make(map[string]int, len(r.names))
	var stack []string

	var visit func(name string) error
	visit = func(name string) error {
		state[name] = onStack
		stack = append(stack, name)

		for _, dep := range r.staticDeps(name) {
			switch state[dep] {
			case onStack:
				start := slices.Index(stack, dep)
				path := append(slices.Clone(stack[start:]), dep)
				return &CyclicDependencyError{Path: path}
			case unvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[name] = done
		return nil
	}

	for _, name := range r.names {
		if state[name] == unvisited {
			if err := visit(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// TopologicalOrder returns every module with each static dependency placed
// before its dependents. Among modules with no ordering constraint between
// them the lower name comes first.
func (r *Resolver) TopologicalOrder() ([]string, error) {
	pending := make(map[string]int, len(r.names))
	dependents := make(map[string][]string, len(r.names))
	for _, name := range r.names {
		deps := r.staticDeps(name)
		pending[name] = len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	ready := &nameQueue{}
	for _, name := range r.names {
		if pending[name] == 0 {
			ready.push(name)
		}
	}

	order := make([]string, 0, len(r.names))
	for ready.Len() > 0 {
		name := ready.pop()
		order = append(order, name)
		for _, dependent := range dependents[name] {
			pending[dependent]--
			if pending[dependent] == 0 {
				ready.push(dependent)
			}
		}
	}

	if len(order) != len(r.names) {
		// Some module never became ready, so a cycle exists. Validate
		// reconstructs its path.
		if err := r.Validate(); err != nil {
			return nil, err
		}
		return nil, &CyclicDependencyError{Path: r.unordered(order)}
	}
	return order, nil
}

func (r *Resolver) unordered(order []string) []string {
	var rest []string
	for _, name := range r.names {
		if !slices.Contains(order, name) {
			rest = append(rest, name)
		}
	}
	return rest
}

// TransitivePublicIncludes returns module's own public include paths
// followed by the public include paths of every module reachable from it
// over PublicLink edges. Private edges stop propagation. The result is
// deduplicated in first-seen order.
func (r *Resolver) TransitivePublicIncludes(module string) ([]string, error) {
	if !r.g.Has(module) {
		return nil, &registry.UnknownModuleError{Module: module}
	}

	var includes []string
	visited := make(map[string]bool)

	var walk func(name string)
	walk = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true

		d, _ := r.g.Descriptor(name)
		for _, p := range d.PublicIncludePaths() {
			if !slices.Contains(includes, p) {
				includes = append(includes, p)
			}
		}

		deps, _ := r.g.Dependencies(name, dag.PublicLink)
		slices.Sort(deps)
		for _, dep := range deps {
			walk(dep)
		}
	}
	walk(module)

	return includes, nil
}

// Resolve validates the graph, computes the global order and the transitive
// public include set of every module.
func (r *Resolver) Resolve(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := r.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Resolve: Cycle detection passed.")

	order, err := r.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolve: Build order computed.", "order", order)

	res := &Result{
		Order:          order,
		PublicIncludes: make(map[string][]string, len(order)),
		position:       make(map[string]int, len(order)),
	}
	for i, name := range order {
		res.position[name] = i
		includes, err := r.TransitivePublicIncludes(name)
		if err != nil {
			return nil, err
		}
		res.PublicIncludes[name] = includes
	}
	logger.Debug("Resolve: Transitive public includes computed.", "modules", len(order))

	return res, nil
}
