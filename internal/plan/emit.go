package plan

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/resolver"
)

// Emit builds the plan for g from the resolver's result. res must have been
// produced from the same graph.
func Emit(ctx context.Context, g *dag.Graph, res *resolver.Result) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	if g == nil || res == nil {
		return nil, errors.New("emitting a plan requires a graph and a resolution result")
	}
	if len(res.Order) != g.Len() {
		return nil, fmt.Errorf("resolution result covers %d modules, graph has %d", len(res.Order), g.Len())
	}

	p := &Plan{
		Order:   slices.Clone(res.Order),
		Modules: make([]*Module, 0, len(res.Order)),
		byName:  make(map[string]*Module, len(res.Order)),
	}

	for _, name := range res.Order {
		m, err := emitModule(g, res, name)
		if err != nil {
			return nil, fmt.Errorf("emitting module %q: %w", name, err)
		}
		p.Modules = append(p.Modules, m)
		p.byName[name] = m
		logger.Debug("Emit: Module planned.",
			"module", name,
			"includes", len(m.IncludePaths),
			"links", len(m.LinkList),
			"dynamic", len(m.DynamicLoads),
		)
	}

	return p, nil
}

func emitModule(g *dag.Graph, res *resolver.Result, name string) (*Module, error) {
	d, err := g.Descriptor(name)
	if err != nil {
		return nil, err
	}

	var includes []string
	appendUnique := func(paths []string) {
		for _, p := range paths {
			if !slices.Contains(includes, p) {
				includes = append(includes, p)
			}
		}
	}
	appendUnique(d.PublicIncludePaths())
	appendUnique(d.PrivateIncludePaths())

	direct, err := g.Dependencies(name, dag.StaticKinds...)
	if err != nil {
		return nil, err
	}
	for _, dep := range direct {
		inherited, ok := res.PublicIncludes[dep]
		if !ok {
			return nil, fmt.Errorf("no resolved includes for dependency %q", dep)
		}
		appendUnique(inherited)
	}

	links, err := linkClosure(g, res, name)
	if err != nil {
		return nil, err
	}

	dynamic, err := g.Dependencies(name, dag.DynamicLoad)
	if err != nil {
		return nil, err
	}
	slices.Sort(dynamic)

	return &Module{
		Name:              name,
		IncludePaths:      nonNil(includes),
		LinkList:          links,
		DynamicLoads:      dynamic,
		PCHMode:           d.PCHMode(),
		SharedPCHEligible: d.PCHMode().SharesPCH(),
	}, nil
}

// linkClosure returns every module reachable from name over static edges,
// ordered by their position in the global build order.
func linkClosure(g *dag.Graph, res *resolver.Result, name string) ([]string, error) {
	seen := map[string]bool{name: true}
	queue := []string{name}
	links := []string{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		deps, err := g.Dependencies(current, dag.StaticKinds...)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			links = append(links, dep)
			queue = append(queue, dep)
		}
	}

	slices.SortFunc(links, func(a, b string) int {
		return res.Position(a) - res.Position(b)
	})
	return links, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
