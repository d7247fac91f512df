package dag

import (
	"context"
	"fmt"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/descriptor"
	"github.com/specialistvlad/modgraph/internal/limits"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// EdgeFilter decides whether an edge enters the graph.
type EdgeFilter func(Edge) bool

type buildOptions struct {
	limits limits.Limits
	filter EdgeFilter
}

// Option configures Build.
type Option func(*buildOptions)

// WithLimits overrides the size limits taken from the registry.
func WithLimits(l limits.Limits) Option {
	return func(o *buildOptions) {
		o.limits = l
	}
}

// WithEdgeFilter drops every edge for which keep returns false. Filtering
// happens before target resolution, so a filtered edge may name a module
// that is not registered.
func WithEdgeFilter(keep EdgeFilter) Option {
	return func(o *buildOptions) {
		o.filter = keep
	}
}

// Build constructs the dependency graph for every descriptor in reg. The
// registry is frozen as a side effect.
func Build(ctx context.Context, reg *registry.Registry, opts ...Option) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "modules", reg.Len())

	o := buildOptions{limits: reg.Limits()}
	for _, opt := range opts {
		opt(&o)
	}

	reg.Freeze()
	if err := o.limits.CheckModules(reg.Len()); err != nil {
		return nil, err
	}

	// First pass: one node per module.
	g := newGraph(reg.Len())
	for d := range reg.All() {
		g.addNode(d)
	}
	logger.Debug("Build: Node creation complete.", "node_count", g.Len())

	// Second pass: one edge per dependency entry.
	for d := range reg.All() {
		for _, e := range declaredEdges(d) {
			if o.filter != nil && !o.filter(e) {
				logger.Debug("Build: Edge dropped by filter.", "edge", e.String())
				continue
			}
			if !g.Has(e.To) {
				return nil, &UnresolvedDependencyError{From: e.From, To: e.To, Kind: e.Kind}
			}
			if err := o.limits.CheckEdges(len(g.edges) + 1); err != nil {
				return nil, fmt.Errorf("linking module %q: %w", d.Name(), err)
			}
			g.addEdge(e)
		}
	}
	logger.Debug("Build: Node linking complete.",
		"edges", g.EdgeCount(),
		"public", g.EdgeCount(PublicLink),
		"private", g.EdgeCount(PrivateLink),
		"dynamic", g.EdgeCount(DynamicLoad),
	)

	return g, nil
}

// declaredEdges lists the edges d declares: public, then private, then
// dynamic, each in sorted target order.
func declaredEdges(d *descriptor.Descriptor) []Edge {
	var edges []Edge
	add := func(kind Kind, targets []string) {
		for _, to := range targets {
			edges = append(edges, Edge{From: d.Name(), To: to, Kind: kind})
		}
	}
	add(PublicLink, d.PublicDependencies())
	add(PrivateLink, d.PrivateDependencies())
	add(DynamicLoad, d.DynamicDependencies())
	return edges
}
