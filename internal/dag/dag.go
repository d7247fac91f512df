package dag

import (
	"slices"

	"github.com/specialistvlad/modgraph/internal/descriptor"
	"github.com/specialistvlad/modgraph/internal/registry"
)

func newGraph(capacity int) *Graph {
	return &Graph{
		nodes: make(map[string]*node, capacity),
		order: make([]string, 0, capacity),
	}
}

func (g *Graph) addNode(d *descriptor.Descriptor) {
	if _, ok := g.nodes[d.Name()]; ok {
		return
	}
	g.nodes[d.Name()] = &node{desc: d}
	g.order = append(g.order, d.Name())
}

// addEdge links two existing nodes. Callers check existence beforehand.
func (g *Graph) addEdge(e Edge) {
	g.nodes[e.From].out = append(g.nodes[e.From].out, e)
	g.nodes[e.To].in = append(g.nodes[e.To].in, e)
	g.edges = append(g.edges, e)
}

// Len returns the number of modules in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// EdgeCount returns the number of edges of the given kinds, or of all kinds
// when none are given.
func (g *Graph) EdgeCount(kinds ...Kind) int {
	if len(kinds) == 0 {
		return len(g.edges)
	}
	n := 0
	for _, e := range g.edges {
		if slices.Contains(kinds, e.Kind) {
			n++
		}
	}
	return n
}

// Nodes returns every module name in registry order.
func (g *Graph) Nodes() []string {
	return slices.Clone(g.order)
}

// Has reports whether name is a node of the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Descriptor returns the descriptor behind a node.
func (g *Graph) Descriptor(name string) (*descriptor.Descriptor, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, &registry.UnknownModuleError{Module: name}
	}
	return n.desc, nil
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// OutEdges returns the edges from name to its dependencies, restricted to
// kinds when any are given.
func (g *Graph) OutEdges(name string, kinds ...Kind) ([]Edge, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, &registry.UnknownModuleError{Module: name}
	}
	return filterEdges(n.out, kinds), nil
}

// InEdges returns the edges from dependents of name, restricted to kinds when
// any are given.
func (g *Graph) InEdges(name string, kinds ...Kind) ([]Edge, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, &registry.UnknownModuleError{Module: name}
	}
	return filterEdges(n.in, kinds), nil
}

// Dependencies returns the distinct direct dependencies of name over the
// given edge kinds, in edge order.
func (g *Graph) Dependencies(name string, kinds ...Kind) ([]string, error) {
	edges, err := g.OutEdges(name, kinds...)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		if !slices.Contains(out, e.To) {
			out = append(out, e.To)
		}
	}
	return out, nil
}

// Dependents returns the distinct modules that directly depend on name over
// the given edge kinds, in edge order.
func (g *Graph) Dependents(name string, kinds ...Kind) ([]string, error) {
	edges, err := g.InEdges(name, kinds...)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		if !slices.Contains(out, e.From) {
			out = append(out, e.From)
		}
	}
	return out, nil
}

func filterEdges(edges []Edge, kinds []Kind) []Edge {
	if len(kinds) == 0 {
		return slices.Clone(edges)
	}
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if slices.Contains(kinds, e.Kind) {
			out = append(out, e)
		}
	}
	return out
}
