package dag

import (
	"fmt"

	"github.com/specialistvlad/modgraph/internal/descriptor"
)

// Kind classifies an edge.
type Kind int

const (
	PublicLink Kind = iota
	PrivateLink
	DynamicLoad
)

// StaticKinds are the edge kinds that take part in linking, cycle detection
// and build ordering.
var StaticKinds = []Kind{PublicLink, PrivateLink}

// Static reports whether k is a link-time edge kind.
func (k Kind) Static() bool {
	return k == PublicLink || k == PrivateLink
}

func (k Kind) String() string {
	switch k {
	case PublicLink:
		return "public"
	case PrivateLink:
		return "private"
	case DynamicLoad:
		return "dynamic"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Edge is a directed dependency: From depends on To.
type Edge struct {
	From string
	To   string
	Kind Kind
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -[%s]-> %s", e.From, e.Kind, e.To)
}

// Graph is the module dependency graph of one resolution run.
type Graph struct {
	// nodes is keyed by module name.
	nodes map[string]*node
	// order holds module names in registry order.
	order []string
	// edges holds every edge in insertion order.
	edges []Edge
}

// node is a single module vertex. It is unexported so the graph is only
// queried through module names.
type node struct {
	desc *descriptor.Descriptor
	// out holds edges to this module's dependencies.
	out []Edge
	// in holds edges from modules that depend on this one.
	in []Edge
}

// UnresolvedDependencyError reports an edge whose target module is not registered.
type UnresolvedDependencyError struct {
	From string
	To   string
	Kind Kind
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("module %q declares a %s dependency on unknown module %q", e.From, e.Kind, e.To)
}
