package plan

import (
	"iter"

	"github.com/specialistvlad/modgraph/internal/descriptor"
)

// Module is the resolved build information of one module.
type Module struct {
	Name              string             `json:"name" yaml:"name"`
	IncludePaths      []string           `json:"include_paths" yaml:"include_paths"`
	LinkList          []string           `json:"link_list" yaml:"link_list"`
	DynamicLoads      []string           `json:"dynamic_loads" yaml:"dynamic_loads"`
	PCHMode           descriptor.PCHMode `json:"pch_mode" yaml:"pch_mode"`
	SharedPCHEligible bool               `json:"shared_pch_eligible" yaml:"shared_pch_eligible"`
}

// Plan is the complete output of one resolution run.
type Plan struct {
	// Order is the global build order.
	Order []string `json:"order" yaml:"order"`
	// Modules holds one entry per module, in build order.
	Modules []*Module `json:"modules" yaml:"modules"`

	byName map[string]*Module
}

// Module returns the entry for name.
func (p *Plan) Module(name string) (*Module, bool) {
	m, ok := p.byName[name]
	return m, ok
}

// Len returns the number of modules in the plan.
func (p *Plan) Len() int {
	return len(p.Modules)
}

// Each yields the modules in build order.
func (p *Plan) Each() iter.Seq[*Module] {
	return func(yield func(*Module) bool) {
		for _, m := range p.Modules {
			if !yield(m) {
				return
			}
		}
	}
}
