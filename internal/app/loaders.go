package app

import (
	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/hcl"
	"github.com/specialistvlad/modgraph/internal/yamlcfg"
)

// defaultLoaders is the list of descriptor formats compiled into the
// modgraph binary.
func defaultLoaders() []config.Loader {
	return []config.Loader{
		hcl.NewLoader(),
		yamlcfg.NewLoader(),
	}
}
