package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/modgraph/internal/descriptor"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// NewRegistry registers every builder's descriptor in the given order.
func NewRegistry(t *testing.T, builders ...*descriptor.Builder) *registry.Registry {
	t.Helper()

	reg := registry.New()
	for _, b := range builders {
		d, err := b.Build()
		require.NoError(t, err)
		require.NoError(t, reg.Register(d))
	}
	return reg
}

// UIScenario returns the five-module layout used throughout the tests:
//
//	Core        (no dependencies)
//	Engine      public: Core
//	UI          public: Core, Engine   private: RenderCore, RHI
//	RenderCore  (no dependencies)
//	RHI         (no dependencies)
//
// Every module exposes "<Name>/Public" and keeps "<Name>/Private".
func UIScenario() []*descriptor.Builder {
	mod := func(name string) *descriptor.Builder {
		return descriptor.NewBuilder(name).
			PublicIncludes(name + "/Public").
			PrivateIncludes(name + "/Private")
	}
	return []*descriptor.Builder{
		mod("UI").PublicDeps("Core", "Engine").PrivateDeps("RenderCore", "RHI").PCH(descriptor.PCHUseExplicitOrShared),
		mod("RenderCore"),
		mod("Engine").PublicDeps("Core"),
		mod("RHI"),
		mod("Core"),
	}
}
