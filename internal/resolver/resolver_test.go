package resolver

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/descriptor"
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/internal/testutil"
)

func buildGraph(t *testing.T, builders ...*descriptor.Builder) *dag.Graph {
	t.Helper()
	g, err := dag.Build(context.Background(), testutil.NewRegistry(t, builders...))
	require.NoError(t, err)
	return g
}

func TestTopologicalOrder_UIScenario(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, testutil.UIScenario()...)

	order, err := New(g).TopologicalOrder()

	require.NoError(t, err)
	assert.Equal(t, []string{"Core", "Engine", "RHI", "RenderCore", "UI"}, order)
}

func TestTopologicalOrder_TieBreakIgnoresRegistrationOrder(t *testing.T) {
	t.Parallel()

	scenario := testutil.UIScenario()
	for i := 0; i < 10; i++ {
		shuffled := slices.Clone(scenario)
		rand.New(rand.NewSource(int64(i))).Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		order, err := New(buildGraph(t, shuffled...)).TopologicalOrder()
		require.NoError(t, err)
		assert.Equal(t, []string{"Core", "Engine", "RHI", "RenderCore", "UI"}, order)
	}
}

func TestTopologicalOrder_DependenciesComeFirst(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A layered graph where every module depends on a few lower-numbered ones.
	var builders []*descriptor.Builder
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 40; i++ {
		b := descriptor.NewBuilder(fmt.Sprintf("M%02d", i))
		for j := 0; j < i; j++ {
			switch rng.Intn(6) {
			case 0:
				b.PublicDeps(fmt.Sprintf("M%02d", j))
			case 1:
				b.PrivateDeps(fmt.Sprintf("M%02d", j))
			case 2:
				b.DynamicDeps(fmt.Sprintf("M%02d", j))
			}
		}
		builders = append(builders, b)
	}
	g := buildGraph(t, builders...)

	// --- Act ---
	order, err := New(g).TopologicalOrder()

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, order, 40)
	for _, e := range g.Edges() {
		if !e.Kind.Static() {
			continue
		}
		assert.Less(t, slices.Index(order, e.To), slices.Index(order, e.From), "edge %s", e)
	}
}

func TestValidate_StaticCycle(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		builders []*descriptor.Builder
		wantPath []string
	}{
		{
			name: "public back edge",
			builders: []*descriptor.Builder{
				descriptor.NewBuilder("A").PublicDeps("B"),
				descriptor.NewBuilder("B").PublicDeps("A"),
			},
			wantPath: []string{"A", "B", "A"},
		},
		{
			name: "mixed public and private",
			builders: []*descriptor.Builder{
				descriptor.NewBuilder("A").PrivateDeps("B"),
				descriptor.NewBuilder("B").PublicDeps("C"),
				descriptor.NewBuilder("C").PrivateDeps("A"),
			},
			wantPath: []string{"A", "B", "C", "A"},
		},
		{
			name: "cycle away from the first module",
			builders: []*descriptor.Builder{
				descriptor.NewBuilder("A").PublicDeps("X"),
				descriptor.NewBuilder("X").PublicDeps("Y"),
				descriptor.NewBuilder("Y").PublicDeps("X"),
			},
			wantPath: []string{"X", "Y", "X"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := New(buildGraph(t, tc.builders...))

			err := r.Validate()

			var cycle *CyclicDependencyError
			require.True(t, errors.As(err, &cycle), "expected *CyclicDependencyError, got %T", err)
			assert.Equal(t, tc.wantPath, cycle.Path)

			_, err = r.TopologicalOrder()
			assert.True(t, errors.As(err, &cycle), "TopologicalOrder reports the same cycle")
		})
	}
}

func TestValidate_DynamicBackEdgeIsAllowed(t *testing.T) {
	t.Parallel()

	r := New(buildGraph(t,
		descriptor.NewBuilder("A").PublicDeps("B"),
		descriptor.NewBuilder("B").DynamicDeps("A"),
	))

	require.NoError(t, r.Validate())
	order, err := r.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, order)
}

func TestCyclicDependencyError(t *testing.T) {
	t.Parallel()

	err := &CyclicDependencyError{Path: []string{"A", "B", "A"}}
	assert.EqualError(t, err, "cyclic dependency: A -> B -> A")
	assert.Equal(t, []string{"A", "B"}, err.Modules())
}

func TestTransitivePublicIncludes(t *testing.T) {
	t.Parallel()

	g := buildGraph(t,
		descriptor.NewBuilder("App").PublicIncludes("App/Public").PrivateIncludes("App/Private").
			PublicDeps("Lib").PrivateDeps("Impl"),
		descriptor.NewBuilder("Lib").PublicIncludes("Lib/Public").PublicDeps("Base"),
		descriptor.NewBuilder("Base").PublicIncludes("Base/Public"),
		descriptor.NewBuilder("Impl").PublicIncludes("Impl/Public").PublicDeps("Base"),
	)
	r := New(g)

	t.Run("follows public edges only", func(t *testing.T) {
		t.Parallel()
		got, err := r.TransitivePublicIncludes("App")
		require.NoError(t, err)
		assert.Equal(t, []string{"App/Public", "Lib/Public", "Base/Public"}, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		first, err := r.TransitivePublicIncludes("Impl")
		require.NoError(t, err)
		second, err := r.TransitivePublicIncludes("Impl")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, []string{"Impl/Public", "Base/Public"}, first)
	})

	t.Run("unknown module", func(t *testing.T) {
		t.Parallel()
		_, err := r.TransitivePublicIncludes("Nope")
		var unknown *registry.UnknownModuleError
		assert.True(t, errors.As(err, &unknown))
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := New(buildGraph(t, testutil.UIScenario()...))

	res, err := r.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Core", "Engine", "RHI", "RenderCore", "UI"}, res.Order)
	assert.Equal(t, 0, res.Position("Core"))
	assert.Equal(t, 4, res.Position("UI"))
	assert.Equal(t, -1, res.Position("Nope"))
	assert.Equal(t, []string{"UI/Public", "Core/Public", "Engine/Public"}, res.PublicIncludes["UI"])
	assert.Equal(t, []string{"Engine/Public", "Core/Public"}, res.PublicIncludes["Engine"])
	assert.Equal(t, []string{"RHI/Public"}, res.PublicIncludes["RHI"])
}
