package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/specialistvlad/modgraph/internal/descriptor"
	"github.com/specialistvlad/modgraph/internal/limits"
)

func mod(name string) *descriptor.Descriptor {
	return descriptor.NewBuilder(name).MustBuild()
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("lookup after register", func(t *testing.T) {
		t.Parallel()
		r := New()
		require.NoError(t, r.Register(mod("Core")))

		d, err := r.Lookup("Core")
		require.NoError(t, err)
		assert.Equal(t, "Core", d.Name())
		assert.True(t, r.Has("Core"))
		assert.Equal(t, 1, r.Len())
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		r := New()
		require.NoError(t, r.Register(descriptor.NewBuilder("Core").Source("a.hcl").MustBuild()))

		err := r.Register(descriptor.NewBuilder("Core").Source("b.hcl").MustBuild())

		var dup *DuplicateModuleError
		require.True(t, errors.As(err, &dup), "expected *DuplicateModuleError, got %T", err)
		assert.Equal(t, "Core", dup.Module)
		assert.EqualError(t, err, `duplicate module "Core": declared in a.hcl and b.hcl`)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("unknown module", func(t *testing.T) {
		t.Parallel()
		_, err := New().Lookup("Missing")

		var unknown *UnknownModuleError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "Missing", unknown.Module)
	})

	t.Run("frozen registry rejects registration", func(t *testing.T) {
		t.Parallel()
		r := New()
		r.Freeze()
		assert.ErrorIs(t, r.Register(mod("Core")), ErrFrozen)
	})

	t.Run("module limit", func(t *testing.T) {
		t.Parallel()
		r := New(WithLimits(limits.Limits{MaxModules: 1}))
		require.NoError(t, r.Register(mod("A")))

		err := r.Register(mod("B"))

		var tooLarge *limits.GraphTooLargeError
		require.True(t, errors.As(err, &tooLarge))
		assert.Equal(t, "modules", tooLarge.What)
		assert.Equal(t, 1, tooLarge.Limit)
	})
}

func TestRegisterAll_ReportsEveryDuplicate(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := New()

	// --- Act ---
	err := r.RegisterAll(mod("A"), mod("B"), mod("A"), mod("C"), mod("B"))

	// --- Assert ---
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	var first, second *DuplicateModuleError
	require.True(t, errors.As(errs[0], &first))
	require.True(t, errors.As(errs[1], &second))
	assert.Equal(t, "A", first.Module)
	assert.Equal(t, "B", second.Module)
	assert.Equal(t, []string{"A", "B", "C"}, r.Names(), "non-duplicates are still registered")
}

func TestAll_IsRestartableAndOrdered(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.RegisterAll(mod("Zeta"), mod("Alpha"), mod("Mid")))

	collect := func() []string {
		var names []string
		for d := range r.All() {
			names = append(names, d.Name())
		}
		return names
	}

	want := []string{"Zeta", "Alpha", "Mid"}
	assert.Equal(t, want, collect())
	assert.Equal(t, want, collect(), "second pass yields the same sequence")

	for d := range r.All() {
		assert.Equal(t, "Zeta", d.Name())
		break
	}
}

func TestSortByName(t *testing.T) {
	t.Parallel()

	in := []*descriptor.Descriptor{mod("RHI"), mod("Core"), mod("RenderCore")}
	out := SortByName(in)

	var names []string
	for _, d := range out {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"Core", "RHI", "RenderCore"}, names)
	assert.Equal(t, "RHI", in[0].Name(), "input slice is left untouched")
}
