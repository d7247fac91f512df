package metrics

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/descriptor"
	"github.com/specialistvlad/modgraph/internal/limits"
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/internal/resolver"
	modtestutil "github.com/specialistvlad/modgraph/internal/testutil"
)

func newRecorder(t *testing.T) (*Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)
	return r, reg
}

func TestNewRecorder_DoubleRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}

func TestRecorder_ObserveGraph(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r, reg := newRecorder(t)
	g, err := dag.Build(context.Background(), modtestutil.NewRegistry(t, modtestutil.UIScenario()...))
	require.NoError(t, err)

	// --- Act ---
	done := r.Start()
	r.ObserveGraph(g)
	done()

	// --- Assert ---
	assert.Equal(t, 1.0, testutil.ToFloat64(r.resolutions))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.modules))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.edges.WithLabelValues("public")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.edges.WithLabelValues("private")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.edges.WithLabelValues("dynamic")))

	expected := `
# HELP modgraph_modules Number of modules in the last resolved graph.
# TYPE modgraph_modules gauge
modgraph_modules 5
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "modgraph_modules"))
	count, err := testutil.GatherAndCount(reg, "modgraph_resolution_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_ObserveError(t *testing.T) {
	t.Parallel()

	r, _ := newRecorder(t)

	r.ObserveError(nil)
	r.ObserveError(multierr.Combine(
		&descriptor.InvalidDescriptorError{Module: "A", Problems: []string{"x"}},
		&descriptor.InvalidDescriptorError{Module: "B", Problems: []string{"y"}},
		&registry.DuplicateModuleError{Module: "C"},
	))
	r.ObserveError(fmt.Errorf("building: %w", &resolver.CyclicDependencyError{Path: []string{"A", "A"}}))
	r.ObserveError(fmt.Errorf("invalid module descriptors: %w", multierr.Combine(
		fmt.Errorf("loading: %w", &descriptor.InvalidDescriptorError{Module: "D", Problems: []string{"z"}}),
		&registry.DuplicateModuleError{Module: "E"},
	)))

	assert.Equal(t, 3.0, testutil.ToFloat64(r.errors.WithLabelValues(KindInvalidDescriptor)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.errors.WithLabelValues(KindDuplicateModule)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errors.WithLabelValues(KindCyclicDependency)))
}

func TestKind(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		err  error
		want string
	}{
		{&descriptor.InvalidDescriptorError{Module: "A"}, KindInvalidDescriptor},
		{&registry.DuplicateModuleError{Module: "A"}, KindDuplicateModule},
		{&registry.UnknownModuleError{Module: "A"}, KindUnknownModule},
		{&dag.UnresolvedDependencyError{From: "A", To: "B"}, KindUnresolvedDependency},
		{&resolver.CyclicDependencyError{Path: []string{"A", "A"}}, KindCyclicDependency},
		{fmt.Errorf("linking: %w", &limits.GraphTooLargeError{What: "edges"}), KindGraphTooLarge},
		{fmt.Errorf("boom"), KindOther},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Kind(tc.err))
		})
	}
}
