// Package metrics records resolution-run statistics with the Prometheus
// client library. A Recorder registers its collectors on a caller-supplied
// registry, so tests and the CLI each get isolated metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/descriptor"
	"github.com/specialistvlad/modgraph/internal/limits"
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/internal/resolver"
)

// Error kinds used as the "kind" label of the error counter.
const (
	KindInvalidDescriptor    = "invalid_descriptor"
	KindDuplicateModule      = "duplicate_module"
	KindUnknownModule        = "unknown_module"
	KindUnresolvedDependency = "unresolved_dependency"
	KindCyclicDependency     = "cyclic_dependency"
	KindGraphTooLarge        = "graph_too_large"
	KindOther                = "other"
)

// Recorder holds the collectors of one process or test.
type Recorder struct {
	resolutions prometheus.Counter
	errors      *prometheus.CounterVec
	modules     prometheus.Gauge
	edges       *prometheus.GaugeVec
	duration    prometheus.Histogram
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		resolutions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "modgraph_resolutions_total",
			Help: "Number of resolution runs started.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "modgraph_resolution_errors_total",
			Help: "Number of resolution errors by kind.",
		}, []string{"kind"}),
		modules: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "modgraph_modules",
			Help: "Number of modules in the last resolved graph.",
		}),
		edges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "modgraph_edges",
			Help: "Number of edges by kind in the last resolved graph.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "modgraph_resolution_duration_seconds",
			Help:    "Time taken by a resolution run.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{r.resolutions, r.errors, r.modules, r.edges, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Start counts a new run and returns a function that observes its duration.
func (r *Recorder) Start() (done func()) {
	r.resolutions.Inc()
	timer := prometheus.NewTimer(r.duration)
	return func() { timer.ObserveDuration() }
}

// ObserveGraph records the size of a built graph.
func (r *Recorder) ObserveGraph(g *dag.Graph) {
	r.modules.Set(float64(g.Len()))
	for _, kind := range []dag.Kind{dag.PublicLink, dag.PrivateLink, dag.DynamicLoad} {
		r.edges.WithLabelValues(kind.String()).Set(float64(g.EdgeCount(kind)))
	}
}

// ObserveError counts err under its kind. Aggregated errors count once per
// contained error, also when the aggregate is wrapped.
func (r *Recorder) ObserveError(err error) {
	if err == nil {
		return
	}
	for _, e := range leafErrors(err) {
		r.errors.WithLabelValues(Kind(e)).Inc()
	}
}

// leafErrors flattens err into the errors it aggregates, looking through
// any fmt.Errorf wrapping around a multierr or errors.Join value.
func leafErrors(err error) []error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		var inner []error
		switch multi := e.(type) {
		case interface{ Errors() []error }:
			inner = multi.Errors()
		case interface{ Unwrap() []error }:
			inner = multi.Unwrap()
		default:
			continue
		}
		var out []error
		for _, ie := range inner {
			out = append(out, leafErrors(ie)...)
		}
		return out
	}
	return []error{err}
}

// Kind classifies a resolution error.
func Kind(err error) string {
	var (
		invalid    *descriptor.InvalidDescriptorError
		dup        *registry.DuplicateModuleError
		unknown    *registry.UnknownModuleError
		unresolved *dag.UnresolvedDependencyError
		cycle      *resolver.CyclicDependencyError
		tooLarge   *limits.GraphTooLargeError
	)
	switch {
	case errors.As(err, &invalid):
		return KindInvalidDescriptor
	case errors.As(err, &dup):
		return KindDuplicateModule
	case errors.As(err, &unknown):
		return KindUnknownModule
	case errors.As(err, &unresolved):
		return KindUnresolvedDependency
	case errors.As(err, &cycle):
		return KindCyclicDependency
	case errors.As(err, &tooLarge):
		return KindGraphTooLarge
	}
	return KindOther
}
