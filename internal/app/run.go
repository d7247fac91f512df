package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/specialistvlad/modgraph/internal/dag"
	"github.com/specialistvlad/modgraph/internal/plan"
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/internal/resolver"
)

// Run resolves the configured descriptors and writes the result. Metrics are
// written to Config.MetricsFile, when set, whether or not resolution
// succeeded.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	defer func() {
		if a.config.MetricsFile == "" {
			return
		}
		if werr := a.WriteMetrics(a.config.MetricsFile); werr != nil && err == nil {
			err = werr
		}
	}()

	p, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	if err := a.write(p); err != nil {
		return err
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// Resolve runs every stage up to the emitted plan without writing anything.
func (a *App) Resolve(ctx context.Context) (*plan.Plan, error) {
	ctx = a.Context(ctx)
	done := a.metrics.Start()
	defer done()

	p, err := a.resolve(ctx)
	if err != nil {
		a.metrics.ObserveError(err)
		a.logger.Error("Resolution failed.", "error", err)
		return nil, err
	}
	return p, nil
}

func (a *App) resolve(ctx context.Context) (*plan.Plan, error) {
	lim := a.limits()

	a.logger.Info("Discovering module descriptors...", "paths", a.config.Paths)
	descriptors, localErrs, err := a.discoverer.Discover(ctx, a.config.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load descriptors: %w", err)
	}

	// Valid descriptors are registered even when others failed, so that
	// duplicate names are reported in the same run.
	reg := registry.New(registry.WithLimits(lim))
	if err := reg.RegisterAll(descriptors...); err != nil {
		localErrs = multierr.Append(localErrs, err)
	}
	if localErrs != nil {
		return nil, fmt.Errorf("failed to register descriptors: %w", localErrs)
	}
	a.logger.Info("Descriptors registered.", "modules", reg.Len())

	graph, err := dag.Build(ctx, reg, dag.WithLimits(lim))
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.metrics.ObserveGraph(graph)
	a.logger.Info("Dependency graph built.", "modules", graph.Len(), "edges", graph.EdgeCount())

	res, err := resolver.New(graph).Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependency graph: %w", err)
	}
	a.logger.Info("Dependency graph resolved.", "order", res.Order)

	p, err := plan.Emit(ctx, graph, res)
	if err != nil {
		return nil, fmt.Errorf("failed to emit build plan: %w", err)
	}
	return p, nil
}

func (a *App) write(p *plan.Plan) (err error) {
	w := a.outW
	if a.config.OutPath != "" {
		f, cerr := os.Create(a.config.OutPath)
		if cerr != nil {
			return fmt.Errorf("failed to create output file: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if a.config.Output == OutputOrder {
		return writeOrder(w, p.Order)
	}
	if err := p.Write(w, a.config.Format); err != nil {
		return fmt.Errorf("failed to write build plan: %w", err)
	}
	a.logger.Info("Build plan written.", "modules", p.Len(), "format", a.config.Format)
	return nil
}

func writeOrder(w io.Writer, order []string) error {
	for _, name := range order {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// WriteMetrics writes the App's metrics to path in the Prometheus text
// exposition format.
func (a *App) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, a.metricsReg); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
