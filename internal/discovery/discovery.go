// Package discovery finds descriptor files on disk, parses them in parallel
// and returns validated descriptors in a deterministic order.
//
// Parsing is the only concurrent stage of a resolution run. Each file is
// self-contained, so files are handed to a bounded pool of goroutines and
// the results are collected by file index. The descriptors are finally
// sorted by module name, which makes every later stage independent of how
// the parse work happened to be scheduled.
//
// Problems local to one file or one descriptor (syntax errors, invalid
// descriptors) do not stop discovery. Files that fail to parse contribute
// no descriptors; the remaining files are still validated. Discover returns
// the valid descriptors together with the local problems, combined with
// go.uber.org/multierr, so the caller can register the valid ones and
// report duplicate names in the same pass.
package discovery

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/descriptor"
	"github.com/specialistvlad/modgraph/internal/fsutil"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// Discoverer locates and parses descriptor files with a set of loaders.
type Discoverer struct {
	loaders []config.Loader
	workers int
}

// New creates a Discoverer. workers bounds parse parallelism; values below
// one mean runtime.GOMAXPROCS(0).
func New(workers int, loaders ...config.Loader) *Discoverer {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Discoverer{loaders: loaders, workers: workers}
}

// Suffixes returns every file suffix claimed by the configured loaders.
func (d *Discoverer) Suffixes() []string {
	var out []string
	for _, l := range d.loaders {
		out = append(out, l.Extensions()...)
	}
	return out
}

func (d *Discoverer) loaderFor(path string) config.Loader {
	for _, l := range d.loaders {
		for _, ext := range l.Extensions() {
			if strings.HasSuffix(path, ext) {
				return l
			}
		}
	}
	return nil
}

// Files lists the descriptor files below roots.
func (d *Discoverer) Files(roots ...string) ([]string, error) {
	if len(d.loaders) == 0 {
		return nil, fmt.Errorf("discovery: no loaders configured")
	}
	return fsutil.FindFilesBySuffix(roots, d.Suffixes()...)
}

// Discover parses every descriptor file below roots and returns the valid
// descriptors sorted by module name. localErrs aggregates per-file and
// per-descriptor problems; err is set only when discovery itself failed
// (unreadable roots, cancellation), in which case nothing else is returned.
func (d *Discoverer) Discover(ctx context.Context, roots ...string) (descriptors []*descriptor.Descriptor, localErrs error, err error) {
	logger := ctxlog.FromContext(ctx)

	files, err := d.Files(roots...)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered descriptor files.", "count", len(files))

	records, localErrs, err := d.parseAll(ctx, files)
	if err != nil {
		return nil, nil, err
	}

	for _, m := range records {
		desc, derr := m.Descriptor()
		if derr != nil {
			localErrs = multierr.Append(localErrs, derr)
			continue
		}
		descriptors = append(descriptors, desc)
	}

	logger.Debug("Descriptors validated.", "modules", len(descriptors), "problems", len(multierr.Errors(localErrs)))
	return registry.SortByName(descriptors), localErrs, nil
}

// parseAll parses files concurrently. Per-file failures are combined in file
// order into fileErrs; only cancellation aborts the pool and sets err.
func (d *Discoverer) parseAll(ctx context.Context, files []string) (records []*config.Module, fileErrs error, err error) {
	results := make([][]*config.Module, len(files))
	errs := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, file := range files {
		loader := d.loaderFor(file)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = loader.LoadFile(gctx, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return slices.Concat(results...), multierr.Combine(errs...), nil
}
