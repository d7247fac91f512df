package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/modgraph/internal/app"
)

// Runner executes one validated configuration.
type Runner func(ctx context.Context, cfg *app.Config) error

// options holds the raw flag values shared by all subcommands.
type options struct {
	logFormat   string
	logLevel    string
	workers     int
	maxModules  int
	maxEdges    int
	metricsFile string

	format  string
	outPath string
}

// Execute runs the modgraph command line with args. Results go to outW and
// logs to errW.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	run := func(ctx context.Context, cfg *app.Config) error {
		a, err := app.NewApp(outW, errW, cfg)
		if err != nil {
			return err
		}
		return a.Run(ctx)
	}

	root := NewRootCommand(outW, errW, run)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		// Anything cobra reports itself (unknown commands, bad arity) is a
		// usage problem.
		return usageError(err)
	}
	return nil
}

// NewRootCommand builds the modgraph command tree. run is invoked with the
// validated configuration of the resolve and order subcommands.
func NewRootCommand(outW, errW io.Writer, run Runner) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "modgraph",
		Short: "Resolve build-module descriptors into a build plan",
		Long: `modgraph - resolve build-module descriptors into a build plan.

Module descriptors (*.module.hcl, *.module.yaml) declare include paths,
public and private link dependencies and dynamically loaded modules.
modgraph validates them, builds the dependency graph, rejects cycles and
prints the include paths, link list and PCH eligibility of every module in
a deterministic global build order.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.IntVar(&opts.workers, "workers", 0, "Number of concurrent descriptor parsers. 0 uses GOMAXPROCS.")
	flags.IntVar(&opts.maxModules, "max-modules", 0, "Maximum number of modules. 0 uses the built-in default.")
	flags.IntVar(&opts.maxEdges, "max-edges", 0, "Maximum number of dependency edges. 0 uses the built-in default.")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics of the run to this file.")

	root.AddCommand(newResolveCommand(opts, run), newOrderCommand(opts, run))
	return root
}

func newResolveCommand(opts *options, run Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [PATH...]",
		Short: "Print the build plan of every module",
		Long: `Discover module descriptors below each PATH (default ".") and print the
resolved build plan: the global build order and, per module, its include
paths, link list, dynamic loads and PCH eligibility.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(app.OutputPlan, args)
			if err != nil {
				return err
			}
			return runResolution(cmd.Context(), run, cfg)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Plan output format. Options: 'json' or 'yaml'.")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write the plan to this file instead of stdout.")
	return cmd
}

func newOrderCommand(opts *options, run Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [PATH...]",
		Short: "Print the global build order, one module per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(app.OutputOrder, args)
			if err != nil {
				return err
			}
			return runResolution(cmd.Context(), run, cfg)
		},
	}
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write the order to this file instead of stdout.")
	return cmd
}

func runResolution(ctx context.Context, run Runner, cfg *app.Config) error {
	if err := run(ctx, cfg); err != nil {
		return &ExitError{Code: ExitResolution, Message: err.Error(), Err: err}
	}
	return nil
}

// config builds the application config from the flag values. Validation,
// including the log settings, is left to app.NewConfig.
func (o *options) config(output string, args []string) (*app.Config, error) {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg, err := app.NewConfig(app.Config{
		Paths:       paths,
		Output:      output,
		Format:      o.format,
		OutPath:     o.outPath,
		LogFormat:   o.logFormat,
		LogLevel:    o.logLevel,
		WorkerCount: o.workers,
		MaxModules:  o.maxModules,
		MaxEdges:    o.maxEdges,
		MetricsFile: o.metricsFile,
	})
	if err != nil {
		return nil, usageError(fmt.Errorf("invalid configuration: %w", err))
	}
	return cfg, nil
}
