// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/ajroetker/go-psort/psort"
	"github.com/ajroetker/go-psort/psort/contrib/bench"
	"github.com/ajroetker/go-psort/psort/contrib/seqsort"
)

type options struct {
	configFile    string
	size          int
	workers       int
	threshold     int
	seed          uint64
	parallelMerge bool
	usePool       bool
	format        string
	metricsFile   string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&options{})
}

// buildRootCmd binds the root command's flags to opts.
func buildRootCmd(opts *options) *cobra.Command {
	def := bench.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "psortbench",
		Short:         "Compare single-threaded and multi-threaded sorting",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "TOML file with benchmark settings")
	f.IntVar(&opts.size, "size", def.Size, "number of random values to sort")
	f.IntVar(&opts.workers, "workers", def.Workers, "parallel workers (0 = available parallelism)")
	f.IntVar(&opts.threshold, "threshold", def.Threshold, "largest length sorted without the parallel pipeline")
	f.Uint64Var(&opts.seed, "seed", def.Seed, "random seed (0 = random)")
	f.BoolVar(&opts.parallelMerge, "parallel-merge", def.ParallelMerge, "run the merges of each pass concurrently")
	f.BoolVar(&opts.usePool, "pool", def.UsePool, "run parallel sorts on a persistent worker pool")
	f.StringVar(&opts.format, "format", "table", "output format: table or json")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every run")

	cmd.AddCommand(newAlgorithmsCmd())
	return cmd
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the sequential sort algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, a := range seqsort.Algorithms {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", a, a.Title())
			}
		},
	}
}

// loadConfig layers the config file, the environment and explicitly set
// flags, in that order, over bench.DefaultConfig.
func loadConfig(cmd *cobra.Command, opts *options) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if opts.configFile != "" {
		if _, err := toml.DecodeFile(opts.configFile, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "read config %s", opts.configFile)
		}
	}

	engine := psort.Config{Workers: cfg.Workers, Threshold: cfg.Threshold}
	if err := engine.ApplyEnv(); err != nil {
		return cfg, err
	}
	cfg.Workers, cfg.Threshold = engine.Workers, engine.Threshold

	f := cmd.Flags()
	if f.Changed("size") {
		cfg.Size = opts.size
	}
	if f.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if f.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("parallel-merge") {
		cfg.ParallelMerge = opts.parallelMerge
	}
	if f.Changed("pool") {
		cfg.UsePool = opts.usePool
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zc.Build()
}

func run(cmd *cobra.Command, cfg bench.Config, opts *options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	defer func() { _ = logger.Sync() }()

	undo, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Infof))
	defer undo()
	if err != nil {
		logger.Warn("failed to set GOMAXPROCS from cgroup quota", zap.Error(err))
	}

	var write func(io.Writer, *bench.Report) error
	switch opts.format {
	case "table":
		write = writeTable
	case "json":
		write = writeJSON
	default:
		return errors.Errorf("unknown format %q", opts.format)
	}

	reg := prometheus.NewRegistry()
	metrics, err := bench.NewMetrics(reg)
	if err != nil {
		return err
	}

	report, err := bench.Run(cmd.Context(), cfg, logger, metrics)
	if err != nil {
		return err
	}

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return errors.Wrapf(err, "write metrics to %s", opts.metricsFile)
		}
	}
	return write(cmd.OutOrStdout(), report)
}
