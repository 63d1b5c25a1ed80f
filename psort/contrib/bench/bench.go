// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package bench compares single-threaded and multi-threaded sorting.
//
// Run sorts one random data set four times: quick sort and heap sort, each
// through the parallel engine and sequentially, reshuffling the data between
// runs. The Report carries the raw durations together with the unit and
// scaled values a bar chart of them would use.
package bench

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/go-psort/psort"
	"github.com/ajroetker/go-psort/psort/contrib/seqsort"
	"github.com/ajroetker/go-psort/psort/contrib/workerpool"
)

// Mode says whether a run went through the parallel engine.
type Mode int

const (
	Sequential Mode = iota
	Parallel
)

func (m Mode) String() string {
	if m == Parallel {
		return "parallel"
	}
	return "sequential"
}

func (m Mode) title() string {
	if m == Parallel {
		return "Multi-Threaded"
	}
	return "Single-Threaded"
}

// ErrNotSorted is returned when a run leaves the data out of order.
var ErrNotSorted = errors.New("bench: output not sorted")

// Config describes one benchmark.
type Config struct {
	// Size is the number of random values sorted by every run.
	Size int `toml:"size"`
	// MaxValue bounds the random values to [0, MaxValue].
	MaxValue float64 `toml:"max_value"`
	// Seed for the data generator; zero picks a random seed.
	Seed uint64 `toml:"seed"`

	// Workers, Threshold and ParallelMerge configure the parallel runs, see
	// psort.Config. Workers == 0 uses GOMAXPROCS.
	Workers       int  `toml:"workers"`
	Threshold     int  `toml:"threshold"`
	ParallelMerge bool `toml:"parallel_merge"`
	// UsePool runs the parallel sorts on a persistent worker pool.
	UsePool bool `toml:"use_pool"`

	Units UnitThresholds `toml:"units"`
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Size:      100000,
		MaxValue:  10000,
		Threshold: psort.DefaultThreshold,
		Units:     DefaultUnitThresholds(),
	}
}

// Result is one timed sort.
type Result struct {
	Algorithm seqsort.Algorithm `json:"-"`
	Mode      Mode              `json:"-"`
	Label     string            `json:"label"`
	Duration  time.Duration     `json:"duration_ns"`
	// Value is Duration expressed in the report's Unit.
	Value float64 `json:"value"`
}

// Report is the outcome of Run.
type Report struct {
	Host    Host     `json:"host"`
	Size    int      `json:"size"`
	Workers int      `json:"workers"`
	Unit    Unit     `json:"unit"`
	AxisMax float64  `json:"axis_max"`
	Results []Result `json:"results"`
}

// Series returns the results in chart order: single-threaded before
// multi-threaded, quick sort before heap sort.
func (r *Report) Series() []Result {
	var out []Result
	for _, alg := range seqsort.Algorithms {
		for _, mode := range []Mode{Sequential, Parallel} {
			if res, ok := lo.Find(r.Results, func(x Result) bool {
				return x.Algorithm == alg && x.Mode == mode
			}); ok {
				out = append(out, res)
			}
		}
	}
	return out
}

// Label returns the chart label of a run, e.g. "Multi-Threaded Heap Sort".
func Label(alg seqsort.Algorithm, mode Mode) string {
	return mode.title() + " " + alg.Title()
}

type runner struct {
	cfg     psort.Config
	logger  *zap.Logger
	metrics *Metrics
}

// Run executes the benchmark. ctx is checked between runs. metrics may be
// nil. Any engine failure or unsorted output aborts the benchmark.
func Run(ctx context.Context, cfg Config, logger *zap.Logger, metrics *Metrics) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Size < 0 {
		return nil, errors.Errorf("bench: negative size %d", cfg.Size)
	}

	r := runner{
		cfg: psort.Config{
			Threshold:     cfg.Threshold,
			Workers:       cfg.Workers,
			ParallelMerge: cfg.ParallelMerge,
		},
		logger:  logger,
		metrics: metrics,
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.UsePool {
		pool := workerpool.New(cfg.Workers)
		defer pool.Close()
		r.cfg.Pool = pool
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := Generate(rng, cfg.Size, cfg.MaxValue)
	logger.Info("benchmark data generated",
		zap.Int("size", cfg.Size),
		zap.Uint64("seed", seed),
		zap.Int("workers", cfg.Workers),
		zap.Int("threshold", cfg.Threshold))

	report := &Report{
		Host:    DetectHost(),
		Size:    cfg.Size,
		Workers: cfg.Workers,
	}
	if report.Workers == 0 {
		report.Workers = report.Host.GOMAXPROCS
	}
	for i, alg := range seqsort.Algorithms {
		for j, mode := range []Mode{Parallel, Sequential} {
			if i+j > 0 {
				rng.Shuffle(len(data), func(a, b int) { data[a], data[b] = data[b], data[a] })
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := r.timeOne(data, alg, mode)
			if err != nil {
				return nil, err
			}
			report.Results = append(report.Results, res)
		}
	}

	largest := lo.MaxBy(report.Results, func(a, b Result) bool {
		return a.Duration > b.Duration
	}).Duration
	report.Unit = ChooseUnit(largest, cfg.Units)
	report.AxisMax = report.Unit.AxisMax(largest)
	for i := range report.Results {
		report.Results[i].Value = report.Unit.Value(report.Results[i].Duration)
	}
	return report, nil
}

func (r runner) timeOne(data []float64, alg seqsort.Algorithm, mode Mode) (Result, error) {
	res := Result{Algorithm: alg, Mode: mode, Label: Label(alg, mode)}
	fn := seqsort.Func[float64](alg)

	start := time.Now()
	var err error
	if mode == Parallel {
		err = psort.SortWith(r.cfg, data, fn)
	} else {
		err = psort.SortWorkers(data, fn, 1)
	}
	res.Duration = time.Since(start)

	if err == nil && !seqsort.IsSorted(data) {
		err = ErrNotSorted
	}
	r.metrics.observe(res, err)
	if err != nil {
		r.logger.Error("sort failed", zap.String("run", res.Label), zap.Error(err))
		return res, errors.Wrapf(err, "%s", res.Label)
	}
	r.logger.Info("sort finished", zap.String("run", res.Label), zap.Duration("duration", res.Duration))
	return res, nil
}

// Generate returns n values drawn uniformly from [0, maxValue].
func Generate(rng *rand.Rand, n int, maxValue float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64() * maxValue
	}
	return data
}
