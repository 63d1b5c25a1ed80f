// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import (
	"os"
	"runtime"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-psort/psort/contrib/workerpool"
)

// DefaultThreshold is the slice length above which Sort uses the parallel
// pipeline. At or below it the sequential algorithm runs directly.
const DefaultThreshold = 20000

// Environment variables read by Config.ApplyEnv.
const (
	EnvWorkers   = "PSORT_WORKERS"
	EnvThreshold = "PSORT_THRESHOLD"
)

// Config controls the size policy and the degree of parallelism of the engine.
type Config struct {
	// Threshold is the largest length sorted sequentially. Longer slices go
	// through partition, concurrent sort and merge.
	Threshold int

	// Workers is the number of windows P. Zero means runtime.GOMAXPROCS(0).
	Workers int

	// ParallelMerge runs the merge steps of a pass concurrently. Steps within
	// one pass touch disjoint ranges, so the result does not change.
	ParallelMerge bool

	// Pool, if set, executes worker tasks on persistent goroutines instead of
	// spawning one goroutine per window.
	Pool *workerpool.Pool
}

// DefaultConfig returns the configuration used by Sort.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// Validate reports whether the configuration can be used.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidWorkers, "workers=%d", c.Workers)
	}
	if c.Threshold < 0 {
		return errors.Wrapf(ErrInvalidThreshold, "threshold=%d", c.Threshold)
	}
	return nil
}

// ApplyEnv overrides Workers and Threshold from PSORT_WORKERS and
// PSORT_THRESHOLD when they are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalidWorkers, "%s=%q", EnvWorkers, v)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvThreshold); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalidThreshold, "%s=%q", EnvThreshold, v)
		}
		c.Threshold = n
	}
	return c.Validate()
}

// workers resolves the worker count for a slice of length n: the configured
// count (or GOMAXPROCS), clamped to n so that every window is non-empty.
func (c Config) workers(n int) int {
	p := c.Workers
	if p == 0 {
		if c.Pool != nil {
			p = c.Pool.NumWorkers()
		} else {
			p = runtime.GOMAXPROCS(0)
		}
	}
	return max(min(p, n), 1)
}
