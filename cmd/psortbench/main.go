// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Command psortbench times single-threaded against multi-threaded sorting.
//
// Usage:
//
//	psortbench --size 1000000                  # table on stdout
//	psortbench --size 50000 --workers 4 --format json
//	psortbench --config bench.toml --metrics-file psort.prom
//	psortbench algorithms                      # list sequential algorithms
//
// Settings are read from the TOML file given by --config, then from the
// PSORT_WORKERS and PSORT_THRESHOLD environment variables, then from flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
