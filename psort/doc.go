// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package psort sorts large in-memory slices on several cores.
//
// # Algorithm
//
// A slice longer than the configured threshold is cut into P contiguous,
// non-overlapping windows, where P is the worker count. Every window is sorted
// on its own goroutine by a caller-supplied sequential algorithm (see
// package seqsort), and the call waits for all of them. The sorted windows
// are then merged pairwise, doubling the run length on every pass, until one
// sorted run spans the slice.
//
// Shorter slices are sorted by the sequential algorithm directly: below the
// threshold the goroutine and merge overhead is not worth paying.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-psort/psort"
//	    "github.com/ajroetker/go-psort/psort/contrib/seqsort"
//	)
//
//	func Process(data []float64) error {
//	    return psort.Sort(data, seqsort.QuickSort[float64])
//	}
//
// # Concurrency
//
// Windows are the only thing written concurrently, and they never overlap.
// Merge passes run one after another; with Config.ParallelMerge the merges
// inside a pass run concurrently, which does not change the result.
//
// Sort is not stable, because neither algorithm in seqsort is.
package psort
