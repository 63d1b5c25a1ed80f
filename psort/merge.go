// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import "golang.org/x/exp/constraints"

// mergePasses turns data, made of sorted runs of length runSize (the last run
// may be longer), into a single sorted run. Each pass merges adjacent pairs
// of runs and doubles the run length.
//
// An oversized last run is not a problem: it is sorted as a whole, so every
// runSize-aligned block inside it is sorted too, which is all a pass needs.
func mergePasses[T constraints.Ordered](cfg Config, data []T, runSize int) error {
	n := len(data)
	if runSize < 1 || n < 2 {
		return nil
	}
	scratch := make([]T, n)

	for m := runSize; m < n; m *= 2 {
		if !cfg.ParallelMerge {
			for i := 0; i < n; i += 2 * m {
				mid := min(i+m, n)
				end := min(mid+m, n)
				if mid < end {
					mergeRuns(data, scratch, i, mid, end)
				}
			}
			continue
		}

		var tasks []func() error
		for i := 0; i < n; i += 2 * m {
			start, mid := i, min(i+m, n)
			end := min(mid+m, n)
			if mid < end {
				tasks = append(tasks, func() error {
					mergeRuns(data, scratch, start, mid, end)
					return nil
				})
			}
		}
		// Pass k+1 reads what pass k wrote, so each pass is joined.
		if err := cfg.forkJoin(tasks); err != nil {
			return err
		}
	}
	return nil
}

// mergeRuns merges the sorted runs data[start:mid] and data[mid:end] through
// scratch[start:end] and copies the result back. Ties take the left element.
func mergeRuns[T constraints.Ordered](data, scratch []T, start, mid, end int) {
	// Bounds are checked once here; the loop below only indexes these
	// capacity-capped views.
	left := data[start:mid:mid]
	right := data[mid:end:end]
	out := scratch[start:end:end]

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out[k] = left[i]
			i++
		} else {
			out[k] = right[j]
			j++
		}
		k++
	}
	k += copy(out[k:], left[i:])
	copy(out[k:], right[j:])

	copy(data[start:end], out)
}
