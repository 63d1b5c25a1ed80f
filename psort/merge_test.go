// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import (
	"math"
	"math/rand"
	"testing"

	"golang.org/x/exp/slices"
)

func TestMergeRuns(t *testing.T) {
	data := []int{9, 9, 1, 4, 7, 2, 3, 8, 9, 9}
	scratch := make([]int, len(data))

	mergeRuns(data, scratch, 2, 5, 8)

	want := []int{9, 9, 1, 2, 3, 4, 7, 8, 9, 9}
	if !slices.Equal(data, want) {
		t.Errorf("mergeRuns = %v, want %v", data, want)
	}
}

func TestMergeRunsTiesTakeLeft(t *testing.T) {
	// -0 and +0 compare equal but are distinguishable by sign.
	negZero := math.Copysign(0, -1)
	data := []float64{negZero, 1, 0, 2}
	scratch := make([]float64, len(data))

	mergeRuns(data, scratch, 0, 2, 4)

	if !math.Signbit(data[0]) || math.Signbit(data[1]) {
		t.Errorf("tie was not resolved in favour of the left run: %v (signbits %v, %v)",
			data, math.Signbit(data[0]), math.Signbit(data[1]))
	}
	if data[2] != 1 || data[3] != 2 {
		t.Errorf("mergeRuns = %v, want [-0 0 1 2]", data)
	}
}

func TestMergeRunsEmptySide(t *testing.T) {
	data := []int{1, 2, 3}
	scratch := make([]int, 3)
	mergeRuns(data, scratch, 0, 3, 3)
	mergeRuns(data, scratch, 0, 0, 3)
	if !slices.Equal(data, []int{1, 2, 3}) {
		t.Errorf("mergeRuns with an empty run changed data: %v", data)
	}
}

// sortedRuns builds a slice of n values whose runSize-aligned blocks are each
// sorted, with the final block extended to the end like the last window of a
// partition.
func sortedRuns(rng *rand.Rand, n, runs int) ([]int, int) {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(1000)
	}
	for _, w := range Partition(n, runs) {
		slices.Sort(data[w.Start:w.End])
	}
	return data, n / runs
}

func TestMergePasses(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, parallel := range []bool{false, true} {
		cfg := Config{ParallelMerge: parallel}
		for _, tc := range []struct{ n, runs int }{
			{10, 3}, {16, 4}, {17, 4}, {100003, 8}, {1000, 7}, {31, 31}, {2, 2}, {9, 1},
		} {
			data, runSize := sortedRuns(rng, tc.n, tc.runs)
			want := slices.Clone(data)
			slices.Sort(want)

			if err := mergePasses(cfg, data, runSize); err != nil {
				t.Fatalf("mergePasses(n=%d, runs=%d): %v", tc.n, tc.runs, err)
			}
			if !slices.Equal(data, want) {
				t.Errorf("mergePasses(n=%d, runs=%d, parallel=%v) did not sort", tc.n, tc.runs, parallel)
			}
		}
	}
}

func BenchmarkMergePasses(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	base, runSize := sortedRuns(rng, 1<<20, 8)
	data := make([]int, len(base))
	for _, parallel := range []bool{false, true} {
		name := "sequential"
		if parallel {
			name = "parallel"
		}
		b.Run(name, func(b *testing.B) {
			cfg := Config{ParallelMerge: parallel}
			for i := 0; i < b.N; i++ {
				copy(data, base)
				_ = mergePasses(cfg, data, runSize)
			}
		})
	}
}
