// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package seqsort provides the single-goroutine, in-place sorting algorithms
// used on each window by package psort.
//
// Both algorithms are unstable and sort ascending under the < and <=
// operators of the element type. For floating point data containing NaN the
// result order is unspecified.
package seqsort

import "golang.org/x/exp/constraints"

// QuickSort sorts data in place with a partition-exchange sort: the last
// element is the pivot, elements <= pivot move to the front in one pass, and
// both sides are sorted the same way.
//
// Average O(n log n), O(n^2) for sorted or adversarial input. Recursion goes
// into the smaller side only, so stack depth stays O(log n).
func QuickSort[T constraints.Ordered](data []T) {
	for len(data) > 1 {
		p := Partition(data)
		left, right := data[:p], data[p+1:]
		if len(left) < len(right) {
			QuickSort(left)
			data = right
		} else {
			QuickSort(right)
			data = left
		}
	}
}

// Partition reorders data around its last element and returns the pivot's
// final index: data[:p] <= pivot < data[p+1:].
// data must not be empty.
func Partition[T constraints.Ordered](data []T) int {
	last := len(data) - 1
	pivot := data[last]
	i := 0
	for j := range last {
		if data[j] <= pivot {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[last] = data[last], data[i]
	return i
}

// HeapSort sorts data in place: build a max-heap bottom-up, then repeatedly
// swap the root behind the shrinking heap. O(n log n) worst case.
func HeapSort[T constraints.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T constraints.Ordered](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			return
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
