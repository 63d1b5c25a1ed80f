// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package seqsort

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for a name it does not
// recognise.
var ErrUnknownAlgorithm = errors.New("seqsort: unknown algorithm")

// Algorithm names one of the sequential sorts in this package.
type Algorithm int

const (
	// Quick is QuickSort.
	Quick Algorithm = iota
	// Heap is HeapSort.
	Heap
)

// Algorithms lists every Algorithm in a fixed order.
var Algorithms = []Algorithm{Quick, Heap}

// String returns the short name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Quick:
		return "quick"
	case Heap:
		return "heap"
	default:
		return "unknown"
	}
}

// Title returns the display name, e.g. "Quick Sort".
func (a Algorithm) Title() string {
	switch a {
	case Quick:
		return "Quick Sort"
	case Heap:
		return "Heap Sort"
	default:
		return "Unknown Sort"
	}
}

// ParseAlgorithm maps "quick" / "quicksort" and "heap" / "heapsort"
// (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quick", "quicksort":
		return Quick, nil
	case "heap", "heapsort":
		return Heap, nil
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Func returns the sort function for a. It panics for an Algorithm value not
// listed in Algorithms.
func Func[T constraints.Ordered](a Algorithm) func([]T) {
	switch a {
	case Quick:
		return QuickSort[T]
	case Heap:
		return HeapSort[T]
	}
	panic("seqsort: unknown algorithm " + a.String())
}
