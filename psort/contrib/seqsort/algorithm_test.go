// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package seqsort

import (
	"errors"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"quick":     Quick,
		"QuickSort": Quick,
		" heap ":    Heap,
		"heapsort":  Heap,
	}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseAlgorithm("bogo"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("ParseAlgorithm(bogo) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestAlgorithmNames(t *testing.T) {
	for _, a := range Algorithms {
		back, err := ParseAlgorithm(a.String())
		if err != nil || back != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a.String(), back, err)
		}
	}
	if Quick.Title() != "Quick Sort" || Heap.Title() != "Heap Sort" {
		t.Errorf("unexpected titles %q, %q", Quick.Title(), Heap.Title())
	}
}

func TestFuncUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Func(Algorithm(42)) should panic")
		}
	}()
	Func[int](Algorithm(42))
}
