// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import "github.com/pkg/errors"

// Window is a half-open index range [Start, End) into the slice being sorted.
// Windows returned by Partition never overlap, which is what makes handing
// each one to a different goroutine safe.
type Window struct {
	Start, End int
}

// Len returns the number of elements in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// of returns the part of data covered by w, capacity-capped so that an
// append by the sort function cannot spill into the next window.
func of[T any](data []T, w Window) []T {
	return data[w.Start:w.End:w.End]
}

// Partition splits [0, n) into p contiguous windows. The first p-1 windows
// hold n/p elements each; the last one takes the remainder, so it is at least
// as long as the others.
//
// Partition panics if p < 1 or n < 0.
func Partition(n, p int) []Window {
	if p < 1 || n < 0 {
		panic("psort: Partition requires p >= 1 and n >= 0")
	}
	base := n / p
	windows := make([]Window, p)
	for i := range p - 1 {
		windows[i] = Window{Start: i * base, End: (i + 1) * base}
	}
	windows[p-1] = Window{Start: (p - 1) * base, End: n}
	return windows
}

// checkWindows verifies that windows is an ordered, disjoint cover of [0, n)
// made of non-empty windows.
func checkWindows(windows []Window, n int) error {
	next := 0
	for i, w := range windows {
		if w.Start != next || w.End <= w.Start {
			return errors.Wrapf(ErrOverlappingWindows, "window %d is [%d, %d), expected start %d", i, w.Start, w.End, next)
		}
		next = w.End
	}
	if next != n {
		return errors.Wrapf(ErrOverlappingWindows, "windows end at %d, slice length is %d", next, n)
	}
	return nil
}
