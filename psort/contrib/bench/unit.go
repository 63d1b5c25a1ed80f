// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"math"
	"time"
)

// Unit is the time unit a report is expressed in.
type Unit int

const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
)

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "s"
	case Milliseconds:
		return "ms"
	case Microseconds:
		return "µs"
	default:
		return "ns"
	}
}

// MarshalText encodes the unit by its symbol.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// AxisLabel is the y-axis caption for a chart in this unit.
func (u Unit) AxisLabel() string {
	switch u {
	case Seconds:
		return "In Seconds"
	case Milliseconds:
		return "In Milliseconds"
	case Microseconds:
		return "In Microseconds"
	default:
		return "In Nanoseconds"
	}
}

// Value converts d to this unit. Seconds keep their fraction; the smaller
// units are truncated to whole counts.
func (u Unit) Value(d time.Duration) float64 {
	switch u {
	case Seconds:
		return d.Seconds()
	case Milliseconds:
		return float64(d.Milliseconds())
	case Microseconds:
		return float64(d.Microseconds())
	default:
		return float64(d.Nanoseconds())
	}
}

// whole returns d as a whole number of this unit.
func (u Unit) whole(d time.Duration) int64 {
	switch u {
	case Seconds:
		return int64(d / time.Second)
	case Milliseconds:
		return d.Milliseconds()
	case Microseconds:
		return d.Microseconds()
	default:
		return d.Nanoseconds()
	}
}

// AxisMax is the top of the y axis for a chart whose tallest bar is largest:
// 20% headroom over the whole-unit value, rounded.
func (u Unit) AxisMax(largest time.Duration) float64 {
	return math.Round(float64(u.whole(largest)) * 1.2)
}

// UnitThresholds decide which Unit a set of durations is shown in. Each field
// is compared against the largest duration measured in the next smaller unit.
type UnitThresholds struct {
	// Seconds are used when the largest duration exceeds this many ms.
	Millis int64 `toml:"millis"`
	// Milliseconds are used when it exceeds this many µs.
	Micros int64 `toml:"micros"`
	// Microseconds are used when it exceeds this many ns.
	Nanos int64 `toml:"nanos"`
}

// DefaultUnitThresholds switches unit every factor of 1000.
func DefaultUnitThresholds() UnitThresholds {
	return UnitThresholds{Millis: 1000, Micros: 1000, Nanos: 1000}
}

// ChooseUnit picks the unit for a chart whose largest bar is largest.
func ChooseUnit(largest time.Duration, th UnitThresholds) Unit {
	switch {
	case largest.Milliseconds() > th.Millis:
		return Seconds
	case largest.Microseconds() > th.Micros:
		return Milliseconds
	case largest.Nanoseconds() > th.Nanos:
		return Microseconds
	default:
		return Nanoseconds
	}
}
