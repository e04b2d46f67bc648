// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack computes stacked layouts of a series.Set.
//
// Stack produces the ordinary cumulative layout used by stacked bar
// charts. StackDiverging produces the two-sided layout used by
// Likert-style charts, where the first series extends below zero and
// all other series extend above it.
//
// Layouts are computed from scratch on every call and hold no
// reference to the input Set. Callers must treat the result as
// read-only.
package stack

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-trace/series"
)

// Segment is one observation placed in a simple stack.
type Segment struct {
	Category series.Category
	Value    float64

	// Y0 is the offset of the bottom of this segment: the sum of
	// the values of all earlier series at the same category.
	Y0 float64

	// Series is the index of the series this segment belongs to.
	Series int
}

// Top returns the offset of the top of s.
func (s Segment) Top() float64 {
	return s.Y0 + s.Value
}

// Stack lays out set as a simple stack. The result has one entry per
// series, in set order, and each entry has one segment per category
// of set.Universe(), in universe order. A series with no observation
// at a category gets a segment with value 0 there, so all entries
// have the same length. Missing observations also stack as 0.
//
// Values are expected to be non-negative. Stack does not check this;
// a negative value simply produces a smaller Y0 for the following
// series, which makes the visual stack overlap. Use CheckNonNegative
// to reject such input.
func Stack(set *series.Set) [][]Segment {
	universe := set.Universe()
	out := make([][]Segment, set.Len())
	for i := range out {
		out[i] = align(set.Series(i), universe, i)
	}

	// Cumulative offsets per category.
	for j := range universe {
		y0 := 0.0
		for i := range out {
			out[i][j].Y0 = y0
			y0 += out[i][j].Value
		}
	}
	return out
}

// align returns one segment per universe category for ser.
func align(ser *series.Series, universe []series.Category, idx int) []Segment {
	values := make(map[series.Category]float64, len(ser.Obs))
	for _, o := range ser.Obs {
		if !o.Missing {
			values[o.Category] = o.Value
		}
	}
	segs := make([]Segment, len(universe))
	for j, c := range universe {
		segs[j] = Segment{Category: c, Value: values[c], Series: idx}
	}
	return segs
}

// CheckNonNegative returns an *series.InputError for the first
// negative value in set.
func CheckNonNegative(set *series.Set) error {
	for i := 0; i < set.Len(); i++ {
		ser := set.Series(i)
		for j, o := range ser.Obs {
			if !o.Missing && o.Value < 0 {
				return &series.InputError{Series: ser.Name, Index: j, Reason: "negative value in a stacked layout"}
			}
		}
	}
	return nil
}

// Extent returns the range of offsets covered by segs: the minimum
// of all Y0 and the maximum of all tops. It returns 0, 0 for an
// empty layout.
func Extent(segs [][]Segment) (lo, hi float64) {
	var ends []float64
	for _, ser := range segs {
		for _, s := range ser {
			ends = append(ends, s.Y0, s.Top())
		}
	}
	if len(ends) == 0 {
		return 0, 0
	}
	return stats.Bounds(ends)
}

// Totals returns, for each category of the layout, the sum of the
// values stacked at that category.
func Totals(segs [][]Segment) []float64 {
	if len(segs) == 0 {
		return nil
	}
	totals := make([]float64, len(segs[0]))
	for _, ser := range segs {
		for j, s := range ser {
			totals[j] += s.Value
		}
	}
	return totals
}

// abs returns |x| with -0 folded to 0.
func abs(x float64) float64 {
	x = math.Abs(x)
	if x == 0 {
		return 0
	}
	return x
}
