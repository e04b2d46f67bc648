// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-trace/series"
)

// DivergingSegment is one observation placed in a diverging stack.
type DivergingSegment struct {
	Category series.Category

	// Value is the signed value: non-positive for the first
	// series and non-negative for all others.
	Value float64

	// Y0 is the offset from an ordinary zero-offset stack of the
	// signed values. For linear scales it cancels out of the
	// rendered width and is kept only as an additive term.
	Y0 float64

	// Y1 is the lower edge of the value segment.
	Y1 float64

	// Baseline is the signed baseline, following the same sign
	// rule as Value.
	Baseline float64

	// B1 is the lower edge of the baseline segment.
	B1 float64

	Series int
}

// Extreme returns the single coordinate of s that bounds the
// position scale: the far edge of whichever of the value and
// baseline segments is larger in magnitude.
func (s DivergingSegment) Extreme() float64 {
	if math.Abs(s.Value) > math.Abs(s.Baseline) {
		if s.Value > 0 {
			return s.Y1 + s.Value
		}
		return s.Y1
	}
	if s.Baseline > 0 {
		return s.B1 + s.Baseline
	}
	return s.B1
}

// Accumulator carries the running totals of a diverging stack at one
// category. Pos and neg totals for value and baseline segments are
// tracked independently.
type Accumulator struct {
	PosBase, NegBase                 float64
	PosBaselineBase, NegBaselineBase float64
}

// place places a value and a baseline on the negative or positive
// side of a, returning their lower edges and the new totals.
func (a Accumulator) place(neg bool, value, baseline float64) (y1, b1 float64, next Accumulator) {
	size, bsize := abs(value), abs(baseline)
	next = a
	if neg {
		y1 = a.NegBase - size
		b1 = a.NegBaselineBase - bsize
		next.NegBase -= size
		next.NegBaselineBase -= bsize
	} else {
		y1 = a.PosBase
		b1 = a.PosBaselineBase
		next.PosBase += size
		next.PosBaselineBase += bsize
	}
	return
}

// Diverging is the result of StackDiverging.
type Diverging struct {
	// Categories is the category universe of the input.
	Categories []series.Category

	// Series has one entry per input series, each with one
	// segment per category.
	Series [][]DivergingSegment

	// Totals has the final accumulator of each category, in
	// Categories order.
	Totals []Accumulator
}

// StackDiverging lays out set as a two-sided stack. Every value and
// baseline is first reduced to its magnitude; the first series is
// then made negative and all other series positive, so the first
// series extends below zero and the rest accumulate above it.
// Series are aligned on set.Universe() with zero-fill, like Stack.
//
// StackDiverging requires at least one series. A set with exactly
// one series produces a layout with only the negative side
// populated.
func StackDiverging(set *series.Set) (*Diverging, error) {
	if set.Len() == 0 {
		return nil, series.Errorf("diverging stack requires at least one series")
	}

	universe := set.Universe()
	d := &Diverging{
		Categories: universe,
		Series:     make([][]DivergingSegment, set.Len()),
		Totals:     make([]Accumulator, len(universe)),
	}

	for i := range d.Series {
		ser := set.Series(i)
		sign := 1.0
		if i == 0 {
			sign = -1
		}
		obs := make(map[series.Category]series.Observation, len(ser.Obs))
		for _, o := range ser.Obs {
			obs[o.Category] = o
		}
		segs := make([]DivergingSegment, len(universe))
		for j, c := range universe {
			o := obs[c]
			var v, b float64
			if !o.Missing {
				v, b = abs(o.Value), abs(o.Baseline)
			}
			segs[j] = DivergingSegment{
				Category: c,
				Value:    signed(sign, v),
				Baseline: signed(sign, b),
				Series:   i,
			}
		}
		d.Series[i] = segs
	}

	// Fold the accumulators over series, one category at a time.
	for j := range universe {
		var acc Accumulator
		y0 := 0.0
		for i := range d.Series {
			s := &d.Series[i][j]
			s.Y0 = y0
			y0 += s.Value
			// Zero has no sign; take the side from the
			// series index.
			s.Y1, s.B1, acc = acc.place(i == 0, s.Value, s.Baseline)
		}
		d.Totals[j] = acc
	}
	return d, nil
}

func signed(sign, x float64) float64 {
	if x == 0 {
		return 0
	}
	return sign * x
}

// Domain returns the minimum and maximum of Extreme over all
// segments of d. This is the domain of the position scale. It
// returns 0, 0 if d has no segments.
func (d *Diverging) Domain() (lo, hi float64) {
	var xs []float64
	for _, ser := range d.Series {
		for _, s := range ser {
			xs = append(xs, s.Extreme())
		}
	}
	if len(xs) == 0 {
		return 0, 0
	}
	return stats.Bounds(xs)
}
