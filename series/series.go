// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series defines the data model shared by all charts: named,
// ordered sequences of observations aligned on a common set of
// categories.
//
// A Set is the input to every chart. Its series are kept in insertion
// order, which is significant: it fixes the stacking order of bar
// charts, the sides of a diverging chart, and the color assigned to
// each series.
package series

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind is the kind of value held by a Category.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Category is a label on the shared axis of a Set. It is a string, a
// number, or a point in time. Categories are comparable with == and
// may be used as map keys; two categories are equal only if they have
// the same kind and value.
type Category struct {
	kind Kind
	s    string
	f    float64
	ns   int64
}

// String returns a string category.
func String(s string) Category {
	return Category{kind: KindString, s: s}
}

// Number returns a numeric category.
func Number(f float64) Category {
	if f == 0 {
		// Fold -0 into 0 so the two compare equal.
		f = 0
	}
	return Category{kind: KindNumber, f: f}
}

// Time returns a time category. Only the instant is kept; the
// location of t is discarded.
func Time(t time.Time) Category {
	return Category{kind: KindTime, ns: t.UnixNano()}
}

// Kind returns the kind of c.
func (c Category) Kind() Kind {
	return c.kind
}

// Float returns the position of c on a continuous axis. For numbers
// this is the number itself and for times it is seconds since the
// Unix epoch. String categories have no position and return NaN.
func (c Category) Float() float64 {
	switch c.kind {
	case KindNumber:
		return c.f
	case KindTime:
		return float64(c.ns) / 1e9
	}
	return math.NaN()
}

// Time returns the instant of a time category, in UTC. It returns the
// zero Time for other kinds.
func (c Category) Time() time.Time {
	if c.kind != KindTime {
		return time.Time{}
	}
	return time.Unix(0, c.ns).UTC()
}

// Key returns a string that identifies c exactly: two categories have
// the same key only if they are equal. Unlike String, it keeps the
// full precision of times.
func (c Category) Key() string {
	switch c.kind {
	case KindNumber:
		return "n" + strconv.FormatFloat(c.f, 'g', -1, 64)
	case KindTime:
		return "t" + strconv.FormatInt(c.ns, 10)
	}
	return "s" + c.s
}

func (c Category) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	case KindTime:
		return c.Time().Format(time.RFC3339)
	}
	return c.s
}

// Observation is one data point of a series.
type Observation struct {
	Category Category

	// Value is the primary value. It is meaningless if Missing
	// is set.
	Value float64

	// Baseline is a secondary value drawn alongside Value, such
	// as a target marker. It is 0 if the input did not supply
	// one.
	Baseline float64

	// Missing indicates that the input explicitly had no value
	// at this category (for example, a JSON null). A missing
	// observation is distinct from an observation with value 0.
	Missing bool
}

// Obs is shorthand for constructing an Observation.
func Obs(c Category, value float64) Observation {
	return Observation{Category: c, Value: value}
}

func (o Observation) String() string {
	if o.Missing {
		return fmt.Sprintf("[%v,null]", o.Category)
	}
	if o.Baseline != 0 {
		return fmt.Sprintf("[%v,%g,%g]", o.Category, o.Value, o.Baseline)
	}
	return fmt.Sprintf("[%v,%g]", o.Category, o.Value)
}

// Series is a named, ordered sequence of observations. The order of
// Obs is the order of the observations along the category axis.
type Series struct {
	Name string
	Obs  []Observation
}

// Lookup returns the observation of s at category c.
func (s *Series) Lookup(c Category) (Observation, bool) {
	for _, o := range s.Obs {
		if o.Category == c {
			return o, true
		}
	}
	return Observation{}, false
}

// Sum returns the sum of the non-missing values of s.
func (s *Series) Sum() float64 {
	var sum float64
	for _, o := range s.Obs {
		if !o.Missing {
			sum += o.Value
		}
	}
	return sum
}
