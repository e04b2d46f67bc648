// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import "math"

// Set is an ordered mapping from series name to Series. The order of
// the series is the order in which they were added.
//
// A Set is treated as immutable once it has been handed to a chart.
// To change a chart's data, build a new Set and pass it to Update.
type Set struct {
	series []Series
	index  map[string]int
}

// NewSet returns a Set containing the given series, in order. If two
// series have the same name, the later one replaces the earlier one
// but keeps its position.
func NewSet(ss ...Series) *Set {
	s := &Set{index: make(map[string]int)}
	for _, x := range ss {
		s.Add(x.Name, x.Obs...)
	}
	return s
}

// Add appends a series named name to s. If s already has a series
// with that name, its observations are replaced in place.
func (s *Set) Add(name string, obs ...Observation) *Set {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[name]; ok {
		s.series[i].Obs = obs
		return s
	}
	s.index[name] = len(s.series)
	s.series = append(s.series, Series{name, obs})
	return s
}

// Len returns the number of series in s. A nil Set has no series.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.series)
}

// Series returns the i'th series of s. The caller must not modify
// the returned series.
func (s *Set) Series(i int) *Series {
	return &s.series[i]
}

// Names returns the names of the series in s, in order.
func (s *Set) Names() []string {
	names := make([]string, s.Len())
	for i := range names {
		names[i] = s.series[i].Name
	}
	return names
}

// Lookup returns the series named name.
func (s *Set) Lookup(name string) (*Series, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return &s.series[i], true
}

// Universe returns the union of the categories of all series in s,
// in the order each category was first seen, visiting series in
// order and each series' observations in order.
func (s *Set) Universe() []Category {
	var out []Category
	seen := make(map[Category]bool)
	for i := 0; i < s.Len(); i++ {
		for _, o := range s.series[i].Obs {
			if !seen[o.Category] {
				seen[o.Category] = true
				out = append(out, o.Category)
			}
		}
	}
	return out
}

// Observations returns the number of observations across all series
// in s.
func (s *Set) Observations() int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		n += len(s.series[i].Obs)
	}
	return n
}

// Validate checks the invariants of s: no series has two
// observations with the same category, all categories have the same
// kind, and all present values and baselines are finite. It returns
// an *InputError describing the first violation.
func (s *Set) Validate() error {
	var kind Kind
	haveKind := false
	for i := 0; i < s.Len(); i++ {
		ser := &s.series[i]
		seen := make(map[Category]bool, len(ser.Obs))
		for j, o := range ser.Obs {
			if seen[o.Category] {
				return &InputError{ser.Name, j, "duplicate category " + o.Category.String()}
			}
			seen[o.Category] = true

			if !haveKind {
				kind, haveKind = o.Category.Kind(), true
			} else if o.Category.Kind() != kind {
				return &InputError{ser.Name, j, "category " + o.Category.String() + " is a " + o.Category.Kind().String() + ", want " + kind.String()}
			}

			if o.Missing {
				continue
			}
			if !isFinite(o.Value) {
				return &InputError{ser.Name, j, "value is not finite"}
			}
			if !isFinite(o.Baseline) {
				return &InputError{ser.Name, j, "baseline is not finite"}
			}
		}
	}
	return nil
}

// CategoryKind returns the kind of the categories in s. It returns
// KindString for an empty set.
func (s *Set) CategoryKind() Kind {
	for i := 0; i < s.Len(); i++ {
		if len(s.series[i].Obs) > 0 {
			return s.series[i].Obs[0].Category.Kind()
		}
	}
	return KindString
}

func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}
