// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"math"
	"strconv"
	"time"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-trace/series"
)

// A Scale maps categories to pixel positions along one axis.
type Scale interface {
	// Map returns the pixel position of c. For band scales this
	// is the center of c's band.
	Map(c series.Category) float64

	// Ticks returns at most n categories at which to place axis
	// ticks, in increasing order.
	Ticks(n int) []series.Category

	// Range returns the pixel extent of the scale.
	Range() (r0, r1 float64)

	// Format returns the default label of tick c.
	Format(c series.Category) string
}

// Linear is a continuous Scale over numbers or times.
type Linear struct {
	scale.Linear

	// R0 and R1 are the pixel positions of Min and Max.
	R0, R1 float64

	// Time indicates that the domain is Unix seconds and ticks
	// are times.
	Time bool
}

// NewLinear returns a linear scale from [lo, hi] onto [r0, r1]. If the
// domain is empty, it is widened to [lo, lo+1].
func NewLinear(lo, hi, r0, r1 float64) *Linear {
	if !(hi > lo) {
		hi = lo + 1
	}
	return &Linear{Linear: scale.Linear{Min: lo, Max: hi}, R0: r0, R1: r1}
}

// Of returns the pixel position of domain value x.
func (s *Linear) Of(x float64) float64 {
	return s.R0 + s.Linear.Map(x)*(s.R1-s.R0)
}

// Invert returns the domain value at pixel position px.
func (s *Linear) Invert(px float64) float64 {
	return s.Linear.Unmap((px - s.R0) / (s.R1 - s.R0))
}

// Category returns the category at domain value x.
func (s *Linear) Category(x float64) series.Category {
	if s.Time {
		sec, frac := math.Modf(x)
		return series.Time(time.Unix(int64(sec), int64(frac*1e9)))
	}
	return series.Number(x)
}

func (s *Linear) Map(c series.Category) float64 {
	return s.Of(c.Float())
}

func (s *Linear) Range() (r0, r1 float64) {
	return s.R0, s.R1
}

func (s *Linear) Ticks(n int) []series.Category {
	if n < 2 {
		n = 2
	}
	var xs []float64
	if s.Time {
		xs = timeTicks(s.Min, s.Max, n)
	} else {
		xs, _ = s.Linear.Ticks(scale.TickOptions{Max: n})
	}
	out := make([]series.Category, len(xs))
	for i, x := range xs {
		out[i] = s.Category(x)
	}
	return out
}

func (s *Linear) Format(c series.Category) string {
	if c.Kind() == series.KindTime {
		t := c.Time()
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			if s.Max-s.Min > 2*365*24*3600 {
				return t.Format("2006")
			}
			return t.Format("Jan 2")
		}
		return t.Format("15:04")
	}
	return strconv.FormatFloat(c.Float(), 'g', 6, 64)
}

// timeSteps are the candidate tick intervals of a time scale.
var timeSteps = []time.Duration{
	time.Second, 5 * time.Second, 15 * time.Second, 30 * time.Second,
	time.Minute, 5 * time.Minute, 15 * time.Minute, 30 * time.Minute,
	time.Hour, 3 * time.Hour, 6 * time.Hour, 12 * time.Hour,
	24 * time.Hour, 2 * 24 * time.Hour, 7 * 24 * time.Hour,
}

// timeTicks returns at most n tick positions in [lo, hi] (Unix
// seconds) at a round time interval.
func timeTicks(lo, hi float64, n int) []float64 {
	for _, step := range timeSteps {
		sec := step.Seconds()
		first := math.Ceil(lo/sec) * sec
		if int((hi-first)/sec)+1 > n {
			continue
		}
		var out []float64
		for x := first; x <= hi; x += sec {
			out = append(out, x)
		}
		return out
	}
	// Months and years.
	start := time.Unix(int64(lo), 0).UTC()
	end := time.Unix(int64(hi), 0).UTC()
	for _, months := range []int{1, 3, 6, 12, 24, 60, 120} {
		t := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		if months >= 12 {
			t = time.Date(start.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		}
		var out []float64
		for ; !t.After(end); t = t.AddDate(0, months, 0) {
			if !t.Before(start) {
				out = append(out, float64(t.Unix()))
			}
		}
		if len(out) <= n {
			return out
		}
	}
	return []float64{lo, hi}
}

// Band is a Scale that divides a pixel range into equal bands, one
// per category, separated by padding.
type Band struct {
	Domain []series.Category
	R0, R1 float64

	// Padding is the fraction of each step left empty between
	// bands, and half of it at each end.
	Padding float64

	index     map[series.Category]int
	start     float64
	step      float64
	bandwidth float64
}

// NewBand returns a band scale of domain onto [r0, r1] with the given
// padding. Band positions are rounded to whole pixels.
func NewBand(domain []series.Category, r0, r1, padding float64) *Band {
	b := &Band{Domain: domain, R0: r0, R1: r1, Padding: padding}
	b.index = make(map[series.Category]int, len(domain))
	for i, c := range domain {
		if _, ok := b.index[c]; !ok {
			b.index[c] = i
		}
	}
	n := float64(len(domain))
	if n == 0 {
		return b
	}
	b.step = math.Floor((r1 - r0) / (n + padding))
	b.start = r0 + math.Round((r1-r0-(n-padding)*b.step)/2)
	b.bandwidth = math.Round(b.step * (1 - padding))
	return b
}

// Pos returns the start of c's band.
func (b *Band) Pos(c series.Category) float64 {
	i, ok := b.index[c]
	if !ok {
		return b.R0
	}
	return b.start + float64(i)*b.step
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 {
	return b.bandwidth
}

func (b *Band) Map(c series.Category) float64 {
	return b.Pos(c) + b.bandwidth/2
}

func (b *Band) Range() (r0, r1 float64) {
	return b.R0, b.R1
}

// Ticks returns the whole domain. Band axes label every band.
func (b *Band) Ticks(n int) []series.Category {
	return b.Domain
}

func (b *Band) Format(c series.Category) string {
	return c.String()
}

// Quantize maps a continuous domain onto a discrete range of colors
// by dividing the domain into equal segments.
type Quantize struct {
	Min, Max float64
	Colors   []string
}

// Of returns the color of domain value x.
func (q *Quantize) Of(x float64) string {
	k := len(q.Colors)
	if k == 0 {
		return ""
	}
	if !(q.Max > q.Min) {
		return q.Colors[0]
	}
	i := int(math.Floor(float64(k) * (x - q.Min) / (q.Max - q.Min)))
	if i < 0 {
		i = 0
	} else if i >= k {
		i = k - 1
	}
	return q.Colors[i]
}
