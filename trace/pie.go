// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/series"
)

// Pie is a pie chart with one slice per series. The size of a slice
// is the sum of the series' values. Slices are laid out largest first,
// clockwise from twelve o'clock, and colored in series order.
//
// A Pie holds the state of one chart and must not be reused.
type Pie struct {
	slices []pieSlice
	radius float64

	arcs *scene.Node
}

// pieSlice is one laid-out pie slice. Angles are in radians clockwise
// from twelve o'clock.
type pieSlice struct {
	name       string
	value      float64
	start, end float64
}

func (*Pie) Class() string { return "trace-pie" }

func (*Pie) Defaults(cfg *Config) {}

func (p *Pie) Layout(rt *Runtime, data *series.Set) error {
	if data.Len() == 0 {
		return series.Errorf("pie chart requires at least one series")
	}
	values := make([]float64, data.Len())
	for i := range values {
		values[i] = data.Series(i).Sum()
		if values[i] < 0 {
			return &series.InputError{Series: data.Series(i).Name, Index: -1, Reason: "negative pie slice"}
		}
	}
	p.slices = pieLayout(data.Names(), values)
	p.radius = math.Min(rt.Width, rt.Height) / 2
	return nil
}

// pieLayout assigns angles to slices in decreasing order of value.
// Slices with equal values keep their order. The result is in input
// order.
func pieLayout(names []string, values []float64) []pieSlice {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] > values[order[b]] })

	total := vec.Sum(values)
	k := 0.0
	if total > 0 {
		k = 2 * math.Pi / total
	}
	out := make([]pieSlice, len(values))
	a := 0.0
	for _, i := range order {
		out[i] = pieSlice{names[i], values[i], a, a + values[i]*k}
		a += values[i] * k
	}
	return out
}

// arcPath returns the SVG path data of a slice of a circle of radius
// r centered on the origin.
func arcPath(s pieSlice, r float64) string {
	da := s.end - s.start
	if da <= 0 {
		return "M0,0Z"
	}
	if da >= 2*math.Pi-1e-6 {
		// A full circle as two half arcs.
		return fmt.Sprintf("M0,%sA%s,%s 0 1,1 0,%sA%s,%s 0 1,1 0,%sZ",
			ff(r), ff(r), ff(r), ff(-r), ff(r), ff(r), ff(r))
	}
	large := 0
	if da > math.Pi {
		large = 1
	}
	x0, y0 := r*math.Sin(s.start), -r*math.Cos(s.start)
	x1, y1 := r*math.Sin(s.end), -r*math.Cos(s.end)
	return fmt.Sprintf("M%s,%sA%s,%s 0 %d,1 %s,%sL0,0Z", ff(x0), ff(y0), ff(r), ff(r), large, ff(x1), ff(y1))
}

func (p *Pie) Draw(rt *Runtime) {
	r := p.radius
	center := (rt.Width - 2*r) / 2
	p.arcs = rt.Plot.Add("g").Set("class", "trace-arcs").
		Set("transform", fmt.Sprintf("translate(%s,%s)", ff(r+center), ff(r)))
	p.Redraw(rt)
}

func (p *Pie) Redraw(rt *Runtime) {
	names := rt.Data.Names()
	paths := p.arcs.Join("path", names, nil)
	for i, path := range paths {
		s := p.slices[i]
		path.Set("fill", rt.Color(i)).Tween("d", arcPath(s, p.radius), rt.Transition)
		rt.Tooltip(path, Datum{Series: s.name, Value: s.value})
	}
}
