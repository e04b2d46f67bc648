// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/series"
)

// Line is a line chart. Each series is drawn as a line over a
// translucent area, with an optional marker at each point. Categories
// must be numbers or times; times get a time axis. Missing
// observations break the line.
//
// A Line holds the state of one chart and must not be reused.
type Line struct {
	x, y *Linear

	lines  *scene.Node
	extent *scene.Node
}

func (*Line) Class() string { return "trace-linegraph" }

func (*Line) Defaults(cfg *Config) {
	cfg.ShowX = true
	cfg.ShowY = true
	cfg.Gridlines = true
	cfg.Interpolate = InterpolateLinear
}

func (l *Line) Layout(rt *Runtime, data *series.Set) error {
	if data.Len() == 0 {
		return series.Errorf("line chart requires at least one series")
	}
	kind := data.CategoryKind()
	if kind == series.KindString && data.Observations() > 0 {
		return series.Errorf("line chart categories must be numbers or times")
	}

	var xs, ys []float64
	for i := 0; i < data.Len(); i++ {
		ser := data.Series(i)
		present := 0
		for _, o := range ser.Obs {
			xs = append(xs, o.Category.Float())
			if !o.Missing {
				ys = append(ys, o.Value)
				present++
			}
		}
		if present == 1 {
			Warning.Printf("series %q has only one point; its line will not be visible", ser.Name)
		}
	}
	xlo, xhi := 0.0, 1.0
	if len(xs) > 0 {
		xlo, xhi = stats.Bounds(xs)
	}
	ylo, yhi := 0.0, 1.0
	if len(ys) > 0 {
		ylo, yhi = stats.Bounds(ys)
		if ylo > 0 {
			ylo = 0
		}
	}

	x := NewLinear(xlo, xhi, 0, rt.Width)
	x.Time = kind == series.KindTime
	y := NewLinear(ylo, yhi, rt.Height, 0)
	l.x, l.y = x, y
	rt.X, rt.Y = x, y
	return nil
}

func (l *Line) Draw(rt *Runtime) {
	l.lines = rt.Plot.Add("g").Set("class", "trace-lines")
	if rt.Config.Brush != nil {
		g := rt.Plot.Add("g").Set("class", "brush")
		l.extent = g.Add("rect").Set("class", "extent").
			SetF("x", 0).SetF("width", 0).SetF("height", rt.Height).
			Set("fill", "#777").Set("fill-opacity", "0.125")
	}
	l.Redraw(rt)
}

func (l *Line) Redraw(rt *Runtime) {
	data, dur := rt.Data, rt.Transition
	names := data.Names()
	groups := l.lines.Join("g", names, func(i int, g *scene.Node) {
		class := "trace-" + names[i]
		g.Add("path").Set("class", class).Set("stroke-width", "2px").Set("fill", "none")
		g.Add("path").Set("class", "area").Set("opacity", "0.2")
		g.Add("g").Set("class", "points")
		g.Add("g").Set("class", "hover")
	})

	for i, g := range groups {
		ser := data.Series(i)
		color := rt.Color(i)
		runs := l.runs(ser)

		line, area := g.Children[0], g.Children[1]
		line.Set("stroke", color).Tween("d", linePath(runs, rt.Config.Interpolate), dur)
		area.Set("fill", color).Tween("d", areaPath(runs, rt.Config.Interpolate, rt.Height), dur)

		if !rt.Config.Points {
			continue
		}
		var keys []string
		var obs []series.Observation
		for _, o := range ser.Obs {
			if !o.Missing {
				keys = append(keys, o.Category.Key())
				obs = append(obs, o)
			}
		}
		class := "trace-" + ser.Name
		points := g.Children[2].Join("circle", keys, func(_ int, c *scene.Node) {
			c.Set("class", class).SetF("r", 3)
		})
		hovers := g.Children[3].Join("circle", keys, func(_ int, c *scene.Node) {
			c.Set("class", class).SetF("r", 6).Set("fill", "white").Set("opacity", "0")
		})
		for j, o := range obs {
			cx, cy := l.x.Map(o.Category), l.y.Of(o.Value)
			points[j].Set("fill", color).TweenF("cx", cx, dur).TweenF("cy", cy, dur)
			hovers[j].TweenF("cx", cx, dur).TweenF("cy", cy, dur)
			rt.Tooltip(hovers[j], Datum{Series: ser.Name, Category: o.Category, Value: o.Value, Baseline: o.Baseline, HasCategory: true})
		}
	}
}

// runs returns the pixel positions of ser split at missing
// observations.
func (l *Line) runs(ser *series.Series) [][]pt {
	var runs [][]pt
	var cur []pt
	for _, o := range ser.Obs {
		if o.Missing {
			if len(cur) > 0 {
				runs = append(runs, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, pt{l.x.Map(o.Category), l.y.Of(o.Value)})
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

func (l *Line) brush(rt *Runtime, x0, x1 float64) (lo, hi series.Category) {
	clamp := func(x float64) float64 {
		if x < 0 {
			return 0
		} else if x > rt.Width {
			return rt.Width
		}
		return x
	}
	x0, x1 = clamp(x0), clamp(x1)
	if l.extent != nil {
		l.extent.SetF("x", x0).SetF("width", x1-x0)
	}
	return l.x.Category(l.x.Invert(x0)), l.x.Category(l.x.Invert(x1))
}

type pt struct{ x, y float64 }

func ff(v float64) string { return scene.FormatFloat(v) }

// curve appends the top edge of run to b, starting with a move to the
// first point, using interpolation mode.
func curve(b *strings.Builder, run []pt, mode string) {
	b.WriteString("M" + ff(run[0].x) + "," + ff(run[0].y))
	for i := 1; i < len(run); i++ {
		p0, p1 := run[i-1], run[i]
		switch mode {
		case InterpolateStep:
			mid := (p0.x + p1.x) / 2
			b.WriteString("H" + ff(mid) + "V" + ff(p1.y) + "H" + ff(p1.x))
		case InterpolateStepBefore:
			b.WriteString("V" + ff(p1.y) + "H" + ff(p1.x))
		case InterpolateStepAfter:
			b.WriteString("H" + ff(p1.x) + "V" + ff(p1.y))
		default:
			b.WriteString("L" + ff(p1.x) + "," + ff(p1.y))
		}
	}
}

// linePath returns the SVG path data of a line through runs.
func linePath(runs [][]pt, mode string) string {
	var b strings.Builder
	for _, run := range runs {
		curve(&b, run, mode)
	}
	return b.String()
}

// areaPath returns the SVG path data of the area between runs and
// the horizontal line y = base.
func areaPath(runs [][]pt, mode string, base float64) string {
	var b strings.Builder
	for _, run := range runs {
		curve(&b, run, mode)
		b.WriteString("V" + ff(base) + "H" + ff(run[0].x) + "Z")
	}
	return b.String()
}
