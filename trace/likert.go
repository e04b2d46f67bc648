// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"math"

	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/series"
	"github.com/aclements/go-trace/stack"
)

// Likert is a horizontal diverging bar chart. The first series
// extends left of zero and all other series extend right of it. Each
// observation's baseline is drawn as a translucent bar alongside its
// value. Categories run down the left axis and values along the
// bottom axis, which is labeled with absolute values.
//
// A Likert holds the state of one chart and must not be reused.
type Likert struct {
	x      *Linear
	y      *Band
	layout *stack.Diverging

	bars *scene.Node
}

func (*Likert) Class() string { return "trace-likert" }

func (*Likert) Defaults(cfg *Config) {
	cfg.ShowX = true
	cfg.ShowY = true
	cfg.Gridlines = true
}

func (l *Likert) Layout(rt *Runtime, data *series.Set) error {
	d, err := stack.StackDiverging(data)
	if err != nil {
		return err
	}
	lo, hi := d.Domain()

	l.layout = d
	l.x = NewLinear(lo, hi, 0, rt.Width)
	l.y = NewBand(d.Categories, 0, rt.Height, 0.1)
	rt.X, rt.Y = l.x, l.y
	return nil
}

func (l *Likert) Draw(rt *Runtime) {
	format := rt.XFormat
	rt.XFormat = func(c series.Category) string {
		c = series.Number(math.Abs(c.Float()))
		if format != nil {
			return format(c)
		}
		return l.x.Format(c)
	}
	l.bars = rt.Plot.Add("g").Set("class", "trace-likertgroups")
	l.Redraw(rt)
}

func (l *Likert) Redraw(rt *Runtime) {
	dur := rt.Transition
	names := rt.Data.Names()
	groups := l.bars.Join("g", names, func(i int, g *scene.Node) {
		g.Set("class", fmt.Sprintf("trace-likertgroup-%d", i))
	})
	band := l.y.Bandwidth()
	for i, g := range groups {
		g.Tween("fill", rt.Color(i), dur)
		segs := l.layout.Series[i]
		keys := make([]string, 0, 2*len(segs))
		for _, s := range segs {
			keys = append(keys, "v"+s.Category.Key(), "b"+s.Category.Key())
		}
		rects := g.Join("rect", keys, func(j int, r *scene.Node) {
			if j%2 == 0 {
				r.Set("class", "y1")
			} else {
				r.Set("class", "y2").Set("opacity", "0.2")
			}
		})
		for j, s := range segs {
			y := l.y.Pos(s.Category)
			value, base := rects[2*j], rects[2*j+1]
			value.TweenF("x", l.x.Of(s.Y1), dur).TweenF("y", y, dur).
				TweenF("width", math.Abs(l.x.Of(s.Value+s.Y0)-l.x.Of(s.Y0)), dur).
				TweenF("height", band, dur)
			base.TweenF("x", l.x.Of(s.B1), dur).TweenF("y", y, dur).
				TweenF("width", math.Abs(l.x.Of(s.Baseline+s.Y0)-l.x.Of(s.Y0)), dur).
				TweenF("height", band, dur)
			d := Datum{Series: names[i], Category: s.Category, Value: s.Value, Baseline: s.Baseline, HasCategory: true}
			rt.Tooltip(value, d)
			rt.Tooltip(base, d)
		}
	}
}
