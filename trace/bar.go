// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/series"
	"github.com/aclements/go-trace/stack"
)

// Bar is a stacked bar chart. Every series contributes one bar
// segment to each category, stacked in series order. Values must not
// be negative.
//
// A Bar holds the state of one chart and must not be reused.
type Bar struct {
	x    *Band
	y    *Linear
	segs [][]stack.Segment

	bars *scene.Node
}

func (*Bar) Class() string { return "trace-barchart" }

func (*Bar) Defaults(cfg *Config) {
	cfg.ShowX = true
	cfg.ShowY = true
	cfg.Gridlines = true
}

func (b *Bar) Layout(rt *Runtime, data *series.Set) error {
	if data.Len() == 0 {
		return series.Errorf("bar chart requires at least one series")
	}
	if err := stack.CheckNonNegative(data); err != nil {
		return err
	}
	segs := stack.Stack(data)
	_, hi := stack.Extent(segs)

	b.segs = segs
	b.x = NewBand(data.Universe(), 0, rt.Width, 0.1)
	b.y = NewLinear(0, hi, rt.Height, 0)
	rt.X, rt.Y = b.x, b.y
	return nil
}

func (b *Bar) Draw(rt *Runtime) {
	b.bars = rt.Plot.Add("g").Set("class", "trace-bars")
	b.Redraw(rt)
}

func (b *Bar) Redraw(rt *Runtime) {
	dur := rt.Transition
	names := rt.Data.Names()
	groups := b.bars.Join("g", names, func(i int, g *scene.Node) {
		g.Set("class", "trace-bargroup")
	})
	for i, g := range groups {
		g.Tween("fill", rt.Color(i), dur)
		keys := make([]string, len(b.segs[i]))
		for j, s := range b.segs[i] {
			keys[j] = s.Category.Key()
		}
		class := "trace-" + names[i]
		rects := g.Join("rect", keys, func(_ int, r *scene.Node) {
			r.Set("class", class)
		})
		for j, s := range b.segs[i] {
			top := b.y.Of(s.Top())
			rects[j].TweenF("x", b.x.Pos(s.Category), dur).
				TweenF("y", top, dur).
				TweenF("height", b.y.Of(s.Y0)-top, dur).
				TweenF("width", b.x.Bandwidth(), dur)
			rt.Tooltip(rects[j], Datum{Series: names[i], Category: s.Category, Value: s.Value, HasCategory: true})
		}
	}
}
