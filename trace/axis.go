// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"

	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/series"
)

type orient int

const (
	bottom orient = iota
	left
	right
)

const tickSize = 6

// buildAxes creates the axis groups enabled by the configuration and
// draws them for the current scales.
func (rt *Runtime) buildAxes() {
	cfg := &rt.Config
	if cfg.ShowX && rt.X != nil {
		rt.xaxis = rt.Plot.Add("g").Set("class", "trace-xaxis").
			Set("transform", fmt.Sprintf("translate(0,%s)", scene.FormatFloat(rt.Height)))
	}
	if cfg.ShowY && rt.Y != nil {
		rt.yaxis = rt.Plot.Add("g").Set("class", "trace-yaxis left").
			Set("transform", "translate(0,0)")
	}
	if cfg.ShowY2 && rt.Y != nil {
		rt.yaxis2 = rt.Plot.Add("g").Set("class", "trace-yaxis right").
			Set("transform", fmt.Sprintf("translate(%s,0)", scene.FormatFloat(rt.Width)))
	}
	rt.updateAxes()
}

// updateAxes redraws the ticks of the existing axes and gridlines
// for the current scales.
func (rt *Runtime) updateAxes() {
	cfg := &rt.Config
	if rt.xaxis != nil {
		rt.drawAxis(rt.xaxis, rt.X, bottom, cfg.tickCount(cfg.XTickCount), rt.XFormat)
	}
	if rt.yaxis != nil {
		rt.drawAxis(rt.yaxis, rt.Y, left, cfg.tickCount(cfg.YTickCount), rt.YFormat)
	}
	if rt.yaxis2 != nil {
		rt.drawAxis(rt.yaxis2, rt.Y, right, cfg.tickCount(cfg.YTickCount), rt.YFormat)
	}
	if rt.grid != nil {
		rt.drawGridlines()
	}
}

func (rt *Runtime) drawAxis(g *scene.Node, s Scale, o orient, count int, format func(series.Category) string) {
	if format == nil {
		format = s.Format
	}
	dur := rt.Transition
	r0, r1 := s.Range()

	domain := g.Select("domain")
	if domain == nil {
		domain = g.Add("path").Set("class", "domain").Set("fill", "none").Set("stroke", "#000")
	}
	var d string
	switch o {
	case bottom:
		d = fmt.Sprintf("M%s,%dV0H%sV%d", scene.FormatFloat(r0), tickSize, scene.FormatFloat(r1), tickSize)
	case left:
		d = fmt.Sprintf("M%d,%sH0V%sH%d", -tickSize, scene.FormatFloat(r0), scene.FormatFloat(r1), -tickSize)
	case right:
		d = fmt.Sprintf("M%d,%sH0V%sH%d", tickSize, scene.FormatFloat(r0), scene.FormatFloat(r1), tickSize)
	}
	domain.Tween("d", d, dur)

	ticks := s.Ticks(count)
	keys := make([]string, len(ticks))
	for i, t := range ticks {
		keys[i] = t.Key()
	}
	nodes := g.Join("g", keys, func(i int, tick *scene.Node) {
		tick.Set("class", "tick")
		line := tick.Add("line").Set("stroke", "#000")
		text := tick.Add("text").Set("fill", "#000")
		switch o {
		case bottom:
			line.SetF("y2", tickSize)
			text.SetF("y", tickSize+3).Set("dy", ".71em").Set("text-anchor", "middle")
		case left:
			line.SetF("x2", -tickSize)
			text.SetF("x", -tickSize-3).Set("dy", ".32em").Set("text-anchor", "end")
		case right:
			line.SetF("x2", tickSize)
			text.SetF("x", tickSize+3).Set("dy", ".32em").Set("text-anchor", "start")
		}
	})
	for i, tick := range nodes {
		pos := s.Map(ticks[i])
		line, text := tick.Children[0], tick.Children[1]
		if o == bottom {
			line.TweenF("x1", pos, dur).TweenF("x2", pos, dur)
			text.TweenF("x", pos, dur)
		} else {
			line.TweenF("y1", pos, dur).TweenF("y2", pos, dur)
			text.TweenF("y", pos, dur)
		}
		text.Text = format(ticks[i])
	}
}

// drawGridlines draws a dashed line across the plot at each tick of
// the value axis: the y axis if it is continuous, otherwise the x
// axis.
func (rt *Runtime) drawGridlines() {
	cfg := &rt.Config
	s, horizontal, count := rt.Y, true, cfg.tickCount(cfg.YTickCount)
	if _, ok := s.(*Linear); !ok {
		s, horizontal, count = rt.X, false, cfg.tickCount(cfg.XTickCount)
	}
	if _, ok := s.(*Linear); !ok {
		return
	}
	ticks := s.Ticks(count)
	keys := make([]string, len(ticks))
	for i, t := range ticks {
		keys[i] = t.Key()
	}
	lines := rt.grid.Join("line", keys, func(i int, l *scene.Node) {
		l.Set("class", "trace-gridline").Set("stroke", "#ccc").Set("stroke-dasharray", "1, 1")
	})
	dur := rt.Transition
	for i, l := range lines {
		pos := s.Map(ticks[i])
		if horizontal {
			l.SetF("x1", 0).SetF("x2", rt.Width).TweenF("y1", pos, dur).TweenF("y2", pos, dur)
		} else {
			l.SetF("y1", 0).SetF("y2", rt.Height).TweenF("x1", pos, dur).TweenF("x2", pos, dur)
		}
	}
}

// buildLegend adds a color key for each named series. Series named ""
// or "undefined" are left out.
func (rt *Runtime) buildLegend(names []string) {
	cfg := &rt.Config
	rt.legend = rt.Doc.Root.Add("g").Set("class", "trace-legend").
		Set("transform", fmt.Sprintf("translate(%s,%s)", scene.FormatFloat(float64(cfg.Width)-cfg.Margin[1]-90), scene.FormatFloat(cfg.Margin[0])))
	row := 0
	for i, name := range names {
		if name == "" || name == "undefined" {
			continue
		}
		label := rt.legend.Add("g").Set("class", "label").
			Set("transform", fmt.Sprintf("translate(0,%d)", 16*row))
		label.Add("rect").Set("class", "key").SetF("width", 5).SetF("height", 12).Set("fill", rt.Color(i))
		label.Add("text").SetF("x", 9).SetF("y", 10).Set("fill", "#000").Text = name
		row++
	}
}
