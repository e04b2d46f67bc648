// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/series"
)

// transition is the duration of the animation written for attributes
// that change during an update.
const transition = 100 * time.Millisecond

// Runtime is the state shared by all chart variants: the
// configuration, the current data and scales, the scene, and the
// axes, gridlines, legend and tooltip built around the variant's
// primitives.
type Runtime struct {
	// Config is the chart's configuration. It must not be
	// modified.
	Config Config

	// Data is the data most recently laid out.
	Data *series.Set

	// Doc is the drawing.
	Doc *scene.Doc

	// Plot is the group translated by the top and left margins.
	// Variants add their primitives to it.
	Plot *scene.Node

	// X and Y are the scales of the bottom and left axes. Either
	// may be nil if the variant has no such axis.
	X, Y Scale

	// Width and Height are the size of the plot area.
	Width, Height float64

	// Transition is the duration of attribute transitions for
	// the current pass: 0 while building and a fixed short
	// duration while updating.
	Transition time.Duration

	// XFormat and YFormat are the effective tick formats.
	XFormat, YFormat func(series.Category) string

	xaxis, yaxis, yaxis2 *scene.Node
	grid                 *scene.Node
	legend               *scene.Node
	tooltip              *scene.Node
}

func newRuntime(cfg Config, class string) *Runtime {
	rt := &Runtime{Config: cfg}
	rt.Width, rt.Height = cfg.innerSize()
	rt.XFormat, rt.YFormat = cfg.XTickFormat, cfg.YTickFormat

	rt.Doc = scene.NewDoc(cfg.Width, cfg.Height)
	rt.Doc.Root.Set("class", class).
		Set("viewBox", fmt.Sprintf("0 0 %d %d", cfg.Width, cfg.Height)).
		Set("preserveAspectRatio", "xMinYMid")
	rt.Plot = rt.Doc.Root.Add("g").
		Set("transform", fmt.Sprintf("translate(%s,%s)", scene.FormatFloat(cfg.Margin[3]), scene.FormatFloat(cfg.Margin[0])))
	return rt
}

// Color returns the i'th color of the palette, cycling.
func (rt *Runtime) Color(i int) string {
	c := rt.Config.Colors
	if i < 0 {
		i = -i
	}
	return c[i%len(c)]
}

// Datum describes the data behind a primitive for tooltips and hover
// hooks.
type Datum struct {
	// Series is the name of the series, slice, node or region.
	Series string

	Category series.Category
	Value    float64
	Baseline float64

	// HasCategory is false for primitives that stand for a whole
	// series, such as pie slices.
	HasCategory bool
}

// String formats d as an array, like [category,value] or
// [category,value,baseline].
func (d Datum) String() string {
	v := strconv.FormatFloat(d.Value, 'g', -1, 64)
	if !d.HasCategory {
		return fmt.Sprintf("[%q,%s]", d.Series, v)
	}
	c := d.Category.String()
	if d.Category.Kind() != series.KindNumber {
		c = strconv.Quote(c)
	}
	if d.Baseline != 0 {
		return fmt.Sprintf("[%s,%s,%s]", c, v, strconv.FormatFloat(d.Baseline, 'g', -1, 64))
	}
	return fmt.Sprintf("[%s,%s]", c, v)
}

// Tooltip attaches the tooltip text of d to primitive n, if tooltips
// are enabled.
func (rt *Runtime) Tooltip(n *scene.Node, d Datum) {
	if !rt.Config.Tooltips {
		return
	}
	text := d.String()
	if rt.Config.TooltipFormat != nil {
		text = rt.Config.TooltipFormat(d)
	}
	var title *scene.Node
	for _, c := range n.Children {
		if c.Tag == "title" {
			title = c
		}
	}
	if title == nil {
		title = n.Add("title")
	}
	title.Text = text
	n.Set("style", "cursor:pointer")
}

// mouseover shows the tooltip for d at (x, y), or calls the hover
// hook.
func (rt *Runtime) mouseover(d Datum, x, y float64) {
	if rt.Config.Mouseover != nil {
		rt.Config.Mouseover(d, x, y)
		return
	}
	if !rt.Config.Tooltips {
		return
	}
	text := d.String()
	if rt.Config.TooltipFormat != nil {
		text = rt.Config.TooltipFormat(d)
	}
	if rt.tooltip == nil {
		rt.tooltip = rt.Doc.Root.Add("g").Set("class", "trace-tooltip")
		rt.tooltip.Add("rect").Set("fill", "white").Set("stroke", "#666").SetF("height", 18)
		rt.tooltip.Add("text").SetF("x", 4).SetF("y", 13)
	}
	const pad = 8
	rt.tooltip.Del("display").
		Set("transform", fmt.Sprintf("translate(%s,%s)", scene.FormatFloat(x+10), scene.FormatFloat(y)))
	rt.tooltip.Children[0].SetF("width", float64(7*len(text)+pad))
	rt.tooltip.Children[1].Text = text
}

// mouseout hides the tooltip, or calls the hover hook.
func (rt *Runtime) mouseout(d Datum) {
	if rt.Config.Mouseout != nil {
		rt.Config.Mouseout(d)
		return
	}
	if rt.tooltip != nil {
		rt.tooltip.Set("display", "none")
	}
}
