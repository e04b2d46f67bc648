// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace draws declarative charts of series data as SVG.
//
// A chart is created with New from a Variant (Line, Bar, Pie,
// Likert, Force or Choropleth) and a Config, usually obtained from
// DefaultConfig and then adjusted. New validates the configuration and
// the data, lays out the chart and draws it. Update replaces the data
// and redraws only what depends on it: the primitives, axes and
// gridlines move to their new positions with a short transition,
// while the structure of the axes and the legend are kept.
//
// For example,
//
//	cfg := trace.DefaultConfig(&trace.Bar{})
//	cfg.Data = set
//	c, err := trace.New(&trace.Bar{}, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c.WriteSVG(os.Stdout)
package trace

import (
	"errors"
	"io"

	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/series"
)

// A Variant is a kind of chart. Variants are driven by Chart: Layout
// computes scales and layout from data, Draw creates the variant's
// primitives the first time the chart is drawn, and Redraw updates
// them after a later Layout.
//
// Layout must either succeed or leave the variant and the runtime
// unchanged.
type Variant interface {
	// Class is the class of the chart's <svg> element.
	Class() string

	// Defaults sets the variant's default options in cfg.
	Defaults(cfg *Config)

	Layout(rt *Runtime, data *series.Set) error
	Draw(rt *Runtime)
	Redraw(rt *Runtime)
}

// zoomer is implemented by variants that support Chart.Zoom.
type zoomer interface {
	zoom(rt *Runtime, k, tx, ty float64)
}

// brusher is implemented by variants that support Chart.Brush.
type brusher interface {
	brush(rt *Runtime, x0, x1 float64) (lo, hi series.Category)
}

type state int

const (
	stateInitial state = iota
	stateRendered
)

// A Chart is a drawn chart of one Variant.
type Chart struct {
	v     Variant
	rt    *Runtime
	state state
}

// New validates cfg, lays out cfg.Data with v and draws the chart.
// It returns an error matching ErrConfig for an invalid configuration
// and an error matching series.ErrInvalidInput for data v cannot
// chart. On error, nothing is drawn.
func New(v Variant, cfg Config) (*Chart, error) {
	if err := cfg.validate(v); err != nil {
		return nil, err
	}
	cfg = cfg.clone()
	c := &Chart{v: v, rt: newRuntime(cfg, v.Class())}
	if err := c.build(cfg.Data); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Chart) build(data *series.Set) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rt := c.rt
	if err := c.v.Layout(rt, data); err != nil {
		return err
	}
	rt.Data = data

	if rt.Config.Gridlines {
		// Before the primitives, so they are drawn underneath.
		rt.grid = rt.Plot.Add("g").Set("class", "trace-gridlines")
	}
	c.v.Draw(rt)
	rt.buildAxes()
	if rt.Config.Legend && data.Len() > 0 {
		rt.buildLegend(data.Names())
	}
	c.state = stateRendered
	return nil
}

// Update replaces the chart's data with data and redraws it. If data
// is nil, the current data is laid out again. If data cannot be
// charted, Update returns an error and the chart is unchanged.
func (c *Chart) Update(data *series.Set) error {
	if c.state != stateRendered {
		return errors.New("trace: Update of a chart that was not created with New")
	}
	rt := c.rt
	if data == nil {
		data = rt.Data
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := c.v.Layout(rt, data); err != nil {
		return err
	}
	rt.Data = data

	rt.Doc.Root.ClearTransitions()
	rt.Transition = transition
	c.v.Redraw(rt)
	rt.updateAxes()
	rt.Transition = 0
	return nil
}

// Doc returns the chart's drawing.
func (c *Chart) Doc() *scene.Doc {
	return c.rt.Doc
}

// Runtime returns the state shared by the chart and its variant.
func (c *Chart) Runtime() *Runtime {
	return c.rt
}

// WriteSVG writes the chart to w as an SVG document.
func (c *Chart) WriteSVG(w io.Writer) error {
	return c.rt.Doc.WriteSVG(w)
}

// WriteImage writes the chart to w as a raster image in the format
// implied by the extension of filename.
func (c *Chart) WriteImage(w io.Writer, filename string) error {
	return c.rt.Doc.WriteImage(w, filename)
}

// Mouseover reports that the pointer entered the primitive of d at
// (x, y). It calls the Mouseover hook if one is configured and
// otherwise shows d's tooltip next to the pointer.
func (c *Chart) Mouseover(d Datum, x, y float64) {
	c.rt.mouseover(d, x, y)
}

// Mouseout reports that the pointer left the primitive of d. It calls
// the Mouseout hook if one is configured and otherwise hides the
// tooltip.
func (c *Chart) Mouseout(d Datum) {
	c.rt.mouseout(d)
}

// Zoom scales the chart by k about the origin and then translates it
// by (tx, ty). k is clamped to [1, 10]. Zooming must be enabled in
// the configuration.
func (c *Chart) Zoom(k, tx, ty float64) error {
	z, ok := c.v.(zoomer)
	if !ok || !c.rt.Config.Zoom {
		return configErrorf("Zoom", "zooming is not enabled")
	}
	if k < 1 {
		k = 1
	} else if k > 10 {
		k = 10
	}
	z.zoom(c.rt, k, tx, ty)
	return nil
}

// Brush selects the x range between pixel positions x0 and x1 of the
// plot area and passes it to the Brush callback.
func (c *Chart) Brush(x0, x1 float64) error {
	b, ok := c.v.(brusher)
	if !ok || c.rt.Config.Brush == nil {
		return configErrorf("Brush", "brushing is not enabled")
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	lo, hi := b.brush(c.rt, x0, x1)
	c.rt.Config.Brush(lo, hi)
	return nil
}
