// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"github.com/aclements/go-trace/series"
)

// Config holds the options of a chart. Start from DefaultConfig,
// which fills in the defaults of a chart variant, and override
// fields as needed. A chart copies its Config when it is created and
// never modifies it.
type Config struct {
	// Data is the data to chart. Force-directed charts take
	// their data from Graph instead.
	Data *series.Set

	// Width and Height are the size of the drawing in pixels.
	Width, Height int

	// Margin is the space around the plot area, in pixels, in
	// the order top, right, bottom, left. Axes are drawn in the
	// margins, so they must leave room for tick labels.
	Margin [4]float64

	// ShowX, ShowY and ShowY2 enable the bottom, left and right
	// axes.
	ShowX, ShowY, ShowY2 bool

	// Gridlines enables dashed gridlines at the ticks of the
	// value axis.
	Gridlines bool

	// Legend enables the series legend.
	Legend bool

	// Tooltips enables tooltips on data primitives. Tooltips
	// require Points.
	Tooltips bool

	// TooltipFormat formats the text of a tooltip. If nil, the
	// datum is printed as an array, like [category,value].
	TooltipFormat func(Datum) string

	// Points enables point markers on line charts.
	Points bool

	// Colors is the palette. Series, slices, groups and levels
	// take colors from it in order, cycling if there are more of
	// them than colors.
	Colors []string

	// XTickCount and YTickCount are the maximum number of ticks
	// on each axis. 0 means the default of 10.
	XTickCount, YTickCount int

	// XTickFormat and YTickFormat format tick labels. If nil,
	// labels are formatted according to the category kind.
	XTickFormat, YTickFormat func(series.Category) string

	// Interpolate is the line interpolation mode: "linear",
	// "step", "step-before" or "step-after".
	Interpolate string

	// Zoom enables Chart.Zoom. Only force-directed charts
	// support zooming.
	Zoom bool

	// Brush, if non-nil, enables Chart.Brush on line charts. It
	// is called with the selected range of the x axis.
	Brush func(lo, hi series.Category)

	// Mouseover and Mouseout, if non-nil, replace the built-in
	// tooltip when the pointer enters or leaves a primitive.
	Mouseover func(d Datum, x, y float64)
	Mouseout  func(d Datum)

	// Graph is the data of a force-directed chart.
	Graph *Graph

	// Regions are the shapes of a choropleth, as SVG path data
	// in plot coordinates.
	Regions []Region

	// Levels is the number of color levels of a choropleth. 0
	// means one level per color. If Levels exceeds the number of
	// colors, intermediate colors are interpolated.
	Levels int

	// Charge and LinkDistance parameterize the force-directed
	// layout.
	Charge, LinkDistance float64
}

// DefaultPalette is the default value of Config.Colors.
var DefaultPalette = []string{"#e74c3c", "#e67e22", "#f1c40f", "#2ecc71", "#1abc9c", "#3498db", "#9b59b6"}

// DefaultConfig returns the default configuration of chart variant v.
func DefaultConfig(v Variant) Config {
	cfg := Config{
		Width:    500,
		Height:   500,
		Margin:   [4]float64{20, 20, 20, 20},
		Legend:   true,
		Tooltips: true,
		Points:   true,
		Colors:   append([]string(nil), DefaultPalette...),
	}
	v.Defaults(&cfg)
	return cfg
}

// Interpolation modes.
const (
	InterpolateLinear     = "linear"
	InterpolateStep       = "step"
	InterpolateStepBefore = "step-before"
	InterpolateStepAfter  = "step-after"
)

// validate checks cfg for chart variant v.
func (cfg *Config) validate(v Variant) error {
	if cfg.Width <= 0 {
		return configErrorf("Width", "must be positive, got %d", cfg.Width)
	}
	if cfg.Height <= 0 {
		return configErrorf("Height", "must be positive, got %d", cfg.Height)
	}
	for i, m := range cfg.Margin {
		if m < 0 {
			return configErrorf("Margin", "margin %d is negative", i)
		}
	}
	if w, h := cfg.innerSize(); w <= 0 || h <= 0 {
		return configErrorf("Margin", "margins leave no plot area in %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Tooltips && !cfg.Points {
		return configErrorf("Tooltips", "tooltips require points to be set")
	}
	if len(cfg.Colors) == 0 {
		return configErrorf("Colors", "palette is empty")
	}
	switch cfg.Interpolate {
	case "", InterpolateLinear, InterpolateStep, InterpolateStepBefore, InterpolateStepAfter:
	default:
		return configErrorf("Interpolate", "unknown mode %q", cfg.Interpolate)
	}
	if cfg.XTickCount < 0 || cfg.YTickCount < 0 {
		return configErrorf("TickCount", "must not be negative")
	}
	if cfg.Levels < 0 {
		return configErrorf("Levels", "must not be negative")
	}
	if _, ok := v.(zoomer); cfg.Zoom && !ok {
		return configErrorf("Zoom", "%s charts do not support zooming", v.Class())
	}
	if _, ok := v.(brusher); cfg.Brush != nil && !ok {
		return configErrorf("Brush", "%s charts do not support brushing", v.Class())
	}
	if cfg.LinkDistance < 0 {
		return configErrorf("LinkDistance", "must not be negative")
	}
	return nil
}

// innerSize returns the size of the plot area.
func (cfg *Config) innerSize() (w, h float64) {
	m := cfg.Margin
	return float64(cfg.Width) - m[1] - m[3], float64(cfg.Height) - m[0] - m[2]
}

// clone returns a copy of cfg that shares no mutable state with it.
func (cfg Config) clone() Config {
	cfg.Colors = append([]string(nil), cfg.Colors...)
	cfg.Regions = append([]Region(nil), cfg.Regions...)
	if cfg.Graph != nil {
		g := *cfg.Graph
		g.Nodes = append([]Node(nil), g.Nodes...)
		g.Links = append([]Link(nil), g.Links...)
		cfg.Graph = &g
	}
	return cfg
}

func (cfg *Config) tickCount(n int) int {
	if n == 0 {
		return 10
	}
	return n
}
