// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"errors"
	"strings"
	"testing"

	"github.com/aclements/go-trace/series"
)

func n(x float64) series.Category { return series.Number(x) }

// pairs builds a series from alternating categories and values.
func pairs(name string, xs ...float64) series.Series {
	s := series.Series{Name: name}
	for i := 0; i+1 < len(xs); i += 2 {
		s.Obs = append(s.Obs, series.Obs(n(xs[i]), xs[i+1]))
	}
	return s
}

func mustNew(t *testing.T, v Variant, cfg Config) *Chart {
	t.Helper()
	c, err := New(v, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestTooltipsRequirePoints(t *testing.T) {
	cfg := DefaultConfig(&Line{})
	cfg.Data = series.NewSet(pairs("A", 1, 1, 2, 2))
	cfg.Tooltips = true
	cfg.Points = false
	_, err := New(&Line{}, cfg)
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("New = %v, want configuration error", err)
	}
	if !errors.Is(err, series.ErrInvalidInput) {
		t.Errorf("configuration error %v does not match ErrInvalidInput", err)
	}

	// Without tooltips, no points is fine.
	cfg.Tooltips = false
	mustNew(t, &Line{}, cfg)
}

func TestConfigErrors(t *testing.T) {
	data := series.NewSet(pairs("A", 1, 1, 2, 2))
	for _, test := range []struct {
		name   string
		v      Variant
		mutate func(*Config)
	}{
		{"width", &Bar{}, func(c *Config) { c.Width = 0 }},
		{"height", &Bar{}, func(c *Config) { c.Height = -1 }},
		{"margins", &Bar{}, func(c *Config) { c.Margin = [4]float64{300, 0, 300, 0} }},
		{"colors", &Bar{}, func(c *Config) { c.Colors = nil }},
		{"interpolate", &Line{}, func(c *Config) { c.Interpolate = "cardinal" }},
		{"zoom", &Bar{}, func(c *Config) { c.Zoom = true }},
		{"brush", &Pie{}, func(c *Config) { c.Brush = func(lo, hi series.Category) {} }},
		{"levels", &Choropleth{}, func(c *Config) { c.Levels = -1 }},
	} {
		cfg := DefaultConfig(test.v)
		cfg.Data = data
		test.mutate(&cfg)
		_, err := New(test.v, cfg)
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("%s: New = %v, want *ConfigError", test.name, err)
		}
	}
}

func TestInvalidData(t *testing.T) {
	for _, test := range []struct {
		name string
		v    Variant
		data *series.Set
	}{
		{"line nil", &Line{}, nil},
		{"line empty", &Line{}, series.NewSet()},
		{"line strings", &Line{}, series.NewSet(series.Series{Name: "A", Obs: []series.Observation{series.Obs(series.String("a"), 1)}})},
		{"bar negative", &Bar{}, series.NewSet(pairs("A", 1, -2))},
		{"duplicate", &Bar{}, series.NewSet(pairs("A", 1, 2, 1, 3))},
		{"mixed", &Bar{}, series.NewSet(pairs("A", 1, 2), series.Series{Name: "B", Obs: []series.Observation{series.Obs(series.String("1"), 1)}})},
		{"likert empty", &Likert{}, series.NewSet()},
		{"pie empty", &Pie{}, nil},
		{"pie negative", &Pie{}, series.NewSet(pairs("A", 1, -2))},
		{"force no graph", &Force{}, nil},
	} {
		cfg := DefaultConfig(test.v)
		cfg.Data = test.data
		_, err := New(test.v, cfg)
		if !errors.Is(err, series.ErrInvalidInput) {
			t.Errorf("%s: New = %v, want invalid input", test.name, err)
		}
		if errors.Is(err, ErrConfig) {
			t.Errorf("%s: data error %v reported as configuration error", test.name, err)
		}
	}
}

func TestUpdateKeepsStructure(t *testing.T) {
	cfg := DefaultConfig(&Bar{})
	cfg.Data = series.NewSet(pairs("A", 1, 2, 2, 3), pairs("B", 1, 5))
	c := mustNew(t, &Bar{}, cfg)
	rt := c.Runtime()
	xaxis, legend := rt.xaxis, rt.legend
	nlegend := len(legend.Children)

	next := series.NewSet(pairs("A", 1, 4, 2, 1), pairs("B", 1, 1), pairs("C", 2, 2))
	if err := c.Update(next); err != nil {
		t.Fatal(err)
	}
	if rt.xaxis != xaxis || rt.Plot.Select("trace-xaxis") != xaxis {
		t.Errorf("Update rebuilt the x axis")
	}
	if rt.legend != legend || len(legend.Children) != nlegend {
		t.Errorf("Update rebuilt the legend")
	}
	if got := len(rt.Doc.Root.SelectAll("trace-legend")); got != 1 {
		t.Errorf("%d legends after update", got)
	}
	if got := len(rt.Doc.Root.SelectAll("trace-C")); got != 2 {
		t.Errorf("series C has %d rects after update, want 2", got)
	}

	moved := false
	for _, r := range rt.Doc.Root.SelectAll("trace-A") {
		if len(r.Transitions()) > 0 {
			moved = true
		}
	}
	if !moved {
		t.Errorf("Update did not animate any bar of series A")
	}

	// Updating again with the same data reaches the same state
	// without any transitions.
	if err := c.Update(next); err != nil {
		t.Fatal(err)
	}
	first := rt.Doc.SVG()
	if strings.Contains(first, "<animate") {
		t.Errorf("update with unchanged data has transitions:\n%s", first)
	}
	if err := c.Update(next); err != nil {
		t.Fatal(err)
	}
	if second := rt.Doc.SVG(); second != first {
		t.Errorf("repeated update changed the chart:\n%s\n%s", first, second)
	}
}

func TestUpdateErrorLeavesChart(t *testing.T) {
	cfg := DefaultConfig(&Bar{})
	cfg.Data = series.NewSet(pairs("A", 1, 2, 2, 3))
	c := mustNew(t, &Bar{}, cfg)
	before := c.Doc().SVG()
	if err := c.Update(series.NewSet(pairs("A", 1, -1))); !errors.Is(err, series.ErrInvalidInput) {
		t.Fatalf("Update = %v, want invalid input", err)
	}
	if after := c.Doc().SVG(); after != before {
		t.Errorf("failed Update changed the chart")
	}
}

func TestLegendSkipsUnnamed(t *testing.T) {
	cfg := DefaultConfig(&Bar{})
	cfg.Data = series.NewSet(pairs("", 1, 1), pairs("undefined", 1, 1), pairs("C", 1, 1))
	c := mustNew(t, &Bar{}, cfg)
	labels := c.Runtime().legend.Children
	if len(labels) != 1 {
		t.Fatalf("legend has %d entries, want 1", len(labels))
	}
	if got := labels[0].Children[1].Text; got != "C" {
		t.Errorf("legend entry = %q, want C", got)
	}
	if fill, _ := labels[0].Children[0].Get("fill"); fill != DefaultPalette[2] {
		t.Errorf("legend color = %s, want the color of series 2", fill)
	}
}

func TestHover(t *testing.T) {
	cfg := DefaultConfig(&Bar{})
	cfg.Data = series.NewSet(pairs("A", 1, 2))
	c := mustNew(t, &Bar{}, cfg)
	d := Datum{Series: "A", Category: n(1), Value: 2, HasCategory: true}
	c.Mouseover(d, 50, 60)
	tip := c.Doc().Root.Select("trace-tooltip")
	if tip == nil {
		t.Fatal("no tooltip after Mouseover")
	}
	if tr, _ := tip.Get("transform"); tr != "translate(60,60)" {
		t.Errorf("tooltip transform = %q", tr)
	}
	if got := tip.Children[1].Text; got != "[1,2]" {
		t.Errorf("tooltip text = %q, want [1,2]", got)
	}
	c.Mouseout(d)
	if v, _ := tip.Get("display"); v != "none" {
		t.Errorf("tooltip not hidden after Mouseout")
	}

	var over, out []Datum
	cfg.Mouseover = func(d Datum, x, y float64) { over = append(over, d) }
	cfg.Mouseout = func(d Datum) { out = append(out, d) }
	c = mustNew(t, &Bar{}, cfg)
	c.Mouseover(d, 0, 0)
	c.Mouseout(d)
	if len(over) != 1 || len(out) != 1 {
		t.Errorf("hooks called %d and %d times, want 1 and 1", len(over), len(out))
	}
	if c.Doc().Root.Select("trace-tooltip") != nil {
		t.Errorf("built-in tooltip shown despite hooks")
	}
}

func TestTooltipTitles(t *testing.T) {
	cfg := DefaultConfig(&Bar{})
	cfg.Data = series.NewSet(pairs("A", 1, 2))
	cfg.TooltipFormat = func(d Datum) string { return d.Series + "=" + d.Category.String() }
	c := mustNew(t, &Bar{}, cfg)
	if s := c.Doc().SVG(); !strings.Contains(s, "<title>A=1</title>") {
		t.Errorf("SVG missing formatted tooltip:\n%s", s)
	}
}
