// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/aclements/go-trace/series"
)

func TestLineMissing(t *testing.T) {
	cfg := DefaultConfig(&Line{})
	cfg.Data = series.NewSet(series.Series{Name: "A", Obs: []series.Observation{
		series.Obs(n(0), 1),
		{Category: n(1), Missing: true},
		series.Obs(n(2), 3),
		series.Obs(n(3), 0),
	}})
	c := mustNew(t, &Line{}, cfg)
	root := c.Doc().Root

	line := root.Select("trace-A")
	if line == nil || line.Tag != "path" {
		t.Fatalf("no line path for series A")
	}
	d, _ := line.Get("d")
	if got := strings.Count(d, "M"); got != 2 {
		t.Errorf("line %q has %d runs, want 2", d, got)
	}

	points := root.Select("points").Children
	if len(points) != 3 {
		t.Fatalf("%d points, want 3", len(points))
	}
	rt := c.Runtime()
	// y domain is [0,3]: the largest value is at the top and a
	// zero value is on the x axis.
	if got := points[1].GetF("cy"); got != 0 {
		t.Errorf("point of value 3 at cy=%v, want 0", got)
	}
	if got := points[2].GetF("cy"); got != rt.Height {
		t.Errorf("point of value 0 at cy=%v, want %v", got, rt.Height)
	}
	if got := len(root.Select("hover").Children); got != 3 {
		t.Errorf("%d hover targets, want 3", got)
	}
}

func TestLineNoPoints(t *testing.T) {
	cfg := DefaultConfig(&Line{})
	cfg.Data = series.NewSet(pairs("A", 0, 1, 1, 2))
	cfg.Points, cfg.Tooltips = false, false
	c := mustNew(t, &Line{}, cfg)
	if got := len(c.Doc().Root.Select("points").Children); got != 0 {
		t.Errorf("%d points drawn with points disabled", got)
	}
	if strings.Contains(c.Doc().SVG(), "<title>") {
		t.Errorf("tooltips drawn with tooltips disabled")
	}
}

func TestLineTime(t *testing.T) {
	t0 := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	s := series.Series{Name: "A"}
	for i := 0; i < 5; i++ {
		s.Obs = append(s.Obs, series.Obs(series.Time(t0.AddDate(0, 0, i)), float64(i)))
	}
	cfg := DefaultConfig(&Line{})
	cfg.Data = series.NewSet(s)
	c := mustNew(t, &Line{}, cfg)
	xaxis := c.Runtime().xaxis
	var labels []string
	for _, tick := range xaxis.Children {
		if tick.Tag == "g" {
			labels = append(labels, tick.Children[1].Text)
		}
	}
	if len(labels) == 0 || labels[0] != "Jan 1" {
		t.Errorf("time axis labels = %v, want starting with Jan 1", labels)
	}
}

func TestBrush(t *testing.T) {
	var lo, hi series.Category
	calls := 0
	cfg := DefaultConfig(&Line{})
	cfg.Data = series.NewSet(pairs("A", 0, 1, 10, 2))
	cfg.Brush = func(l, h series.Category) { lo, hi, calls = l, h, calls+1 }
	c := mustNew(t, &Line{}, cfg)
	rt := c.Runtime()

	if err := c.Brush(rt.Width+50, -5); err != nil {
		t.Fatal(err)
	}
	if calls != 1 || lo != n(0) || hi != n(10) {
		t.Errorf("Brush selected [%v,%v] in %d calls, want [0,10] in 1", lo, hi, calls)
	}
	extent := c.Doc().Root.Select("extent")
	if got := extent.GetF("width"); got != rt.Width {
		t.Errorf("extent width = %v, want %v", got, rt.Width)
	}

	if err := c.Brush(rt.Width/2, rt.Width/2); err != nil {
		t.Fatal(err)
	}
	if lo != n(5) || hi != n(5) {
		t.Errorf("Brush of a point selected [%v,%v], want [5,5]", lo, hi)
	}

	cfg.Brush = nil
	c = mustNew(t, &Line{}, cfg)
	if err := c.Brush(0, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("Brush without callback = %v, want configuration error", err)
	}
}

func TestBarStack(t *testing.T) {
	cfg := DefaultConfig(&Bar{})
	cfg.Data = series.NewSet(pairs("A", 1, 2, 2, 3), pairs("B", 1, 5))
	c := mustNew(t, &Bar{}, cfg)
	rt := c.Runtime()

	a := rt.Doc.Root.SelectAll("trace-A")
	b := rt.Doc.Root.SelectAll("trace-B")
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("got %d A and %d B rects, want 2 and 2", len(a), len(b))
	}
	// Category 1 stacks to 7, the top of the y domain.
	if got := b[0].GetF("y"); got != 0 {
		t.Errorf("top of stack at y=%v, want 0", got)
	}
	if got, want := a[0].GetF("y")+a[0].GetF("height"), rt.Height; math.Abs(got-want) > 0.01 {
		t.Errorf("bottom of stack at %v, want %v", got, want)
	}
	if got, want := a[0].GetF("y"), b[0].GetF("y")+b[0].GetF("height"); got != want {
		t.Errorf("B does not sit on A: %v vs %v", got, want)
	}
	// B has no value at category 2.
	if got := b[1].GetF("height"); got != 0 {
		t.Errorf("zero-filled segment has height %v", got)
	}
	if a[0].GetF("x") == a[1].GetF("x") {
		t.Errorf("categories share a band")
	}
	if got, _ := rt.Doc.Root.Select("trace-bargroup").Get("fill"); got != DefaultPalette[0] {
		t.Errorf("first bar group fill = %s", got)
	}
}

func TestSubSecondCategories(t *testing.T) {
	t0 := time.Date(2016, 1, 1, 10, 0, 0, 0, time.UTC)
	s := series.Series{Name: "A"}
	for _, ms := range []int{100, 500} {
		s.Obs = append(s.Obs, series.Obs(series.Time(t0.Add(time.Duration(ms)*time.Millisecond)), 1))
	}

	cfg := DefaultConfig(&Bar{})
	cfg.Data = series.NewSet(s)
	c := mustNew(t, &Bar{}, cfg)
	if got := len(c.Doc().Root.SelectAll("trace-A")); got != 2 {
		t.Errorf("bar chart drew %d rects for 2 categories", got)
	}

	cfg = DefaultConfig(&Line{})
	cfg.Data = series.NewSet(s)
	c = mustNew(t, &Line{}, cfg)
	if got := len(c.Doc().Root.Select("points").Children); got != 2 {
		t.Errorf("line chart drew %d points for 2 categories", got)
	}
}

func TestPie(t *testing.T) {
	cfg := DefaultConfig(&Pie{})
	cfg.Data = series.NewSet(pairs("small", 1, 1), pairs("big", 1, 2, 2, 1))
	c := mustNew(t, &Pie{}, cfg)
	arcs := c.Doc().Root.Select("trace-arcs")
	if len(arcs.Children) != 2 {
		t.Fatalf("%d slices, want 2", len(arcs.Children))
	}
	// The largest slice starts at twelve o'clock.
	big := arcs.Children[1]
	if d, _ := big.Get("d"); !strings.HasPrefix(d, "M0,-230A230,230 ") {
		t.Errorf("largest slice = %q", d)
	}
	if len(big.Children) != 1 || big.Children[0].Text != `["big",3]` {
		t.Errorf("missing slice tooltip")
	}

	// A single slice is a full circle.
	if err := c.Update(series.NewSet(pairs("only", 1, 4))); err != nil {
		t.Fatal(err)
	}
	if len(arcs.Children) != 1 {
		t.Fatalf("%d slices after update, want 1", len(arcs.Children))
	}
	if d, _ := arcs.Children[0].Get("d"); strings.Count(d, "A") != 2 {
		t.Errorf("single slice = %q, want a full circle", d)
	}
}

func TestLikert(t *testing.T) {
	lk := func(name string, value, baseline float64) series.Series {
		return series.Series{Name: name, Obs: []series.Observation{
			{Category: series.String("Q1"), Value: value, Baseline: baseline},
		}}
	}
	cfg := DefaultConfig(&Likert{})
	cfg.Data = series.NewSet(lk("Disagree", 4, 6), lk("Agree", 10, 2))
	c := mustNew(t, &Likert{}, cfg)
	rt := c.Runtime()

	// The domain is [-6,10] over 460 pixels.
	g := rt.Doc.Root.Select("trace-likertgroup-0")
	value, base := g.Children[0], g.Children[1]
	if value.Class() != "y1" || base.Class() != "y2" {
		t.Fatalf("rect classes = %q, %q", value.Class(), base.Class())
	}
	const unit = 460.0 / 16
	if got := value.GetF("x"); got != 2*unit {
		t.Errorf("Disagree value at x=%v, want %v", got, 2*unit)
	}
	if got := value.GetF("width"); got != 4*unit {
		t.Errorf("Disagree value width %v, want %v", got, 4*unit)
	}
	if got := base.GetF("x"); got != 0 {
		t.Errorf("Disagree baseline at x=%v, want 0", got)
	}
	agree := rt.Doc.Root.Select("trace-likertgroup-1").Children[0]
	if got := agree.GetF("x"); got != 6*unit {
		t.Errorf("Agree value at x=%v, want %v", got, 6*unit)
	}

	var negative bool
	for _, tick := range rt.xaxis.Children {
		if tick.Tag != "g" {
			continue
		}
		if strings.HasPrefix(tick.Key, "-") {
			negative = true
		}
		if strings.HasPrefix(tick.Children[1].Text, "-") {
			t.Errorf("tick label %q is negative", tick.Children[1].Text)
		}
	}
	if !negative {
		t.Errorf("no ticks left of zero")
	}
}

func testGraph() *Graph {
	return &Graph{
		Nodes: []Node{{"a", 0}, {"b", 0}, {"c", 1}, {"d", 2}},
		Links: []Link{{0, 1, 4}, {1, 2, 1}, {2, 0, 9}},
	}
}

func TestForce(t *testing.T) {
	cfg := DefaultConfig(&Force{})
	cfg.Graph = testGraph()
	c := mustNew(t, &Force{}, cfg)
	rt := c.Runtime()
	root := rt.Doc.Root

	links := root.SelectAll("link")
	if len(links) != 3 {
		t.Fatalf("%d links, want 3", len(links))
	}
	if got := links[0].GetF("stroke-width"); got != 2 {
		t.Errorf("link stroke-width = %v, want 2", got)
	}
	nodes := root.SelectAll("node")
	if len(nodes) != 4 {
		t.Fatalf("%d nodes, want 4", len(nodes))
	}
	pos := c.v.(*Force).pos
	for i, p := range pos {
		if p.x < 0 || p.x > rt.Width || p.y < 0 || p.y > rt.Height {
			t.Errorf("node %d at %v is outside the plot", i, p)
		}
		for j := i + 1; j < len(pos); j++ {
			if p == pos[j] {
				t.Errorf("nodes %d and %d coincide", i, j)
			}
		}
	}
	// d is unlinked, so it sits on its own circle right of a, b and c.
	for i := 0; i < 3; i++ {
		if pos[i].x >= pos[3].x {
			t.Errorf("node %d at x=%v is not left of unlinked node at x=%v", i, pos[i].x, pos[3].x)
		}
	}
	if fill, _ := nodes[3].Children[0].Get("fill"); fill != DefaultPalette[2] {
		t.Errorf("node of group 2 has fill %s", fill)
	}
	if got := nodes[2].Children[1].Text; got != "c" {
		t.Errorf("node label = %q, want c", got)
	}

	bad := testGraph()
	bad.Links = append(bad.Links, Link{0, 7, 1})
	cfg.Graph = bad
	if _, err := New(&Force{}, cfg); !errors.Is(err, series.ErrInvalidInput) {
		t.Errorf("link to missing node: New = %v", err)
	}
}

func TestZoom(t *testing.T) {
	cfg := DefaultConfig(&Force{})
	cfg.Graph = testGraph()
	cfg.Zoom = true
	c := mustNew(t, &Force{}, cfg)
	container := c.v.(*Force).container
	for _, test := range []struct {
		k, tx, ty float64
		want      string
	}{
		{2, 1, 2, "translate(1,2)scale(2)"},
		{20, 0, 0, "translate(0,0)scale(10)"},
		{0.5, -3, 4, "translate(-3,4)scale(1)"},
	} {
		if err := c.Zoom(test.k, test.tx, test.ty); err != nil {
			t.Fatal(err)
		}
		if got, _ := container.Get("transform"); got != test.want {
			t.Errorf("Zoom(%v,%v,%v) transform = %q, want %q", test.k, test.tx, test.ty, got, test.want)
		}
	}

	cfg.Zoom = false
	c = mustNew(t, &Force{}, cfg)
	if err := c.Zoom(2, 0, 0); !errors.Is(err, ErrConfig) {
		t.Errorf("Zoom while disabled = %v, want configuration error", err)
	}
}

func TestChoropleth(t *testing.T) {
	cfg := DefaultConfig(&Choropleth{})
	cfg.Regions = []Region{
		{"a", "M0,0H10V10H0Z"},
		{"B", "M10,0H20V10H10Z"},
		{"c", "M20,0H30V10H20Z"},
	}
	cfg.Data = series.NewSet(pairs("A", 1, 1), pairs("b", 1, 2, 2, 3))
	c := mustNew(t, &Choropleth{}, cfg)

	paths := c.Doc().Root.SelectAll("countries")
	if len(paths) != 3 {
		t.Fatalf("%d regions, want 3", len(paths))
	}
	for i, want := range []string{ChoroplethPalette[0], ChoroplethPalette[len(ChoroplethPalette)-1], NoDataColor} {
		if got, _ := paths[i].Get("fill"); got != want {
			t.Errorf("region %s fill = %s, want %s", paths[i].Key, got, want)
		}
	}
	if len(paths[2].Children) != 0 {
		t.Errorf("region without data has a tooltip")
	}

	// Recoloring keeps the shapes.
	if err := c.Update(series.NewSet(pairs("c", 1, 1))); err != nil {
		t.Fatal(err)
	}
	if got, _ := paths[0].Get("fill"); got != NoDataColor {
		t.Errorf("region a fill after update = %s, want %s", got, NoDataColor)
	}
	if len(paths[0].Children) != 0 {
		t.Errorf("region a kept its tooltip after losing its value")
	}
	if got := paths[0].Transitions(); len(got) != 1 || got[0] != "fill" {
		t.Errorf("region a transitions = %v, want [fill]", got)
	}
	if got, _ := paths[2].Get("fill"); got != ChoroplethPalette[0] {
		t.Errorf("region c fill after update = %s", got)
	}
}

func TestWriteChart(t *testing.T) {
	for _, v := range []Variant{&Line{}, &Bar{}, &Pie{}} {
		cfg := DefaultConfig(v)
		cfg.Width, cfg.Height = 120, 80
		cfg.Data = series.NewSet(pairs("A", 1, 1, 2, 2), pairs("B", 1, 3, 2, 1))
		c := mustNew(t, v, cfg)

		var buf bytes.Buffer
		if err := c.WriteSVG(&buf); err != nil {
			t.Fatal(err)
		}
		if s := buf.String(); !strings.Contains(s, `class="`+v.Class()+`"`) {
			t.Errorf("%s: SVG lacks chart class", v.Class())
		}
		buf.Reset()
		if err := c.WriteImage(&buf, "chart.png"); err != nil {
			t.Errorf("%s: WriteImage: %v", v.Class(), err)
		}
		if buf.Len() == 0 {
			t.Errorf("%s: empty image", v.Class())
		}
	}
}
