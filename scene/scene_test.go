// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"
)

func keysOf(ns []*Node) []string {
	var keys []string
	for _, n := range ns {
		keys = append(keys, n.Key)
	}
	return keys
}

func TestJoin(t *testing.T) {
	g := El("g")
	axis := g.Add("path").Set("class", "domain")
	entered := 0
	enter := func(i int, c *Node) { entered++ }

	got := g.Join("rect", []string{"a", "b", "c"}, enter)
	if entered != 3 || !reflect.DeepEqual(keysOf(got), []string{"a", "b", "c"}) {
		t.Fatalf("first join entered %d, got %v", entered, keysOf(got))
	}
	b := got[1]
	b.Set("width", "10")

	entered = 0
	got = g.Join("rect", []string{"c", "b", "d"}, enter)
	if entered != 1 {
		t.Errorf("second join entered %d, want 1", entered)
	}
	if got[1] != b {
		t.Errorf("join did not keep node for key b")
	}
	if w, _ := got[1].Get("width"); w != "10" {
		t.Errorf("kept node lost attributes: width = %q", w)
	}
	if g.Children[0] != axis {
		t.Errorf("join moved unrelated child")
	}
	var keys []string
	for _, c := range g.Children[1:] {
		keys = append(keys, c.Key)
	}
	if want := []string{"c", "b", "d"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("children after join = %v, want %v", keys, want)
	}

	g.Join("rect", nil, nil)
	if len(g.Children) != 1 {
		t.Errorf("empty join left %d children", len(g.Children))
	}
}

func TestTween(t *testing.T) {
	n := El("rect")
	n.TweenF("x", 1, time.Second)
	if len(n.Transitions()) != 0 {
		t.Errorf("tween of unset attribute recorded a transition")
	}
	n.TweenF("x", 1, time.Second)
	if len(n.Transitions()) != 0 {
		t.Errorf("tween to the same value recorded a transition")
	}
	n.TweenF("x", 2, 100*time.Millisecond)
	if got := n.Transitions(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("Transitions() = %v, want [x]", got)
	}
	if got := n.GetF("x"); got != 2 {
		t.Errorf("x = %v after tween, want 2", got)
	}
	d := NewDoc(10, 10)
	d.Root.Append(n)
	if s := d.SVG(); !strings.Contains(s, `<animate attributeName="x" from="1" to="2" dur="0.1s" fill="freeze"/>`) {
		t.Errorf("SVG missing animation:\n%s", s)
	}
	d.Root.ClearTransitions()
	if len(n.Transitions()) != 0 {
		t.Errorf("ClearTransitions left %v", n.Transitions())
	}
}

func TestWriteSVG(t *testing.T) {
	d := NewDoc(100, 50)
	d.Root.Set("class", "trace")
	g := d.Root.Add("g").Set("transform", "translate(10,20)")
	r := g.Add("rect").SetF("x", 0).SetF("width", 12.5).Set("fill", "#e74c3c")
	r.Add("title").Text = "a < b"
	d.Root.Add("text").Set("x", "5").Text = "Q&A"

	var buf bytes.Buffer
	if err := d.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	for _, want := range []string{
		`width="100"`,
		`class="trace"`,
		`<g transform="translate(10,20)"`,
		`<rect x="0" width="12.5" fill="#e74c3c">`,
		`<title>a &lt; b</title>`,
		`<text x="5">Q&amp;A</text>`,
		`</svg>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %q:\n%s", want, s)
		}
	}
}

func TestWrapPath(t *testing.T) {
	var p strings.Builder
	for i := 0; i < 40; i++ {
		p.WriteString("L100 200")
	}
	w := wrapPath(p.String())
	for _, line := range strings.Split(w, "\n") {
		if len(line) > 70 {
			t.Errorf("line too long: %q", line)
		}
	}
	if strings.ReplaceAll(w, "\n", "") != p.String() {
		t.Errorf("wrapPath changed path data")
	}
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return math.Abs(float64(x)-float64(y)) <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestRasterize(t *testing.T) {
	d := NewDoc(40, 20)
	g := d.Root.Add("g").Set("transform", "translate(20,0)")
	g.Add("rect").SetF("x", 0).SetF("y", 0).SetF("width", 20).SetF("height", 20).Set("fill", "#ff0000")
	d.Root.Add("circle").SetF("cx", 10).SetF("cy", 10).SetF("r", 5).Set("fill", "#0000ff")
	d.Root.Add("rect").SetF("width", 40).SetF("height", 20).Set("display", "none")

	// A pie-style arc path: the right half of a disc about (10,10).
	d.Root.Add("path").Set("d", "M10,15A5,5 0 0,0 10,5Z").Set("fill", "#00ff00")
	d.Root.Add("text").SetF("x", 2).SetF("y", 18).Set("display", "none").Text = "hidden"

	img, err := d.Rasterize()
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		x, y int
		want color.RGBA
	}{
		{30, 10, color.RGBA{0xff, 0, 0, 0xff}},
		{7, 10, color.RGBA{0, 0, 0xff, 0xff}},
		{12, 10, color.RGBA{0, 0xff, 0, 0xff}},
		{1, 1, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{3, 16, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	} {
		if got := img.RGBAAt(test.x, test.y); !near(got, test.want) {
			t.Errorf("pixel (%d,%d) = %v, want %v", test.x, test.y, got, test.want)
		}
	}

	var buf bytes.Buffer
	if err := d.WriteImage(&buf, "out.png"); err != nil {
		t.Fatal(err)
	}
	dec, format, err := image.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" || dec.Bounds().Dx() != 40 {
		t.Errorf("decoded %s image of size %v", format, dec.Bounds())
	}
	if err := d.WriteImage(&buf, "out.svgz"); err == nil {
		t.Errorf("WriteImage to unknown extension succeeded")
	}
}

func TestRasterizeText(t *testing.T) {
	d := NewDoc(60, 20)
	d.Root.Add("g").Set("transform", "translate(30,0)").
		Add("text").SetF("y", 14).Set("text-anchor", "middle").Text = "MMM"

	img, err := d.Rasterize()
	if err != nil {
		t.Fatal(err)
	}
	var left, right bool
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if c := img.RGBAAt(x, y); c.R < 0x80 {
				if x < 30 {
					left = true
				} else {
					right = true
				}
			}
		}
	}
	if !left || !right {
		t.Errorf("centered text not drawn on both sides of its anchor (left %v, right %v)", left, right)
	}
}
