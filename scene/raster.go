// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Rasterize draws d on a white background.
//
// Shapes are drawn by oksvg from d's SVG form. oksvg does not draw
// text, so text elements are drawn afterwards in a fixed 7x13 face,
// honoring translate and scale transforms, fill, opacity,
// fill-opacity, text-anchor and dy. Elements with display="none" are
// skipped.
func (d *Doc) Rasterize() (*image.RGBA, error) {
	out := image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := d.shapes().WriteSVG(&buf); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("rasterizing: %w", err)
	}
	w, h := d.Width, d.Height
	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, out, out.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	var texts []textOp
	st := defaultStyle.apply(d.Root)
	for _, c := range d.Root.Children {
		texts = collectText(texts, c, identity, st)
	}
	for _, t := range texts {
		t.draw(out)
	}
	return out, nil
}

// shapes returns a copy of d without text, hidden elements, or
// pending transitions, with a viewBox matching its size.
func (d *Doc) shapes() *Doc {
	var cp func(n *Node) *Node
	cp = func(n *Node) *Node {
		c := &Node{Tag: n.Tag, attrs: n.attrs}
		for _, k := range n.Children {
			if k.Tag == "text" || k.Tag == "title" || hidden(k) {
				continue
			}
			c.Children = append(c.Children, cp(k))
		}
		return c
	}
	out := &Doc{Width: d.Width, Height: d.Height, Root: cp(d.Root)}
	out.Root.attrs = append([]Attr(nil), d.Root.attrs...)
	out.Root.Set("viewBox", fmt.Sprintf("0 0 %d %d", d.Width, d.Height))
	return out
}

func hidden(n *Node) bool {
	if v, _ := n.Get("display"); v == "none" {
		return true
	}
	v, _ := n.Get("style")
	return strings.Contains(strings.ReplaceAll(v, " ", ""), "display:none")
}

// WriteImage rasterizes d and encodes it to w in the format implied
// by the extension of filename (for example, ".png" or ".jpg").
func (d *Doc) WriteImage(w io.Writer, filename string) error {
	if !IsImageFile(filename) {
		return fmt.Errorf("%s: unsupported image format", filename)
	}
	img, err := d.Rasterize()
	if err != nil {
		return err
	}
	return EncodeImage(w, img, filename)
}

// EncodeImage encodes img to w in the format implied by the extension
// of filename.
func EncodeImage(w io.Writer, img image.Image, filename string) error {
	f, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return imaging.Encode(w, img, f)
}

// IsImageFile reports whether filename names a raster image format
// EncodeImage can write.
func IsImageFile(filename string) bool {
	_, err := imaging.FormatFromFilename(filename)
	return err == nil
}

// xform is an axis-aligned affine transform.
type xform struct {
	sx, sy, tx, ty float64
}

var identity = xform{1, 1, 0, 0}

func (m xform) apply(x, y float64) (float64, float64) {
	return x*m.sx + m.tx, y*m.sy + m.ty
}

// parseTransform returns m followed by the transform list s. Only
// translate and scale are understood.
func parseTransform(m xform, s string) xform {
	for _, op := range strings.Split(s, ")") {
		name, args, ok := strings.Cut(op, "(")
		if !ok {
			continue
		}
		nums := parseNumbers(args)
		switch strings.TrimSpace(name) {
		case "translate":
			var tx, ty float64
			if len(nums) > 0 {
				tx = nums[0]
			}
			if len(nums) > 1 {
				ty = nums[1]
			}
			m.tx += tx * m.sx
			m.ty += ty * m.sy
		case "scale":
			if len(nums) == 0 {
				continue
			}
			kx, ky := nums[0], nums[0]
			if len(nums) > 1 {
				ky = nums[1]
			}
			m.sx *= kx
			m.sy *= ky
		}
	}
	return m
}

func parseNumbers(s string) []float64 {
	var out []float64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// style is the inherited text drawing state.
type style struct {
	fill        color.Color
	opacity     float64
	fillOpacity float64
	anchor      string
}

var defaultStyle = style{
	fill:        color.Black,
	opacity:     1,
	fillOpacity: 1,
	anchor:      "start",
}

func (st style) apply(n *Node) style {
	if v, ok := n.Get("fill"); ok {
		// ParseSVGColor returns nil for "none".
		if c, err := oksvg.ParseSVGColor(v); err == nil {
			st.fill = c
		}
	}
	if v, ok := n.Get("opacity"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			st.opacity *= f
		}
	}
	if v, ok := n.Get("fill-opacity"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			st.fillOpacity = f
		}
	}
	if v, ok := n.Get("text-anchor"); ok {
		st.anchor = v
	}
	return st
}

func withAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	a = math.Max(0, math.Min(1, a))
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a*255 + 0.5)}
}

// textOp is a string to draw at a device position.
type textOp struct {
	x, y   float64
	s      string
	anchor string
	c      color.Color
}

func (t textOp) draw(dst draw.Image) {
	face := basicfont.Face7x13
	x := t.x
	switch t.anchor {
	case "middle":
		x -= float64(font.MeasureString(face, t.s).Round()) / 2
	case "end":
		x -= float64(font.MeasureString(face, t.s).Round())
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.c),
		Face: face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(t.y))),
	}
	d.DrawString(t.s)
}

// collectText appends the visible text of n and its descendants to
// texts.
func collectText(texts []textOp, n *Node, m xform, st style) []textOp {
	if hidden(n) {
		return texts
	}
	if v, ok := n.Get("transform"); ok {
		m = parseTransform(m, v)
	}
	st = st.apply(n)
	if n.Tag == "text" {
		if st.fill == nil || n.Text == "" {
			return texts
		}
		x, y := m.apply(n.GetF("x"), n.GetF("y")+parseLength(n, "dy"))
		return append(texts, textOp{x, y, n.Text, st.anchor, withAlpha(st.fill, st.opacity*st.fillOpacity)})
	}
	for _, c := range n.Children {
		texts = collectText(texts, c, m, st)
	}
	return texts
}

// parseLength parses a length attribute, converting em units with the
// height of the text face.
func parseLength(n *Node, name string) float64 {
	v, ok := n.Get(name)
	if !ok {
		return 0
	}
	scale := 1.0
	if strings.HasSuffix(v, "em") {
		v, scale = strings.TrimSuffix(v, "em"), 13
	}
	f, _ := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	return f * scale
}
