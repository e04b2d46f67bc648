// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/series"
)

// Region is a named shape of a choropleth map.
type Region struct {
	Name string

	// Path is SVG path data in plot coordinates. Projecting
	// geographic coordinates is left to the producer of the map.
	Path string
}

// ChoroplethPalette is the default palette of choropleth charts.
var ChoroplethPalette = []string{"#EAA669", "#E67E22", "#B3621A", "#66482E", "#66380F"}

// NoDataColor fills regions that have no value.
const NoDataColor = "#eee"

// Choropleth is a map of Config.Regions, each filled with the color
// level of its value. The value of a region is the sum of the series
// with the same name, ignoring case. Values are divided into equal
// ranges between the smallest and largest value, one per level.
//
// A Choropleth holds the state of one chart and must not be reused.
type Choropleth struct {
	values map[string]float64
	scale  *Quantize

	regions *scene.Node
}

func (*Choropleth) Class() string { return "trace-choropleth" }

func (*Choropleth) Defaults(cfg *Config) {
	cfg.Colors = append([]string(nil), ChoroplethPalette...)
}

func (c *Choropleth) Layout(rt *Runtime, data *series.Set) error {
	if data.Len() == 0 {
		return series.Errorf("choropleth requires at least one region value")
	}
	if len(rt.Config.Regions) == 0 {
		return series.Errorf("choropleth requires region shapes")
	}
	known := make(map[string]bool)
	for _, r := range rt.Config.Regions {
		known[strings.ToLower(r.Name)] = true
	}

	values := make(map[string]float64)
	xs := make([]float64, data.Len())
	for i := range xs {
		ser := data.Series(i)
		xs[i] = ser.Sum()
		key := strings.ToLower(ser.Name)
		values[key] = xs[i]
		if !known[key] {
			Warning.Printf("no region for %q", ser.Name)
		}
	}
	lo, hi := stats.Bounds(xs)
	levels, err := colorLevels(rt.Config.Colors, rt.Config.Levels)
	if err != nil {
		return err
	}

	c.values = values
	c.scale = &Quantize{Min: lo, Max: hi, Colors: levels}
	return nil
}

// colorLevels returns n colors for a quantized scale. With n == 0 or
// n equal to the number of colors, the palette is used as is; fewer
// levels take a prefix of the palette; more levels are interpolated
// evenly along it.
func colorLevels(colors []string, n int) ([]string, error) {
	if n == 0 || n == len(colors) {
		return colors, nil
	}
	if n < len(colors) {
		return colors[:n], nil
	}
	grad := palette.RGBGradient{Colors: make([]color.RGBA, len(colors))}
	for i, s := range colors {
		c, ok := parseHex(s)
		if !ok {
			return nil, configErrorf("Colors", "cannot interpolate color %q", s)
		}
		grad.Colors[i] = c
	}
	out := make([]string, n)
	for i, x := range vec.Linspace(0, 1, n) {
		r, g, b, _ := grad.Map(x).RGBA()
		out[i] = fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	}
	return out, nil
}

// parseHex parses a #rgb or #rrggbb color.
func parseHex(s string) (color.RGBA, bool) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, true
}

func (c *Choropleth) Draw(rt *Runtime) {
	c.regions = rt.Plot.Add("g").Set("class", "trace-regions")
	c.Redraw(rt)
}

func (c *Choropleth) Redraw(rt *Runtime) {
	regions := rt.Config.Regions
	keys := make([]string, len(regions))
	for i, r := range regions {
		keys[i] = r.Name
	}
	paths := c.regions.Join("path", keys, func(i int, p *scene.Node) {
		p.Set("class", "countries").Set("d", regions[i].Path).Set("stroke", "white")
	})
	for i, r := range regions {
		v, ok := c.values[strings.ToLower(r.Name)]
		fill := NoDataColor
		if ok {
			fill = c.scale.Of(v)
			rt.Tooltip(paths[i], Datum{Series: r.Name, Value: v})
		} else {
			paths[i].Children = nil
			paths[i].Del("style")
		}
		paths[i].Tween("fill", fill, rt.Transition)
	}
}
