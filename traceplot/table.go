// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-trace/internal/graph"
	"github.com/aclements/go-trace/series"
	"github.com/aclements/go-trace/stack"
	"github.com/aclements/go-trace/trace"
)

// stackTable returns the stacked layout of set as a table with one
// row per segment. If diverging is set, the layout is the two-sided
// stack of a Likert chart.
func stackTable(set *series.Set, diverging bool) (*table.Table, error) {
	var names, cats []string
	var value, lo, base, baseLo []float64
	if diverging {
		d, err := stack.StackDiverging(set)
		if err != nil {
			return nil, err
		}
		for i, segs := range d.Series {
			for _, s := range segs {
				names = append(names, set.Series(i).Name)
				cats = append(cats, s.Category.String())
				value = append(value, s.Value)
				lo = append(lo, s.Y1)
				base = append(base, s.Baseline)
				baseLo = append(baseLo, s.B1)
			}
		}
		return new(table.Builder).
			Add("series", names).
			Add("category", cats).
			Add("value", value).
			Add("y1", lo).
			Add("baseline", base).
			Add("b1", baseLo).
			Done(), nil
	}

	if err := stack.CheckNonNegative(set); err != nil {
		return nil, err
	}
	var top []float64
	for i, segs := range stack.Stack(set) {
		for _, s := range segs {
			names = append(names, set.Series(i).Name)
			cats = append(cats, s.Category.String())
			value = append(value, s.Value)
			lo = append(lo, s.Y0)
			top = append(top, s.Top())
		}
	}
	return new(table.Builder).
		Add("series", names).
		Add("category", cats).
		Add("value", value).
		Add("y0", lo).
		Add("top", top).
		Done(), nil
}

func printTable(w io.Writer, set *series.Set, diverging bool) error {
	if set == nil {
		return series.Errorf("no data")
	}
	tab, err := stackTable(set, diverging)
	if err != nil {
		return err
	}
	table.Fprint(w, tab)
	return nil
}

// rawTable returns the observations of set as a table of series, x
// and y columns. Missing observations are dropped. String categories
// are numbered in order of first appearance.
func rawTable(set *series.Set) *table.Table {
	var labels []string
	if set.CategoryKind() == series.KindString {
		for _, c := range set.Universe() {
			labels = append(labels, c.String())
		}
		labels = slice.Nub(labels).([]string)
	}

	var names []string
	var xs, ys []float64
	for i := 0; i < set.Len(); i++ {
		s := set.Series(i)
		for _, o := range s.Obs {
			if o.Missing {
				continue
			}
			x := o.Category.Float()
			if labels != nil {
				x = float64(slice.Index(labels, o.Category.String()))
			}
			names = append(names, s.Name)
			xs = append(xs, x)
			ys = append(ys, o.Value)
		}
	}
	return new(table.Builder).
		Add("series", names).
		Add("x", xs).
		Add("y", ys).
		Done()
}

// quickLook returns a plain plot of the raw observations of set, with
// no stacking. It is meant for checking input data.
func quickLook(set *series.Set, interpolate string) *gg.Plot {
	plot := gg.NewPlot(rawTable(set))
	switch interpolate {
	case "step", "step-after":
		plot.Add(gg.LayerSteps{LayerPaths: gg.LayerPaths{X: "x", Y: "y", Color: "series"}, Step: gg.StepHV})
	case "step-before":
		plot.Add(gg.LayerSteps{LayerPaths: gg.LayerPaths{X: "x", Y: "y", Color: "series"}, Step: gg.StepVH})
	default:
		plot.Add(gg.LayerLines{X: "x", Y: "y", Color: "series"})
	}
	plot.Add(gg.LayerPoints{X: "x", Y: "y", Color: "series"})
	return plot
}

// writeDot writes g in Graphviz dot form, with nodes grouped by
// Group and edges weighted by link value.
func writeDot(w io.Writer, g *trace.Graph) error {
	weights := make(map[[2]int]float64)
	for _, l := range g.Links {
		weights[[2]int{l.Source, l.Target}] += l.Value
	}
	dot := graph.Dot{
		Name:  "traceplot",
		Label: func(n int) string { return g.Nodes[n].Name },
		Group: func(n int) int { return g.Nodes[n].Group },
		Weight: func(from, to int) float64 {
			return math.Sqrt(weights[[2]int{from, to}])
		},
	}
	return dot.Fprint(g.IntGraph(), w)
}
