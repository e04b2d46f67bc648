// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-trace/internal/graph"
	"github.com/aclements/go-trace/scene"
	"github.com/aclements/go-trace/series"
)

// Graph is the data of a force-directed chart.
type Graph struct {
	Nodes []Node
	Links []Link
}

// Node is a labeled graph node. Nodes are colored by Group.
type Node struct {
	Name  string
	Group int
}

// Link connects the nodes at indexes Source and Target. It is drawn
// with a width of the square root of Value.
type Link struct {
	Source, Target int
	Value          float64
}

// IntGraph returns the directed graph of g's links.
func (g *Graph) IntGraph() graph.IntGraph {
	edges := make([][2]int, len(g.Links))
	for i, l := range g.Links {
		edges[i] = [2]int{l.Source, l.Target}
	}
	return graph.FromEdges(len(g.Nodes), edges)
}

// Force is a node-link diagram of Config.Graph. The nodes of each
// connected component are placed on a circle of their own in
// depth-first order, so linked nodes tend to be neighbors, and then
// pushed apart until no two nodes are closer than
// the collision radius.
//
// A Force holds the state of one chart and must not be reused.
type Force struct {
	graph *Graph
	pos   []pt

	container *scene.Node
	links     *scene.Node
	nodes     *scene.Node
}

const (
	collideRadius = 2*20 + 1
	collideAlpha  = 0.5
	collideRounds = 10
)

func (*Force) Class() string { return "trace-force" }

func (*Force) Defaults(cfg *Config) {
	cfg.Charge = -120
	cfg.LinkDistance = 30
}

func (f *Force) Layout(rt *Runtime, _ *series.Set) error {
	g := rt.Config.Graph
	if g == nil {
		return series.Errorf("force-directed chart requires a graph")
	}
	n := len(g.Nodes)
	for i, l := range g.Links {
		if l.Source < 0 || l.Source >= n || l.Target < 0 || l.Target >= n {
			return &series.InputError{Series: "links", Index: i, Reason: fmt.Sprintf("link %d-%d names a node outside [0,%d)", l.Source, l.Target, n)}
		}
		if l.Value < 0 || math.IsNaN(l.Value) {
			return &series.InputError{Series: "links", Index: i, Reason: "link value must be non-negative"}
		}
	}

	// Each connected component gets its own circle, side by side, in a
	// slot as wide as its share of the nodes.
	pos := make([]pt, n)
	x0 := 0.0
	for _, comp := range graph.Components(g.IntGraph()) {
		w := rt.Width * float64(len(comp)) / float64(n)
		cx, cy := x0+w/2, rt.Height/2
		x0 += w
		r := rt.Config.LinkDistance * float64(len(comp)) / (2 * math.Pi)
		if limit := math.Min(w, rt.Height)/2 - 10; r > limit {
			r = math.Max(limit, 0)
		}
		if len(comp) == 1 {
			r = 0
		}
		for k, i := range comp {
			a := 2*math.Pi*float64(k)/float64(len(comp)) - math.Pi/2
			pos[i] = pt{cx + r*math.Cos(a), cy + r*math.Sin(a)}
		}
	}
	for round := 0; round < collideRounds; round++ {
		collide(pos, collideRadius, collideAlpha)
	}
	for i := range pos {
		pos[i].x = math.Max(0, math.Min(rt.Width, pos[i].x))
		pos[i].y = math.Max(0, math.Min(rt.Height, pos[i].y))
	}

	f.graph, f.pos = g, pos
	return nil
}

// collide pushes apart every pair of points closer than rb, moving
// both by alpha of the overlap.
func collide(pos []pt, rb, alpha float64) {
	for i := range pos {
		d := &pos[i]
		for j := range pos {
			if i == j {
				continue
			}
			q := &pos[j]
			x, y := d.x-q.x, d.y-q.y
			l := math.Sqrt(x*x + y*y)
			if l == 0 || l >= rb {
				continue
			}
			l = (l - rb) / l * alpha
			x, y = x*l, y*l
			d.x -= x
			d.y -= y
			q.x += x
			q.y += y
		}
	}
}

func (f *Force) Draw(rt *Runtime) {
	f.container = rt.Plot.Add("g").Set("class", "trace-force")
	f.container.Add("rect").Set("class", "overlay").
		SetF("width", rt.Width).SetF("height", rt.Height).Set("fill", "white")
	f.links = f.container.Add("g").Set("class", "links")
	f.nodes = f.container.Add("g").Set("class", "nodes")
	f.Redraw(rt)
}

func (f *Force) Redraw(rt *Runtime) {
	dur := rt.Transition
	g := f.graph

	keys := make([]string, len(g.Links))
	for i, l := range g.Links {
		keys[i] = fmt.Sprintf("%d-%d-%d", l.Source, l.Target, i)
	}
	lines := f.links.Join("line", keys, func(_ int, n *scene.Node) {
		n.Set("class", "link").Set("stroke", "#999")
	})
	for i, l := range g.Links {
		s, t := f.pos[l.Source], f.pos[l.Target]
		lines[i].SetF("stroke-width", math.Sqrt(l.Value)).
			TweenF("x1", s.x, dur).TweenF("y1", s.y, dur).
			TweenF("x2", t.x, dur).TweenF("y2", t.y, dur)
	}

	keys = make([]string, len(g.Nodes))
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	nodes := f.nodes.Join("g", keys, func(_ int, n *scene.Node) {
		n.Set("class", "node")
		n.Add("circle").SetF("r", 5)
		n.Add("text").SetF("x", 12).Set("dy", ".35em").Set("fill", "#000")
	})
	for i, node := range g.Nodes {
		p := f.pos[i]
		nodes[i].Set("transform", fmt.Sprintf("translate(%s,%s)", ff(p.x), ff(p.y)))
		circle := nodes[i].Children[0]
		circle.Tween("fill", rt.Color(node.Group), dur)
		nodes[i].Children[1].Text = node.Name
		rt.Tooltip(circle, Datum{Series: node.Name, Value: float64(node.Group)})
	}
}

func (f *Force) zoom(rt *Runtime, k, tx, ty float64) {
	f.container.Set("transform", fmt.Sprintf("translate(%s,%s)scale(%s)", ff(tx), ff(ty), ff(k)))
}
