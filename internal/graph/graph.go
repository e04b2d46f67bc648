// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph provides small directed-graph utilities used to lay
// out and export node-link data.
package graph

// Graph represents a directed graph. The nodes of the graph must be
// densely numbered starting at 0.
type Graph interface {
	// NumNodes returns the number of nodes in this graph.
	NumNodes() int

	// Out returns the nodes to which node i points.
	Out(i int) []int
}

// BiGraph extends Graph to graphs that represent both out-edges and
// in-edges.
type BiGraph interface {
	Graph

	// In returns the nodes which point to node i.
	In(i int) []int
}

// MakeBiGraph constructs a BiGraph from what may be a unidirectional
// Graph. If g is already a BiGraph, this returns g.
func MakeBiGraph(g Graph) BiGraph {
	if g, ok := g.(BiGraph); ok {
		return g
	}
	in := make(IntGraph, g.NumNodes())
	for i := range in {
		for _, j := range g.Out(i) {
			in[j] = append(in[j], i)
		}
	}
	return &bigraph{g, in}
}

type bigraph struct {
	Graph
	in IntGraph
}

func (b *bigraph) In(i int) []int {
	return b.in[i]
}

// IntGraph is a basic Graph g where g[i] is the list of out-edge
// indexes of node i.
type IntGraph [][]int

func (g IntGraph) NumNodes() int {
	return len(g)
}

func (g IntGraph) Out(i int) []int {
	return g[i]
}

// FromEdges returns the IntGraph with n nodes and the given edges.
// Edges that name a node outside [0, n) are dropped. Duplicate edges
// are kept once.
func FromEdges(n int, edges [][2]int) IntGraph {
	g := make(IntGraph, n)
	seen := make(map[[2]int]bool)
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n || seen[e] {
			continue
		}
		seen[e] = true
		g[e[0]] = append(g[e[0]], e[1])
	}
	return g
}

// Undirected returns the symmetric closure of g: node j is a
// successor of i if g has an edge between i and j in either
// direction. Successors keep g's out-edge order followed by its
// in-edge order.
func Undirected(g Graph) IntGraph {
	b := MakeBiGraph(g)
	u := make(IntGraph, g.NumNodes())
	for i := range u {
		seen := make(map[int]bool)
		for _, list := range [][]int{b.Out(i), b.In(i)} {
			for _, j := range list {
				if j != i && !seen[j] {
					seen[j] = true
					u[i] = append(u[i], j)
				}
			}
		}
	}
	return u
}

// Components returns the connected components of g, ignoring edge
// direction. Each component lists its nodes in pre-order from its
// lowest-numbered node, and components are ordered by that node.
func Components(g Graph) [][]int {
	u := Undirected(g)
	visited := make([]bool, u.NumNodes())
	var out [][]int
	for root := range visited {
		if visited[root] {
			continue
		}
		comp := preOrder(u, root, visited)
		out = append(out, comp)
	}
	return out
}
