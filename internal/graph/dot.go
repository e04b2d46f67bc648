// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Dot contains options for generating a Graphviz Dot graph from a
// Graph.
type Dot struct {
	// Name is the name given to the graph. Usually this can be
	// left blank.
	Name string

	// Undirected writes a "graph" with "--" edges instead of a
	// "digraph".
	Undirected bool

	// Label returns the string to use as a label for the given
	// node. If nil, nodes are labeled with their node numbers.
	Label func(node int) string

	// Group, if non-nil, returns a group number for each node.
	// Nodes are colored by group.
	Group func(node int) int

	// Weight, if non-nil, returns the weight of an edge, which is
	// written as its penwidth.
	Weight func(from, to int) float64
}

// Fprint writes the Dot form of g to w.
func (d Dot) Fprint(g Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	kind, arrow := "digraph", "->"
	if d.Undirected {
		kind, arrow = "graph", "--"
	}
	fmt.Fprintf(bw, "%s %s {\n", kind, dotString(d.Name))
	for i := 0; i < g.NumNodes(); i++ {
		label := strconv.Itoa(i)
		if d.Label != nil {
			label = d.Label(i)
		}
		fmt.Fprintf(bw, "n%d [label=%s", i, dotString(label))
		if d.Group != nil {
			// Graphviz color schemes are 1-based.
			fmt.Fprintf(bw, ",style=filled,colorscheme=set19,fillcolor=%d", d.Group(i)%9+1)
		}
		fmt.Fprintf(bw, "];\n")
	}
	for i := 0; i < g.NumNodes(); i++ {
		for _, j := range g.Out(i) {
			fmt.Fprintf(bw, "n%d %s n%d", i, arrow, j)
			if d.Weight != nil {
				fmt.Fprintf(bw, " [penwidth=%g]", d.Weight(i, j))
			}
			fmt.Fprintf(bw, ";\n")
		}
	}
	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

// dotString returns s as a quoted dot string.
func dotString(s string) string {
	buf := []byte{'"'}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\\', '"':
			buf = append(buf, '\\', s[i])
		default:
			buf = append(buf, s[i])
		}
	}
	buf = append(buf, '"')
	return string(buf)
}
