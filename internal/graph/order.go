// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// preOrder visits the nodes reachable from root that are not yet
// marked in visited, in depth-first pre-order, marking them as it
// goes.
func preOrder(g Graph, root int, visited []bool) []int {
	out := []int{}
	// Successors are pushed in reverse so they pop in edge order,
	// matching a recursive traversal.
	stack := []int{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		out = append(out, n)
		succs := g.Out(n)
		for i := len(succs) - 1; i >= 0; i-- {
			if !visited[succs[i]] {
				stack = append(stack, succs[i])
			}
		}
	}
	return out
}
