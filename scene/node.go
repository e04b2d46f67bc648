// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene is a retained tree of SVG elements.
//
// Charts build a scene once and then update it in place: attributes
// are changed with Set or Tween, and the children that stand for data
// are reconciled against new data with a keyed Join. A scene can be
// serialized as SVG (WriteSVG) or rasterized (Rasterize).
package scene

import (
	"strconv"
	"strings"
	"time"
)

// Attr is a single element attribute.
type Attr struct {
	Name, Value string
}

// Node is an element in a scene.
type Node struct {
	// Tag is the element name, such as "g" or "rect".
	Tag string

	// Key identifies this node among its siblings with the same
	// Tag for Join. It is not serialized.
	Key string

	// Text is the character data of the element. It is written
	// before any children.
	Text string

	Children []*Node

	attrs []Attr
	anims []anim
}

// anim is a pending attribute transition.
type anim struct {
	name, from, to string
	dur            time.Duration
}

// El returns a new element with the given tag.
func El(tag string) *Node {
	return &Node{Tag: tag}
}

// Set sets attribute name to value, replacing any existing value but
// keeping its position.
func (n *Node) Set(name, value string) *Node {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return n
		}
	}
	n.attrs = append(n.attrs, Attr{name, value})
	return n
}

// SetF sets attribute name to the number v.
func (n *Node) SetF(name string, v float64) *Node {
	return n.Set(name, FormatFloat(v))
}

// Get returns the value of attribute name.
func (n *Node) Get(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// GetF returns the value of attribute name parsed as a number. It
// returns 0 if the attribute is absent or not a number.
func (n *Node) GetF(name string) float64 {
	v, _ := n.Get(name)
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

// Del removes attribute name.
func (n *Node) Del(name string) *Node {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			break
		}
	}
	return n
}

// Attrs returns the attributes of n in the order they were first set.
func (n *Node) Attrs() []Attr {
	return n.attrs
}

// Tween sets attribute name to value, animating from the current
// value over dur when the node is displayed. If the attribute had no
// value, or the value is unchanged, no transition is recorded.
func (n *Node) Tween(name, value string, dur time.Duration) *Node {
	if old, ok := n.Get(name); ok && old != value && dur > 0 && name != "transform" {
		n.anims = append(n.anims, anim{name, old, value, dur})
	}
	return n.Set(name, value)
}

// TweenF is Tween for a numeric value.
func (n *Node) TweenF(name string, v float64, dur time.Duration) *Node {
	return n.Tween(name, FormatFloat(v), dur)
}

// Transitions returns the names of the attributes of n with pending
// transitions.
func (n *Node) Transitions() []string {
	var names []string
	for _, a := range n.anims {
		names = append(names, a.name)
	}
	return names
}

// ClearTransitions drops the pending transitions of n and all of its
// descendants.
func (n *Node) ClearTransitions() {
	n.Walk(func(x *Node) bool {
		x.anims = nil
		return true
	})
}

// Append adds c as the last child of n and returns c.
func (n *Node) Append(c *Node) *Node {
	n.Children = append(n.Children, c)
	return c
}

// Add appends a new element with the given tag to n and returns it.
func (n *Node) Add(tag string) *Node {
	return n.Append(El(tag))
}

// Class returns the class attribute of n.
func (n *Node) Class() string {
	c, _ := n.Get("class")
	return c
}

// HasClass reports whether class is one of n's classes.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class()) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk calls f for n and each of its descendants in document order.
// If f returns false, the children of that node are skipped.
func (n *Node) Walk(f func(*Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(f)
	}
}

// Select returns the first node in n's subtree, including n, that has
// the given class.
func (n *Node) Select(class string) *Node {
	var found *Node
	n.Walk(func(x *Node) bool {
		if found != nil {
			return false
		}
		if x.HasClass(class) {
			found = x
			return false
		}
		return true
	})
	return found
}

// SelectAll returns all nodes in n's subtree with the given class.
func (n *Node) SelectAll(class string) []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if x.HasClass(class) {
			out = append(out, x)
		}
		return true
	})
	return out
}

// Join reconciles the children of n that have the given tag with
// keys. Existing children whose key is in keys are kept; children
// whose key is not in keys are removed; and a new child is created
// for each key without one, after which enter is called on it. The
// joined children are placed in keys order at the position of the
// first such child (or at the end), leaving other children of n
// where they are. Join returns the joined children in keys order.
//
// Duplicate keys share a node.
func (n *Node) Join(tag string, keys []string, enter func(i int, c *Node)) []*Node {
	old := make(map[string]*Node)
	pos := -1
	var rest []*Node
	for _, c := range n.Children {
		if c.Tag != tag {
			rest = append(rest, c)
			continue
		}
		if pos < 0 {
			pos = len(rest)
		}
		old[c.Key] = c
	}
	if pos < 0 {
		pos = len(rest)
	}

	joined := make([]*Node, len(keys))
	var kids []*Node
	seen := make(map[string]bool)
	for i, k := range keys {
		c := old[k]
		if c == nil {
			c = &Node{Tag: tag, Key: k}
			old[k] = c
			if enter != nil {
				enter(i, c)
			}
		}
		joined[i] = c
		if !seen[k] {
			seen[k] = true
			kids = append(kids, c)
		}
	}

	children := make([]*Node, 0, len(rest)+len(kids))
	children = append(children, rest[:pos]...)
	children = append(children, kids...)
	children = append(children, rest[pos:]...)
	n.Children = children
	return joined
}

// FormatFloat formats v the way attribute values are written: at most
// six significant digits and no exponent for ordinary pixel values.
func FormatFloat(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
