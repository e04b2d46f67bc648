// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Doc is a complete drawing: a scene tree and the size of its
// surface in pixels. The attributes of Root are written on the
// outermost <svg> element; its children make up the drawing.
type Doc struct {
	Width, Height int
	Root          *Node
}

// NewDoc returns a Doc with an empty root.
func NewDoc(width, height int) *Doc {
	return &Doc{width, height, El("svg")}
}

// errWriter remembers the first write error. svgo does not report
// errors itself.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG writes d to w as a standalone SVG document.
func (d *Doc) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(d.Width, d.Height, attrStrings(d.Root.attrs)...)
	if d.Root.Text != "" {
		canvas.Desc(d.Root.Text)
	}
	for _, c := range d.Root.Children {
		writeNode(canvas, c)
	}
	canvas.End()
	return ew.err
}

// SVG returns d as an SVG document.
func (d *Doc) SVG() string {
	var buf bytes.Buffer
	d.WriteSVG(&buf)
	return buf.String()
}

func writeNode(canvas *svg.SVG, n *Node) {
	switch {
	case n.Tag == "g" && len(n.Children) > 0 && n.Text == "":
		canvas.Group(attrStrings(n.attrs)...)
		writeAnims(canvas, n)
		for _, c := range n.Children {
			writeNode(canvas, c)
		}
		canvas.Gend()
		return
	case n.Tag == "title" && len(n.attrs) == 0 && len(n.Children) == 0:
		canvas.Title(n.Text)
		return
	}

	w := canvas.Writer
	fmt.Fprintf(w, "<%s", n.Tag)
	for _, a := range n.attrs {
		v := escape(a.Value)
		if a.Name == "d" {
			v = wrapPath(v)
		}
		fmt.Fprintf(w, ` %s="%s"`, a.Name, v)
	}
	if n.Text == "" && len(n.Children) == 0 && len(n.anims) == 0 {
		io.WriteString(w, "/>\n")
		return
	}
	io.WriteString(w, ">")
	io.WriteString(w, escape(n.Text))
	if len(n.Children) > 0 || len(n.anims) > 0 {
		io.WriteString(w, "\n")
	}
	writeAnims(canvas, n)
	for _, c := range n.Children {
		writeNode(canvas, c)
	}
	fmt.Fprintf(w, "</%s>\n", n.Tag)
}

func writeAnims(canvas *svg.SVG, n *Node) {
	for _, a := range n.anims {
		fmt.Fprintf(canvas.Writer, `<animate attributeName="%s" from="%s" to="%s" dur="%gs" fill="freeze"/>`+"\n",
			a.name, escape(a.from), escape(a.to), a.dur.Seconds())
	}
}

// attrStrings returns attrs in the name="value" form svgo passes
// through verbatim.
func attrStrings(attrs []Attr) []string {
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = fmt.Sprintf(`%s="%s"`, a.Name, escape(a.Value))
	}
	return out
}

func escape(s string) string {
	if !strings.ContainsAny(s, `<>&"'`+"\t\n\r") {
		return s
	}
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// wrapPath wraps path data p to avoid exceeding SVG's recommended
// line length limit of 255 characters.
func wrapPath(p string) string {
	const width = 70
	if len(p) <= width {
		return p
	}
	// Chop up p until we get below the width limit.
	parts := make([]string, 0, 16)
	for len(p) > width {
		// Find the last command or space before exceeding width.
		lastCmd, lastSpace := 0, 0
		for i, ch := range p {
			if i >= width && (lastCmd != 0 || lastSpace != 0) {
				break
			}
			if 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' {
				lastCmd = i
			} else if ch == ' ' {
				lastSpace = i
			}
		}
		split := len(p)
		// Prefer splitting at commands, but take spaces in
		// case it's a huge command.
		if lastCmd != 0 {
			split = lastCmd
		} else if lastSpace != 0 {
			split = lastSpace
		}
		parts, p = append(parts, p[:split]), p[split:]
	}
	parts = append(parts, p)
	return strings.Join(parts, "\n")
}
