// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/aclements/go-trace/series"
	"github.com/aclements/go-trace/trace"
)

// ReadJSON reads a series.Set from a JSON object mapping series names
// to arrays of observations:
//
//	{"Agree": [["Q1", 10, 2], ["Q2", 5]], "Disagree": [["Q1", 4, 6], ["Q2", null]]}
//
// Each observation is [category, value] or [category, value,
// baseline]. A null value is a missing observation. A series may also
// be a single number, which is read as one observation at category 0;
// this is the natural input of a pie chart. Series are kept in the
// order they appear in the object.
//
// Categories written as JSON numbers are numbers. Categories written as
// JSON strings are times if they all parse as times, and otherwise
// strings.
func ReadJSON(r io.Reader) (*series.Set, error) {
	dec := jsontext.NewDecoder(r)
	if err := expect(dec, '{'); err != nil {
		return nil, err
	}
	var b builder
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		name := tok.String()
		b.series(name)

		switch dec.PeekKind() {
		case '0':
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			b.add(name, rawObs{cat: "0", num: true, value: tok.Float()})
		case '[':
			if err := readObservations(dec, &b, name); err != nil {
				return nil, fmt.Errorf("series %q: %w", name, err)
			}
		default:
			return nil, fmt.Errorf("series %q: offset %d: want array or number", name, dec.InputOffset())
		}
	}
	if err := expect(dec, '}'); err != nil {
		return nil, err
	}
	return b.done([]CategoryParser{parseTime}), nil
}

func readObservations(dec *jsontext.Decoder, b *builder, name string) error {
	if err := expect(dec, '['); err != nil {
		return err
	}
	for dec.PeekKind() != ']' {
		if err := expect(dec, '['); err != nil {
			return err
		}
		var o rawObs
		tok, err := dec.ReadToken()
		if err != nil {
			return err
		}
		switch tok.Kind() {
		case '0':
			o.cat, o.num = tok.String(), true
		case '"':
			o.cat = tok.String()
		default:
			return fmt.Errorf("offset %d: category must be a number or string", dec.InputOffset())
		}

		if tok, err = dec.ReadToken(); err != nil {
			return err
		}
		switch tok.Kind() {
		case '0':
			o.value = tok.Float()
		case 'n':
			o.missing = true
		default:
			return fmt.Errorf("offset %d: value must be a number or null", dec.InputOffset())
		}

		if dec.PeekKind() == '0' {
			tok, err := dec.ReadToken()
			if err != nil {
				return err
			}
			o.baseline = tok.Float()
		}
		if err := expect(dec, ']'); err != nil {
			return err
		}
		b.add(name, o)
	}
	return expect(dec, ']')
}

// expect reads a token of kind k from dec.
func expect(dec *jsontext.Decoder, k jsontext.Kind) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	if tok.Kind() != k {
		return fmt.Errorf("offset %d: want %v, got %v", dec.InputOffset(), k, tok.Kind())
	}
	return nil
}

// jsonGraph is the JSON form of a trace.Graph. A node's name may be
// given directly or as meta.name.
type jsonGraph struct {
	Nodes []struct {
		Name  string `json:"name"`
		Group int    `json:"group"`
		Meta  struct {
			Name string `json:"name"`
		} `json:"meta"`
	} `json:"nodes"`
	Links []struct {
		Source int     `json:"source"`
		Target int     `json:"target"`
		Value  float64 `json:"value"`
	} `json:"links"`
}

// ReadGraph reads the nodes and links of a force-directed chart:
//
//	{"nodes": [{"name": "a", "group": 1}, ...],
//	 "links": [{"source": 0, "target": 1, "value": 4}, ...]}
//
// Links refer to nodes by index.
func ReadGraph(r io.Reader) (*trace.Graph, error) {
	var jg jsonGraph
	if err := json.UnmarshalRead(r, &jg); err != nil {
		return nil, err
	}
	g := &trace.Graph{
		Nodes: make([]trace.Node, len(jg.Nodes)),
		Links: make([]trace.Link, len(jg.Links)),
	}
	for i, n := range jg.Nodes {
		name := n.Name
		if name == "" {
			name = n.Meta.Name
		}
		g.Nodes[i] = trace.Node{Name: name, Group: n.Group}
	}
	for i, l := range jg.Links {
		if l.Source < 0 || l.Source >= len(g.Nodes) || l.Target < 0 || l.Target >= len(g.Nodes) {
			return nil, fmt.Errorf("link %d: %d-%d refers to a missing node", i, l.Source, l.Target)
		}
		g.Links[i] = trace.Link{Source: l.Source, Target: l.Target, Value: l.Value}
	}
	return g, nil
}

// ReadRegions reads the shapes of a choropleth from a JSON object
// mapping region names to SVG path data, in plot coordinates. Regions
// are kept in the order they appear.
func ReadRegions(r io.Reader) ([]trace.Region, error) {
	dec := jsontext.NewDecoder(r)
	if err := expect(dec, '{'); err != nil {
		return nil, err
	}
	var regions []trace.Region
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		// Tokens are only valid until the next read.
		name := tok.String()
		tok, err = dec.ReadToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind() != '"' {
			return nil, fmt.Errorf("region %q: path must be a string", name)
		}
		regions = append(regions, trace.Region{Name: name, Path: tok.String()})
	}
	if err := expect(dec, '}'); err != nil {
		return nil, err
	}
	return regions, nil
}
