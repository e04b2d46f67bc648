// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads and writes chart data.
//
// A series.Set can be read from three formats: JSON (ReadJSON), a
// line-oriented text format (ReadText), and Excel workbooks
// (ReadXLSX). ReadFile picks one by file extension. The inputs of
// force-directed and choropleth charts are read with ReadGraph and
// ReadRegions.
//
// In every format, categories are written as text and their kind is
// inferred from all of the categories of a data set together: if every
// category parses as a number, they are numbers; otherwise, if every
// category parses as a time, they are times; otherwise they are
// strings.
package dataset

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-trace/series"
)

// ReadFile reads a series.Set from path, choosing the format by its
// extension: ".json" for JSON, ".xlsx" or ".xlsm" for Excel, and the
// text format for anything else. A path of "-" reads text from
// standard input.
func ReadFile(path string) (*series.Set, error) {
	if path == "-" {
		return ReadText(os.Stdin, "<stdin>")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var set *series.Set
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		set, err = ReadJSON(f)
	case ".xlsx", ".xlsm":
		set, err = ReadXLSX(f)
	default:
		return ReadText(f, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// A CategoryParser parses the text of a category into a Category or
// returns an error if it cannot.
type CategoryParser func(string) (series.Category, error)

// DefaultCategoryParsers is the sequence of parsers tried on the
// categories of a data set. The first parser that accepts every
// category decides their kind. Categories no parser accepts for the
// whole set are strings.
var DefaultCategoryParsers = []CategoryParser{
	parseNumber,
	parseTime,
}

func parseNumber(s string) (series.Category, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return series.Category{}, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return series.Category{}, fmt.Errorf("category %q is not finite", s)
	}
	return series.Number(x), nil
}

// timeLayouts are the layouts accepted for time categories.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
}

func parseTime(s string) (series.Category, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return series.Time(t), nil
		}
	}
	return series.Category{}, fmt.Errorf("cannot parse %q as a time", s)
}

// rawObs is an observation whose category has not been resolved.
type rawObs struct {
	cat string
	// num indicates the category was written as a number, not
	// text, so it is a number regardless of the other categories.
	num bool

	value, baseline float64
	missing         bool
}

// builder accumulates series in input order. Observations of a name
// that was already seen are appended to that series.
type builder struct {
	names []string
	obs   [][]rawObs
	index map[string]int
}

func (b *builder) series(name string) int {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	i, ok := b.index[name]
	if !ok {
		i = len(b.names)
		b.index[name] = i
		b.names = append(b.names, name)
		b.obs = append(b.obs, nil)
	}
	return i
}

func (b *builder) add(name string, o rawObs) {
	i := b.series(name)
	b.obs[i] = append(b.obs[i], o)
}

// done resolves the categories of the accumulated observations using
// parsers and returns the set.
func (b *builder) done(parsers []CategoryParser) *series.Set {
	var texts []string
	for _, obs := range b.obs {
		for _, o := range obs {
			if !o.num {
				texts = append(texts, o.cat)
			}
		}
	}
	parse := resolve(texts, parsers)

	set := series.NewSet()
	for i, name := range b.names {
		obs := make([]series.Observation, len(b.obs[i]))
		for j, o := range b.obs[i] {
			var c series.Category
			if o.num {
				c, _ = parseNumber(o.cat)
			} else {
				c, _ = parse(o.cat)
			}
			obs[j] = series.Observation{Category: c, Value: o.value, Baseline: o.baseline, Missing: o.missing}
		}
		set.Add(name, obs...)
	}
	return set
}

// resolve returns the first of parsers that accepts all of texts, or
// a parser of string categories.
func resolve(texts []string, parsers []CategoryParser) CategoryParser {
	if len(texts) > 0 {
	tryParsers:
		for _, p := range parsers {
			for _, s := range texts {
				if _, err := p(s); err != nil {
					continue tryParsers
				}
			}
			return p
		}
	}
	return func(s string) (series.Category, error) { return series.String(s), nil }
}
