// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/aclements/go-trace/series"
)

// baselineSuffix marks a header cell whose column holds the baselines
// of another series.
const baselineSuffix = ":baseline"

// ReadXLSX reads a series.Set from the first sheet of an Excel
// workbook. The first row names the series, one per column after the
// first, and the first column holds the categories. A column headed
// "NAME:baseline" holds the baselines of series NAME. Empty cells are
// skipped; cells containing "-" or "null" are missing observations.
func ReadXLSX(r io.Reader) (*series.Set, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	// Gather value and baseline columns.
	type column struct {
		name      string
		col, base int
	}
	var cols []column
	bases := make(map[string]int)
	for j, h := range rows[0] {
		if j == 0 {
			continue
		}
		h = strings.TrimSpace(h)
		if name, ok := strings.CutSuffix(h, baselineSuffix); ok {
			bases[name] = j
		} else {
			cols = append(cols, column{h, j, -1})
		}
	}
	for i := range cols {
		if j, ok := bases[cols[i].name]; ok {
			cols[i].base = j
			delete(bases, cols[i].name)
		}
	}
	if len(bases) > 0 {
		names := maps.Keys(bases)
		slices.Sort(names)
		return nil, fmt.Errorf("sheet %s: baseline columns without a series: %s", sheets[0], strings.Join(names, ", "))
	}

	cell := func(row []string, j int) string {
		if j < 0 || j >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[j])
	}
	number := func(s string, row, col int) (float64, error) {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			name, _ := excelize.CoordinatesToCellName(col+1, row+1)
			return 0, fmt.Errorf("sheet %s: cell %s: bad number %q", sheets[0], name, s)
		}
		return x, nil
	}

	var b builder
	for _, c := range cols {
		b.series(c.name)
	}
	for i, row := range rows[1:] {
		i++
		cat := cell(row, 0)
		if cat == "" {
			continue
		}
		for _, c := range cols {
			v := cell(row, c.col)
			if v == "" {
				continue
			}
			o := rawObs{cat: cat}
			if v == "-" || v == "null" {
				o.missing = true
			} else if o.value, err = number(v, i, c.col); err != nil {
				return nil, err
			}
			if bv := cell(row, c.base); bv != "" {
				if o.baseline, err = number(bv, i, c.base); err != nil {
					return nil, err
				}
			}
			b.add(c.name, o)
		}
	}
	return b.done(DefaultCategoryParsers), nil
}
