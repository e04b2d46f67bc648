// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/go-trace/series"
)

var seriesRe = regexp.MustCompile(`^series:(?:[ \t]+(.*))?$`)

// ReadText reads a series.Set in the text format from r. name is used
// in error messages.
//
// The text format is line oriented. A line "series: NAME" starts the
// series NAME, and each following data line adds an observation to
// it:
//
//	series: Disagree
//	Q1        4  6
//	"Q 2"     3
//	Q3        -
//
// A data line has two or three fields: the category, the value, and
// an optional baseline. Fields are separated by white space and may be
// quoted like shell words. A value of "-" or "null" is a missing
// observation. Blank lines and lines starting with "#" are ignored.
// Data lines before the first series line belong to a series named "".
func ReadText(r io.Reader, name string) (*series.Set, error) {
	var b builder
	cur := ""
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Series lines.
		if m := seriesRe.FindStringSubmatch(line); m != nil {
			cur = m[1]
			b.series(cur)
			continue
		}

		// Data lines.
		o, err := parseDataLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
		b.add(cur, o)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.done(DefaultCategoryParsers), nil
}

func parseDataLine(line string) (rawObs, error) {
	f, err := shellquote.Split(line)
	if err != nil {
		return rawObs{}, err
	}
	if len(f) < 2 || len(f) > 3 {
		return rawObs{}, fmt.Errorf("want category, value and optional baseline; got %d fields", len(f))
	}
	o := rawObs{cat: f[0]}
	if f[1] == "-" || f[1] == "null" {
		o.missing = true
	} else if o.value, err = strconv.ParseFloat(f[1], 64); err != nil {
		return rawObs{}, fmt.Errorf("bad value %q", f[1])
	}
	if len(f) == 3 {
		if o.baseline, err = strconv.ParseFloat(f[2], 64); err != nil {
			return rawObs{}, fmt.Errorf("bad baseline %q", f[2])
		}
	}
	return o, nil
}
