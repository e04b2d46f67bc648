// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/go-trace/series"
)

func Print(set *series.Set) error {
	return Fprint(os.Stdout, set)
}

// Fprint writes set to w in the text format read by ReadText.
func Fprint(w io.Writer, set *series.Set) error {
	for i := 0; i < set.Len(); i++ {
		ser := set.Series(i)
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "series: %s\n", ser.Name); err != nil {
			return err
		}

		// Construct observation lines.
		lines := make([][]string, 0, len(ser.Obs))
		for _, o := range ser.Obs {
			line := []string{shellquote.Join(o.Category.String())}
			if o.Missing {
				line = append(line, "-")
			} else {
				line = append(line, strconv.FormatFloat(o.Value, 'g', -1, 64))
			}
			if o.Baseline != 0 {
				line = append(line, strconv.FormatFloat(o.Baseline, 'g', -1, 64))
			}
			lines = append(lines, line)
		}

		// Compute column widths.
		widths := make([]int, 0)
		for _, line := range lines {
			for i, elt := range line {
				if i >= len(widths) {
					widths = append(widths, len(elt))
				} else if len(elt) > widths[i] {
					widths[i] = len(elt)
				}
			}
		}

		// Print lines.
		for _, line := range lines {
			for i, elt := range line {
				var err error
				switch {
				case i == 0 && len(line) > 1:
					// Left align and pad.
					_, err = fmt.Fprintf(w, "%-*s  ", widths[i], elt)
				case i < len(line)-1:
					_, err = fmt.Fprintf(w, "%*s  ", widths[i], elt)
				default:
					// Right align, EOL.
					_, err = fmt.Fprintf(w, "%*s\n", widths[i], elt)
				}
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
