// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched (with errors.Is) by every error that
// reports data a chart cannot be built from.
var ErrInvalidInput = errors.New("invalid input")

// An InputError reports a problem with the shape or content of a Set.
type InputError struct {
	// Series is the name of the offending series, or "" if the
	// problem is with the set as a whole.
	Series string

	// Index is the index of the offending observation within
	// Series, or -1.
	Index int

	Reason string
}

func (e *InputError) Error() string {
	switch {
	case e.Series == "" && e.Index < 0:
		return fmt.Sprintf("invalid input: %s", e.Reason)
	case e.Index < 0:
		return fmt.Sprintf("invalid input: series %q: %s", e.Series, e.Reason)
	}
	return fmt.Sprintf("invalid input: series %q observation %d: %s", e.Series, e.Index, e.Reason)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Errorf returns an *InputError about the set as a whole.
func Errorf(format string, args ...interface{}) error {
	return &InputError{Index: -1, Reason: fmt.Sprintf(format, args...)}
}
