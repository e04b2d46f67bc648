// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-trace/series"
)

// ErrConfig is matched (with errors.Is) by every error that reports
// an invalid chart configuration.
var ErrConfig = errors.New("invalid chart configuration")

// A ConfigError reports an invalid option or combination of options.
// ConfigErrors also match series.ErrInvalidInput.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid chart configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig || target == series.ErrInvalidInput
}

func configErrorf(field, format string, args ...interface{}) error {
	return &ConfigError{field, fmt.Sprintf(format, args...)}
}

// Warning is a logger for reporting conditions that don't prevent a
// chart from being drawn, but may lead to unexpected output.
var Warning = log.New(os.Stderr, "[trace] ", log.Lshortfile)
