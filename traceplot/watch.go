// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/aclements/go-trace/trace"
)

// watch redraws c to r's outputs each time one of paths is written.
// Bad input is reported and leaves the chart as it was. watch returns
// only if the watcher fails.
func watch(c *trace.Chart, r *renderer, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directories so files replaced by rename are still
	// seen.
	watched := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	sr := NewStatusReporter()
	defer sr.Stop()
	updates := 0
	sr.Status(fmt.Sprintf("watching %d file(s)", len(paths)))
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if abs, err := filepath.Abs(ev.Name); err != nil || !watched[abs] {
				continue
			}
			if err := reload(c, r, paths); err != nil {
				sr.Message(err.Error())
				continue
			}
			updates++
			sr.Status(fmt.Sprintf("%d update(s), last from %s", updates, filepath.Base(ev.Name)))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// reload reads paths again and moves c to the new data.
func reload(c *trace.Chart, r *renderer, paths []string) error {
	data, err := readInputs(paths)
	if err != nil {
		return err
	}
	if err := c.Update(data); err != nil {
		return err
	}
	return r.write(c)
}
