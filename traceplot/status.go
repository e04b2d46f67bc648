// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/crypto/ssh/terminal"
)

// StatusReporter keeps a one-line status at the bottom of the
// terminal while -watch runs. When stdout is not a terminal, it
// prints only messages.
type StatusReporter struct {
	w      io.Writer
	update chan<- statusUpdate
	done   chan bool
}

type statusUpdate struct {
	status  string
	message string
}

func NewStatusReporter() *StatusReporter {
	if os.Getenv("TERM") == "dumb" || !terminal.IsTerminal(1) {
		return &StatusReporter{w: os.Stdout}
	}
	update := make(chan statusUpdate)
	sr := &StatusReporter{w: os.Stdout, update: update}
	go sr.loop(update)
	return sr
}

// Status replaces the status line.
func (sr *StatusReporter) Status(status string) {
	if sr.update != nil {
		sr.update <- statusUpdate{status: status}
	}
}

// Message prints msg above the status line.
func (sr *StatusReporter) Message(msg string) {
	if sr.update == nil {
		fmt.Fprintln(sr.w, msg)
	} else {
		sr.update <- statusUpdate{message: msg}
	}
}

func (sr *StatusReporter) Stop() {
	if sr.update != nil {
		sr.done = make(chan bool)
		close(sr.update)
		<-sr.done
		sr.update = nil
	}
}

func (sr *StatusReporter) loop(updates <-chan statusUpdate) {
	const resetLine = "\r\x1b[2K"
	const wrapOff = "\x1b[?7l"
	const wrapOn = "\x1b[?7h"

	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	var status string
	var since time.Time
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				fmt.Fprint(sr.w, resetLine)
				close(sr.done)
				return
			}
			if update.message != "" {
				fmt.Fprint(sr.w, resetLine)
				fmt.Fprintln(sr.w, update.message)
				break
			}
			status, since = update.status, time.Now()

		case <-tick.C:
		}

		age := time.Since(since)
		age -= age % time.Second
		fmt.Fprintf(sr.w, "%s%s%s (%v ago)%s", resetLine, wrapOff, status, age, wrapOn)
	}
}
