// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"bytes"
	"io"
	"testing"
)

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	t.Helper()
	buf := bytes.NewBufferString("")
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
		Logger.SetOutput(io.Discard)
	}
}

// collect - Drains the parser with Getopt.
func collect(p *Parser) []Option {
	got := []Option{}
	for {
		o, ok := p.Getopt()
		if !ok {
			return got
		}
		got = append(got, o)
	}
}
