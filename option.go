// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"fmt"
	"strings"
)

// Unknown - Option character returned for options not in the optstring.
const Unknown = '?'

// Option - A single result from Getopt.
type Option struct {
	Option rune   // Option character, Unknown when the option is not defined
	Optopt string // Unknown option name or character as given on the command line

	// Optarg holds the option argument when HasOptarg is set.
	// An option that requires an argument but has none at the end of the input is returned without one.
	Optarg    string
	HasOptarg bool
}

// String - Renders the option as: { option: 'f', optarg: 'filename' }
func (o Option) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{ option: '%c'", o.Option)
	if o.Option == Unknown {
		fmt.Fprintf(&b, ", optopt: '%s'", o.Optopt)
	}
	if o.HasOptarg {
		fmt.Fprintf(&b, ", optarg: '%s'", o.Optarg)
	}
	b.WriteString(" }")
	return b.String()
}
