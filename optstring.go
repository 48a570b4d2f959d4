// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"slices"
)

// optionSpec - lookup tables built from the optstring.
type optionSpec struct {
	silent  bool            // optstring started with ':'
	options map[rune]bool   // option character -> requires an argument
	aliases map[string]rune // long option name -> option character
}

/*
parseOptstring - Parse the optstring into the options and aliases tables.

	:      leading colon, silent mode
	c      option c, no argument
	c:     option c, requires an argument
	c(l)   long option --l is an alias for c, can be repeated: c:(l1)(l2)

Only an unmatched '(' is an error.
Repeated option characters overwrite the earlier definition and any character is accepted as an option.
*/
func parseOptstring(optstring string) (*optionSpec, error) {
	spec := &optionSpec{
		options: make(map[rune]bool),
		aliases: make(map[string]rune),
	}
	chars := []rune(optstring)

	i := 0
	if len(chars) > 0 && chars[0] == ':' {
		spec.silent = true
		i++
	}

	for i < len(chars) {
		c := chars[i]
		requiresArg := false
		if i+1 < len(chars) && chars[i+1] == ':' {
			requiresArg = true
			i++
		}
		spec.options[c] = requiresArg
		Logger.Printf("option '%c', requires argument: %v", c, requiresArg)

		for i+1 < len(chars) && chars[i+1] == '(' {
			i++
			end := slices.Index(chars[i+1:], ')')
			if end == -1 {
				return nil, &InvalidSpecError{Optstring: optstring, Position: i}
			}
			end += i + 1
			alias := string(chars[i+1 : end])
			spec.aliases[alias] = c
			Logger.Printf("alias '%s' -> '%c'", alias, c)
			i = end
		}
		i++
	}
	return spec, nil
}
