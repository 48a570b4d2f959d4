// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getopt - POSIX style getopt with long option aliases.

Options are declared with a getopt optstring and read one at a time from the parser.

	p, err := getopt.New(":f:lr(recurse)", os.Args[1:], false)
	if err != nil {
		return err
	}
	for o := range p.All() {
		switch o.Option {
		case 'f':
			file = o.Optarg
		case 'r':
			recurse = true
		case getopt.Unknown:
			fmt.Fprintf(os.Stderr, "illegal option -- %s\n", o.Optopt)
		}
	}

# Optstring

• A leading ':' sets silent mode, reported by Parser.Silent.

• Each character defines a short option, for example `l` for `-l`.

• A ':' after the character makes the option require an argument, for example `f:`.

• One or more `(name)` groups after the option define long aliases, for example `r(recurse)(rec)` for `--recurse` and `--rec`.

# Arguments

• Short options can be bundled: `-la` is the same as `-l -a`.

• Long options take their argument inline with `=` or as the next argument: `--file=x`, `--file x`.

• Short options take their argument as the next argument: `-f x`.
`-fx` is read as the options `f` and `x`.

• Operands that are not option arguments are skipped.

• A lone dash `-` ends option processing, it and all arguments after it are ignored.
`--` is not an end of options marker, it is read as a long option with an empty name.

# Errors

Unknown options are not errors, they are returned with the Unknown ('?') option character.
An option that requires an argument but finds none is returned without an argument.
The only error is an invalid optstring returned by New, see ErrInvalidSpec.
*/
package getopt
