// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"io"
	"iter"
	"log"
	"unicode/utf8"

	"github.com/DavidGamba/go-getopt/internal/sliceiterator"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Parser - Iterates over the options found in an argument list.
//
// A Parser is not safe for concurrent use, calls to Getopt must be serialized by the caller.
type Parser struct {
	silent  bool
	opterr  bool
	options map[rune]bool
	aliases map[string]rune
	tokens  *sliceiterator.Iterator[token]
}

// New - Builds a Parser for argv using the options defined in optstring.
//
// The optstring and argv are fully processed before New returns.
// The only error is an unmatched '(' in the optstring, see InvalidSpecError.
//
// opterr is stored and returned by OptErr, it doesn't change how arguments are parsed.
func New(optstring string, argv []string, opterr bool) (*Parser, error) {
	spec, err := parseOptstring(optstring)
	if err != nil {
		return nil, err
	}
	return &Parser{
		silent:  spec.silent,
		opterr:  opterr,
		options: spec.options,
		aliases: spec.aliases,
		tokens:  sliceiterator.New(tokenize(argv)),
	}, nil
}

// Silent - Indicates the optstring started with ':'.
// In silent mode reporting unknown options to the user is left to the caller.
// Getopt never prints in either mode.
func (p *Parser) Silent() bool {
	return p.silent
}

// OptErr - Returns the opterr value given to New.
func (p *Parser) OptErr() bool {
	return p.opterr
}

// Getopt - Returns the next option and true, or false once there are no more options.
//
// Operands not consumed as option arguments are skipped.
// Options not defined in the optstring are returned with the Unknown option character and the name used in Optopt.
// An option that requires an argument takes the next argument unless it is an option.
func (p *Parser) Getopt() (Option, bool) {
	for p.tokens.Next() {
		t := p.tokens.Value()

		var c rune
		switch t.kind {
		case longOption:
			var ok bool
			c, ok = p.aliases[t.value]
			if !ok {
				Logger.Printf("unknown long option '%s'", t.value)
				return Option{Option: Unknown, Optopt: t.value}, true
			}
		case shortOption:
			c, _ = utf8.DecodeRuneInString(t.value)
			if _, ok := p.options[c]; !ok {
				Logger.Printf("unknown option '%s'", t.value)
				return Option{Option: Unknown, Optopt: t.value}, true
			}
		default:
			// Operands and values left behind by unknown or argument-less long options.
			Logger.Printf("skipping %s", t)
			continue
		}

		if !p.options[c] {
			return Option{Option: c}, true
		}
		next, ok := p.tokens.PeekNextValue()
		if !ok || (next.kind != value && next.kind != ignoredValue) {
			Logger.Printf("option '%c' missing argument", c)
			return Option{Option: c}, true
		}
		p.tokens.Next()
		return Option{Option: c, Optarg: next.value, HasOptarg: true}, true
	}
	return Option{}, false
}

// All - Returns an iterator over the remaining options.
// Breaking out of the loop leaves the options not yet returned available to Getopt.
//
//	for o := range p.All() {
//		switch o.Option { ... }
//	}
func (p *Parser) All() iter.Seq[Option] {
	return func(yield func(Option) bool) {
		for {
			o, ok := p.Getopt()
			if !ok || !yield(o) {
				return
			}
		}
	}
}
