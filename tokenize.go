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

type tokenKind int

const (
	shortOption  tokenKind = iota // -c, one per character in a cluster
	longOption                    // --name
	value                         // the value in --name=value
	ignoredValue                  // operand, or the argument to a previous option
)

func (k tokenKind) String() string {
	switch k {
	case shortOption:
		return "short-option"
	case longOption:
		return "long-option"
	case value:
		return "value"
	case ignoredValue:
		return "ignored-value"
	}
	return "unknown"
}

type token struct {
	kind  tokenKind
	value string
}

func (t token) String() string {
	return fmt.Sprintf("%s %q", t.kind, t.value)
}

// tokenize - Converts argv into tokens.
// Tokenizing stops at the first lone dash '-', it and every argument after it are dropped.
func tokenize(argv []string) []token {
	tokens := make([]token, 0, len(argv))
	for i, arg := range argv {
		t, ok := tokenizeArg(arg)
		if !ok {
			Logger.Printf("end of options at argv[%d], dropping %d argument(s)", i, len(argv)-i)
			break
		}
		tokens = append(tokens, t...)
	}
	Logger.Printf("tokens: %v", tokens)
	return tokens
}

/*
tokenizeArg - Returns the tokens for a single argument and false when the argument ends option processing.

	"", "arg"        ignored-value
	"-"              end of options
	"-abc"           short-option a, short-option b, short-option c
	"--name"         long-option name
	"--name=a=b"     long-option name, value "a=b"

A value attached to a short option (-rfoo) is not supported, each character is an option.
*/
func tokenizeArg(arg string) ([]token, bool) {
	if arg == "" || arg[0] != '-' {
		return []token{{kind: ignoredValue, value: arg}}, true
	}
	if arg == "-" {
		return nil, false
	}
	if arg[1] != '-' {
		tokens := []token{}
		for _, c := range arg[1:] {
			tokens = append(tokens, token{kind: shortOption, value: string(c)})
		}
		return tokens, true
	}
	name, v, found := strings.Cut(arg[2:], "=")
	if !found {
		return []token{{kind: longOption, value: name}}, true
	}
	return []token{{kind: longOption, value: name}, {kind: value, value: v}}, true
}
