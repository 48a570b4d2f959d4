// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec - Indicates the optstring given to New could not be parsed.
// Use errors.As with *InvalidSpecError to get the details.
var ErrInvalidSpec = errors.New("invalid optstring")

// InvalidSpecError - An alias group opened with '(' has no matching ')'.
type InvalidSpecError struct {
	Optstring string
	Position  int // rune index of the unmatched '('
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("getopt: invalid optstring: missing \")\" to match \"(\" at char %d", e.Position)
}

// Is - Makes errors.Is(err, ErrInvalidSpec) match.
func (e *InvalidSpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}
