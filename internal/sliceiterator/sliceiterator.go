// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds a forward only iterator from a slice to allow peeking for the next value.
//
// The underlying slice is never modified, consuming a value only moves the index forward.
package sliceiterator

// Iterator - iterator data
type Iterator[T any] struct {
	data []T
	idx  int
}

// New - builds an Iterator over s.
// The Iterator takes ownership of s, callers must not modify it afterwards.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{data: s, idx: -1}
}

// Size - returns Iterator size
func (a *Iterator[T]) Size() int {
	return len(a.data)
}

// Index - return current index.
func (a *Iterator[T]) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
// Once the end is reached the index stays there and Next keeps returning false.
func (a *Iterator[T]) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator[T]) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// Value - returns value at current index or the zero value if you are trying to read the value after having fully read the list.
func (a *Iterator[T]) Value() T {
	if a.idx < 0 || a.idx >= len(a.data) {
		var zero T
		return zero
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it is valid.
func (a *Iterator[T]) PeekNextValue() (T, bool) {
	if a.idx+1 >= len(a.data) {
		var zero T
		return zero, false
	}
	return a.data[a.idx+1], true
}

// Remaining - Get all values not yet consumed by Next.
func (a *Iterator[T]) Remaining() []T {
	if a.idx+1 >= len(a.data) {
		return []T{}
	}
	return a.data[a.idx+1:]
}
