// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrbvec

import "github.com/gaissmai/rrbvec/internal/marray"

// smallAppendLimit is the length up to which (inclusive) Append fuses b into a one
// Leaf-sized chunk at a time via replaceTail, rather than paying for a
// full Builder round-trip.
const smallAppendLimit = 4 * B

// Append returns a new PersistentArray holding a's elements followed by
// b's. a and b are unmodified; the result shares structure with both
// where possible.
func (a *PersistentArray[T]) Append(b *PersistentArray[T]) *PersistentArray[T] {
	if b.length == 0 {
		return a
	}

	chunks := collectRootLeaves(b.root)

	if b.length <= smallAppendLimit {
		acc := a
		for _, lf := range chunks {
			acc = appendChunkToArray(acc, lf.values.Raw())
		}
		if b.tail.Len() > 0 {
			acc = appendChunkToArray(acc, b.tail.Raw())
		}
		return acc
	}

	bld := arrayToBuilder(a)
	for _, lf := range chunks {
		bld.appendChunk(lf.values.Raw())
	}
	if b.tail.Len() > 0 {
		bld.appendChunk(b.tail.Raw())
	}
	return builderToArray(bld)
}

// appendChunkToArray fuses chunk (at most B elements, a single Leaf's or a
// tail's worth) into acc's tail via replaceTail, promoting and starting a
// fresh tail if chunk overflows the current one.
func appendChunkToArray[T any](acc *PersistentArray[T], chunk []T) *PersistentArray[T] {
	room := B - acc.tail.Len()
	take := room
	if len(chunk) < take {
		take = len(chunk)
	}

	merged := append(acc.tail.ToList(), chunk[:take]...)
	acc = replaceTail(acc, marray.FromList(merged))

	rest := chunk[take:]
	if len(rest) == 0 {
		return acc
	}

	return replaceTail(acc, marray.FromList(rest))
}

// Concat folds Append over arrays in order, starting from the empty
// array.
func Concat[T any](arrays []*PersistentArray[T]) *PersistentArray[T] {
	acc := Empty[T]()
	for _, arr := range arrays {
		acc = acc.Append(arr)
	}
	return acc
}
