// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package rrbvec implements a persistent (immutable) indexed sequence:
// a Relaxed Radix Balanced tree variant, strict-radix (no size tables),
// with a mutable-batch tail that accelerates sequential append and bulk
// construction.
//
// PersistentArray[T] exposes logarithmic-time Get/Set plus Append, Concat
// and Slice; Slice copies the elements out and rebuilds its result, in
// O(n). Updates use structural sharing: every mutating operation returns a new
// PersistentArray that shares untouched subtrees with its predecessor.
// A published PersistentArray is a frozen snapshot: any number of
// goroutines may read it concurrently without synchronization, but no
// operation mutates it in place.
package rrbvec

import "github.com/gaissmai/rrbvec/internal/marray"

const (
	// B is the branching factor: the maximum number of children of any
	// node, and the maximum size of the tail.
	B = 32

	// Bbits is log2(B), the bit-shift step between tree levels.
	Bbits = 5

	// mask extracts the low Bbits bits of an index: the child slot at the
	// current level, or the offset within a leaf/tail.
	mask = B - 1
)

// PersistentArray is an immutable indexed sequence of elements of type T.
// The zero value is not a valid PersistentArray; use Empty[T]().
type PersistentArray[T any] struct {
	length int
	shift  int
	root   *marray.Array[*node[T]]
	tail   *marray.Array[T]
}

// Empty returns the canonical empty PersistentArray.
func Empty[T any]() *PersistentArray[T] {
	return &PersistentArray[T]{
		shift: Bbits,
		root:  marray.Of[*node[T]](nil),
		tail:  marray.Of[T](nil),
	}
}

// Length returns the number of elements in a.
func (a *PersistentArray[T]) Length() int {
	return a.length
}

// IsEmpty reports whether a has no elements.
func (a *PersistentArray[T]) IsEmpty() bool {
	return a.length == 0
}

// tailStart returns the smallest index that lives in the tail rather than
// the tree, for an array of the given length.
func tailStart(length int) int {
	return (length >> Bbits) << Bbits
}

// resolveIndex turns a possibly-negative index into an absolute one
// relative to length.
func resolveIndex(i, length int) int {
	if i < 0 {
		return length + i
	}
	return i
}
