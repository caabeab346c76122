// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package marray

// Array is a flat, fixed-length buffer of values with O(1) indexed access.
// The zero value is an empty array.
type Array[T any] struct {
	items []T
}

// Make allocates an array of length n filled with v.
//
// It fails with InvalidLength if n is negative.
func Make[T any](n int, v T) (*Array[T], error) {
	if n < 0 {
		return nil, InvalidLength(n)
	}

	items := make([]T, n)
	for i := range items {
		items[i] = v
	}

	return &Array[T]{items: items}, nil
}

// Init allocates an array of length n, filling slot i with f(i).
//
// It fails with InvalidLength if n is negative.
func Init[T any](n int, f func(int) T) (*Array[T], error) {
	if n < 0 {
		return nil, InvalidLength(n)
	}

	items := make([]T, n)
	for i := range items {
		items[i] = f(i)
	}

	return &Array[T]{items: items}, nil
}

// Of wraps an existing slice directly, taking ownership of it.
// Callers must not mutate s after passing it to Of.
func Of[T any](s []T) *Array[T] {
	return &Array[T]{items: s}
}

// Len returns the number of elements in a, O(1).
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// resolve turns a possibly-negative index into an absolute one.
func resolve(i, length int) int {
	if i < 0 {
		return length + i
	}
	return i
}

// Get returns a[i], wrapping a negative i as Len()+i.
// Out-of-range access is undefined at this layer; callers are expected to
// bounds-check before calling, as the tree above never issues out-of-range
// requests.
func (a *Array[T]) Get(i int) T {
	return a.items[resolve(i, a.Len())]
}

// Set writes v into a[i] in place, wrapping a negative i as Len()+i.
func (a *Array[T]) Set(i int, v T) {
	a.items[resolve(i, a.Len())] = v
}

// Copy returns a new array with the same elements as a.
func (a *Array[T]) Copy() *Array[T] {
	if a == nil {
		return nil
	}

	items := make([]T, len(a.items))
	copy(items, a.items)

	return &Array[T]{items: items}
}

// Slice returns a new array holding a[start:end].
//
// end is clamped to Len(); if end-start <= 0 the result is empty.
func (a *Array[T]) Slice(start, end int) *Array[T] {
	length := a.Len()
	if end > length {
		end = length
	}

	if end-start <= 0 {
		return &Array[T]{}
	}

	items := make([]T, end-start)
	copy(items, a.items[start:end])

	return &Array[T]{items: items}
}

// Append returns a new array of length a.Len()+b.Len() holding a's
// elements followed by b's.
func Append[T any](a, b *Array[T]) *Array[T] {
	items := make([]T, a.Len()+b.Len())
	n := copy(items, a.items)
	copy(items[n:], b.items)

	return &Array[T]{items: items}
}

// Raw exposes the underlying slice for read-only traversal by the tree
// package. Callers in this module never mutate the returned slice.
func (a *Array[T]) Raw() []T {
	if a == nil {
		return nil
	}
	return a.items
}

// ToList returns a slice copy of a's elements in order.
func (a *Array[T]) ToList() []T {
	out := make([]T, a.Len())
	copy(out, a.items)
	return out
}

// FromList builds an array from a slice, copying it.
func FromList[T any](l []T) *Array[T] {
	items := make([]T, len(l))
	copy(items, l)
	return &Array[T]{items: items}
}
