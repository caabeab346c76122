// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrbvec

import "github.com/gaissmai/rrbvec/internal/marray"

// ForEach calls f with each index and element of a, in order.
func (a *PersistentArray[T]) ForEach(f func(int, T)) {
	for i, v := range a.ToList() {
		f(i, v)
	}
}

// Filter returns a new array holding only the elements for which pred
// returns true, preserving order.
func (a *PersistentArray[T]) Filter(pred func(T) bool) *PersistentArray[T] {
	var out []T
	for _, v := range a.ToList() {
		if pred(v) {
			out = append(out, v)
		}
	}
	return FromList(out)
}

// Every reports whether pred holds for every element of a. It is
// vacuously true for the empty array.
func (a *PersistentArray[T]) Every(pred func(T) bool) bool {
	for _, v := range a.ToList() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element of a.
func (a *PersistentArray[T]) Some(pred func(T) bool) bool {
	for _, v := range a.ToList() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Count returns the number of elements for which pred returns true.
func (a *PersistentArray[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range a.ToList() {
		if pred(v) {
			n++
		}
	}
	return n
}

// Find returns the first element for which pred returns true, and
// whether one was found.
func (a *PersistentArray[T]) Find(pred func(T) bool) (v T, ok bool) {
	for _, x := range a.ToList() {
		if pred(x) {
			return x, true
		}
	}
	return v, false
}

// FindIndex returns the index of the first element for which pred
// returns true, or -1 if none does.
func (a *PersistentArray[T]) FindIndex(pred func(T) bool) int {
	for i, x := range a.ToList() {
		if pred(x) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element of a equals v under eq.
func (a *PersistentArray[T]) Contains(v T, eq func(T, T) bool) bool {
	for _, x := range a.ToList() {
		if eq(v, x) {
			return true
		}
	}
	return false
}

// Unique returns a new array holding a's elements with later duplicates
// (under eq) removed, preserving the order of first occurrence.
func (a *PersistentArray[T]) Unique(eq func(T, T) bool) *PersistentArray[T] {
	var out []T
	for _, v := range a.ToList() {
		dup := false
		for _, u := range out {
			if eq(u, v) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return FromList(out)
}

// Reverse returns a new array holding a's elements in reverse order.
func (a *PersistentArray[T]) Reverse() *PersistentArray[T] {
	l := a.ToList()
	out := make([]T, len(l))
	for i, v := range l {
		out[len(l)-1-i] = v
	}
	return FromList(out)
}

// Sort returns a new array holding a's elements ordered by cmp.
func (a *PersistentArray[T]) Sort(cmp func(T, T) int) *PersistentArray[T] {
	arr := marray.FromList(a.ToList())
	arr.Sort(cmp)
	return FromList(arr.ToList())
}

// Rotate returns a new array with a's elements cyclically shifted left by
// n (negative n shifts right). Rotate of the empty array is itself.
func (a *PersistentArray[T]) Rotate(n int) *PersistentArray[T] {
	length := a.length
	if length == 0 {
		return a
	}

	k := n % length
	if k < 0 {
		k += length
	}
	if k == 0 {
		return a
	}

	return a.Slice(k, length).Append(a.Slice(0, k))
}

// Cycle returns a new array holding a's elements repeated n times, in
// order. Cycle of a non-positive n, or of the empty array, is empty.
func (a *PersistentArray[T]) Cycle(n int) *PersistentArray[T] {
	if n <= 0 || a.length == 0 {
		return Empty[T]()
	}

	arrays := make([]*PersistentArray[T], n)
	for i := range arrays {
		arrays[i] = a
	}
	return Concat(arrays)
}

// Map returns a new array holding f applied to every element of a.
func Map[T, U any](f func(T) U, a *PersistentArray[T]) *PersistentArray[U] {
	l := a.ToList()
	out := make([]U, len(l))
	for i, v := range l {
		out[i] = f(v)
	}
	return FromList(out)
}

// Reduce folds f left-to-right over a's elements, starting from z.
func Reduce[T, U any](f func(U, T) U, z U, a *PersistentArray[T]) U {
	acc := z
	for _, v := range a.ToList() {
		acc = f(acc, v)
	}
	return acc
}

// ReduceRight folds f right-to-left over a's elements, starting from z.
func ReduceRight[T, U any](f func(T, U) U, z U, a *PersistentArray[T]) U {
	l := a.ToList()
	acc := z
	for i := len(l) - 1; i >= 0; i-- {
		acc = f(l[i], acc)
	}
	return acc
}

// FlatMap maps f over a's elements and concatenates the results in order.
func FlatMap[T, U any](f func(T) *PersistentArray[U], a *PersistentArray[T]) *PersistentArray[U] {
	var out []U
	for _, v := range a.ToList() {
		out = append(out, f(v).ToList()...)
	}
	return FromList(out)
}

// Zip pairs up elements of a and b by index, truncating to the shorter
// array.
func Zip[T, U any](a *PersistentArray[T], b *PersistentArray[U]) *PersistentArray[[2]any] {
	la, lb := a.ToList(), b.ToList()
	n := min(len(la), len(lb))

	out := make([][2]any, n)
	for i := 0; i < n; i++ {
		out[i] = [2]any{la[i], lb[i]}
	}
	return FromList(out)
}

// ZipWith combines elements of a and b by index using f, truncating to
// the shorter array.
func ZipWith[T, U, R any](f func(T, U) R, a *PersistentArray[T], b *PersistentArray[U]) *PersistentArray[R] {
	la, lb := a.ToList(), b.ToList()
	n := min(len(la), len(lb))

	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = f(la[i], lb[i])
	}
	return FromList(out)
}

// Unzip splits an array of pairs, produced by Zip, back into two arrays.
// It panics if an element does not hold a (T, U) pair, which cannot
// happen for an array Zip produced.
func Unzip[T, U any](a *PersistentArray[[2]any]) (*PersistentArray[T], *PersistentArray[U]) {
	l := a.ToList()

	ts := make([]T, len(l))
	us := make([]U, len(l))
	for i, p := range l {
		ts[i] = p[0].(T)
		us[i] = p[1].(U)
	}
	return FromList(ts), FromList(us)
}

// Product returns every pair (x, y) with x from a and y from b, in
// row-major order.
func Product[T, U any](a *PersistentArray[T], b *PersistentArray[U]) *PersistentArray[[2]any] {
	la, lb := a.ToList(), b.ToList()

	out := make([][2]any, 0, len(la)*len(lb))
	for _, v := range la {
		for _, u := range lb {
			out = append(out, [2]any{v, u})
		}
	}
	return FromList(out)
}

// Join concatenates a's strings, separated by sep.
func Join(a *PersistentArray[string], sep string) string {
	l := a.ToList()
	if len(l) == 0 {
		return ""
	}

	out := l[0]
	for _, s := range l[1:] {
		out += sep + s
	}
	return out
}
