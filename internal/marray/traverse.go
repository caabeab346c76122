// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package marray

// Reverse returns a new array with a's elements in reverse order.
func (a *Array[T]) Reverse() *Array[T] {
	n := a.Len()
	items := make([]T, n)
	for i, v := range a.items {
		items[n-1-i] = v
	}
	return &Array[T]{items: items}
}

// Map returns a new array with f applied to every element of a, in order.
func Map[T, U any](f func(T) U, a *Array[T]) *Array[U] {
	items := make([]U, a.Len())
	for i, v := range a.items {
		items[i] = f(v)
	}
	return &Array[U]{items: items}
}

// Filter returns a new array holding the elements of a for which pred
// returns true, in order.
func (a *Array[T]) Filter(pred func(T) bool) *Array[T] {
	items := make([]T, 0, a.Len())
	for _, v := range a.items {
		if pred(v) {
			items = append(items, v)
		}
	}
	return &Array[T]{items: items}
}

// ForEach calls f for every element of a, in ascending index order.
func (a *Array[T]) ForEach(f func(int, T)) {
	for i, v := range a.items {
		f(i, v)
	}
}

// Reduce folds f left-to-right over a's elements, starting from z.
func Reduce[T, U any](f func(U, T) U, z U, a *Array[T]) U {
	acc := z
	for _, v := range a.items {
		acc = f(acc, v)
	}
	return acc
}

// ReduceRight folds f right-to-left over a's elements, starting from z.
func ReduceRight[T, U any](f func(T, U) U, z U, a *Array[T]) U {
	acc := z
	for i := len(a.items) - 1; i >= 0; i-- {
		acc = f(a.items[i], acc)
	}
	return acc
}

// Every reports whether pred holds for every element of a.
func (a *Array[T]) Every(pred func(T) bool) bool {
	for _, v := range a.items {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element of a.
func (a *Array[T]) Some(pred func(T) bool) bool {
	for _, v := range a.items {
		if pred(v) {
			return true
		}
	}
	return false
}

// Count returns the number of elements for which pred holds.
func (a *Array[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range a.items {
		if pred(v) {
			n++
		}
	}
	return n
}

// Find returns the first element for which pred holds.
func (a *Array[T]) Find(pred func(T) bool) (v T, ok bool) {
	for _, x := range a.items {
		if pred(x) {
			return x, true
		}
	}
	return v, false
}

// FindIndex returns the index of the first element for which pred holds,
// or -1 if none does.
func (a *Array[T]) FindIndex(pred func(T) bool) int {
	for i, v := range a.items {
		if pred(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether eq(v, x) holds for some x in a.
func (a *Array[T]) Contains(v T, eq func(T, T) bool) bool {
	for _, x := range a.items {
		if eq(v, x) {
			return true
		}
	}
	return false
}

// FlatMap applies f to every element of a and concatenates the results.
func FlatMap[T, U any](f func(T) *Array[U], a *Array[T]) *Array[U] {
	var items []U
	for _, v := range a.items {
		items = append(items, f(v).items...)
	}
	return &Array[U]{items: items}
}

// Zip pairs up elements of a and b, up to the shorter length.
func Zip[T, U any](a *Array[T], b *Array[U]) *Array[[2]any] {
	n := min(a.Len(), b.Len())
	items := make([][2]any, n)
	for i := 0; i < n; i++ {
		items[i] = [2]any{a.items[i], b.items[i]}
	}
	return &Array[[2]any]{items: items}
}

// ZipWith combines a and b element-wise with f, up to the shorter length.
func ZipWith[T, U, R any](f func(T, U) R, a *Array[T], b *Array[U]) *Array[R] {
	n := min(a.Len(), b.Len())
	items := make([]R, n)
	for i := 0; i < n; i++ {
		items[i] = f(a.items[i], b.items[i])
	}
	return &Array[R]{items: items}
}

// Unzip splits an array of pairs into two arrays.
func Unzip[T, U any](a *Array[[2]any]) (*Array[T], *Array[U]) {
	ts := make([]T, a.Len())
	us := make([]U, a.Len())
	for i, pair := range a.items {
		ts[i] = pair[0].(T)
		us[i] = pair[1].(U)
	}
	return &Array[T]{items: ts}, &Array[U]{items: us}
}

// Join concatenates a's string elements with sep between them.
func Join(a *Array[string], sep string) string {
	n := a.Len()
	if n == 0 {
		return ""
	}

	out := a.items[0]
	for i := 1; i < n; i++ {
		out += sep + a.items[i]
	}
	return out
}

// Unique returns a new array holding a's elements in order, with later
// duplicates (by eq) dropped.
func (a *Array[T]) Unique(eq func(T, T) bool) *Array[T] {
	items := make([]T, 0, a.Len())
	for _, v := range a.items {
		seen := false
		for _, u := range items {
			if eq(u, v) {
				seen = true
				break
			}
		}
		if !seen {
			items = append(items, v)
		}
	}
	return &Array[T]{items: items}
}

// Product returns the cartesian product of a and b as pairs.
func Product[T, U any](a *Array[T], b *Array[U]) *Array[[2]any] {
	items := make([][2]any, 0, a.Len()*b.Len())
	for _, v := range a.items {
		for _, u := range b.items {
			items = append(items, [2]any{v, u})
		}
	}
	return &Array[[2]any]{items: items}
}
