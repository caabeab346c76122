// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrbvec

// Get returns the element at index i, wrapping a negative i as Length()+i.
//
// It fails with an *IndexOutOfBoundsError if the resolved index falls
// outside [0, Length()).
func (a *PersistentArray[T]) Get(i int) (T, error) {
	var zero T

	idx := resolveIndex(i, a.length)
	if idx < 0 || idx >= a.length {
		return zero, indexOutOfBounds(i, a.length)
	}

	if idx >= tailStart(a.length) {
		return a.tail.Get(idx & mask), nil
	}

	slot := (idx >> a.shift) & mask
	return getInTree(a.root.Get(slot), idx, a.shift-Bbits), nil
}

// MustGet is like Get but panics if i is out of bounds.
func (a *PersistentArray[T]) MustGet(i int) T {
	v, err := a.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

// Set returns a new PersistentArray with the element at index i replaced
// by v, wrapping a negative i as Length()+i. Only the spine from root to
// the touched leaf (or the tail buffer) is copied; every other node is
// shared with a.
//
// It fails with an *IndexOutOfBoundsError if the resolved index falls
// outside [0, Length()).
func (a *PersistentArray[T]) Set(i int, v T) (*PersistentArray[T], error) {
	idx := resolveIndex(i, a.length)
	if idx < 0 || idx >= a.length {
		return nil, indexOutOfBounds(i, a.length)
	}

	if idx >= tailStart(a.length) {
		newTail := a.tail.Copy()
		newTail.Set(idx&mask, v)
		return &PersistentArray[T]{length: a.length, shift: a.shift, root: a.root, tail: newTail}, nil
	}

	slot := (idx >> a.shift) & mask
	newRoot := a.root.Copy()
	newRoot.Set(slot, setInTree(a.root.Get(slot), idx, a.shift-Bbits, v))

	return &PersistentArray[T]{length: a.length, shift: a.shift, root: newRoot, tail: a.tail}, nil
}
