// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrbvec

import (
	"github.com/gaissmai/rrbvec/internal/list"
	"github.com/gaissmai/rrbvec/internal/marray"
)

// Init returns a PersistentArray of length n whose element at index i is
// f(i), built bottom-up in O(n) rather than by n individual appends.
//
// It fails with an *InvalidArgumentError if n is negative.
func Init[T any](n int, f func(int) T) (*PersistentArray[T], error) {
	if n < 0 {
		return nil, invalidArgument("n", n)
	}

	b := newBuilder[T]()

	tailLen := n % B
	treeLen := n - tailLen

	for i := treeLen; i < n; i++ {
		b.btail = append(b.btail, f(i))
	}

	// Build tree Leaves right-to-left, consing each new (further-left)
	// leaf in front of the growing node list; the result comes out
	// left-to-right already, the opposite of appendChunk's convention, so
	// it is reversed once before handing off to builderToArray.
	for beginI := treeLen - B; beginI >= 0; beginI -= B {
		values := make([]T, B)
		for j := 0; j < B; j++ {
			values[j] = f(beginI + j)
		}
		b.nodes = list.Cons(newLeaf(marray.FromList(values)), b.nodes)
		b.numNodes++
	}
	b.nodes = b.nodes.Reverse()

	return builderToArray(b), nil
}

// Make returns a PersistentArray of length n with every element set to v.
//
// It fails with an *InvalidArgumentError if n is negative.
func Make[T any](n int, v T) (*PersistentArray[T], error) {
	return Init(n, func(int) T { return v })
}

// FromList builds a PersistentArray holding l's elements in order.
func FromList[T any](l []T) *PersistentArray[T] {
	b := newBuilder[T]()

	for len(l) >= B {
		chunk := l[:B]
		l = l[B:]
		b.nodes = list.Cons(newLeaf(marray.FromList(chunk)), b.nodes)
		b.numNodes++
	}

	b.btail = append(b.btail, l...)

	return builderToArray(b)
}

// ToList returns a's elements in order as a slice.
func (a *PersistentArray[T]) ToList() []T {
	leaves := collectRootLeaves(a.root)

	out := make([]T, 0, a.length)
	for _, lf := range leaves {
		out = append(out, lf.values.ToList()...)
	}
	out = append(out, a.tail.ToList()...)

	return out
}
