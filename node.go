// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrbvec

import "github.com/gaissmai/rrbvec/internal/marray"

// node is a tagged-variant tree node: it is either an Internal node
// wrapping 1..B child nodes, or a Leaf wrapping 1..B element values. Never
// both, never neither, mirroring spec.md's two-case variant. All children
// of an Internal node at a given level are uniformly Internal or
// uniformly Leaf; depth is uniform across a node's subtree.
type node[T any] struct {
	// children is non-nil for an Internal node, nil for a Leaf.
	children *marray.Array[*node[T]]

	// values is non-nil for a Leaf, nil for an Internal node.
	values *marray.Array[T]
}

// isLeaf reports whether n is a Leaf node.
func (n *node[T]) isLeaf() bool {
	return n.values != nil
}

// newLeaf wraps values as a Leaf node.
func newLeaf[T any](values *marray.Array[T]) *node[T] {
	return &node[T]{values: values}
}

// newInternal wraps children as an Internal node.
func newInternal[T any](children *marray.Array[*node[T]]) *node[T] {
	return &node[T]{children: children}
}

// getInTree resolves index i within the subtree rooted at n, where shift
// is the bit-shift for n's level (0 means n is a Leaf).
func getInTree[T any](n *node[T], i, shift int) T {
	if shift == 0 {
		return n.values.Get(i & mask)
	}

	slot := (i >> shift) & mask
	return getInTree(n.children.Get(slot), i, shift-Bbits)
}

// setInTree returns a new subtree with the element at index i replaced by
// v, path-copying every node from n down to the touched leaf. Siblings
// off the path are shared with n's original subtree.
func setInTree[T any](n *node[T], i, shift int, v T) *node[T] {
	if shift == 0 {
		newValues := n.values.Copy()
		newValues.Set(i&mask, v)
		return newLeaf(newValues)
	}

	slot := (i >> shift) & mask
	newChildren := n.children.Copy()
	newChildren.Set(slot, setInTree(newChildren.Get(slot), i, shift-Bbits, v))
	return newInternal(newChildren)
}
