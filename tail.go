// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrbvec

import "github.com/gaissmai/rrbvec/internal/marray"

// replaceTail swaps a's tail for newTail, promoting it into the tree first
// if it has reached capacity B. It is the primitive through which the
// incremental path of Append grows the tree portion of an existing
// PersistentArray; it never removes a Leaf from the tree.
func replaceTail[T any](a *PersistentArray[T], newTail *marray.Array[T]) *PersistentArray[T] {
	if newTail.Len() < B {
		return &PersistentArray[T]{
			length: a.length + (newTail.Len() - a.tail.Len()),
			shift:  a.shift,
			root:   a.root,
			tail:   newTail,
		}
	}

	// newTail is full: promote it into the tree as a new Leaf.
	leaf := newLeaf(newTail)
	newLength := a.length + (B - a.tail.Len())

	shift := a.shift
	root := a.root

	// The tree portion's current capacity is B^depth leaves, with
	// depth = shift/Bbits, i.e. 1<<shift leaves; if the new length needs more than
	// that many leaves, grow the tree by one level before inserting.
	if newLength>>Bbits > 1<<shift {
		shift += Bbits
		root = marray.Of([]*node[T]{newInternal(root)})
	}

	newRoot := insertTailAtRoot(root, leaf, a.length, shift)

	return &PersistentArray[T]{
		length: newLength,
		shift:  shift,
		root:   newRoot,
		tail:   marray.Of[T](nil),
	}
}

// buildBranch wraps leaf in shift/Bbits levels of singleton Internal
// nodes, producing a freshly allocated path of the given depth with leaf
// at the bottom.
func buildBranch[T any](leaf *node[T], shift int) *node[T] {
	if shift == 0 {
		return leaf
	}
	return newInternal(marray.Of([]*node[T]{buildBranch(leaf, shift-Bbits)}))
}

// insertTailAtRoot inserts leaf into root (the tree's top-level node
// sequence) along the rightmost spine, using oldLength (the array's
// length before this promotion) to find the insertion point. shift is the
// bit-shift that indexes slots in root, mirroring a.shift in Get/Set.
func insertTailAtRoot[T any](root *marray.Array[*node[T]], leaf *node[T], oldLength, shift int) *marray.Array[*node[T]] {
	pos := (oldLength >> shift) & mask
	newRoot := root.Copy()

	if pos >= newRoot.Len() {
		branch := buildBranch(leaf, shift-Bbits)
		return marray.Append(newRoot, marray.Of([]*node[T]{branch}))
	}

	child := newRoot.Get(pos)
	newChild := insertTailInTree(child, leaf, oldLength, shift-Bbits)
	newRoot.Set(pos, newChild)

	return newRoot
}

// insertTailInTree is insertTailAtRoot's counterpart for an existing
// Internal node n. It is only ever called on Internal nodes: along the
// rightmost spine below a leaf-adjacent level, a slot is either absent
// (handled by the append branch in the caller) or already a fully built
// Internal subtree being extended, since Leaves are only ever created
// full (size B) by promotion and never revisited once built.
func insertTailInTree[T any](n *node[T], leaf *node[T], oldLength, shift int) *node[T] {
	pos := (oldLength >> shift) & mask
	newChildren := n.children.Copy()

	if pos >= newChildren.Len() {
		branch := buildBranch(leaf, shift-Bbits)
		return newInternal(marray.Append(newChildren, marray.Of([]*node[T]{branch})))
	}

	child := newChildren.Get(pos)
	newChild := insertTailInTree(child, leaf, oldLength, shift-Bbits)
	newChildren.Set(pos, newChild)

	return newInternal(newChildren)
}
