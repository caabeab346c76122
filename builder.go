// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrbvec

import (
	"github.com/gaissmai/rrbvec/internal/list"
	"github.com/gaissmai/rrbvec/internal/marray"
)

// builder is a short-lived scratch structure used to assemble a
// PersistentArray from bulk input without paying the promote-one-leaf-
// at-a-time cost of replaceTail. It is owned exclusively by the operation
// that constructs it and is never shared or published.
type builder[T any] struct {
	// btail holds the partial tail (0..B-1 values) not yet packed into a
	// Leaf.
	btail []T

	// nodes holds completed Leaves in reverse (most-recently-completed
	// first) order. It is prepend-only and reversed once, in
	// builderToArray, to recover left-to-right order.
	nodes *list.List[*node[T]]

	// numNodes is the count of completed Leaves, i.e. len(nodes).
	numNodes int
}

func newBuilder[T any]() *builder[T] {
	return &builder[T]{btail: make([]T, 0, B)}
}

// appendChunk packs chunk (of any length) into the builder, flushing
// btail into a completed Leaf whenever it reaches B.
func (b *builder[T]) appendChunk(chunk []T) {
	i := 0
	for i < len(chunk) {
		room := B - len(b.btail)
		take := room
		if len(chunk)-i < take {
			take = len(chunk) - i
		}

		b.btail = append(b.btail, chunk[i:i+take]...)
		i += take

		if len(b.btail) == B {
			b.flushLeaf()
		}
	}
}

// flushLeaf converts the full btail into a completed Leaf and starts a
// fresh one.
func (b *builder[T]) flushLeaf() {
	leaf := newLeaf(marray.FromList(b.btail))
	b.nodes = list.Cons(leaf, b.nodes)
	b.numNodes++
	b.btail = make([]T, 0, B)
}

// builderToArray finalizes b into a PersistentArray.
func builderToArray[T any](b *builder[T]) *PersistentArray[T] {
	tail := marray.FromList(b.btail)

	if b.numNodes == 0 {
		return &PersistentArray[T]{
			length: tail.Len(),
			shift:  Bbits,
			root:   marray.Of[*node[T]](nil),
			tail:   tail,
		}
	}

	// Recover left-to-right order, then compress bottom-up: each pass
	// partitions the current node list into chunks of B and wraps each
	// chunk in an Internal node, until a single node remains.
	current := b.nodes.Reverse().ToSlice()

	passes := 0
	for len(current) > 1 {
		current = compressNodes(current)
		passes++
	}

	var root *marray.Array[*node[T]]
	if passes == 0 {
		// A single Leaf (or, impossibly here since numNodes>0, zero
		// Leaves): root holds it directly, same as any other array whose
		// tree fits in one level.
		root = marray.FromList(current)
	} else {
		root = current[0].children
	}

	shift := Bbits
	if passes > 0 {
		shift = passes * Bbits
	}

	return &PersistentArray[T]{
		length: b.numNodes*B + tail.Len(),
		shift:  shift,
		root:   root,
		tail:   tail,
	}
}

// compressNodes partitions nodes into chunks of up to B and wraps each
// chunk in a new Internal node, producing the next level up.
func compressNodes[T any](nodes []*node[T]) []*node[T] {
	out := make([]*node[T], 0, (len(nodes)+B-1)/B)

	for i := 0; i < len(nodes); i += B {
		end := i + B
		if end > len(nodes) {
			end = len(nodes)
		}

		chunk := make([]*node[T], end-i)
		copy(chunk, nodes[i:end])
		out = append(out, newInternal(marray.FromList(chunk)))
	}

	return out
}

// arrayToBuilder flattens a's existing tree into the set of Leaves it
// contains, in left-to-right order, ready for further appendChunk calls.
func arrayToBuilder[T any](a *PersistentArray[T]) *builder[T] {
	leaves := collectRootLeaves(a.root)

	b := &builder[T]{
		btail:    append([]T(nil), a.tail.ToList()...),
		nodes:    list.FromSlice(leaves).Reverse(),
		numNodes: a.length >> Bbits,
	}

	return b
}

// collectLeaves returns every Leaf in n's subtree, in left-to-right order.
func collectLeaves[T any](n *node[T]) []*node[T] {
	if n.isLeaf() {
		return []*node[T]{n}
	}

	var out []*node[T]
	for _, c := range n.children.ToList() {
		out = append(out, collectLeaves(c)...)
	}
	return out
}

// collectRootLeaves returns every Leaf reachable from root, in
// left-to-right order.
func collectRootLeaves[T any](root *marray.Array[*node[T]]) []*node[T] {
	var out []*node[T]
	for _, n := range root.ToList() {
		out = append(out, collectLeaves(n)...)
	}
	return out
}
