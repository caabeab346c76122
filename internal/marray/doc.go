// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package marray implements a generic, flat, fixed-length mutable array
// with O(1) indexed access, in-place update, and the small set of bulk
// operations (copy, slice, append, fill, sort, rotate, and the standard
// higher-order traversals) that the persistent tree in the parent package
// builds on.
//
// Unlike internal/sparse in the sibling bart module, Array[T] carries no
// popcount compression: every slot in [0, Len()) is materialized, since the
// tree above never stores a sparse node.
package marray
