// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package list

import (
	"slices"
	"testing"
)

func TestConsHeadTail(t *testing.T) {
	t.Parallel()

	l := Cons(1, Cons(2, Cons(3, Empty[int]())))

	if v, ok := l.Head(); !ok || v != 1 {
		t.Errorf("Head: want (1,true), got (%d,%v)", v, ok)
	}
	if got := l.ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("ToSlice: want [1 2 3], got %v", got)
	}
}

func TestTakeDrop(t *testing.T) {
	t.Parallel()

	l := FromSlice([]int{1, 2, 3, 4, 5})

	if got := l.Take(2).ToSlice(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Take(2): want [1 2], got %v", got)
	}
	if got := l.Take(100).ToSlice(); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("Take(100): want all elements, got %v", got)
	}
	if got := l.Drop(2).ToSlice(); !slices.Equal(got, []int{3, 4, 5}) {
		t.Errorf("Drop(2): want [3 4 5], got %v", got)
	}
	if got := l.Drop(100); !got.IsEmpty() {
		t.Errorf("Drop(100): want empty, got %v", got.ToSlice())
	}
}

func TestReverse(t *testing.T) {
	t.Parallel()

	l := FromSlice([]int{1, 2, 3})
	if got := l.Reverse().ToSlice(); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("Reverse: want [3 2 1], got %v", got)
	}
	if got := l.Reverse().Reverse().ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Reverse(Reverse(l)): want [1 2 3], got %v", got)
	}
}

func TestFoldLeftFoldRight(t *testing.T) {
	t.Parallel()

	l := FromSlice([]string{"a", "b", "c"})

	left := FoldLeft(func(acc, x string) string { return acc + x }, "", l)
	if left != "abc" {
		t.Errorf("FoldLeft: want abc, got %s", left)
	}

	right := FoldRight(func(x, acc string) string { return x + acc }, "", l)
	if right != "abc" {
		t.Errorf("FoldRight: want abc, got %s", right)
	}
}

func TestFromSliceToSliceRoundTrip(t *testing.T) {
	t.Parallel()

	want := []int{5, 4, 3, 2, 1}
	got := FromSlice(want).ToSlice()
	if !slices.Equal(got, want) {
		t.Errorf("round trip: want %v, got %v", want, got)
	}
}

func TestEmptyList(t *testing.T) {
	t.Parallel()

	e := Empty[int]()
	if !e.IsEmpty() {
		t.Error("Empty: want IsEmpty true")
	}
	if e.Len() != 0 {
		t.Errorf("Empty.Len(): want 0, got %d", e.Len())
	}
	if e.Take(3) != nil {
		t.Error("Empty.Take(3): want nil")
	}
}
