// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrbvec

import "testing"

func TestAppendLiteral(t *testing.T) {
	t.Parallel()

	a := FromList([]int{1, 2})
	b := FromList([]int{3, 4, 5})

	got := a.Append(b).ToList()
	want := []int{1, 2, 3, 4, 5}
	if !equalSlices(got, want) {
		t.Errorf("Append: want %v, got %v", want, got)
	}
}

func TestAppendPreservesOperands(t *testing.T) {
	t.Parallel()

	a := FromList([]int{1, 2, 3})
	b := FromList([]int{4, 5})

	c := a.Append(b)

	if !equalSlices(a.ToList(), []int{1, 2, 3}) {
		t.Error("Append mutated a")
	}
	if !equalSlices(b.ToList(), []int{4, 5}) {
		t.Error("Append mutated b")
	}
	if !equalSlices(c.ToList(), []int{1, 2, 3, 4, 5}) {
		t.Errorf("Append result: want [1 2 3 4 5], got %v", c.ToList())
	}
}

func TestAppendStressPromotesAt31(t *testing.T) {
	t.Parallel()

	acc := Empty[int]()
	for i := 0; i < 100; i++ {
		acc = acc.Append(FromList([]int{i}))

		if acc.Length() != i+1 {
			t.Fatalf("i=%d: Length: want %d, got %d", i, i+1, acc.Length())
		}
		for j := 0; j <= i; j++ {
			if got, _ := acc.Get(j); got != j {
				t.Fatalf("i=%d: Get(%d): want %d, got %d", i, j, j, got)
			}
		}

		if i == 31 {
			// Exactly B elements: the tail must have been promoted into the
			// tree, leaving the root non-empty and the tail empty.
			if acc.root.Len() == 0 {
				t.Fatalf("i=31: expected tail promotion, root is still empty")
			}
			if acc.tail.Len() != 0 {
				t.Fatalf("i=31: expected empty tail after promotion, got length %d", acc.tail.Len())
			}
		}
	}
}

func TestAppendLargeRightOperandTakesBuilderPath(t *testing.T) {
	t.Parallel()

	a, err := Init(10, func(i int) int { return i })
	if err != nil {
		t.Fatalf("Init: unexpected error: %v", err)
	}

	b, err := Init(500, func(i int) int { return 1000 + i })
	if err != nil {
		t.Fatalf("Init: unexpected error: %v", err)
	}

	c := a.Append(b)
	if c.Length() != 510 {
		t.Fatalf("Length: want 510, got %d", c.Length())
	}
	for i := 0; i < 10; i++ {
		if got, _ := c.Get(i); got != i {
			t.Fatalf("Get(%d): want %d, got %d", i, i, got)
		}
	}
	for i := 0; i < 500; i++ {
		if got, _ := c.Get(10 + i); got != 1000+i {
			t.Fatalf("Get(%d): want %d, got %d", 10+i, 1000+i, got)
		}
	}
}

func TestAppendEmptyOperands(t *testing.T) {
	t.Parallel()

	a := FromList([]int{1, 2, 3})
	e := Empty[int]()

	if got := a.Append(e).ToList(); !equalSlices(got, []int{1, 2, 3}) {
		t.Errorf("a.Append(empty): want [1 2 3], got %v", got)
	}
	if got := e.Append(a).ToList(); !equalSlices(got, []int{1, 2, 3}) {
		t.Errorf("empty.Append(a): want [1 2 3], got %v", got)
	}
}

func TestConcatLaw(t *testing.T) {
	t.Parallel()

	arrays := []*PersistentArray[int]{
		FromList([]int{1, 2}),
		FromList([]int{3}),
		FromList([]int{4, 5, 6}),
		Empty[int](),
		FromList([]int{7}),
	}

	got := Concat(arrays).ToList()

	acc := Empty[int]()
	for _, arr := range arrays {
		acc = acc.Append(arr)
	}
	want := acc.ToList()

	if !equalSlices(got, want) {
		t.Errorf("Concat: want %v, got %v", want, got)
	}
	if !equalSlices(got, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("Concat literal: want [1 2 3 4 5 6 7], got %v", got)
	}
}
