// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rrbvec

import "testing"

func TestInitLiteral(t *testing.T) {
	t.Parallel()

	a, err := Init(5, func(i int) int { return i + 3 })
	if err != nil {
		t.Fatalf("Init: unexpected error: %v", err)
	}

	want := []int{3, 4, 5, 6, 7}
	if got := a.ToList(); !equalSlices(got, want) {
		t.Errorf("ToList: want %v, got %v", want, got)
	}
}

func TestInitNegativeLength(t *testing.T) {
	t.Parallel()

	_, err := Init(-1, func(int) int { return 0 })
	if _, ok := err.(*InvalidArgumentError); !ok {
		t.Errorf("Init(-1, ...): want *InvalidArgumentError, got %T", err)
	}
}

func TestInitBoundaryLengths(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 31, 32, 33, 63, 64, 1023, 1024, 1025, 5000} {
		a, err := Init(n, func(i int) int { return i })
		if err != nil {
			t.Fatalf("Init(%d): unexpected error: %v", n, err)
		}
		if a.Length() != n {
			t.Fatalf("Init(%d): Length: want %d, got %d", n, n, a.Length())
		}
		for i := 0; i < n; i += max(1, n/50) {
			if got, _ := a.Get(i); got != i {
				t.Fatalf("Init(%d): Get(%d): want %d, got %d", n, i, i, got)
			}
		}
	}
}

func TestMake(t *testing.T) {
	t.Parallel()

	a, err := Make(10, "x")
	if err != nil {
		t.Fatalf("Make: unexpected error: %v", err)
	}
	if a.Length() != 10 {
		t.Fatalf("Length: want 10, got %d", a.Length())
	}
	for i := 0; i < 10; i++ {
		if got, _ := a.Get(i); got != "x" {
			t.Errorf("Get(%d): want x, got %q", i, got)
		}
	}
}

func TestFromListToListRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 31, 32, 33, 100, 1024, 1500} {
		want := make([]int, n)
		for i := range want {
			want[i] = i * i
		}

		a := FromList(want)
		if got := a.ToList(); !equalSlices(got, want) {
			t.Fatalf("n=%d: ToList(FromList(l)): want %v, got %v", n, want, got)
		}
	}
}

func TestToListFromListRoundTripArray(t *testing.T) {
	t.Parallel()

	a, err := Init(500, func(i int) int { return i })
	if err != nil {
		t.Fatalf("Init: unexpected error: %v", err)
	}

	b := FromList(a.ToList())
	if b.Length() != a.Length() {
		t.Fatalf("Length: want %d, got %d", a.Length(), b.Length())
	}
	for i := 0; i < a.Length(); i++ {
		wa, _ := a.Get(i)
		wb, _ := b.Get(i)
		if wa != wb {
			t.Fatalf("Get(%d): a=%d b=%d", i, wa, wb)
		}
	}
}
