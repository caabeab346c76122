// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/gaissmai/rrbvec"
)

func main() {
	prng := rand.New(rand.NewPCG(42, 42))
	log.SetFlags(log.Lmicroseconds)

	const n = 1_000_000

	ts := time.Now()
	a, err := rrbvec.Init(n, func(i int) int { return i })
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Init(%d): %v", n, time.Since(ts))

	ts = time.Now()
	for i := 0; i < 10_000; i++ {
		a = a.Append(oneElement(i))
	}
	log.Printf("10_000 single-element Append: %v, len: %d", time.Since(ts), a.Length())

	ts = time.Now()
	var sum int
	for i := 0; i < a.Length(); i += 997 {
		sum += a.MustGet(i)
	}
	log.Printf("strided Get sweep: %v, checksum: %d", time.Since(ts), sum)

	ts = time.Now()
	mid := a.Slice(a.Length()/4, a.Length()*3/4)
	log.Printf("Slice(1/4, 3/4): %v, len: %d", time.Since(ts), mid.Length())

	ts = time.Now()
	shuffled := shuffledIndices(prng, 10_000)
	for _, i := range shuffled {
		a, err = a.Set(i, -i)
		if err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("10_000 random Set: %v", time.Since(ts))

	ts = time.Now()
	evens := a.Filter(func(v int) bool { return v%2 == 0 })
	log.Printf("Filter even: %v, len: %d", time.Since(ts), evens.Length())
}

func oneElement(v int) *rrbvec.PersistentArray[int] {
	return rrbvec.FromList([]int{v})
}

func shuffledIndices(prng *rand.Rand, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	prng.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
	return idx
}
