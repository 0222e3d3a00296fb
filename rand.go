package main

import "math/rand/v2"

// Rand is a random number generator that the World owns, so that the same
// seed always gives the same game. It is a value: copying a Rand gives a
// second generator that produces the same numbers as the first.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number between min and max, both included.
func (r *Rand) RInt(min int64, max int64) int64 {
	if max < min {
		min, max = max, min
	}
	return min + int64(r.pcg.Uint64()%uint64(max-min+1))
}
