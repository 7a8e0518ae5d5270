package service

import (
	"math/rand"
	"time"
)

// Clock provides the current time. Injected so attempt timestamps and
// certificate dates are fixed in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Sampler draws k distinct ordinal positions from [0, n). No cryptographic
// requirement; exam question selection only needs uniformity.
type Sampler interface {
	Sample(n, k int) []int
}

type permSampler struct{}

func NewPermSampler() Sampler {
	return permSampler{}
}

// Sample uses a Fisher-Yates permutation, so it terminates for any pool
// size and never repeats a position.
func (permSampler) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	return rand.Perm(n)[:k]
}
