// Package randutil builds reproducible random sources for dealing hands.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand for seed. The same seed always deals
// the same hands, which is what `besthand sample --seed` relies on.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(Seeds(seed)))
}

// Seeds expands one int64 into the two PCG state words.
func Seeds(seed int64) (uint64, uint64) {
	u := uint64(seed)
	return splitmix(u), splitmix(u + goldenRatio64)
}

// Seed returns *seed when set, otherwise one taken from the clock. Callers
// log the result so a run can be repeated.
func Seed(seed *int64, clock quartz.Clock) int64 {
	if seed != nil {
		return *seed
	}
	return clock.Now().UnixNano()
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	return x ^ x>>31
}
