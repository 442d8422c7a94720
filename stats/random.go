package stats

import (
	"fmt"
	"time"

	"github.com/uyouii/percolation/common"
	"golang.org/x/exp/rand"
)

// RandomSource supplies uniform integers in [0, n).
// A source is owned by a single trial and never shared between goroutines.
type RandomSource interface {
	Intn(n int) int
}

// RandomFactory returns the source for the given trial number.
type RandomFactory func(trial int) RandomSource

// uniform returns an integer in [lo, hi).
func uniform(random RandomSource, lo, hi int) (int, error) {
	v, err := intn(random, hi-lo)
	if err != nil {
		return 0, err
	}
	return lo + v, nil
}

// intn rejects values a source returns outside [0, n).
func intn(random RandomSource, n int) (int, error) {
	v := random.Intn(n)
	if v < 0 || v >= n {
		return 0, fmt.Errorf("%w: random source returned %d for Intn(%d)", common.ErrorInvalidValue, v, n)
	}
	return v, nil
}

// NewSeededFactory gives every trial its own stream derived from seed, so results
// do not depend on how trials are scheduled.
func NewSeededFactory(seed uint64) RandomFactory {
	return func(trial int) RandomSource {
		return rand.New(rand.NewSource(deriveSeed(seed, uint64(trial))))
	}
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
