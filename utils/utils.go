package utils

import (
	"math/rand"
	"time"
)

// Random is the subset of *rand.Rand the game draws from.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a seeded source. A zero seed is replaced by the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Choice picks one element of values using rng. values must not be empty.
func Choice(rng Random, values []float64) float64 {
	if len(values) == 0 {
		panic("utils: Choice on empty set")
	}
	return values[rng.Intn(len(values))]
}

// Clamp bounds value into [lo, hi]. When hi < lo, lo wins.
func Clamp(value, lo, hi float64) float64 {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}

func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func IsValidMatchLength(n int) bool {
	for _, length := range MatchLengths {
		if length == n {
			return true
		}
	}
	return false
}
