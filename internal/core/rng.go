package core

import (
	"fmt"
	"math/rand"
)

// Rand is the random source simulations draw from. It is injected so that
// tests and replays can reproduce exact layouts. Games seed a *rand.Rand
// from RuntimeConfig.Seed when none is given.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// RandRange returns a uniform value in [lo, hi).
func RandRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RandInt returns a uniform integer in [lo, hi] inclusive.
func RandInt(r Rand, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Invariant panics with a formatted message when cond is false. It marks
// states that can only be reached through a logic bug.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic("invariant violated: " + fmt.Sprintf(format, args...))
	}
}
