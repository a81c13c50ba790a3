package rt

import "math"

// expLimit caps per-step multiplicative change at 2x / 0.5x (ln 2).
const expLimit = math.Ln2

// estimator is the adaptive threshold estimator of §4.6: it tracks a
// current threshold seeded at a floor, and after each collection adjusts it
// geometrically based on how far the post-collection size moved it.
//
// Translated directly from original_source/src/core/rt/gcStat.hpp's
// AdaptiveEstimator; the dual clamp (on gain, then on the recomputed
// exponent) keeps it responsive when the live set grows and conservative
// when it shrinks.
type estimator struct {
	floor int
	cur   int
	gain  float64
}

func newEstimator(floor int) estimator {
	return estimator{floor: floor, cur: floor, gain: expLimit}
}

func (e *estimator) setFloor(floor int) {
	e.floor = floor
	if e.cur < floor {
		e.cur = floor
	}
}

func (e estimator) get() int { return e.cur }

func (e estimator) exceeded(size int) bool { return size > e.cur }

func (e *estimator) update(newValue int) {
	delta := float64(newValue - e.cur)
	exp := math.Log1p(e.gain/float64(e.floor)) * delta

	if exp < -expLimit || exp > expLimit {
		e.gain *= 0.9
	} else {
		e.gain *= 1.1
	}

	e.gain = clamp(e.gain, 1e-15, 1.0)

	exp = math.Log1p(e.gain/float64(e.floor)) * delta
	exp = clamp(exp, -expLimit, expLimit)

	next := int(float64(e.cur) * math.Exp(exp))
	if next < e.floor {
		next = e.floor
	}

	e.cur = next
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// newStats seeds the young/old estimators at the minimums spec.md §4.6
// names: 1024 young, 65536 old.
func newStats() stats {
	return stats{
		youngThreshold: newEstimator(1024),
		oldThreshold:   newEstimator(65536),
	}
}
