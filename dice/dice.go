// Package dice wraps a seeded random source with the draws level generation
// needs: inclusive ranges and weighted picks.
package dice

import "math/rand"

// Roller handles random draws with a configurable random source
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// NewSeededRoller creates a Roller from a seed. Every seed, 0 included, gives
// a reproducible sequence.
func NewSeededRoller(seed int64) *Roller {
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// Intn returns a value in [0, n). n must be positive.
func (r *Roller) Intn(n int) int {
	return r.rng.Intn(n)
}

// Range returns a value in [min, max], both inclusive. A degenerate range
// (min >= max) always yields min.
func (r *Roller) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// PickWeighted returns an index into weights chosen proportionally to its
// weight. Non-positive weights are never chosen; if no weight is positive
// the choice is uniform.
func (r *Roller) PickWeighted(weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return r.rng.Intn(len(weights))
	}

	roll := r.rng.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}
