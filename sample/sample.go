// Package sample turns caller supplied weights into a probability
// distribution and draws source indexes from it.
package sample

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidWeight when a weight is negative or no weight
// is positive.
var ErrInvalidWeight = errors.New("invalid weight")

// Normalize the weights into a distribution summing to 1.
// The weights may be on any positive scale, so [10, 90] and
// [0.1, 0.9] normalize to the same distribution.
func Normalize(weights []float64) ([]float64, error) {
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %v at index %v", ErrInvalidWeight, w, i)
		}
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: weights must have a positive sum", ErrInvalidWeight)
	}

	dist := make([]float64, len(weights))
	for i, w := range weights {
		dist[i] = w / total
	}
	return dist, nil
}

// NewPicker over the distribution. The dice are used for
// every draw; when nil a time seeded generator is used.
// Tests pass seeded dice to make draws deterministic.
func NewPicker(dist []float64, dice *rand.Rand) *Picker {
	if dice == nil {
		dice = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	bounds := make([]float64, len(dist))
	sum := 0.0
	last := 0
	for i, p := range dist {
		sum += p
		bounds[i] = sum
		if p > 0 {
			last = i
		}
	}
	return &Picker{
		bounds: bounds,
		last:   last,
		dice:   dice,
	}
}

// Picker draws source indexes by weighted random selection
// over cumulative probability boundaries. Draws are
// independent and identically distributed.
type Picker struct {
	bounds []float64
	last   int
	dice   *rand.Rand
}

// Pick the next index: draw u uniformly from [0,1) and return
// the smallest i with u < bounds[i]. An index with probability
// zero has an empty interval and is never returned.
func (p *Picker) Pick() int {
	u := p.dice.Float64()
	for i, b := range p.bounds {
		if u < b {
			return i
		}
	}
	// Floating summation can leave the final boundary a hair
	// under 1. Fall back to the last index with a positive
	// probability.
	return p.last
}
