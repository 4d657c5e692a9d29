// Package blend composes several already open readers into one
// reader that, on every pull, draws the next record from an
// underlying reader chosen by weighted random selection. It is
// used to mix differently filtered or differently prepared
// record streams, for example class balanced subsets, into a
// single randomized stream.
package blend

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/lytics/blend/reader"
	"github.com/lytics/blend/sample"
	"github.com/lytics/blend/schema"
)

// Option for a mixer.
type Option func(*Mixer)

// WithRand sets the random source used for the weighted
// draws. Tests pass a seeded source to make the draw
// sequence deterministic.
func WithRand(dice *rand.Rand) Option {
	return func(m *Mixer) {
		m.dice = dice
	}
}

// New mixer over the readers. The weights may be on any
// positive scale, they are normalized into a distribution.
// Construction validates that the number of readers matches
// the number of weights and that every reader exposes the
// same schema. On success the mixer takes ownership of
// closing every reader; on failure ownership stays with the
// caller and no reader has been touched.
func New(readers []reader.Reader, weights []float64, opts ...Option) (*Mixer, error) {
	if len(readers) != len(weights) {
		return nil, fmt.Errorf("%w: %v readers, %v weights",
			ErrArityMismatch, len(readers), len(weights))
	}

	schemas := make([]schema.Schema, len(readers))
	for i, r := range readers {
		schemas[i] = r.Schema()
	}
	if err := schema.Validate(schemas); err != nil {
		return nil, err
	}

	dist, err := sample.Normalize(weights)
	if err != nil {
		return nil, err
	}

	rs := make([]reader.Reader, len(readers))
	copy(rs, readers)

	m := &Mixer{
		readers: rs,
		dist:    dist,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.picker = sample.NewPicker(dist, m.dice)

	return m, nil
}

// Mixer of readers. A mixer is itself a reader, so a
// downstream consumer can treat the mixed stream exactly
// like any single source. A mixer supports one in-flight
// pull at a time and is not safe for concurrent use.
type Mixer struct {
	readers []reader.Reader
	dist    []float64
	picker  *sample.Picker
	dice    *rand.Rand
	closed  bool
}

// Schema shared by every underlying reader.
func (m *Mixer) Schema() schema.Schema {
	return m.readers[0].Schema()
}

// Distribution the mixer draws from, normalized so the
// probabilities sum to 1.
func (m *Mixer) Distribution() []float64 {
	dist := make([]float64, len(m.dist))
	copy(dist, m.dist)
	return dist
}

// Next record, pulled from a reader chosen by weighted
// random selection. The record is returned unchanged, and
// errors from the chosen reader propagate unwrapped. When
// the chosen reader is exhausted its io.EOF ends the whole
// mixed stream: a caller that wants endless mixing should
// compose readers that cycle.
func (m *Mixer) Next(ctx context.Context) (interface{}, error) {
	if m.closed {
		return nil, ErrClosed
	}

	i := m.picker.Pick()
	return m.readers[i].Next(ctx)
}

// Close every underlying reader exactly once. A failing
// close never prevents closing the rest; when one or more
// closes fail a single *CloseError carrying every failure
// is returned. Closing an already closed mixer is a no-op.
func (m *Mixer) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for _, r := range m.readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &CloseError{Errs: errs}
	}
	return nil
}
