package slowdown

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/lytics/blend/reader"
	"github.com/lytics/blend/schema"
)

// Wrap a reader to slow it down to the given
// records-per-second for calls to Next.
func Wrap(rps float64, r reader.Reader) *Slowdown {
	return &Slowdown{
		r:       r,
		limiter: rate.NewLimiter(rate.Limit(rps), 2),
	}
}

// Slowdown a reader.
type Slowdown struct {
	r       reader.Reader
	limiter *rate.Limiter
}

// Schema of the wrapped reader.
func (s *Slowdown) Schema() schema.Schema {
	return s.r.Schema()
}

// Next record of the wrapped reader, at the limited rate.
func (s *Slowdown) Next(ctx context.Context) (interface{}, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.r.Next(ctx)
}

// Close the wrapped reader.
func (s *Slowdown) Close() error {
	return s.r.Close()
}
