package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatch when the schemas of the composed readers differ.
	ErrMismatch = errors.New("all readers should have the same schema")
	// ErrNGramMismatch when the n-gram definitions of the composed
	// readers differ.
	ErrNGramMismatch = errors.New("all readers should have the same ngram definition")
)

// Validate that every schema equals the first. The returned
// error wraps ErrNGramMismatch when two n-gram schemas differ,
// and ErrMismatch for every other difference, so callers can
// tell the two failure causes apart.
func Validate(schemas []Schema) error {
	if len(schemas) == 0 {
		return fmt.Errorf("%w: no schemas to compare", ErrMismatch)
	}
	first := schemas[0]
	for i, s := range schemas[1:] {
		if s.Equal(first) {
			continue
		}
		_, firstNG := first.(*NGram)
		_, otherNG := s.(*NGram)
		if firstNG && otherNG {
			return fmt.Errorf("%w: reader 0 has %v, reader %v has %v",
				ErrNGramMismatch, first, i+1, s)
		}
		return fmt.Errorf("%w: reader 0 has %v, reader %v has %v",
			ErrMismatch, first, i+1, s)
	}
	return nil
}
