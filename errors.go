package blend

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrArityMismatch when the number of readers does not match
	// the number of weights.
	ErrArityMismatch = errors.New("mismatched number of readers and weights")
	// ErrClosed when a record is requested from a closed mixer.
	ErrClosed = errors.New("mixer closed")
)

// CloseError reports every underlying reader that failed
// to close.
type CloseError struct {
	Errs []error
}

func (e *CloseError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("closing %v of the readers failed: %v", len(e.Errs), strings.Join(msgs, "; "))
}

// Unwrap the underlying close failures, so errors.Is and
// errors.As see through the aggregate.
func (e *CloseError) Unwrap() []error {
	return e.Errs
}
