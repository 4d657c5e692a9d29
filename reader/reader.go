package reader

import (
	"context"

	"github.com/lytics/blend/schema"
)

// Record of data keyed by schema field name. Readers with a
// windowed schema yield map[int]Record values instead, keyed
// by relative offset.
type Record map[string]interface{}

// Reader of records.
type Reader interface {
	// Schema describing the records this reader yields.
	Schema() schema.Schema
	// Next record to consume. When a reader is done it
	// should return io.EOF.
	Next(context.Context) (interface{}, error)
	// Close the reader and clean up. Called exactly once
	// by whoever owns the reader.
	Close() error
}
