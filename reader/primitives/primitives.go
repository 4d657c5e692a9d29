package primitives

import (
	"context"
	"io"

	"github.com/lytics/blend/reader"
	"github.com/lytics/blend/schema"
)

// FromRecords creates a finite in-memory reader over the
// given records.
func FromRecords(sch schema.Schema, recs []reader.Record) *Records {
	return &Records{sch: sch, data: recs}
}

// Records is a finite in-memory reader.
type Records struct {
	pos  int
	sch  schema.Schema
	data []reader.Record
}

// Schema of the records.
func (s *Records) Schema() schema.Schema {
	return s.sch
}

// Next record or io.EOF.
func (s *Records) Next(context.Context) (interface{}, error) {
	if s.pos >= len(s.data) {
		return nil, io.EOF
	}

	r := s.data[s.pos]
	s.pos++

	return r, nil
}

// Close the reader.
func (s *Records) Close() error {
	return nil
}

// Cycle creates a reader that repeats the given records
// forever, the in-memory equivalent of a reader configured
// for cyclic re-reads.
func Cycle(sch schema.Schema, recs []reader.Record) *Loop {
	return &Loop{sch: sch, data: recs}
}

// Loop is an endless in-memory reader.
type Loop struct {
	pos  int
	sch  schema.Schema
	data []reader.Record
}

// Schema of the records.
func (s *Loop) Schema() schema.Schema {
	return s.sch
}

// Next record, wrapping around at the end. An empty record
// set yields io.EOF immediately.
func (s *Loop) Next(context.Context) (interface{}, error) {
	if len(s.data) == 0 {
		return nil, io.EOF
	}

	r := s.data[s.pos%len(s.data)]
	s.pos++

	return r, nil
}

// Close the reader.
func (s *Loop) Close() error {
	return nil
}
