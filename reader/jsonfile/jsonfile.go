package jsonfile

import (
	"bufio"
	"context"
	"encoding/json"
	"os"

	"github.com/lytics/blend/reader"
	"github.com/lytics/blend/schema"
)

// Open a reader over a file of JSON encoded objects, one
// object per line, each decoded into a record conforming
// to the given schema:
//
//	recs, err := jsonfile.Open(sch, "events.data")
func Open(sch schema.Schema, filename string) (*Records, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	return &Records{
		f:        f,
		stream:   json.NewDecoder(bufio.NewReader(f)),
		sch:      sch,
		filename: filename,
	}, nil
}

// Records from JSON encoded values.
type Records struct {
	f        *os.File
	stream   *json.Decoder
	sch      schema.Schema
	filename string
}

// Name of the backing file.
func (s *Records) Name() string {
	return s.filename
}

// Schema of the records.
func (s *Records) Schema() schema.Schema {
	return s.sch
}

// Next record or io.EOF.
func (s *Records) Next(context.Context) (interface{}, error) {
	rec := reader.Record{}
	if err := s.stream.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Close the reader.
func (s *Records) Close() error {
	return s.f.Close()
}
