package linefile

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/lytics/blend/reader"
	"github.com/lytics/blend/schema"
)

// Field holding the line text.
const Field = "line"

// Open a reader over the lines of a file. Each line becomes
// a single-field record.
func Open(filename string) (*Lines, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	return &Lines{
		f:        f,
		r:        bufio.NewReader(f),
		sch:      schema.NewFlat(schema.Field{Name: Field, Kind: schema.String}),
		filename: filename,
	}, nil
}

// Lines of a file.
type Lines struct {
	f        *os.File
	r        *bufio.Reader
	sch      schema.Schema
	filename string
}

// Name of the backing file.
func (s *Lines) Name() string {
	return s.filename
}

// Schema of the records.
func (s *Lines) Schema() schema.Schema {
	return s.sch
}

// Next record or io.EOF.
func (s *Lines) Next(ctx context.Context) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	v, err := s.r.ReadString('\n')
	if err != nil {
		return nil, err
	}

	return reader.Record{Field: strings.TrimSuffix(v, "\n")}, nil
}

// Close the reader.
func (s *Lines) Close() error {
	return s.f.Close()
}
