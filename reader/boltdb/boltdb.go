package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/boltdb/bolt"

	"github.com/lytics/blend/reader"
	"github.com/lytics/blend/schema"
)

// Open a reader over the JSON encoded values of a bolt
// bucket, in key order. The reader holds a read transaction
// for its whole life, so the view of the bucket is a
// consistent snapshot.
func Open(path, bucket string, sch schema.Schema) (*Records, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin(false)
	if err != nil {
		db.Close()
		return nil, err
	}

	bk := tx.Bucket([]byte(bucket))
	if bk == nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("boltdb: no such bucket: %v", bucket)
	}

	return &Records{
		db:     db,
		tx:     tx,
		cursor: bk.Cursor(),
		sch:    sch,
	}, nil
}

// Records from a bolt bucket.
type Records struct {
	db      *bolt.DB
	tx      *bolt.Tx
	cursor  *bolt.Cursor
	sch     schema.Schema
	started bool
}

// Schema of the records.
func (s *Records) Schema() schema.Schema {
	return s.sch
}

// Next record or io.EOF.
func (s *Records) Next(context.Context) (interface{}, error) {
	var vb []byte
	if !s.started {
		_, vb = s.cursor.First()
		s.started = true
	} else {
		_, vb = s.cursor.Next()
	}
	if vb == nil {
		return nil, io.EOF
	}

	rec := reader.Record{}
	if err := json.Unmarshal(vb, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Close the reader, releasing the read transaction and
// the database.
func (s *Records) Close() error {
	if err := s.tx.Rollback(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}
