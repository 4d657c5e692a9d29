package badgerdb

import (
	"context"
	"encoding/json"
	"io"

	"github.com/dgraph-io/badger"

	"github.com/lytics/blend/reader"
	"github.com/lytics/blend/schema"
)

// Open a reader over the JSON encoded values of a badger
// store, in key order. The reader holds a read transaction
// for its whole life, so the view of the store is a
// consistent snapshot.
func Open(dir string, sch schema.Schema) (*Records, error) {
	db, err := badger.Open(badger.DefaultOptions(dir))
	if err != nil {
		return nil, err
	}

	txn := db.NewTransaction(false)
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	it.Rewind()

	return &Records{
		db:  db,
		txn: txn,
		it:  it,
		sch: sch,
	}, nil
}

// Records from a badger store.
type Records struct {
	db  *badger.DB
	txn *badger.Txn
	it  *badger.Iterator
	sch schema.Schema
}

// Schema of the records.
func (s *Records) Schema() schema.Schema {
	return s.sch
}

// Next record or io.EOF.
func (s *Records) Next(context.Context) (interface{}, error) {
	if !s.it.Valid() {
		return nil, io.EOF
	}

	vb, err := s.it.Item().ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	s.it.Next()

	rec := reader.Record{}
	if err := json.Unmarshal(vb, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Close the reader, releasing the iterator, the read
// transaction, and the database.
func (s *Records) Close() error {
	s.it.Close()
	s.txn.Discard()
	return s.db.Close()
}
