package badgerdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/dgraph-io/badger"
	"github.com/stretchr/testify/require"

	"github.com/lytics/blend/reader"
	"github.com/lytics/blend/schema"
)

var testSchema = schema.NewFlat(schema.Field{Name: "n", Kind: schema.Float64})

func writeFixture(t *testing.T, dir string, recs []reader.Record) {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions(dir))
	require.NoError(t, err)
	defer db.Close()

	err = db.Update(func(txn *badger.Txn) error {
		for i, rec := range recs {
			vb, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(fmt.Sprintf("%08d", i)), vb); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestReadStore(t *testing.T) {
	dir := t.TempDir()
	recs := []reader.Record{{"n": float64(0)}, {"n": float64(1)}, {"n": float64(2)}}
	writeFixture(t, dir, recs)

	s, err := Open(dir, testSchema)
	require.NoError(t, err)
	require.True(t, s.Schema().Equal(testSchema))

	for _, want := range recs {
		v, err := s.Next(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, v)
	}

	_, err = s.Next(context.Background())
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, s.Close())
}
