package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlatEqualIgnoresFieldOrder(t *testing.T) {
	a := NewFlat(
		Field{Name: "id", Kind: Int64},
		Field{Name: "image", Kind: Bytes},
	)
	b := NewFlat(
		Field{Name: "image", Kind: Bytes},
		Field{Name: "id", Kind: Int64},
	)

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
}

func TestFlatNotEqual(t *testing.T) {
	base := NewFlat(Field{Name: "id", Kind: Int64})

	// Different field name.
	require.False(t, base.Equal(NewFlat(Field{Name: "uid", Kind: Int64})))
	// Different kind.
	require.False(t, base.Equal(NewFlat(Field{Name: "id", Kind: Int32})))
	// Different nullability.
	require.False(t, base.Equal(NewFlat(Field{Name: "id", Kind: Int64, Nullable: true})))
	// Extra field.
	require.False(t, base.Equal(NewFlat(
		Field{Name: "id", Kind: Int64},
		Field{Name: "image", Kind: Bytes},
	)))
}

func TestFlatNeverEqualsNGram(t *testing.T) {
	flat := NewFlat(Field{Name: "id", Kind: Int64})
	ngram := NewNGram(map[int][]string{0: {"id"}}, "id", 10)

	require.False(t, flat.Equal(ngram))
	require.False(t, ngram.Equal(flat))
}

func TestNGramEqualIgnoresNameOrder(t *testing.T) {
	a := NewNGram(map[int][]string{
		-1: {"id"},
		0:  {"id", "image"},
	}, "id", 10)
	b := NewNGram(map[int][]string{
		-1: {"id"},
		0:  {"image", "id"},
	}, "id", 10)

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
}

func TestNGramNotEqual(t *testing.T) {
	base := NewNGram(map[int][]string{
		-1: {"id"},
		0:  {"id", "image"},
	}, "id", 10)

	// Same field vocabulary, swapped across offsets.
	require.False(t, base.Equal(NewNGram(map[int][]string{
		-1: {"id", "image"},
		0:  {"id"},
	}, "id", 10)))

	// Different offset set.
	require.False(t, base.Equal(NewNGram(map[int][]string{
		0: {"id"},
		1: {"id", "image"},
	}, "id", 10)))

	// Different timestamp field.
	require.False(t, base.Equal(NewNGram(map[int][]string{
		-1: {"id"},
		0:  {"id", "image"},
	}, "ts", 10)))

	// Different delta threshold.
	require.False(t, base.Equal(NewNGram(map[int][]string{
		-1: {"id"},
		0:  {"id", "image"},
	}, "id", 30)))
}

func TestValidateMatching(t *testing.T) {
	flat := NewFlat(Field{Name: "id", Kind: Int64})

	require.NoError(t, Validate([]Schema{flat}))
	require.NoError(t, Validate([]Schema{flat, NewFlat(Field{Name: "id", Kind: Int64})}))
}

func TestValidateEmpty(t *testing.T) {
	require.Error(t, Validate(nil))
}

func TestValidateFlatMismatch(t *testing.T) {
	err := Validate([]Schema{
		NewFlat(Field{Name: "id", Kind: Int64}),
		NewFlat(Field{Name: "image", Kind: Bytes}),
	})
	require.ErrorIs(t, err, ErrMismatch)
	require.Contains(t, err.Error(), "schema")
}

func TestValidateKindMismatch(t *testing.T) {
	// Flat vs windowed is the generic schema mismatch, not
	// the ngram one.
	err := Validate([]Schema{
		NewFlat(Field{Name: "id", Kind: Int64}),
		NewNGram(map[int][]string{0: {"id"}}, "id", 10),
	})
	require.ErrorIs(t, err, ErrMismatch)
	require.NotErrorIs(t, err, ErrNGramMismatch)
	require.Contains(t, err.Error(), "schema")
}

func TestValidateNGramMismatch(t *testing.T) {
	err := Validate([]Schema{
		NewNGram(map[int][]string{-1: {"id"}, 0: {"id", "image"}}, "id", 10),
		NewNGram(map[int][]string{-1: {"id", "image"}, 0: {"id"}}, "id", 10),
	})
	require.ErrorIs(t, err, ErrNGramMismatch)
	require.NotErrorIs(t, err, ErrMismatch)
	require.Contains(t, err.Error(), "ngram")
}
