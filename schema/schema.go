package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Kind of value a field holds.
type Kind int

const (
	Bool Kind = iota
	Int32
	Int64
	Float32
	Float64
	String
	Bytes
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case String:
		return "string"
	case Bytes:
		return "bytes"
	default:
		panic("unknown kind")
	}
}

// Field of a flat schema.
type Field struct {
	Name     string
	Kind     Kind
	Nullable bool
}

func (f Field) String() string {
	if f.Nullable {
		return fmt.Sprintf("%v:%v?", f.Name, f.Kind)
	}
	return fmt.Sprintf("%v:%v", f.Name, f.Kind)
}

// Schema describing the records of a reader. A schema
// is either flat or windowed, and equality is defined
// per variant. Schemas of different variants are
// never equal.
type Schema interface {
	Equal(Schema) bool
	String() string
}

// NewFlat schema from the given fields.
func NewFlat(fields ...Field) *Flat {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return &Flat{fields: fs}
}

// Flat schema: an ordered set of named, typed fields.
// Field order is not significant for equality.
type Flat struct {
	fields []Field
}

// Fields of the schema, in declaration order.
func (s *Flat) Fields() []Field {
	fs := make([]Field, len(s.fields))
	copy(fs, s.fields)
	return fs
}

// Equal when r is also flat and has the same set
// of fields, regardless of declaration order.
func (s *Flat) Equal(r Schema) bool {
	o, ok := r.(*Flat)
	if !ok {
		return false
	}
	if len(s.fields) != len(o.fields) {
		return false
	}
	byName := map[string]Field{}
	for _, f := range s.fields {
		byName[f.Name] = f
	}
	for _, f := range o.fields {
		if byName[f.Name] != f {
			return false
		}
	}
	return true
}

// String of the schema, with fields in name order so
// equal schemas print the same.
func (s *Flat) String() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = f.String()
	}
	sort.Strings(parts)
	return fmt.Sprintf("flat(%v)", strings.Join(parts, ", "))
}

// NewNGram schema from the per-offset field names, the
// name of the timestamp field, and the delta threshold
// used to group records into windows.
func NewNGram(fields map[int][]string, timestamp string, deltaThreshold float64) *NGram {
	fs := map[int][]string{}
	for off, names := range fields {
		ns := make([]string, len(names))
		copy(ns, names)
		fs[off] = ns
	}
	return &NGram{
		fields:         fs,
		timestamp:      timestamp,
		deltaThreshold: deltaThreshold,
	}
}

// NGram schema: a windowed schema describing records
// grouped by relative time offset around a reference
// timestamp.
type NGram struct {
	fields         map[int][]string
	timestamp      string
	deltaThreshold float64
}

// Fields of the schema, keyed by relative offset.
func (s *NGram) Fields() map[int][]string {
	fs := map[int][]string{}
	for off, names := range s.fields {
		ns := make([]string, len(names))
		copy(ns, names)
		fs[off] = ns
	}
	return fs
}

// Timestamp field name.
func (s *NGram) Timestamp() string {
	return s.timestamp
}

// DeltaThreshold used to group records into windows.
func (s *NGram) DeltaThreshold() float64 {
	return s.deltaThreshold
}

// Equal when r is also an n-gram schema with the same
// offsets, the same field names per offset, the same
// timestamp field, and the same delta threshold. Field
// name order within an offset is not significant.
func (s *NGram) Equal(r Schema) bool {
	o, ok := r.(*NGram)
	if !ok {
		return false
	}
	if s.timestamp != o.timestamp {
		return false
	}
	if s.deltaThreshold != o.deltaThreshold {
		return false
	}
	if len(s.fields) != len(o.fields) {
		return false
	}
	for off, names := range s.fields {
		others, ok := o.fields[off]
		if !ok {
			return false
		}
		if !equalNames(names, others) {
			return false
		}
	}
	return true
}

// String of the schema, with offsets in ascending order
// so equal schemas print the same.
func (s *NGram) String() string {
	offs := make([]int, 0, len(s.fields))
	for off := range s.fields {
		offs = append(offs, off)
	}
	sort.Ints(offs)

	parts := make([]string, 0, len(offs))
	for _, off := range offs {
		names := make([]string, len(s.fields[off]))
		copy(names, s.fields[off])
		sort.Strings(names)
		parts = append(parts, fmt.Sprintf("%v:[%v]", off, strings.Join(names, ", ")))
	}
	return fmt.Sprintf("ngram(%v, ts: %v, delta: %v)",
		strings.Join(parts, ", "), s.timestamp, s.deltaThreshold)
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[string]int{}
	for _, n := range a {
		seen[n]++
	}
	for _, n := range b {
		if seen[n] == 0 {
			return false
		}
		seen[n]--
	}
	return true
}
