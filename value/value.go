// Package value implements blot's value model: a closed sum type covering
// every shape the object hash core knows how to digest, plus a bridge from
// JSON into that model.
package value

import (
	"fmt"
	"time"

	"github.com/arnau/blot/seal"
)

// Value is implemented by every concrete value kind blot can hash. The
// unexported marker method closes the set to this package.
type Value interface {
	isValue()
}

// Null is the absence of a value.
type Null struct{}

func (Null) isValue() {}

// Bool is a boolean value.
type Bool bool

func (Bool) isValue() {}

// Integer is a signed 64-bit integer value.
type Integer int64

func (Integer) isValue() {}

// Float is a 64-bit floating point value.
type Float float64

func (Float) isValue() {}

// Unicode is a text value.
type Unicode string

func (Unicode) isValue() {}

// Timestamp is an instant in time.
type Timestamp time.Time

func (Timestamp) isValue() {}

// Raw is an uninterpreted byte string.
type Raw []byte

func (Raw) isValue() {}

// Redacted stands in for a subtree whose digest is known but whose
// contents must not be disclosed.
type Redacted struct {
	Seal seal.Seal
}

func (Redacted) isValue() {}

// List is an ordered sequence of values.
type List []Value

func (List) isValue() {}

// Set is an unordered, duplicate-insensitive collection of values.
type Set []Value

func (Set) isValue() {}

// Dict is a string-keyed mapping of values. Construction from JSON or from
// NewDict resolves duplicate keys last-value-wins, matching Go's own map
// semantics.
type Dict map[string]Value

func (Dict) isValue() {}

// NewList builds a List from the given values, in order.
func NewList(values ...Value) List {
	out := make(List, len(values))
	copy(out, values)
	return out
}

// NewSet builds a Set from the given values. Duplicates are permitted here;
// the object hash core is responsible for collapsing them at digest time.
func NewSet(values ...Value) Set {
	out := make(Set, len(values))
	copy(out, values)
	return out
}

// NewDict builds a Dict from the given entries.
func NewDict(entries map[string]Value) Dict {
	out := make(Dict, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out
}

// SequencesAsSets recursively rewrites every List in v into a Set,
// descending into List, Set and Dict children. It is used to reinterpret a
// value parsed under SeqAsList as if it had been parsed under SeqAsSet,
// without re-parsing the original JSON.
func SequencesAsSets(v Value) Value {
	switch t := v.(type) {
	case List:
		out := make(Set, len(t))
		for i, item := range t {
			out[i] = SequencesAsSets(item)
		}
		return out
	case Set:
		out := make(Set, len(t))
		for i, item := range t {
			out[i] = SequencesAsSets(item)
		}
		return out
	case Dict:
		out := make(Dict, len(t))
		for k, item := range t {
			out[k] = SequencesAsSets(item)
		}
		return out
	default:
		return v
	}
}

// String renders v for diagnostic purposes. It is not part of the hashed
// representation.
func String(v Value) string {
	switch t := v.(type) {
	case Null:
		return "null"
	case Bool:
		return fmt.Sprintf("%t", bool(t))
	case Integer:
		return fmt.Sprintf("%d", int64(t))
	case Float:
		return fmt.Sprintf("%v", float64(t))
	case Unicode:
		return string(t)
	case Timestamp:
		return time.Time(t).Format(time.RFC3339Nano)
	case Raw:
		return fmt.Sprintf("% x", []byte(t))
	case Redacted:
		return t.Seal.String()
	case List, Set, Dict:
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
