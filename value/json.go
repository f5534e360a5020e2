package value

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/arnau/blot/seal"
)

// Schema selects how a JSON array is read back: as an order-sensitive List
// or as a duplicate-insensitive Set. JSON has no native set type, so the
// caller must say which is meant.
type Schema int

const (
	// SeqAsList reads JSON arrays as List values.
	SeqAsList Schema = iota
	// SeqAsSet reads JSON arrays as Set values.
	SeqAsSet
)

// Parse decodes a single JSON document into a Value under the given
// Schema. Numbers are read with json.Number so integers and floats stay
// distinguishable; integers that overflow int64 are an error, matching the
// object hash core's Integer representation.
func Parse(data []byte, schema Schema) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("value: decode json: %w", err)
	}

	return fromAny(raw, schema)
}

func fromAny(raw interface{}, schema Schema) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return fromNumber(t)
	case string:
		return classifyString(t), nil
	case []interface{}:
		return fromSlice(t, schema)
	case map[string]interface{}:
		return fromMap(t, schema)
	default:
		return nil, fmt.Errorf("value: unsupported json type %T", raw)
	}
}

func fromNumber(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return Integer(i), nil
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		return nil, fmt.Errorf("value: integer %s out of int64 range", n.String())
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("value: invalid number %q: %w", n.String(), err)
	}
	return Float(f), nil
}

func fromSlice(items []interface{}, schema Schema) (Value, error) {
	switch schema {
	case SeqAsSet:
		out := make(Set, len(items))
		for i, item := range items {
			v, err := fromAny(item, schema)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		out := make(List, len(items))
		for i, item := range items {
			v, err := fromAny(item, schema)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}

func fromMap(m map[string]interface{}, schema Schema) (Value, error) {
	out := make(Dict, len(m))
	for k, raw := range m {
		v, err := fromAny(raw, schema)
		if err != nil {
			return nil, err
		}
		// encoding/json already resolves duplicate object keys
		// last-value-wins before this function ever sees them.
		out[k] = v
	}
	return out, nil
}

// classifyString resolves a JSON string into the most specific value kind
// it can represent, in order: a redacted seal, a hex-encoded Raw string, an
// RFC3339 Timestamp, or else a plain Unicode string.
func classifyString(s string) Value {
	if sl, err := seal.ParseString(s); err == nil {
		return Redacted{Seal: sl}
	}

	if raw, ok := parseHex(s); ok {
		return Raw(raw)
	}

	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return Timestamp(ts)
	}

	return Unicode(s)
}

// parseHex accepts both upper- and lowercase hex, same as the original
// deserialiser's Vec::from_hex, even though spec.md's prose describes the
// Raw classification as matching lowercase hex only.
func parseHex(s string) ([]byte, bool) {
	if len(s) == 0 || len(s)%2 != 0 {
		return nil, false
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return raw, true
}
