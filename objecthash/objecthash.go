// Package objecthash implements blot's core hashing algorithm: a
// deterministic structural digest of a value.Value tree, tagged per §4.3
// and wrapped in a self-describing multihash.Hash.
package objecthash

import (
	"bytes"
	"sort"

	"github.com/arnau/blot/canon"
	"github.com/arnau/blot/multihash"
	"github.com/arnau/blot/tag"
	"github.com/arnau/blot/value"
)

// Hash computes the multihash.Hash of v under the given algorithm.
func Hash(v value.Value, alg multihash.Algorithm) multihash.Hash {
	return multihash.Hash{
		Algorithm: alg,
		Digest:    digest(v, alg),
	}
}

// digest dispatches on the concrete shape of v, producing the raw digest
// bytes (no multihash envelope).
func digest(v value.Value, alg multihash.Algorithm) []byte {
	switch t := v.(type) {
	case value.Null:
		return primitive(alg, tag.Null, nil)
	case value.Bool:
		b := byte('0')
		if t {
			b = '1'
		}
		return primitive(alg, tag.Bool, []byte{b})
	case value.Integer:
		return primitive(alg, tag.Integer, []byte(formatInt(int64(t))))
	case value.Float:
		return primitive(alg, tag.Float, []byte(canon.Float(float64(t))))
	case value.Unicode:
		return primitive(alg, tag.Unicode, []byte(t))
	case value.Timestamp:
		return primitive(alg, tag.Timestamp, []byte(formatTimestamp(t)))
	case value.Raw:
		return primitive(alg, tag.Raw, []byte(t))
	case value.Redacted:
		// A redacted subtree contributes its carried digest directly;
		// the enclosing structure never re-derives or checks it.
		return t.Seal.Digest
	case value.List:
		return list(t, alg)
	case value.Set:
		return set(t, alg)
	case value.Dict:
		return dict(t, alg)
	default:
		panic("objecthash: unknown value kind")
	}
}

// primitive hashes a tag byte followed by the primitive's canonical
// payload in a single digester pass.
func primitive(alg multihash.Algorithm, t tag.Tag, payload []byte) []byte {
	d := alg.NewDigester()
	d.Absorb([]byte{t.Byte()})
	d.Absorb(payload)
	return d.Sum()
}

// collection hashes a tag byte followed by the concatenation of already
// -computed child digests, which must be presented in their final order.
func collection(alg multihash.Algorithm, t tag.Tag, children [][]byte) []byte {
	d := alg.NewDigester()
	d.Absorb([]byte{t.Byte()})
	for _, child := range children {
		d.Absorb(child)
	}
	return d.Sum()
}

func list(items value.List, alg multihash.Algorithm) []byte {
	children := make([][]byte, len(items))
	for i, item := range items {
		children[i] = digest(item, alg)
	}
	return collection(alg, tag.List, children)
}

// set hashes its members' digests in sorted, de-duplicated order, so that
// member order and multiplicity never affect the result.
func set(items value.Set, alg multihash.Algorithm) []byte {
	seen := make(map[string]struct{}, len(items))
	children := make([][]byte, 0, len(items))
	for _, item := range items {
		d := digest(item, alg)
		key := string(d)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		children = append(children, d)
	}
	sort.Slice(children, func(i, j int) bool {
		return bytes.Compare(children[i], children[j]) < 0
	})
	return collection(alg, tag.Set, children)
}

// dict hashes key||value digest pairs sorted by the pair's bytes. Unlike
// Set, no de-duplication happens here: a Dict's keys are already unique by
// construction (it is a Go map).
func dict(d value.Dict, alg multihash.Algorithm) []byte {
	pairs := make([][]byte, 0, len(d))
	for k, v := range d {
		keyDigest := primitive(alg, tag.Unicode, []byte(k))
		valueDigest := digest(v, alg)
		pair := make([]byte, 0, len(keyDigest)+len(valueDigest))
		pair = append(pair, keyDigest...)
		pair = append(pair, valueDigest...)
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i], pairs[j]) < 0
	})
	return collection(alg, tag.Dict, pairs)
}
