// Package multihash implements the compact self-describing digest prefix
// used by blot: a closed registry of hash algorithms, each identified by a
// uvar-encoded code and a fixed digest length, plus the Digester
// abstraction the object hash core drives to produce digests.
package multihash

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/arnau/blot/uvar"
)

// Digester is the minimal block-consuming interface the object hash core
// requires from an underlying cryptographic primitive. One Digester is
// created per hash operation (and per recursively-hashed child); Digesters
// are never shared or reused after Sum is called.
type Digester interface {
	// Absorb appends p to the digester's input.
	Absorb(p []byte)
	// Sum finalises the digester and returns the digest. It is only
	// ever called once per Digester.
	Sum() []byte
}

// hashDigester adapts the standard hash.Hash interface to Digester.
type hashDigester struct {
	h hash.Hash
}

func (d *hashDigester) Absorb(p []byte) {
	// hash.Hash.Write never returns an error.
	_, _ = d.h.Write(p)
}

func (d *hashDigester) Sum() []byte {
	return d.h.Sum(nil)
}

// Algorithm identifies one of blot's nine supported hash algorithms. The
// zero value is not a valid Algorithm; use Lookup or LookupCode to obtain
// one, or one of the exported constants below.
type Algorithm int

// The nine algorithms blot supports, matching the multihash registry.
const (
	Sha1 Algorithm = iota + 1
	Sha2256
	Sha2512
	Sha3512
	Sha3384
	Sha3256
	Sha3224
	Blake2b512
	Blake2s256
)

type descriptor struct {
	name       string
	code       uvar.Uvar
	length     int
	newHash    func() hash.Hash
}

var descriptors = map[Algorithm]descriptor{
	Sha1:       {"sha1", uvar.Encode(0x11), 20, sha1.New},
	Sha2256:    {"sha2-256", uvar.Encode(0x12), 32, sha256.New},
	Sha2512:    {"sha2-512", uvar.Encode(0x13), 64, sha512.New},
	Sha3512:    {"sha3-512", uvar.Encode(0x14), 64, sha3.New512},
	Sha3384:    {"sha3-384", uvar.Encode(0x15), 48, sha3.New384},
	Sha3256:    {"sha3-256", uvar.Encode(0x16), 32, sha3.New256},
	Sha3224:    {"sha3-224", uvar.Encode(0x17), 28, sha3.New224},
	Blake2b512: {"blake2b-512", uvar.Encode(0xb240), 64, mustBlake2b512},
	Blake2s256: {"blake2s-256", uvar.Encode(0xb260), 32, mustBlake2s256},
}

// byName and byCode mirror descriptors for direct string/uvar lookups
// without re-deriving them on every call.
var (
	byName = make(map[string]Algorithm, len(descriptors))
	byCode = make(map[string]Algorithm, len(descriptors))
)

func init() {
	for alg, d := range descriptors {
		byName[d.name] = alg
		byCode[string(d.code)] = alg
	}
}

func mustBlake2b512() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		// Only a non-nil key or an invalid size argument can cause
		// blake2b.New512 to fail; blot never supplies either.
		panic(fmt.Sprintf("multihash: blake2b.New512: %v", err))
	}
	return h
}

func mustBlake2s256() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("multihash: blake2s.New256: %v", err))
	}
	return h
}

// ErrUnknown is the error for an algorithm name or code that is not in the
// registry. Lookup and LookupCode do not return it: they report no match
// with a false second result.
var ErrUnknown = errors.New("multihash: unknown algorithm")

// Lookup resolves an algorithm by its registry name (e.g. "sha2-256").
func Lookup(name string) (Algorithm, bool) {
	alg, ok := byName[name]
	return alg, ok
}

// LookupCode resolves an algorithm by its uvar-encoded code. The code must
// be a single canonical uvar; callers that parse a code out of a longer
// buffer (as seal does) get that guarantee from uvar.Decode, but LookupCode
// re-validates it here since a Uvar can also be built by hand.
func LookupCode(code uvar.Uvar) (Algorithm, bool) {
	if _, err := uvar.FromBytes(code.Bytes()); err != nil {
		return 0, false
	}
	alg, ok := byCode[string(code.Bytes())]
	return alg, ok
}

// Name returns the algorithm's registry name.
func (a Algorithm) Name() string {
	return descriptors[a].name
}

// Code returns the algorithm's uvar-encoded multihash code.
func (a Algorithm) Code() uvar.Uvar {
	return descriptors[a].code
}

// Length returns the algorithm's fixed digest length, in bytes.
func (a Algorithm) Length() int {
	return descriptors[a].length
}

// NewDigester returns a fresh Digester for this algorithm.
func (a Algorithm) NewDigester() Digester {
	d, ok := descriptors[a]
	if !ok {
		panic(fmt.Sprintf("multihash: invalid algorithm %d", a))
	}
	return &hashDigester{h: d.newHash()}
}

// String returns the algorithm's registry name.
func (a Algorithm) String() string {
	if d, ok := descriptors[a]; ok {
		return d.name
	}
	return "unknown"
}

// Names returns the registry names of all supported algorithms, in a
// stable order (the order the table above lists them in).
func Names() []string {
	order := []Algorithm{Sha1, Sha2256, Sha2512, Sha3512, Sha3384, Sha3256, Sha3224, Blake2b512, Blake2s256}
	names := make([]string, len(order))
	for i, alg := range order {
		names[i] = alg.Name()
	}
	return names
}

// Hash is a tagged digest: the output of hashing some value with a known
// Algorithm. Its canonical textual form is the lowercase hex of
// uvar(code) || length || digest.
type Hash struct {
	Algorithm Algorithm
	Digest    []byte
}

// Bytes returns the raw wire form: uvar(code) || length || digest.
func (h Hash) Bytes() []byte {
	out := make([]byte, 0, len(h.Algorithm.Code())+1+len(h.Digest))
	out = append(out, h.Algorithm.Code()...)
	out = append(out, byte(h.Algorithm.Length()))
	out = append(out, h.Digest...)
	return out
}

// String returns the canonical lowercase-hex text of Bytes.
func (h Hash) String() string {
	return fmt.Sprintf("%x", h.Bytes())
}
