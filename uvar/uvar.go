// Package uvar implements unsigned variable-length integers as defined by
// the multiformats unsigned-varint spec: little-endian base-128, with the
// high bit of each byte signalling continuation.
//
// https://github.com/multiformats/unsigned-varint
package uvar

import "errors"

// MaxBytes is the maximum number of bytes a Uvar may occupy. It bounds
// encoding to values in [0, 2^63), which is the domain blot's multihash
// codes live in.
const MaxBytes = 9

// Uvar is the wire representation of an unsigned variable-length integer:
// the exact byte sequence, not just the decoded value. Two Uvars with the
// same integer value but different byte-length encodings are not equal —
// only the canonical (minimal) encoding round-trips through Encode.
type Uvar []byte

var (
	// ErrOverflow is returned when the first MaxBytes bytes of the input
	// all have the continuation bit set.
	ErrOverflow = errors.New("uvar: overflow")
	// ErrUnderflow is returned when the input is exhausted before a
	// terminating byte (high bit clear) is found.
	ErrUnderflow = errors.New("uvar: underflow")
)

// Encode returns the canonical uvar encoding of n. Zero encodes as the
// single byte 0x00.
func Encode(n uint64) Uvar {
	if n == 0 {
		return Uvar{0x00}
	}

	var buf []byte
	for n >= 0x80 {
		buf = append(buf, byte(n)|0x80)
		n >>= 7
	}
	buf = append(buf, byte(n))

	return Uvar(buf)
}

// Decode takes a uvar from the front of buffer and returns it along with
// the remaining bytes.
func Decode(buffer []byte) (Uvar, []byte, error) {
	limit := len(buffer)
	if limit > MaxBytes {
		limit = MaxBytes
	}

	for i := 0; i < limit; i++ {
		if buffer[i]&0x80 == 0 {
			code := make([]byte, i+1)
			copy(code, buffer[:i+1])
			return Uvar(code), buffer[i+1:], nil
		}
	}

	if len(buffer) >= MaxBytes {
		return nil, nil, ErrOverflow
	}

	return nil, nil, ErrUnderflow
}

// FromBytes returns the uvar at the front of buffer, failing with
// ErrOverflow when buffer is longer than MaxBytes and otherwise as Decode
// does. Bytes after the first uvar and non-minimal encodings are not
// rejected.
func FromBytes(buffer []byte) (Uvar, error) {
	if len(buffer) > MaxBytes {
		return nil, ErrOverflow
	}

	u, _, err := Decode(buffer)
	return u, err
}

// Bytes returns the raw byte sequence of u.
func (u Uvar) Bytes() []byte {
	return []byte(u)
}

// Uint64 decodes u into its integer value.
func (u Uvar) Uint64() uint64 {
	var n uint64
	var shift uint

	for _, b := range u {
		n |= uint64(b&0x7F) << shift
		shift += 7
	}

	return n
}

// Equal reports whether u and v have the same byte representation.
func (u Uvar) Equal(v Uvar) bool {
	if len(u) != len(v) {
		return false
	}
	for i := range u {
		if u[i] != v[i] {
			return false
		}
	}
	return true
}
