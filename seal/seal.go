// Package seal implements redacted-subtree digests: a stand-in value that
// carries a previously-computed Hash in place of a subtree whose contents
// must not be disclosed, while still letting the enclosing structure be
// hashed consistently.
package seal

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/arnau/blot/multihash"
	"github.com/arnau/blot/uvar"
)

// Mark is the sentinel byte that opens a seal's binary form, chosen so a
// seal can never be confused with a plain multihash code in this registry.
const Mark = 0x77

// prefix is the textual marker spec.md's worked examples use in place of
// the raw 0x77 byte.
const prefix = "**REDACTED**"

// Seal is a redacted stand-in for a digest: the algorithm and digest bytes
// of whatever was hashed before redaction, carried verbatim.
type Seal struct {
	Algorithm multihash.Algorithm
	Digest    []byte
}

var (
	// ErrNotRedacted is returned when the (hex-decoded) input does not
	// start with the 0x77 mark. ParseString reports input that has no
	// "**REDACTED**" marker and is not valid hex as a HexError instead.
	ErrNotRedacted = errors.New("seal: not a redacted value")
	// ErrDigestTooShort is returned when a seal's body ends before its
	// length byte, or before as many digest bytes as that byte declares.
	ErrDigestTooShort = errors.New("seal: digest shorter than algorithm length")
)

// UnexpectedLengthError reports a seal whose digest length does not match
// what its declared algorithm requires.
type UnexpectedLengthError struct {
	Algorithm multihash.Algorithm
	Got       int
}

func (e *UnexpectedLengthError) Error() string {
	return fmt.Sprintf("seal: %s digest has length %d, want %d", e.Algorithm, e.Got, e.Algorithm.Length())
}

// InvalidStampError reports a multihash code that does not name any
// algorithm in the registry.
type InvalidStampError struct {
	Code uvar.Uvar
}

func (e *InvalidStampError) Error() string {
	return fmt.Sprintf("seal: unknown algorithm code %x", e.Code.Bytes())
}

// UvarError wraps a failure to decode the uvar-encoded algorithm code at
// the head of a binary seal.
type UvarError struct {
	Err error
}

func (e *UvarError) Error() string { return fmt.Sprintf("seal: %v", e.Err) }
func (e *UvarError) Unwrap() error { return e.Err }

// HexError wraps a failure to decode the hex digest of a textual seal.
type HexError struct {
	Err error
}

func (e *HexError) Error() string { return fmt.Sprintf("seal: %v", e.Err) }
func (e *HexError) Unwrap() error { return e.Err }

// ParseString parses a textual seal of either the legacy form
// "**REDACTED**<hex>" or the new form "77<hex>", where <hex> in both cases
// is the lowercase hex of (uvar-code || length-byte || digest).
func ParseString(s string) (Seal, error) {
	if strings.HasPrefix(s, prefix) {
		raw, err := hex.DecodeString(strings.TrimPrefix(s, prefix))
		if err != nil {
			return Seal{}, &HexError{Err: err}
		}
		return parseBody(raw)
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return Seal{}, &HexError{Err: err}
	}
	return ParseBytes(raw)
}

// ParseBytes parses a binary seal: Mark || uvar(code) || length || digest.
func ParseBytes(buffer []byte) (Seal, error) {
	if len(buffer) == 0 || buffer[0] != Mark {
		return Seal{}, ErrNotRedacted
	}
	return parseBody(buffer[1:])
}

// parseBody parses the shared (uvar-code || length-byte || digest) body
// that follows either the "**REDACTED**" textual marker or the 0x77
// binary/textual mark.
func parseBody(body []byte) (Seal, error) {
	code, rest, err := uvar.Decode(body)
	if err != nil {
		return Seal{}, &UvarError{Err: err}
	}

	alg, ok := multihash.LookupCode(code)
	if !ok {
		return Seal{}, &InvalidStampError{Code: code}
	}

	if len(rest) == 0 {
		return Seal{}, ErrDigestTooShort
	}
	length := int(rest[0])
	digest := rest[1:]

	if len(digest) < length {
		return Seal{}, ErrDigestTooShort
	}
	if length != alg.Length() {
		return Seal{}, &UnexpectedLengthError{Algorithm: alg, Got: length}
	}

	return Seal{Algorithm: alg, Digest: digest[:length]}, nil
}

// Bytes returns the binary form: Mark || uvar(code) || length || digest.
func (s Seal) Bytes() []byte {
	out := make([]byte, 0, 1+len(s.Algorithm.Code())+1+len(s.Digest))
	out = append(out, Mark)
	out = append(out, s.Algorithm.Code()...)
	out = append(out, byte(s.Algorithm.Length()))
	out = append(out, s.Digest...)
	return out
}

// String returns the lowercase-hex wire form of Bytes.
func (s Seal) String() string {
	return hex.EncodeToString(s.Bytes())
}
