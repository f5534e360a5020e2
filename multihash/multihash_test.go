package multihash

import (
	"testing"

	"github.com/arnau/blot/uvar"
)

func TestDescriptors(t *testing.T) {
	for _, tc := range []struct {
		alg    Algorithm
		name   string
		code   byte // first code byte, enough to disambiguate single-byte codes
		length int
	}{
		{Sha1, "sha1", 0x11, 20},
		{Sha2256, "sha2-256", 0x12, 32},
		{Sha2512, "sha2-512", 0x13, 64},
		{Sha3512, "sha3-512", 0x14, 64},
		{Sha3384, "sha3-384", 0x15, 48},
		{Sha3256, "sha3-256", 0x16, 32},
		{Sha3224, "sha3-224", 0x17, 28},
	} {
		if got := tc.alg.Name(); got != tc.name {
			t.Errorf("%v.Name() = %q, want %q", tc.alg, got, tc.name)
		}
		if got := tc.alg.Code().Bytes(); len(got) != 1 || got[0] != tc.code {
			t.Errorf("%v.Code() = % x, want [%#x]", tc.alg, got, tc.code)
		}
		if got := tc.alg.Length(); got != tc.length {
			t.Errorf("%v.Length() = %d, want %d", tc.alg, got, tc.length)
		}
	}
}

func TestBlakeCodes(t *testing.T) {
	if got := Blake2b512.Code().Uint64(); got != 0xb240 {
		t.Errorf("Blake2b512.Code() = %#x, want 0xb240", got)
	}
	if got := Blake2s256.Code().Uint64(); got != 0xb260 {
		t.Errorf("Blake2s256.Code() = %#x, want 0xb260", got)
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for _, alg := range []Algorithm{Sha1, Sha2256, Sha2512, Sha3512, Sha3384, Sha3256, Sha3224, Blake2b512, Blake2s256} {
		got, ok := Lookup(alg.Name())
		if !ok || got != alg {
			t.Errorf("Lookup(%q) = %v, %v", alg.Name(), got, ok)
		}
		got, ok = LookupCode(alg.Code())
		if !ok || got != alg {
			t.Errorf("LookupCode(%v) = %v, %v", alg.Code(), got, ok)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("sha4-1024"); ok {
		t.Error("Lookup(\"sha4-1024\") succeeded, want false")
	}
}

func TestLookupCodeRejectsNonCanonical(t *testing.T) {
	// A continuation byte with no terminator is not a valid uvar at all,
	// canonical or otherwise.
	if _, ok := LookupCode(uvar.Uvar{0x91, 0x80}); ok {
		t.Error("LookupCode with an unterminated uvar succeeded, want false")
	}
}

func TestHashStringFormat(t *testing.T) {
	d := Sha2256.NewDigester()
	d.Absorb([]byte{0x75})
	h := Hash{Algorithm: Sha2256, Digest: d.Sum()}
	// uvar(0x12) (1 byte) + length byte + 32-byte digest, hex-encoded.
	want := 2 + 2 + 2*32
	if got := len(h.String()); got != want {
		t.Errorf("len(String()) = %d, want %d", got, want)
	}
	if got := h.String()[:4]; got != "1220" {
		t.Errorf("String() prefix = %q, want %q", got, "1220")
	}
}
