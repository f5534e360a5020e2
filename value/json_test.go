package value

import (
	"testing"

	"github.com/go-test/deep"
)

func TestParsePrimitives(t *testing.T) {
	for _, tc := range []struct {
		json string
		want Value
	}{
		{`null`, Null{}},
		{`true`, Bool(true)},
		{`false`, Bool(false)},
		{`42`, Integer(42)},
		{`-7`, Integer(-7)},
		{`23.6`, Float(23.6)},
	} {
		got, err := Parse([]byte(tc.json), SeqAsList)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.json, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %#v, want %#v", tc.json, got, tc.want)
		}
	}
}

func TestParseStringClassification(t *testing.T) {
	got, err := Parse([]byte(`"foo"`), SeqAsList)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != Unicode("foo") {
		t.Errorf("Parse(%q) = %#v, want Unicode(\"foo\")", "foo", got)
	}
}

func TestParseHexAsRaw(t *testing.T) {
	got, err := Parse([]byte(`"deadbeef"`), SeqAsList)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	raw, ok := got.(Raw)
	if !ok {
		t.Fatalf("Parse(%q) = %#v (%T), want Raw", "deadbeef", got, got)
	}
	if string(raw) != "\xde\xad\xbe\xef" {
		t.Errorf("Raw = % x", raw)
	}
}

func TestParseClassicRedacted(t *testing.T) {
	got, err := Parse([]byte(`"**REDACTED**1220a6a6e5e783c363cd95693ec189c2682315d956869397738679b56305f2095038"`), SeqAsList)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r, ok := got.(Redacted)
	if !ok {
		t.Fatalf("Parse(...) = %#v (%T), want Redacted", got, got)
	}
	if r.Seal.Algorithm.Name() != "sha2-256" || len(r.Seal.Digest) != 32 {
		t.Errorf("Redacted.Seal = %+v, want sha2-256 digest of length 32", r.Seal)
	}
}

func TestParseModernRedacted(t *testing.T) {
	got, err := Parse([]byte(`"771220a6a6e5e783c363cd95693ec189c2682315d956869397738679b56305f2095038"`), SeqAsList)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r, ok := got.(Redacted)
	if !ok {
		t.Fatalf("Parse(...) = %#v (%T), want Redacted", got, got)
	}
	if r.Seal.Algorithm.Name() != "sha2-256" || len(r.Seal.Digest) != 32 {
		t.Errorf("Redacted.Seal = %+v, want sha2-256 digest of length 32", r.Seal)
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := Parse([]byte(`"2021-05-13T12:00:00Z"`), SeqAsList)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := got.(Timestamp); !ok {
		t.Fatalf("Parse(...) = %#v (%T), want Timestamp", got, got)
	}
}

func TestParseListAndSet(t *testing.T) {
	list, err := Parse([]byte(`["foo","bar"]`), SeqAsList)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	l, ok := list.(List)
	if !ok || len(l) != 2 {
		t.Fatalf("Parse = %#v, want List of 2", list)
	}

	set, err := Parse([]byte(`["foo","bar"]`), SeqAsSet)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := set.(Set); !ok {
		t.Fatalf("Parse = %#v (%T), want Set", set, set)
	}
}

func TestParseDict(t *testing.T) {
	got, err := Parse([]byte(`{"foo":"bar"}`), SeqAsList)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d, ok := got.(Dict)
	if !ok {
		t.Fatalf("Parse = %#v (%T), want Dict", got, got)
	}
	if d["foo"] != Unicode("bar") {
		t.Errorf("Dict[\"foo\"] = %#v, want Unicode(\"bar\")", d["foo"])
	}
}

func TestParseNestedSchema(t *testing.T) {
	got, err := Parse([]byte(`[["foo",23.6],[["foo"]],[[1]]]`), SeqAsSet)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	set, ok := got.(Set)
	if !ok || len(set) != 3 {
		t.Fatalf("Parse = %#v, want Set of 3", got)
	}
	for _, item := range set {
		if _, ok := item.(Set); !ok {
			t.Errorf("item = %#v (%T), want nested Set", item, item)
		}
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{not json`), SeqAsList); err == nil {
		t.Error("Parse succeeded on invalid JSON, want error")
	}
}

func TestParseListDeepEqual(t *testing.T) {
	got, err := Parse([]byte(`["foo","bar"]`), SeqAsList)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := NewList(Unicode("foo"), Unicode("bar"))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("Parse result differs from expected tree: %v", diff)
	}
}
