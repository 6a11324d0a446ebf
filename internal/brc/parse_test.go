package brc

import (
	"errors"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		key    string
		tenths int32
	}{
		{"Hamburg;12.3", "Hamburg", 123},
		{"Oslo;-4.0", "Oslo", -40},
		{"Abha;0.0", "Abha", 0},
		{"Abha;-0.1", "Abha", -1},
		{"Abha;99.9", "Abha", 999},
		{"Abha;7", "Abha", 70},
		{"Abha;-12", "Abha", -120},
		{"St. John's;1234.5", "St. John's", 12345},
		{"Zürich;5.5", "Zürich", 55},
	}
	for _, tt := range tests {
		key, v, err := ParseLine([]byte(tt.line))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.line, err)
		}
		if string(key) != tt.key || v != tt.tenths {
			t.Errorf("%q: got (%q, %d), want (%q, %d)", tt.line, key, v, tt.key, tt.tenths)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrMissingDelimiter},
		{"Hamburg", ErrMissingDelimiter},
		{"Hamburg 12.0", ErrMissingDelimiter},
		{";12.0", ErrEmptyKey},
		{"Paris;abc", ErrMalformedNumber},
		{"Paris;", ErrMalformedNumber},
		{"Paris;-", ErrMalformedNumber},
		{"Paris;1.", ErrMalformedNumber},
		{"Paris;.5", ErrMalformedNumber},
		{"Paris;-.5", ErrMalformedNumber},
		{"Paris;1.23", ErrMalformedNumber},
		{"Paris;+1.2", ErrMalformedNumber},
		{"Paris;1.2 ", ErrMalformedNumber},
		{"Paris;1;2", ErrMalformedNumber},
		{"Paris;12.3\r", ErrMalformedNumber},
		{"Paris;99999999999", ErrMalformedNumber},
		{"Paris;214748364.8", ErrMalformedNumber},
	}
	for _, tt := range tests {
		_, _, err := ParseLine([]byte(tt.line))
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestParseTenthsLimits(t *testing.T) {
	v, err := ParseTenths([]byte("214748364.7"))
	if err != nil || v != 2147483647 {
		t.Errorf("got (%d, %v), want max int32", v, err)
	}
	v, err = ParseTenths([]byte("-214748364.7"))
	if err != nil || v != -2147483647 {
		t.Errorf("got (%d, %v), want -max int32", v, err)
	}
}

func TestParseErrorWrapsReason(t *testing.T) {
	var err error = &ParseError{Offset: 42, Line: []byte("Paris;abc"), Reason: ErrMalformedNumber}
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("expected ErrMalformedNumber in chain")
	}
	want := `failed to parse record at offset 42 "Paris;abc": malformed temperature`
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
