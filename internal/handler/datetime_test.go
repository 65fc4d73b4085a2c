package handler

import (
	"testing"
	"time"
)

func TestParseWireDate(t *testing.T) {
	got, err := parseWireDate("10-03-2025")
	if err != nil {
		t.Fatalf("parseWireDate: %v", err)
	}
	want := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parseWireDate = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "2025-03-10", "31-02-2025", "10/03/2025"} {
		if _, err := parseWireDate(bad); err == nil {
			t.Errorf("parseWireDate(%q): expected error", bad)
		}
	}
}

func TestParseWireDateTime(t *testing.T) {
	want := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

	got, err := parseWireDateTime("10-03-2025 14:30:00")
	if err != nil {
		t.Fatalf("wire layout: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("wire layout = %v, want %v", got, want)
	}

	// RFC 3339 принимается и нормализуется в UTC.
	got, err = parseWireDateTime("2025-03-10T17:30:00+03:00")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("rfc3339 = %v (%v), want %v UTC", got, got.Location(), want)
	}

	if _, err := parseWireDateTime("not a date"); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestFormatWireDateTime_RoundTrip(t *testing.T) {
	in := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	s := formatWireDateTime(in)
	if s != "10-03-2025 09:00:00" {
		t.Fatalf("formatWireDateTime = %q", s)
	}
	back, err := parseWireDateTime(s)
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	if !back.Equal(in) {
		t.Fatalf("round trip = %v, want %v", back, in)
	}
}
