package schedule

import (
	"testing"
	"time"
)

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.UTC)
}

func TestNewInterval(t *testing.T) {
	if _, err := NewInterval(at(t, 10, 0), at(t, 11, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewInterval(at(t, 11, 0), at(t, 10, 0)); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval for inverted range, got %v", err)
	}
	if _, err := NewInterval(at(t, 10, 0), at(t, 10, 0)); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval for empty range, got %v", err)
	}
	if _, err := NewInterval(time.Time{}, at(t, 10, 0)); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval for zero start, got %v", err)
	}
}

func TestInterval_Overlaps_HalfOpen(t *testing.T) {
	base := Interval{Start: at(t, 10, 0), End: at(t, 11, 0)}

	cases := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{at(t, 10, 0), at(t, 11, 0)}, true},
		{"contained", Interval{at(t, 10, 15), at(t, 10, 45)}, true},
		{"overlaps left edge", Interval{at(t, 9, 30), at(t, 10, 30)}, true},
		{"overlaps right edge", Interval{at(t, 10, 30), at(t, 11, 30)}, true},
		{"covers", Interval{at(t, 9, 0), at(t, 12, 0)}, true},
		// касание концами — не пересечение
		{"adjacent before", Interval{at(t, 9, 0), at(t, 10, 0)}, false},
		{"adjacent after", Interval{at(t, 11, 0), at(t, 12, 0)}, false},
		{"fully before", Interval{at(t, 8, 0), at(t, 9, 0)}, false},
		{"fully after", Interval{at(t, 12, 0), at(t, 13, 0)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Fatalf("Overlaps(%v) = %v, want %v", tc.other, got, tc.want)
			}
			// Пересечение симметрично.
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Fatalf("reverse Overlaps(%v) = %v, want %v", base, got, tc.want)
			}
		})
	}
}

func TestInterval_Clip(t *testing.T) {
	bounds := Interval{Start: at(t, 9, 0), End: at(t, 17, 0)}

	clipped, ok := Interval{at(t, 8, 0), at(t, 10, 0)}.Clip(bounds)
	if !ok || !clipped.Start.Equal(at(t, 9, 0)) || !clipped.End.Equal(at(t, 10, 0)) {
		t.Fatalf("clip left: got %v ok=%v", clipped, ok)
	}

	clipped, ok = Interval{at(t, 16, 0), at(t, 18, 0)}.Clip(bounds)
	if !ok || !clipped.Start.Equal(at(t, 16, 0)) || !clipped.End.Equal(at(t, 17, 0)) {
		t.Fatalf("clip right: got %v ok=%v", clipped, ok)
	}

	if _, ok := (Interval{at(t, 7, 0), at(t, 8, 0)}).Clip(bounds); ok {
		t.Fatalf("expected interval fully outside bounds to clip to nothing")
	}
	if _, ok := (Interval{at(t, 17, 0), at(t, 18, 0)}).Clip(bounds); ok {
		t.Fatalf("expected interval starting at close to clip to nothing")
	}
}
