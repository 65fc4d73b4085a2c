package schedule

import (
	"testing"
	"time"
)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func mustDayHours(t *testing.T, open, close, breakStart, breakEnd string) DayHours {
	t.Helper()
	h, err := NewDayHours(day(t), open, close, breakStart, breakEnd)
	if err != nil {
		t.Fatalf("NewDayHours: %v", err)
	}
	return h
}

func iv(t *testing.T, startHour, startMin, endHour, endMin int) Interval {
	t.Helper()
	return Interval{Start: at(t, startHour, startMin), End: at(t, endHour, endMin)}
}

func assertWindows(t *testing.T, got, want []Interval) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d windows, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Fatalf("window %d = %v–%v, want %v–%v",
				i, got[i].Start, got[i].End, want[i].Start, want[i].End)
		}
	}
}

// Инварианты результата: окна упорядочены, не пересекаются,
// длительность положительная.
func assertWellFormed(t *testing.T, windows []Interval) {
	t.Helper()
	for i, w := range windows {
		if !w.End.After(w.Start) {
			t.Fatalf("window %d has non-positive duration: %v", i, w)
		}
		if i > 0 {
			if w.Start.Before(windows[i-1].End) {
				t.Fatalf("windows %d and %d overlap or are unordered", i-1, i)
			}
		}
	}
}

func TestComputeAvailability_NoBookings(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "", "")

	got := ComputeAvailability(hours, nil)

	assertWindows(t, got, []Interval{iv(t, 9, 0, 17, 0)})
	assertWellFormed(t, got)
}

func TestComputeAvailability_SingleBooking(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "", "")
	bookings := []Interval{iv(t, 10, 0, 11, 0)}

	got := ComputeAvailability(hours, bookings)

	assertWindows(t, got, []Interval{
		iv(t, 9, 0, 10, 0),
		iv(t, 11, 0, 17, 0),
	})
}

func TestComputeAvailability_AdjacentBookingsMerge(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "", "")
	bookings := []Interval{
		iv(t, 10, 0, 11, 0),
		iv(t, 11, 0, 12, 0),
	}

	got := ComputeAvailability(hours, bookings)

	// Между смежными бронированиями окно нулевой ширины не выдаётся.
	assertWindows(t, got, []Interval{
		iv(t, 9, 0, 10, 0),
		iv(t, 12, 0, 17, 0),
	})
}

func TestComputeAvailability_OverlappingBookingsMerge(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "", "")
	bookings := []Interval{
		iv(t, 10, 0, 12, 0),
		iv(t, 11, 0, 11, 30), // целиком внутри предыдущего
		iv(t, 11, 30, 13, 0),
	}

	got := ComputeAvailability(hours, bookings)

	assertWindows(t, got, []Interval{
		iv(t, 9, 0, 10, 0),
		iv(t, 13, 0, 17, 0),
	})
	assertWellFormed(t, got)
}

func TestComputeAvailability_FullDayCovered(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "", "")
	bookings := []Interval{
		iv(t, 9, 0, 13, 0),
		iv(t, 13, 0, 17, 0),
	}

	got := ComputeAvailability(hours, bookings)

	if len(got) != 0 {
		t.Fatalf("expected no free windows, got %v", got)
	}
}

func TestComputeAvailability_UnsortedInput(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "", "")
	bookings := []Interval{
		iv(t, 14, 0, 15, 0),
		iv(t, 10, 0, 11, 0),
	}

	got := ComputeAvailability(hours, bookings)

	assertWindows(t, got, []Interval{
		iv(t, 9, 0, 10, 0),
		iv(t, 11, 0, 14, 0),
		iv(t, 15, 0, 17, 0),
	})
}

func TestComputeAvailability_BreakExcluded(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "13:00", "14:00")
	bookings := []Interval{iv(t, 10, 0, 11, 0)}

	got := ComputeAvailability(hours, bookings)

	assertWindows(t, got, []Interval{
		iv(t, 9, 0, 10, 0),
		iv(t, 11, 0, 13, 0),
		iv(t, 14, 0, 17, 0),
	})
}

func TestComputeAvailability_BookingOverlapsBreak(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "13:00", "14:00")
	// Бронирование встык с перерывом: занятое схлопывается в один блок.
	bookings := []Interval{iv(t, 12, 0, 13, 0)}

	got := ComputeAvailability(hours, bookings)

	assertWindows(t, got, []Interval{
		iv(t, 9, 0, 12, 0),
		iv(t, 14, 0, 17, 0),
	})
}

func TestComputeAvailability_ClipsToWorkingDay(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "", "")
	bookings := []Interval{
		// Начинается накануне — считается занятым от открытия.
		{Start: at(t, 10, 0).AddDate(0, 0, -1), End: at(t, 10, 0)},
		// Заканчивается на следующий день — занято до закрытия.
		{Start: at(t, 16, 0), End: at(t, 10, 0).AddDate(0, 0, 1)},
		// Целиком вне рабочего дня — игнорируется.
		iv(t, 7, 0, 8, 0),
	}

	got := ComputeAvailability(hours, bookings)

	assertWindows(t, got, []Interval{iv(t, 10, 0, 16, 0)})
}

func TestComputeAvailability_Idempotent(t *testing.T) {
	hours := mustDayHours(t, "09:00", "17:00", "12:00", "12:30")
	bookings := []Interval{
		iv(t, 10, 0, 11, 0),
		iv(t, 14, 0, 15, 30),
	}

	first := ComputeAvailability(hours, bookings)
	second := ComputeAvailability(hours, bookings)

	assertWindows(t, second, first)
}
