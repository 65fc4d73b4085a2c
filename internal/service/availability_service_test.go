package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Leganyst/barbershop-booking/internal/repository"
	"github.com/Leganyst/barbershop-booking/internal/schedule"
)

func TestAvailabilityService_DayAvailability(t *testing.T) {
	db := newTestDB(t)
	barberID := seedBarber(t, db)
	residentID := seedResident(t, db)
	now, clock := testClock(t)
	bookingSvc := newBookingService(db, clock)
	ctx := context.Background()

	// Кэш выключен (nil): каждый вызов считает окна заново.
	availability := &AvailabilityService{
		users:    repository.NewGormUserRepository(db),
		hours:    repository.NewGormWorkingHoursRepository(db),
		bookings: repository.NewGormBookingRepository(db),
		logger:   zap.NewNop(),
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Пустой день: два окна вокруг перерыва 13:00-14:00.
	free, err := availability.DayAvailability(ctx, barberID, day)
	if err != nil {
		t.Fatalf("DayAvailability: %v", err)
	}
	want := []schedule.Interval{
		{Start: day.Add(9 * time.Hour), End: day.Add(13 * time.Hour)},
		{Start: day.Add(14 * time.Hour), End: day.Add(17 * time.Hour)},
	}
	assertSameWindows(t, free, want)

	// Бронирование 10:00-11:00 раскалывает утреннее окно.
	start, end := slot(now, 10, 0, 11, 0)
	booking, err := bookingSvc.CreateBooking(ctx, residentID, CreateBookingInput{BarberID: barberID, Start: start, End: end})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	free, err = availability.DayAvailability(ctx, barberID, day)
	if err != nil {
		t.Fatalf("DayAvailability after booking: %v", err)
	}
	want = []schedule.Interval{
		{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
		{Start: day.Add(11 * time.Hour), End: day.Add(13 * time.Hour)},
		{Start: day.Add(14 * time.Hour), End: day.Add(17 * time.Hour)},
	}
	assertSameWindows(t, free, want)

	// Отмена возвращает исходные окна.
	if err := bookingSvc.CancelBooking(ctx, residentID, booking.ID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	free, err = availability.DayAvailability(ctx, barberID, day)
	if err != nil {
		t.Fatalf("DayAvailability after cancel: %v", err)
	}
	want = []schedule.Interval{
		{Start: day.Add(9 * time.Hour), End: day.Add(13 * time.Hour)},
		{Start: day.Add(14 * time.Hour), End: day.Add(17 * time.Hour)},
	}
	assertSameWindows(t, free, want)
}

func TestAvailabilityService_UnknownBarber(t *testing.T) {
	db := newTestDB(t)

	availability := &AvailabilityService{
		users:    repository.NewGormUserRepository(db),
		hours:    repository.NewGormWorkingHoursRepository(db),
		bookings: repository.NewGormBookingRepository(db),
		logger:   zap.NewNop(),
	}

	_, err := availability.DayAvailability(context.Background(), uuid.New(), time.Now().UTC())
	if err != ErrBarberNotFound {
		t.Fatalf("error = %v, want ErrBarberNotFound", err)
	}
}

func assertSameWindows(t *testing.T, got, want []schedule.Interval) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("windows = %d, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Fatalf("window %d = [%v, %v), want [%v, %v)",
				i, got[i].Start, got[i].End, want[i].Start, want[i].End)
		}
	}
}
