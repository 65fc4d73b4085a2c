package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/barbershop-booking/internal/model"
	"github.com/Leganyst/barbershop-booking/internal/repository"
	"github.com/Leganyst/barbershop-booking/internal/schedule"
)

// BookingService реализует создание, изменение и отмену бронирований.
//
// Пара конфликтующих интервалов не должна закоммититься даже при
// конкурентных запросах: чтение-валидация-запись выполняется в транзакции
// под блокировкой строки барбера (SELECT ... FOR UPDATE), что даёт
// сериализуемость на ресурс.
type BookingService struct {
	db       *gorm.DB
	bookings repository.BookingRepository

	// Инвалидация кэша доступности; может быть nil.
	availability *AvailabilityService

	logger *zap.Logger

	// Источник текущего времени, подменяется в тестах.
	now func() time.Time
}

func NewBookingService(
	db *gorm.DB,
	bookings repository.BookingRepository,
	availability *AvailabilityService,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		db:           db,
		bookings:     bookings,
		availability: availability,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

type CreateBookingInput struct {
	BarberID uuid.UUID
	Start    time.Time
	End      time.Time
}

// CreateBooking валидирует и сохраняет новое бронирование резидента.
func (s *BookingService) CreateBooking(
	ctx context.Context,
	residentID uuid.UUID,
	in CreateBookingInput,
) (*model.Booking, error) {
	now := s.now()
	var booking *model.Booking

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		barber, hours, err := lockBarberDay(tx, in.BarberID, in.Start)
		if err != nil {
			return err
		}

		existing, err := dayIntervals(tx, barber.ID, in.Start, uuid.Nil)
		if err != nil {
			return err
		}

		if err := schedule.ValidateBooking(in.Start, in.End, hours, existing, now); err != nil {
			return err
		}

		booking = &model.Booking{
			ID:         uuid.New(),
			BarberID:   barber.ID,
			ResidentID: residentID,
			StartsAt:   in.Start,
			EndsAt:     in.End,
			IsActive:   true,
		}
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		return recordBookingEvent(tx, model.EventTypeBookingCreated, booking, residentID)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, booking.BarberID, booking.StartsAt)
	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("barber_id", booking.BarberID.String()),
		zap.Time("starts_at", booking.StartsAt))

	return booking, nil
}

type UpdateBookingInput struct {
	Start time.Time
	End   time.Time
}

// UpdateBooking переносит бронирование на новый интервал.
// Разрешено только владельцу и только вне окна блокировки перед началом.
func (s *BookingService) UpdateBooking(
	ctx context.Context,
	residentID, bookingID uuid.UUID,
	in UpdateBookingInput,
) (*model.Booking, error) {
	now := s.now()
	var (
		booking *model.Booking
		oldDay  time.Time
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := loadOwnBooking(tx, bookingID, residentID)
		if err != nil {
			return err
		}
		oldDay = b.StartsAt

		if err := schedule.CheckModifiable(b.StartsAt, now); err != nil {
			return err
		}

		_, hours, err := lockBarberDay(tx, b.BarberID, in.Start)
		if err != nil {
			return err
		}

		// Существующие интервалы без самого переносимого бронирования.
		existing, err := dayIntervals(tx, b.BarberID, in.Start, b.ID)
		if err != nil {
			return err
		}

		if err := schedule.ValidateBooking(in.Start, in.End, hours, existing, now); err != nil {
			return err
		}

		b.StartsAt = in.Start
		b.EndsAt = in.End
		if err := tx.Model(&model.Booking{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{"starts_at": in.Start, "ends_at": in.End}).
			Error; err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		booking = b
		return recordBookingEvent(tx, model.EventTypeBookingUpdated, b, residentID)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, booking.BarberID, oldDay)
	s.invalidate(ctx, booking.BarberID, booking.StartsAt)

	return booking, nil
}

// CancelBooking мягко деактивирует бронирование владельца.
func (s *BookingService) CancelBooking(ctx context.Context, residentID, bookingID uuid.UUID) error {
	now := s.now()
	var (
		barberID uuid.UUID
		day      time.Time
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := loadOwnBooking(tx, bookingID, residentID)
		if err != nil {
			return err
		}

		if err := schedule.CheckModifiable(b.StartsAt, now); err != nil {
			return err
		}

		if err := tx.Model(&model.Booking{}).
			Where("id = ?", b.ID).
			Update("is_active", false).
			Error; err != nil {
			return fmt.Errorf("deactivate booking: %w", err)
		}

		barberID = b.BarberID
		day = b.StartsAt
		return recordBookingEvent(tx, model.EventTypeBookingCancelled, b, residentID)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, barberID, day)
	s.logger.Info("booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("resident_id", residentID.String()))

	return nil
}

// GetBooking возвращает активное бронирование владельца.
// Отменённые бронирования наружу не отдаются.
func (s *BookingService) GetBooking(ctx context.Context, residentID, bookingID uuid.UUID) (*model.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !b.IsActive {
		return nil, ErrBookingNotFound
	}
	if b.ResidentID != residentID {
		return nil, ErrNotOwner
	}
	return b, nil
}

// ListResidentBookings — страница бронирований резидента, свежие сверху.
func (s *BookingService) ListResidentBookings(
	ctx context.Context,
	residentID uuid.UUID,
	page, pageSize int,
) (schedule.Page[model.Booking], error) {
	page, pageSize, offset := schedule.NormalizePage(page, pageSize)

	items, total, err := s.bookings.ListByResident(ctx, residentID, pageSize, offset)
	if err != nil {
		return schedule.Page[model.Booking]{}, err
	}
	return schedule.NewPage(items, page, pageSize, total), nil
}

func (s *BookingService) invalidate(ctx context.Context, barberID uuid.UUID, day time.Time) {
	if s.availability != nil {
		s.availability.InvalidateDay(ctx, barberID, day)
	}
}

// lockBarberDay берёт блокировку строки барбера и материализует его
// рабочие часы на день момента at.
func lockBarberDay(tx *gorm.DB, barberID uuid.UUID, at time.Time) (*model.User, schedule.DayHours, error) {
	var barber model.User
	err := lockForUpdate(tx).
		Where("id = ? AND role = ?", barberID, model.UserRoleBarber).
		First(&barber).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.DayHours{}, ErrBarberNotFound
		}
		return nil, schedule.DayHours{}, fmt.Errorf("lock barber: %w", err)
	}

	var wh model.WorkingHours
	if err := tx.First(&wh, "barber_id = ?", barberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.DayHours{}, ErrWorkingHoursNotSet
		}
		return nil, schedule.DayHours{}, fmt.Errorf("load working hours: %w", err)
	}

	hours, err := schedule.NewDayHours(at, wh.OpensAt, wh.ClosesAt, wh.BreakStart, wh.BreakEnd)
	if err != nil {
		return nil, schedule.DayHours{}, fmt.Errorf("working hours of barber %s: %w", barberID, err)
	}

	return &barber, hours, nil
}

// dayIntervals — интервалы активных бронирований барбера, пересекающие
// календарный день момента at. exclude исключает одно бронирование
// (при переносе — его самого).
func dayIntervals(tx *gorm.DB, barberID uuid.UUID, at time.Time, exclude uuid.UUID) ([]schedule.Interval, error) {
	window := schedule.DayWindow(at)

	q := tx.Model(&model.Booking{}).
		Where("barber_id = ?", barberID).
		Where("is_active = ?", true).
		Where("starts_at < ? AND ends_at > ?", window.End, window.Start)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}

	var rows []model.Booking
	if err := q.Order("starts_at ASC, ends_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	intervals := make([]schedule.Interval, 0, len(rows))
	for _, b := range rows {
		intervals = append(intervals, schedule.Interval{Start: b.StartsAt, End: b.EndsAt})
	}
	return intervals, nil
}

func loadOwnBooking(tx *gorm.DB, bookingID, residentID uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	err := lockForUpdate(tx).First(&b, "id = ? AND is_active = ?", bookingID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if b.ResidentID != residentID {
		return nil, ErrNotOwner
	}
	return &b, nil
}

// lockForUpdate добавляет SELECT ... FOR UPDATE там, где диалект его
// поддерживает. SQLite (тесты) сериализует записи сам.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func recordBookingEvent(tx *gorm.DB, eventType model.EventType, b *model.Booking, actorID uuid.UUID) error {
	details, err := json.Marshal(map[string]any{
		"barber_id": b.BarberID,
		"starts_at": b.StartsAt,
		"ends_at":   b.EndsAt,
	})
	if err != nil {
		return fmt.Errorf("marshal event details: %w", err)
	}

	event := &model.Event{
		ID:        uuid.New(),
		EventType: eventType,
		UserID:    &actorID,
		BookingID: &b.ID,
		Details:   datatypes.JSON(details),
	}
	if err := tx.Create(event).Error; err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}
