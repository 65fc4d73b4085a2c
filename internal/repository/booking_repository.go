package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/barbershop-booking/internal/model"
)

type BookingRepository interface {
	// Создать новое бронирование.
	Create(ctx context.Context, booking *model.Booking) error
	// Получить бронирование по ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// Обновить интервал бронирования.
	UpdateInterval(ctx context.Context, id uuid.UUID, startsAt, endsAt time.Time) error
	// Мягко деактивировать бронирование (отмена).
	Deactivate(ctx context.Context, id uuid.UUID) error
	// Активные бронирования барбера, пересекающие календарный день.
	ListByBarberAndDay(ctx context.Context, barberID uuid.UUID, dayStart, dayEnd time.Time) ([]model.Booking, error)
	// Список бронирований резидента с пагинацией, свежие сверху.
	ListByResident(ctx context.Context, residentID uuid.UUID, limit, offset int) ([]model.Booking, int64, error)
}

// Реализация на GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) UpdateInterval(ctx context.Context, id uuid.UUID, startsAt, endsAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"starts_at": startsAt,
			"ends_at":   endsAt,
		}).
		Error
}

func (r *GormBookingRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Update("is_active", false).
		Error
}

// ListByBarberAndDay отбирает активные бронирования, чей полуоткрытый
// интервал [starts_at, ends_at) пересекает [dayStart, dayEnd).
func (r *GormBookingRepository) ListByBarberAndDay(
	ctx context.Context,
	barberID uuid.UUID,
	dayStart, dayEnd time.Time,
) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Where("is_active = ?", true).
		Where("starts_at < ? AND ends_at > ?", dayEnd, dayStart).
		Order("starts_at ASC, ends_at ASC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByResident(
	ctx context.Context,
	residentID uuid.UUID,
	limit, offset int,
) ([]model.Booking, int64, error) {
	var (
		bookings []model.Booking
		total    int64
	)

	q := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("resident_id = ?", residentID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("starts_at DESC").Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}
