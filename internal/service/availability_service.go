package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Leganyst/barbershop-booking/internal/model"
	"github.com/Leganyst/barbershop-booking/internal/repository"
	"github.com/Leganyst/barbershop-booking/internal/schedule"
)

// AvailabilityService отвечает на вопрос "что свободно у барбера B в день D".
// Результат кэшируется в Redis с коротким TTL; cache == nil отключает кэш.
type AvailabilityService struct {
	users    repository.UserRepository
	hours    repository.WorkingHoursRepository
	bookings repository.BookingRepository

	cache    *redis.Client
	cacheTTL time.Duration

	logger *zap.Logger
}

func NewAvailabilityService(
	users repository.UserRepository,
	hours repository.WorkingHoursRepository,
	bookings repository.BookingRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *AvailabilityService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &AvailabilityService{
		users:    users,
		hours:    hours,
		bookings: bookings,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// DayAvailability возвращает свободные окна барбера на календарный день day.
func (s *AvailabilityService) DayAvailability(
	ctx context.Context,
	barberID uuid.UUID,
	day time.Time,
) ([]schedule.Interval, error) {
	if _, err := s.users.GetBarber(ctx, barberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, fmt.Errorf("load barber: %w", err)
	}

	key := availabilityKey(barberID, day)
	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	wh, err := s.hours.GetByBarber(ctx, barberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkingHoursNotSet
		}
		return nil, fmt.Errorf("load working hours: %w", err)
	}

	free, err := s.computeDay(ctx, barberID, day, wh)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, free)
	return free, nil
}

func (s *AvailabilityService) computeDay(
	ctx context.Context,
	barberID uuid.UUID,
	day time.Time,
	wh *model.WorkingHours,
) ([]schedule.Interval, error) {
	hours, err := schedule.NewDayHours(day, wh.OpensAt, wh.ClosesAt, wh.BreakStart, wh.BreakEnd)
	if err != nil {
		return nil, fmt.Errorf("working hours of barber %s: %w", barberID, err)
	}

	window := schedule.DayWindow(day)
	rows, err := s.bookings.ListByBarberAndDay(ctx, barberID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	busy := make([]schedule.Interval, 0, len(rows))
	for _, b := range rows {
		busy = append(busy, schedule.Interval{Start: b.StartsAt, End: b.EndsAt})
	}

	return schedule.ComputeAvailability(hours, busy), nil
}

// InvalidateDay сбрасывает кэш доступности барбера на день. Вызывается
// после любой мутации бронирований; ошибка кэша не фатальна.
func (s *AvailabilityService) InvalidateDay(ctx context.Context, barberID uuid.UUID, day time.Time) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, availabilityKey(barberID, day)).Err(); err != nil {
		s.logger.Warn("availability cache invalidation failed",
			zap.String("barber_id", barberID.String()),
			zap.Error(err))
	}
}

func availabilityKey(barberID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("availability:%s:%s", barberID, day.Format("2006-01-02"))
}

func (s *AvailabilityService) cacheGet(ctx context.Context, key string) ([]schedule.Interval, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("availability cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var free []schedule.Interval
	if err := json.Unmarshal([]byte(raw), &free); err != nil {
		s.logger.Warn("availability cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return free, true
}

func (s *AvailabilityService) cacheSet(ctx context.Context, key string, free []schedule.Interval) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(free)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("availability cache write failed", zap.String("key", key), zap.Error(err))
	}
}
