package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/barbershop-booking/internal/model"
)

type WorkingHoursRepository interface {
	// Рабочие часы барбера.
	GetByBarber(ctx context.Context, barberID uuid.UUID) (*model.WorkingHours, error)
	// Создать или обновить рабочие часы барбера.
	Upsert(ctx context.Context, hours *model.WorkingHours) error
}

type GormWorkingHoursRepository struct {
	db *gorm.DB
}

func NewGormWorkingHoursRepository(db *gorm.DB) *GormWorkingHoursRepository {
	return &GormWorkingHoursRepository{db: db}
}

func (r *GormWorkingHoursRepository) GetByBarber(ctx context.Context, barberID uuid.UUID) (*model.WorkingHours, error) {
	var wh model.WorkingHours
	if err := r.db.WithContext(ctx).First(&wh, "barber_id = ?", barberID).Error; err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *GormWorkingHoursRepository) Upsert(ctx context.Context, hours *model.WorkingHours) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "barber_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"opens_at", "closes_at", "break_start", "break_end", "updated_at",
			}),
		}).
		Create(hours).
		Error
}
