package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/barbershop-booking/internal/model"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	// Только активные компании.
	ListActive(ctx context.Context) ([]model.Company, error)
	Update(ctx context.Context, company *model.Company) error
}

type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *GormCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var c model.Company
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCompanyRepository) ListActive(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&companies).
		Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *GormCompanyRepository) Update(ctx context.Context, company *model.Company) error {
	// Select нужен, чтобы обновлялся и сброс is_active в false.
	return r.db.WithContext(ctx).
		Model(&model.Company{}).
		Where("id = ?", company.ID).
		Select("name", "address", "is_active").
		Updates(company).
		Error
}
