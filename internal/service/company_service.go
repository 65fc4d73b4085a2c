package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/barbershop-booking/internal/model"
	"github.com/Leganyst/barbershop-booking/internal/repository"
)

// CompanyService — справочник компаний. Мутации доступны только админам,
// это решается на уровне маршрутов.
type CompanyService struct {
	companies repository.CompanyRepository
}

func NewCompanyService(companies repository.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

type CompanyInput struct {
	Name    string
	Address string
}

func (s *CompanyService) Create(ctx context.Context, in CompanyInput) (*model.Company, error) {
	company := &model.Company{
		ID:       uuid.New(),
		Name:     in.Name,
		Address:  in.Address,
		IsActive: true,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("load company: %w", err)
	}
	return company, nil
}

func (s *CompanyService) List(ctx context.Context) ([]model.Company, error) {
	return s.companies.ListActive(ctx)
}

type CompanyUpdateInput struct {
	Name     *string
	Address  *string
	IsActive *bool
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, in CompanyUpdateInput) (*model.Company, error) {
	company, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}
