package model

import (
	"time"

	"github.com/google/uuid"
)

// companies
type Company struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	Name    string `gorm:"type:varchar(100);not null"`
	Address string `gorm:"type:varchar(100)"`

	IsActive bool `gorm:"not null;default:true;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Employees []User `gorm:"foreignKey:CompanyID"`
}
