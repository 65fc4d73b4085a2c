package model

import (
	"time"

	"github.com/google/uuid"
)

// Роль пользователя. Барбер — бронируемый ресурс с рабочими часами.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleUser   UserRole = "user"
	UserRoleBarber UserRole = "barber"
)

// users
type User struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	Username     string `gorm:"type:varchar(150);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	FirstName string `gorm:"type:varchar(150)"`
	LastName  string `gorm:"type:varchar(150)"`
	Phone     string `gorm:"type:varchar(15)"`
	AvatarURL string `gorm:"type:text"`

	Role UserRole `gorm:"type:varchar(10);not null;default:'user';index"`

	IsActive bool `gorm:"not null;default:true"`

	CompanyID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	// Навигационные поля (опционально, но удобно для Preload).
	Company      *Company      `gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	WorkingHours *WorkingHours `gorm:"foreignKey:BarberID"`
	Bookings     []Booking     `gorm:"foreignKey:ResidentID"`
}
