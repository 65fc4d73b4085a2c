package model

import (
	"time"

	"github.com/google/uuid"
)

// bookings
// Отмена — мягкая деактивация (IsActive=false), записи не удаляются.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	BarberID   uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_barber_time"`
	ResidentID uuid.UUID `gorm:"type:uuid;not null;index"`

	StartsAt time.Time `gorm:"type:timestamp with time zone;not null;index:idx_bookings_barber_time"`
	EndsAt   time.Time `gorm:"type:timestamp with time zone;not null"`

	IsActive bool `gorm:"not null;default:true;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Barber   *User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Resident *User `gorm:"foreignKey:ResidentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
