package model

import (
	"time"

	"github.com/google/uuid"
)

// working_hours — рабочие часы барбера, один к одному.
// Значения времени суток хранятся строками "HH:MM";
// разбор и проверка инвариантов — в пакете schedule.
type WorkingHours struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	BarberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	OpensAt  string `gorm:"type:varchar(8);not null"`
	ClosesAt string `gorm:"type:varchar(8);not null"`

	// Перерыв опционален: либо оба поля пустые, либо оба заданы.
	BreakStart string `gorm:"type:varchar(8)"`
	BreakEnd   string `gorm:"type:varchar(8)"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Barber *User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
