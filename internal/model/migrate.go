package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей сервиса.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Company{},
		&User{},
		&WorkingHours{},
		&Booking{},
		&Event{},
	)
}
