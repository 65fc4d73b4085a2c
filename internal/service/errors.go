package service

import "errors"

// Ошибки уровня сервисов. Транспортный слой отображает их в HTTP-статусы.
var (
	ErrBarberNotFound     = errors.New("barber not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrWorkingHoursNotSet = errors.New("working hours are not set for the barber")
	ErrNotOwner           = errors.New("booking belongs to another resident")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountInactive    = errors.New("account is inactive")
)
