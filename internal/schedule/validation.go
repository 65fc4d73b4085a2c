package schedule

import (
	"errors"
	"time"
)

// Причина отказа валидатора. Значения уходят наружу в тело ответа API.
type Reason string

const (
	ReasonInvalidRange        Reason = "invalid_range"
	ReasonInThePast           Reason = "in_the_past"
	ReasonOutsideWorkingHours Reason = "outside_working_hours"
	ReasonOverlapsBreak       Reason = "overlaps_break"
	ReasonConflict            Reason = "conflicts_existing_booking"
	ReasonTooLateToModify     Reason = "too_late_to_modify"
	ReasonTooCloseToModify    Reason = "too_close_to_modify"
)

// ValidationError — типизированный отказ бизнес-правила.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Reason) + ": " + e.Message
}

func reject(reason Reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

// AsValidationError извлекает *ValidationError из цепочки ошибок.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ModifyLockWindow — период перед началом бронирования, в течение
// которого его нельзя изменить или отменить.
const ModifyLockWindow = time.Hour

// ValidateBooking проверяет предлагаемое бронирование [start, end)
// против рабочих часов и существующих активных бронирований ресурса.
// Проверки выполняются по порядку, побеждает первый отказ.
// now передаётся явно, чтобы функция оставалась чистой.
//
// Интервалы полуоткрытые: бронирование, заканчивающееся ровно в момент
// начала другого, конфликтом не считается.
func ValidateBooking(start, end time.Time, hours DayHours, existing []Interval, now time.Time) error {
	if !end.After(start) {
		return reject(ReasonInvalidRange, "start must be before end")
	}
	if start.Before(now) {
		return reject(ReasonInThePast, "booking starts in the past")
	}
	if start.Before(hours.Open) || end.After(hours.Close) {
		return reject(ReasonOutsideWorkingHours, "booking is outside working hours")
	}

	proposed := Interval{Start: start, End: end}

	if hours.Break != nil && proposed.Overlaps(*hours.Break) {
		return reject(ReasonOverlapsBreak, "booking overlaps the break window")
	}
	for _, b := range existing {
		if proposed.Overlaps(b) {
			return reject(ReasonConflict, "booking conflicts with an existing booking")
		}
	}

	return nil
}

// CheckModifiable проверяет правило блокировки изменения/отмены
// существующего бронирования относительно его начала.
func CheckModifiable(start, now time.Time) error {
	if !now.Before(start) {
		return reject(ReasonTooLateToModify, "booking has already started")
	}
	if start.Sub(now) < ModifyLockWindow {
		return reject(ReasonTooCloseToModify, "booking starts in less than one hour")
	}
	return nil
}
