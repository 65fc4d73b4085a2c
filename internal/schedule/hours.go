package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidClock        = errors.New("invalid clock value")
	ErrInvalidWorkingHours = errors.New("invalid working hours")
)

// Форматы времени суток: "15:04" и "15:04:05".
const (
	clockLayout        = "15:04"
	clockSecondsLayout = "15:04:05"
)

// ParseClock разбирает время суток ("HH:MM" или "HH:MM:SS")
// и возвращает смещение от полуночи.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		t, err = time.Parse(clockSecondsLayout, s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// DayHours — рабочие часы ресурса, материализованные на конкретную дату.
// Break == nil означает день без перерыва.
type DayHours struct {
	Open  time.Time
	Close time.Time
	Break *Interval
}

// NewDayHours строит рабочие часы на дату day из значений времени суток.
// breakStart/breakEnd либо оба пустые, либо оба заданы.
// Инварианты: Open < Close; Open <= BreakStart < BreakEnd <= Close.
func NewDayHours(day time.Time, open, close string, breakStart, breakEnd string) (DayHours, error) {
	openOff, err := ParseClock(open)
	if err != nil {
		return DayHours{}, err
	}
	closeOff, err := ParseClock(close)
	if err != nil {
		return DayHours{}, err
	}
	if closeOff <= openOff {
		return DayHours{}, fmt.Errorf("%w: open %s is not before close %s", ErrInvalidWorkingHours, open, close)
	}

	midnight := DayStart(day)
	h := DayHours{
		Open:  midnight.Add(openOff),
		Close: midnight.Add(closeOff),
	}

	if breakStart == "" && breakEnd == "" {
		return h, nil
	}
	if breakStart == "" || breakEnd == "" {
		return DayHours{}, fmt.Errorf("%w: break must have both start and end", ErrInvalidWorkingHours)
	}

	bsOff, err := ParseClock(breakStart)
	if err != nil {
		return DayHours{}, err
	}
	beOff, err := ParseClock(breakEnd)
	if err != nil {
		return DayHours{}, err
	}
	if bsOff < openOff || beOff <= bsOff || beOff > closeOff {
		return DayHours{}, fmt.Errorf("%w: break %s-%s is outside %s-%s", ErrInvalidWorkingHours, breakStart, breakEnd, open, close)
	}

	h.Break = &Interval{Start: midnight.Add(bsOff), End: midnight.Add(beOff)}
	return h, nil
}

// Window — весь рабочий день как интервал [Open, Close).
func (h DayHours) Window() Interval {
	return Interval{Start: h.Open, End: h.Close}
}

// DayStart возвращает полночь календарного дня момента t.
func DayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DayWindow — календарный день момента t как полуоткрытый интервал.
func DayWindow(t time.Time) Interval {
	start := DayStart(t)
	return Interval{Start: start, End: start.AddDate(0, 0, 1)}
}
