package handler

import (
	"fmt"
	"time"

	"github.com/Leganyst/barbershop-booking/internal/schedule"
)

// Проводные форматы дат: день-месяц-год, как у мобильных клиентов.
const (
	wireDateLayout     = "02-01-2006"
	wireDateTimeLayout = "02-01-2006 15:04:05"
)

// parseWireDate разбирает дату "DD-MM-YYYY".
func parseWireDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(wireDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected date in format %s: %w", wireDateLayout, err)
	}
	return t, nil
}

// parseWireDateTime нормализует дату-время с границы: принимается либо
// "DD-MM-YYYY HH:MM:SS", либо RFC 3339. Внутри всё живёт в UTC.
func parseWireDateTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(wireDateTimeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("expected datetime in format %q or RFC 3339", wireDateTimeLayout)
}

func formatWireDateTime(t time.Time) string {
	return t.UTC().Format(wireDateTimeLayout)
}

// windowView — свободное окно в проводном формате.
type windowView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func toWindowViews(intervals []schedule.Interval) []windowView {
	views := make([]windowView, 0, len(intervals))
	for _, iv := range intervals {
		views = append(views, windowView{
			Start: formatWireDateTime(iv.Start),
			End:   formatWireDateTime(iv.End),
		})
	}
	return views
}
