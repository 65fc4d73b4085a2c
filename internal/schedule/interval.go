package schedule

import (
	"errors"
	"sort"
	"time"
)

var ErrInvalidInterval = errors.New("invalid time interval")

// Interval представляет временной интервал [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создаёт интервал и делает простую валидацию.
func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, ErrInvalidInterval
	}
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps сообщает, пересекаются ли полуоткрытые интервалы [Start, End).
// Касание концами (a.End == b.Start) пересечением не считается.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Duration — длительность интервала.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Clip обрезает интервал по границам bounds.
// Второе значение false, если после обрезки ничего не осталось.
func (iv Interval) Clip(bounds Interval) (Interval, bool) {
	start := iv.Start
	end := iv.End
	if start.Before(bounds.Start) {
		start = bounds.Start
	}
	if end.After(bounds.End) {
		end = bounds.End
	}
	if !end.After(start) {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// sortIntervals упорядочивает интервалы по возрастанию Start,
// при равенстве — по возрастанию End (для детерминизма).
func sortIntervals(ivs []Interval) {
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Start.Equal(ivs[j].Start) {
			return ivs[i].End.Before(ivs[j].End)
		}
		return ivs[i].Start.Before(ivs[j].Start)
	})
}
