package schedule

// ComputeAvailability вычисляет свободные окна рабочего дня.
// bookings — занятые интервалы, пересекающие этот календарный день
// (порядок не важен, пересечения допустимы). Перерыв из hours учитывается
// наравне с бронированиями.
//
// Результат упорядочен по возрастанию Start, окна не пересекаются,
// каждое имеет положительную длительность.
func ComputeAvailability(hours DayHours, bookings []Interval) []Interval {
	window := hours.Window()

	// Обрезаем занятое по границам рабочего дня; выпавшее за границы
	// после обрезки игнорируем.
	busy := make([]Interval, 0, len(bookings)+1)
	for _, b := range bookings {
		if clipped, ok := b.Clip(window); ok {
			busy = append(busy, clipped)
		}
	}
	if hours.Break != nil {
		busy = append(busy, *hours.Break)
	}

	sortIntervals(busy)

	// Проход курсором: previousEnd двигается только вперёд,
	// за счёт этого пересекающиеся и смежные интервалы схлопываются.
	free := make([]Interval, 0, len(busy)+1)
	previousEnd := hours.Open
	for _, b := range busy {
		if previousEnd.Before(b.Start) {
			free = append(free, Interval{Start: previousEnd, End: b.Start})
		}
		if b.End.After(previousEnd) {
			previousEnd = b.End
		}
	}
	if previousEnd.Before(hours.Close) {
		free = append(free, Interval{Start: previousEnd, End: hours.Close})
	}

	return free
}
