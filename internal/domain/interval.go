package domain

import (
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// TimeInterval полуоткрытый интервал [Start, End) в пределах одной даты
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate проверяет, что интервал корректен: оба значения установлены и Start < End
func (i TimeInterval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidTimeRange, err)
	}
	if err := i.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidTimeRange, err)
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, i.Start, i.End)
	}
	return nil
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов.
// [a,b) и [c,d) пересекаются тогда и только тогда, когда a < d && c < b.
// Граничные случаи не считаются пересечением: бронирования "впритык" допустимы.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// DurationMinutes возвращает длину интервала в минутах
func (i TimeInterval) DurationMinutes() int {
	return i.End.MinuteOfDay() - i.Start.MinuteOfDay()
}

// String возвращает представление вида "09:00-10:30"
func (i TimeInterval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// HasConflict проверяет, пересекается ли кандидат хотя бы с одним из занятых
// интервалов. Порядок busy не важен, результат от него не зависит.
func HasConflict(candidate TimeInterval, busy []TimeInterval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// BusyIntervals возвращает интервалы активных бронирований.
// Отклонённые и отменённые бронирования время не занимают.
func BusyIntervals(bookings []*Booking) []TimeInterval {
	busy := make([]TimeInterval, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		busy = append(busy, b.Interval())
	}
	return busy
}
