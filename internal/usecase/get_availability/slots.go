package get_availability

import "github.com/m04kA/SMC-VenueBookingService/internal/domain"

// generateSlots разбивает рабочие часы на последовательные слоты фиксированной
// длины, начиная с открытия. Слот, конец которого вышел бы за время закрытия,
// отбрасывается целиком, а не укорачивается. При open == close слотов нет.
func generateSlots(hours domain.TimeInterval, granularityMinutes int) []domain.Slot {
	slots := make([]domain.Slot, 0)

	current := hours.Start
	for current.IsBefore(hours.End) {
		end, err := current.AddMinutes(granularityMinutes)
		if err != nil {
			break
		}
		if end.IsAfter(hours.End) {
			break
		}

		slots = append(slots, domain.Slot{Start: current, End: end})
		current = end
	}

	return slots
}

// computeFreeSlots возвращает упорядоченный список свободных слотов дня.
// Слот свободен, если не пересекается ни с одним занятым интервалом.
// Результат пересчитывается при каждом вызове.
func computeFreeSlots(hours domain.TimeInterval, granularityMinutes int, busy []domain.TimeInterval) []domain.Slot {
	free := make([]domain.Slot, 0)
	for _, slot := range generateSlots(hours, granularityMinutes) {
		if !domain.HasConflict(slot.Interval(), busy) {
			free = append(free, slot)
		}
	}
	return free
}

// isAvailable проверяет доступность произвольного интервала.
// Интервал не обязан совпадать с сеткой слотов - сетка используется
// только для отчёта о свободных слотах.
func isAvailable(candidate domain.TimeInterval, busy []domain.TimeInterval) bool {
	return !domain.HasConflict(candidate, busy)
}
