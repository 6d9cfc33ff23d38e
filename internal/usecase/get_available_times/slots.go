package get_available_times

import "github.com/m04kA/LittleLemon-Booking/internal/domain"

// applyRandomUnavailability бросает независимый жребий для каждого доступного слота.
// Слот остаётся доступным, только если базовый флаг true И значение больше порога.
// Занятые в базовой таблице слоты жребий не бросают.
func applyRandomUnavailability(base []domain.TimeSlot, random Random) []domain.TimeSlot {
	result := make([]domain.TimeSlot, len(base))
	for i, slot := range base {
		available := slot.Available && random.Float64() > domain.UnavailabilityThreshold
		result[i] = domain.TimeSlot{Time: slot.Time, Available: available}
	}
	return result
}

// partitionSlots делит слоты на доступные и занятые с сохранением порядка
func partitionSlots(slots []domain.TimeSlot) (available, unavailable []domain.TimeSlot) {
	available = make([]domain.TimeSlot, 0, len(slots))
	unavailable = make([]domain.TimeSlot, 0)
	for _, slot := range slots {
		if slot.Available {
			available = append(available, slot)
		} else {
			unavailable = append(unavailable, slot)
		}
	}
	return available, unavailable
}
