package bookingform

import "time"

// Clock источник текущего времени для проверки даты
type Clock interface {
	Now() time.Time
}

// RealClock системные часы
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}
