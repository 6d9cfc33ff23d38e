package bookingpage

import "github.com/m04kA/LittleLemon-Booking/internal/domain"

// State состояние страницы бронирования
type State struct {
	AvailableTimes []domain.TimeSlot
	IsLoading      bool
}

// Action действие над состоянием страницы
type Action interface {
	isAction()
}

// SetAvailableTimes заменяет список и снимает флаг загрузки
type SetAvailableTimes struct {
	Times []domain.TimeSlot
}

// SetLoading выставляет флаг загрузки
type SetLoading struct {
	Loading bool
}

// ClearTimes очищает список и снимает флаг загрузки
type ClearTimes struct{}

func (SetAvailableTimes) isAction() {}
func (SetLoading) isAction()        {}
func (ClearTimes) isAction()        {}

// Reduce возвращает новое состояние. Неизвестные действия не меняют состояние.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetAvailableTimes:
		state.AvailableTimes = a.Times
		state.IsLoading = false
	case SetLoading:
		state.IsLoading = a.Loading
	case ClearTimes:
		state.AvailableTimes = []domain.TimeSlot{}
		state.IsLoading = false
	}
	return state
}
