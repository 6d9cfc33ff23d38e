package bookingform

import (
	"fmt"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// AlertPrefix префикс сообщения о неудачной отправке
const AlertPrefix = "Booking failed: "

// Machine функция переходов формы бронирования.
// Не хранит состояние: Apply возвращает новое состояние и список эффектов.
type Machine struct {
	validator *formValidator
	clock     Clock
}

// NewMachine создает машину состояний формы
func NewMachine(clock Clock) (*Machine, error) {
	if clock == nil {
		clock = RealClock{}
	}
	v, err := newFormValidator(clock)
	if err != nil {
		return nil, err
	}
	return &Machine{validator: v, clock: clock}, nil
}

// MinDate самая ранняя дата, которую можно выбрать
func (m *Machine) MinDate() string {
	return domain.Tomorrow(m.clock.Now())
}

// Apply применяет событие к состоянию. Исходное состояние не изменяется.
func (m *Machine) Apply(state State, event Event) (State, []Effect, error) {
	next := state.clone()

	switch e := event.(type) {
	case Change:
		return m.applyChange(next, e)
	case Blur:
		return m.applyBlur(next, e)
	case Submit:
		return m.applySubmit(next)
	case TimesLoaded:
		return m.applyTimesLoaded(next, e), nil, nil
	case SubmitSucceeded:
		if next.Phase != PhaseSubmitting {
			return next, nil, nil
		}
		return next, []Effect{PersistRecord{Record: e.Record}}, nil
	case RecordPersisted:
		if next.Phase != PhaseSubmitting {
			return next, nil, nil
		}
		next.Phase = PhaseSubmitted
		next.Redirect = e.Record.ConfirmationPath()
		return next, nil, nil
	case SubmitFailed:
		if next.Phase != PhaseSubmitting {
			return next, nil, nil
		}
		next.Alert = AlertPrefix + e.Message
		next.Phase = next.PreSubmit
		return next, nil, nil
	default:
		return state, nil, fmt.Errorf("%w: %T", ErrUnknownEvent, event)
	}
}

func (m *Machine) applyChange(next State, e Change) (State, []Effect, error) {
	if _, err := ParseField(string(e.Field)); err != nil {
		return next, nil, err
	}

	// Во время отправки и после неё форма не редактируется
	if next.Phase == PhaseSubmitting || next.Phase == PhaseSubmitted {
		return next, nil, nil
	}

	// Время выбирается только из загруженного для даты списка
	if e.Field == FieldTime {
		if next.TimeSelectDisabled() {
			return next, nil, nil
		}
		if e.Value != "" && !contains(next.Times, e.Value) {
			return next, nil, nil
		}
	}

	previous := next.Values.Get(e.Field)
	next.Values.set(e.Field, e.Value)

	// Устаревшую ошибку снимаем сразу, заново проверяем только на blur или submit
	if next.Errors[e.Field] != "" {
		delete(next.Errors, e.Field)
	}

	var effects []Effect
	if e.Field == FieldDate && e.Value != previous {
		next.TimesLoaded = false
		next.Times = nil
		if e.Value == "" {
			next.Values.Time = ""
			next.Loading = false
			effects = append(effects, ClearAvailability{})
		} else {
			// Выбранное время сохраняется до сверки с новым списком
			next.Loading = true
			effects = append(effects, FetchAvailability{Date: e.Value})
		}
	}

	next.Phase = derivePhase(next)
	return next, effects, nil
}

func (m *Machine) applyBlur(next State, e Blur) (State, []Effect, error) {
	if _, err := ParseField(string(e.Field)); err != nil {
		return next, nil, err
	}
	if next.Phase == PhaseSubmitting || next.Phase == PhaseSubmitted {
		return next, nil, nil
	}

	next.Touched[e.Field] = true
	if msg := m.validator.ValidateField(next.Values, e.Field); msg != "" {
		next.Errors[e.Field] = msg
	} else {
		delete(next.Errors, e.Field)
	}
	return next, nil, nil
}

func (m *Machine) applySubmit(next State) (State, []Effect, error) {
	if next.Phase == PhaseSubmitting || next.Phase == PhaseSubmitted {
		return next, nil, nil
	}

	// Пока список для новой даты не загружен, выбранное время не сверено
	if next.Loading {
		return next, nil, nil
	}

	next.PreSubmit = derivePhase(next)
	next.Alert = ""

	// Проверяем все поля сразу и показываем все ошибки
	errs := m.validator.Validate(next.Values)
	for _, f := range Fields {
		next.Touched[f] = true
	}
	if len(errs) > 0 {
		next.Errors = errs
		next.Phase = PhaseValidationFailed
		return next, nil, nil
	}

	next.Errors = map[Field]string{}
	next.Phase = PhaseSubmitting
	return next, []Effect{SubmitBooking{Request: toRequest(next.Values)}}, nil
}

// applyTimesLoaded сверяет выбранное время с новым списком.
// Время, пропавшее из непустого списка, сбрасывается.
func (m *Machine) applyTimesLoaded(next State, e TimesLoaded) State {
	if next.Values.Date == "" {
		return next
	}

	next.Loading = false
	next.TimesLoaded = true
	next.Times = append([]string(nil), e.Times...)

	if next.Values.Time != "" && len(e.Times) > 0 && !contains(e.Times, next.Values.Time) {
		next.Values.Time = ""
	}

	if next.Phase != PhaseSubmitting && next.Phase != PhaseSubmitted {
		next.Phase = derivePhase(next)
	}
	return next
}

// derivePhase вычисляет фазу редактирования по значениям и загрузке
func derivePhase(s State) Phase {
	switch {
	case s.Values.Date == "":
		return PhaseEmpty
	case s.Loading:
		return PhaseTimesLoading
	case s.Values.Time != "":
		return PhaseTimeChosen
	case s.TimesLoaded:
		return PhaseTimesReady
	default:
		return PhaseDateChosen
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
