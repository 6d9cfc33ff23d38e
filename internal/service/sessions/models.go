package sessions

import (
	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/internal/service/bookingform"
)

// View снимок формы для отображения
type View struct {
	SessionID string
	Phase     bookingform.Phase
	Values    bookingform.Values
	// Errors только видимые ошибки (поле тронуто и ошибка записана)
	Errors             map[bookingform.Field]string
	AvailableTimes     []string
	IsLoading          bool
	TimeSelectDisabled bool
	TimePlaceholder    string
	IsSubmitting       bool
	SubmitLabel        string
	Alert              string
	Redirect           string
	MinDate            string
	Occasions          []string
}

func buildView(id string, state bookingform.State, times []domain.TimeSlot, loading bool, minDate string) View {
	errs := make(map[bookingform.Field]string)
	for _, f := range bookingform.Fields {
		if msg := state.FieldError(f); msg != "" {
			errs[f] = msg
		}
	}

	return View{
		SessionID:          id,
		Phase:              state.Phase,
		Values:             state.Values,
		Errors:             errs,
		AvailableTimes:     domain.SlotTimes(times),
		IsLoading:          loading,
		TimeSelectDisabled: state.TimeSelectDisabled(),
		TimePlaceholder:    state.TimePlaceholder(len(times)),
		IsSubmitting:       state.IsSubmitting(),
		SubmitLabel:        state.SubmitLabel(),
		Alert:              state.Alert,
		Redirect:           state.Redirect,
		MinDate:            minDate,
		Occasions:          domain.Occasions,
	}
}
