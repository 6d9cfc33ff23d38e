package pages

import (
	"html/template"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/internal/service/bookingform"
	"github.com/m04kA/LittleLemon-Booking/internal/service/sessions"
)

// pageData данные layout
type pageData struct {
	Title  string
	Year   int
	Body   template.HTML
	Form   *formView
	Record *domain.BookingRecord
}

type occasionOption struct {
	Value string
	Label string
}

// formView модель формы бронирования для шаблона
type formView struct {
	Values             bookingform.Values
	Errors             map[string]string
	AvailableTimes     []string
	IsLoading          bool
	TimeSelectDisabled bool
	TimePlaceholder    string
	IsSubmitting       bool
	SubmitLabel        string
	Alert              string
	MinDate            string
	Occasions          []occasionOption
}

func fromSessionView(v sessions.View) *formView {
	errs := make(map[string]string, len(v.Errors))
	for f, msg := range v.Errors {
		errs[string(f)] = msg
	}

	occasions := make([]occasionOption, len(v.Occasions))
	for i, o := range v.Occasions {
		occasions[i] = occasionOption{Value: o, Label: occasionLabel(o)}
	}

	return &formView{
		Values:             v.Values,
		Errors:             errs,
		AvailableTimes:     v.AvailableTimes,
		IsLoading:          v.IsLoading,
		TimeSelectDisabled: v.TimeSelectDisabled,
		TimePlaceholder:    v.TimePlaceholder,
		IsSubmitting:       v.IsSubmitting,
		SubmitLabel:        v.SubmitLabel,
		Alert:              v.Alert,
		MinDate:            v.MinDate,
		Occasions:          occasions,
	}
}
