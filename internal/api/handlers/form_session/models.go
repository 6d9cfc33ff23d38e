package form_session

import (
	"fmt"

	"github.com/m04kA/LittleLemon-Booking/internal/service/bookingform"
	"github.com/m04kA/LittleLemon-Booking/internal/service/sessions"
)

// Типы событий формы
const (
	EventChange = "change"
	EventBlur   = "blur"
	EventSubmit = "submit"
)

// CreateSessionResponse HTTP response model
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// EventRequest HTTP request model
type EventRequest struct {
	Type  string `json:"type"`
	Field string `json:"field"`
	Value string `json:"value"`
	// Wait дождаться загрузки времени перед ответом
	Wait bool `json:"wait"`
}

// ToEvent конвертирует запрос в событие формы
func (r *EventRequest) ToEvent() (bookingform.Event, error) {
	switch r.Type {
	case EventSubmit:
		return bookingform.Submit{}, nil
	case EventChange, EventBlur:
		field, err := bookingform.ParseField(r.Field)
		if err != nil {
			return nil, err
		}
		if r.Type == EventBlur {
			return bookingform.Blur{Field: field}, nil
		}
		return bookingform.Change{Field: field, Value: r.Value}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", r.Type)
	}
}

// FormValues значения полей
type FormValues struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   string `json:"guests"`
	Occasion string `json:"occasion"`
}

// SessionView HTTP response model
type SessionView struct {
	SessionID          string            `json:"sessionId"`
	Phase              string            `json:"phase"`
	Values             FormValues        `json:"values"`
	Errors             map[string]string `json:"errors"`
	AvailableTimes     []string          `json:"availableTimes"`
	IsLoading          bool              `json:"isLoading"`
	TimeSelectDisabled bool              `json:"timeSelectDisabled"`
	TimePlaceholder    string            `json:"timePlaceholder"`
	IsSubmitting       bool              `json:"isSubmitting"`
	SubmitLabel        string            `json:"submitLabel"`
	Alert              string            `json:"alert,omitempty"`
	Redirect           string            `json:"redirect,omitempty"`
	MinDate            string            `json:"minDate"`
	Occasions          []string          `json:"occasions"`
}

// FromView конвертирует снимок сессии в HTTP response
func FromView(v sessions.View) *SessionView {
	errs := make(map[string]string, len(v.Errors))
	for f, msg := range v.Errors {
		errs[string(f)] = msg
	}

	return &SessionView{
		SessionID: v.SessionID,
		Phase:     string(v.Phase),
		Values: FormValues{
			Date:     v.Values.Date,
			Time:     v.Values.Time,
			Guests:   v.Values.Guests,
			Occasion: v.Values.Occasion,
		},
		Errors:             errs,
		AvailableTimes:     v.AvailableTimes,
		IsLoading:          v.IsLoading,
		TimeSelectDisabled: v.TimeSelectDisabled,
		TimePlaceholder:    v.TimePlaceholder,
		IsSubmitting:       v.IsSubmitting,
		SubmitLabel:        v.SubmitLabel,
		Alert:              v.Alert,
		Redirect:           v.Redirect,
		MinDate:            v.MinDate,
		Occasions:          v.Occasions,
	}
}
