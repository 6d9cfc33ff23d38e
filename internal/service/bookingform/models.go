package bookingform

import (
	"fmt"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// Field поле формы бронирования
type Field string

const (
	FieldDate     Field = "date"
	FieldTime     Field = "time"
	FieldGuests   Field = "guests"
	FieldOccasion Field = "occasion"
)

// Fields все поля формы в порядке отображения
var Fields = []Field{FieldDate, FieldTime, FieldGuests, FieldOccasion}

// ParseField разбирает имя поля
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Phase фаза формы
type Phase string

const (
	PhaseEmpty            Phase = "empty"
	PhaseDateChosen       Phase = "date_chosen"
	PhaseTimesLoading     Phase = "times_loading"
	PhaseTimesReady       Phase = "times_ready"
	PhaseTimeChosen       Phase = "time_chosen"
	PhaseSubmitting       Phase = "submitting"
	PhaseSubmitted        Phase = "submitted"
	PhaseValidationFailed Phase = "validation_failed"
)

// Values значения полей в том виде, в каком их ввёл посетитель
type Values struct {
	Date     string
	Time     string
	Guests   string
	Occasion string
}

// Get возвращает значение поля
func (v Values) Get(f Field) string {
	switch f {
	case FieldDate:
		return v.Date
	case FieldTime:
		return v.Time
	case FieldGuests:
		return v.Guests
	case FieldOccasion:
		return v.Occasion
	}
	return ""
}

func (v *Values) set(f Field, value string) {
	switch f {
	case FieldDate:
		v.Date = value
	case FieldTime:
		v.Time = value
	case FieldGuests:
		v.Guests = value
	case FieldOccasion:
		v.Occasion = value
	}
}

// State полное состояние формы
type State struct {
	Phase   Phase
	Values  Values
	Errors  map[Field]string
	Touched map[Field]bool

	// Loading запрос доступного времени ещё не завершён
	Loading bool
	// TimesLoaded для текущей даты получен список времени
	TimesLoaded bool
	// Times загруженный список; выбрать можно только время из него
	Times []string
	// PreSubmit фаза, в которую форма вернётся после неудачной отправки
	PreSubmit Phase
	// Alert сообщение об ошибке отправки
	Alert string
	// Redirect адрес страницы подтверждения после успешной отправки
	Redirect string
}

// NewState возвращает начальное состояние: пустая форма, один гость
func NewState() State {
	return State{
		Phase:   PhaseEmpty,
		Values:  Values{Guests: "1"},
		Errors:  map[Field]string{},
		Touched: map[Field]bool{},
	}
}

func (s State) clone() State {
	errs := make(map[Field]string, len(s.Errors))
	for k, v := range s.Errors {
		errs[k] = v
	}
	touched := make(map[Field]bool, len(s.Touched))
	for k, v := range s.Touched {
		touched[k] = v
	}
	s.Errors = errs
	s.Touched = touched
	s.Times = append([]string(nil), s.Times...)
	return s
}

// FieldError возвращает ошибку поля, только если поле тронуто и ошибка записана
func (s State) FieldError(f Field) string {
	if s.Touched[f] && s.Errors[f] != "" {
		return s.Errors[f]
	}
	return ""
}

// IsSubmitting форма ждёт ответа сервиса
func (s State) IsSubmitting() bool {
	return s.Phase == PhaseSubmitting
}

// TimeSelectDisabled выбор времени недоступен без даты и во время загрузки
func (s State) TimeSelectDisabled() bool {
	return s.Values.Date == "" || s.Loading
}

// TimePlaceholder текст пустого пункта списка времени
func (s State) TimePlaceholder(availableCount int) string {
	switch {
	case s.Values.Date == "":
		return "Please select a date first"
	case s.Loading:
		return "Loading available times..."
	case availableCount == 0:
		return "No times available for this date"
	default:
		return "Select a time"
	}
}

// SubmitLabel текст кнопки отправки
func (s State) SubmitLabel() string {
	if s.IsSubmitting() {
		return "Submitting..."
	}
	return "Make Your Reservation"
}

// Event событие формы
type Event interface {
	isEvent()
}

// Change посетитель изменил значение поля
type Change struct {
	Field Field
	Value string
}

// Blur посетитель покинул поле
type Blur struct {
	Field Field
}

// Submit посетитель отправил форму
type Submit struct{}

// TimesLoaded список доступного времени для текущей даты получен
type TimesLoaded struct {
	Times []string
}

// SubmitSucceeded сервис подтвердил бронирование
type SubmitSucceeded struct {
	Record *domain.BookingRecord
}

// RecordPersisted запись сохранена, можно переходить к подтверждению
type RecordPersisted struct {
	Record *domain.BookingRecord
}

// SubmitFailed сервис отклонил бронирование
type SubmitFailed struct {
	Message string
}

func (Change) isEvent()          {}
func (Blur) isEvent()            {}
func (Submit) isEvent()          {}
func (TimesLoaded) isEvent()     {}
func (SubmitSucceeded) isEvent() {}
func (RecordPersisted) isEvent() {}
func (SubmitFailed) isEvent()    {}

// Effect побочное действие, которое должен выполнить владелец формы
type Effect interface {
	isEffect()
}

// FetchAvailability загрузить доступное время для даты
type FetchAvailability struct {
	Date string
}

// ClearAvailability очистить список времени
type ClearAvailability struct{}

// SubmitBooking отправить бронирование
type SubmitBooking struct {
	Request domain.BookingRequest
}

// PersistRecord сохранить подтверждённую запись
type PersistRecord struct {
	Record *domain.BookingRecord
}

func (FetchAvailability) isEffect() {}
func (ClearAvailability) isEffect() {}
func (SubmitBooking) isEffect()     {}
func (PersistRecord) isEffect()     {}
