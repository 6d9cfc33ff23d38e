package bookingform

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// schema правила формы; имена полей берутся из тега form
type schema struct {
	Date     string   `form:"date" validate:"required,isodate,notpast"`
	Time     string   `form:"time" validate:"required"`
	Guests   *float64 `form:"guests" validate:"required,whole,min=1,max=10"`
	Occasion string   `form:"occasion" validate:"omitempty"`
}

// messages текст ошибки по полю и правилу
var messages = map[Field]map[string]string{
	FieldDate: {
		"required": "Date is required",
		"isodate":  "Invalid date",
		"notpast":  "Date cannot be in the past",
	},
	FieldTime: {
		"required": "Time is required",
	},
	FieldGuests: {
		"required": "Number of guests is required",
		"whole":    "Must be a whole number",
		"min":      "Minimum 1 guest",
		"max":      "Maximum 10 guests",
	},
}

const guestsNotNumber = "Must be a number"

// formValidator проверяет значения формы целиком (все поля сразу)
type formValidator struct {
	validate *validator.Validate
	clock    Clock
}

func newFormValidator(clock Clock) (*formValidator, error) {
	v := &formValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		clock:    clock,
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})

	if err := v.validate.RegisterValidation("isodate", isISODate); err != nil {
		return nil, fmt.Errorf("%w: isodate: %v", ErrValidatorSetup, err)
	}
	if err := v.validate.RegisterValidation("notpast", v.isNotPast); err != nil {
		return nil, fmt.Errorf("%w: notpast: %v", ErrValidatorSetup, err)
	}
	if err := v.validate.RegisterValidation("whole", isWhole); err != nil {
		return nil, fmt.Errorf("%w: whole: %v", ErrValidatorSetup, err)
	}

	return v, nil
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DateFormat, fl.Field().String())
	return err == nil
}

// isNotPast дата должна быть не раньше завтрашнего дня
func (v *formValidator) isNotPast(fl validator.FieldLevel) bool {
	date, err := time.Parse(domain.DateFormat, fl.Field().String())
	if err != nil {
		return false
	}
	tomorrow := v.clock.Now().AddDate(0, 0, 1)
	return !domain.IsDateInPast(date, tomorrow)
}

func isWhole(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return f == math.Trunc(f)
}

// Validate проверяет все поля и возвращает ошибки по каждому нарушенному полю.
// Пустой результат означает, что форма корректна.
func (v *formValidator) Validate(values Values) map[Field]string {
	s, guestsParsed := toSchema(values)

	errs := map[Field]string{}
	if err := v.validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs[FieldDate] = err.Error()
			return errs
		}
		for _, fe := range verrs {
			field := Field(fe.Field())
			if msg, ok := messages[field][fe.Tag()]; ok {
				errs[field] = msg
			} else {
				errs[field] = fe.Error()
			}
		}
	}

	if !guestsParsed {
		errs[FieldGuests] = guestsNotNumber
	}

	return errs
}

// ValidateField проверяет одно поле
func (v *formValidator) ValidateField(values Values, field Field) string {
	return v.Validate(values)[field]
}

// toSchema приводит строковые значения к типам схемы.
// Второе значение false, если количество гостей задано, но не является числом.
func toSchema(values Values) (schema, bool) {
	s := schema{
		Date:     values.Date,
		Time:     values.Time,
		Occasion: values.Occasion,
	}

	raw := strings.TrimSpace(values.Guests)
	if raw == "" {
		return s, true
	}
	guests, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return s, false
	}
	s.Guests = &guests
	return s, true
}

// toRequest собирает запрос из проверенных значений
func toRequest(values Values) domain.BookingRequest {
	guests, _ := strconv.ParseFloat(strings.TrimSpace(values.Guests), 64)
	return domain.BookingRequest{
		Date:     values.Date,
		Time:     values.Time,
		Guests:   int(guests),
		Occasion: values.Occasion,
	}
}
