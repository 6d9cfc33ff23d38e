package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	minutesPerDay = 24 * 60
	timeLayout    = "15:04"
)

var (
	// ErrInvalidTimeString возвращается, если строка не является временем "HH:MM"
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, если арифметика выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString - время суток с точностью до минуты ("HH:MM").
// Нулевое значение означает "не задано".
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString строит TimeString из часа и минуты t
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromString разбирает строку строго в формате "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) != len(timeLayout) {
		return TimeString{}, ErrInvalidTimeString
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeString{}, ErrInvalidTimeString
	}
	return NewTimeString(t), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке.
// Для таблиц уровня пакета.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(fmt.Sprintf("types: %q: %v", s, err))
	}
	return ts
}

// AddMinutes сдвигает время на n минут без перехода через полночь
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if !t.valid {
		return TimeString{}, ErrInvalidTimeString
	}
	m := t.minutes + n
	if m < 0 || m >= minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %s %+d min", ErrTimeOverflow, t, n)
	}
	return TimeString{minutes: m, valid: true}, nil
}

// IsBefore сообщает, что t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter сообщает, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal сообщает, что оба значения обозначают одно время суток
func (t TimeString) Equal(other TimeString) bool {
	return t.valid == other.valid && t.minutes == other.minutes
}

// IsZero сообщает, что значение не задано
func (t TimeString) IsZero() bool {
	return !t.valid
}

// Validate возвращает ошибку для незаданного значения
func (t TimeString) Validate() error {
	if !t.valid {
		return ErrInvalidTimeString
	}
	return nil
}

// Minutes возвращает число минут от полуночи
func (t TimeString) Minutes() int {
	return t.minutes
}

// String форматирует значение как "HH:MM" или "" для незаданного
func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// MarshalText реализует encoding.TextMarshaler
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (t *TimeString) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = TimeString{}
		return nil
	}
	parsed, err := NewTimeStringFromString(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
