package domain

import (
	"time"

	"github.com/m04kA/LittleLemon-Booking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
)

// BookingRequest is what the visitor submits from the booking form
type BookingRequest struct {
	Date     string // "2024-01-15"
	Time     string // "19:00"
	Guests   int
	Occasion string // optional, "" when not chosen
}

// HasRequiredFields reports whether date, time and guests are all set.
// Zero guests counts as missing.
func (r *BookingRequest) HasRequiredFields() bool {
	return r.Date != "" && r.Time != "" && r.Guests != 0
}

// HasOccasion returns true if an occasion was chosen
func (r *BookingRequest) HasOccasion() bool {
	return r.Occasion != ""
}

// BookingRecord is a confirmed booking as returned by the booking API and persisted for the confirmation page
type BookingRecord struct {
	BookingRequest

	BookingID          string // "BK1705312345678"
	ConfirmationNumber string // "K3J9X2QA"
	Status             BookingStatus
	CreatedAt          time.Time
}

// IsConfirmed returns true if the booking is confirmed
func (b *BookingRecord) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// ConfirmationPath returns the route of the confirmation page for this booking
func (b *BookingRecord) ConfirmationPath() string {
	return ConfirmationPathPrefix + b.ConfirmationNumber
}

// TimeSlot is a bookable half-hour start time with its availability flag
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}

// AvailabilityResult is the outcome of one availability query.
// Results are not cached; two queries for the same date may differ.
type AvailabilityResult struct {
	Date             string
	DayKind          DayKind
	AvailableTimes   []TimeSlot
	UnavailableTimes []TimeSlot
}

// Times returns the "HH:MM" labels of the available slots
func (a *AvailabilityResult) Times() []string {
	return SlotTimes(a.AvailableTimes)
}

// SlotTimes returns the "HH:MM" labels of slots in order
func SlotTimes(slots []TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time.String()
	}
	return out
}

// ContainsTime reports whether slots has a slot labelled t
func ContainsTime(slots []TimeSlot, t string) bool {
	for _, s := range slots {
		if s.Time.String() == t {
			return true
		}
	}
	return false
}
