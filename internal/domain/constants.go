package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot grid
const (
	SlotStepMinutes = 30
)

// Mock API behaviour
const (
	// UnavailabilityThreshold: a base-available slot stays available only if a uniform draw exceeds it
	UnavailabilityThreshold = 0.1

	AvailabilityLatency = 500 * time.Millisecond
	SlotCheckLatency    = 200 * time.Millisecond
	SubmitLatency       = 1000 * time.Millisecond
)

// Booking validation constants
const (
	MinGuests = 1
	MaxGuests = 10

	BookingIDPrefix          = "BK"
	ConfirmationNumberLength = 8
	ConfirmationAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Routes
const (
	HomePath               = "/"
	BookingsPath           = "/bookings"
	ConfirmationPathPrefix = "/confirmation/"
	NotFoundPath           = "/404"
)

// Occasions offered by the booking form. Values are stored verbatim.
var Occasions = []string{"Birthday", "engagement", "Anniversary"}
