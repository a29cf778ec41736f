package domain

// Lab operating window. The booking grid runs from opening to closing time
// at a fixed step; both ends are expressed in minutes since midnight.
const (
	LabOpenMinutes  = 8 * 60  // 08:00
	LabCloseMinutes = 17 * 60 // 17:00
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MaxBookingDurationMinutes = 120 // 2 hour cap per booking
	MinHeadcount              = 1
	MinPickupNoticeHours      = 24 // equipment pickup lead time
)

// PurposeOther is the sentinel purpose that requires a free-text
// justification alongside it.
const PurposeOther = "Other"

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // datetime-local, used by loans
)

// ActiveStatuses are the statuses that occupy a slot (or hold stock) and
// therefore count in conflict and availability checks.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusCheckedIn,
}