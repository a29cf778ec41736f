package domain

import (
	"time"

	"github.com/CsIsLab17/smart-lab-booking/pkg/types"
)

// BookingStatus represents where a booking sits in the approval workflow.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCheckedIn BookingStatus = "checked_in"
	StatusCompleted BookingStatus = "completed"
)

// LabBooking represents a single lab room booking.
type LabBooking struct {
	ID  int64
	Ref string // public UUID reference, carried in approval and check-in links

	Name      string
	StudentID string
	Email     string

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	Purpose   string
	Headcount int
	Status    BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking still occupies its time slot.
func (b *LabBooking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved || b.Status == StatusCheckedIn
}

// CanBeDecided reports whether approve/reject is still a valid transition.
func (b *LabBooking) CanBeDecided() bool {
	return b.Status == StatusPending
}

// CanCheckIn reports whether the booking may transition to checked_in.
func (b *LabBooking) CanCheckIn() bool {
	return b.Status == StatusApproved
}

// CanCheckOut reports whether the booking may transition to completed.
func (b *LabBooking) CanCheckOut() bool {
	return b.Status == StatusCheckedIn
}

// Interval returns the booking's occupied span in minutes since midnight.
func (b *LabBooking) Interval() BookedInterval {
	return BookedInterval{
		Start: b.StartTime.MinutesLenient(),
		End:   b.EndTime.MinutesLenient(),
	}
}

// ScheduleFilter narrows booking lookups.
type ScheduleFilter struct {
	Date            *time.Time     // bookings on this calendar date
	Status          *BookingStatus // exact status match
	IncludeInactive bool           // include rejected and completed bookings
}
