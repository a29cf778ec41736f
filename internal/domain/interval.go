package domain

import "github.com/CsIsLab17/smart-lab-booking/pkg/types"

// ClockToMinutes converts an "HH:MM" string to minutes since midnight.
// Malformed or empty input maps to 0: at form boundaries a blank select
// option is ordinary state, not an error.
func ClockToMinutes(clock string) int {
	return types.TimeString(clock).MinutesLenient()
}

// MinutesToClock formats minutes since midnight as "HH:MM".
func MinutesToClock(m int) string {
	return types.NewTimeStringFromMinutes(m).String()
}

// BookedInterval is an already-booked span on a single day, in minutes
// since midnight, with Start < End.
type BookedInterval struct {
	Start int
	End   int
}

// BlocksStart reports whether a booking placed to start at minute t would
// begin inside this interval. The interval's own start minute is blocked.
func (iv BookedInterval) BlocksStart(t int) bool {
	return t >= iv.Start && t < iv.End
}

// BlocksEnd reports whether a booking ending at minute t would end inside
// this interval. The interval's own end minute is blocked too, so
// back-to-back bookings never touch at the boundary minute; an end exactly
// at the interval's start remains allowed.
func (iv BookedInterval) BlocksEnd(t int) bool {
	return t > iv.Start && t <= iv.End
}

// Overlaps reports whether the half-open span [start, end) genuinely
// overlaps this interval. Spans that only touch at a boundary do not
// overlap; this is the server-side conflict rule for new submissions.
func (iv BookedInterval) Overlaps(start, end int) bool {
	return start < iv.End && iv.Start < end
}
