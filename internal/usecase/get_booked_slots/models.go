package get_booked_slots

// Request input parameters for the booked slots lookup.
type Request struct {
	Date string // YYYY-MM-DD
}

// BookedSlot one occupied interval on the requested date.
type BookedSlot struct {
	StartTime string
	EndTime   string
}

// Response the occupied intervals for the requested date.
type Response struct {
	Slots []BookedSlot
}
