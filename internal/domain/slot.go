package domain

// SlotRole distinguishes the two dropdowns a grid point can serve.
type SlotRole string

const (
	RoleStart SlotRole = "start"
	RoleEnd   SlotRole = "end"
)

// DisabledReason explains why a slot option cannot be selected. It is
// display-only: the enabled flag is authoritative.
type DisabledReason string

const (
	ReasonNone   DisabledReason = ""
	ReasonBooked DisabledReason = "Booked"
	ReasonPassed DisabledReason = "Passed"
)

// SlotOption is one selectable (or greyed-out) entry of a time dropdown.
// Derived state: recomputed on every schedule or clock change, never stored.
type SlotOption struct {
	Time    int // minutes since midnight
	Role    SlotRole
	Enabled bool
	Reason  DisabledReason
}

// Clock returns the option's "HH:MM" label.
func (o SlotOption) Clock() string {
	return MinutesToClock(o.Time)
}
