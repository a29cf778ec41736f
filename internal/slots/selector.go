package slots

import (
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// Options holds the computed state of both time dropdowns for one
// (date, schedule, now) combination.
type Options struct {
	Start []domain.SlotOption
	End   []domain.SlotOption
}

// Compute derives the enabled/disabled state of every start and end
// candidate. Pure: identical inputs always produce identical output.
//
// A start candidate t is blocked by a booking when start <= t < end, an
// end candidate when start < t <= end. The asymmetry is deliberate: it
// keeps adjacent bookings from sharing a boundary minute while still
// allowing an end that lands exactly on the next booking's start.
// On the selected date being today, the clock is floored to the grid
// step for the start role, so the half-open slot in progress stays
// startable (at 14:37 the 14:30 start is still offered). End candidates
// at or before the raw current minute are marked passed.
// A booked label wins over a passed one; the enabled flag is the union
// of both conditions either way.
func Compute(grid Grid, intervals []domain.BookedInterval, now time.Time, selectedDate string) Options {
	isToday := selectedDate == now.Format(domain.DateFormat)
	nowMinutes := now.Hour()*60 + now.Minute()

	startCutoff := nowMinutes
	if startCutoff > grid.Open {
		startCutoff -= (startCutoff - grid.Open) % grid.Step
	}

	startCandidates := grid.StartCandidates()
	endCandidates := grid.EndCandidates()

	opts := Options{
		Start: make([]domain.SlotOption, 0, len(startCandidates)),
		End:   make([]domain.SlotOption, 0, len(endCandidates)),
	}

	for _, t := range startCandidates {
		booked := false
		for _, iv := range intervals {
			if iv.BlocksStart(t) {
				booked = true
				break
			}
		}
		passed := isToday && t < startCutoff
		opts.Start = append(opts.Start, option(t, domain.RoleStart, booked, passed))
	}

	for _, t := range endCandidates {
		booked := false
		for _, iv := range intervals {
			if iv.BlocksEnd(t) {
				booked = true
				break
			}
		}
		passed := isToday && t <= nowMinutes
		opts.End = append(opts.End, option(t, domain.RoleEnd, booked, passed))
	}

	return opts
}

func option(t int, role domain.SlotRole, booked, passed bool) domain.SlotOption {
	o := domain.SlotOption{
		Time:    t,
		Role:    role,
		Enabled: !booked && !passed,
	}
	switch {
	case booked:
		o.Reason = domain.ReasonBooked
	case passed:
		o.Reason = domain.ReasonPassed
	}
	return o
}

// StartEnabled reports whether minute t is a currently selectable start.
// A stale selection that is no longer enabled must be treated as
// unselected by validation.
func (o Options) StartEnabled(t int) bool {
	return enabled(o.Start, t)
}

// EndEnabled reports whether minute t is a currently selectable end.
func (o Options) EndEnabled(t int) bool {
	return enabled(o.End, t)
}

func enabled(opts []domain.SlotOption, t int) bool {
	for _, o := range opts {
		if o.Time == t {
			return o.Enabled
		}
	}
	return false
}
