package submit_booking

import (
	"fmt"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/internal/bookingform"
	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
	"github.com/CsIsLab17/smart-lab-booking/internal/slots"
)

// draftFromRequest rebuilds the form draft so the server runs the same
// validator the form ran. Touched is set so a failure is reported as a
// failure, not a neutral prompt.
func draftFromRequest(req *Request) bookingform.Draft {
	draft := bookingform.NewDraft()
	draft.Name = req.Name
	draft.StudentID = req.StudentID
	draft.Email = req.Email
	draft.Date = req.Date
	draft.StartClock = req.StartTime
	draft.EndClock = req.EndTime
	draft.Purpose = req.Purpose
	draft.OtherPurpose = req.OtherPurpose
	if req.Headcount != "" {
		draft.Headcount = req.Headcount
	}
	draft.Touched = true
	return draft
}

// validateRequest parses the date and runs the shared form validator
// against the schedule already loaded inside the transaction.
func validateRequest(req *Request, intervals []domain.BookedInterval, now time.Time) error {
	if req.Date == "" {
		return fmt.Errorf("%w: %s", ErrValidation, "Please fill all required fields.")
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, "Error: Invalid booking date.")
	}

	opts := slots.Compute(slots.DefaultGrid(), intervals, now, req.Date)
	verdict := bookingform.Validate(draftFromRequest(req), bookingform.LabBookingWithHeadcount(), opts, bookingform.State{}, now)
	if !verdict.Submittable {
		return fmt.Errorf("%w: %s", ErrValidation, verdict.Message)
	}
	return nil
}

// resolvePurpose swaps the "Other" sentinel for its free-text value.
func resolvePurpose(purpose, otherPurpose string) string {
	if purpose == domain.PurposeOther {
		return otherPurpose
	}
	return purpose
}
