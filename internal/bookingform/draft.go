package bookingform

import "strings"

// Draft is the user's in-progress form state. Created empty on page load,
// mutated field by field, cleared wholesale on a confirmed submission.
// All values are kept in their raw string form; interpretation happens in
// Validate so a half-typed value never produces an error state prematurely.
type Draft struct {
	Name      string
	StudentID string
	Email     string

	Date       string // YYYY-MM-DD
	StartClock string // "HH:MM", empty = unchosen
	EndClock   string

	Purpose      string
	OtherPurpose string
	Headcount    string

	WANumber string
	PickupAt string // datetime-local, equipment variant
	ReturnAt string

	Quantities map[string]int

	// Touched flips once the user starts filling the form; before that the
	// verdict stays neutral rather than shouting about empty fields.
	Touched bool
}

// NewDraft returns an empty draft with the headcount default applied.
func NewDraft() Draft {
	return Draft{Headcount: "1", Quantities: map[string]int{}}
}

// Reset clears the draft back to its initial state after a confirmed
// successful submission.
func (d *Draft) Reset() {
	*d = NewDraft()
}

// TotalQuantity sums the requested equipment quantities.
func (d *Draft) TotalQuantity() int {
	total := 0
	for _, q := range d.Quantities {
		total += q
	}
	return total
}

// SetField writes a raw value into the named field and marks the draft
// touched. Unknown fields are ignored.
func (d *Draft) SetField(f Field, value string) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldStudentID:
		d.StudentID = value
	case FieldEmail:
		d.Email = value
	case FieldDate:
		d.Date = value
	case FieldStartTime:
		d.StartClock = value
	case FieldEndTime:
		d.EndClock = value
	case FieldPurpose:
		d.Purpose = value
	case FieldOtherPurpose:
		d.OtherPurpose = value
	case FieldHeadcount:
		d.Headcount = value
	case FieldWANumber:
		d.WANumber = value
	case FieldPickupAt:
		d.PickupAt = value
	case FieldReturnAt:
		d.ReturnAt = value
	default:
		return
	}
	d.Touched = true
}

func (d *Draft) fieldValue(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldStudentID:
		return d.StudentID
	case FieldEmail:
		return d.Email
	case FieldDate:
		return d.Date
	case FieldStartTime:
		return d.StartClock
	case FieldEndTime:
		return d.EndClock
	case FieldPurpose:
		return d.Purpose
	case FieldOtherPurpose:
		return d.OtherPurpose
	case FieldHeadcount:
		return d.Headcount
	case FieldWANumber:
		return d.WANumber
	case FieldPickupAt:
		return d.PickupAt
	case FieldReturnAt:
		return d.ReturnAt
	default:
		return ""
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
