// Package bookingform holds the in-progress booking draft and the unified
// validation state machine shared by the lab, headcount and equipment-loan
// form variants.
package bookingform

import "github.com/CsIsLab17/smart-lab-booking/internal/domain"

// Field identifies a draft field for required-field configuration.
type Field string

const (
	FieldName         Field = "name"
	FieldStudentID    Field = "studentId"
	FieldEmail        Field = "email"
	FieldDate         Field = "date"
	FieldStartTime    Field = "startTime"
	FieldEndTime      Field = "endTime"
	FieldPurpose      Field = "purpose"
	FieldOtherPurpose Field = "otherPurpose"
	FieldHeadcount    Field = "headcount"
	FieldWANumber     Field = "waNumber"
	FieldPickupAt     Field = "pickupAt"
	FieldReturnAt     Field = "returnAt"
)

// Config parameterizes the validator per form variant instead of keeping a
// near-duplicate validator per page.
type Config struct {
	Required           []Field
	RequireHeadcount   bool
	EquipmentChecks    bool
	DurationCapMinutes int
}

// LabBooking is the plain room-booking form.
func LabBooking() Config {
	return Config{
		Required: []Field{
			FieldName, FieldStudentID, FieldEmail,
			FieldDate, FieldStartTime, FieldEndTime, FieldPurpose,
		},
		DurationCapMinutes: domain.MaxBookingDurationMinutes,
	}
}

// LabBookingWithHeadcount is the room-booking form that also asks how many
// people will attend.
func LabBookingWithHeadcount() Config {
	cfg := LabBooking()
	cfg.Required = append(cfg.Required, FieldHeadcount)
	cfg.RequireHeadcount = true
	return cfg
}

// EquipmentLoan is the borrowing form: contact details, a pickup/return
// window and per-item quantities checked against live stock.
func EquipmentLoan() Config {
	return Config{
		Required: []Field{
			FieldEmail, FieldWANumber, FieldPickupAt, FieldReturnAt,
		},
		EquipmentChecks: true,
	}
}
