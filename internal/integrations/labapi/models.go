package labapi

import "encoding/json"

// BookedSlot is one occupied interval on the schedule, clock strings in
// HH:MM form.
type BookedSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BookingSubmission is the form payload for a lab booking.
type BookingSubmission struct {
	Name         string
	StudentID    string
	Email        string
	Date         string
	StartTime    string
	EndTime      string
	Purpose      string
	OtherPurpose string
	Headcount    string
}

// LoanSubmission is the form payload for an equipment loan. Items is
// serialized into the itemsBorrowed JSON field.
type LoanSubmission struct {
	Email    string
	WANumber string
	PickupAt string
	ReturnAt string
	Items    map[string]int
}

// StatusResponse is the common JSON envelope for submit endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// dataEnvelope is the common JSON envelope on read endpoints; Data is
// decoded a second time into the call-specific shape.
type dataEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DashboardBooking is one row of the lab dashboard feed.
type DashboardBooking struct {
	Name        string `json:"name"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Purpose     string `json:"purpose"`
	Status      string `json:"status"`
}

// DashboardLoan is one row of the equipment dashboard feed.
type DashboardLoan struct {
	Email    string         `json:"email"`
	WANumber string         `json:"waNumber"`
	PickupAt string         `json:"pickupAt"`
	ReturnAt string         `json:"returnAt"`
	Items    map[string]int `json:"items"`
	Status   string         `json:"status"`
}
