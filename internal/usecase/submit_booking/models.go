package submit_booking

// Request raw form values of a booking submission. Values stay strings
// until validation so the verdict messages match what the form shows.
type Request struct {
	Name         string
	StudentID    string
	Email        string
	Date         string
	StartTime    string
	EndTime      string
	Purpose      string
	OtherPurpose string
	Headcount    string

	// AutoApprove marks admin direct bookings, which skip the approval
	// workflow and are stored approved immediately.
	AutoApprove bool
}

// Response the outcome of a successful submission.
type Response struct {
	Ref     string
	Message string
}
