package submit_equipment_booking

// Request raw form values of an equipment loan submission.
type Request struct {
	Email    string
	WANumber string
	PickupAt string // datetime-local
	ReturnAt string
	Items    map[string]int

	// AutoApprove marks admin direct loans, stored approved immediately.
	AutoApprove bool
}

// Response the outcome of a successful submission.
type Response struct {
	Ref     string
	Message string
}
