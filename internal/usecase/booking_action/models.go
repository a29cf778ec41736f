package booking_action

// Action is one of the workflow transitions reachable from an email or
// QR code link.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionCheckIn  Action = "checkin"
	ActionCheckOut Action = "checkout"
)

// Request identifies the transition and the target record.
type Request struct {
	Action Action
	Ref    string
}

// Response carries the confirmation text for the HTML fragment shown to
// whoever clicked the link.
type Response struct {
	Title   string
	Message string
}
