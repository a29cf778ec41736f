package submit_booking

import (
	"net/http"

	submitBooking "github.com/CsIsLab17/smart-lab-booking/internal/usecase/submit_booking"
)

// ToUseCaseRequest maps the posted form fields onto the use case request.
// Values stay raw strings; the use case runs the form validator on them.
func ToUseCaseRequest(r *http.Request, autoApprove bool) *submitBooking.Request {
	return &submitBooking.Request{
		Name:         r.PostFormValue("name"),
		StudentID:    r.PostFormValue("studentId"),
		Email:        r.PostFormValue("email"),
		Date:         r.PostFormValue("date"),
		StartTime:    r.PostFormValue("startTime"),
		EndTime:      r.PostFormValue("endTime"),
		Purpose:      r.PostFormValue("purpose"),
		OtherPurpose: r.PostFormValue("otherPurpose"),
		Headcount:    r.PostFormValue("headcount"),
		AutoApprove:  autoApprove,
	}
}
