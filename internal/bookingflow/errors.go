package bookingflow

import "errors"

var (
	// ErrNotSubmittable is returned by Submit when the current verdict
	// blocks submission.
	ErrNotSubmittable = errors.New("bookingflow: form is not submittable")
)
