package submit_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submitBooking "github.com/CsIsLab17/smart-lab-booking/internal/usecase/submit_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	req  *submitBooking.Request
	resp *submitBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	s.req = req
	return s.resp, s.err
}

func postForm(t *testing.T, handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/submitBooking", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"name":      {"Budi Santoso"},
		"studentId": {"20231234"},
		"email":     {"budi@my.sampoernauniversity.ac.id"},
		"date":      {"2026-03-10"},
		"startTime": {"10:00"},
		"endTime":   {"11:00"},
		"purpose":   {"Thesis Project"},
		"headcount": {"2"},
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &submitBooking.Response{Ref: "ref-1", Message: "Booking submitted for approval."}}
	h := NewHandler(uc, nopLogger{})

	rec := postForm(t, h.Handle, validForm())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Booking submitted for approval."}`, rec.Body.String())
	require.NotNil(t, uc.req)
	assert.Equal(t, "Budi Santoso", uc.req.Name)
	assert.False(t, uc.req.AutoApprove)
}

func TestHandle_SlotTaken(t *testing.T) {
	uc := &stubUseCase{err: submitBooking.ErrSlotTaken}
	h := NewHandler(uc, nopLogger{})

	rec := postForm(t, h.Handle, validForm())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"This slot is already taken."}`, rec.Body.String())
}

func TestHandle_ValidationMessagePassedThrough(t *testing.T) {
	uc := &stubUseCase{err: fmt.Errorf("%w: %s", submitBooking.ErrValidation, "Error: Maximum booking duration is 2 hours.")}
	h := NewHandler(uc, nopLogger{})

	rec := postForm(t, h.Handle, validForm())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Error: Maximum booking duration is 2 hours."}`, rec.Body.String())
}

func TestHandleAdmin_SetsAutoApprove(t *testing.T) {
	uc := &stubUseCase{resp: &submitBooking.Response{Ref: "ref-1", Message: "Booking created."}}
	h := NewHandler(uc, nopLogger{})

	rec := postForm(t, h.HandleAdmin, validForm())

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.req)
	assert.True(t, uc.req.AutoApprove)
}
