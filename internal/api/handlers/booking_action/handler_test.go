package booking_action

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingAction "github.com/CsIsLab17/smart-lab-booking/internal/usecase/booking_action"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	req  *bookingAction.Request
	resp *bookingAction.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *bookingAction.Request) (*bookingAction.Response, error) {
	s.req = req
	return s.resp, s.err
}

func TestHandleApprove_Success(t *testing.T) {
	uc := &stubUseCase{resp: &bookingAction.Response{
		Title:   "Approved",
		Message: "Booking approved. The requester has been emailed a check-in QR code.",
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/approve?id=ref-1", nil)
	rec := httptest.NewRecorder()
	h.HandleApprove(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h1>Approved</h1>")
	assert.Contains(t, rec.Body.String(), "<p>Booking approved. The requester has been emailed a check-in QR code.</p>")
	require.NotNil(t, uc.req)
	assert.Equal(t, bookingAction.ActionApprove, uc.req.Action)
	assert.Equal(t, "ref-1", uc.req.Ref)
}

func TestHandle_MissingRef(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/checkin", nil)
	rec := httptest.NewRecorder()
	h.HandleCheckIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing booking reference.")
	assert.Nil(t, uc.req)
}

func TestHandle_NotFound(t *testing.T) {
	uc := &stubUseCase{err: bookingAction.ErrNotFound}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/reject?id=nope", nil)
	rec := httptest.NewRecorder()
	h.HandleReject(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking not found.")
}

func TestHandle_AlreadyProcessed(t *testing.T) {
	uc := &stubUseCase{err: bookingAction.ErrAlreadyProcessed}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/checkout?id=ref-1", nil)
	rec := httptest.NewRecorder()
	h.HandleCheckOut(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "This booking has already been processed.")
}
