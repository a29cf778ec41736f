package get_booked_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getBookedSlots "github.com/CsIsLab17/smart-lab-booking/internal/usecase/get_booked_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *getBookedSlots.Response
	err  error
}

func (s *stubUseCase) Execute(context.Context, *getBookedSlots.Request) (*getBookedSlots.Response, error) {
	return s.resp, s.err
}

func TestHandle_WrapsSlotsInEnvelope(t *testing.T) {
	uc := &stubUseCase{resp: &getBookedSlots.Response{Slots: []getBookedSlots.BookedSlot{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "13:30", EndTime: "14:00"},
	}}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/getBookedSlots?date=2026-03-10", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   []struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "09:00", body.Data[0].Start)
	assert.Equal(t, "10:00", body.Data[0].End)
	assert.Equal(t, "13:30", body.Data[1].Start)
}

func TestHandle_EmptyScheduleKeepsEnvelope(t *testing.T) {
	uc := &stubUseCase{resp: &getBookedSlots.Response{Slots: []getBookedSlots.BookedSlot{}}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/getBookedSlots?date=2026-03-10", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","data":[]}`, rec.Body.String())
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &stubUseCase{err: getBookedSlots.ErrInvalidDate}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/getBookedSlots?date=garbage", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"invalid or missing date, expected YYYY-MM-DD"}`, rec.Body.String())
}
