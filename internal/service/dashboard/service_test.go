package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubBookings struct {
	bookings []domain.LabBooking
}

func (r *stubBookings) List(context.Context, domain.ScheduleFilter) ([]domain.LabBooking, error) {
	return r.bookings, nil
}

type stubLoans struct{}

func (stubLoans) ListLoans(context.Context, bool) ([]domain.EquipmentLoan, error) {
	return nil, nil
}

// Tuesday 2026-03-10, 10:15 local.
var testNow = time.Date(2026, 3, 10, 10, 15, 0, 0, time.UTC)

func newService(bookings []domain.LabBooking) *Service {
	svc := NewService(&stubBookings{bookings: bookings}, stubLoans{}, nopLogger{})
	return svc.WithTimeProvider(fixedClock{t: testNow})
}

func TestSummarize_CurrentUsage(t *testing.T) {
	svc := newService([]domain.LabBooking{
		{Name: "Budi", BookingDate: testNow, StartTime: "10:00", EndTime: "11:00",
			Purpose: "Thesis Project", Status: domain.StatusCheckedIn},
	})

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.InUseNow)
	require.NotNil(t, summary.CurrentBooking)
	assert.Equal(t, "Budi", summary.CurrentBooking.Name)
}

func TestSummarize_ApprovedButNotCheckedInIsNotInUse(t *testing.T) {
	svc := newService([]domain.LabBooking{
		{BookingDate: testNow, StartTime: "10:00", EndTime: "11:00",
			Purpose: "Thesis Project", Status: domain.StatusApproved},
	})

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.False(t, summary.InUseNow)
}

func TestSummarize_ChartsSkipRejected(t *testing.T) {
	svc := newService([]domain.LabBooking{
		{BookingDate: testNow, StartTime: "09:00", EndTime: "10:00", Purpose: "Thesis Project", Status: domain.StatusApproved},
		{BookingDate: testNow, StartTime: "13:00", EndTime: "14:00", Purpose: "Class Project", Status: domain.StatusRejected},
	})

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Thesis Project": 1}, summary.PurposeCounts)
	assert.Equal(t, 1, summary.WeekdayCounts[int(time.Tuesday)])
}

func TestSummarize_HourlyCountsSpanTheBooking(t *testing.T) {
	svc := newService([]domain.LabBooking{
		{BookingDate: testNow, StartTime: "09:30", EndTime: "11:30", Purpose: "Thesis Project", Status: domain.StatusApproved},
	})

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	// 09:30-11:30 touches hours 9, 10 and 11.
	assert.Equal(t, map[int]int{9: 1, 10: 1, 11: 1}, summary.HourlyCounts)
}

func TestSummarize_RecentCompletedCapped(t *testing.T) {
	var bookings []domain.LabBooking
	for i := 0; i < 15; i++ {
		bookings = append(bookings, domain.LabBooking{
			BookingDate: testNow, StartTime: "09:00", EndTime: "10:00",
			Purpose: "Thesis Project", Status: domain.StatusCompleted,
		})
	}
	svc := newService(bookings)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.RecentCompleted, 10)
}
