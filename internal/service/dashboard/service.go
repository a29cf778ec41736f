package dashboard

import (
	"context"
	"fmt"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// maxRecentCompleted caps the recent-history list on the dashboard.
const maxRecentCompleted = 10

// Summary is the aggregated view the dashboard renders: whether the lab
// is occupied right now, distribution counts for the charts, and the
// recent completed sessions.
type Summary struct {
	InUseNow       bool
	CurrentBooking *domain.LabBooking

	PurposeCounts map[string]int
	WeekdayCounts [7]int // Sunday = 0
	HourlyCounts  map[int]int

	RecentCompleted []domain.LabBooking
}

// Service read-side feeds for the polling dashboards.
type Service struct {
	bookingRepo   BookingRepository
	equipmentRepo EquipmentRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService creates the dashboard service.
func NewService(bookings BookingRepository, equipment EquipmentRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:   bookings,
		equipmentRepo: equipment,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider overrides the clock, used by tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// BookingFeed returns all bookings newest first, inactive included so
// history stays visible.
func (s *Service) BookingFeed(ctx context.Context) ([]domain.LabBooking, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.ScheduleFilter{IncludeInactive: true})
	if err != nil {
		s.logger.Error("Dashboard: failed to list bookings: %v", err)
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// LoanFeed returns all equipment loans newest first, inactive included.
func (s *Service) LoanFeed(ctx context.Context) ([]domain.EquipmentLoan, error) {
	loans, err := s.equipmentRepo.ListLoans(ctx, true)
	if err != nil {
		s.logger.Error("Dashboard: failed to list loans: %v", err)
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

// Summarize aggregates the booking feed into the dashboard view.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	bookings, err := s.BookingFeed(ctx)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	nowMinutes := now.Hour()*60 + now.Minute()
	today := now.Format(domain.DateFormat)

	summary := &Summary{
		PurposeCounts: make(map[string]int),
		HourlyCounts:  make(map[int]int),
	}

	for i := range bookings {
		b := &bookings[i]

		if b.Status == domain.StatusCompleted && len(summary.RecentCompleted) < maxRecentCompleted {
			summary.RecentCompleted = append(summary.RecentCompleted, *b)
		}
		if !b.IsActive() && b.Status != domain.StatusCompleted {
			// Rejected bookings never happened; keep them out of the
			// usage charts.
			continue
		}

		summary.PurposeCounts[b.Purpose]++
		summary.WeekdayCounts[int(b.BookingDate.Weekday())]++

		// Every hour the booking touches counts toward the peak chart.
		iv := b.Interval()
		for h := iv.Start / 60; h*60 < iv.End; h++ {
			summary.HourlyCounts[h]++
		}

		// The lab is in use when a checked-in booking covers this moment.
		if b.Status == domain.StatusCheckedIn &&
			b.BookingDate.Format(domain.DateFormat) == today &&
			iv.Start <= nowMinutes && nowMinutes < iv.End {
			summary.InUseNow = true
			summary.CurrentBooking = b
		}
	}

	return summary, nil
}
