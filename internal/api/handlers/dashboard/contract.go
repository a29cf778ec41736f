package dashboard

import (
	"context"

	dashboardService "github.com/CsIsLab17/smart-lab-booking/internal/service/dashboard"
	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

// DashboardService interface over the read-side service.
type DashboardService interface {
	BookingFeed(ctx context.Context) ([]domain.LabBooking, error)
	LoanFeed(ctx context.Context) ([]domain.EquipmentLoan, error)
	Summarize(ctx context.Context) (*dashboardService.Summary, error)
}

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
