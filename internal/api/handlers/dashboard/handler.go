package dashboard

import (
	"net/http"

	"github.com/CsIsLab17/smart-lab-booking/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleBookings GET /api/getDashboardData
func (h *Handler) HandleBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.BookingFeed(r.Context())
	if err != nil {
		h.logger.Error("GET /api/getDashboardData - internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondData(w, toBookingResponses(bookings))
}

// HandleLoans GET /api/getEquipmentDashboardData
func (h *Handler) HandleLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.service.LoanFeed(r.Context())
	if err != nil {
		h.logger.Error("GET /api/getEquipmentDashboardData - internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondData(w, toLoanResponses(loans))
}

// HandleSummary GET /api/getDashboardSummary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize(r.Context())
	if err != nil {
		h.logger.Error("GET /api/getDashboardSummary - internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondData(w, toSummaryResponse(summary))
}
