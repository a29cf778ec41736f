package get_booked_slots

import (
	"errors"
	"net/http"

	"github.com/CsIsLab17/smart-lab-booking/internal/api/handlers"
	getBookedSlots "github.com/CsIsLab17/smart-lab-booking/internal/usecase/get_booked_slots"
)

const (
	msgInvalidDate = "invalid or missing date, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetBookedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/getBookedSlots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getBookedSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getBookedSlots.ErrInvalidDate):
			h.logger.Warn("GET /api/getBookedSlots - invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /api/getBookedSlots - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, FromUseCaseResponse(result))
}
