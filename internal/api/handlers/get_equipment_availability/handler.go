package get_equipment_availability

import (
	"errors"
	"net/http"

	"github.com/CsIsLab17/smart-lab-booking/internal/api/handlers"
	getAvailability "github.com/CsIsLab17/smart-lab-booking/internal/usecase/get_equipment_availability"
)

const (
	msgInvalidRange = "invalid pickup/return range, expected YYYY-MM-DDTHH:MM"
)

type Handler struct {
	useCase GetEquipmentAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetEquipmentAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/getEquipmentAvailability?pickup=...&return=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailability.Request{
		PickupAt: r.URL.Query().Get("pickup"),
		ReturnAt: r.URL.Query().Get("return"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidRange):
			h.logger.Warn("GET /api/getEquipmentAvailability - invalid range pickup=%q return=%q", req.PickupAt, req.ReturnAt)
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("GET /api/getEquipmentAvailability - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, result.Stock)
}
