package submit_equipment_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CsIsLab17/smart-lab-booking/internal/api/handlers"
	submitLoan "github.com/CsIsLab17/smart-lab-booking/internal/usecase/submit_equipment_booking"
)

const (
	msgInvalidForm   = "invalid form body"
	msgStockConflict = "Requested items are no longer available for these dates."
)

type Handler struct {
	useCase SubmitEquipmentBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitEquipmentBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/submitEquipmentBooking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, false)
}

// HandleAdmin POST /api/admin_equipment_booking
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, true)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, autoApprove bool) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST submitEquipmentBooking - invalid form body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	req, err := ToUseCaseRequest(r, autoApprove)
	if err != nil {
		h.logger.Warn("POST submitEquipmentBooking - bad items payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, submitLoan.ErrInsufficientStock):
			h.logger.Warn("POST submitEquipmentBooking - stock conflict: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgStockConflict)

		case errors.Is(err, submitLoan.ErrValidation):
			h.logger.Warn("POST submitEquipmentBooking - validation failed: %v", err)
			handlers.RespondBadRequest(w, userMessage(err, submitLoan.ErrValidation))

		default:
			h.logger.Error("POST submitEquipmentBooking - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondSuccess(w, result.Message)
}

func userMessage(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
