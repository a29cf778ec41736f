package submit_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CsIsLab17/smart-lab-booking/internal/api/handlers"
	submitBooking "github.com/CsIsLab17/smart-lab-booking/internal/usecase/submit_booking"
)

const (
	msgInvalidForm = "invalid form body"
	msgSlotTaken   = "This slot is already taken."
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/submitBooking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, false)
}

// HandleAdmin POST /api/admin_lab_booking
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, true)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, autoApprove bool) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST submitBooking - invalid form body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	req := ToUseCaseRequest(r, autoApprove)

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSlotTaken):
			h.logger.Warn("POST submitBooking - slot taken: date=%s time=%s-%s", req.Date, req.StartTime, req.EndTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, submitBooking.ErrValidation):
			h.logger.Warn("POST submitBooking - validation failed: %v", err)
			handlers.RespondBadRequest(w, userMessage(err, submitBooking.ErrValidation))

		default:
			h.logger.Error("POST submitBooking - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondSuccess(w, result.Message)
}

// userMessage strips the sentinel prefix so only the form-facing message
// goes over the wire.
func userMessage(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
