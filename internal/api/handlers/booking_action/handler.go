package booking_action

import (
	"errors"
	"net/http"

	"github.com/CsIsLab17/smart-lab-booking/internal/api/handlers"
	bookingAction "github.com/CsIsLab17/smart-lab-booking/internal/usecase/booking_action"
)

const (
	msgNotFound         = "Booking not found."
	msgAlreadyProcessed = "This booking has already been processed."
	msgMissingRef       = "Missing booking reference."
	msgInternal         = "Something went wrong. Please try again."
)

type Handler struct {
	useCase BookingActionUseCase
	logger  Logger
}

func NewHandler(useCase BookingActionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleApprove GET /approve?id=<ref>
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, bookingAction.ActionApprove)
}

// HandleReject GET /reject?id=<ref>
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, bookingAction.ActionReject)
}

// HandleCheckIn GET /checkin?id=<ref>
func (h *Handler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, bookingAction.ActionCheckIn)
}

// HandleCheckOut GET /checkout?id=<ref>
func (h *Handler) HandleCheckOut(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, bookingAction.ActionCheckOut)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, action bookingAction.Action) {
	ref := r.URL.Query().Get("id")
	if ref == "" {
		handlers.RespondFragment(w, http.StatusBadRequest, "Invalid Link", msgMissingRef)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookingAction.Request{Action: action, Ref: ref})
	if err != nil {
		switch {
		case errors.Is(err, bookingAction.ErrNotFound):
			h.logger.Warn("GET /%s - unknown ref=%s", action, ref)
			handlers.RespondFragment(w, http.StatusNotFound, "Not Found", msgNotFound)

		case errors.Is(err, bookingAction.ErrAlreadyProcessed):
			h.logger.Warn("GET /%s - already processed ref=%s", action, ref)
			handlers.RespondFragment(w, http.StatusConflict, "Already Processed", msgAlreadyProcessed)

		default:
			h.logger.Error("GET /%s - internal error for ref=%s: %v", action, ref, err)
			handlers.RespondFragment(w, http.StatusInternalServerError, "Error", msgInternal)
		}
		return
	}

	handlers.RespondFragment(w, http.StatusOK, result.Title, result.Message)
}
