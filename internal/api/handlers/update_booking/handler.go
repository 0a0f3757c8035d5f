package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers"
	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	updateBooking "github.com/MarkDidenkoHT/mesto-sili-booking/internal/usecase/update_booking"
)

const codeNotFound = "not_found"

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Invalid booking id %q", vars["bookingId"])
		handlers.RespondNotFound(w, codeNotFound)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, domain.CodeMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /admin/bookings/{id} - Invalid booking date: %v", err)
		handlers.RespondFieldError(w, http.StatusBadRequest, domain.CodeMissingFields, "bookingDate")
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /admin/bookings/{id} - Booking id=%d not found", id)
			handlers.RespondNotFound(w, codeNotFound)

		case errors.Is(err, updateBooking.ErrNoFieldsToUpdate):
			h.logger.Warn("PUT /admin/bookings/{id} - Empty update for booking id=%d", id)
			handlers.RespondBadRequest(w, domain.CodeMissingFields)

		case errors.Is(err, domain.ErrTimeConflict):
			h.logger.Warn("PUT /admin/bookings/{id} - Time conflict for booking id=%d", id)
			handlers.RespondConflict(w, domain.CodeTimeConflict)

		case errors.Is(err, updateBooking.ErrInternal):
			h.logger.Error("PUT /admin/bookings/{id} - Failed to update booking id=%d: %v", id, err)
			handlers.RespondInternalError(w)

		default:
			if code, field, ok := domain.ErrorCode(err); ok {
				h.logger.Warn("PUT /admin/bookings/{id} - Validation failed for booking id=%d: %v", id, err)
				handlers.RespondFieldError(w, http.StatusBadRequest, code, field)
				return
			}
			h.logger.Error("PUT /admin/bookings/{id} - Unexpected error for booking id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings/{id} - Updated booking id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
