package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers"
	bookingsService "github.com/MarkDidenkoHT/mesto-sili-booking/internal/service/bookings"
)

const codeNotFound = "not_found"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/bookings/{id} - Invalid booking id %q", vars["bookingId"])
		handlers.RespondNotFound(w, codeNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.logger.Warn("DELETE /admin/bookings/{id} - Booking id=%d not found", id)
			handlers.RespondNotFound(w, codeNotFound)
			return
		}
		h.logger.Error("DELETE /admin/bookings/{id} - Failed to delete booking id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Deleted booking id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
