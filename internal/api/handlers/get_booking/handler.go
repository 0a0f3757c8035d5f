package get_booking

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

// Handle GET /api/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/{id} - Invalid booking id %q", vars["bookingId"])
		handlers.RespondNotFound(w, codeNotFound)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.logger.Warn("GET /admin/bookings/{id} - Booking id=%d not found", id)
			handlers.RespondNotFound(w, codeNotFound)
			return
		}
		h.logger.Error("GET /admin/bookings/{id} - Failed to fetch booking id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings/{id} - Returned booking id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
