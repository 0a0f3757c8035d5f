package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers"
	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	bookingsService "github.com/MarkDidenkoHT/mesto-sili-booking/internal/service/bookings"
	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/service/bookings/models"
)

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

// Handle GET /api/admin/bookings?year=2025&month=10&confirmed=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}
	query := r.URL.Query()

	if v := query.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid year %q", v)
			handlers.RespondFieldError(w, http.StatusBadRequest, domain.CodeMissingFields, "year")
			return
		}
		req.Year = &year
	}

	if v := query.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid month %q", v)
			handlers.RespondFieldError(w, http.StatusBadRequest, domain.CodeMissingFields, "month")
			return
		}
		req.Month = &month
	}

	if v := query.Get("confirmed"); v != "" {
		confirmed, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid confirmed %q", v)
			handlers.RespondFieldError(w, http.StatusBadRequest, domain.CodeMissingFields, "confirmed")
			return
		}
		req.Confirmed = &confirmed
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondFieldError(w, http.StatusBadRequest, domain.CodeMissingFields, "month")

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Returned %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
