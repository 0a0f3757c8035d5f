package get_busy_slots

import (
	"errors"
	"net/http"
	"time"

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

// Handle GET /api/bookings/busy?resourceType=sauna&date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceType := r.URL.Query().Get("resourceType")
	dateStr := r.URL.Query().Get("date")

	if resourceType == "" || dateStr == "" {
		h.logger.Warn("GET /bookings/busy - Missing query params: resourceType=%q, date=%q", resourceType, dateStr)
		handlers.RespondBadRequest(w, domain.CodeMissingFields)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/busy - Invalid date %q: %v", dateStr, err)
		handlers.RespondFieldError(w, http.StatusBadRequest, domain.CodeMissingFields, "date")
		return
	}

	result, err := h.service.BusySlots(r.Context(), &models.BusySlotsRequest{
		ResourceType: resourceType,
		Date:         date,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings/busy - Invalid resource type %q", resourceType)
			handlers.RespondFieldError(w, http.StatusBadRequest, domain.CodeInvalidResource, "resourceType")

		default:
			h.logger.Error("GET /bookings/busy - Failed to fetch busy slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/busy - Returned %d busy slots for %s on %s",
		len(result.Slots), resourceType, dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
