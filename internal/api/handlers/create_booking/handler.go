package create_booking

import (
	"errors"
	"net/http"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/api/handlers"
	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	createBooking "github.com/MarkDidenkoHT/mesto-sili-booking/internal/usecase/create_booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger

	// allowConfirmed включает поле confirmed запроса; устанавливается
	// только для административного маршрута
	allowConfirmed bool
}

// NewHandler создает обработчик публичной заявки на бронирование
func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// NewAdminHandler создает обработчик административного добавления брони
func NewAdminHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:        useCase,
		logger:         logger,
		allowConfirmed: true,
	}
}

// Handle POST /api/bookings и POST /api/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, domain.CodeMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.allowConfirmed)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid booking date %q: %v", req.BookingDate, err)
		handlers.RespondFieldError(w, http.StatusBadRequest, domain.CodeMissingFields, "bookingDate")
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTimeConflict):
			h.logger.Warn("POST /bookings - Time conflict: resource=%s, date=%s, time=%s-%s",
				req.ResourceType, req.BookingDate, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, domain.CodeTimeConflict)

		case errors.Is(err, createBooking.ErrInternal):
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, domain.CodeBookingFailed)

		default:
			// Ошибки валидации несут машиночитаемый код и поле формы
			if code, field, ok := domain.ErrorCode(err); ok {
				h.logger.Warn("POST /bookings - Validation failed: %v", err)
				handlers.RespondFieldError(w, http.StatusBadRequest, code, field)
				return
			}
			h.logger.Error("POST /bookings - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, resource=%s",
		result.ID, result.ResourceType)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
