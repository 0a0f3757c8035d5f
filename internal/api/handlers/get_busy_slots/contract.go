package get_busy_slots

import (
	"context"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/service/bookings/models"
)

type BookingsService interface {
	BusySlots(ctx context.Context, req *models.BusySlotsRequest) (*models.BusySlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
