package create_booking

import (
	"time"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name         string
	Email        string
	Phone        string
	Date         time.Time        // дата бронирования (без времени)
	StartTime    types.TimeString // время начала, например "10:00"
	EndTime      types.TimeString // время окончания, например "14:00"
	ResourceType domain.ResourceType
	Language     string  // язык уведомлений (опционально, по умолчанию ru)
	Message      *string // комментарий (опционально)

	// Confirmed устанавливается только административным путем создания;
	// публичная заявка всегда создается неподтвержденной
	Confirmed bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	BookingDate  time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	ResourceType domain.ResourceType
	Language     string
	Message      *string
	Confirmed    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// toDomain собирает domain модель из запроса
func (r *Request) toDomain() *domain.Booking {
	return &domain.Booking{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		BookingDate:  r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		ResourceType: r.ResourceType,
		Language:     r.Language,
		Message:      r.Message,
		Confirmed:    r.Confirmed,
	}
}

// fromDomain собирает ответ из сохраненной брони
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		BookingDate:  b.BookingDate,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		ResourceType: b.ResourceType,
		Language:     b.Language,
		Message:      b.Message,
		Confirmed:    b.Confirmed,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
