package update_booking

import (
	"time"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/types"
)

// Request модель запроса на частичное обновление брони;
// nil-поле означает "оставить как есть"
type Request struct {
	ID           int64
	Name         *string
	Email        *string
	Phone        *string
	Date         *time.Time
	StartTime    *types.TimeString
	EndTime      *types.TimeString
	ResourceType *domain.ResourceType
	Language     *string
	Message      *string
	Confirmed    *bool
}

// toDomainUpdate собирает domain обновление из запроса
func (r *Request) toDomainUpdate() domain.BookingUpdate {
	return domain.BookingUpdate{
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

// Response модель ответа с обновленной бронью
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

// fromDomain собирает ответ из обновленной брони
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
