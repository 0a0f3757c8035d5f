package create_booking

import (
	"time"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	createBooking "github.com/MarkDidenkoHT/mesto-sili-booking/internal/usecase/create_booking"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	BookingDate  string  `json:"bookingDate"` // "2025-10-15"
	StartTime    string  `json:"startTime"`   // "10:00"
	EndTime      string  `json:"endTime"`     // "14:00"
	ResourceType string  `json:"resourceType"`
	Language     string  `json:"language,omitempty"`
	Message      *string `json:"message,omitempty"`

	// Confirmed учитывается только на административном маршруте
	Confirmed *bool `json:"confirmed,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	ResourceType string  `json:"resourceType"`
	Language     string  `json:"language"`
	Message      *string `json:"message,omitempty"`
	Confirmed    bool    `json:"confirmed"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Время не парсится здесь: сырые строки проверяются в домене, чтобы
// сохранить порядок проверок формы. Дата с ошибкой формата дает ошибку
func (r *CreateBookingRequest) ToUseCaseRequest(allowConfirmed bool) (*createBooking.Request, error) {
	var bookingDate time.Time
	if r.BookingDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			return nil, err
		}
		bookingDate = parsed
	}

	confirmed := false
	if allowConfirmed && r.Confirmed != nil {
		confirmed = *r.Confirmed
	}

	return &createBooking.Request{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Date:         bookingDate,
		StartTime:    types.TimeString(r.StartTime),
		EndTime:      types.TimeString(r.EndTime),
		ResourceType: domain.ResourceType(r.ResourceType),
		Language:     r.Language,
		Message:      r.Message,
		Confirmed:    confirmed,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		Name:         resp.Name,
		Email:        resp.Email,
		Phone:        resp.Phone,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		ResourceType: string(resp.ResourceType),
		Language:     resp.Language,
		Message:      resp.Message,
		Confirmed:    resp.Confirmed,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
