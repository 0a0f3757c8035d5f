package update_booking

import (
	"time"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	updateBooking "github.com/MarkDidenkoHT/mesto-sili-booking/internal/usecase/update_booking"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/types"
)

// UpdateBookingRequest HTTP request model; отсутствующее поле не меняется
type UpdateBookingRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	BookingDate  *string `json:"bookingDate,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	ResourceType *string `json:"resourceType,omitempty"`
	Language     *string `json:"language,omitempty"`
	Message      *string `json:"message,omitempty"`
	Confirmed    *bool   `json:"confirmed,omitempty"`
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
// Строки времени передаются как есть и проверяются в домене
func (r *UpdateBookingRequest) ToUseCaseRequest(id int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		ID:        id,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Language:  r.Language,
		Message:   r.Message,
		Confirmed: r.Confirmed,
	}

	if r.BookingDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		req.Date = &parsed
	}
	if r.StartTime != nil {
		start := types.TimeString(*r.StartTime)
		req.StartTime = &start
	}
	if r.EndTime != nil {
		end := types.TimeString(*r.EndTime)
		req.EndTime = &end
	}
	if r.ResourceType != nil {
		resource := domain.ResourceType(*r.ResourceType)
		req.ResourceType = &resource
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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
