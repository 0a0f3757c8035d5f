package models

import (
	"errors"
	"time"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
)

var (
	// ErrInvalidMonth возвращается для месяца вне диапазона 1-12
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidResource возвращается для неизвестного типа ресурса
	ErrInvalidResource = errors.New("invalid resource type")
)

// Request модели

// ListBookingsRequest запрос административного списка бронирований
type ListBookingsRequest struct {
	Year      *int
	Month     *int
	Confirmed *bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Year:      r.Year,
		Confirmed: r.Confirmed,
	}

	if r.Month != nil {
		if *r.Month < 1 || *r.Month > 12 {
			return filter, ErrInvalidMonth
		}
		month := time.Month(*r.Month)
		filter.Month = &month
	}

	return filter, nil
}

// BusySlotsRequest запрос занятых интервалов ресурса на дату
type BusySlotsRequest struct {
	ResourceType string
	Date         time.Time
}

// ToDomainQuery конвертирует request в domain запрос слотов
func (r *BusySlotsRequest) ToDomainQuery() (domain.SlotQuery, error) {
	resource := domain.ResourceType(r.ResourceType)
	if !resource.IsValid() {
		return domain.SlotQuery{}, ErrInvalidResource
	}

	return domain.SlotQuery{
		ResourceType: resource,
		Date:         r.Date,
	}, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	BookingDate  string  `json:"bookingDate"` // "2025-10-15"
	StartTime    string  `json:"startTime"`   // "10:00"
	EndTime      string  `json:"endTime"`     // "14:00"
	ResourceType string  `json:"resourceType"`
	Language     string  `json:"language"`
	Message      *string `json:"message,omitempty"`
	Confirmed    bool    `json:"confirmed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BusySlotResponse занятый интервал ресурса
type BusySlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BusySlotsResponse ответ со списком занятых интервалов
type BusySlotsResponse struct {
	Slots []BusySlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
		ResourceType: string(b.ResourceType),
		Language:     b.Language,
		Message:      b.Message,
		Confirmed:    b.Confirmed,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainSlots конвертирует брони в занятые интервалы
func FromDomainSlots(bookings []*domain.Booking) *BusySlotsResponse {
	resp := &BusySlotsResponse{
		Slots: make([]BusySlotResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		resp.Slots = append(resp.Slots, BusySlotResponse{
			StartTime: booking.StartTime.String(),
			EndTime:   booking.EndTime.String(),
		})
	}

	return resp
}
