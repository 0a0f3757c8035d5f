package domain

import (
	"time"

	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/types"
)

// Booking заявка на бронирование ресурса
type Booking struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	BookingDate  time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	ResourceType ResourceType
	Language     string  // язык интерфейса клиента, только для уведомлений
	Message      *string // необязательный комментарий
	Confirmed    bool    // только подтвержденные брони участвуют в проверке конфликтов
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DurationMinutes длительность брони в минутах
func (b *Booking) DurationMinutes() (int, error) {
	return types.DurationMinutes(b.StartTime, b.EndTime)
}

// BookingsFilter фильтр административного списка бронирований
type BookingsFilter struct {
	Year      *int        // фильтр по году (опционально)
	Month     *time.Month // фильтр по месяцу (опционально)
	Confirmed *bool       // фильтр по статусу подтверждения (опционально)
}

// SlotQuery параметры выборки подтвержденных броней для проверки конфликтов
type SlotQuery struct {
	ResourceType ResourceType
	Date         time.Time
	ExcludeID    *int64 // исключить бронь из выборки (при редактировании)
}

// BookingUpdate частичное обновление брони; nil-поле означает "не менять"
type BookingUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	BookingDate  *time.Time
	StartTime    *types.TimeString
	EndTime      *types.TimeString
	ResourceType *ResourceType
	Language     *string
	Message      *string
	Confirmed    *bool
}

// IsEmpty возвращает true, если обновление не содержит ни одного поля
func (u *BookingUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil &&
		u.BookingDate == nil && u.StartTime == nil && u.EndTime == nil &&
		u.ResourceType == nil && u.Language == nil && u.Message == nil &&
		u.Confirmed == nil
}

// TouchesSlot сообщает, затрагивает ли обновление слот брони
// (дату, время, ресурс) и требует ли повторной проверки конфликтов.
// Подтверждение ранее неподтвержденной брони тоже вводит её в набор
// блокирующих, поэтому считается затрагивающим слот.
func (u *BookingUpdate) TouchesSlot(current *Booking) bool {
	if u.BookingDate != nil || u.StartTime != nil || u.EndTime != nil || u.ResourceType != nil {
		return true
	}
	return u.Confirmed != nil && *u.Confirmed && !current.Confirmed
}

// Apply накладывает обновление на копию брони
func (u *BookingUpdate) Apply(current *Booking) Booking {
	merged := *current

	if u.Name != nil {
		merged.Name = *u.Name
	}
	if u.Email != nil {
		merged.Email = *u.Email
	}
	if u.Phone != nil {
		merged.Phone = *u.Phone
	}
	if u.BookingDate != nil {
		merged.BookingDate = *u.BookingDate
	}
	if u.StartTime != nil {
		merged.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		merged.EndTime = *u.EndTime
	}
	if u.ResourceType != nil {
		merged.ResourceType = *u.ResourceType
	}
	if u.Language != nil {
		merged.Language = *u.Language
	}
	if u.Message != nil {
		merged.Message = u.Message
	}
	if u.Confirmed != nil {
		merged.Confirmed = *u.Confirmed
	}

	return merged
}
