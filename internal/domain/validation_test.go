package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/ptr"
)

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

// validBooking возвращает заявку, проходящую все проверки
func validBooking() Booking {
	return Booking{
		Name:         "Иван Петров",
		Email:        "ivan@example.com",
		Phone:        "+37360123456",
		BookingDate:  time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "14:00",
		ResourceType: ResourceSauna,
		Language:     "ru",
	}
}

func TestBooking_Validate_OK(t *testing.T) {
	b := validBooking()
	b.Normalize()
	assert.NoError(t, b.Validate(testNow))
}

func TestBooking_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Booking)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(b *Booking) { b.Name = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing email",
			mutate:  func(b *Booking) { b.Email = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing start time",
			mutate:  func(b *Booking) { b.StartTime = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing date",
			mutate:  func(b *Booking) { b.BookingDate = time.Time{} },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing resource",
			mutate:  func(b *Booking) { b.ResourceType = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "invalid email",
			mutate:  func(b *Booking) { b.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with spaces",
			mutate:  func(b *Booking) { b.Email = "iv an@example.com" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "phone too short",
			mutate:  func(b *Booking) { b.Phone = "+373" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "phone without digits",
			mutate:  func(b *Booking) { b.Phone = "++++++" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "unknown resource",
			mutate:  func(b *Booking) { b.ResourceType = "pool" },
			wantErr: ErrInvalidResource,
		},
		{
			name:    "bad start time format",
			mutate:  func(b *Booking) { b.StartTime = "10:0" },
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "bad end time format",
			mutate:  func(b *Booking) { b.EndTime = "25:00" },
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "start equals end",
			mutate:  func(b *Booking) { b.EndTime = b.StartTime },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "start after end",
			mutate: func(b *Booking) {
				b.StartTime = "14:00"
				b.EndTime = "10:00"
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "sauna shorter than 4 hours",
			mutate: func(b *Booking) {
				b.StartTime = "10:00"
				b.EndTime = "13:00"
			},
			wantErr: ErrMinDurationSauna,
		},
		{
			name: "veranda shorter than 2 hours",
			mutate: func(b *Booking) {
				b.ResourceType = ResourceVeranda
				b.StartTime = "10:00"
				b.EndTime = "11:00"
			},
			wantErr: ErrMinDurationVeranda,
		},
		{
			name: "past date",
			mutate: func(b *Booking) {
				b.BookingDate = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrPastDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(&b)
			b.Normalize()

			err := b.Validate(testNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBooking_Validate_TodayIsAllowed(t *testing.T) {
	b := validBooking()
	b.BookingDate = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	b.Normalize()

	// Сегодняшний день допустим, даже если текущее время уже за полдень
	assert.NoError(t, b.Validate(testNow))
}

func TestBooking_Validate_VerandaExactMinimum(t *testing.T) {
	b := validBooking()
	b.ResourceType = ResourceVeranda
	b.StartTime = "10:00"
	b.EndTime = "12:00"
	b.Normalize()

	assert.NoError(t, b.Validate(testNow))
}

func TestBooking_Normalize_Truncation(t *testing.T) {
	b := validBooking()
	b.Name = strings.Repeat("а", 150)
	b.Phone = strings.Repeat("1", 30)
	b.Message = ptr.Ptr(strings.Repeat("х", 600))
	b.Normalize()

	assert.Len(t, []rune(b.Name), MaxNameLength)
	assert.Len(t, []rune(b.Phone), MaxPhoneLength)
	require.NotNil(t, b.Message)
	assert.Len(t, []rune(*b.Message), MaxMessageLength)

	// Усеченная заявка остается валидной
	assert.NoError(t, b.Validate(testNow))
}

func TestBooking_Normalize_EmptyMessageAndLanguage(t *testing.T) {
	b := validBooking()
	b.Message = ptr.Ptr("   ")
	b.Language = "de"
	b.Normalize()

	assert.Nil(t, b.Message)
	assert.Equal(t, DefaultLanguage, b.Language)
}

func TestErrorCode(t *testing.T) {
	code, field, ok := ErrorCode(ErrInvalidEmail)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidEmail, code)
	assert.Equal(t, "email", field)

	code, field, ok = ErrorCode(ErrTimeConflict)
	require.True(t, ok)
	assert.Equal(t, CodeTimeConflict, code)
	assert.Empty(t, field)

	_, _, ok = ErrorCode(assert.AnError)
	assert.False(t, ok)
}
