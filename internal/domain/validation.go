package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/types"
)

// emailPattern упрощенная проверка вида local@domain.tld без пробелов
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// digitPattern хотя бы одна цифра в номере телефона
var digitPattern = regexp.MustCompile(`\d`)

// Normalize приводит заявку к каноничному виду: обрезает пробелы,
// усекает поля до предельной длины, подставляет язык по умолчанию.
// Вызывается до Validate, чтобы проверки видели уже усеченные значения.
func (b *Booking) Normalize() {
	b.Name = truncate(strings.TrimSpace(b.Name), MaxNameLength)
	b.Email = truncate(strings.TrimSpace(b.Email), MaxEmailLength)
	b.Phone = truncate(strings.TrimSpace(b.Phone), MaxPhoneLength)

	if b.Message != nil {
		msg := truncate(strings.TrimSpace(*b.Message), MaxMessageLength)
		if msg == "" {
			b.Message = nil
		} else {
			b.Message = &msg
		}
	}

	if !IsSupportedLanguage(b.Language) {
		b.Language = DefaultLanguage
	}
}

// Validate выполняет все проверки заявки в фиксированном порядке,
// останавливаясь на первой ошибке. Проверка конфликтов со слотами
// выполняется отдельно (FindConflict) по данным хранилища.
func (b *Booking) Validate(now time.Time) error {
	if err := b.ValidateContact(); err != nil {
		return err
	}
	return b.ValidateSlot(now)
}

// ValidateContact проверяет наличие обязательных полей и формат контактов
func (b *Booking) ValidateContact() error {
	if b.Name == "" || b.Email == "" || b.Phone == "" ||
		b.BookingDate.IsZero() || b.StartTime.IsZero() || b.EndTime.IsZero() ||
		b.ResourceType == "" {
		return ErrMissingFields
	}

	if !emailPattern.MatchString(b.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, b.Email)
	}

	if len(b.Phone) < MinPhoneLength || !digitPattern.MatchString(b.Phone) {
		return ErrInvalidPhone
	}

	return nil
}

// ValidateSlot проверяет ресурс, формат и порядок времени, минимальную
// длительность и что дата не в прошлом (сравнение по календарному дню)
func (b *Booking) ValidateSlot(now time.Time) error {
	policy, ok := PolicyFor(b.ResourceType)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidResource, b.ResourceType)
	}

	if b.StartTime.Validate() != nil || b.EndTime.Validate() != nil {
		return ErrInvalidTimeFormat
	}

	duration, err := types.DurationMinutes(b.StartTime, b.EndTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	if duration <= 0 {
		return ErrInvalidTimeRange
	}

	if duration < policy.MinDurationMinutes {
		switch b.ResourceType {
		case ResourceVeranda:
			return ErrMinDurationVeranda
		default:
			return ErrMinDurationSauna
		}
	}

	if dateOnly(b.BookingDate).Before(dateOnly(now)) {
		return ErrPastDate
	}

	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// dateOnly обнуляет время, оставляя календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
