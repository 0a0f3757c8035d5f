package domain

import "errors"

// Ошибки валидации заявки; каждая соответствует машиночитаемому коду,
// который клиент использует для локализованного отображения
var (
	// ErrMissingFields возвращается при отсутствии обязательных полей
	ErrMissingFields = errors.New("domain: required fields are missing")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("domain: invalid email format")

	// ErrInvalidPhone возвращается при некорректном телефоне
	ErrInvalidPhone = errors.New("domain: invalid phone number")

	// ErrInvalidResource возвращается при неизвестном типе ресурса
	ErrInvalidResource = errors.New("domain: unknown resource type")

	// ErrInvalidTimeFormat возвращается при времени не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("domain: invalid time format")

	// ErrInvalidTimeRange возвращается, когда начало не раньше конца
	ErrInvalidTimeRange = errors.New("domain: start time must be before end time")

	// ErrMinDurationSauna возвращается при броне сауны короче минимума
	ErrMinDurationSauna = errors.New("domain: sauna booking is shorter than minimum duration")

	// ErrMinDurationVeranda возвращается при броне веранды короче минимума
	ErrMinDurationVeranda = errors.New("domain: veranda booking is shorter than minimum duration")

	// ErrPastDate возвращается для даты раньше сегодняшней
	ErrPastDate = errors.New("domain: booking date is in the past")

	// ErrTimeConflict возвращается при пересечении с подтвержденной бронью
	// (с учетом технологического перерыва ресурса)
	ErrTimeConflict = errors.New("domain: time slot conflicts with an existing booking")
)

// Машиночитаемые коды ошибок валидации
const (
	CodeMissingFields      = "missing_fields"
	CodeInvalidEmail       = "invalid_email"
	CodeInvalidPhone       = "invalid_phone"
	CodeInvalidResource    = "invalid_resource"
	CodeInvalidTimeFormat  = "invalid_time_format"
	CodeInvalidTimeRange   = "invalid_time_range"
	CodeMinDurationSauna   = "min_duration_sauna"
	CodeMinDurationVeranda = "min_duration_veranda"
	CodePastDate           = "past_date"
	CodeTimeConflict       = "time_conflict"
	CodeBookingFailed      = "booking_failed"
)

// errorCodes соответствие ошибок валидации кодам и полям формы
var errorCodes = []struct {
	err   error
	code  string
	field string
}{
	{ErrMissingFields, CodeMissingFields, ""},
	{ErrInvalidEmail, CodeInvalidEmail, "email"},
	{ErrInvalidPhone, CodeInvalidPhone, "phone"},
	{ErrInvalidResource, CodeInvalidResource, "resourceType"},
	{ErrInvalidTimeFormat, CodeInvalidTimeFormat, "startTime"},
	{ErrInvalidTimeRange, CodeInvalidTimeRange, "endTime"},
	{ErrMinDurationSauna, CodeMinDurationSauna, "endTime"},
	{ErrMinDurationVeranda, CodeMinDurationVeranda, "endTime"},
	{ErrPastDate, CodePastDate, "bookingDate"},
	{ErrTimeConflict, CodeTimeConflict, ""},
}

// ErrorCode возвращает код и поле формы для ошибки валидации
func ErrorCode(err error) (code string, field string, ok bool) {
	for _, entry := range errorCodes {
		if errors.Is(err, entry.err) {
			return entry.code, entry.field, true
		}
	}
	return "", "", false
}
