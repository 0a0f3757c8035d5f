package domain

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Ограничения длины полей; применяются усечением на границе валидации
const (
	MaxNameLength    = 100
	MaxEmailLength   = 100
	MaxPhoneLength   = 20
	MaxMessageLength = 500

	MinPhoneLength = 6
)

// DefaultLanguage язык уведомлений по умолчанию
const DefaultLanguage = "ru"

// supportedLanguages поддерживаемые языки клиентского интерфейса
var supportedLanguages = map[string]bool{
	"ru": true,
	"ro": true,
	"en": true,
}

// IsSupportedLanguage проверяет поддержку языка
func IsSupportedLanguage(lang string) bool {
	return supportedLanguages[lang]
}
