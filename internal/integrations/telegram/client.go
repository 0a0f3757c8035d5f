package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// resourceTitles подписи ресурсов для сообщения администратору
var resourceTitles = map[domain.ResourceType]string{
	domain.ResourceSauna:   "Сауна",
	domain.ResourceVeranda: "Веранда",
}

// Client клиент для отправки уведомлений о бронированиях в Telegram-чат
// администратора. Отправка best-effort: ошибка логируется вызывающей
// стороной и никогда не влияет на судьбу самой брони
type Client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    Logger
}

// NewClient создает клиента Telegram Bot API
func NewClient(botToken string, chatID int64, log Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitFailed, err)
	}

	log.Info("Telegram bot authorized as @%s", bot.Self.UserName)

	return &Client{
		bot:    bot,
		chatID: chatID,
		log:    log,
	}, nil
}

// NotifyBookingCreated отправляет администратору сводку по новой заявке
func (c *Client) NotifyBookingCreated(booking *domain.Booking) error {
	msg := tgbotapi.NewMessage(c.chatID, formatBookingMessage(booking))

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: booking id=%d: %v", ErrSendFailed, booking.ID, err)
	}

	c.log.Info("Telegram notification sent for booking id=%d", booking.ID)
	return nil
}

func formatBookingMessage(b *domain.Booking) string {
	title, ok := resourceTitles[b.ResourceType]
	if !ok {
		title = string(b.ResourceType)
	}

	var sb strings.Builder
	sb.WriteString("Новая заявка на бронирование\n\n")
	fmt.Fprintf(&sb, "Ресурс: %s\n", title)
	fmt.Fprintf(&sb, "Дата: %s\n", b.BookingDate.Format(domain.DateFormat))
	fmt.Fprintf(&sb, "Время: %s - %s\n", b.StartTime, b.EndTime)
	fmt.Fprintf(&sb, "Имя: %s\n", b.Name)
	fmt.Fprintf(&sb, "Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "Телефон: %s\n", b.Phone)
	fmt.Fprintf(&sb, "Язык: %s\n", b.Language)

	if b.Message != nil {
		fmt.Fprintf(&sb, "Комментарий: %s\n", *b.Message)
	}

	return sb.String()
}
