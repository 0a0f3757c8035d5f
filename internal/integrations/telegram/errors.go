package telegram

import "errors"

var (
	// ErrInitFailed возвращается при ошибке авторизации бота
	ErrInitFailed = errors.New("telegram client: failed to initialize bot")

	// ErrSendFailed возвращается при ошибке отправки сообщения
	ErrSendFailed = errors.New("telegram client: failed to send message")
)
