package create_booking

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase;
	// ошибки валидации и конфликтов пробрасываются из domain как есть
	ErrInternal = errors.New("create_booking: internal error")
)
