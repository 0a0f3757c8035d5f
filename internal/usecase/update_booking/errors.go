package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrNoFieldsToUpdate возвращается для запроса без единого поля
	ErrNoFieldsToUpdate = errors.New("update_booking: no fields to update")

	// ErrInternal возвращается при внутренних ошибках usecase;
	// ошибки валидации и конфликтов пробрасываются из domain как есть
	ErrInternal = errors.New("update_booking: internal error")
)
