package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	ErrAlreadyCancelled = errors.New("reservation already cancelled")

	// ErrCannotCancel возвращается при попытке отменить бронирование в
	// терминальном статусе, отличном от cancelled (completed, rejected)
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrTransitionNotAllowed возвращается при недопустимом переходе статусов
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
