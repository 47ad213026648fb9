package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается, когда слот уже занят активным бронированием
	// (нарушение уникального индекса uq_reservations_slot)
	ErrSlotTaken = errors.New("reservation.repository: slot already taken")

	// ErrUserDoubleBooking возвращается, когда у пользователя уже есть активное
	// бронирование этого департамента на эту дату
	// (нарушение уникального индекса uq_reservations_user_day)
	ErrUserDoubleBooking = errors.New("reservation.repository: user already has an active reservation for this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
