package create_reservation

import "errors"

var (
	// ErrDepartmentNotFound возвращается, когда департамент не найден
	ErrDepartmentNotFound = errors.New("create_reservation: department not found")

	// ErrInvalidDate возвращается, когда дата бронирования не строго в будущем
	ErrInvalidDate = errors.New("create_reservation: reservation date must be after today")

	// ErrInvalidTimeSlot возвращается, когда время не входит в каталог слотов
	ErrInvalidTimeSlot = errors.New("create_reservation: time is not a catalog slot")

	// ErrUserDoubleBooking возвращается, когда у пользователя уже есть активное
	// бронирование этого департамента на эту дату
	ErrUserDoubleBooking = errors.New("create_reservation: user already has an active reservation for this department and date")

	// ErrSlotTaken возвращается, когда слот уже занят активным бронированием
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
