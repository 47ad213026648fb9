package get_available_slots

import "errors"

var (
	// ErrDepartmentNotFound возвращается, когда департамент не найден
	ErrDepartmentNotFound = errors.New("get_available_slots: department not found")

	// ErrInvalidDate возвращается, когда дата не строго в будущем
	ErrInvalidDate = errors.New("get_available_slots: date must be after today")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
