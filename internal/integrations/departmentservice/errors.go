package departmentservice

import "errors"

var (
	// ErrDepartmentNotFound возвращается, когда департамент не найден
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("departmentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("departmentservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что DepartmentService недоступен и следует использовать базовую цену
	ErrServiceDegraded = errors.New("departmentservice unavailable: graceful degradation applied")
)
