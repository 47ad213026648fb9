package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.DepartmentID <= 0 {
		return fmt.Errorf("%w: departmentID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Слоты выдаются только на даты строго после сегодняшней
	if !isDateAfterToday(req.Date, now) {
		return ErrInvalidDate
	}

	return nil
}

// isDateAfterToday проверяет, что дата строго позже сегодняшнего дня
func isDateAfterToday(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.After(nowOnly)
}
