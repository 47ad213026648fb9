package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Дата должна быть строго после текущей календарной даты (бронирования
// день-в-день и задним числом запрещены), время - из фиксированного каталога
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.DepartmentID <= 0 {
		return fmt.Errorf("%w: departmentID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !isDateAfterToday(req.Date, now) {
		return ErrInvalidDate
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if !domain.IsCatalogSlot(req.Time) {
		return ErrInvalidTimeSlot
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.PaymentMethod != nil && len(*req.PaymentMethod) > domain.MaxPaymentMethodLength {
		return fmt.Errorf("%w: paymentMethod must not exceed %d characters", ErrInvalidInput, domain.MaxPaymentMethodLength)
	}

	return nil
}

// checkConflicts проверяет конфликты с существующими активными бронированиями
//
// Порядок проверок фиксирован: сначала двойная бронь пользователя, затем
// занятость слота. Пользователь, повторно запрашивающий собственный слот,
// получает ErrUserDoubleBooking, а не ErrSlotTaken
func checkConflicts(reservations []*domain.Reservation, userID int64, slot string) error {
	for _, reservation := range reservations {
		if !reservation.IsActive() {
			continue
		}
		if reservation.UserID == userID {
			return ErrUserDoubleBooking
		}
	}

	for _, reservation := range reservations {
		if !reservation.IsActive() {
			continue
		}
		if reservation.ReservationTime.String() == slot {
			return ErrSlotTaken
		}
	}

	return nil
}

// isDateAfterToday проверяет, что дата строго позже сегодняшнего дня
func isDateAfterToday(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.After(nowOnly)
}
