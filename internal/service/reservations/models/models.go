package models

import (
	"errors"
	"time"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на административное обновление статуса
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	DepartmentID    int64   `json:"departmentId"`
	ReservationDate string  `json:"reservationDate"` // "2026-05-01"
	ReservationTime string  `json:"reservationTime"` // "10:00"
	Duration        string  `json:"duration"`
	Amount          float64 `json:"amount"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	PaymentDate     *string `json:"paymentDate,omitempty"` // "2026-05-01"
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		DepartmentID:    r.DepartmentID,
		ReservationDate: r.ReservationDate.Format(domain.DateFormat),
		ReservationTime: r.ReservationTime.String(),
		Duration:        r.Duration,
		Amount:          r.Amount,
		PaymentMethod:   r.PaymentMethod,
		Status:          string(r.Status),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if r.PaymentDate != nil {
		paymentDate := r.PaymentDate.Format(domain.DateFormat)
		resp.PaymentDate = &paymentDate
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations = append(resp.Reservations, *r)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
// rejected принимается как представимое значение схемы; допустимость его как
// цели перехода решает таблица переходов, а не парсер
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	validStatuses := []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusRejected,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
