package domain

import (
	"time"

	"github.com/m04kA/DPT-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
	// StatusRejected присутствует в схеме, но не является целью ни одного
	// перехода (см. allowedTransitions) - оставлен представимым
	StatusRejected ReservationStatus = "rejected"
)

// allowedTransitions таблица допустимых административных переходов статусов
// Терминальные статусы (completed, cancelled, rejected) не имеют исходящих переходов
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusRejected:  {},
}

// CanTransitionTo returns true if the administrator transition from s to target is allowed
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transition may leave this status
func (s ReservationStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// IsActive returns true if the reservation occupies its slot (blocks other bookings)
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Reservation represents a department reservation in the system
type Reservation struct {
	ID              int64
	UserID          int64
	DepartmentID    int64
	ReservationDate time.Time
	ReservationTime types.TimeString
	Duration        string
	Amount          float64
	PaymentMethod   *string
	PaymentDate     *time.Time
	Status          ReservationStatus
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation is in an active (slot-occupying) state
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// CanBeCancelled returns true if the owner may still cancel the reservation
func (r *Reservation) CanBeCancelled() bool {
	return !r.Status.IsTerminal()
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// DepartmentDayFilter фильтр для выборки бронирований департамента на дату
type DepartmentDayFilter struct {
	DepartmentID int64     // Обязательный параметр
	Date         time.Time // Календарная дата (время игнорируется)
	ActiveOnly   bool      // Только статусы pending/confirmed
}
