package domain

// Default values
const (
	// DefaultPricePerNight используется, когда цена департамента недоступна
	DefaultPricePerNight = 50.0

	// DefaultDuration длительность бронирования по умолчанию
	DefaultDuration = "1h"
)

// Business validation constants
const (
	MaxNotesLength         = 1000
	MaxPaymentMethodLength = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, занимающие слот
// Используются при проверке конфликтов и подсчёте свободных слотов
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, освобождающие слот
var InactiveStatuses = []ReservationStatus{
	StatusCompleted,
	StatusCancelled,
	StatusRejected,
}
