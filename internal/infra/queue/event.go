package queue

// ReservationEvent событие жизненного цикла бронирования, публикуемое в брокер
// Содержит достаточно данных, чтобы потребители (рассылки, аналитика) не
// ходили в основную БД
type ReservationEvent struct {
	ReservationID int64   `json:"reservation_id"`
	UserID        int64   `json:"user_id"`
	DepartmentID  int64   `json:"department_id"`
	Date          string  `json:"date"`   // YYYY-MM-DD
	Time          string  `json:"time"`   // HH:MM
	Status        string  `json:"status"` // pending | confirmed
	Amount        float64 `json:"amount"`
	OccurredAt    string  `json:"occurred_at"` // RFC 3339
}
