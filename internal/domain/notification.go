package domain

import "time"

// NotificationType represents the severity of a notification
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
	NotificationError   NotificationType = "error"
)

// Action types for notifications
const (
	ActionTypeReservation = "reservation"
)

// Notification представляет персональное уведомление пользователя
type Notification struct {
	ID           int64
	UserID       int64
	Title        string
	Message      string
	Type         NotificationType
	Icon         string
	Read         bool
	DepartmentID *int64
	ActionType   *string
	ActionID     *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IconForType возвращает иконку, соответствующую типу уведомления
func IconForType(t NotificationType) string {
	switch t {
	case NotificationSuccess:
		return "check-circle"
	case NotificationWarning:
		return "exclamation-circle"
	case NotificationError:
		return "times-circle"
	default:
		return "bell"
	}
}
