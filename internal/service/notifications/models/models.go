package models

import (
	"time"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
)

// Request модели

// GetUserNotificationsRequest запрос на получение уведомлений пользователя
type GetUserNotificationsRequest struct {
	UserID int64 `json:"userId"`
	Read   *bool `json:"read,omitempty"` // Фильтр по прочитанности (опционально)
}

// Response модели

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	Icon         string    `json:"icon"`
	Read         bool      `json:"read"`
	DepartmentID *int64    `json:"departmentId,omitempty"`
	ActionType   *string   `json:"actionType,omitempty"`
	ActionID     *int64    `json:"actionId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unreadCount"`
}

// Методы конвертации

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}

	return &NotificationResponse{
		ID:           n.ID,
		UserID:       n.UserID,
		Title:        n.Title,
		Message:      n.Message,
		Type:         string(n.Type),
		Icon:         n.Icon,
		Read:         n.Read,
		DepartmentID: n.DepartmentID,
		ActionType:   n.ActionType,
		ActionID:     n.ActionID,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.Notification, unreadCount int64) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
		UnreadCount:   unreadCount,
	}

	for _, notification := range notifications {
		if n := FromDomainNotification(notification); n != nil {
			resp.Notifications = append(resp.Notifications, *n)
		}
	}

	return resp
}
