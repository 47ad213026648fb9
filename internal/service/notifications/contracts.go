package notifications

import (
	"context"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	"github.com/m04kA/DPT-ReservationService/internal/infra/queue"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	GetByUserID(ctx context.Context, userID int64, read *bool) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id int64) error
}

// EventPublisher интерфейс публикации событий бронирований в брокер
type EventPublisher interface {
	PublishReservationEvent(ctx context.Context, event queue.ReservationEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
