package get_unread_count

import "context"

type NotificationService interface {
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
