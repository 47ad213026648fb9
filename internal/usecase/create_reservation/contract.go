package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	"github.com/m04kA/DPT-ReservationService/internal/integrations/departmentservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByDepartmentAndDate(ctx context.Context, filter domain.DepartmentDayFilter) ([]*domain.Reservation, error)
}

// DepartmentServiceClient интерфейс клиента для DepartmentService
type DepartmentServiceClient interface {
	GetDepartmentWithGracefulDegradation(ctx context.Context, departmentID int64) (*departmentservice.Department, error)
}

// NotificationDispatcher интерфейс отправки уведомлений о созданном бронировании
// Вызывается после коммита, сбои не влияют на результат бронирования
type NotificationDispatcher interface {
	DispatchReservationCreated(ctx context.Context, reservation *domain.Reservation, departmentName string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
