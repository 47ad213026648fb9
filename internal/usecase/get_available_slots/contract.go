package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	"github.com/m04kA/DPT-ReservationService/internal/integrations/departmentservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByDepartmentAndDate получает бронирования департамента на конкретную дату
	GetByDepartmentAndDate(ctx context.Context, filter domain.DepartmentDayFilter) ([]*domain.Reservation, error)
}

// DepartmentServiceClient интерфейс клиента для DepartmentService
type DepartmentServiceClient interface {
	GetDepartmentWithGracefulDegradation(ctx context.Context, departmentID int64) (*departmentservice.Department, error)
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
