package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	departmentClient "github.com/m04kA/DPT-ReservationService/internal/integrations/departmentservice"
)

// UseCase use case для получения доступных слотов бронирования
type UseCase struct {
	reservationRepo  ReservationRepository
	departmentClient DepartmentServiceClient
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	departmentClient DepartmentServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		departmentClient: departmentClient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Доступные слоты = фиксированный каталог минус занятые активными бронированиями
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: department=%d, date=%s",
		req.DepartmentID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование департамента
	// При деградации сервиса департаментов слоты считаются по каталогу без проверки
	_, err := uc.departmentClient.GetDepartmentWithGracefulDegradation(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, departmentClient.ErrDepartmentNotFound) {
			uc.logger.Warn("GetAvailableSlots: department id=%d not found", req.DepartmentID)
			return nil, ErrDepartmentNotFound
		}
		uc.logger.Warn("GetAvailableSlots: department service degraded, skipping existence check: %v", err)
	}

	// 3. Получаем активные бронирования департамента на эту дату
	filter := domain.DepartmentDayFilter{
		DepartmentID: req.DepartmentID,
		Date:         req.Date,
		ActiveOnly:   true,
	}

	reservations, err := uc.reservationRepo.GetByDepartmentAndDate(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Вычитаем занятые слоты из каталога
	available, booked := splitSlots(reservations)

	uc.logger.Info("GetAvailableSlots: department=%d, date=%s: %d available, %d booked",
		req.DepartmentID, req.Date.Format(domain.DateFormat), len(available), len(booked))

	return &Response{
		DepartmentID:   req.DepartmentID,
		Date:           req.Date,
		AvailableSlots: available,
		BookedSlots:    booked,
	}, nil
}
