package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DPT-ReservationService/internal/infra/storage/reservation"
	departmentClient "github.com/m04kA/DPT-ReservationService/internal/integrations/departmentservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo  ReservationRepository
	departmentClient DepartmentServiceClient
	notifier         NotificationDispatcher
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	departmentClient DepartmentServiceClient,
	notifier NotificationDispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		departmentClient: departmentClient,
		notifier:         notifier,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, department=%d, date=%s, time=%s",
		req.UserID, req.DepartmentID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем департамент с graceful degradation
	// Если сервис департаментов недоступен, бронирование все равно создается
	// с ценой по умолчанию
	amount := domain.DefaultPricePerNight
	departmentName := fmt.Sprintf("department #%d", req.DepartmentID)

	department, err := uc.departmentClient.GetDepartmentWithGracefulDegradation(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, departmentClient.ErrDepartmentNotFound) {
			uc.logger.Warn("CreateReservation: department id=%d not found", req.DepartmentID)
			return nil, ErrDepartmentNotFound
		}
		// ErrServiceDegraded: продолжаем с дефолтами
		uc.logger.Warn("CreateReservation: department service degraded, using defaults: %v", err)
	} else {
		departmentName = department.Name
		if department.PricePerNight != nil {
			amount = *department.PricePerNight
		}
	}

	// 4. Определяем начальный статус: confirmed при наличии способа оплаты,
	// иначе pending. Дата оплаты проставляется только для confirmed
	duration := req.Duration
	if duration == "" {
		duration = domain.DefaultDuration
	}

	reservation := &domain.Reservation{
		UserID:          req.UserID,
		DepartmentID:    req.DepartmentID,
		ReservationDate: req.Date,
		ReservationTime: req.Time,
		Duration:        duration,
		Amount:          amount,
		PaymentMethod:   req.PaymentMethod,
		Status:          domain.StatusPending,
		Notes:           req.Notes,
	}

	if req.PaymentMethod != nil && *req.PaymentMethod != "" {
		reservation.Status = domain.StatusConfirmed
		today := now
		reservation.PaymentDate = &today
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 5. Выполняем проверку конфликтов и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные бронирования департамента на эту дату
		// с блокировкой (FOR UPDATE)
		filter := domain.DepartmentDayFilter{
			DepartmentID: req.DepartmentID,
			Date:         req.Date,
			ActiveOnly:   true,
		}

		existing, err := uc.reservationRepo.GetByDepartmentAndDate(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.2. Проверяем конфликты: сначала двойная бронь пользователя,
		// затем занятость слота
		if err := checkConflicts(existing, req.UserID, req.Time.String()); err != nil {
			uc.logger.Warn("CreateReservation: conflict for user=%d, department=%d, date=%s: %v",
				req.UserID, req.DepartmentID, req.Date.Format(domain.DateFormat), err)
			return err
		}

		// 5.3. Сохраняем бронирование
		// Частичные уникальные индексы в БД - вторая линия защиты от гонок
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrUserDoubleBooking) {
				return ErrUserDoubleBooking
			}
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d status=%s",
		result.ID, result.Status)

	// 6. Отправляем уведомление после коммита
	// Сбой уведомления не влияет на результат бронирования
	uc.notifier.DispatchReservationCreated(ctx, result, departmentName)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		DepartmentID:    result.DepartmentID,
		ReservationDate: result.ReservationDate,
		ReservationTime: result.ReservationTime,
		Duration:        result.Duration,
		Amount:          result.Amount,
		PaymentMethod:   result.PaymentMethod,
		PaymentDate:     result.PaymentDate,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
