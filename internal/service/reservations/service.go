package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DPT-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/DPT-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	authClient      AuthServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	authClient AuthServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		authClient:      authClient,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerOrAdmin(ctx, reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование по инициативе владельца
// Отмена - это смена статуса на cancelled, запись не удаляется.
// Повторная отмена - ошибка, а не no-op
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Отменить бронирование может только его владелец
	// Администраторы управляют статусами через UpdateStatus
	if reservation.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
		return ErrAccessDenied
	}

	if reservation.IsCancelled() {
		s.logger.Warn("Cancel: reservation id=%d already cancelled", reservationID)
		return ErrAlreadyCancelled
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.StatusCancelled); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// UpdateStatus обновляет статус бронирования по таблице допустимых переходов
// Доступно только администраторам (проверка через AuthService)
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by user=%d",
		reservationID, req.Status, req.UserID)

	// Проверяем административную роль до чтения бронирования - fail-closed
	isAdmin, err := s.authClient.IsAdministrator(ctx, req.UserID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to check administrator role for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: UpdateStatus - failed to check administrator role: %v", ErrInternal, err)
	}
	if !isAdmin {
		s.logger.Warn("UpdateStatus: user=%d is not an administrator", req.UserID)
		return ErrAccessDenied
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	if !reservation.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for reservation id=%d",
			reservation.Status, newStatus, reservationID)
		return fmt.Errorf("%w: cannot change status from %q to %q", ErrTransitionNotAllowed, reservation.Status, newStatus)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found during update", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)
	return nil
}

// checkOwnerOrAdmin проверяет, что пользователь владеет бронированием
// или является администратором
func (s *Service) checkOwnerOrAdmin(ctx context.Context, reservation *domain.Reservation, userID int64) error {
	if reservation.UserID == userID {
		return nil
	}

	isAdmin, err := s.authClient.IsAdministrator(ctx, userID)
	if err != nil {
		s.logger.Error("checkOwnerOrAdmin: failed to check administrator role for user=%d: %v", userID, err)
		return ErrAccessDenied
	}
	if !isAdmin {
		return ErrAccessDenied
	}

	return nil
}
