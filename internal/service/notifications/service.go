package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	"github.com/m04kA/DPT-ReservationService/internal/infra/queue"
	notificationRepo "github.com/m04kA/DPT-ReservationService/internal/infra/storage/notification"
	"github.com/m04kA/DPT-ReservationService/internal/service/notifications/models"
)

// Service сервис для работы с уведомлениями
type Service struct {
	notificationRepo NotificationRepository
	publisher        EventPublisher // nil, если публикация событий выключена
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
// publisher может быть nil - тогда события в брокер не публикуются
func NewService(
	notificationRepo NotificationRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// DispatchReservationCreated отправляет уведомление о созданном бронировании
// и публикует событие в брокер
//
// Строго best-effort: любые ошибки логируются и проглатываются. Бронирование
// уже сохранено, и сбой уведомления не должен его откатить или всплыть наружу
func (s *Service) DispatchReservationCreated(ctx context.Context, reservation *domain.Reservation, departmentName string) {
	title := "Reserva Pendiente"
	message := fmt.Sprintf("Tu reserva en %s está pendiente de confirmación", departmentName)
	notificationType := domain.NotificationInfo

	if reservation.Status == domain.StatusConfirmed {
		title = "Reserva Confirmada"
		message = fmt.Sprintf("Tu reserva en %s ha sido confirmada", departmentName)
		notificationType = domain.NotificationSuccess
	}

	actionType := domain.ActionTypeReservation
	notification := &domain.Notification{
		UserID:       reservation.UserID,
		Title:        title,
		Message:      message,
		Type:         notificationType,
		Icon:         domain.IconForType(notificationType),
		DepartmentID: &reservation.DepartmentID,
		ActionType:   &actionType,
		ActionID:     &reservation.ID,
	}

	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Error("DispatchReservationCreated: failed to persist notification for user=%d reservation=%d: %v",
			reservation.UserID, reservation.ID, err)
	} else {
		s.logger.Info("DispatchReservationCreated: notification id=%d created for user=%d",
			notification.ID, reservation.UserID)
	}

	if s.publisher == nil {
		return
	}

	event := queue.ReservationEvent{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		DepartmentID:  reservation.DepartmentID,
		Date:          reservation.ReservationDate.Format(domain.DateFormat),
		Time:          reservation.ReservationTime.String(),
		Status:        string(reservation.Status),
		Amount:        reservation.Amount,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.publisher.PublishReservationEvent(ctx, event); err != nil {
		// Ошибка уже залогирована publisher-ом, здесь только фиксируем факт
		s.logger.Warn("DispatchReservationCreated: event publish failed for reservation=%d", reservation.ID)
	}
}

// GetUserNotifications получает уведомления пользователя с количеством непрочитанных
func (s *Service) GetUserNotifications(ctx context.Context, req *models.GetUserNotificationsRequest) (*models.NotificationListResponse, error) {
	s.logger.Info("GetUserNotifications: fetching notifications for user=%d", req.UserID)

	notifications, err := s.notificationRepo.GetByUserID(ctx, req.UserID, req.Read)
	if err != nil {
		s.logger.Error("GetUserNotifications: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserNotifications - repository error: %v", ErrInternal, err)
	}

	unreadCount, err := s.notificationRepo.CountUnread(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserNotifications: failed to count unread for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserNotifications - count unread: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserNotifications: fetched %d notifications for user=%d (unread=%d)",
		len(notifications), req.UserID, unreadCount)
	return models.FromDomainNotificationList(notifications, unreadCount), nil
}

// UnreadCount возвращает количество непрочитанных уведомлений пользователя
func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		s.logger.Error("UnreadCount: repository error for user=%d: %v", userID, err)
		return 0, fmt.Errorf("%w: UnreadCount - repository error: %v", ErrInternal, err)
	}
	return count, nil
}

// MarkRead помечает уведомление прочитанным
// Пользователь может пометить только своё уведомление
func (s *Service) MarkRead(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("MarkRead: marking notification id=%d as read by user=%d", id, userID)

	if err := s.checkOwnership(ctx, id, userID); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// MarkAllRead помечает все уведомления пользователя прочитанными
func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	s.logger.Info("MarkAllRead: marking all notifications as read for user=%d", userID)

	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		s.logger.Error("MarkAllRead: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Delete удаляет уведомление
// Пользователь может удалить только своё уведомление
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting notification id=%d by user=%d", id, userID)

	if err := s.checkOwnership(ctx, id, userID); err != nil {
		return err
	}

	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("Delete: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// checkOwnership проверяет, что уведомление принадлежит пользователю
func (s *Service) checkOwnership(ctx context.Context, id int64, userID int64) error {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("checkOwnership: notification id=%d not found", id)
			return ErrNotificationNotFound
		}
		s.logger.Error("checkOwnership: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: checkOwnership - repository error: %v", ErrInternal, err)
	}

	if notification.UserID != userID {
		s.logger.Warn("checkOwnership: user=%d does not own notification id=%d", userID, id)
		return ErrAccessDenied
	}

	return nil
}
