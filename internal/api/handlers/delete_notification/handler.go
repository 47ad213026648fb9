package delete_notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DPT-ReservationService/internal/api/handlers"
	"github.com/m04kA/DPT-ReservationService/internal/api/middleware"
	"github.com/m04kA/DPT-ReservationService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgNotFound              = "уведомление не найдено"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/notifications/{notificationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем notificationId из URL
	vars := mux.Vars(r)
	notificationIDStr := vars["notificationId"]

	notificationID, err := strconv.ParseInt(notificationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /notifications/{id} - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /notifications/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), notificationID, userID); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("DELETE /notifications/{id} - Notification not found: notification_id=%d", notificationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, notifications.ErrAccessDenied):
			h.logger.Warn("DELETE /notifications/{id} - Access denied: notification_id=%d, user_id=%d",
				notificationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /notifications/{id} - Failed to delete notification: notification_id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /notifications/{id} - Notification deleted: notification_id=%d, user_id=%d",
		notificationID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
