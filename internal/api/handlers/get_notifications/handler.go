package get_notifications

import (
	"net/http"
	"strconv"

	"github.com/m04kA/DPT-ReservationService/internal/api/handlers"
	"github.com/m04kA/DPT-ReservationService/internal/api/middleware"
	"github.com/m04kA/DPT-ReservationService/internal/service/notifications/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidRead   = "некорректный параметр read, ожидается true или false"
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

// Handle GET /api/v1/notifications?read=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Опциональный фильтр по прочитанности
	req := &models.GetUserNotificationsRequest{UserID: userID}
	if readStr := r.URL.Query().Get("read"); readStr != "" {
		read, err := strconv.ParseBool(readStr)
		if err != nil {
			h.logger.Warn("GET /notifications - Invalid read parameter: %s", readStr)
			handlers.RespondBadRequest(w, msgInvalidRead)
			return
		}
		req.Read = &read
	}

	result, err := h.service.GetUserNotifications(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to get notifications: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications - Retrieved %d notifications for user_id=%d (unread=%d)",
		len(result.Notifications), userID, result.UnreadCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
