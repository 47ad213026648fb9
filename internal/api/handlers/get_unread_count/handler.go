package get_unread_count

import (
	"net/http"

	"github.com/m04kA/DPT-ReservationService/internal/api/handlers"
	"github.com/m04kA/DPT-ReservationService/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

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

// Handle GET /api/v1/notifications/unread-count
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications/unread-count - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /notifications/unread-count - Failed to count unread: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, UnreadCountResponse{UnreadCount: count})
}

// UnreadCountResponse HTTP response model
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}
