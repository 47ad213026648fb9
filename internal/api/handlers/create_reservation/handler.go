package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/DPT-ReservationService/internal/api/handlers"
	"github.com/m04kA/DPT-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/DPT-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDepartmentNotFound = "департамент не найден"
	msgInvalidDate        = "дата бронирования должна быть строго после сегодняшней"
	msgInvalidTimeSlot    = "время не входит в каталог слотов"
	msgUserDoubleBooking  = "у вас уже есть активное бронирование этого департамента на эту дату"
	msgSlotTaken          = "выбранный слот уже занят"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createReservation.ErrUserDoubleBooking):
			h.logger.Warn("POST /reservations - User double booking: user_id=%d, department_id=%d", userID, req.DepartmentID)
			handlers.RespondError(w, http.StatusConflict, msgUserDoubleBooking)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: user_id=%d, department_id=%d", userID, req.DepartmentID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createReservation.ErrDepartmentNotFound):
			h.logger.Warn("POST /reservations - Department not found: department_id=%d", req.DepartmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid reservation date: user_id=%d, department_id=%d", userID, req.DepartmentID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: user_id=%d, department_id=%d", userID, req.DepartmentID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, department_id=%d, error=%v",
				userID, req.DepartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, department_id=%d",
		result.ID, userID, req.DepartmentID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
