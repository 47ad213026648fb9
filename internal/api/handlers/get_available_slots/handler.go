package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/DPT-ReservationService/internal/api/handlers"
	"github.com/m04kA/DPT-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/DPT-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDepartmentID = "некорректный ID департамента"
	msgMissingDate         = "отсутствует параметр date"
	msgInvalidDateFormat   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDepartmentNotFound  = "департамент не найден"
	msgInvalidDate         = "дата должна быть строго после сегодняшней"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/departments/{departmentId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем departmentId из URL
	vars := mux.Vars(r)
	departmentIDStr := vars["departmentId"]

	departmentID, err := strconv.ParseInt(departmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /departments/{id}/available-slots - Invalid department ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	// Извлекаем дату из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /departments/{id}/available-slots - Missing date parameter: department_id=%d", departmentID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /departments/{id}/available-slots - Invalid date format: date=%s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		DepartmentID: departmentID,
		Date:         date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDepartmentNotFound):
			h.logger.Warn("GET /departments/{id}/available-slots - Department not found: department_id=%d", departmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /departments/{id}/available-slots - Invalid date: department_id=%d, date=%s", departmentID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /departments/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDepartmentID)

		default:
			h.logger.Error("GET /departments/{id}/available-slots - Failed to get slots: department_id=%d, error=%v",
				departmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /departments/{id}/available-slots - Slots retrieved: department_id=%d, date=%s, available=%d",
		departmentID, dateStr, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
