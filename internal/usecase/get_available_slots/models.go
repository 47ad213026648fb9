package get_available_slots

import (
	"time"

	"github.com/m04kA/DPT-ReservationService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	DepartmentID int64     // ID департамента
	Date         time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списками слотов
type Response struct {
	DepartmentID   int64              // ID департамента
	Date           time.Time          // Дата, на которую запрашивались слоты
	AvailableSlots []types.TimeString // Свободные слоты из каталога
	BookedSlots    []types.TimeString // Слоты, занятые активными бронированиями
}
