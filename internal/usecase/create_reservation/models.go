package create_reservation

import (
	"time"

	"github.com/m04kA/DPT-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64            // ID пользователя
	DepartmentID  int64            // ID департамента
	Date          time.Time        // Дата бронирования (без времени)
	Time          types.TimeString // Время слота (например, "10:00")
	Duration      string           // Метка длительности (например, "1h"), пустая = значение по умолчанию
	PaymentMethod *string          // Способ оплаты (опционально)
	Notes         *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID пользователя
	DepartmentID    int64            // ID департамента
	ReservationDate time.Time        // Дата бронирования
	ReservationTime types.TimeString // Время слота
	Duration        string           // Метка длительности
	Amount          float64          // Стоимость (цена за ночь департамента)
	PaymentMethod   *string          // Способ оплаты
	PaymentDate     *time.Time       // Дата оплаты (проставляется для confirmed)
	Status          string           // Статус бронирования
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
