package create_reservation

import (
	"time"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	createReservation "github.com/m04kA/DPT-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/DPT-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	DepartmentID    int64   `json:"departmentId"`
	ReservationDate string  `json:"reservationDate"` // "2026-05-01"
	ReservationTime string  `json:"reservationTime"` // "10:00"
	Duration        string  `json:"duration,omitempty"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	DepartmentID    int64   `json:"departmentId"`
	ReservationDate string  `json:"reservationDate"`
	ReservationTime string  `json:"reservationTime"`
	Duration        string  `json:"duration"`
	Amount          float64 `json:"amount"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	PaymentDate     *string `json:"paymentDate,omitempty"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	// Парсим дату
	reservationDate, err := time.Parse(domain.DateFormat, r.ReservationDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	reservationTime, err := types.NewTimeStringFromString(r.ReservationTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:        userID,
		DepartmentID:  r.DepartmentID,
		Date:          reservationDate,
		Time:          reservationTime,
		Duration:      r.Duration,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	response := &ReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		DepartmentID:    resp.DepartmentID,
		ReservationDate: resp.ReservationDate.Format(domain.DateFormat),
		ReservationTime: resp.ReservationTime.String(),
		Duration:        resp.Duration,
		Amount:          resp.Amount,
		PaymentMethod:   resp.PaymentMethod,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.PaymentDate != nil {
		paymentDate := resp.PaymentDate.Format(domain.DateFormat)
		response.PaymentDate = &paymentDate
	}

	return response
}
