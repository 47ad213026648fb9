package get_available_slots

import (
	"github.com/m04kA/DPT-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/DPT-ReservationService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	DepartmentID   int64    `json:"departmentId"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	available := make([]string, 0, len(resp.AvailableSlots))
	for _, slot := range resp.AvailableSlots {
		available = append(available, slot.String())
	}

	booked := make([]string, 0, len(resp.BookedSlots))
	for _, slot := range resp.BookedSlots {
		booked = append(booked, slot.String())
	}

	return &SlotsResponse{
		DepartmentID:   resp.DepartmentID,
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: available,
		BookedSlots:    booked,
	}
}
