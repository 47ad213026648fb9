package get_available_slots

import (
	"github.com/m04kA/DPT-ReservationService/internal/domain"
	"github.com/m04kA/DPT-ReservationService/pkg/types"
)

// splitSlots делит каталог слотов на свободные и занятые по активным бронированиям
// Порядок слотов в обоих списках повторяет порядок каталога
func splitSlots(reservations []*domain.Reservation) (available, booked []types.TimeString) {
	taken := make(map[types.TimeString]bool, len(reservations))
	for _, reservation := range reservations {
		if reservation.IsActive() {
			taken[reservation.ReservationTime] = true
		}
	}

	available = make([]types.TimeString, 0, len(domain.SlotCatalog))
	booked = make([]types.TimeString, 0, len(taken))

	for _, slot := range domain.SlotCatalog {
		if taken[slot] {
			booked = append(booked, slot)
		} else {
			available = append(available, slot)
		}
	}

	return available, booked
}
