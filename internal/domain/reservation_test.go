package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"pending to rejected", StatusPending, StatusRejected, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"rejected is terminal", StatusRejected, StatusPending, false},
		{"no self transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestReservationStatus_IsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusRejected.IsActive())
}

func TestReservation_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusRejected}).CanBeCancelled())
}

func TestIsCatalogSlot(t *testing.T) {
	for _, slot := range SlotCatalog {
		assert.True(t, IsCatalogSlot(slot), "slot %s must be in catalog", slot)
	}

	assert.False(t, IsCatalogSlot("08:00"))
	assert.False(t, IsCatalogSlot("19:00"))
	assert.False(t, IsCatalogSlot("09:30"))
	assert.False(t, IsCatalogSlot(""))
}

func TestSlotCatalog_Size(t *testing.T) {
	// Каталог фиксирован: 10 часовых слотов с 09:00 по 18:00
	assert.Len(t, SlotCatalog, 10)
	assert.Equal(t, "09:00", SlotCatalog[0].String())
	assert.Equal(t, "18:00", SlotCatalog[len(SlotCatalog)-1].String())
}
