package domain

import "github.com/m04kA/DPT-ReservationService/pkg/types"

// SlotCatalog фиксированный каталог часовых слотов с 09:00 до 18:00
// Каталог общий для всех департаментов и не настраивается
var SlotCatalog = []types.TimeString{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// IsCatalogSlot returns true if t is one of the fixed catalog slots
func IsCatalogSlot(t types.TimeString) bool {
	for _, slot := range SlotCatalog {
		if slot == t {
			return true
		}
	}
	return false
}
