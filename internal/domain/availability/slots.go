package availability

import (
	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/models"
)

const DefaultToleranceMinutes = 30

// MatchingSlots keeps grid order. Distance is measured without wrapping
// around midnight.
func MatchingSlots(
	grid []clock.TimeOfDay,
	requested clock.TimeOfDay,
	toleranceMinutes int,
) []clock.TimeOfDay {

	out := make([]clock.TimeOfDay, 0, len(grid))
	for _, slot := range grid {
		if clock.AbsDiffMinutes(slot, requested) <= toleranceMinutes {
			out = append(out, slot)
		}
	}
	return out
}

// FreeSlots returns the candidates, in order, that still seat partySize.
func FreeSlots(
	candidates []clock.TimeOfDay,
	totalCapacity int,
	booked map[clock.TimeOfDay]int,
	partySize int,
) []clock.TimeOfDay {

	out := make([]clock.TimeOfDay, 0, len(candidates))
	for _, slot := range candidates {
		if totalCapacity-booked[slot] >= partySize {
			out = append(out, slot)
		}
	}
	return out
}

// TotalCapacity is the sum of seatCount x quantity over all configurations.
func TotalCapacity(tables []models.TableConfiguration) int {
	total := 0
	for _, t := range tables {
		total += t.SeatCount * t.Quantity
	}
	return total
}
