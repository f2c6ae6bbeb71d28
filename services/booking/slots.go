package booking

import (
	"fmt"
	"time"

	"turnero/models"
)

// SlotID derives a slot identifier from its start instant. Multiple processes
// regenerating the same catalog must agree on identity, so the ID is a pure
// function of the timestamp.
func SlotID(startAt time.Time) string {
	return fmt.Sprintf("slot_%d", startAt.UnixMilli())
}

// GenerateSlots emits the offerable slots for the horizon: one slot per
// configured hour for each of the next horizonDays calendar days, starting
// tomorrow, chronologically ordered, minutes and seconds zeroed. Pure and
// deterministic; no error conditions.
func GenerateSlots(now time.Time, horizonDays int, hours []int) []models.Slot {
	slots := make([]models.Slot, 0, horizonDays*len(hours))
	for day := 1; day <= horizonDays; day++ {
		d := now.AddDate(0, 0, day)
		for _, hour := range hours {
			startAt := time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
			slots = append(slots, models.Slot{
				ID:      SlotID(startAt),
				Label:   startAt.Format("Mon 2 Jan - 15:04"),
				StartAt: startAt,
			})
		}
	}
	return slots
}
