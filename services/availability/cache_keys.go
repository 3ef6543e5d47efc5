// File: services/availability/cache_keys.go
package availability

import (
	"context"
	"fmt"

	"mediq/models"
	"mediq/utils"
)

func doctorKey(doctorID, date string, shift models.Shift) string {
	return fmt.Sprintf("availability:doctor:%s:%s:%s", doctorID, date, shift)
}

func specialtyKey(specialtyID, date string, shift models.Shift) string {
	return fmt.Sprintf("availability:specialty:%s:%s:%s", specialtyID, date, shift)
}

// shiftVariants covers every cached view of one day: each shift plus the
// whole-day view.
var shiftVariants = []models.Shift{models.ShiftMorning, models.ShiftAfternoon, ""}

// InvalidateDay drops every cached availability view touched by a mutation
// on (doctorID, date). specialtyID may be empty when the doctor could not
// be resolved; the doctor views are still dropped.
func InvalidateDay(ctx context.Context, cache utils.Cache, doctorID, specialtyID, date string) error {
	var keys []string
	for _, shift := range shiftVariants {
		keys = append(keys, doctorKey(doctorID, date, shift))
		if specialtyID != "" {
			keys = append(keys, specialtyKey(specialtyID, date, shift))
		}
	}
	return cache.Invalidate(ctx, keys...)
}
