// File: services/availability/resolver.go
package availability

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"mediq/models"
	"mediq/utils"
)

// ValidateDate checks the canonical calendar-day form. Every date in the
// engine is a YYYY-MM-DD wall-clock string; timestamps never enter a
// comparison.
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return utils.NewValidationError("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

// ValidateShift accepts the two shift names or empty for the whole day.
func ValidateShift(shift models.Shift) error {
	if shift != "" && !models.ValidShift(shift) {
		return utils.NewValidationError("invalid shift %q", shift)
	}
	return nil
}

// GetAvailable returns the free slots of one doctor on one date, ordered
// by start time. A doctor with no published schedule yields an empty
// result, not an error; that state is distinct from "all booked" only to
// humans, not to callers of this method.
func (s *DefaultAvailabilityService) GetAvailable(ctx context.Context, doctorID, date string, shift models.Shift) ([]models.SlotInstance, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if err := ValidateShift(shift); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	key := doctorKey(doctorID, date, shift)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key); err == nil {
			var slots []models.SlotInstance
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
			logger.Warn("discarding undecodable availability cache entry", zap.String("key", key))
		}
	}

	entry, err := s.Schedules.GetByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		if utils.IsNotFound(err) {
			return []models.SlotInstance{}, nil
		}
		return nil, err
	}

	free := filterFree(entry.TimeSlots, shift)
	s.cacheStore(ctx, key, free)
	return free, nil
}

// filterFree keeps the unbooked slots of the requested shift, ordered by
// start time. A booked slot never leaves this function.
func filterFree(slots []models.SlotInstance, shift models.Shift) []models.SlotInstance {
	free := make([]models.SlotInstance, 0, len(slots))
	for _, slot := range slots {
		if slot.IsBooked {
			continue
		}
		if shift != "" && models.ShiftOf(slot.StartTime) != shift {
			continue
		}
		free = append(free, slot)
	}
	sort.Slice(free, func(i, j int) bool { return free[i].StartTime < free[j].StartTime })
	return free
}

func (s *DefaultAvailabilityService) cacheStore(ctx context.Context, key string, value interface{}) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, string(data), s.CacheTTL); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.String("key", key), zap.Error(err))
	}
}
