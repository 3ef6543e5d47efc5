// File: services/availability/aggregate.go
package availability

import (
	"context"
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	"mediq/models"
	"mediq/utils"
)

// GetAvailableBySpecialty fans out across every doctor of the specialty
// and merges their free slots by (startTime, endTime). A window where no
// doctor is free is omitted rather than emitted empty, so presence in the
// result is the availability predicate.
func (s *DefaultAvailabilityService) GetAvailableBySpecialty(ctx context.Context, specialtyID, date string, shift models.Shift) ([]models.SpecialtySlot, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if err := ValidateShift(shift); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	key := specialtyKey(specialtyID, date, shift)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key); err == nil {
			var slots []models.SpecialtySlot
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
			logger.Warn("discarding undecodable availability cache entry", zap.String("key", key))
		}
	}

	doctors, err := s.Doctors.GetBySpecialty(ctx, specialtyID)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, utils.NewNotFoundError("specialty %s", specialtyID)
	}

	groups := make(map[models.TimeSlotDefinition][]string)
	for _, doctor := range doctors {
		free, err := s.GetAvailable(ctx, doctor.ID, date, shift)
		if err != nil {
			// One unresolvable doctor never fails the whole specialty view.
			logger.Warn("skipping doctor in specialty aggregate",
				zap.String("doctorID", doctor.ID),
				zap.String("specialtyID", specialtyID),
				zap.Error(err))
			continue
		}
		for _, slot := range free {
			def := models.TimeSlotDefinition{StartTime: slot.StartTime, EndTime: slot.EndTime}
			groups[def] = append(groups[def], doctor.ID)
		}
	}

	result := make([]models.SpecialtySlot, 0, len(groups))
	for def, doctorIDs := range groups {
		sort.Strings(doctorIDs)
		result = append(result, models.SpecialtySlot{
			StartTime: def.StartTime,
			EndTime:   def.EndTime,
			DoctorIDs: doctorIDs,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })

	s.cacheStore(ctx, key, result)
	return result, nil
}
