// File: services/booking/service.go
package booking

import (
	"context"

	"go.uber.org/zap"

	"mediq/models"
	"mediq/services/availability"
	"mediq/utils"
)

const (
	transitionBook    = "book"
	transitionRelease = "release"
)

// Book flips one slot Free→Booked. On a lost race the Conflict propagates
// untouched: the caller reports "this time is no longer available" and
// re-resolves, it never silently substitutes another doctor.
func (s *DefaultBookingService) Book(ctx context.Context, slotID, source string) (*models.ScheduleEntry, error) {
	return s.transition(ctx, slotID, source, true)
}

// Release flips one slot Booked→Free. The appointment workflow must call
// this explicitly on cancellation; nothing releases a slot implicitly.
func (s *DefaultBookingService) Release(ctx context.Context, slotID, source string) (*models.ScheduleEntry, error) {
	return s.transition(ctx, slotID, source, false)
}

func (s *DefaultBookingService) transition(ctx context.Context, slotID, source string, booked bool) (*models.ScheduleEntry, error) {
	logger := utils.GetLogger()

	if source != models.TransitionSourceAppointment && source != models.TransitionSourceAdmin {
		return nil, utils.NewValidationError("unknown transition source %q", source)
	}

	entry, err := s.Schedules.SetSlotBooked(ctx, slotID, booked)
	if err != nil {
		return nil, err
	}

	transition := transitionRelease
	if booked {
		transition = transitionBook
	}

	if s.Audit != nil {
		record := models.SlotAudit{
			SlotID:     slotID,
			EntryID:    entry.ID,
			DoctorID:   entry.DoctorID,
			Date:       entry.Date,
			Transition: transition,
			Source:     source,
		}
		if err := s.Audit.Append(ctx, record); err != nil {
			// The transition already committed; a lost audit row is logged,
			// never unwound.
			logger.Error("failed to append slot audit record",
				zap.String("slotID", slotID),
				zap.Error(err))
		}
	}

	s.invalidate(ctx, entry.DoctorID, entry.Date)

	logger.Info("slot transition applied",
		zap.String("slotID", slotID),
		zap.String("doctorID", entry.DoctorID),
		zap.String("date", entry.Date),
		zap.String("transition", transition),
		zap.String("source", source))
	return entry, nil
}

func (s *DefaultBookingService) invalidate(ctx context.Context, doctorID, date string) {
	if s.Cache == nil {
		return
	}
	specialtyID := ""
	if doctor, err := s.Doctors.GetByID(ctx, doctorID); err == nil {
		specialtyID = doctor.SpecialtyID
	}
	if err := availability.InvalidateDay(ctx, s.Cache, doctorID, specialtyID, date); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("doctorID", doctorID),
			zap.String("date", date),
			zap.Error(err))
	}
}
