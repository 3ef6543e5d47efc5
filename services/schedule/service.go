// File: services/schedule/service.go
package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mediq/models"
	"mediq/services/availability"
	"mediq/utils"
)

// CreateDay publishes a doctor's schedule for one calendar day. All
// validation happens before any write; the store's unique (doctorId, date)
// index turns a duplicate day into a Conflict.
func (s *DefaultScheduleService) CreateDay(ctx context.Context, req models.CreateDayRequest) (*models.ScheduleEntry, error) {
	logger := utils.GetLogger()

	if err := availability.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	if len(req.TimeSlots) == 0 {
		return nil, utils.NewValidationError("at least one time slot is required")
	}

	// Every selected start time must resolve against the catalog, once.
	// The catalog definition is authoritative for the end time.
	seen := make(map[string]bool, len(req.TimeSlots))
	defs := make([]models.TimeSlotDefinition, 0, len(req.TimeSlots))
	for _, slot := range req.TimeSlots {
		def, ok := models.CatalogFind(slot.StartTime)
		if !ok {
			return nil, utils.NewValidationError("start time %q is not in the slot catalog", slot.StartTime)
		}
		if seen[def.StartTime] {
			return nil, utils.NewValidationError("duplicate start time %q", slot.StartTime)
		}
		seen[def.StartTime] = true
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].StartTime < defs[j].StartTime })

	doctor, err := s.Doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &models.ScheduleEntry{
		ID:        uuid.New().String(),
		DoctorID:  doctor.ID,
		Date:      req.Date,
		TimeSlots: make([]models.SlotInstance, 0, len(defs)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, def := range defs {
		entry.TimeSlots = append(entry.TimeSlots, models.SlotInstance{
			ID:        uuid.New().String(),
			StartTime: def.StartTime,
			EndTime:   def.EndTime,
			IsBooked:  false,
		})
	}

	if err := s.Repo.CreateDay(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidate(ctx, doctor.ID, doctor.SpecialtyID, entry.Date)
	logger.Info("schedule day created",
		zap.String("entryID", entry.ID),
		zap.String("doctorID", doctor.ID),
		zap.String("date", entry.Date),
		zap.Int("slots", len(entry.TimeSlots)))
	return entry, nil
}

// ListByDoctor returns a doctor's entries ascending by date.
func (s *DefaultScheduleService) ListByDoctor(ctx context.Context, doctorID string) ([]models.ScheduleEntry, error) {
	if _, err := s.Doctors.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}
	entries, err := s.Repo.GetByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	return entries, nil
}

// GetDay returns the full entry for (doctorID, date), booked slots
// included. The availability resolver is the free-slot view.
func (s *DefaultScheduleService) GetDay(ctx context.Context, doctorID, date string) (*models.ScheduleEntry, error) {
	if err := availability.ValidateDate(date); err != nil {
		return nil, err
	}
	return s.Repo.GetByDoctorAndDate(ctx, doctorID, date)
}

// DeleteDay removes a whole entry and all its slots together. A day with
// active bookings is refused unless force is set.
func (s *DefaultScheduleService) DeleteDay(ctx context.Context, entryID string, force bool) error {
	logger := utils.GetLogger()

	deleted, err := s.Repo.DeleteDay(ctx, entryID, force)
	if err != nil {
		return err
	}

	specialtyID := ""
	if doctor, derr := s.Doctors.GetByID(ctx, deleted.DoctorID); derr == nil {
		specialtyID = doctor.SpecialtyID
	}
	s.invalidate(ctx, deleted.DoctorID, specialtyID, deleted.Date)

	if booked := deleted.BookedSlotCount(); booked > 0 {
		logger.Warn("force-deleted day with active bookings",
			zap.String("entryID", entryID),
			zap.String("doctorID", deleted.DoctorID),
			zap.String("date", deleted.Date),
			zap.Int("bookedSlots", booked))
	} else {
		logger.Info("schedule day deleted",
			zap.String("entryID", entryID),
			zap.String("doctorID", deleted.DoctorID),
			zap.String("date", deleted.Date))
	}
	return nil
}

func (s *DefaultScheduleService) invalidate(ctx context.Context, doctorID, specialtyID, date string) {
	if s.Cache == nil {
		return
	}
	if err := availability.InvalidateDay(ctx, s.Cache, doctorID, specialtyID, date); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("doctorID", doctorID),
			zap.String("date", date),
			zap.Error(err))
	}
}
