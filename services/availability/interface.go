// File: services/availability/interface.go
package availability

import (
	"context"
	"time"

	doctorRepo "mediq/database/repository/doctor"
	scheduleRepo "mediq/database/repository/schedule"
	"mediq/models"
	"mediq/utils"
)

// AvailabilityService resolves free slots for one doctor or for a whole
// specialty. Reads may serve a slightly stale snapshot; the booking
// transition re-validates at commit time regardless.
type AvailabilityService interface {
	GetAvailable(ctx context.Context, doctorID, date string, shift models.Shift) ([]models.SlotInstance, error)
	GetAvailableBySpecialty(ctx context.Context, specialtyID, date string, shift models.Shift) ([]models.SpecialtySlot, error)
}

// DefaultAvailabilityService is the concrete resolver.
type DefaultAvailabilityService struct {
	Schedules scheduleRepo.ScheduleRepository
	Doctors   doctorRepo.DoctorRepository
	Cache     utils.Cache
	CacheTTL  time.Duration
}
