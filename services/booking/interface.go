// File: services/booking/interface.go
package booking

import (
	"context"

	auditRepo "mediq/database/repository/audit"
	doctorRepo "mediq/database/repository/doctor"
	scheduleRepo "mediq/database/repository/schedule"
	"mediq/models"
	"mediq/utils"
)

// BookingService is the single funnel for slot state changes. Appointment
// commits and administrative blocks both go through Book; cancellations
// and unblocks through Release. There is no other writer of isBooked.
type BookingService interface {
	Book(ctx context.Context, slotID, source string) (*models.ScheduleEntry, error)
	Release(ctx context.Context, slotID, source string) (*models.ScheduleEntry, error)
}

// DefaultBookingService is the concrete implementation.
type DefaultBookingService struct {
	Schedules scheduleRepo.ScheduleRepository
	Doctors   doctorRepo.DoctorRepository
	Audit     auditRepo.AuditRepository
	Cache     utils.Cache
}
