// File: services/schedule/interface.go
package schedule

import (
	"context"

	doctorRepo "mediq/database/repository/doctor"
	scheduleRepo "mediq/database/repository/schedule"
	"mediq/models"
	"mediq/utils"
)

// ScheduleService carries the administrative schedule operations: day
// creation and whole-day deletion, plus the reads the admin grid uses.
type ScheduleService interface {
	CreateDay(ctx context.Context, req models.CreateDayRequest) (*models.ScheduleEntry, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.ScheduleEntry, error)
	GetDay(ctx context.Context, doctorID, date string) (*models.ScheduleEntry, error)
	DeleteDay(ctx context.Context, entryID string, force bool) error
}

// DefaultScheduleService is the concrete implementation.
type DefaultScheduleService struct {
	Repo    scheduleRepo.ScheduleRepository
	Doctors doctorRepo.DoctorRepository
	Cache   utils.Cache
}
