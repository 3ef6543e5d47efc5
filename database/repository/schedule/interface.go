// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"mediq/database"
	"mediq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository owns one schedule document per (doctorId, date),
// embedding its slot list. Every mutating operation is a single
// conditional write against that document, never a read followed by a
// write, so concurrent transitions on the same entry serialize at the
// storage level.
type ScheduleRepository interface {
	CreateDay(ctx context.Context, entry *models.ScheduleEntry) error
	GetByID(ctx context.Context, entryID string) (*models.ScheduleEntry, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.ScheduleEntry, error)
	GetByDoctorAndDate(ctx context.Context, doctorID, date string) (*models.ScheduleEntry, error)
	GetBySlotID(ctx context.Context, slotID string) (*models.ScheduleEntry, error)
	DeleteDay(ctx context.Context, entryID string, force bool) (*models.ScheduleEntry, error)
	SetSlotBooked(ctx context.Context, slotID string, booked bool) (*models.ScheduleEntry, error)
	EnsureIndexes() error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.Database()
	return &mongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
}
