// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"mediq/database"
	"mediq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository is the doctor directory consumed by the scheduling
// engine. Reads only; account management lives elsewhere.
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetBySpecialty(ctx context.Context, specialtyID string) ([]models.Doctor, error)
	EnsureIndexes() error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.Database()
	return &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
}
