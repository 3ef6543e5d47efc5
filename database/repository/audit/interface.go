// File: database/repository/audit/interface.go
package auditRepo

import (
	"context"

	"mediq/database"
	"mediq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository records booking transitions. Append-only: rows are never
// updated or deleted.
type AuditRepository interface {
	Append(ctx context.Context, record models.SlotAudit) error
	GetBySlotID(ctx context.Context, slotID string) ([]models.SlotAudit, error)
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo constructs a new MongoDB AuditRepository.
func NewMongoAuditRepo() AuditRepository {
	db := database.Database()
	return &mongoAuditRepo{
		coll: db.Collection("slot_audit"),
	}
}
