// File: database/repository/audit/crud.go
package auditRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mediq/models"
)

func (r *mongoAuditRepo) Append(ctx context.Context, record models.SlotAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to append slot audit record: %w", err)
	}
	return nil
}

func (r *mongoAuditRepo) GetBySlotID(ctx context.Context, slotID string) ([]models.SlotAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"slotId": slotID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slot audit records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.SlotAudit
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding slot audit records: %w", err)
	}
	return records, nil
}
