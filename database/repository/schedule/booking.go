// File: database/repository/schedule/booking.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mediq/models"
	"mediq/utils"
)

// SetSlotBooked is the booking transition: a single conditional update
// that flips one slot from !booked to booked. The precondition rides in
// the filter, so of two racing transitions exactly one matches; the loser
// gets a Conflict and must re-resolve availability.
func (r *mongoScheduleRepo) SetSlotBooked(ctx context.Context, slotID string, booked bool) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"timeSlots": bson.M{
			"$elemMatch": bson.M{
				"id":       slotID,
				"isBooked": !booked,
			},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"timeSlots.$.isBooked": booked,
			"updatedAt":            time.Now().UTC(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update slot state: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the slot does not exist or it is already in the target
		// state (a racing request won first).
		count, countErr := r.coll.CountDocuments(ctx, bson.M{"timeSlots.id": slotID})
		if countErr == nil && count == 0 {
			return nil, utils.NewNotFoundError("slot %s", slotID)
		}
		if booked {
			return nil, utils.NewConflictError("slot %s is no longer available", slotID)
		}
		return nil, utils.NewConflictError("slot %s is already free", slotID)
	}

	entry, err := r.GetBySlotID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("slot state updated but entry fetch failed: %w", err)
	}
	return entry, nil
}
