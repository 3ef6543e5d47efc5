// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mediq/models"
	"mediq/utils"
)

func (r *mongoScheduleRepo) CreateDay(ctx context.Context, entry *models.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, entry)
	if mongo.IsDuplicateKeyError(err) {
		// The unique (doctorId, date) index is the arbiter; a duplicate day
		// is a logical conflict, never retried here.
		return utils.NewConflictError("schedule already exists for doctor %s on %s", entry.DoctorID, entry.Date)
	}
	if err != nil {
		return fmt.Errorf("failed to insert schedule entry: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, entryID string) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.ScheduleEntry
	err := r.coll.FindOne(ctx, bson.M{"id": entryID}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewNotFoundError("schedule entry %s", entryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule entry: %w", err)
	}
	return &entry, nil
}

func (r *mongoScheduleRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Dates are zero-padded YYYY-MM-DD strings, so the lexicographic sort
	// is the chronological one.
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding schedule entries: %w", err)
	}
	return entries, nil
}

func (r *mongoScheduleRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.ScheduleEntry
	err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID, "date": date}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewNotFoundError("no schedule for doctor %s on %s", doctorID, date)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule entry: %w", err)
	}
	return &entry, nil
}

func (r *mongoScheduleRepo) GetBySlotID(ctx context.Context, slotID string) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.ScheduleEntry
	err := r.coll.FindOne(ctx, bson.M{"timeSlots.id": slotID}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NewNotFoundError("slot %s", slotID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule entry by slot: %w", err)
	}
	return &entry, nil
}

func (r *mongoScheduleRepo) DeleteDay(ctx context.Context, entryID string, force bool) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": entryID}
	if !force {
		// Refuse, in the same write, to destroy a day an appointment still
		// references. force=true accepts the orphaning risk explicitly.
		filter["timeSlots"] = bson.M{"$not": bson.M{"$elemMatch": bson.M{"isBooked": true}}}
	}

	var deleted models.ScheduleEntry
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		if !force {
			// Distinguish "entry has active bookings" from "no such entry".
			count, countErr := r.coll.CountDocuments(ctx, bson.M{"id": entryID})
			if countErr == nil && count > 0 {
				return nil, utils.NewConflictError("cannot delete a day with active bookings")
			}
		}
		return nil, utils.NewNotFoundError("schedule entry %s", entryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	return &deleted, nil
}
