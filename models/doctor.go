package models

import "time"

// Doctor is a directory record. The directory is read-only from the
// scheduling engine's point of view; accounts live elsewhere.
type Doctor struct {
	ID          string    `bson:"id" json:"id"`
	FullName    string    `bson:"fullName" json:"full_name"`
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`
	SpecialtyID string    `bson:"specialtyId" json:"specialty_id"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updated_at"`
}
