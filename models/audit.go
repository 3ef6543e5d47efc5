package models

import "time"

// Booking transition sources. Administrative blocks and appointment-driven
// bookings funnel through the same primitive; the audit row records which
// path asked.
const (
	TransitionSourceAppointment = "appointment"
	TransitionSourceAdmin       = "admin"
)

// SlotAudit is an append-only record of one booking transition.
type SlotAudit struct {
	ID         string    `bson:"id" json:"id"`
	SlotID     string    `bson:"slotId" json:"slotId"`
	EntryID    string    `bson:"entryId" json:"entryId"`
	DoctorID   string    `bson:"doctorId" json:"doctorId"`
	Date       string    `bson:"date" json:"date"`
	Transition string    `bson:"transition" json:"transition"` // "book" or "release"
	Source     string    `bson:"source" json:"source"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
