package models

import "time"

// SlotInstance is one bookable window inside a schedule entry. Its ID is
// durable and independent of array position so later writes can target it
// regardless of read-time ordering. Instances are created free and only
// ever flip isBooked through the booking transition; they are removed only
// when the whole entry is deleted.
type SlotInstance struct {
	ID        string `bson:"id" json:"id"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	IsBooked  bool   `bson:"isBooked" json:"isBooked"`
}

// ScheduleEntry is a doctor's published availability for one calendar day.
// Exactly one entry exists per (doctorId, date); date is a timezone-naive
// YYYY-MM-DD string and is never compared against timestamps. Neither
// doctorId nor date is updated in place; changing either is
// delete-and-recreate.
type ScheduleEntry struct {
	ID        string         `bson:"id" json:"id"`
	DoctorID  string         `bson:"doctorId" json:"doctorId"`
	Date      string         `bson:"date" json:"date"`
	TimeSlots []SlotInstance `bson:"timeSlots" json:"timeSlots"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// BookedSlotCount returns how many slots of the entry are currently booked.
func (e *ScheduleEntry) BookedSlotCount() int {
	n := 0
	for _, slot := range e.TimeSlots {
		if slot.IsBooked {
			n++
		}
	}
	return n
}

// FreeSlot is one open window in an availability response.
type FreeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SpecialtySlot is one row of the specialty aggregate: a window plus every
// doctor of the specialty free at it. Windows with no free doctor are
// omitted from the response entirely, so presence doubles as the
// availability predicate.
type SpecialtySlot struct {
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	DoctorIDs []string `json:"doctor_ids"`
}

// CreateDayRequest is the admin payload for publishing a doctor's day.
type CreateDayRequest struct {
	DoctorID  string               `json:"doctorId" binding:"required"`
	Date      string               `json:"date" binding:"required"`
	TimeSlots []TimeSlotDefinition `json:"timeSlots" binding:"required"`
}

// ToggleSlotRequest flips one slot between free and booked. Source records
// which path asked for the transition.
type ToggleSlotRequest struct {
	IsBooked bool   `json:"isBooked"`
	Source   string `json:"source"`
}
