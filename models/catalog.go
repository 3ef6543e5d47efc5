package models

// Shift partitions the slot catalog into a morning and an afternoon block.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

// ValidShift reports whether s names a known shift. The empty shift is
// accepted by the resolvers and means "whole day", so it is not valid here.
func ValidShift(s Shift) bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// ShiftOf classifies a wall-clock start time (HH:MM). Times before noon
// belong to the morning shift. HH:MM strings are zero-padded, so plain
// string comparison orders them chronologically.
func ShiftOf(startTime string) Shift {
	if startTime < "12:00" {
		return ShiftMorning
	}
	return ShiftAfternoon
}

// TimeSlotDefinition is one fixed 30-minute bookable window from the catalog.
type TimeSlotDefinition struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// slotCatalog is the immutable reference list of bookable windows: seven
// morning slots (08:00-11:30) and seven afternoon slots (13:00-16:30).
// Entries reference it by value and it never changes at runtime.
var slotCatalog = []TimeSlotDefinition{
	{StartTime: "08:00", EndTime: "08:30"},
	{StartTime: "08:30", EndTime: "09:00"},
	{StartTime: "09:00", EndTime: "09:30"},
	{StartTime: "09:30", EndTime: "10:00"},
	{StartTime: "10:00", EndTime: "10:30"},
	{StartTime: "10:30", EndTime: "11:00"},
	{StartTime: "11:00", EndTime: "11:30"},
	{StartTime: "13:00", EndTime: "13:30"},
	{StartTime: "13:30", EndTime: "14:00"},
	{StartTime: "14:00", EndTime: "14:30"},
	{StartTime: "14:30", EndTime: "15:00"},
	{StartTime: "15:00", EndTime: "15:30"},
	{StartTime: "15:30", EndTime: "16:00"},
	{StartTime: "16:00", EndTime: "16:30"},
}

// CatalogAll returns the full ordered catalog.
func CatalogAll() []TimeSlotDefinition {
	out := make([]TimeSlotDefinition, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// CatalogByShift returns the seven definitions of the given shift, in order.
func CatalogByShift(shift Shift) []TimeSlotDefinition {
	var out []TimeSlotDefinition
	for _, def := range slotCatalog {
		if ShiftOf(def.StartTime) == shift {
			out = append(out, def)
		}
	}
	return out
}

// CatalogFind resolves a start time to its catalog definition. The fixed
// grid makes slot-conflict checks a membership test instead of interval
// arithmetic.
func CatalogFind(startTime string) (TimeSlotDefinition, bool) {
	for _, def := range slotCatalog {
		if def.StartTime == startTime {
			return def, true
		}
	}
	return TimeSlotDefinition{}, false
}
