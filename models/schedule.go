package models

import "time"

// SlotID identifies one of the fixed bookable time slots. Each slot maps to a
// fixed clock window configured in the availability service.
type SlotID string

const (
	SlotMorning   SlotID = "morning"
	SlotAfternoon SlotID = "afternoon"
	SlotEvening   SlotID = "evening"
)

// WeeklySlot is a recurring operating window for one day of the week.
// Start and End are minutes from midnight (e.g. 480 for 8:00 AM).
type WeeklySlot struct {
	ID        string       `bson:"id" json:"id"`
	DayOfWeek time.Weekday `bson:"day_of_week" json:"dayOfWeek"`
	Start     int          `bson:"start" json:"start"`
	End       int          `bson:"end" json:"end"`
	Available bool         `bson:"available" json:"isAvailable"`
}

// BlackoutDate closes the business on a specific calendar date regardless of
// the weekly schedule.
type BlackoutDate struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason    string    `bson:"reason" json:"reason"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// ScheduleRules bundles the records the availability resolver operates on,
// fetched once per calendar render.
type ScheduleRules struct {
	Weekly    []WeeklySlot   `json:"weekly"`
	Blackouts []BlackoutDate `json:"blackouts"`
}
