package availability

import (
	"time"

	"haulify/models"
)

const dateLayout = "2006-01-02"

// IsDateAvailable decides whether any booking may land on the given calendar
// date. The check is at day granularity: time-of-day on either argument is
// ignored. A blackout entry always wins over the weekly schedule, and a day
// whose weekly slots are all absent or unavailable is itself unavailable.
func IsDateAvailable(date, today time.Time, weekly []models.WeeklySlot, blackouts []models.BlackoutDate) bool {
	if truncateToDay(date).Before(truncateToDay(today)) {
		return false
	}

	dateStr := date.Format(dateLayout)
	for _, b := range blackouts {
		if b.Date == dateStr {
			return false
		}
	}

	for _, w := range weekly {
		if w.DayOfWeek == date.Weekday() && w.Available {
			return true
		}
	}
	return false
}

// IsSlotAvailable decides whether the requested slot on the given date lies
// entirely within some available weekly operating window for that weekday.
// Partial overlap is not sufficient, and an unknown slot identifier fails
// closed.
func IsSlotAvailable(date time.Time, slot models.SlotID, weekly []models.WeeklySlot) bool {
	window, ok := Window(slot)
	if !ok {
		return false
	}

	for _, w := range weekly {
		if w.DayOfWeek != date.Weekday() || !w.Available {
			continue
		}
		if w.Start <= window.Start && w.End >= window.End {
			return true
		}
	}
	return false
}

// AvailableSlots lists the slots bookable on a date, empty when the date
// itself is unavailable.
func AvailableSlots(date, today time.Time, rules models.ScheduleRules) []models.SlotID {
	if !IsDateAvailable(date, today, rules.Weekly, rules.Blackouts) {
		return nil
	}
	var out []models.SlotID
	for _, slot := range Slots() {
		if IsSlotAvailable(date, slot, rules.Weekly) {
			out = append(out, slot)
		}
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
