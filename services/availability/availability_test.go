package availability

import (
	"testing"
	"time"

	"haulify/models"

	"github.com/stretchr/testify/assert"
)

// 2026-09-07 is a Monday.
var (
	aMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	today   = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
)

func fullMonday() []models.WeeklySlot {
	return []models.WeeklySlot{
		{DayOfWeek: time.Monday, Start: 0, End: 23*60 + 59, Available: true},
	}
}

func TestIsDateAvailableRejectsPastDates(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	assert.False(t, IsDateAvailable(yesterday, today, fullMonday(), nil))

	// Same day counts as bookable regardless of time-of-day.
	sameDayLater := time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)
	weekly := []models.WeeklySlot{
		{DayOfWeek: sameDayLater.Weekday(), Start: 0, End: 1440, Available: true},
	}
	assert.True(t, IsDateAvailable(sameDayLater, today, weekly, nil))
}

func TestBlackoutOverridesWeeklyAvailability(t *testing.T) {
	blackouts := []models.BlackoutDate{
		{Date: "2026-09-07", Reason: "Labour Day"},
	}

	assert.True(t, IsDateAvailable(aMonday, today, fullMonday(), nil))
	assert.False(t, IsDateAvailable(aMonday, today, fullMonday(), blackouts))

	// Blackout on another date does not leak.
	otherBlackout := []models.BlackoutDate{{Date: "2026-09-14", Reason: "maintenance"}}
	assert.True(t, IsDateAvailable(aMonday, today, fullMonday(), otherBlackout))
}

func TestIsDateAvailableNeedsAnAvailableWeeklySlot(t *testing.T) {
	testCases := []struct {
		name   string
		weekly []models.WeeklySlot
		want   bool
	}{
		{"no rules at all", nil, false},
		{"rule on another weekday", []models.WeeklySlot{
			{DayOfWeek: time.Tuesday, Start: 480, End: 1020, Available: true},
		}, false},
		{"all slots marked unavailable", []models.WeeklySlot{
			{DayOfWeek: time.Monday, Start: 480, End: 1020, Available: false},
		}, false},
		{"one available slot", []models.WeeklySlot{
			{DayOfWeek: time.Monday, Start: 480, End: 1020, Available: false},
			{DayOfWeek: time.Monday, Start: 540, End: 720, Available: true},
		}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsDateAvailable(aMonday, today, tc.weekly, nil))
		})
	}
}

func TestSlotContainmentNotMereOverlap(t *testing.T) {
	// Operating window 09:00–12:00.
	weekly := []models.WeeklySlot{
		{DayOfWeek: time.Monday, Start: 9 * 60, End: 12 * 60, Available: true},
	}

	// Morning (08:00–12:00) only partially overlaps: rejected.
	assert.False(t, IsSlotAvailable(aMonday, models.SlotMorning, weekly))
	// Afternoon (12:00–17:00) is adjacent, zero overlap: rejected.
	assert.False(t, IsSlotAvailable(aMonday, models.SlotAfternoon, weekly))

	// A window covering the whole morning accepts it.
	covering := []models.WeeklySlot{
		{DayOfWeek: time.Monday, Start: 8 * 60, End: 13 * 60, Available: true},
	}
	assert.True(t, IsSlotAvailable(aMonday, models.SlotMorning, covering))
}

func TestEveningSlotExceedingOperatingWindow(t *testing.T) {
	// Weekly rule Monday 08:00–17:00; evening runs 17:00–21:00.
	weekly := []models.WeeklySlot{
		{DayOfWeek: time.Monday, Start: 8 * 60, End: 17 * 60, Available: true},
	}

	assert.False(t, IsSlotAvailable(aMonday, models.SlotEvening, weekly))
	assert.True(t, IsSlotAvailable(aMonday, models.SlotMorning, weekly))
	assert.True(t, IsSlotAvailable(aMonday, models.SlotAfternoon, weekly))
}

func TestIsSlotAvailableIgnoresUnavailableWindows(t *testing.T) {
	weekly := []models.WeeklySlot{
		{DayOfWeek: time.Monday, Start: 0, End: 1440, Available: false},
	}
	assert.False(t, IsSlotAvailable(aMonday, models.SlotMorning, weekly))
}

func TestIsSlotAvailableUnknownSlotFailsClosed(t *testing.T) {
	assert.False(t, IsSlotAvailable(aMonday, models.SlotID("midnight"), fullMonday()))
}

func TestAvailableSlots(t *testing.T) {
	rules := models.ScheduleRules{
		Weekly: []models.WeeklySlot{
			{DayOfWeek: time.Monday, Start: 8 * 60, End: 17 * 60, Available: true},
		},
	}

	slots := AvailableSlots(aMonday, today, rules)
	assert.Equal(t, []models.SlotID{models.SlotMorning, models.SlotAfternoon}, slots)

	// Blackout empties the whole day.
	rules.Blackouts = []models.BlackoutDate{{Date: "2026-09-07"}}
	assert.Empty(t, AvailableSlots(aMonday, today, rules))
}
