package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"haulify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuleSource struct {
	rules *models.ScheduleRules
	err   error
	calls int
}

func (f *fakeRuleSource) GetRules(ctx context.Context) (*models.ScheduleRules, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rules, nil
}

func newTestResolver(source RuleSource) *Resolver {
	r := NewResolver(source, nil)
	r.Now = func() time.Time { return today }
	return r
}

func TestResolverFailsClosedOnRuleStoreError(t *testing.T) {
	source := &fakeRuleSource{err: errors.New("rule store unreachable")}
	resolver := newTestResolver(source)

	assert.False(t, resolver.CheckDate(context.Background(), aMonday))
	assert.False(t, resolver.CheckSlot(context.Background(), aMonday, models.SlotMorning))
}

func TestResolverCheckSlot(t *testing.T) {
	source := &fakeRuleSource{rules: &models.ScheduleRules{
		Weekly: []models.WeeklySlot{
			{DayOfWeek: time.Monday, Start: 8 * 60, End: 17 * 60, Available: true},
		},
	}}
	resolver := newTestResolver(source)

	assert.True(t, resolver.CheckSlot(context.Background(), aMonday, models.SlotMorning))
	assert.False(t, resolver.CheckSlot(context.Background(), aMonday, models.SlotEvening))
}

func TestResolverCheckSlotRespectsBlackout(t *testing.T) {
	source := &fakeRuleSource{rules: &models.ScheduleRules{
		Weekly: []models.WeeklySlot{
			{DayOfWeek: time.Monday, Start: 0, End: 1440, Available: true},
		},
		Blackouts: []models.BlackoutDate{{Date: "2026-09-07", Reason: "closed"}},
	}}
	resolver := newTestResolver(source)

	// Slot containment would pass, but the date itself is blacked out.
	assert.False(t, resolver.CheckSlot(context.Background(), aMonday, models.SlotMorning))
}

func TestResolverCalendarFetchesRulesOnce(t *testing.T) {
	source := &fakeRuleSource{rules: &models.ScheduleRules{
		Weekly: []models.WeeklySlot{
			{DayOfWeek: time.Monday, Start: 8 * 60, End: 21 * 60, Available: true},
			{DayOfWeek: time.Wednesday, Start: 8 * 60, End: 12 * 60, Available: true},
		},
	}}
	resolver := newTestResolver(source)

	days, err := resolver.Calendar(context.Background(), aMonday, 7)
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, 1, source.calls)

	// Monday carries all three slots, Wednesday only the morning.
	assert.True(t, days[0].Available)
	assert.Equal(t, []models.SlotID{models.SlotMorning, models.SlotAfternoon, models.SlotEvening}, days[0].Slots)
	assert.True(t, days[2].Available)
	assert.Equal(t, []models.SlotID{models.SlotMorning}, days[2].Slots)
	// Tuesday has no configured window.
	assert.False(t, days[1].Available)
}
