package availability

import (
	"context"
	"encoding/json"
	"time"

	"haulify/models"
	"haulify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RuleSource supplies the schedule rules the resolver operates on. The
// Mongo schedule repository satisfies it.
type RuleSource interface {
	GetRules(ctx context.Context) (*models.ScheduleRules, error)
}

// Resolver answers date and slot eligibility questions against the rule
// store. Rules are fetched once per calendar render and cached; any fetch
// failure resolves to "unavailable" (fail closed), since a false
// "available" books customers into an unstaffed window.
type Resolver struct {
	Source RuleSource
	Cache  *redis.Client
	// Now is the caller's notion of the current time; defaults to time.Now.
	Now func() time.Time
}

// NewResolver constructs a resolver backed by the given rule source and
// cache client.
func NewResolver(source RuleSource, cache *redis.Client) *Resolver {
	return &Resolver{Source: source, Cache: cache, Now: time.Now}
}

func (r *Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Rules returns the current schedule rules, serving the cached snapshot when
// fresh.
func (r *Resolver) Rules(ctx context.Context) (*models.ScheduleRules, error) {
	cacheKey := utils.ScheduleCachePrefix + "rules"

	if r.Cache != nil {
		if data, err := r.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var rules models.ScheduleRules
			if err := json.Unmarshal([]byte(data), &rules); err == nil {
				return &rules, nil
			}
		}
	}

	rules, err := r.Source.GetRules(ctx)
	if err != nil {
		return nil, err
	}

	if r.Cache != nil {
		if data, err := json.Marshal(rules); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, utils.ScheduleCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache schedule rules", zap.Error(err))
			}
		}
	}
	return rules, nil
}

// InvalidateCache drops the cached rule snapshot, called after admin writes.
func (r *Resolver) InvalidateCache(ctx context.Context) {
	if r.Cache == nil {
		return
	}
	if err := r.Cache.Del(ctx, utils.ScheduleCachePrefix+"rules").Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate schedule cache", zap.Error(err))
	}
}

// CheckDate reports whether the date is bookable. Rule-store errors resolve
// to false.
func (r *Resolver) CheckDate(ctx context.Context, date time.Time) bool {
	rules, err := r.Rules(ctx)
	if err != nil {
		utils.GetLogger().Warn("schedule rules unavailable, failing closed", zap.Error(err))
		return false
	}
	return IsDateAvailable(date, r.now(), rules.Weekly, rules.Blackouts)
}

// CheckSlot reports whether the slot on the date is bookable. Rule-store
// errors resolve to false.
func (r *Resolver) CheckSlot(ctx context.Context, date time.Time, slot models.SlotID) bool {
	rules, err := r.Rules(ctx)
	if err != nil {
		utils.GetLogger().Warn("schedule rules unavailable, failing closed", zap.Error(err))
		return false
	}
	if !IsDateAvailable(date, r.now(), rules.Weekly, rules.Blackouts) {
		return false
	}
	return IsSlotAvailable(date, slot, rules.Weekly)
}

// CalendarDay is one date of the customer-facing calendar with its bookable
// slots.
type CalendarDay struct {
	Date      string          `json:"date"`
	Available bool            `json:"available"`
	Slots     []models.SlotID `json:"slots,omitempty"`
}

// Calendar renders eligibility for a run of days starting at from, fetching
// the rule set once for the whole render.
func (r *Resolver) Calendar(ctx context.Context, from time.Time, days int) ([]CalendarDay, error) {
	rules, err := r.Rules(ctx)
	if err != nil {
		return nil, err
	}

	today := r.now()
	out := make([]CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		d := from.AddDate(0, 0, i)
		slots := AvailableSlots(d, today, *rules)
		out = append(out, CalendarDay{
			Date:      d.Format(dateLayout),
			Available: len(slots) > 0,
			Slots:     slots,
		})
	}
	return out, nil
}
