// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"haulify/database"
	"haulify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository is the read/write store for weekly operating windows
// and one-off blackout dates. The availability resolver only reads it;
// writes happen through the admin interface.
type ScheduleRepository interface {
	GetRules(ctx context.Context) (*models.ScheduleRules, error)
	UpsertWeeklySlot(ctx context.Context, slot *models.WeeklySlot) error
	DeleteWeeklySlot(ctx context.Context, id string) error
	AddBlackout(ctx context.Context, blackout *models.BlackoutDate) error
	DeleteBlackout(ctx context.Context, id string) error
}

type mongoScheduleRepo struct {
	weeklyColl   *mongo.Collection
	blackoutColl *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.Database()
	return &mongoScheduleRepo{
		weeklyColl:   db.Collection("weekly_slots"),
		blackoutColl: db.Collection("blackout_dates"),
	}
}
