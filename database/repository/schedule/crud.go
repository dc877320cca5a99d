// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"haulify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoScheduleRepo) GetRules(ctx context.Context) (*models.ScheduleRules, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.weeklyColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly slots: %w", err)
	}
	var weekly []models.WeeklySlot
	if err := cursor.All(ctx, &weekly); err != nil {
		return nil, fmt.Errorf("error decoding weekly slots: %w", err)
	}

	cursor, err = repo.blackoutColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blackout dates: %w", err)
	}
	var blackouts []models.BlackoutDate
	if err := cursor.All(ctx, &blackouts); err != nil {
		return nil, fmt.Errorf("error decoding blackout dates: %w", err)
	}

	return &models.ScheduleRules{Weekly: weekly, Blackouts: blackouts}, nil
}

func (repo *mongoScheduleRepo) UpsertWeeklySlot(ctx context.Context, slot *models.WeeklySlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.weeklyColl.ReplaceOne(ctx, bson.M{"id": slot.ID}, slot, opts); err != nil {
		return fmt.Errorf("failed to upsert weekly slot: %w", err)
	}
	return nil
}

func (repo *mongoScheduleRepo) DeleteWeeklySlot(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.weeklyColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete weekly slot: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoScheduleRepo) AddBlackout(ctx context.Context, blackout *models.BlackoutDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if blackout.ID == "" {
		blackout.ID = uuid.New().String()
	}
	blackout.CreatedAt = time.Now()
	if _, err := repo.blackoutColl.InsertOne(ctx, blackout); err != nil {
		return fmt.Errorf("failed to insert blackout date: %w", err)
	}
	return nil
}

func (repo *mongoScheduleRepo) DeleteBlackout(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.blackoutColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blackout date: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
