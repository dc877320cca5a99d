// File: database/repository/booking/aggregates.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"haulify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DailyStats aggregates confirmed bookings and revenue per calendar date,
// starting at fromDate inclusive.
func (repo *mongoBookingRepo) DailyStats(ctx context.Context, fromDate string) ([]models.DailyBookingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"date":   bson.M{"$gte": fromDate},
			"status": bson.M{"$in": []string{models.BookingConfirmed, models.BookingCompleted}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$date",
			"bookings": bson.M{"$sum": 1},
			"revenue":  bson.M{"$sum": "$quote.total"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []models.DailyBookingStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("error decoding booking stats: %w", err)
	}
	return stats, nil
}

// CustomerEmails returns the distinct customer emails across all bookings,
// used as the recipient list for marketing sends.
func (repo *mongoBookingRepo) CustomerEmails(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := repo.coll.Distinct(ctx, "customer_email", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer emails: %w", err)
	}

	emails := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			emails = append(emails, s)
		}
	}
	return emails, nil
}
