// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"haulify/database"
	"haulify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	List(ctx context.Context, status string, limit, offset int64) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	AssignDriver(ctx context.Context, id, driverID string) error
	DailyStats(ctx context.Context, fromDate string) ([]models.DailyBookingStats, error)
	CustomerEmails(ctx context.Context) ([]string, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.Database()
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
