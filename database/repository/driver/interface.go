// File: database/repository/driver/interface.go
package driverRepo

import (
	"context"

	"haulify/database"
	"haulify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id string) (*models.Driver, error)
	List(ctx context.Context, activeOnly bool) ([]models.Driver, error)
	Update(ctx context.Context, driver *models.Driver) error
	Delete(ctx context.Context, id string) error

	CreateAssignment(ctx context.Context, assignment *models.JobAssignment) error
	AssignmentsByDriver(ctx context.Context, driverID string) ([]models.JobAssignment, error)
	AssignmentsByDate(ctx context.Context, date string) ([]models.JobAssignment, error)
}

type mongoDriverRepo struct {
	coll           *mongo.Collection
	assignmentColl *mongo.Collection
}

// NewMongoDriverRepo constructs a new MongoDB DriverRepository.
func NewMongoDriverRepo() DriverRepository {
	db := database.Database()
	return &mongoDriverRepo{
		coll:           db.Collection("drivers"),
		assignmentColl: db.Collection("job_assignments"),
	}
}
