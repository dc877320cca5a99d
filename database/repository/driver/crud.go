// File: database/repository/driver/crud.go
package driverRepo

import (
	"context"
	"fmt"
	"time"

	"haulify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoDriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if driver.ID == "" {
		driver.ID = uuid.New().String()
	}
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = driver.CreatedAt
	if _, err := repo.coll.InsertOne(ctx, driver); err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}
	return nil
}

func (repo *mongoDriverRepo) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var driver models.Driver
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&driver); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("driver %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to fetch driver: %w", err)
	}
	return &driver, nil
}

func (repo *mongoDriverRepo) List(ctx context.Context, activeOnly bool) ([]models.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, fmt.Errorf("error decoding drivers: %w", err)
	}
	return drivers, nil
}

func (repo *mongoDriverRepo) Update(ctx context.Context, driver *models.Driver) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	driver.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": driver.ID}, driver)
	if err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoDriverRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoDriverRepo) CreateAssignment(ctx context.Context, assignment *models.JobAssignment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	assignment.CreatedAt = time.Now()
	if _, err := repo.assignmentColl.InsertOne(ctx, assignment); err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

func (repo *mongoDriverRepo) AssignmentsByDriver(ctx context.Context, driverID string) ([]models.JobAssignment, error) {
	return repo.findAssignments(ctx, bson.M{"driver_id": driverID})
}

func (repo *mongoDriverRepo) AssignmentsByDate(ctx context.Context, date string) ([]models.JobAssignment, error) {
	return repo.findAssignments(ctx, bson.M{"date": date})
}

func (repo *mongoDriverRepo) findAssignments(ctx context.Context, filter bson.M) ([]models.JobAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.assignmentColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []models.JobAssignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("error decoding assignments: %w", err)
	}
	return assignments, nil
}
