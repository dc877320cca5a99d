// File: services/driver/driver.go
package driver

import (
	"context"
	"fmt"

	bookingRepo "haulify/database/repository/booking"
	driverRepo "haulify/database/repository/driver"
	"haulify/models"
)

// DriverService manages drivers and their job assignments.
type DriverService interface {
	Create(ctx context.Context, d *models.Driver) (*models.Driver, error)
	Get(ctx context.Context, id string) (*models.Driver, error)
	List(ctx context.Context, activeOnly bool) ([]models.Driver, error)
	Update(ctx context.Context, d *models.Driver) error
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, bookingID, driverID string) (*models.JobAssignment, error)
	Schedule(ctx context.Context, driverID string) ([]models.JobAssignment, error)
}

// DefaultDriverService is the concrete implementation.
type DefaultDriverService struct {
	Repo     driverRepo.DriverRepository
	Bookings bookingRepo.BookingRepository
}

func (s *DefaultDriverService) Create(ctx context.Context, d *models.Driver) (*models.Driver, error) {
	if d.Name == "" || d.Email == "" {
		return nil, fmt.Errorf("driver name and email are required")
	}
	d.Active = true
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DefaultDriverService) Get(ctx context.Context, id string) (*models.Driver, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDriverService) List(ctx context.Context, activeOnly bool) ([]models.Driver, error) {
	return s.Repo.List(ctx, activeOnly)
}

func (s *DefaultDriverService) Update(ctx context.Context, d *models.Driver) error {
	return s.Repo.Update(ctx, d)
}

func (s *DefaultDriverService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Assign links a driver to a booking, recording a job assignment for the
// booking's date and slot.
func (s *DefaultDriverService) Assign(ctx context.Context, bookingID, driverID string) (*models.JobAssignment, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	drv, err := s.Repo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !drv.Active {
		return nil, fmt.Errorf("driver %s is not active", driverID)
	}

	assignment := &models.JobAssignment{
		BookingID: booking.ID,
		DriverID:  drv.ID,
		Date:      booking.Date,
		Slot:      booking.Slot,
		Status:    "Assigned",
	}
	if err := s.Repo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	if err := s.Bookings.AssignDriver(ctx, booking.ID, drv.ID); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *DefaultDriverService) Schedule(ctx context.Context, driverID string) ([]models.JobAssignment, error) {
	return s.Repo.AssignmentsByDriver(ctx, driverID)
}
