package models

import "time"

// Driver represents a crew driver available for job assignments.
type Driver struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	VehicleID string    `bson:"vehicle_id,omitempty" json:"vehicleId,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// JobAssignment links a driver to a booked move.
type JobAssignment struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	DriverID  string    `bson:"driver_id" json:"driverId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slot      SlotID    `bson:"slot" json:"slot"`
	Status    string    `bson:"status" json:"status"` // "Assigned", "Completed"
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
