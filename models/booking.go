package models

import "time"

// Booking statuses.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

// Address is a customer-entered street address with the coordinates the
// geocoding collaborator resolved for it.
type Address struct {
	Line       string  `bson:"line" json:"line"`
	City       string  `bson:"city" json:"city"`
	PostalCode string  `bson:"postal_code" json:"postalCode"`
	Lat        float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng        float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// Booking represents a confirmed move booking record.
type Booking struct {
	ID              string          `bson:"id" json:"id"`
	CustomerName    string          `bson:"customer_name" json:"customerName"`
	CustomerEmail   string          `bson:"customer_email" json:"customerEmail"`
	CustomerPhone   string          `bson:"customer_phone" json:"customerPhone"`
	Pickup          Address         `bson:"pickup" json:"pickup"`
	Dropoff         Address         `bson:"dropoff" json:"dropoff"`
	Date            string          `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slot            SlotID          `bson:"slot" json:"slot"`
	Tier            ServiceTier     `bson:"tier" json:"tier"`
	Items           []InventoryItem `bson:"items" json:"items"`
	DistanceKm      float64         `bson:"distance_km" json:"distanceKm"`
	Quote           Quote           `bson:"quote" json:"quote"`
	Status          string          `bson:"status" json:"status"`
	PaymentIntentID string          `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	DriverID        string          `bson:"driver_id,omitempty" json:"driverId,omitempty"`
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updatedAt"`
}
