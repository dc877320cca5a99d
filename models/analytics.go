package models

// DailyBookingStats is one row of the admin analytics aggregation.
type DailyBookingStats struct {
	Date     string  `bson:"_id" json:"date"` // "YYYY-MM-DD"
	Bookings int     `bson:"bookings" json:"bookings"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}
