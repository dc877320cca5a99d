package models

// QuoteSession holds wizard state between the first step and confirmation.
// It lives in Redis under its session ID with a sliding TTL.
type QuoteSession struct {
	SessionID     string      `json:"sessionId"`
	CustomerName  string      `json:"customerName,omitempty"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
	Pickup        Address     `json:"pickup"`
	Dropoff       Address     `json:"dropoff"`
	Date          string      `json:"date,omitempty"` // "YYYY-MM-DD"
	Slot          SlotID      `json:"slot,omitempty"`
	Tier          ServiceTier `json:"tier,omitempty"`
	Cart          Cart        `json:"cart"`
	DistanceKm    float64     `json:"distanceKm"`
	Quote         *Quote      `json:"quote,omitempty"`
}

// SessionResponse is what the wizard endpoints return after each step.
type SessionResponse struct {
	SessionID string        `json:"sessionId"`
	Session   *QuoteSession `json:"session,omitempty"`
	Quote     *Quote        `json:"quote,omitempty"`
	Booking   *Booking      `json:"booking,omitempty"`
}
