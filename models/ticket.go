package models

import "time"

// Support ticket statuses.
const (
	TicketOpen   = "Open"
	TicketClosed = "Closed"
)

// TicketMessage is one message in a support ticket thread.
type TicketMessage struct {
	Author    string    `bson:"author" json:"author"` // "customer" or "support"
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// SupportTicket represents a customer support request, optionally tied to a
// booking.
type SupportTicket struct {
	ID        string          `bson:"id" json:"id"`
	BookingID string          `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	Email     string          `bson:"email" json:"email"`
	Subject   string          `bson:"subject" json:"subject"`
	Status    string          `bson:"status" json:"status"`
	Messages  []TicketMessage `bson:"messages" json:"messages"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updatedAt"`
}
