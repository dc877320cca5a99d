// File: database/repository/ticket/interface.go
package ticketRepo

import (
	"context"

	"haulify/database"
	"haulify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *models.SupportTicket) error
	GetByID(ctx context.Context, id string) (*models.SupportTicket, error)
	List(ctx context.Context, status string) ([]models.SupportTicket, error)
	AppendMessage(ctx context.Context, id string, msg models.TicketMessage) error
	SetStatus(ctx context.Context, id, status string) error
}

type mongoTicketRepo struct {
	coll *mongo.Collection
}

// NewMongoTicketRepo constructs a new MongoDB TicketRepository.
func NewMongoTicketRepo() TicketRepository {
	db := database.Database()
	return &mongoTicketRepo{
		coll: db.Collection("support_tickets"),
	}
}
