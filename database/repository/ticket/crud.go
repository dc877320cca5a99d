// File: database/repository/ticket/crud.go
package ticketRepo

import (
	"context"
	"fmt"
	"time"

	"haulify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoTicketRepo) Create(ctx context.Context, ticket *models.SupportTicket) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ticket.ID == "" {
		ticket.ID = uuid.New().String()
	}
	ticket.Status = models.TicketOpen
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	if _, err := repo.coll.InsertOne(ctx, ticket); err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}
	return nil
}

func (repo *mongoTicketRepo) GetByID(ctx context.Context, id string) (*models.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ticket models.SupportTicket
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ticket); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ticket %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to fetch ticket: %w", err)
	}
	return &ticket, nil
}

func (repo *mongoTicketRepo) List(ctx context.Context, status string) ([]models.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []models.SupportTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("error decoding tickets: %w", err)
	}
	return tickets, nil
}

func (repo *mongoTicketRepo) AppendMessage(ctx context.Context, id string, msg models.TicketMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	msg.CreatedAt = time.Now()
	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to append ticket message: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoTicketRepo) SetStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update ticket status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
