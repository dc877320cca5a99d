// File: services/ticket/ticket.go
package ticket

import (
	"context"
	"fmt"

	ticketRepo "haulify/database/repository/ticket"
	"haulify/models"
)

// TicketService manages customer support tickets.
type TicketService interface {
	Open(ctx context.Context, t *models.SupportTicket) (*models.SupportTicket, error)
	Get(ctx context.Context, id string) (*models.SupportTicket, error)
	List(ctx context.Context, status string) ([]models.SupportTicket, error)
	Reply(ctx context.Context, id, author, body string) error
	Close(ctx context.Context, id string) error
}

// DefaultTicketService is the concrete implementation.
type DefaultTicketService struct {
	Repo ticketRepo.TicketRepository
}

func (s *DefaultTicketService) Open(ctx context.Context, t *models.SupportTicket) (*models.SupportTicket, error) {
	if t.Email == "" || t.Subject == "" {
		return nil, fmt.Errorf("ticket email and subject are required")
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DefaultTicketService) Get(ctx context.Context, id string) (*models.SupportTicket, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultTicketService) List(ctx context.Context, status string) ([]models.SupportTicket, error) {
	return s.Repo.List(ctx, status)
}

func (s *DefaultTicketService) Reply(ctx context.Context, id, author, body string) error {
	if body == "" {
		return fmt.Errorf("reply body is required")
	}
	return s.Repo.AppendMessage(ctx, id, models.TicketMessage{Author: author, Body: body})
}

func (s *DefaultTicketService) Close(ctx context.Context, id string) error {
	return s.Repo.SetStatus(ctx, id, models.TicketClosed)
}
