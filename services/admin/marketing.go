// File: services/admin/marketing.go
package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"haulify/config"
	"haulify/cron"
	bookingRepo "haulify/database/repository/booking"
	"haulify/models"
	"haulify/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// MarketingService enqueues marketing email batches for the async worker.
type MarketingService struct {
	Bookings bookingRepo.BookingRepository
	client   *asynq.Client
}

// NewMarketingService builds a service with its own asynq client.
func NewMarketingService(bookings bookingRepo.BookingRepository) *MarketingService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	})
	return &MarketingService{Bookings: bookings, client: client}
}

// EnqueueCampaign fans a campaign out to every known customer email. It
// returns the campaign ID and the recipient count.
func (s *MarketingService) EnqueueCampaign(ctx context.Context, subject, body string) (string, int, error) {
	recipients, err := s.Bookings.CustomerEmails(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to build recipient list: %w", err)
	}
	if len(recipients) == 0 {
		return "", 0, fmt.Errorf("no recipients for campaign")
	}

	payload := models.MarketingBatchPayload{
		CampaignID: uuid.New().String(),
		Subject:    subject,
		Body:       body,
		Recipients: recipients,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", 0, err
	}

	task := asynq.NewTask(cron.TypeMarketingSend, data)
	info, err := s.client.Enqueue(task, asynq.MaxRetry(3))
	if err != nil {
		return "", 0, fmt.Errorf("failed to enqueue campaign: %w", err)
	}

	utils.GetLogger().Info("marketing campaign enqueued",
		zap.String("campaignID", payload.CampaignID),
		zap.String("taskID", info.ID),
		zap.Int("recipients", len(recipients)))
	return payload.CampaignID, len(recipients), nil
}
