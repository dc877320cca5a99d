package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"haulify/config"
	"haulify/models"
	"haulify/services/mail"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeMarketingSend = "marketing:send"

// InitMarketingWorker runs the async marketing-batch worker in background.
func InitMarketingWorker(mailSvc mail.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMarketingSend, handleMarketingTask(mailSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[MarketingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MarketingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MarketingWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleMarketingTask(mailSvc mail.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.MarketingBatchPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MarketingHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[MarketingHandler] campaign %s: sending to %d recipients", p.CampaignID, len(p.Recipients))

		var failed int
		for _, recipient := range p.Recipients {
			msg := models.EmailMessage{
				To:      recipient,
				Subject: p.Subject,
				Body:    p.Body,
				HTML:    true,
			}
			if err := mailSvc.Send(ctx, msg); err != nil {
				log.Printf("[MarketingHandler] failed to send to %s: %v", recipient, err)
				failed++
			}
		}

		log.Printf("[MarketingHandler] campaign %s done: %d sent, %d failed",
			p.CampaignID, len(p.Recipients)-failed, failed)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[MarketingWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
