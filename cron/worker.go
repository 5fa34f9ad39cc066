package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"

	"courtside/config"
	bookingRepo "courtside/database/repository/booking"
	courtRepo "courtside/database/repository/court"
)

const (
	// TypeBookingReap cancels payment_pending bookings older than the TTL so
	// abandoned checkouts stop shadowing the slot grid.
	TypeBookingReap = "booking:reap"
	// TypeVenueAggregate recomputes the denormalized booking totals on venues.
	TypeVenueAggregate = "venue:aggregate"
)

type aggregatePayload struct {
	VenueID string `json:"venue_id"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitWorkers runs the async worker and the periodic enqueuer in background.
func InitWorkers(bookings bookingRepo.BookingRepository, courts courtRepo.CourtRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReap, handleBookingReap(bookings))
	mux.HandleFunc(TypeVenueAggregate, handleVenueAggregate(bookings, courts))

	go startScheduler(courts)

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// startScheduler enqueues the periodic jobs: the reap runs every 15 minutes,
// the aggregates refresh hourly per venue.
func startScheduler(courts courtRepo.CourtRepository) {
	client := asynq.NewClient(redisOpts())
	c := cron.New()

	_, err := c.AddFunc("*/15 * * * *", func() {
		if _, err := client.Enqueue(asynq.NewTask(TypeBookingReap, nil)); err != nil {
			log.Printf("[Scheduler] failed to enqueue booking reap: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[Scheduler] bad reap schedule: %v", err)
	}

	_, err = c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		venueIDs, err := courts.ListVenueIDs(ctx)
		if err != nil {
			log.Printf("[Scheduler] failed to list venues: %v", err)
			return
		}
		for _, id := range venueIDs {
			payload, _ := json.Marshal(aggregatePayload{VenueID: id})
			if _, err := client.Enqueue(asynq.NewTask(TypeVenueAggregate, payload)); err != nil {
				log.Printf("[Scheduler] failed to enqueue aggregate for venue %s: %v", id, err)
			}
		}
	})
	if err != nil {
		log.Fatalf("[Scheduler] bad aggregate schedule: %v", err)
	}

	c.Start()
}

func handleBookingReap(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		ttl := time.Duration(config.AppConfig.PaymentPendingTTLHours) * time.Hour
		cutoff := time.Now().Add(-ttl)

		n, err := bookings.CancelStalePaymentPending(ctx, cutoff)
		if err != nil {
			log.Printf("[BookingReap] failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[BookingReap] cancelled %d stale payment_pending bookings", n)
		}
		return nil
	}
}

func handleVenueAggregate(bookings bookingRepo.BookingRepository, courts courtRepo.CourtRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p aggregatePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[VenueAggregate] invalid payload: %v", err)
			return err
		}

		total, revenue, err := bookings.VenueTotals(ctx, p.VenueID)
		if err != nil {
			log.Printf("[VenueAggregate] failed for venue %s: %v", p.VenueID, err)
			return err
		}
		return courts.UpdateVenueAggregates(ctx, p.VenueID, total, revenue)
	}
}
