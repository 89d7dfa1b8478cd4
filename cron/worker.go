package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"turfdesk/config"
	"turfdesk/models"
	"turfdesk/services/session"
	"turfdesk/services/venue"
)

const (
	TypeSnapshotSweep   = "snapshot:sweep"
	TypeSnapshotRefresh = "snapshot:refresh"
)

// refreshPayload carries one session worth of cache-warming work.
type refreshPayload struct {
	SessionID string `json:"sessionId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}
}

// InitSnapshotWorker runs the background cache-warming pipeline: a
// scheduler enqueues a sweep on a fixed interval, the sweep fans out one
// refresh task per active session, and each refresh re-warms that
// operator's cached venue so dashboards stay fresh between page loads.
func InitSnapshotWorker(store *session.Store, venueSvc venue.VenueService) {
	opts := redisOpts()

	srv := asynq.NewServer(
		opts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	client := asynq.NewClient(opts)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSnapshotSweep, handleSweepTask(store, client))
	mux.HandleFunc(TypeSnapshotRefresh, handleRefreshTask(store, venueSvc))

	go func() {
		log.Println("[SnapshotWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SnapshotWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SnapshotWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(opts)
}

// runScheduler enqueues the periodic sweep.
func runScheduler(opts asynq.RedisClientOpt) {
	interval := config.AppConfig.SnapshotRefreshMins
	if interval <= 0 {
		interval = 15
	}

	scheduler := asynq.NewScheduler(opts, nil)
	cronspec := "@every " + (time.Duration(interval) * time.Minute).String()
	if _, err := scheduler.Register(cronspec, asynq.NewTask(TypeSnapshotSweep, nil)); err != nil {
		log.Printf("[SnapshotWorker] ❌ Failed to register sweep schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[SnapshotWorker] ❌ Scheduler stopped: %v", err)
	}
}

func handleSweepTask(store *session.Store, client *asynq.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		sessions, err := store.ActiveSessions(ctx)
		if err != nil {
			log.Printf("[SnapshotSweep] ❌ Failed to list sessions: %v", err)
			return err
		}

		for _, sess := range sessions {
			payload, err := json.Marshal(refreshPayload{SessionID: sess.SessionID})
			if err != nil {
				continue
			}
			if _, err := client.EnqueueContext(ctx, asynq.NewTask(TypeSnapshotRefresh, payload)); err != nil {
				log.Printf("[SnapshotSweep] ⚠️ Failed to enqueue refresh for %s: %v", sess.SessionID, err)
			}
		}
		log.Printf("[SnapshotSweep] ⏰ Queued %d session refreshes", len(sessions))
		return nil
	}
}

func handleRefreshTask(store *session.Store, venueSvc venue.VenueService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p refreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SnapshotRefresh] 🔴 Invalid payload: %v", err)
			return err
		}

		sessions, err := store.ActiveSessions(ctx)
		if err != nil {
			return err
		}
		var target *models.OperatorSession
		for i := range sessions {
			if sessions[i].SessionID == p.SessionID {
				target = &sessions[i]
				break
			}
		}
		if target == nil {
			// Session expired between sweep and refresh; nothing to do.
			return nil
		}

		if _, err := venueSvc.RefreshVenue(ctx, target); err != nil {
			log.Printf("[SnapshotRefresh] ⚠️ Refresh failed for session %s: %v", p.SessionID, err)
		}
		return nil
	}
}
