// File: cron/worker.go
package cron

import (
	"context"
	"time"

	"wellspring/config"
	bookingRepo "wellspring/database/repository/booking"
	"wellspring/services/booking"
	"wellspring/services/notification"
	"wellspring/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Task types handled by the background worker.
const (
	TaskSessionReminders = "session:reminders"
	TaskExpirePending    = "booking:expire_pending"
)

// Worker runs the periodic booking maintenance jobs: session reminders for
// clients and expiry of pending bookings professionals never approved.
type Worker struct {
	BookingService booking.BookingService
	BookingRepo    bookingRepo.BookingRepository
	Notification   notification.NotificationService

	server    *asynq.Server
	scheduler *asynq.Scheduler
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// Start registers the periodic tasks and runs the worker in background
// goroutines.
func (w *Worker) Start() error {
	logger := utils.GetLogger()

	w.server = asynq.NewServer(redisOpt(), asynq.Config{
		Concurrency: 2,
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskSessionReminders, w.handleSessionReminders)
	mux.HandleFunc(TaskExpirePending, w.handleExpirePending)

	w.scheduler = asynq.NewScheduler(redisOpt(), nil)
	if _, err := w.scheduler.Register("@every 5m", asynq.NewTask(TaskSessionReminders, nil)); err != nil {
		return err
	}
	if _, err := w.scheduler.Register("@every 1h", asynq.NewTask(TaskExpirePending, nil)); err != nil {
		return err
	}

	go func() {
		if err := w.server.Run(mux); err != nil {
			logger.Error("background worker stopped", zap.Error(err))
		}
	}()
	go func() {
		if err := w.scheduler.Run(); err != nil {
			logger.Error("scheduler stopped", zap.Error(err))
		}
	}()

	logger.Info("background worker started")
	return nil
}

// Stop shuts the worker down gracefully.
func (w *Worker) Stop() {
	if w.scheduler != nil {
		w.scheduler.Shutdown()
	}
	if w.server != nil {
		w.server.Shutdown()
	}
}

// handleSessionReminders pings clients whose confirmed session starts within
// the reminder lead time.
func (w *Worker) handleSessionReminders(ctx context.Context, _ *asynq.Task) error {
	logger := utils.GetLogger()

	lead := time.Duration(config.AppConfig.ReminderLeadTimeMinutes) * time.Minute
	if lead <= 0 {
		lead = time.Hour
	}
	now := time.Now()

	upcoming, err := w.BookingRepo.ListConfirmedStartingBetween(ctx, now, now.Add(lead))
	if err != nil {
		return err
	}

	for _, b := range upcoming {
		if err := w.Notification.NotifySessionReminder(ctx, b); err != nil {
			logger.Warn("reminder not delivered",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
	if len(upcoming) > 0 {
		logger.Info("session reminders sent", zap.Int("count", len(upcoming)))
	}
	return nil
}

// handleExpirePending cancels pending bookings older than the configured TTL
// and frees their seats.
func (w *Worker) handleExpirePending(ctx context.Context, _ *asynq.Task) error {
	ttl := time.Duration(config.AppConfig.PendingBookingTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	expired, err := w.BookingService.ExpireStalePending(ctx, ttl)
	if err != nil {
		return err
	}
	if expired > 0 {
		utils.GetLogger().Info("expired stale pending bookings", zap.Int("count", expired))
	}
	return nil
}
