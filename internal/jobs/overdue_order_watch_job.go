package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueOrderWatchJob periodically scans for pending orders whose
// consolidation deadline has passed and logs them for platform follow-up.
// Overdue orders stay in the workflow untouched; this job only surfaces
// them.
type OverdueOrderWatchJob struct {
	orderRepository ports.OrderRepository
	cron            *cron.Cron
	schedule        string
	logger          *slog.Logger
}

// NewOverdueOrderWatchJob creates a job that checks for overdue pending
// orders on the given cron schedule (six-field, with seconds).
func NewOverdueOrderWatchJob(
	orderRepository ports.OrderRepository, schedule string, logger *slog.Logger,
) *OverdueOrderWatchJob {
	return &OverdueOrderWatchJob{
		orderRepository: orderRepository,
		cron:            cron.New(cron.WithSeconds()),
		schedule:        schedule,
		logger:          logger.With("component", "overdue_order_watch_job"),
	}
}

// Start begins the overdue order watch on its schedule.
func (j *OverdueOrderWatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order watch started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue order watch.
func (j *OverdueOrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order watch stopped")
}

func (j *OverdueOrderWatchJob) run() {
	ctx := context.Background()

	overdue, err := j.orderRepository.GetPendingPastDeadline(ctx, time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue order scan failed", "error", err)
		return
	}

	for _, o := range overdue {
		j.logger.WarnContext(ctx, "Pending order past consolidation deadline",
			"order_id", o.ID().String(),
			"zone_id", o.ZoneID().String(),
			"deadline", o.Deadline().Format(time.RFC3339),
		)
	}
}
