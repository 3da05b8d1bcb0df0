package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BulkAssignmentJob runs the bulk assignment on a schedule, matching all
// pending orders with available partners.
type BulkAssignmentJob struct {
	handler  commands.RunBulkAssignmentCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBulkAssignmentJob creates a scheduled bulk assignment job.
// The schedule is a six-field cron expression with a seconds field.
func NewBulkAssignmentJob(
	handler commands.RunBulkAssignmentCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BulkAssignmentJob {
	return &BulkAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "bulk_assignment_job"),
	}
}

// Start begins running the bulk assignment on the configured schedule.
func (j *BulkAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRunBulkAssignmentCommand()

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Bulk assignment run failed", "error", handleErr)
			return
		}

		if len(result.Assignments) > 0 {
			j.logger.InfoContext(ctx, "Bulk assignment run finished",
				"attempts", len(result.Assignments),
				"assigned", result.SuccessCount)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Bulk assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the bulk assignment job.
func (j *BulkAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Bulk assignment job stopped")
}
