package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// UnlocatedInventoryReader lists stock units that have no warehouse location.
type UnlocatedInventoryReader interface {
	Handle(ctx context.Context, query queries.GetUnlocatedInventoryQuery) ([]queries.GetUnlocatedInventoryQueryResponse, error)
}

// UnlocatedStockReviewJob logs every stock unit without a location so that
// someone can shelve it. Such stock is picked last on every sheet.
type UnlocatedStockReviewJob struct {
	reader   UnlocatedInventoryReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewUnlocatedStockReviewJob creates the job. schedule is a cron expression with
// a seconds field.
func NewUnlocatedStockReviewJob(reader UnlocatedInventoryReader, schedule string, logger *slog.Logger) *UnlocatedStockReviewJob {
	return &UnlocatedStockReviewJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "unlocated_stock_review_job"),
	}
}

// Run performs one review and returns the number of un-located units found.
func (j *UnlocatedStockReviewJob) Run(ctx context.Context) (int, error) {
	items, err := j.reader.Handle(ctx, queries.NewGetUnlocatedInventoryQuery())
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		j.logger.WarnContext(ctx, "Stock unit has no location",
			"itemId", item.ID.String(),
			"sku", item.SKU,
			"name", item.Name,
			"onHand", item.OnHand)
	}
	if len(items) > 0 {
		j.logger.InfoContext(ctx, "Un-located stock review finished", "count", len(items))
	}

	return len(items), nil
}

// Start registers the review on its schedule.
func (j *UnlocatedStockReviewJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Un-located stock review failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Un-located stock review job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job.
func (j *UnlocatedStockReviewJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Un-located stock review job stopped")
}
