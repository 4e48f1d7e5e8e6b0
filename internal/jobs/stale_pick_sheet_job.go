package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalePickSheetReader lists pending pick sheets created before a cutoff.
type StalePickSheetReader interface {
	Handle(ctx context.Context, query queries.GetStalePickSheetsQuery) ([]queries.GetStalePickSheetsQueryResponse, error)
}

// StalePickSheetJob reports pending pick sheets older than a threshold. Their
// items keep order lines reserved from other sheets until the sheet is
// completed or deleted.
type StalePickSheetJob struct {
	reader    StalePickSheetReader
	schedule  string
	threshold time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewStalePickSheetJob(
	reader StalePickSheetReader,
	schedule string,
	threshold time.Duration,
	logger *slog.Logger,
) *StalePickSheetJob {
	return &StalePickSheetJob{
		reader:    reader,
		schedule:  schedule,
		threshold: threshold,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_pick_sheet_job"),
	}
}

// Run performs one check and returns the stale sheets it reported.
func (j *StalePickSheetJob) Run(ctx context.Context) ([]queries.GetStalePickSheetsQueryResponse, error) {
	cutoff := j.now().Add(-j.threshold)
	query, err := queries.NewGetStalePickSheetsQuery(cutoff)
	if err != nil {
		return nil, err
	}

	sheets, err := j.reader.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, sheet := range sheets {
		attrs := []any{
			"pickSheetId", sheet.ID.String(),
			"number", sheet.Number,
			"createdAt", sheet.CreatedAt,
			"age", j.now().Sub(sheet.CreatedAt).Round(time.Minute).String(),
			"openItems", sheet.OpenItems,
		}
		if sheet.PickerName != nil {
			attrs = append(attrs, "picker", *sheet.PickerName)
		}
		j.logger.WarnContext(ctx, "Pick sheet is still pending", attrs...)
	}

	return sheets, nil
}

// Start registers the check on its schedule.
func (j *StalePickSheetJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale pick sheet check failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pick sheet job started",
		"schedule", j.schedule, "threshold", j.threshold.String())
	return nil
}

// Stop stops the job.
func (j *StalePickSheetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pick sheet job stopped")
}
