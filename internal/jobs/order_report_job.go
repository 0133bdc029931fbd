package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// reportSchedule runs the open-order report every minute. The report is
// observational only and never writes.
const reportSchedule = "0 * * * * *"

// OrderReportJob periodically logs how many orders sit in each non-terminal
// status, so a stuck kitchen shows up in the logs before it shows up in
// complaints.
type OrderReportJob struct {
	handler queries.ListOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReportJob creates the open-order report job.
func NewOrderReportJob(handler queries.ListOrdersQueryHandler, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_report_job"),
	}
}

// Start begins the report job on its schedule.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc(reportSchedule, func() {
		ctx := context.Background()

		query, queryErr := queries.NewListOrdersQuery(nil, "")
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Order report job failed to build query", "error", queryErr)
			return
		}

		result, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", handleErr)
			return
		}

		counts := make(map[order.Status]int)
		for _, summary := range result.Orders {
			counts[summary.Status]++
		}

		open := counts[order.New] + counts[order.Preparing] + counts[order.Ready]
		j.logger.InfoContext(ctx, "Open order report",
			"open", open,
			"new", counts[order.New],
			"preparing", counts[order.Preparing],
			"ready", counts[order.Ready],
			"delivered", counts[order.Delivered],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
