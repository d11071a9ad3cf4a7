package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OrderExpirationJob cancels orders that sat in Pending longer than the
// configured age. Abandoned carts whose payment never arrived would
// otherwise accumulate forever. Each expiration goes through the regular
// cancel use case, so an OrderCancelled event is published like any other
// cancellation.
type OrderExpirationJob struct {
	listHandler   queries.GetOrdersQueryHandler
	cancelHandler commands.CancelOrderCommandHandler
	maxPendingAge time.Duration
	schedule      string
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewOrderExpirationJob creates the expiration job. The schedule is a
// six-field cron expression; maxPendingAge is how long an order may stay
// in Pending before it is expired.
func NewOrderExpirationJob(
	listHandler queries.GetOrdersQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	schedule string,
	maxPendingAge time.Duration,
	logger *slog.Logger,
) *OrderExpirationJob {
	return &OrderExpirationJob{
		listHandler:   listHandler,
		cancelHandler: cancelHandler,
		maxPendingAge: maxPendingAge,
		schedule:      schedule,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "order_expiration_job"),
	}
}

// Start begins the expiration job on its configured schedule.
func (j *OrderExpirationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.expireStalePendingOrders(ctx); err != nil {
			j.logger.ErrorContext(ctx, "order expiration run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "order expiration job started",
		"schedule", j.schedule,
		"max_pending_age", j.maxPendingAge.String(),
	)
	return nil
}

// Stop stops the expiration job.
func (j *OrderExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "order expiration job stopped")
}

func (j *OrderExpirationJob) expireStalePendingOrders(ctx context.Context) error {
	query, err := queries.NewGetOrdersQueryWithStatus(order.Pending)
	if err != nil {
		return err
	}

	pending, err := j.listHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-j.maxPendingAge)
	for _, summary := range pending {
		if !summary.CreatedAt.Before(cutoff) {
			continue
		}

		cmd, cmdErr := commands.NewCancelOrderCommand(summary.ID, "expired while pending payment")
		if cmdErr != nil {
			return cmdErr
		}

		if cancelErr := j.cancelHandler.Handle(ctx, cmd); cancelErr != nil {
			// an order that completed or vanished since the listing is
			// not a failure of the sweep
			if errors.Is(cancelErr, errs.ErrInvalidTransition) ||
				errors.Is(cancelErr, errs.ErrObjectNotFound) {
				continue
			}
			return cancelErr
		}

		j.logger.InfoContext(ctx, "expired pending order", "order_id", summary.ID.String())
	}

	return nil
}
