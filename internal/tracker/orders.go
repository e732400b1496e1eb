package tracker

import (
	"context"
	"time"
	"watd/internal/models"
	"watd/internal/providers"
	"watd/internal/shipstation"
	"watd/internal/structures"
)

type OrdersServiceInterface interface {
	RunMorning() error
	RunAfternoon() error
}

// OrdersService pulls order counts from ShipStation and upserts them into
// the orders table. Morning records the outstanding backlog, afternoon the
// day's shipped total. Both runs are weekday-gated and fetch before they
// touch the table, so a failed pull never leaves a partial upsert.
type OrdersService struct {
	config   *structures.Config
	logger   providers.Logger
	client   shipstation.ClientInterface
	files    *FileManager
	combined *CombinedBuilder
	metrics  providers.MetricsProviderInterface
	now      func() time.Time
}

func NewOrdersService(config *structures.Config, logger providers.Logger, client shipstation.ClientInterface, files *FileManager, combined *CombinedBuilder, metrics providers.MetricsProviderInterface) OrdersServiceInterface {
	return &OrdersService{
		config:   config,
		logger:   logger,
		client:   client,
		files:    files,
		combined: combined,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (o *OrdersService) RunMorning() error {
	return o.run("morning", models.ColOutstanding, func(ctx context.Context, _ string) (int, error) {
		return o.client.AwaitingShipmentCount(ctx)
	})
}

func (o *OrdersService) RunAfternoon() error {
	return o.run("afternoon", models.ColShipped, func(ctx context.Context, day string) (int, error) {
		return o.client.ShippedCount(ctx, day)
	})
}

func (o *OrdersService) run(mode, field string, fetch func(ctx context.Context, day string) (int, error)) error {
	now := o.now()
	if !o.activeWeekday(now) {
		o.logger.Infof(providers.TypeApp, "Skipping %s pull: %s is outside the active weekday window", mode, now.Weekday())
		o.metrics.IncFetchTotal(mode, "skipped")
		return nil
	}

	day := now.Format(models.DateLayout)

	ctx, cancel := context.WithTimeout(context.Background(), o.config.Orders.Timeout)
	defer cancel()

	count, err := fetch(ctx, day)
	if err != nil {
		o.logger.Errorf(providers.TypeApp, "%s pull failed: %s", mode, err)
		o.metrics.IncFetchTotal(mode, "error")
		return err
	}

	if err := o.files.Upsert(o.config.OrdersPath(), models.OrdersSchema, day, field, count); err != nil {
		o.logger.Errorf(providers.TypeApp, "Error while writing orders table: %s", err)
		o.metrics.IncFetchTotal(mode, "error")
		return err
	}
	if err := o.combined.Rebuild(); err != nil {
		o.logger.Errorf(providers.TypeApp, "Error while rebuilding combined table: %s", err)
		return err
	}

	o.logger.Infof(providers.TypeApp, "%s pull: %s = %d for %s", mode, field, count, day)
	o.metrics.IncFetchTotal(mode, "ok")
	return nil
}

func (o *OrdersService) activeWeekday(now time.Time) bool {
	today := now.Weekday().String()
	for _, day := range o.config.Orders.Weekdays {
		if day == today {
			return true
		}
	}
	return false
}
