package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bakery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const DefaultInventoryAlertSchedule = "@every 1h"

const scanTimeout = 30 * time.Second

type inventoryAlertsReader interface {
	Handle(ctx context.Context) (queries.InventoryAlerts, error)
}

// AlertPublisher receives the counts of every finished scan.
type AlertPublisher interface {
	SetInventoryAlerts(lowStock, expiring int)
	InventoryScanFailed()
}

// InventoryAlertJob periodically evaluates the inventory alert predicates.
// It never writes: the flags stay derived on every read.
type InventoryAlertJob struct {
	alerts    inventoryAlertsReader
	publisher AlertPublisher
	schedule  cron.Schedule
	spec      string
	cron      *cron.Cron
	logger    *slog.Logger
	initial   sync.WaitGroup
}

// NewInventoryAlertJob returns an error if spec is not a valid cron schedule.
func NewInventoryAlertJob(
	alerts inventoryAlertsReader,
	publisher AlertPublisher,
	spec string,
	logger *slog.Logger,
) (*InventoryAlertJob, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid inventory alert schedule %q: %w", spec, err)
	}

	return &InventoryAlertJob{
		alerts:    alerts,
		publisher: publisher,
		schedule:  schedule,
		spec:      spec,
		cron:      cron.New(),
		logger:    logger.With("component", "inventory_alert_job"),
	}, nil
}

// Start runs one scan immediately and then on every tick of the schedule.
func (j *InventoryAlertJob) Start() error {
	j.cron.Schedule(j.schedule, cron.FuncJob(func() {
		j.Run(context.Background())
	}))

	j.cron.Start()

	j.initial.Add(1)
	go func() {
		defer j.initial.Done()
		j.Run(context.Background())
	}()

	j.logger.InfoContext(context.Background(), "Inventory alert job started", "schedule", j.spec)
	return nil
}

// Stop waits for a running scan to finish.
func (j *InventoryAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.initial.Wait()
	j.logger.InfoContext(context.Background(), "Inventory alert job stopped")
}

// Run performs a single scan.
func (j *InventoryAlertJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	alerts, err := j.alerts.Handle(ctx)
	if err != nil {
		j.publisher.InventoryScanFailed()
		j.logger.ErrorContext(ctx, "Inventory alert scan failed", "error", err)
		return
	}

	j.publisher.SetInventoryAlerts(len(alerts.LowStock), len(alerts.Expiring))

	for _, item := range alerts.LowStock {
		j.logger.WarnContext(ctx, "Inventory item is low on stock",
			"id", item.ID,
			"name", item.Name,
			"quantity", item.Quantity,
			"threshold", alerts.LowStockThreshold,
		)
	}
	for _, item := range alerts.Expiring {
		j.logger.WarnContext(ctx, "Inventory item is about to expire",
			"id", item.ID,
			"name", item.Name,
			"expiration_date", item.ExpiresOn,
			"days_left", item.DaysUntilExpiry,
		)
	}

	j.logger.InfoContext(ctx, "Inventory alert scan finished",
		"low_stock", len(alerts.LowStock),
		"expiring", len(alerts.Expiring),
	)
}
