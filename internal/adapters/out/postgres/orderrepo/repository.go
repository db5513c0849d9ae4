package orderrepo

import (
	"context"
	"fmt"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	entity = "order"

	createSQL       = "SELECT sp_create_customer_order(?::bigint, ?::varchar, ?::timestamptz)"
	selectSQL       = "SELECT * FROM sp_select_pedido(?::bigint)"
	updateStatusSQL = "SELECT sp_update_order_status(?::bigint, ?::varchar)"
	addLineSQL      = "SELECT sp_add_product_to_order(?::bigint, ?::bigint, ?::int, ?::date)"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores a new order in the Placed status and returns its number.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	var number int64
	err := r.db.WithContext(ctx).
		Raw(createSQL, aggregate.CustomerID(), aggregate.Description(), aggregate.DeliveryAt()).
		Scan(&number).Error
	if err != nil {
		return 0, pgerr.Translate(err, pgerr.Write, "customer", aggregate.CustomerID())
	}

	r.tracker.TrackAggregate(entity, number, aggregate)
	return number, nil
}

// Get retrieves an order by number.
func (r *GormOrderRepository) Get(ctx context.Context, number int64) (*order.Order, error) {
	if err := kernel.RequirePositiveID("order number", number); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Raw(selectSQL, number).Scan(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError(entity, number)
	}

	return toDomain(dtos[0])
}

// UpdateStatus writes the order's current status.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.Status().Validate(); err != nil {
		return err
	}

	var affected int64
	err := r.db.WithContext(ctx).
		Raw(updateStatusSQL, aggregate.Number(), aggregate.Status().String()).
		Scan(&affected).Error
	if err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, aggregate.Number())
	}
	if err := pgerr.NotFoundIfNone(affected, entity, aggregate.Number()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity, aggregate.Number(), aggregate)
	return nil
}

// AddLine adds a product to an existing order.
func (r *GormOrderRepository) AddLine(ctx context.Context, number int64, line order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Exec(addLineSQL, number, line.ProductID(), line.Quantity(), line.MadeOn()).Error
	if err != nil {
		return pgerr.Translate(err, pgerr.Write, "order or product", fmt.Sprintf("%d/%d", number, line.ProductID()))
	}

	r.tracker.TrackAggregate("order line", number, line)
	return nil
}
