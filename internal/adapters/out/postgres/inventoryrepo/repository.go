package inventoryrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/inventory"

	"gorm.io/gorm"
)

const (
	entity = "inventory item"

	insertSQL = "SELECT sp_insert_materia_prima(" + itemArgs + ")"
	updateSQL = "SELECT sp_update_materia_prima(" + itemArgs + ")"
	deleteSQL = "SELECT sp_delete_materia_prima(?::bigint)"

	itemArgs = "?::bigint, ?::varchar, ?::varchar, ?::varchar, ?::date, ?::numeric, ?::int, " +
		"?::date, ?::varchar, ?::varchar"
)

// GormInventoryRepository implements InventoryRepository on top of the
// materia_prima stored functions.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores a new line together with its variant row.
func (r *GormInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Exec(insertSQL, dto.args()...).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, dto.ID)
	}

	r.tracker.TrackAggregate(entity, dto.ID, item)
	return nil
}

// Update overwrites the line and replaces its variant row.
func (r *GormInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	var affected int64
	if err := r.db.WithContext(ctx).Raw(updateSQL, dto.args()...).Scan(&affected).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, dto.ID)
	}
	if err := pgerr.NotFoundIfNone(affected, entity, dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity, dto.ID, item)
	return nil
}

func (r *GormInventoryRepository) Delete(ctx context.Context, id int64) error {
	var affected int64
	if err := r.db.WithContext(ctx).Raw(deleteSQL, id).Scan(&affected).Error; err != nil {
		return pgerr.Translate(err, pgerr.Delete, entity, id)
	}
	if err := pgerr.NotFoundIfNone(affected, entity, id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity, id, nil)
	return nil
}
