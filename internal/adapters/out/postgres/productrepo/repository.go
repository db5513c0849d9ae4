// Package productrepo persists products through the producto stored functions.
package productrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/product"

	"gorm.io/gorm"
)

const (
	entity = "product"

	insertSQL = "SELECT sp_insert_producto(?::bigint, ?::varchar)"
	updateSQL = "SELECT sp_update_producto(?::bigint, ?::varchar)"
	deleteSQL = "SELECT sp_delete_producto(?::bigint)"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{db: db, tracker: tracker}
}

func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Exec(insertSQL, p.ID(), p.Type()).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, p.ID())
	}

	r.tracker.TrackAggregate(entity, p.ID(), p)
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var affected int64
	if err := r.db.WithContext(ctx).Raw(updateSQL, p.ID(), p.Type()).Scan(&affected).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, p.ID())
	}
	if err := pgerr.NotFoundIfNone(affected, entity, p.ID()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity, p.ID(), p)
	return nil
}

// Delete fails with an ObjectIsReferencedError while an order lists the product.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
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
