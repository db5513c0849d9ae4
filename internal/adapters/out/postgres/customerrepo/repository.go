// Package customerrepo persists customers as a persona row plus a cliente row.
package customerrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/personrepo"
	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/customer"

	"gorm.io/gorm"
)

const (
	entity = "customer"

	insertSQL = "SELECT sp_insert_cliente(?::bigint, ?::smallint)"
	updateSQL = "SELECT sp_update_cliente(?::bigint, ?::smallint)"
	deleteSQL = "SELECT sp_delete_cliente(?::bigint)"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{db: db, tracker: tracker}
}

func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := personrepo.Insert(ctx, r.db, c.Person()); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Exec(insertSQL, c.ID(), c.FrequentFlag()).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, c.ID())
	}

	r.tracker.TrackAggregate(entity, c.ID(), c)
	return nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var affected int64
	if err := r.db.WithContext(ctx).Raw(updateSQL, c.ID(), c.FrequentFlag()).Scan(&affected).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, c.ID())
	}
	if err := pgerr.NotFoundIfNone(affected, entity, c.ID()); err != nil {
		return err
	}
	if err := personrepo.Update(ctx, r.db, c.Person()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity, c.ID(), c)
	return nil
}

// Delete fails with an ObjectIsReferencedError while the customer has orders.
func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
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
