// Package supplierrepo persists suppliers through the proveedor stored functions.
package supplierrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/supplier"

	"gorm.io/gorm"
)

const (
	entity = "supplier"

	insertSQL = "SELECT sp_insert_proveedor(?::bigint, ?::varchar, ?::int, ?::varchar)"
	updateSQL = "SELECT sp_update_proveedor(?::bigint, ?::varchar, ?::int, ?::varchar)"
	deleteSQL = "SELECT sp_delete_proveedor(?::bigint)"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

type GormSupplierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormSupplierRepository(db *gorm.DB, tracker aggregateTracker) *GormSupplierRepository {
	return &GormSupplierRepository{db: db, tracker: tracker}
}

func (r *GormSupplierRepository) Add(ctx context.Context, s *supplier.Supplier) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Exec(insertSQL, args(s)...).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, s.ID())
	}

	r.tracker.TrackAggregate(entity, s.ID(), s)
	return nil
}

func (r *GormSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	if err := s.Validate(); err != nil {
		return err
	}

	var affected int64
	if err := r.db.WithContext(ctx).Raw(updateSQL, args(s)...).Scan(&affected).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, s.ID())
	}
	if err := pgerr.NotFoundIfNone(affected, entity, s.ID()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity, s.ID(), s)
	return nil
}

func (r *GormSupplierRepository) Delete(ctx context.Context, id int64) error {
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

func args(s *supplier.Supplier) []any {
	return []any{s.ID(), s.Name(), s.Address().CityID(), s.Address().Directions()}
}
