// Package employeerepo persists employees as a persona row plus an empleado row.
package employeerepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/personrepo"
	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/employee"

	"gorm.io/gorm"
)

const (
	entity = "employee"

	insertSQL = "SELECT sp_insert_empleado(?::bigint, ?::varchar, ?::varchar)"
	updateSQL = "SELECT sp_update_empleado(?::bigint, ?::varchar, ?::varchar)"
	deleteSQL = "SELECT sp_delete_empleado(?::bigint)"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db, tracker: tracker}
}

// Add writes the person and the employee rows. Both statements must share a
// transaction; a failure on the second leaves an orphan person otherwise.
func (r *GormEmployeeRepository) Add(ctx context.Context, e *employee.Employee) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if err := personrepo.Insert(ctx, r.db, e.Person()); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Exec(insertSQL, e.ID(), e.Specialty(), e.Degree()).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, e.ID())
	}

	r.tracker.TrackAggregate(entity, e.ID(), e)
	return nil
}

func (r *GormEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if err := e.Validate(); err != nil {
		return err
	}

	var affected int64
	if err := r.db.WithContext(ctx).Raw(updateSQL, e.ID(), e.Specialty(), e.Degree()).Scan(&affected).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, e.ID())
	}
	if err := pgerr.NotFoundIfNone(affected, entity, e.ID()); err != nil {
		return err
	}
	if err := personrepo.Update(ctx, r.db, e.Person()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity, e.ID(), e)
	return nil
}

func (r *GormEmployeeRepository) Delete(ctx context.Context, id int64) error {
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
