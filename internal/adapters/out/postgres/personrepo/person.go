// Package personrepo writes the persona row shared by employees and customers.
// It has no repository of its own; employeerepo and customerrepo call it
// inside their transaction.
package personrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const (
	entity = "person"

	personArgs = "?::bigint, ?::varchar, ?::varchar, ?::varchar, ?::int, ?::varchar, ?::date"
	insertSQL  = "SELECT sp_insert_persona(" + personArgs + ")"
	updateSQL  = "SELECT sp_update_persona(" + personArgs + ")"
)

func Insert(ctx context.Context, db *gorm.DB, p kernel.Person) error {
	if err := db.WithContext(ctx).Exec(insertSQL, args(p)...).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, p.ID())
	}
	return nil
}

// Update returns an ObjectNotFoundError when no persona row has the id.
func Update(ctx context.Context, db *gorm.DB, p kernel.Person) error {
	var affected int64
	if err := db.WithContext(ctx).Raw(updateSQL, args(p)...).Scan(&affected).Error; err != nil {
		return pgerr.Translate(err, pgerr.Write, entity, p.ID())
	}
	return pgerr.NotFoundIfNone(affected, entity, p.ID())
}

func args(p kernel.Person) []any {
	return []any{
		p.ID(),
		p.Name().First(),
		p.Name().FirstLastName(),
		p.Name().SecondLastName(),
		p.Address().CityID(),
		p.Address().Directions(),
		p.BirthDate(),
	}
}
