// Package inventoryrepo persists inventory lines through the materia_prima
// stored functions. The ingredient and material variants travel in the same
// call as nullable arguments.
package inventoryrepo

import (
	"time"

	"bakery/internal/core/domain/model/inventory"
)

// ItemDTO is the argument list of sp_insert_materia_prima and sp_update_materia_prima.
type ItemDTO struct {
	ID          int64
	Type        string
	Brand       string
	Name        string
	PurchasedOn time.Time
	Price       float64
	Quantity    int
	ExpiresOn   *time.Time
	Description *string
	Color       *string
}

func fromDomain(item *inventory.Item) ItemDTO {
	dto := ItemDTO{
		ID:          item.ID(),
		Type:        item.Type(),
		Brand:       item.Brand(),
		Name:        item.Name(),
		PurchasedOn: item.PurchasedOn(),
		Price:       item.Price(),
		Quantity:    item.Quantity(),
	}

	switch item.Kind() {
	case inventory.Ingredient:
		dto.ExpiresOn = item.ExpiresOn()
	case inventory.Material:
		description, color := item.Description(), item.Color()
		dto.Description = &description
		dto.Color = &color
	case inventory.Generic:
	}

	return dto
}

func (d ItemDTO) args() []any {
	return []any{
		d.ID, d.Type, d.Brand, d.Name, d.PurchasedOn, d.Price, d.Quantity,
		d.ExpiresOn, d.Description, d.Color,
	}
}
