package queries

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/inventory"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// InventoryItemView is one inventory line with its derived alert flags.
// ExpiresOn is set for ingredients; Description and Color for materials.
type InventoryItemView struct {
	ID              int64      `json:"id"`
	Type            string     `json:"type"`
	Brand           string     `json:"brand"`
	Name            string     `json:"name"`
	PurchasedOn     time.Time  `json:"purchase_date"`
	Price           float64    `json:"price"`
	Quantity        int        `json:"quantity"`
	Kind            string     `json:"kind"`
	ExpiresOn       *time.Time `json:"expiration_date,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Color           *string    `json:"color,omitempty"`
	DaysUntilExpiry *int       `json:"days_until_expiry,omitempty"`
	IsLowStock      bool       `json:"is_low_stock"`
	IsExpiring      bool       `json:"is_expiring"`
}

type inventoryRow struct {
	ID          int64      `gorm:"column:id_materia_prima"`
	Type        string     `gorm:"column:tipo"`
	Brand       string     `gorm:"column:marca"`
	Name        string     `gorm:"column:nombre"`
	PurchasedOn time.Time  `gorm:"column:fecha_de_compra"`
	Price       float64    `gorm:"column:precio"`
	Quantity    int        `gorm:"column:cantidad"`
	ExpiresOn   *time.Time `gorm:"column:fecha_de_expiracion"`
	Description *string    `gorm:"column:descripcion"`
	Color       *string    `gorm:"column:color"`
}

// GetInventoryQueryHandler lists inventory lines and flags the ones that are
// low on stock or about to expire. Flags are computed on every read against
// the handler's clock and never stored.
type GetInventoryQueryHandler struct {
	db     *gorm.DB
	policy inventory.AlertPolicy
	now    func() time.Time
}

// NewGetInventoryQueryHandler uses time.Now when now is nil.
func NewGetInventoryQueryHandler(db *gorm.DB, policy inventory.AlertPolicy, now func() time.Time) GetInventoryQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetInventoryQueryHandler{db: db, policy: policy, now: now}
}

// Handle returns an ObjectNotFoundError when a single id was requested and
// there is no such line.
func (h GetInventoryQueryHandler) Handle(ctx context.Context, query ByIDQuery) ([]InventoryItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]inventoryRow, 0)
	if err := h.db.WithContext(ctx).
		Raw("SELECT * FROM sp_select_materia_prima(?::bigint)", query.arg()).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	if id, ok := query.ID(); ok && len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("inventory item", id)
	}

	now := h.now()
	items := make([]InventoryItemView, 0, len(rows))
	for _, row := range rows {
		items = append(items, h.view(row, now))
	}
	return items, nil
}

func (h GetInventoryQueryHandler) view(row inventoryRow, now time.Time) InventoryItemView {
	v := InventoryItemView{
		ID:          row.ID,
		Type:        row.Type,
		Brand:       row.Brand,
		Name:        row.Name,
		PurchasedOn: row.PurchasedOn,
		Price:       row.Price,
		Quantity:    row.Quantity,
		Kind:        inventory.Generic.String(),
		ExpiresOn:   row.ExpiresOn,
		Description: row.Description,
		Color:       row.Color,
		IsLowStock:  h.policy.IsLowStock(row.Quantity),
		IsExpiring:  h.policy.IsExpiring(row.ExpiresOn, now),
	}

	switch {
	case row.ExpiresOn != nil:
		v.Kind = inventory.Ingredient.String()
		days := inventory.DaysUntil(*row.ExpiresOn, now)
		v.DaysUntilExpiry = &days
	case row.Description != nil:
		v.Kind = inventory.Material.String()
	}

	return v
}
