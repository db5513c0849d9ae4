package queries

import (
	"context"
)

// InventoryAlerts splits the flagged inventory lines by reason. A line that is
// both low on stock and expiring appears in both lists.
type InventoryAlerts struct {
	LowStock          []InventoryItemView `json:"low_stock"`
	Expiring          []InventoryItemView `json:"expiring"`
	LowStockThreshold int                 `json:"low_stock_threshold"`
	ExpiryWindowDays  int                 `json:"expiry_window_days"`
}

type GetInventoryAlertsQueryHandler struct {
	inventory GetInventoryQueryHandler
}

func NewGetInventoryAlertsQueryHandler(inventory GetInventoryQueryHandler) GetInventoryAlertsQueryHandler {
	return GetInventoryAlertsQueryHandler{inventory: inventory}
}

func (h GetInventoryAlertsQueryHandler) Handle(ctx context.Context) (InventoryAlerts, error) {
	items, err := h.inventory.Handle(ctx, NewListQuery())
	if err != nil {
		return InventoryAlerts{}, err
	}

	alerts := InventoryAlerts{
		LowStock:          make([]InventoryItemView, 0),
		Expiring:          make([]InventoryItemView, 0),
		LowStockThreshold: h.inventory.policy.LowStockThreshold(),
		ExpiryWindowDays:  h.inventory.policy.ExpiryWindowDays(),
	}
	for _, item := range items {
		if item.IsLowStock {
			alerts.LowStock = append(alerts.LowStock, item)
		}
		if item.IsExpiring {
			alerts.Expiring = append(alerts.Expiring, item)
		}
	}

	return alerts, nil
}
