package queries

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type OrderView struct {
	Number       int64     `json:"number"        gorm:"column:num_pedido"`
	Description  string    `json:"description"   gorm:"column:descripcion"`
	CustomerID   int64     `json:"customer_id"   gorm:"column:cedula"`
	CustomerName string    `json:"customer_name" gorm:"column:nombre_cliente"`
	DeliveryAt   time.Time `json:"delivery_date" gorm:"column:fecha_entrega"`
	Status       string    `json:"status"        gorm:"column:estado_pedido"`
}

// GetOrdersQueryHandler lists orders by delivery date.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(0, "elaborando")
//	inKitchen, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if customerID, ok := query.CustomerID(); ok {
		tx = tx.Table("sp_select_pedidos_by_cliente(?::bigint) AS o", customerID)
	} else {
		tx = tx.Table("sp_select_all_pedidos() AS o")
	}
	if status, ok := query.Status(); ok {
		tx = tx.Where("o.estado_pedido = ?", status.String())
	}

	orders := make([]OrderView, 0)
	if err := tx.Order("o.fecha_entrega, o.num_pedido").Scan(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// StatusCount is how many orders currently sit in one status.
type StatusCount struct {
	Status string `json:"status" gorm:"column:estado_pedido"`
	Total  int64  `json:"total"  gorm:"column:total"`
}

// GetOrderStatusSummaryQueryHandler counts orders per status. Every status is
// reported, with zero when no order is in it.
type GetOrderStatusSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusSummaryQueryHandler(db *gorm.DB) GetOrderStatusSummaryQueryHandler {
	return GetOrderStatusSummaryQueryHandler{db: db}
}

func (h GetOrderStatusSummaryQueryHandler) Handle(ctx context.Context) ([]StatusCount, error) {
	rows := make([]StatusCount, 0)
	if err := h.db.WithContext(ctx).
		Raw("SELECT * FROM sp_count_pedidos_by_estado()").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.Status] = row.Total
	}

	statuses := order.Statuses()
	summary := make([]StatusCount, 0, len(statuses))
	for _, status := range statuses {
		summary = append(summary, StatusCount{Status: status.String(), Total: totals[status.String()]})
	}
	return summary, nil
}
