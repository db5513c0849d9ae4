// Package orderrepo persists customer orders through the pedido stored
// functions. The order number is generated by the database.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/order"
)

// OrderDTO is one row of sp_select_pedido.
type OrderDTO struct {
	Number      int64     `gorm:"column:num_pedido"`
	Description string    `gorm:"column:descripcion"`
	CustomerID  int64     `gorm:"column:cedula"`
	DeliveryAt  time.Time `gorm:"column:fecha_entrega"`
	Status      string    `gorm:"column:estado_pedido"`
}

// toDomain rebuilds the aggregate, rejecting statuses the database should
// never hold.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.Number, dto.CustomerID, dto.Description, dto.DeliveryAt, status)
}
