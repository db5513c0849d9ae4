package commands

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler stores a new order and reports its number.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number assigned to the order. It returns an
// ObjectNotFoundError when the customer does not exist.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(cmd.CustomerID(), cmd.Description(), cmd.DeliveryAt())
	if err != nil {
		return 0, err
	}

	var number int64
	err = inTransaction(ctx, h.uowFactory.Create(), func(uow OrderUoW) error {
		var addErr error
		number, addErr = uow.OrderRepository().Add(ctx, o)
		return addErr
	})
	if err != nil {
		return 0, err
	}

	return number, nil
}

// UpdateOrderStatusCommandHandler records a new status on an existing order.
// Every transition between the three statuses is allowed.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow OrderUoW) error {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.Get(ctx, cmd.Number())
		if err != nil {
			return err
		}

		if err = o.ChangeStatus(cmd.Status()); err != nil {
			return err
		}

		return orderRepo.UpdateStatus(ctx, o)
	})
}

type AddProductToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddProductToOrderCommandHandler(uowFactory OrderUoWFactory) AddProductToOrderCommandHandler {
	return AddProductToOrderCommandHandler{uowFactory: uowFactory}
}

func (h *AddProductToOrderCommandHandler) Handle(ctx context.Context, cmd AddProductToOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	line, err := order.NewLine(cmd.ProductID(), cmd.Quantity(), cmd.MadeOn())
	if err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow OrderUoW) error {
		return uow.OrderRepository().AddLine(ctx, cmd.Number(), line)
	})
}
