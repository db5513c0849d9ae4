package commands

import (
	"context"

	"bakery/internal/core/domain/model/inventory"
)

// CreateInventoryItemCommandHandler stores a new inventory line.
//
// Example:
//
//	handler := NewCreateInventoryItemCommandHandler(uowFactory)
//	cmd, _ := NewCreateInventoryItemCommand(InventoryItemData{ID: 1, Type: "Harina", ...})
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("create inventory item: %w", err)
//	}
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewCreateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{uowFactory: uowFactory}
}

func (h *CreateInventoryItemCommandHandler) Handle(ctx context.Context, cmd CreateInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := buildItem(cmd.Item())
	if err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow InventoryUoW) error {
		return uow.InventoryRepository().Add(ctx, item)
	})
}

type UpdateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewUpdateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryItemCommandHandler {
	return UpdateInventoryItemCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateInventoryItemCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := buildItem(cmd.Item())
	if err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow InventoryUoW) error {
		return uow.InventoryRepository().Update(ctx, item)
	})
}

type DeleteInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewDeleteInventoryItemCommandHandler(uowFactory InventoryUoWFactory) DeleteInventoryItemCommandHandler {
	return DeleteInventoryItemCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteInventoryItemCommandHandler) Handle(ctx context.Context, cmd DeleteInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow InventoryUoW) error {
		return uow.InventoryRepository().Delete(ctx, cmd.ID())
	})
}

func buildItem(d InventoryItemData) (*inventory.Item, error) {
	item, err := inventory.NewItem(d.ID, d.Type, d.Brand, d.Name, d.PurchasedOn, d.Price, d.Quantity)
	if err != nil {
		return nil, err
	}

	switch {
	case d.ExpiresOn != nil:
		err = item.MarkAsIngredient(*d.ExpiresOn)
	case d.Description != "" || d.Color != "":
		err = item.MarkAsMaterial(d.Description, d.Color)
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}
