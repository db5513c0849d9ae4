package commands

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/supplier"
)

// SupplierCommandHandler creates, updates and deletes suppliers.
type SupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

func NewSupplierCommandHandler(uowFactory SupplierUoWFactory) SupplierCommandHandler {
	return SupplierCommandHandler{uowFactory: uowFactory}
}

func (h *SupplierCommandHandler) Create(ctx context.Context, cmd SaveSupplierCommand) error {
	return h.save(ctx, cmd, false)
}

func (h *SupplierCommandHandler) Update(ctx context.Context, cmd SaveSupplierCommand) error {
	return h.save(ctx, cmd, true)
}

func (h *SupplierCommandHandler) Delete(ctx context.Context, cmd DeleteByIDCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow SupplierUoW) error {
		return uow.SupplierRepository().Delete(ctx, cmd.ID())
	})
}

func (h *SupplierCommandHandler) save(ctx context.Context, cmd SaveSupplierCommand, update bool) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	data := cmd.Supplier()
	address, err := kernel.NewAddress(data.CityID, data.Directions)
	if err != nil {
		return err
	}
	s, err := supplier.NewSupplier(data.ID, data.Name, address)
	if err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow SupplierUoW) error {
		if update {
			return uow.SupplierRepository().Update(ctx, s)
		}
		return uow.SupplierRepository().Add(ctx, s)
	})
}

// ProductCommandHandler creates, updates and deletes products.
type ProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewProductCommandHandler(uowFactory ProductUoWFactory) ProductCommandHandler {
	return ProductCommandHandler{uowFactory: uowFactory}
}

func (h *ProductCommandHandler) Create(ctx context.Context, cmd SaveProductCommand) error {
	return h.save(ctx, cmd, false)
}

func (h *ProductCommandHandler) Update(ctx context.Context, cmd SaveProductCommand) error {
	return h.save(ctx, cmd, true)
}

// Delete fails with an ObjectIsReferencedError while an order lists the product.
func (h *ProductCommandHandler) Delete(ctx context.Context, cmd DeleteByIDCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow ProductUoW) error {
		return uow.ProductRepository().Delete(ctx, cmd.ID())
	})
}

func (h *ProductCommandHandler) save(ctx context.Context, cmd SaveProductCommand, update bool) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := product.NewProduct(cmd.ID(), cmd.Type())
	if err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow ProductUoW) error {
		if update {
			return uow.ProductRepository().Update(ctx, p)
		}
		return uow.ProductRepository().Add(ctx, p)
	})
}
