package ports

import (
	"context"

	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for suppliers.
type SupplierRepository interface {
	Add(ctx context.Context, s *supplier.Supplier) error
	Update(ctx context.Context, s *supplier.Supplier) error
	Delete(ctx context.Context, id int64) error
}

// ProductRepository defines the persistence contract for products.
// Delete returns an ObjectIsReferencedError while an order still lists the product.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id int64) error
}
