package queries

import (
	"context"

	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

type SupplierView struct {
	ID         int64  `json:"id"         gorm:"column:id_proveedor"`
	Name       string `json:"name"       gorm:"column:nombre_proveedor"`
	CityID     int64  `json:"city_id"    gorm:"column:ciudad"`
	Directions string `json:"directions" gorm:"column:indicacion"`
}

type GetSuppliersQueryHandler struct {
	db *gorm.DB
}

func NewGetSuppliersQueryHandler(db *gorm.DB) GetSuppliersQueryHandler {
	return GetSuppliersQueryHandler{db: db}
}

func (h GetSuppliersQueryHandler) Handle(ctx context.Context, query ByIDQuery) ([]SupplierView, error) {
	return selectByID[SupplierView](ctx, h.db, "sp_select_proveedores", "supplier", query)
}

type ProductView struct {
	ID   int64  `json:"id"   gorm:"column:id_producto"`
	Type string `json:"type" gorm:"column:tipo"`
}

type GetProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

func (h GetProductsQueryHandler) Handle(ctx context.Context, query ByIDQuery) ([]ProductView, error) {
	return selectByID[ProductView](ctx, h.db, "sp_select_productos", "product", query)
}

// selectByID runs one of the sp_select_* functions that take an optional id.
// fn is always a constant from this package.
func selectByID[T any](ctx context.Context, db *gorm.DB, fn, entity string, query ByIDQuery) ([]T, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]T, 0)
	if err := db.WithContext(ctx).
		Raw("SELECT * FROM "+fn+"(?::bigint)", query.arg()).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	if id, ok := query.ID(); ok && len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError(entity, id)
	}

	return rows, nil
}
