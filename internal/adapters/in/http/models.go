package http

import (
	"time"

	"bakery/internal/core/application/usecases/commands"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListParams is the optional id filter accepted by the listing routes.
type ListParams struct {
	ID *int64 `form:"id,omitempty" json:"id,omitempty"`
}

type GetOrdersParams struct {
	CustomerID *int64  `form:"customer_id,omitempty" json:"customer_id,omitempty"`
	Status     *string `form:"status,omitempty"      json:"status,omitempty"`
}

type InventoryItemRequest struct {
	ID             int64               `json:"id"`
	Type           string              `json:"type"`
	Brand          string              `json:"brand"`
	Name           string              `json:"name"`
	PurchaseDate   openapi_types.Date  `json:"purchase_date"`
	Price          float64             `json:"price"`
	Quantity       int                 `json:"quantity"`
	ExpirationDate *openapi_types.Date `json:"expiration_date,omitempty"`
	Description    string              `json:"description,omitempty"`
	Color          string              `json:"color,omitempty"`
}

func (r InventoryItemRequest) toData() commands.InventoryItemData {
	data := commands.InventoryItemData{
		ID:          r.ID,
		Type:        r.Type,
		Brand:       r.Brand,
		Name:        r.Name,
		PurchasedOn: r.PurchaseDate.Time,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Description: r.Description,
		Color:       r.Color,
	}
	if r.ExpirationDate != nil {
		expires := r.ExpirationDate.Time
		data.ExpiresOn = &expires
	}
	return data
}

type SupplierRequest struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CityID     int64  `json:"city_id"`
	Directions string `json:"directions"`
}

func (r SupplierRequest) toData() commands.SupplierData {
	return commands.SupplierData{ID: r.ID, Name: r.Name, CityID: r.CityID, Directions: r.Directions}
}

type ProductRequest struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type PersonRequest struct {
	ID             int64              `json:"id"`
	FirstName      string             `json:"first_name"`
	FirstLastName  string             `json:"first_last_name"`
	SecondLastName string             `json:"second_last_name"`
	CityID         int64              `json:"city_id"`
	Directions     string             `json:"directions"`
	BirthDate      openapi_types.Date `json:"birth_date"`
}

func (r PersonRequest) toData() commands.PersonData {
	return commands.PersonData{
		ID:             r.ID,
		FirstName:      r.FirstName,
		FirstLastName:  r.FirstLastName,
		SecondLastName: r.SecondLastName,
		CityID:         r.CityID,
		Directions:     r.Directions,
		BirthDate:      r.BirthDate.Time,
	}
}

type EmployeeRequest struct {
	PersonRequest
	Specialty string `json:"specialty"`
	Degree    string `json:"degree"`
}

type CustomerRequest struct {
	PersonRequest
	Frequent bool `json:"frequent"`
}

type NewOrderRequest struct {
	CustomerID   int64     `json:"customer_id"`
	Description  string    `json:"description"`
	DeliveryDate time.Time `json:"delivery_date"`
}

type StatusChangeRequest struct {
	Status string `json:"status"`
}

type OrderLineRequest struct {
	ProductID       int64              `json:"product_id"`
	Quantity        int                `json:"quantity"`
	PreparationDate openapi_types.Date `json:"preparation_date"`
}
