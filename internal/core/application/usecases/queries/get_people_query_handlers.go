package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// PersonView holds the person columns shared by employees and customers.
type PersonView struct {
	ID             int64     `json:"id"               gorm:"column:cedula"`
	FirstName      string    `json:"first_name"       gorm:"column:nombre"`
	FirstLastName  string    `json:"first_last_name"  gorm:"column:apellido1"`
	SecondLastName string    `json:"second_last_name" gorm:"column:apellido2"`
	CityID         int64     `json:"city_id"          gorm:"column:ciudad"`
	Directions     string    `json:"directions"       gorm:"column:indicacion"`
	BirthDate      time.Time `json:"birth_date"       gorm:"column:fecha_nacimiento"`
}

type EmployeeView struct {
	PersonView `gorm:"embedded"`
	Specialty  string `json:"specialty" gorm:"column:especialidad"`
	Degree     string `json:"degree"    gorm:"column:grado_academico"`
}

type GetEmployeesQueryHandler struct {
	db *gorm.DB
}

func NewGetEmployeesQueryHandler(db *gorm.DB) GetEmployeesQueryHandler {
	return GetEmployeesQueryHandler{db: db}
}

func (h GetEmployeesQueryHandler) Handle(ctx context.Context, query ByIDQuery) ([]EmployeeView, error) {
	return selectByID[EmployeeView](ctx, h.db, "sp_select_empleados", "employee", query)
}

// EmployeeExistsQueryHandler answers whether an id belongs to an employee.
// The HTTP layer uses it to authorize write requests.
type EmployeeExistsQueryHandler struct {
	db *gorm.DB
}

func NewEmployeeExistsQueryHandler(db *gorm.DB) EmployeeExistsQueryHandler {
	return EmployeeExistsQueryHandler{db: db}
}

func (h EmployeeExistsQueryHandler) Handle(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := h.db.WithContext(ctx).
		Raw("SELECT sp_empleado_existe(?::bigint)", id).
		Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

type customerRow struct {
	PersonView `gorm:"embedded"`
	Frequent   int16 `gorm:"column:cliente_frecuente"`
}

type CustomerView struct {
	PersonView
	Frequent bool `json:"frequent"`
}

type GetCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

func (h GetCustomersQueryHandler) Handle(ctx context.Context, query ByIDQuery) ([]CustomerView, error) {
	rows, err := selectByID[customerRow](ctx, h.db, "sp_select_clientes", "customer", query)
	if err != nil {
		return nil, err
	}

	customers := make([]CustomerView, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, CustomerView{PersonView: row.PersonView, Frequent: row.Frequent == 1})
	}
	return customers, nil
}
