package employee

import (
	"errors"
	"time"

	employeeDatamodel "github.com/prakashpaswan/employee-portal/internal/core/datamodel/employee"
)

// Employee is the internal domain model used by services and converters.
type Employee struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	Position  *string   `json:"position"`
	Salary    *float64  `json:"salary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Domain errors
var ErrEmployeeNotFound = errors.New("employee not found")

// RepositoryAPI defines the data access methods for employees
type RepositoryAPI interface {
	Create(emp *employeeDatamodel.Employee) error
	GetAll() ([]*employeeDatamodel.Employee, error)
	GetByID(id string) (*employeeDatamodel.Employee, error)
	Update(emp *employeeDatamodel.Employee) error
	Delete(id string) error
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Salary:    e.Salary,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Salary:    e.Salary,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
