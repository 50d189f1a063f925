package postgres

import (
	"time"

	employeeDatamodel "github.com/prakashpaswan/employee-portal/internal/core/datamodel/employee"
	"github.com/prakashpaswan/employee-portal/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements the employee.RepositoryAPI interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

// Create saves a new employee to the database
func (r *EmployeeRepository) Create(emp *employeeDatamodel.Employee) error {
	return r.db.Create(emp).Error
}

// GetAll retrieves every employee in store-native order
func (r *EmployeeRepository) GetAll() ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.Find(&employees).Error
	return employees, err
}

// GetByID retrieves an employee by its ID
func (r *EmployeeRepository) GetByID(id string) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// Update overwrites all three mutable fields of an employee. Nil fields are
// written as NULL; this is a replace, not a merge.
func (r *EmployeeRepository) Update(emp *employeeDatamodel.Employee) error {
	result := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", emp.ID).
		Updates(map[string]interface{}{
			"name":       emp.Name,
			"position":   emp.Position,
			"salary":     emp.Salary,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes an employee by ID
func (r *EmployeeRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
