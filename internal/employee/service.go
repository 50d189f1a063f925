package employee

import (
	"log/slog"
	"time"
)

// Service handles employee business logic
type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

// NewService creates a new employee service
func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateEmployee persists a new record and returns it with its
// store-generated identifier.
func (s *Service) CreateEmployee(dto EmployeeDTO) (*Employee, error) {
	now := time.Now()
	emp := &Employee{
		Name:      dto.Name,
		Position:  dto.Position,
		Salary:    dto.Salary,
		CreatedAt: now,
		UpdatedAt: now,
	}

	record := ToDataModel(emp)
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create employee", "error", err)
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", record.ID)
	return FromDataModel(record), nil
}

// GetAllEmployees returns every record in store-native order.
func (s *Service) GetAllEmployees() ([]*Employee, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

// GetEmployeeByID returns the matching record or ErrEmployeeNotFound.
func (s *Service) GetEmployeeByID(id string) (*Employee, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(record), nil
}

// UpdateEmployee replaces all three mutable fields and returns the
// post-update record. Fields omitted from the payload become null.
func (s *Service) UpdateEmployee(id string, dto EmployeeDTO) (*Employee, error) {
	record := ToDataModel(&Employee{
		ID:       id,
		Name:     dto.Name,
		Position: dto.Position,
		Salary:   dto.Salary,
	})

	if err := s.repo.Update(record); err != nil {
		if err != ErrEmployeeNotFound {
			s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		}
		return nil, err
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", id)
	return FromDataModel(updated), nil
}

// DeleteEmployee removes the record or returns ErrEmployeeNotFound.
func (s *Service) DeleteEmployee(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if err != ErrEmployeeNotFound {
			s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		}
		return err
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
