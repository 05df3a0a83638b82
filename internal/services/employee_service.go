package services

import (
	"storehub/internal/models"
	"storehub/internal/repositories"

	"gorm.io/gorm"
)

// EmployeeService handles business logic related to a tenant's staff records.
type EmployeeService struct {
	repo repositories.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo: repo,
	}
}

// GetAllEmployees retrieves all employees of the tenant.
func (s *EmployeeService) GetAllEmployees(db *gorm.DB) ([]models.Employee, error) {
	return s.repo.GetAll(db)
}

// GetEmployeeByID retrieves a single employee by their ID.
func (s *EmployeeService) GetEmployeeByID(db *gorm.DB, id string) (*models.Employee, error) {
	return s.repo.GetByID(db, id)
}

// AddEmployee creates a new employee record.
func (s *EmployeeService) AddEmployee(db *gorm.DB, employee *models.Employee) error {
	return s.repo.Create(db, employee)
}

// UpdateEmployee updates an existing employee record.
func (s *EmployeeService) UpdateEmployee(db *gorm.DB, employee *models.Employee) error {
	return s.repo.Update(db, employee)
}
