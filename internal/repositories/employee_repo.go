package repositories

import (
	"errors"
	"fmt"

	"storehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	GetAll(db *gorm.DB) ([]models.Employee, error)
	GetByID(db *gorm.DB, id string) (*models.Employee, error)
	Create(db *gorm.DB, employee *models.Employee) error
	Update(db *gorm.DB, employee *models.Employee) error
}

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct{}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository() *GORMEmployeeRepository {
	return &GORMEmployeeRepository{}
}

// GetAll retrieves all employees of the tenant.
func (r *GORMEmployeeRepository) GetAll(db *gorm.DB) ([]models.Employee, error) {
	var employees []models.Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to get all employees: %w", err)
	}
	return employees, nil
}

// GetByID retrieves a single employee by their ID.
func (r *GORMEmployeeRepository) GetByID(db *gorm.DB, id string) (*models.Employee, error) {
	var employee models.Employee
	if err := db.First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee with ID %s: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get employee by ID %s: %w", id, err)
	}
	return &employee, nil
}

// Create creates a new employee record.
func (r *GORMEmployeeRepository) Create(db *gorm.DB, employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	if err := db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Update updates an existing employee record. Select("*") replaces every
// field without Save's insert fallback, so a missing row reports not found.
func (r *GORMEmployeeRepository) Update(db *gorm.DB, employee *models.Employee) error {
	res := db.Model(employee).Select("*").Updates(employee)
	if res.Error != nil {
		return fmt.Errorf("failed to update employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update employee with ID %s: %w", employee.ID, gorm.ErrRecordNotFound)
	}
	return nil
}
