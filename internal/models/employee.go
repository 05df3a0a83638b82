package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is a staff record within a tenant.
type Employee struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string          `json:"name" validate:"required,min=2,max=100"`
	Position   string          `json:"position" validate:"omitempty,max=100"`
	Email      string          `json:"email" validate:"omitempty,email"`
	Phone      string          `json:"phone" validate:"omitempty,max=30"`
	Salary     decimal.Decimal `json:"salary" gorm:"type:decimal(12,2)"`
	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
