package repositories

import (
	"storehub/internal/models"

	"gorm.io/gorm"
)

// OrderRepository defines the interface for order data access. Create runs in
// the caller's transaction; orders are immutable once committed, so there is
// no update method.
type OrderRepository interface {
	GetAll(db *gorm.DB) ([]models.Order, error)
	GetByID(db *gorm.DB, id string) (*models.Order, error)
	Create(tx *gorm.DB, order *models.Order) error
}
