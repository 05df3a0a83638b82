package repositories

import (
	"errors"
	"fmt"

	"storehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct{}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository() *GORMOrderRepository {
	return &GORMOrderRepository{}
}

// GetAll retrieves all orders with their line items and bills.
func (r *GORMOrderRepository) GetAll(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Items").Preload("Bill").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its line items and bill.
func (r *GORMOrderRepository) GetByID(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").Preload("Bill").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create inserts the order header and its line items in the caller's
// transaction.
func (r *GORMOrderRepository) Create(tx *gorm.DB, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := tx.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}
